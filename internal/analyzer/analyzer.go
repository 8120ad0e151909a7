// Package analyzer computes per-section relevance, domain relevance, content
// quality and semantic density using term weighting over the whole batch.
package analyzer

import (
	"log/slog"
	"math"

	"github.com/jyothish28/intelligent-document-analyst/internal/config"
	"github.com/jyothish28/intelligent-document-analyst/internal/section"
)

// KeyTerm is one weighted vocabulary term found in a section.
type KeyTerm struct {
	Term      string  `json:"term"`
	Weight    float64 `json:"weight"`
	Frequency int     `json:"frequency"`
}

// AnalyzedSection is a section enriched with the analyzer's scores.
// Immutable once produced.
type AnalyzedSection struct {
	section.Section
	RelevanceScore  float64   // [0,20]
	KeyTerms        []KeyTerm // ordered, up to 10
	ContentQuality  float64   // [0,5]
	DomainRelevance float64   // [0,10]
	SemanticDensity float64   // [0,2]
}

// Analyzer scores sections against the persona and the job to be done.
type Analyzer struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Analyzer {
	return &Analyzer{log: log}
}

// AnalyzeSections scores every section in the batch. The term-weighting
// space is built once across all sections; if it degenerates, the keyword
// fallback path produces the same fields.
func (a *Analyzer) AnalyzeSections(sections []section.Section, persona config.Persona, job string) []AnalyzedSection {
	if len(sections) == 0 {
		return nil
	}
	a.log.Info("analyzing sections for relevance", "sections", len(sections))

	texts := make([]string, len(sections))
	for i, s := range sections {
		texts[i] = cleanText(s.Title + " " + s.Content)
	}

	// A single section cannot anchor document frequencies on its own; pad
	// the corpus with a sentinel and ignore its row, as the same downstream
	// fields must still come out of the vocabulary path.
	vocabTexts := texts
	if len(texts) == 1 {
		vocabTexts = append([]string{texts[0]}, "dummy text")
	}

	vocab, err := buildVocabulary(vocabTexts)
	if err != nil {
		a.log.Warn("term weighting failed, using fallback analysis", "error", err)
		return a.fallbackAnalyze(sections, texts, persona, job)
	}

	analyzed := make([]AnalyzedSection, len(sections))
	for i, s := range sections {
		analyzed[i] = AnalyzedSection{
			Section:         s,
			RelevanceScore:  a.relevance(texts[i], s, persona, job),
			KeyTerms:        vocab.sectionKeyTerms(texts[i], 10),
			ContentQuality:  contentQuality(s),
			DomainRelevance: domainRelevance(texts[i], persona, job),
			SemanticDensity: semanticDensity(texts[i]),
		}
	}
	return analyzed
}

// fallbackAnalyze is the pure keyword-frequency path used when the
// vocabulary cannot be built.
func (a *Analyzer) fallbackAnalyze(sections []section.Section, texts []string, persona config.Persona, job string) []AnalyzedSection {
	analyzed := make([]AnalyzedSection, len(sections))
	for i, s := range sections {
		keywords := smartKeywords(texts[i])
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}
		terms := make([]KeyTerm, len(keywords))
		for j, kw := range keywords {
			terms[j] = KeyTerm{Term: kw, Weight: 1.0, Frequency: 1}
		}

		analyzed[i] = AnalyzedSection{
			Section:         s,
			RelevanceScore:  a.relevance(texts[i], s, persona, job),
			KeyTerms:        terms,
			ContentQuality:  contentQuality(s),
			DomainRelevance: domainRelevance(texts[i], persona, job),
			SemanticDensity: semanticDensity(texts[i]),
		}
	}
	return analyzed
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
