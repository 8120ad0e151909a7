// Package pipeline runs the four analysis stages in sequence over a batch
// of documents: section building, content analysis, persona matching and
// ranking. One run, one result; a stage failure aborts the run while a
// per-document extraction failure only skips that document.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jyothish28/intelligent-document-analyst/internal/analyzer"
	"github.com/jyothish28/intelligent-document-analyst/internal/config"
	"github.com/jyothish28/intelligent-document-analyst/internal/parser"
	"github.com/jyothish28/intelligent-document-analyst/internal/persona"
	"github.com/jyothish28/intelligent-document-analyst/internal/ranker"
	"github.com/jyothish28/intelligent-document-analyst/internal/section"
)

// ErrNoSections reports a batch in which no document yielded a single
// section. An empty batch is a failure, not an empty success.
var ErrNoSections = errors.New("no sections extracted from any document")

// Runner executes one analysis batch.
type Runner struct {
	cfg *config.Config
	log *slog.Logger
}

func NewRunner(cfg *config.Config, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run processes every document and returns the assembled, validated result.
func (r *Runner) Run() (*Result, error) {
	start := time.Now()

	paths, err := r.documentPaths()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents found in %s", r.cfg.InputDir)
	}
	r.log.Info("starting analysis", "documents", len(paths),
		"persona", r.cfg.Persona.Role, "job", r.cfg.JobToBeDone)

	builder := section.NewBuilder()
	var allSections []section.Section
	var documents []string

	// Documents are processed sequentially; a failing document is logged
	// and skipped, the batch continues.
	for _, path := range paths {
		name := filepath.Base(path)
		sections, err := r.extractSections(builder, path, name)
		if err != nil {
			r.log.Warn("skipping document", "document", name, "error", err)
			continue
		}
		if len(sections) == 0 {
			r.log.Warn("no sections extracted", "document", name)
			continue
		}
		r.log.Info("extracted sections", "document", name, "sections", len(sections))
		allSections = append(allSections, sections...)
		documents = append(documents, name)
	}

	if len(allSections) == 0 {
		return nil, ErrNoSections
	}
	r.log.Info("extraction complete", "sections", len(allSections))

	analyzed := analyzer.New(r.log).AnalyzeSections(allSections, r.cfg.Persona, r.cfg.JobToBeDone)
	matched := persona.NewMatcher(r.cfg.Persona, r.cfg.JobToBeDone, r.log).ScoreSections(analyzed)

	rk := ranker.New(r.log)
	ranked := rk.RankSections(matched)

	topSections := ranked
	if len(topSections) > r.cfg.MaxSections {
		topSections = topSections[:r.cfg.MaxSections]
	}
	topForSubs := ranked
	if len(topForSubs) > r.cfg.TopForSubs {
		topForSubs = topForSubs[:r.cfg.TopForSubs]
	}
	subsections := rk.SubsectionAnalysis(topForSubs, r.cfg.MaxSubsections)

	result := r.assemble(documents, len(allSections), topSections, subsections, start)
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("output validation failed: %w", err)
	}
	return result, nil
}

// documentPaths resolves the document set: the explicit config list when
// present, else auto-discovery of the input directory.
func (r *Runner) documentPaths() ([]string, error) {
	if len(r.cfg.Documents) == 0 {
		return parser.Discover(r.cfg.InputDir)
	}

	var paths []string
	for _, name := range r.cfg.Documents {
		path := filepath.Join(r.cfg.InputDir, name)
		if _, err := os.Stat(path); err != nil {
			r.log.Warn("configured document not found", "document", name)
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (r *Runner) extractSections(builder *section.Builder, path, name string) ([]section.Section, error) {
	p, err := parser.ForFile(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	frags, err := p.Parse(f, name)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return builder.Build(name, frags), nil
}

func (r *Runner) assemble(documents []string, totalSections int, top []ranker.RankedSection, subs []ranker.Subsection, start time.Time) *Result {
	extracted := make([]ExtractedSection, len(top))
	for i, s := range top {
		extracted[i] = ExtractedSection{
			Document:         s.Document,
			SectionTitle:     s.Title,
			ImportanceRank:   s.Rank,
			PageNumber:       s.Page,
			FinalScore:       s.FinalScore,
			PriorityCategory: s.PriorityCategory,
		}
	}

	subsections := make([]SubsectionAnalysis, len(subs))
	for i, s := range subs {
		subsections[i] = SubsectionAnalysis{
			Document:       s.Document,
			PageNumber:     s.Page,
			SubsectionID:   s.ID,
			RefinedText:    s.RefinedText,
			ParentSection:  s.ParentSection,
			RelevanceScore: s.RelevanceScore,
			WordCount:      s.WordCount,
			KeyConcepts:    s.KeyConcepts,
		}
	}

	elapsed := math.Round(time.Since(start).Seconds()*100) / 100
	return &Result{
		Metadata: Metadata{
			RunID:                 uuid.NewString(),
			InputDocuments:        documents,
			Persona:               r.cfg.Persona.Role,
			JobToBeDone:           r.cfg.JobToBeDone,
			ProcessingTimestamp:   time.Now().Format(time.RFC3339),
			TotalSectionsAnalyzed: totalSections,
			ProcessingTimeSeconds: elapsed,
			TopSectionsCount:      len(extracted),
			SubsectionsCount:      len(subsections),
		},
		ExtractedSections:  extracted,
		SubsectionAnalysis: subsections,
	}
}
