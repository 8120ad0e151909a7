package ranker

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	// subsectionTargetWords is the passage size the splitter aims for.
	subsectionTargetWords = 150
	// minSubsectionChars discards trivially short passages.
	minSubsectionChars = 30
	// keyTermOverlapCap bounds the parent key-term bonus.
	keyTermOverlapCap = 3.0
)

// Subsection is a refined sub-passage of a top-ranked section.
type Subsection struct {
	Document       string
	Page           int
	ID             string // "{parentRank}.{index}"
	RefinedText    string
	ParentSection  string
	RelevanceScore float64
	WordCount      int
	KeyConcepts    []string // up to 5
}

// SubsectionAnalysis decomposes the given top-ranked sections into refined
// passages, scores them, and returns the highest-relevance ones up to limit.
func (r *Ranker) SubsectionAnalysis(top []RankedSection, limit int) []Subsection {
	var subs []Subsection

	for _, sec := range top {
		passages := splitSubsections(sec.Content)
		for i, passage := range passages {
			if len(strings.TrimSpace(passage)) <= minSubsectionChars {
				continue
			}
			refined := refineText(passage)
			subs = append(subs, Subsection{
				Document:       sec.Document,
				Page:           sec.Page,
				ID:             fmt.Sprintf("%d.%d", sec.Rank, i+1),
				RefinedText:    refined,
				ParentSection:  sec.Title,
				RelevanceScore: subsectionRelevance(passage, sec),
				WordCount:      len(strings.Fields(refined)),
				KeyConcepts:    keyConcepts(passage),
			})
		}
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].RelevanceScore > subs[j].RelevanceScore
	})
	if len(subs) > limit {
		subs = subs[:limit]
	}
	return subs
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n|\.\s{2,}`)

// splitSubsections breaks section content into passages around the target
// length, preferring paragraph breaks and falling back to sentences.
func splitSubsections(content string) []string {
	if len(strings.TrimSpace(content)) < 50 {
		return []string{content}
	}

	paragraphs := paragraphBreak.Split(content, -1)

	var passages []string
	var current string

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		currentWords := len(strings.Fields(current))
		paraWords := len(strings.Fields(para))

		// Close the passage when this paragraph would overflow 1.5x the
		// target and the passage already holds at least half a target.
		if currentWords+paraWords > subsectionTargetWords*3/2 &&
			currentWords > subsectionTargetWords/2 {
			if current != "" {
				passages = append(passages, current)
			}
			current = para
		} else if current == "" {
			current = para
		} else {
			current += " " + para
		}
	}
	if current != "" {
		passages = append(passages, current)
	}

	// No natural breaks: fall back to sentence-boundary splitting.
	if len(passages) <= 1 && len(strings.Fields(content)) > subsectionTargetWords {
		return splitBySentences(content)
	}
	return passages
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

func splitBySentences(content string) []string {
	sentences := sentenceEnd.Split(content, -1)

	var passages []string
	var current string

	for _, sent := range sentences {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		sent += "."

		currentWords := len(strings.Fields(current))
		sentWords := len(strings.Fields(sent))

		if currentWords+sentWords > subsectionTargetWords &&
			currentWords > subsectionTargetWords*3/10 {
			if current != "" {
				passages = append(passages, current)
			}
			current = sent
		} else if current == "" {
			current = sent
		} else {
			current += " " + sent
		}
	}
	if current != "" {
		passages = append(passages, current)
	}
	return passages
}

// subsectionRelevance scores a passage from its parent's importance plus
// length, lexical diversity and parent key-term overlap.
func subsectionRelevance(passage string, parent RankedSection) float64 {
	base := parent.ImportanceRank * 0.7

	words := strings.Fields(passage)
	wordCount := len(words)
	var lengthBonus float64
	switch {
	case wordCount >= 30 && wordCount <= 150:
		lengthBonus = 2.0
	case (wordCount >= 20 && wordCount < 30) || (wordCount > 150 && wordCount <= 200):
		lengthBonus = 1.0
	}

	unique := make(map[string]bool, wordCount)
	for _, w := range words {
		unique[strings.ToLower(w)] = true
	}
	var density float64
	if wordCount > 0 {
		density = float64(len(unique)) / float64(wordCount) * 2
	}

	lower := strings.ToLower(passage)
	var overlap float64
	for _, term := range parent.KeyTerms {
		if strings.Contains(lower, term.Term) {
			overlap += 0.5
		}
	}
	overlap = math.Min(overlap, keyTermOverlapCap)

	return math.Round((base+lengthBonus+density+overlap)*100) / 100
}

var (
	capitalizedPhrase  = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	abstractNounSuffix = regexp.MustCompile(`(?i)\b\w*(?:tion|sion|ment|ness|ity|ism)\b`)
	longWord           = regexp.MustCompile(`\b\w{8,}\b`)
)

// keyConcepts extracts up to five concepts per passage: capitalized phrases
// first, then abstract nouns and long technical words.
func keyConcepts(text string) []string {
	var concepts []string

	caps := capitalizedPhrase.FindAllString(text, -1)
	concepts = append(concepts, firstN(caps, 3)...)
	concepts = append(concepts, firstN(abstractNounSuffix.FindAllString(text, -1), 2)...)
	concepts = append(concepts, firstN(longWord.FindAllString(text, -1), 2)...)

	seen := make(map[string]bool)
	var unique []string
	for _, c := range concepts {
		if seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
		if len(unique) == 5 {
			break
		}
	}
	return unique
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
