// Package ranker orders scored sections into the final ranking: composite
// final scores, dense competition ranks, priority categories, and the
// decomposition of top sections into refined sub-passages.
package ranker

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/jyothish28/intelligent-document-analyst/internal/persona"
)

// Priority keyword sets. Checked against lowercased titles; the high check
// fires before the low check, so a title matching both classifies high.
var priorityKeywords = map[string][]string{
	"high":   {"conclusion", "summary", "key findings", "results", "important"},
	"medium": {"methodology", "approach", "analysis", "discussion"},
	"low":    {"introduction", "background", "literature", "references"},
}

// informativeWords earn a small title-quality bonus each.
var informativeWords = []string{
	"analysis", "method", "result", "conclusion", "finding",
	"approach", "technique", "process", "evaluation", "comparison",
}

const maxTitleQuality = 5.0

// RankedSection is a scored section with its final score, dense rank and
// priority category.
type RankedSection struct {
	persona.ScoredSection
	FinalScore       float64
	PriorityCategory string // high, medium, low
	Rank             int    // dense competition rank, ties share
}

// Ranker computes final scores and rank order.
type Ranker struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Ranker {
	return &Ranker{log: log}
}

// RankSections orders sections by final score descending and assigns dense
// competition ranks: tied scores share a rank, the next distinct score
// resumes at its 1-based position.
func (r *Ranker) RankSections(sections []persona.ScoredSection) []RankedSection {
	if len(sections) == 0 {
		return nil
	}

	ranked := make([]RankedSection, len(sections))
	for i, s := range sections {
		final := finalScore(s)
		ranked[i] = RankedSection{
			ScoredSection:    s,
			FinalScore:       final,
			PriorityCategory: priorityCategory(s.Title, final),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	assignDenseRanks(ranked)

	r.log.Info("ranked sections", "sections", len(ranked))
	return ranked
}

// assignDenseRanks walks the score-sorted sequence once: a section inherits
// the previous rank only on an exact score tie; the next distinct score
// resumes at its 1-based position.
func assignDenseRanks(ranked []RankedSection) {
	currentRank := 1
	for i := range ranked {
		if i > 0 && ranked[i].FinalScore != ranked[i-1].FinalScore {
			currentRank = i + 1
		}
		ranked[i].Rank = currentRank
	}
}

// finalScore layers structural bonuses on top of the importance composite.
func finalScore(s persona.ScoredSection) float64 {
	base := s.ImportanceRank

	levelBonus := math.Max(0, float64(5-s.HeadingLevel))

	wordCount := len(strings.Fields(s.Content))
	var lengthBonus float64
	switch {
	case wordCount >= 50 && wordCount <= 300:
		lengthBonus = 2.0
	case (wordCount >= 30 && wordCount < 50) || (wordCount > 300 && wordCount <= 500):
		lengthBonus = 1.0
	}

	titleBonus := titleQuality(s.Title)

	positionBonus := math.Max(0, 3-float64(s.Page-1)*0.1)

	var termsBonus float64
	if len(s.KeyTerms) > 0 {
		hasWeights := false
		for i, t := range s.KeyTerms {
			if i == 3 {
				break
			}
			if t.Weight > 0 {
				hasWeights = true
				termsBonus += t.Weight
			}
		}
		if !hasWeights {
			termsBonus = float64(len(s.KeyTerms)) * 0.5
		}
	}

	total := base + levelBonus + lengthBonus + titleBonus + positionBonus + termsBonus
	return math.Round(total*100) / 100
}

// titleQuality rewards informative, well-sized titles, capped at 5.
func titleQuality(title string) float64 {
	if len(title) < 3 {
		return 0.0
	}

	score := 0.0
	lower := strings.ToLower(title)
	words := len(strings.Fields(title))

	switch {
	case words >= 5 && words <= 10:
		score += 1.0
	case words >= 3 && words <= 15:
		score += 0.5
	}

	for _, w := range informativeWords {
		if strings.Contains(lower, w) {
			score += 0.5
		}
	}

	for priority, keywords := range priorityKeywords {
		for _, kw := range keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			switch priority {
			case "high":
				score += 2.0
			case "medium":
				score += 1.0
			default:
				score += 0.5
			}
		}
	}

	return math.Min(score, maxTitleQuality)
}

// priorityCategory classifies by score threshold or title keywords. The
// high check deliberately precedes the low check.
func priorityCategory(title string, score float64) string {
	lower := strings.ToLower(title)

	if score > 15 || titleHasAny(lower, priorityKeywords["high"]) {
		return "high"
	}
	if score < 5 || titleHasAny(lower, priorityKeywords["low"]) {
		return "low"
	}
	return "medium"
}

func titleHasAny(title string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}
