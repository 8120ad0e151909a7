package ranker

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jyothish28/intelligent-document-analyst/internal/analyzer"
	"github.com/jyothish28/intelligent-document-analyst/internal/persona"
	"github.com/jyothish28/intelligent-document-analyst/internal/section"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scoredSection(title, content string, level, page int, importance float64) persona.ScoredSection {
	return persona.ScoredSection{
		AnalyzedSection: analyzer.AnalyzedSection{
			Section: section.Section{
				Document:     "doc.pdf",
				Title:        title,
				Content:      content,
				HeadingLevel: level,
				Page:         page,
			},
		},
		ImportanceRank: importance,
	}
}

func TestAssignDenseRanks(t *testing.T) {
	ranked := []RankedSection{
		{FinalScore: 18},
		{FinalScore: 18},
		{FinalScore: 15},
		{FinalScore: 9},
	}

	assignDenseRanks(ranked)

	want := []int{1, 1, 3, 4}
	for i, w := range want {
		if ranked[i].Rank != w {
			t.Errorf("rank[%d] = %d, want %d", i, ranked[i].Rank, w)
		}
	}
}

func TestAssignDenseRanks_AllTied(t *testing.T) {
	ranked := []RankedSection{{FinalScore: 7}, {FinalScore: 7}, {FinalScore: 7}}
	assignDenseRanks(ranked)
	for i, r := range ranked {
		if r.Rank != 1 {
			t.Errorf("rank[%d] = %d, want 1", i, r.Rank)
		}
	}
}

func TestPriorityCategory(t *testing.T) {
	tests := []struct {
		name  string
		title string
		score float64
		want  string
	}{
		{"high by score alone", "Miscellaneous Notes", 16, "high"},
		{"high keyword beats low score", "Executive Summary", 2, "high"},
		{"low keyword beats medium score", "Introduction to Methods", 10, "low"},
		{"low by score", "Miscellaneous Notes", 4, "low"},
		{"medium otherwise", "Discussion of Limitations", 10, "medium"},
		{"boundary score is not high", "Miscellaneous Notes", 15, "medium"},
		{"boundary score is not low", "Miscellaneous Notes", 5, "medium"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := priorityCategory(tt.title, tt.score); got != tt.want {
				t.Errorf("priorityCategory(%q, %v) = %q, want %q", tt.title, tt.score, got, tt.want)
			}
		})
	}
}

func TestTitleQuality(t *testing.T) {
	tests := []struct {
		title string
		want  float64
	}{
		{"ab", 0},
		// "result" informative word +0.5, "results" high keyword +2.
		{"Results", 2.5},
		// Five words +1, analysis and result informative +1, results high
		// keyword +2, analysis medium keyword +1: capped at 5.
		{"Detailed Analysis of Experimental Results", 5},
		{"Summary of Key Findings and Results Conclusion Analysis", 5},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := titleQuality(tt.title); got != tt.want {
				t.Errorf("titleQuality(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestFinalScore(t *testing.T) {
	words := make([]string, 60)
	for i := range words {
		words[i] = "word"
	}
	content := strings.Join(words, " ")

	t.Run("structural bonuses", func(t *testing.T) {
		// importance 10, level 2 (+3), 60 words (+2), empty title (0),
		// page 1 (+3), no key terms (0).
		s := scoredSection("", content, 2, 1, 10)
		if got := finalScore(s); got != 18.0 {
			t.Errorf("finalScore = %v, want 18.0", got)
		}
	})

	t.Run("key term weights top three", func(t *testing.T) {
		s := scoredSection("", content, 2, 1, 10)
		s.KeyTerms = []analyzer.KeyTerm{
			{Term: "a", Weight: 2.5}, {Term: "b", Weight: 2.0},
			{Term: "c", Weight: 1.5}, {Term: "d", Weight: 9.9},
		}
		if got := finalScore(s); got != 24.0 {
			t.Errorf("finalScore = %v, want 24.0", got)
		}
	})

	t.Run("zero-weight key terms count half each", func(t *testing.T) {
		s := scoredSection("", content, 2, 1, 10)
		s.KeyTerms = []analyzer.KeyTerm{{Term: "a"}, {Term: "b"}, {Term: "c"}, {Term: "d"}}
		if got := finalScore(s); got != 20.0 {
			t.Errorf("finalScore = %v, want 20.0", got)
		}
	})

	t.Run("late page loses position bonus", func(t *testing.T) {
		early := scoredSection("", content, 2, 1, 10)
		late := scoredSection("", content, 2, 40, 10)
		if finalScore(early)-finalScore(late) != 3.0 {
			t.Errorf("expected full 3.0 position gap, got %v", finalScore(early)-finalScore(late))
		}
	})
}

func TestRankSections(t *testing.T) {
	r := New(testLogger())

	if got := r.RankSections(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}

	words := strings.Repeat("word ", 60)
	sections := []persona.ScoredSection{
		scoredSection("Minor Remarks", words, 4, 10, 2),
		scoredSection("Central Argument", words, 1, 1, 12),
	}

	ranked := r.RankSections(sections)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked sections, got %d", len(ranked))
	}
	if ranked[0].Title != "Central Argument" {
		t.Errorf("highest-scored section first, got %q", ranked[0].Title)
	}
	if ranked[0].Rank != 1 || ranked[1].Rank != 2 {
		t.Errorf("ranks = %d, %d, want 1, 2", ranked[0].Rank, ranked[1].Rank)
	}
	if ranked[0].FinalScore <= ranked[1].FinalScore {
		t.Errorf("scores not descending: %v, %v", ranked[0].FinalScore, ranked[1].FinalScore)
	}
}
