package section

import (
	"strings"

	"github.com/jyothish28/intelligent-document-analyst/internal/fragment"
)

const (
	// minContentChars is the flush rule: an open section is emitted only if
	// its accumulated content exceeds this many characters.
	minContentChars = 20
	// minFragmentChars drops stray marks before classification.
	minFragmentChars = 3
	// minContentWords and minTitleChars gate post-processing.
	minContentWords = 10
	minTitleChars   = 3
	// mergeWordLimit is the size under which a section may be folded into a
	// similarly titled predecessor.
	mergeWordLimit = 30
	// titleSimilarityThreshold is the Jaccard bound for merging.
	titleSimilarityThreshold = 0.6
)

// Builder segments fragment streams into titled sections.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// accumulator is the explicit two-state machine for the in-progress section:
// either no section is open, or exactly one is and body fragments append to
// it. Transitions happen on heading fragments and at end of stream.
type accumulator struct {
	open bool
	cur  Section
}

func (a *accumulator) start(s Section) {
	a.open = true
	a.cur = s
}

func (a *accumulator) append(text string) {
	if a.open {
		a.cur.Content += " " + text
	}
}

// flush closes the open section and reports whether it carried enough
// content to emit. The accumulator returns to the no-open-section state.
func (a *accumulator) flush() (Section, bool) {
	if !a.open {
		return Section{}, false
	}
	a.open = false
	if len(strings.TrimSpace(a.cur.Content)) <= minContentChars {
		return Section{}, false
	}
	s := a.cur
	s.Content = cleanContent(s.Content)
	return s, true
}

// Build consumes the fragment stream of one document and returns its
// sections in stream order.
func (b *Builder) Build(document string, frags []fragment.Fragment) []Section {
	stats := analyzeFontStats(frags)

	var sections []Section
	var acc accumulator

	for _, f := range frags {
		text := strings.TrimSpace(f.Text)
		if len(text) < minFragmentChars {
			continue
		}

		if isHeading(f, text, stats) {
			if s, ok := acc.flush(); ok {
				sections = append(sections, s)
			}
			acc.start(Section{
				Document:     document,
				Page:         f.Page,
				Title:        cleanTitle(text),
				FontSize:     f.FontSize,
				Bold:         f.Bold,
				HeadingLevel: headingLevel(f, text, stats),
			})
		} else {
			acc.append(text)
		}
	}

	if s, ok := acc.flush(); ok {
		sections = append(sections, s)
	}

	return postProcess(sections)
}

// postProcess drops noise sections and folds short continuations into their
// predecessor when the titles are near-duplicates.
func postProcess(sections []Section) []Section {
	var processed []Section
	for _, s := range sections {
		if len(strings.Fields(s.Content)) < minContentWords || len(s.Title) < minTitleChars {
			continue
		}

		if len(processed) > 0 &&
			len(strings.Fields(s.Content)) < mergeWordLimit &&
			titlesSimilar(processed[len(processed)-1].Title, s.Title) {
			processed[len(processed)-1].Content += " " + s.Content
			continue
		}

		processed = append(processed, s)
	}
	return processed
}

// titlesSimilar compares title word sets by Jaccard similarity.
func titlesSimilar(a, b string) bool {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection)/float64(union) > titleSimilarityThreshold
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
