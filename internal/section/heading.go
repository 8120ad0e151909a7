package section

import (
	"regexp"
	"unicode"

	"github.com/jyothish28/intelligent-document-analyst/internal/fragment"
)

// Textual heading patterns, checked against the raw fragment text. Compiled
// once; the set is fixed configuration, not per-call state.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.?\s+[A-Z]`),                   // Numbered headings (1. Introduction)
	regexp.MustCompile(`^[A-Z][A-Z\s]{5,}$`),                // ALL CAPS headings
	regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]*)*$`),  // Title Case
	regexp.MustCompile(`^(Chapter|Section|Part|Module)\s+\d+`), // Explicit sections
	regexp.MustCompile(`^\d+\.\d+\s+`),                      // Subsection numbering (1.1, 2.3)
	regexp.MustCompile(`^[IVX]+\.\s+`),                      // Roman numerals
}

var (
	chapterPattern    = regexp.MustCompile(`(?i)^(Chapter|Module|Part)\s+\d+`)
	numberedPattern   = regexp.MustCompile(`^\d+\.?\s+[A-Z]`)
	subsectionPattern = regexp.MustCompile(`^\d+\.\d+\s+`)
)

// isHeading reports whether a fragment opens a new section. Any one of the
// font-size, bold, pattern or all-caps criteria triggers.
func isHeading(f fragment.Fragment, text string, stats fontStats) bool {
	// Font size relative to the document.
	if f.FontSize > stats.avgSize+2 {
		return true
	}

	// Bold at a reasonable size, short enough to be a title.
	words := f.WordCount()
	if f.Bold && f.FontSize >= stats.commonSize && words <= 15 {
		return true
	}

	for _, pattern := range headingPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	// Structural indicator: short all-caps run at body size or above.
	if isUpperText(text) && words <= 8 && f.FontSize >= stats.commonSize {
		return true
	}

	return false
}

// headingLevel assigns 1 (most prominent) to 4, checked in order.
func headingLevel(f fragment.Fragment, text string, stats fontStats) int {
	switch {
	case f.FontSize >= stats.maxSize-1 || chapterPattern.MatchString(text):
		return 1
	case f.FontSize >= stats.avgSize+3 || numberedPattern.MatchString(text):
		return 2
	case f.FontSize >= stats.avgSize+1 || subsectionPattern.MatchString(text):
		return 3
	default:
		return 4
	}
}

// isUpperText reports whether the text contains at least one cased letter
// and every cased letter is upper case.
func isUpperText(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
