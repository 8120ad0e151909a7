package section

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	trailingPunct    = regexp.MustCompile(`[.:]+$`)
	nonTextArtifacts = regexp.MustCompile(`[^\w\s.,;:!?()\-]`)
)

// cleanTitle normalizes a section title: whitespace collapse, trailing
// punctuation stripped, long all-caps titles re-cased.
func cleanTitle(title string) string {
	title = strings.TrimSpace(whitespaceRun.ReplaceAllString(title, " "))
	title = trailingPunct.ReplaceAllString(title, "")

	if isUpperText(title) && len(title) > 10 {
		title = titleCase(title)
	}
	return title
}

// cleanContent normalizes section content: whitespace collapse, stripped
// non-text artifacts, collapsed repeated-character runs (OCR noise).
func cleanContent(content string) string {
	content = whitespaceRun.ReplaceAllString(content, " ")
	content = nonTextArtifacts.ReplaceAllString(content, " ")
	content = collapseRepeats(content)
	content = whitespaceRun.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// collapseRepeats reduces words made of a single character repeated four or
// more times to that character.
func collapseRepeats(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) >= 4 && isSingleRuneRun(w) {
			runes := []rune(w)
			words[i] = string(runes[0])
		}
	}
	return strings.Join(words, " ")
}

func isSingleRuneRun(w string) bool {
	runes := []rune(w)
	if len(runes) < 2 || !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

// titleCase upper-cases the first letter of each word, lowering the rest.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
