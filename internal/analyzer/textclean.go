package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	specialChars  = regexp.MustCompile(`[^\w\s.,;:!?()\-]`)
	singleLetter  = regexp.MustCompile(`\b[a-z]\b`)
	wordPattern   = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9]*\b`)
	keywordWord   = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// cleanText normalizes section text for scoring: whitespace and punctuation
// cleanup, repeated-character collapse, single letters dropped, lower case.
func cleanText(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = specialChars.ReplaceAllString(text, " ")
	text = collapseRepeatedRuns(text)
	text = singleLetter.ReplaceAllString(text, "")
	text = strings.ToLower(strings.TrimSpace(text))
	return whitespaceRun.ReplaceAllString(text, " ")
}

// collapseRepeatedRuns reduces words of one repeated character (four or
// more) to the single character. OCR noise heuristic.
func collapseRepeatedRuns(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		if len(runes) < 4 {
			continue
		}
		same := true
		for _, r := range runes[1:] {
			if r != runes[0] {
				same = false
				break
			}
		}
		if same {
			words[i] = string(runes[0])
		}
	}
	return strings.Join(words, " ")
}

// smartKeywords extracts meaningful keywords from a task description:
// at least four characters, stopword-filtered, deduplicated, longest first,
// top 15 kept.
func smartKeywords(text string) []string {
	words := keywordWord.FindAllString(text, -1)

	seen := make(map[string]bool)
	var keywords []string
	for _, w := range words {
		lower := strings.ToLower(w)
		if len(lower) <= 3 || stopwords[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		keywords = append(keywords, lower)
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return len(keywords[i]) > len(keywords[j])
	})
	if len(keywords) > 15 {
		keywords = keywords[:15]
	}
	return keywords
}

// tokenize splits cleaned text into vocabulary tokens.
func tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}
