package ranker

import (
	"regexp"
	"strings"
)

const refineMaxWords = 120

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	mergedSentence = regexp.MustCompile(`([a-z])([A-Z])`)
)

// spacing fixes applied in order after the regex passes.
var spacingFixes = []struct{ old, new string }{
	{"  ", " "},
	{" .", "."},
	{" ,", ","},
	{"( ", "("},
	{" )", ")"},
}

// refineText cleans a passage for presentation: whitespace collapse,
// merged-sentence repair, spacing fixes, forced terminal punctuation, and a
// hard word cap with sentence-boundary truncation.
func refineText(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")

	// A lowercase letter glued to an uppercase one marks two sentences the
	// extraction ran together.
	text = mergedSentence.ReplaceAllString(text, "$1. $2")

	for _, fix := range spacingFixes {
		text = strings.ReplaceAll(text, fix.old, fix.new)
	}

	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ".") &&
		!strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		text += "."
	}

	words := strings.Fields(text)
	if len(words) <= refineMaxWords {
		return text
	}

	// Truncate at the last sentence boundary that fits the cap.
	sentences := sentenceEnd.Split(text, -1)
	var truncated strings.Builder
	wordCount := 0
	for _, sent := range sentences {
		sentWords := len(strings.Fields(sent))
		if wordCount+sentWords > refineMaxWords {
			break
		}
		truncated.WriteString(sent)
		truncated.WriteString(". ")
		wordCount += sentWords
	}

	if truncated.Len() > 0 {
		return strings.TrimSpace(truncated.String())
	}
	// No boundary fits: hard cut with an ellipsis.
	return strings.Join(words[:refineMaxWords], " ") + "..."
}
