package persona

import (
	"regexp"
	"strings"
)

// jobContext is the structured reading of the job-to-be-done text.
type jobContext struct {
	jobType  string // research, learning, analysis, development, management, general
	keyTerms []string
	urgency  string // high, detailed, normal
}

// Keyword families for job-type classification, in priority order: the
// first matching family wins.
var jobTypeFamilies = []struct {
	jobType string
	terms   []string
}{
	{"research", []string{"research", "study", "investigate"}},
	{"learning", []string{"learn", "understand", "study"}},
	{"analysis", []string{"analyze", "examine", "evaluate"}},
	{"development", []string{"implement", "develop", "build"}},
	{"management", []string{"plan", "strategy", "manage"}},
}

var urgencyFamilies = []struct {
	urgency string
	terms   []string
}{
	{"high", []string{"urgent", "immediate", "asap", "quickly"}},
	{"detailed", []string{"comprehensive", "detailed", "thorough"}},
}

// extractJobContext classifies the task description and pulls its key terms.
func extractJobContext(job string) jobContext {
	lower := strings.ToLower(job)

	ctx := jobContext{jobType: "general", urgency: "normal"}
	for _, family := range jobTypeFamilies {
		if containsAny(lower, family.terms) {
			ctx.jobType = family.jobType
			break
		}
	}
	for _, family := range urgencyFamilies {
		if containsAny(lower, family.terms) {
			ctx.urgency = family.urgency
			break
		}
	}
	ctx.keyTerms = meaningfulTerms(lower)
	return ctx
}

var termWord = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// jobStopwords is the small stopword set for task term extraction.
var jobStopwords = map[string]bool{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "up", "about", "into", "through",
		"during", "before", "after", "above", "below", "between", "among",
		"this", "that", "these", "those", "i", "me", "my", "myself", "we",
		"our", "ours", "ourselves",
	} {
		jobStopwords[w] = true
	}
}

// meaningfulTerms extracts up to 20 deduplicated meaningful terms from the
// task text, preserving encounter order.
func meaningfulTerms(text string) []string {
	words := termWord.FindAllString(text, -1)

	seen := make(map[string]bool)
	var terms []string
	for _, w := range words {
		lower := strings.ToLower(w)
		if jobStopwords[lower] || len(lower) <= 2 || seen[lower] {
			continue
		}
		seen[lower] = true
		terms = append(terms, lower)
		if len(terms) == 20 {
			break
		}
	}
	return terms
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
