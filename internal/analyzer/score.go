package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jyothish28/intelligent-document-analyst/internal/config"
	"github.com/jyothish28/intelligent-document-analyst/internal/section"
)

// Score ceilings. Every sub-score is capped independently so no single
// signal can dominate the composite.
const (
	maxRelevanceScore  = 20.0
	maxContentQuality  = 5.0
	maxDomainRelevance = 10.0
	maxSemanticDensity = 2.0

	keywordContributionCap = 8.0
)

// roleContentTerms maps a role-name substring to the term list that earns a
// flat bonus per distinct hit. Fixed configuration, built once.
var roleContentTerms = []struct {
	roleSubstring string
	terms         []string
}{
	{"researcher", []string{
		"methodology", "experiment", "analysis", "study", "research",
		"hypothesis", "findings", "results", "conclusion", "literature",
		"survey", "investigation", "empirical", "theoretical", "framework",
	}},
	{"student", []string{
		"concept", "definition", "example", "theory", "principle",
		"basics", "fundamental", "introduction", "overview", "explanation",
		"tutorial", "guide", "learning", "understanding", "knowledge",
	}},
	{"analyst", []string{
		"trend", "data", "metric", "performance", "comparison",
		"insight", "pattern", "correlation", "statistics", "measurement",
		"evaluation", "assessment", "benchmark", "indicator", "analysis",
	}},
	{"developer", []string{
		"implementation", "algorithm", "system", "design", "architecture",
		"development", "programming", "software", "technical", "solution",
		"method", "approach", "technique", "process", "procedure",
	}},
	{"manager", []string{
		"strategy", "planning", "management", "decision", "leadership",
		"organization", "business", "objective", "goal", "vision",
		"mission", "policy", "governance", "coordination", "direction",
	}},
}

// domainVocabularies are the fixed per-field keyword sets for domain
// relevance. The name doubles as the requester-context match key
// (underscores read as spaces).
var domainVocabularies = []struct {
	name  string
	terms []string
}{
	{"computer_science", []string{"algorithm", "data structure", "programming", "software", "database", "network"}},
	{"machine_learning", []string{"model", "training", "neural", "classification", "regression", "feature"}},
	{"research", []string{"methodology", "experiment", "hypothesis", "analysis", "findings", "literature"}},
	{"business", []string{"strategy", "market", "revenue", "customer", "profit", "analysis"}},
	{"education", []string{"learning", "concept", "theory", "principle", "example", "definition"}},
}

// relevance computes the capped relevance score: task keywords, persona
// expertise, role bonus, and a main-section bonus.
func (a *Analyzer) relevance(text string, s section.Section, persona config.Persona, job string) float64 {
	score := 0.0

	// Task keywords, frequency weighted, each capped individually.
	for _, keyword := range smartKeywords(strings.ToLower(job)) {
		frequency := strings.Count(text, keyword)
		if frequency == 0 {
			continue
		}
		weight := float64(len(strings.Fields(keyword))) * float64(frequency)
		score += min(weight*2.0, keywordContributionCap)
	}

	// Persona expertise: exact phrase, else partial credit for compounds.
	for _, area := range persona.Expertise {
		lower := strings.ToLower(area)
		if strings.Contains(text, lower) {
			score += 3.0
			continue
		}
		words := strings.Fields(lower)
		if len(words) > 1 {
			matches := 0
			for _, w := range words {
				if strings.Contains(text, w) {
					matches++
				}
			}
			score += float64(matches) / float64(len(words)) * 2.0
		}
	}

	// Role-specific term bonus, selected by substring on the role name.
	role := strings.ToLower(persona.Role)
	for _, rc := range roleContentTerms {
		if !strings.Contains(role, rc.roleSubstring) {
			continue
		}
		for _, term := range rc.terms {
			if strings.Contains(text, term) {
				score += 2.0
			}
		}
	}

	// Main sections get a small structural boost.
	if s.HeadingLevel <= 2 {
		score += 1.0
	}

	return min(score, maxRelevanceScore)
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// contentQuality combines length, structure, lexical diversity and
// readability, capped at 5.
func contentQuality(s section.Section) float64 {
	words := strings.Fields(s.Content)
	wordCount := len(words)

	var lengthScore float64
	switch {
	case wordCount < 20:
		lengthScore = float64(wordCount) / 20
	case wordCount > 500:
		lengthScore = 2.0 - float64(wordCount-500)/1000
	default:
		lengthScore = 1.0 + float64(wordCount-20)/480
	}

	structureScore := 1.0
	if len(s.Title) > 3 {
		structureScore += 0.5
	}
	if s.HeadingLevel <= 2 {
		structureScore += 0.3
	}

	unique := make(map[string]bool, wordCount)
	for _, w := range words {
		unique[strings.ToLower(w)] = true
	}
	diversity := 0.0
	if wordCount > 0 {
		diversity = float64(len(unique)) / float64(wordCount)
	}

	sentences := sentenceSplit.Split(s.Content, -1)
	totalSentenceWords := 0
	for _, sent := range sentences {
		totalSentenceWords += len(strings.Fields(sent))
	}
	avgSentenceLength := float64(totalSentenceWords) / float64(max(len(sentences), 1))
	readability := 0.5
	if avgSentenceLength >= 10 && avgSentenceLength <= 25 {
		readability = 1.0
	}

	return min(lengthScore+structureScore+diversity*2+readability, maxContentQuality)
}

// domainRelevance scores hits against the fixed domain vocabularies, with
// extra weight for domains the requester names explicitly.
func domainRelevance(text string, persona config.Persona, job string) float64 {
	score := 0.0
	for _, domain := range domainVocabularies {
		hits := 0.0
		for _, term := range domain.terms {
			if strings.Contains(text, term) {
				hits++
			}
		}
		score += hits * 0.5
	}

	context := strings.ToLower(persona.Role + " " + job)
	for _, domain := range domainVocabularies {
		if !strings.Contains(context, strings.ReplaceAll(domain.name, "_", " ")) {
			continue
		}
		for _, term := range domain.terms {
			if strings.Contains(text, term) {
				score += 1.0
			}
		}
	}

	return min(score, maxDomainRelevance)
}

// semanticDensity is the ratio of meaningful words to all words plus a
// bonus for long or capitalized words.
func semanticDensity(text string) float64 {
	words := strings.Fields(text)
	if len(words) < 10 {
		return 0.5
	}

	meaningful := 0
	bonus := 0.0
	for _, w := range words {
		if len(w) > 3 && isAlphaWord(w) {
			meaningful++
		}
		if startsUpper(w) || len(w) > 8 {
			bonus += 0.1
		}
	}
	density := float64(meaningful) / float64(len(words))
	return min(density+bonus, maxSemanticDensity)
}

func isAlphaWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(w) > 0
}

func startsUpper(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}
