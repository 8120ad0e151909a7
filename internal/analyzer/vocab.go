package analyzer

import (
	"errors"
	"sort"
	"strings"
)

const (
	maxVocabularyTerms = 2000
	maxNgramLength     = 3
	// Terms present in more than this fraction of sections carry no signal.
	maxDocumentFraction = 0.95
)

var errEmptyVocabulary = errors.New("vocabulary is empty")

// vocabulary is the batch-wide term-weighting space: unigrams through
// trigrams over every section, capped to the most informative terms.
type vocabulary struct {
	terms []string
	df    map[string]int // sections containing each term
	docs  int
}

// buildVocabulary constructs the term space from the cleaned section texts.
// Stopword tokens are removed before n-grams form, terms appearing in more
// than 95% of sections are excluded, and the vocabulary is capped at the
// 2000 terms with the highest total frequency.
func buildVocabulary(texts []string) (*vocabulary, error) {
	docs := len(texts)
	df := make(map[string]int)
	totalFreq := make(map[string]int)

	for _, text := range texts {
		grams := ngrams(tokenize(text))
		seen := make(map[string]bool)
		for _, g := range grams {
			totalFreq[g]++
			if !seen[g] {
				seen[g] = true
				df[g]++
			}
		}
	}

	var candidates []string
	for term, n := range df {
		if docs > 1 && float64(n)/float64(docs) > maxDocumentFraction {
			continue
		}
		candidates = append(candidates, term)
	}
	if len(candidates) == 0 {
		return nil, errEmptyVocabulary
	}

	// Highest total frequency first; ties alphabetical for determinism.
	sort.Slice(candidates, func(i, j int) bool {
		if totalFreq[candidates[i]] != totalFreq[candidates[j]] {
			return totalFreq[candidates[i]] > totalFreq[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > maxVocabularyTerms {
		candidates = candidates[:maxVocabularyTerms]
	}

	kept := make(map[string]int, len(candidates))
	for _, term := range candidates {
		kept[term] = df[term]
	}
	return &vocabulary{terms: candidates, df: kept, docs: docs}, nil
}

// ngrams produces unigrams through trigrams from the non-stopword tokens.
func ngrams(tokens []string) []string {
	var filtered []string
	for _, t := range tokens {
		lower := strings.ToLower(t)
		if !stopwords[lower] {
			filtered = append(filtered, lower)
		}
	}

	var grams []string
	for n := 1; n <= maxNgramLength; n++ {
		for i := 0; i+n <= len(filtered); i++ {
			grams = append(grams, strings.Join(filtered[i:i+n], " "))
		}
	}
	return grams
}

// sectionKeyTerms returns the top terms for one section by weight, where
// weight is local frequency times the inverse fraction of sections
// containing the term.
func (v *vocabulary) sectionKeyTerms(text string, limit int) []KeyTerm {
	grams := ngrams(tokenize(text))
	counts := make(map[string]int)
	for _, g := range grams {
		if _, ok := v.df[g]; ok {
			counts[g]++
		}
	}

	terms := make([]KeyTerm, 0, len(counts))
	for term, tf := range counts {
		weight := float64(tf) * float64(v.docs) / float64(v.df[term])
		terms = append(terms, KeyTerm{
			Term:      term,
			Weight:    round3(weight),
			Frequency: strings.Count(text, term),
		})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return terms[i].Term < terms[j].Term
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
