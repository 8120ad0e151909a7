// Package persona scores analyzed sections against the stated reader
// persona and task, producing the weighted composite importance score.
package persona

import (
	"log/slog"
	"math"
	"strings"

	"github.com/jyothish28/intelligent-document-analyst/internal/analyzer"
	"github.com/jyothish28/intelligent-document-analyst/internal/config"
)

// Score ceilings for the matcher's sub-scores.
const (
	maxPersonaScore   = 25.0
	maxJobScore       = 25.0
	maxExpertiseScore = 15.0
	maxRoleBonus      = 15.0
	maxJobTypeBonus   = 12.0
)

// ScoredSection is an analyzed section with the persona-matching scores and
// the composite importance rank.
type ScoredSection struct {
	analyzer.AnalyzedSection
	PersonaMatchScore    float64 // [0,25]
	JobMatchScore        float64 // [0,25]
	ExpertiseMatchScore  float64 // [0,15]
	ExperienceMatchScore float64
	ImportanceRank       float64
}

// Matcher holds the persona and the pre-extracted job context.
type Matcher struct {
	role       roleCategory
	expertise  []string
	experience string
	jobCtx     jobContext
	weights    ImportanceWeights
	log        *slog.Logger
}

// NewMatcher builds a matcher for one persona and task.
func NewMatcher(p config.Persona, job string, log *slog.Logger) *Matcher {
	role := categorizeRole(p.Role)

	weights := defaultImportanceWeights()
	if override, ok := importanceOverrides[role]; ok {
		weights = override(weights)
	}

	expertise := make([]string, len(p.Expertise))
	for i, e := range p.Expertise {
		expertise[i] = strings.ToLower(e)
	}

	return &Matcher{
		role:       role,
		expertise:  expertise,
		experience: strings.ToLower(p.ExperienceLevel),
		jobCtx:     extractJobContext(job),
		weights:    weights,
		log:        log,
	}
}

// categorizeRole normalizes a free-form role name to a known category by
// substring match, in fixed priority order.
func categorizeRole(role string) roleCategory {
	lower := strings.ToLower(role)
	for _, cat := range roleCategories {
		if strings.Contains(lower, string(cat)) {
			return cat
		}
	}
	return roleGeneral
}

// ScoreSections computes the persona, job, expertise and experience scores
// for every section plus the weighted importance composite.
func (m *Matcher) ScoreSections(sections []analyzer.AnalyzedSection) []ScoredSection {
	m.log.Info("matching sections to persona",
		"sections", len(sections), "job_type", m.jobCtx.jobType, "urgency", m.jobCtx.urgency)

	scored := make([]ScoredSection, len(sections))
	for i, s := range sections {
		content := strings.ToLower(s.Title + " " + s.Content)

		personaScore := m.personaMatch(content)
		jobScore := m.jobMatch(content, strings.ToLower(s.Title))
		expertiseScore := m.expertiseMatch(content)
		experienceScore := m.experienceMatch(content)

		scored[i] = ScoredSection{
			AnalyzedSection:      s,
			PersonaMatchScore:    personaScore,
			JobMatchScore:        jobScore,
			ExpertiseMatchScore:  expertiseScore,
			ExperienceMatchScore: experienceScore,
			ImportanceRank: m.weightedImportance(
				s.RelevanceScore, personaScore, jobScore,
				s.ContentQuality, s.DomainRelevance,
				expertiseScore, experienceScore,
			),
		}
	}
	return scored
}

// personaMatch scores role-weighted terms, the broader role bonus list, and
// expertise phrases.
func (m *Matcher) personaMatch(content string) float64 {
	score := 0.0

	for _, wt := range roleWeights[m.role] {
		frequency := strings.Count(content, wt.term)
		if frequency > 0 {
			score += min(wt.weight*float64(frequency), wt.weight*3)
		}
	}

	bonus := 0.0
	for _, term := range roleBonusTerms[m.role] {
		if strings.Contains(content, term) {
			bonus += 2.0
		}
	}
	score += min(bonus, maxRoleBonus)

	for _, area := range m.expertise {
		if strings.Contains(content, area) {
			score += 4.0
			continue
		}
		words := strings.Fields(area)
		if len(words) > 1 {
			matches := 0
			for _, w := range words {
				if strings.Contains(content, w) {
					matches++
				}
			}
			score += float64(matches) / float64(len(words)) * 2.0
		}
	}

	return min(score, maxPersonaScore)
}

// jobMatch scores task key terms by frequency, the job-type bonus, and the
// urgency-driven title adjustment.
func (m *Matcher) jobMatch(content, title string) float64 {
	score := 0.0

	for _, term := range m.jobCtx.keyTerms {
		frequency := strings.Count(content, term)
		if frequency == 0 {
			continue
		}
		termWeight := float64(len(strings.Fields(term))) * 1.5
		score += min(termWeight*float64(frequency), termWeight*3)
	}

	bonus := 0.0
	for _, term := range jobTypeIndicators[m.jobCtx.jobType] {
		if strings.Contains(content, term) {
			bonus += 2.5
		}
	}
	score += min(bonus, maxJobTypeBonus)

	switch m.jobCtx.urgency {
	case "high":
		if containsAny(title, urgentTitleTerms) {
			score += 3.0
		}
	case "detailed":
		if containsAny(title, detailedTitleTerms) {
			score += 3.0
		}
	}

	return min(score, maxJobScore)
}

// expertiseMatch rewards exact expertise phrases and their related terms.
func (m *Matcher) expertiseMatch(content string) float64 {
	if len(m.expertise) == 0 {
		return 0.0
	}

	score := 0.0
	for _, area := range m.expertise {
		if strings.Contains(content, area) {
			score += 5.0
		}
		for _, term := range relatedTerms[area] {
			if strings.Contains(content, term) {
				score += 1.0
			}
		}
	}
	return min(score, maxExpertiseScore)
}

// experienceMatch tilts toward introductory content for beginners and
// advanced content for senior readers; intermediate contributes nothing.
func (m *Matcher) experienceMatch(content string) float64 {
	var terms []string
	switch m.experience {
	case "beginner":
		terms = beginnerTerms
	case "advanced", "senior":
		terms = advancedTerms
	default:
		return 0.0
	}

	score := 0.0
	for _, term := range terms {
		if strings.Contains(content, term) {
			score += 1.0
		}
	}
	return score
}

// weightedImportance combines the seven sub-scores with the role-adjusted
// weights, rounded to two decimals.
func (m *Matcher) weightedImportance(relevance, persona, job, quality, domain, expertise, experience float64) float64 {
	total := relevance*m.weights.Relevance +
		persona*m.weights.Persona +
		job*m.weights.Job +
		quality*m.weights.Quality +
		domain*m.weights.Domain +
		expertise*m.weights.Expertise +
		experience*m.weights.Experience
	return math.Round(total*100) / 100
}
