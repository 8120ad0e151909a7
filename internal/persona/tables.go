package persona

// Fixed scoring dictionaries. All process-wide read-only configuration,
// constructed once at startup.

// weightedTerm is a role-signature term with its base weight.
type weightedTerm struct {
	term   string
	weight float64
}

// roleCategory is the normalized role key all role-conditional behavior
// hangs off. New roles are additive: register a category, its terms and its
// weight override here and the matcher picks them up.
type roleCategory string

const (
	roleResearcher roleCategory = "researcher"
	roleStudent    roleCategory = "student"
	roleAnalyst    roleCategory = "analyst"
	roleDeveloper  roleCategory = "developer"
	roleManager    roleCategory = "manager"
	roleGeneral    roleCategory = ""
)

// roleCategories in matching priority order; the first category whose name
// appears in the role string wins.
var roleCategories = []roleCategory{
	roleResearcher, roleStudent, roleAnalyst, roleDeveloper, roleManager,
}

// roleWeights carries each role's three signature terms.
var roleWeights = map[roleCategory][]weightedTerm{
	roleResearcher: {{"methodology", 3.0}, {"findings", 2.5}, {"analysis", 2.0}},
	roleStudent:    {{"concept", 2.5}, {"example", 2.0}, {"definition", 2.0}},
	roleAnalyst:    {{"data", 2.5}, {"trend", 2.0}, {"metric", 2.0}},
	roleDeveloper:  {{"implementation", 2.5}, {"code", 2.0}, {"system", 2.0}},
	roleManager:    {{"strategy", 2.5}, {"planning", 2.0}, {"decision", 2.0}},
}

// roleBonusTerms is the broader per-role indicator list, worth a flat bonus
// per hit (capped).
var roleBonusTerms = map[roleCategory][]string{
	roleResearcher: {
		"methodology", "experiment", "hypothesis", "literature review",
		"empirical", "theoretical", "framework", "survey", "investigation",
	},
	roleStudent: {
		"concept", "definition", "example", "tutorial", "guide",
		"basics", "fundamental", "introduction", "explanation", "principle",
	},
	roleAnalyst: {
		"trend", "pattern", "correlation", "statistics", "benchmark",
		"metric", "kpi", "performance", "evaluation", "assessment",
	},
	roleDeveloper: {
		"implementation", "code", "programming", "algorithm", "system",
		"architecture", "design", "technical", "solution", "framework",
	},
	roleManager: {
		"strategy", "planning", "decision", "leadership", "coordination",
		"objective", "goal", "vision", "policy", "governance",
	},
}

// jobTypeIndicators earn a bonus when the section content matches the
// classified job type.
var jobTypeIndicators = map[string][]string{
	"research":    {"methodology", "findings", "results", "study", "investigation"},
	"learning":    {"concept", "theory", "principle", "example", "explanation"},
	"analysis":    {"data", "trend", "pattern", "evaluation", "comparison"},
	"development": {"implementation", "design", "system", "solution", "technical"},
	"management":  {"strategy", "planning", "objective", "decision", "coordination"},
}

// relatedTerms maps an expertise phrase to the synonyms that earn partial
// expertise credit.
var relatedTerms = map[string][]string{
	"machine learning":        {"ml", "neural", "algorithm", "model", "training"},
	"data science":            {"analytics", "statistics", "visualization", "mining"},
	"software engineering":    {"programming", "development", "coding", "architecture"},
	"artificial intelligence": {"ai", "intelligent", "automation", "cognitive"},
	"business analysis":       {"requirements", "process", "stakeholder", "workflow"},
	"project management":      {"planning", "scheduling", "coordination", "delivery"},
}

var (
	beginnerTerms = []string{"introduction", "basic", "fundamental", "overview", "getting started"}
	advancedTerms = []string{"advanced", "complex", "detailed", "in-depth", "sophisticated"}

	urgentTitleTerms   = []string{"summary", "conclusion", "key", "important"}
	detailedTitleTerms = []string{"method", "detail", "procedure", "process"}
)

// ImportanceWeights are the composite weights over the seven sub-scores.
// They sum to 1.0.
type ImportanceWeights struct {
	Relevance  float64
	Persona    float64
	Job        float64
	Quality    float64
	Domain     float64
	Expertise  float64
	Experience float64
}

func defaultImportanceWeights() ImportanceWeights {
	return ImportanceWeights{
		Relevance:  0.25,
		Persona:    0.20,
		Job:        0.25,
		Quality:    0.10,
		Domain:     0.10,
		Expertise:  0.07,
		Experience: 0.03,
	}
}

// importanceOverrides adjusts the weights for specific role categories.
var importanceOverrides = map[roleCategory]func(ImportanceWeights) ImportanceWeights{
	roleResearcher: func(w ImportanceWeights) ImportanceWeights {
		w.Relevance = 0.30
		w.Quality = 0.15
		return w
	},
	roleStudent: func(w ImportanceWeights) ImportanceWeights {
		w.Persona = 0.25
		w.Experience = 0.05
		return w
	},
}
