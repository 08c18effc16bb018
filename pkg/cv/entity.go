// Package cv holds the canonical structured representation of a parsed
// résumé and the pipeline that produces it from an uploaded document.
package cv

// SkillCategories is the closed set of skill groups the extraction prompt
// demands and the normalizer guarantees. Order matters for presentation;
// renaming or extending this list is a breaking change for both the prompt
// template and any published portfolio expecting these keys.
var SkillCategories = []string{
	"Backend",
	"Architecture",
	"Databases",
	"Cloud/DevOps",
	"Frontend",
	"AI/Tools",
	"Authentication",
	"Testing",
	"Version Control",
	"Soft Skills",
	"Project Management",
	"Operating Systems",
	"Build Tools",
	"Languages",
}

// Record is the normalized extraction result. It is only ever built by
// Normalize, so downstream code can rely on every field being present:
// scalars are "" when unknown, sequences are empty, and Skills always
// carries all categories from SkillCategories.
type Record struct {
	Name                string              `json:"name"`
	Position            string              `json:"position"`
	ProfessionalSummary string              `json:"professional_summary"`
	ExperienceYears     string              `json:"experience_years"` // free text, not a validated number
	LinkedIn            string              `json:"linkedin"`
	GitHub              string              `json:"github"`
	Skills              map[string][]string `json:"skills"`
	Experience          []ExperienceItem    `json:"experience"`
	Projects            []Project           `json:"projects"`
	Awards              []any               `json:"awards"`
	Education           []any               `json:"education"`
	Certifications      []any               `json:"certifications"`
	Keywords            []any               `json:"keywords"`
	Contact             Contact             `json:"contact"`
}

type ExperienceItem struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Start   string `json:"start"`
	End     string `json:"end"`
	// Description is always a slice; a bare string in the model output is
	// coerced to a single-element slice at the normalization boundary.
	Description []string `json:"description"`
}

type Project struct {
	Title       string `json:"title"`
	Tech        string `json:"tech"`
	Description string `json:"description"`
}

type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}
