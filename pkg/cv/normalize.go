package cv

import "strings"

// Normalize coerces a parsed model object into the canonical Record shape.
// It is total: malformed shapes are coerced, never rejected. Missing scalars
// become "", missing sequences become empty, every skill category from the
// closed set is present and categories outside it are dropped.
//
// The 50-word cap on professional_summary is a prompt-level instruction to
// the model; Normalize only guarantees the field exists as a string.
func Normalize(obj map[string]any) Record {
	if obj == nil {
		obj = map[string]any{}
	}
	rec := Record{
		Name:                asString(obj["name"]),
		Position:            asString(obj["position"]),
		ProfessionalSummary: asString(obj["professional_summary"]),
		ExperienceYears:     asString(obj["experience_years"]),
		LinkedIn:            asString(obj["linkedin"]),
		GitHub:              asString(obj["github"]),
		Skills:              normalizeSkills(obj["skills"]),
		Experience:          normalizeExperience(obj["experience"]),
		Projects:            normalizeProjects(obj["projects"]),
		Awards:              asAnySlice(obj["awards"]),
		Education:           asAnySlice(obj["education"]),
		Certifications:      asAnySlice(obj["certifications"]),
		Keywords:            asAnySlice(obj["keywords"]),
		Contact:             normalizeContact(obj["contact"]),
	}
	return rec
}

// IdentityKey returns the normalized owner key used for portfolio
// deduplication: the contact email, lower-cased and trimmed.
func (r Record) IdentityKey() string {
	return strings.ToLower(strings.TrimSpace(r.Contact.Email))
}

func normalizeSkills(v any) map[string][]string {
	out := make(map[string][]string, len(SkillCategories))
	for _, c := range SkillCategories {
		out[c] = []string{}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for _, c := range SkillCategories {
		if raw, ok := m[c]; ok {
			out[c] = asStringSlice(raw)
		}
	}
	return out
}

func normalizeExperience(v any) []ExperienceItem {
	items := asAnySlice(v)
	out := make([]ExperienceItem, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, ExperienceItem{
			Company: asString(m["company"]),
			Role:    asString(m["role"]),
			Start:   asString(m["start"]),
			End:     asString(m["end"]),
			// The model is inconsistent here: sometimes a string, sometimes
			// a list. Canonical form is a list.
			Description: asStringSlice(m["description"]),
		})
	}
	return out
}

func normalizeProjects(v any) []Project {
	items := asAnySlice(v)
	out := make([]Project, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Project{
			Title:       asString(m["title"]),
			Tech:        asString(m["tech"]),
			Description: asString(m["description"]),
		})
	}
	return out
}

func normalizeContact(v any) Contact {
	m, _ := v.(map[string]any)
	return Contact{
		Email:    asString(m["email"]),
		Phone:    asString(m["phone"]),
		Location: asString(m["location"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asAnySlice(v any) []any {
	s, ok := v.([]any)
	if !ok {
		return []any{}
	}
	return s
}

// asStringSlice accepts either a list or a bare string (coerced to a
// single-element slice); non-string list entries are skipped.
func asStringSlice(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return []string{}
		}
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
