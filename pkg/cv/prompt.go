package cv

import (
	"fmt"
	"strings"
)

// promptTemplate is a versioned contract with Normalize: the field list and
// the skill category set below must stay in lockstep with Record and
// SkillCategories.
const promptTemplate = `You are an expert CV parser. Extract structured information from the resume text below.

Return ONLY one valid JSON object. No markdown, no code fences, no explanation before or after. Use "" for missing strings and [] for missing lists. Do not invent facts that are not in the resume; if no profile image is mentioned, leave it out entirely.

Required JSON structure:
{
  "name": "",
  "position": "",
  "professional_summary": "",
  "experience_years": "",
  "linkedin": "",
  "github": "",
  "skills": {
%s  },
  "experience": [{"company": "", "role": "", "start": "", "end": "", "description": [""]}],
  "projects": [{"title": "", "tech": "", "description": ""}],
  "awards": [],
  "education": [],
  "certifications": [],
  "keywords": [],
  "contact": {"email": "", "phone": "", "location": ""}
}

Rules:
- professional_summary: at most 50 words.
- skills: use exactly the category names shown above, every category present even when its list is empty, no other categories.
- experience.description: always an array of strings, one accomplishment per entry.
- experience_years: keep as written in the resume (free text is fine).
- contact.email: copy verbatim from the resume when present.

Resume text:
"""
%s
"""`

// BuildPrompt renders the fixed instruction template with the extracted CV
// text appended verbatim at the end. Deterministic: same text, same prompt.
func BuildPrompt(text string) string {
	var cats strings.Builder
	for i, c := range SkillCategories {
		cats.WriteString(`    "` + c + `": []`)
		if i < len(SkillCategories)-1 {
			cats.WriteByte(',')
		}
		cats.WriteByte('\n')
	}
	return fmt.Sprintf(promptTemplate, cats.String(), text)
}
