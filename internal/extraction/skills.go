package extraction

import (
	"strings"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/parsing"
	"github.com/jonathan/talent-match/internal/types"
)

type catalogSkill struct {
	name       string
	lower      string
	variations []string
}

var catalogSkills = buildCatalogSkills()

// skillSectionPattern captures a "Skills:"-style heading and everything up to the next blank line.
var skillSectionPattern = mustCompileSpaced(`(?i)(?:skills|technologies|technical skills|programming languages|tools)[:\s]*([\s\S]*?)(?:\n\s*\n|$)`)

func buildCatalogSkills() []catalogSkill {
	names := catalog.Skills()
	out := make([]catalogSkill, len(names))
	for i, name := range names {
		out[i] = catalogSkill{
			name:       name,
			lower:      strings.ToLower(name),
			variations: parsing.SkillVariations(name),
		}
	}
	return out
}

// ExtractSkills returns the catalog skills mentioned in text, in catalog order,
// capped at types.MaxSkills. Matching is case-insensitive substring matching, so
// short names like "C" or "R" match inside ordinary words.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]bool, len(catalogSkills))

	for i, skill := range catalogSkills {
		for _, v := range skill.variations {
			if strings.Contains(lower, v) {
				found[i] = true
				break
			}
		}
	}

	for _, section := range skillSectionPattern.FindAllString(text, -1) {
		sectionLower := strings.ToLower(section)
		for i, skill := range catalogSkills {
			if !found[i] && strings.Contains(sectionLower, skill.lower) {
				found[i] = true
			}
		}
	}

	skills := make([]string, 0, types.MaxSkills)
	for i, skill := range catalogSkills {
		if !found[i] {
			continue
		}
		skills = append(skills, skill.name)
		if len(skills) == types.MaxSkills {
			break
		}
	}
	return skills
}
