// Package parsing provides text normalization helpers shared by extraction and scoring,
// plus parsers for the recruiter dashboard's filter strings.
package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SkillVariations returns the lower-cased forms a skill may take in resume text:
// as written, without periods, without whitespace, and without hyphens.
// Duplicate forms are collapsed.
func SkillVariations(skill string) []string {
	lower := strings.ToLower(skill)
	candidates := []string{
		lower,
		strings.ReplaceAll(lower, ".", ""),
		whitespaceRun.ReplaceAllString(lower, ""),
		strings.ReplaceAll(lower, "-", ""),
	}

	out := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// ContainsEither reports whether either string contains the other, ignoring case.
func ContainsEither(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// TruncateRunes shortens s to at most limit runes.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// ParseSkillList splits a comma-separated skills filter into trimmed, non-empty entries.
// Entries differing only by case are kept once, first spelling wins.
func ParseSkillList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		skill := strings.TrimSpace(p)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	return out
}
