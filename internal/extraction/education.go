package extraction

import (
	"regexp"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/parsing"
	"github.com/jonathan/talent-match/internal/types"
)

const matchesPerDegree = 2

// degreePatterns match a degree token and the rest of its line. Tokens are used
// verbatim, so "B.S." also matches "BXSY".
var degreePatterns = func() []*regexp.Regexp {
	tokens := catalog.DegreeTokens()
	out := make([]*regexp.Regexp, len(tokens))
	for i, tok := range tokens {
		out[i] = regexp.MustCompile(`(?i)` + tok + `[^\n]*`)
	}
	return out
}()

// ExtractEducation returns up to three degree lines, at most two per degree token,
// in degree-token order. Each fragment is trimmed and truncated.
func ExtractEducation(text string) []string {
	education := make([]string, 0, types.MaxEducationEntries)
	for _, re := range degreePatterns {
		for _, m := range re.FindAllString(text, matchesPerDegree) {
			if len(education) == types.MaxEducationEntries {
				return education
			}
			fragment := trimSpace(m)
			education = append(education, parsing.TruncateRunes(fragment, types.MaxEducationFragmentLen))
		}
	}
	return education
}
