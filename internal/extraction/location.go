package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/types"
)

// Accepted captures are strictly longer than minLocationLen and strictly
// shorter than maxLocationLen runes.
const (
	minLocationLen = 2
	maxLocationLen = 50
)

// locationStrategy proposes a location from text. ok is false when the strategy has nothing.
type locationStrategy func(text string) (location string, ok bool)

var (
	labelledLocationPattern = mustCompileSpaced(`(?i)(?:location|address|based in|located in)[:\s]*([^,\n]+)`)
	cityStatePattern        = mustCompileSpaced(`(?i)([^,\n]+),\s*(?:` + strings.Join(catalog.StateSuffixes, "|") + `)`)
	cityOrStatePattern      = mustCompileSpaced(`(?i)(?:city|state)[:\s]*([^,\n]+)`)
)

var lowerCommonLocations = func() []string {
	locs := catalog.CommonLocations()
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = strings.ToLower(l)
	}
	return out
}()

// locationStrategies run in priority order; the first hit wins.
var locationStrategies = []locationStrategy{
	patternStrategy(labelledLocationPattern),
	patternStrategy(cityStatePattern),
	patternStrategy(cityOrStatePattern),
	commonLocationStrategy,
}

// ExtractLocation returns the candidate's location, or types.DefaultLocation when none is found.
func ExtractLocation(text string) string {
	for _, strategy := range locationStrategies {
		if loc, ok := strategy(text); ok {
			return loc
		}
	}
	return types.DefaultLocation
}

func patternStrategy(re *regexp.Regexp) locationStrategy {
	return func(text string) (string, bool) {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := trimSpace(m[1])
			n := utf8.RuneCountInString(candidate)
			if n > minLocationLen && n < maxLocationLen {
				return candidate, true
			}
		}
		return "", false
	}
}

func commonLocationStrategy(text string) (string, bool) {
	lower := strings.ToLower(text)
	locs := catalog.CommonLocations()
	for i, l := range lowerCommonLocations {
		if strings.Contains(lower, l) {
			return locs[i], true
		}
	}
	return "", false
}
