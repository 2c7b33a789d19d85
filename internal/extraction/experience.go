package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// earliestWorkYear bounds inferred work history; older ranges are almost always
// graduation years or noise.
const earliestWorkYear = 1990

// Explicit statements such as "5+ years of experience" or "Experience: 7 years".
var explicitExperiencePatterns = []*regexp.Regexp{
	mustCompileSpaced(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	mustCompileSpaced(`(?i)(?:experience|exp)[:\s]*(\d+)\+?\s*years?`),
	mustCompileSpaced(`(?i)(\d+)\+?\s*yrs?\s*(?:of\s*)?(?:experience|exp)`),
	mustCompileSpaced(`(?i)(?:total|overall)\s*(?:experience|exp)[:\s]*(\d+)\+?\s*years?`),
}

// Year ranges such as "2018 - 2021", "2019 – Present", "from 2015 to 2020".
var workPeriodPatterns = []*regexp.Regexp{
	mustCompileSpaced(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current)`),
	mustCompileSpaced(`(?i)(\d{4})\s*[-–—]\s*(\d{4})`),
	mustCompileSpaced(`(?i)(?:from\s*)?(\d{4})\s*(?:to\s*)?(\d{4}|present|current)`),
}

// WorkPeriod is an employment interval in whole years.
type WorkPeriod struct {
	Start int
	End   int
}

// ExtractExperience returns the candidate's years of experience in [0, 50].
// Explicit statements win; when none are found the total is inferred from work history.
func (e *Extractor) ExtractExperience(text string) int {
	years := explicitExperience(text)
	if years == 0 {
		years = MergedYears(e.WorkPeriods(text))
	}
	return min(years, types.MaxExperienceYears)
}

// explicitExperience returns the largest stated value not above the cap.
// Larger values are skipped rather than clamped.
func explicitExperience(text string) int {
	best := 0
	for _, re := range explicitExperiencePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n > types.MaxExperienceYears {
				continue
			}
			best = max(best, n)
		}
	}
	return best
}

// WorkPeriods returns every plausible year range found in text, unsorted and possibly
// overlapping. "present" and "current" resolve to the extractor's current year.
func (e *Extractor) WorkPeriods(text string) []WorkPeriod {
	currentYear := e.currentYear()
	var periods []WorkPeriod

	for _, re := range workPeriodPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}

			var end int
			switch strings.ToLower(m[2]) {
			case "present", "current":
				end = currentYear
			default:
				end, err = strconv.Atoi(m[2])
				if err != nil {
					continue
				}
			}

			if start < earliestWorkYear || start > currentYear || end < start || end > currentYear {
				continue
			}
			periods = append(periods, WorkPeriod{Start: start, End: end})
		}
	}
	return periods
}

// MergedYears sums the years covered by periods, counting overlapping spans once.
// The result is capped at 50.
func MergedYears(periods []WorkPeriod) int {
	if len(periods) == 0 {
		return 0
	}

	sorted := append([]WorkPeriod(nil), periods...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	total, lastEnd := 0, 0
	for _, p := range sorted {
		start := max(p.Start, lastEnd)
		if p.End > start {
			total += p.End - start
			lastEnd = p.End
		}
	}
	return min(total, types.MaxExperienceYears)
}
