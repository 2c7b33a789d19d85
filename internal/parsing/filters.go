package parsing

import (
	"strconv"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// Experience buckets offered by the recruiter dashboard.
const (
	ExperienceAny    = ""
	ExperienceJunior = "0-2"
	ExperienceMid    = "3-5"
	ExperienceSenior = "6-10"
	ExperienceLead   = "10+"
)

// ParseExperienceRange converts an experience filter into an inclusive year range.
// Accepted forms are "" or "any" (no constraint), "N-M", "N+" and a bare "N".
func ParseExperienceRange(raw string) (minYears, maxYears int, err error) {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == ExperienceAny || s == "any" {
		return 0, types.MaxExperienceYears, nil
	}

	if strings.HasSuffix(s, "+") {
		n, err := parseYears(strings.TrimSuffix(s, "+"), raw)
		if err != nil {
			return 0, 0, err
		}
		return n, types.MaxExperienceYears, nil
	}

	if lo, hi, ok := strings.Cut(s, "-"); ok {
		minYears, err = parseYears(lo, raw)
		if err != nil {
			return 0, 0, err
		}
		maxYears, err = parseYears(hi, raw)
		if err != nil {
			return 0, 0, err
		}
		if maxYears < minYears {
			return 0, 0, &ValidationError{Field: "experience", Message: "range upper bound is below lower bound: " + raw}
		}
		return minYears, maxYears, nil
	}

	n, err := parseYears(s, raw)
	if err != nil {
		return 0, 0, err
	}
	return n, n, nil
}

func parseYears(s, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > types.MaxExperienceYears {
		return 0, &ValidationError{Field: "experience", Message: "invalid experience range: " + raw}
	}
	return n, nil
}

// ParseJobType normalizes a job type filter. Empty input means any.
func ParseJobType(raw string) (types.JobType, error) {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return types.JobTypeAny, nil
	}
	s = strings.ReplaceAll(s, "-", "")
	jt := types.JobType(s)
	if !jt.Valid() {
		return "", &ValidationError{Field: "job_type", Message: "unknown job type: " + raw}
	}
	return jt, nil
}

// ParseSearchFilters builds SearchFilters from the raw dashboard fields.
func ParseSearchFilters(skills, experience, location, jobType string) (types.SearchFilters, error) {
	minYears, maxYears, err := ParseExperienceRange(experience)
	if err != nil {
		return types.SearchFilters{}, err
	}
	jt, err := ParseJobType(jobType)
	if err != nil {
		return types.SearchFilters{}, err
	}
	return types.SearchFilters{
		RequiredSkills: ParseSkillList(skills),
		MinExperience:  minYears,
		MaxExperience:  maxYears,
		Location:       strings.TrimSpace(location),
		JobType:        jt,
	}, nil
}
