// Package ranking scores candidates against recruiter requirements and orders them by match.
package ranking

import (
	"math"

	"github.com/jonathan/talent-match/internal/parsing"
	"github.com/jonathan/talent-match/internal/types"
)

// Component weights and per-year experience penalties.
const (
	skillsWeight     = 0.7
	experienceWeight = 0.3

	shortfallPenaltyPerYear = 20.0
	excessPenaltyPerYear    = 10.0

	maxScore = 100.0
)

// Label thresholds, inclusive.
const (
	excellentThreshold = 90
	goodThreshold      = 80
	fairThreshold      = 70
)

// Score computes a candidate's match percentage and label.
//
// A nil skills list on either side means the data is missing and scores zero.
// An empty (non-nil) required list places no constraint on skills.
func Score(candidateSkills, requiredSkills []string, candidateExperience, minExperience, maxExperience int) types.MatchResult {
	if candidateSkills == nil || requiredSkills == nil {
		return types.MatchResult{Percentage: 0, Label: LabelFor(0)}
	}

	skills := computeSkillsScore(candidateSkills, requiredSkills)
	experience := computeExperienceScore(candidateExperience, minExperience, maxExperience)

	total := skills*skillsWeight + experience*experienceWeight
	percentage := int(math.Round(math.Max(0, math.Min(total, maxScore))))

	return types.MatchResult{Percentage: percentage, Label: LabelFor(percentage)}
}

// ScoreCandidate scores a stored profile against search filters.
func ScoreCandidate(profile types.ExtractedProfile, filters types.SearchFilters) types.MatchResult {
	candidateSkills := profile.Skills
	if candidateSkills == nil {
		candidateSkills = []string{}
	}
	return Score(candidateSkills, filters.RequiredSkills, profile.ExperienceYears, filters.MinExperience, filters.MaxExperience)
}

// LabelFor maps a percentage to its label.
func LabelFor(percentage int) types.MatchLabel {
	switch {
	case percentage >= excellentThreshold:
		return types.LabelExcellent
	case percentage >= goodThreshold:
		return types.LabelGood
	case percentage >= fairThreshold:
		return types.LabelFair
	default:
		return types.LabelPoor
	}
}

// computeSkillsScore returns the share (0-100) of required skills covered by at least
// one candidate skill, where either name contains the other ignoring case.
func computeSkillsScore(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return maxScore
	}

	matched := 0
	for _, required := range requiredSkills {
		for _, skill := range candidateSkills {
			if parsing.ContainsEither(skill, required) {
				matched++
				break
			}
		}
	}

	return math.Min(float64(matched)/float64(len(requiredSkills))*100, maxScore)
}

// computeExperienceScore returns 100 inside [minExperience, maxExperience], losing
// 20 points per year short and 10 per year over, floored at 0.
func computeExperienceScore(candidateExperience, minExperience, maxExperience int) float64 {
	switch {
	case candidateExperience >= minExperience && candidateExperience <= maxExperience:
		return maxScore
	case candidateExperience < minExperience:
		return math.Max(0, maxScore-(float64(minExperience)-float64(candidateExperience))*shortfallPenaltyPerYear)
	default:
		return math.Max(0, maxScore-(float64(candidateExperience)-float64(maxExperience))*excessPenaltyPerYear)
	}
}
