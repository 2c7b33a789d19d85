package types

// MatchLabel is the qualitative bucket for a match percentage.
type MatchLabel string

const (
	LabelExcellent MatchLabel = "Excellent"
	LabelGood      MatchLabel = "Good"
	LabelFair      MatchLabel = "Fair"
	LabelPoor      MatchLabel = "Poor"
)

// JobType is the recruiter's work-arrangement preference.
type JobType string

const (
	JobTypeAny    JobType = "any"
	JobTypeRemote JobType = "remote"
	JobTypeHybrid JobType = "hybrid"
	JobTypeOnsite JobType = "onsite"
)

// Valid reports whether t is one of the known job types.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeAny, JobTypeRemote, JobTypeHybrid, JobTypeOnsite:
		return true
	default:
		return false
	}
}

// SearchFilters are the recruiter's criteria for a candidate search.
// Location and JobType are carried for display and filtering but do not affect the score.
type SearchFilters struct {
	RequiredSkills []string `json:"required_skills"`
	MinExperience  int      `json:"min_experience"`
	MaxExperience  int      `json:"max_experience"`
	Location       string   `json:"location,omitempty"`
	JobType        JobType  `json:"job_type,omitempty"`
}

// MatchResult is a candidate's score against a set of filters.
type MatchResult struct {
	Percentage int        `json:"percentage"`
	Label      MatchLabel `json:"label"`
}

// RankedCandidate pairs a candidate with its match result.
type RankedCandidate struct {
	Candidate
	Match MatchResult `json:"match"`
}
