package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ExtractRequest asks for attributes to be extracted from raw resume text.
// Empty text is accepted and yields the default profile.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse is the extraction result with the size of the analysed text.
type ExtractResponse struct {
	Profile    ExtractedProfile `json:"profile"`
	TextLength int              `json:"text_length"`
}

// MatchRequest scores one candidate's attributes against recruiter requirements.
// A missing skills list (as opposed to an empty one) yields a zero score.
type MatchRequest struct {
	CandidateSkills     []string `json:"candidate_skills"`
	RequiredSkills      []string `json:"required_skills"`
	CandidateExperience int      `json:"candidate_experience" validate:"gte=0"`
	MinExperience       int      `json:"min_experience" validate:"gte=0"`
	MaxExperience       int      `json:"max_experience" validate:"gte=0,gtefield=MinExperience"`
}

// ParseResumeRequest asks for a stored resume to be fetched, parsed, and saved to a user's profile.
type ParseResumeRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	ResumeURL string `json:"resume_url" validate:"required,url"`
}

// ParseResumeResponse mirrors the shape returned to the upload flow.
type ParseResumeResponse struct {
	Success bool         `json:"success"`
	Data    *ParseResult `json:"data,omitempty"`
}

// SearchRequest is the recruiter dashboard's candidate search.
// Skills is comma separated; Experience is a bucket such as "3-5" or "10+".
type SearchRequest struct {
	Skills        string `json:"skills"`
	Experience    string `json:"experience" validate:"omitempty,oneof=0-2 3-5 6-10 10+"`
	Location      string `json:"location,omitempty"`
	JobType       string `json:"job_type,omitempty" validate:"omitempty,oneof=any remote hybrid onsite"`
	Limit         int    `json:"limit,omitempty" validate:"gte=0,lte=500"`
	MinPercentage int    `json:"min_percentage,omitempty" validate:"gte=0,lte=100"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ParseResumeRequest using the validator.
func (r *ParseResumeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	return validate.Struct(r)
}
