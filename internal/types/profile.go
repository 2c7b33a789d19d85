// Package types provides type definitions for structured data used throughout the talent-match system.
package types

import (
	"github.com/google/uuid"
)

// Profile bounds.
const (
	MaxSkills               = 15
	MaxExperienceYears      = 50
	MaxEducationEntries     = 3
	MaxEducationFragmentLen = 150
	DefaultLocation         = "Remote"
)

// ExtractedProfile is the structured attribute set derived from a resume's text.
type ExtractedProfile struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Location        string   `json:"location"`
	Education       []string `json:"education"`
}

// Candidate is a job seeker whose profile can be scored against recruiter filters.
type Candidate struct {
	UserID   uuid.UUID        `json:"user_id"`
	FullName string           `json:"full_name,omitempty"`
	Profile  ExtractedProfile `json:"profile"`
}

// ParseResult is returned after a resume has been parsed and stored.
type ParseResult struct {
	ExtractedProfile
	TextLength int `json:"text_length"`
}

// Normalized returns a copy with nil lists replaced by empty ones, so the profile
// serializes with [] rather than null.
func (p ExtractedProfile) Normalized() ExtractedProfile {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Education == nil {
		p.Education = []string{}
	}
	return p
}
