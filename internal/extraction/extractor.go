// Package extraction derives structured profile attributes (skills, years of experience,
// location, education) from unstructured resume text using deterministic pattern matching.
//
// Extraction never fails: unrecognised input yields zero experience, the default
// location, and empty lists.
package extraction

import (
	"time"

	"github.com/jonathan/talent-match/internal/types"
)

// Extractor turns resume text into an ExtractedProfile. The zero value is not usable;
// construct one with New. An Extractor is safe for concurrent use.
type Extractor struct {
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the clock used to resolve "present" in work history ranges.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithCurrentYear pins the current year, mainly for tests.
func WithCurrentYear(year int) Option {
	return WithClock(func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	})
}

// New returns an Extractor using the wall clock unless overridden.
func New(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// Extract runs all attribute extractors over text using the wall clock.
func Extract(text string) types.ExtractedProfile {
	return defaultExtractor.Extract(text)
}

// Extract runs all attribute extractors over text.
func (e *Extractor) Extract(text string) types.ExtractedProfile {
	return types.ExtractedProfile{
		Skills:          ExtractSkills(text),
		ExperienceYears: e.ExtractExperience(text),
		Location:        ExtractLocation(text),
		Education:       ExtractEducation(text),
	}
}

func (e *Extractor) currentYear() int {
	return e.now().Year()
}
