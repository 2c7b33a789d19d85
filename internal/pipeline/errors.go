package pipeline

import (
	"fmt"

	"github.com/google/uuid"
)

// ParseError reports a failed resume parse. Callers surface it as the single
// user-visible "failed to parse resume" condition; Step and Cause are for logs.
type ParseError struct {
	UserID uuid.UUID
	Step   Step
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse resume: %s: %v", e.Step, e.Cause)
	}
	return fmt.Sprintf("failed to parse resume: %s", e.Step)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
