package queue

import "errors"

// PermanentError marks a job failure that retrying cannot fix. The message is
// dropped instead of requeued.
type PermanentError struct {
	Cause error
}

func (e *PermanentError) Error() string {
	return "permanent job failure: " + e.Cause.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Cause
}

// Permanent wraps err as a PermanentError. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Cause: err}
}

// IsPermanent reports whether err or anything it wraps is a PermanentError.
func IsPermanent(err error) bool {
	var permErr *PermanentError
	return errors.As(err, &permErr)
}
