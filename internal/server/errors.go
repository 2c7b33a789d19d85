package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/parsing"
	"github.com/jonathan/talent-match/internal/pipeline"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnavailable indicates a dependency the route needs is not configured
type ErrUnavailable struct {
	Dependency string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s not configured", e.Dependency)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *parsing.ValidationError, validator.ValidationErrors:
		return http.StatusBadRequest
	case *ErrUnavailable:
		return http.StatusServiceUnavailable
	case *pipeline.ParseError:
		if errors.Is(err, db.ErrProfileNotFound) {
			return http.StatusNotFound
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// validationError converts validator output into a single ErrValidation naming the first bad field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag())}
	}
	return &ErrValidation{Message: err.Error()}
}
