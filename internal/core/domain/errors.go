package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services. Storage-level failures are always
// translated into one of these (or a ValidationError) before leaving a
// service; raw driver errors never cross the core boundary.
var (
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrEmailTaken = errors.New("email already in use")
	ErrPhoneTaken = errors.New("phone already in use")
	ErrDuplicate  = errors.New("resource already exists")

	// ErrInvalidReference marks a rejected foreign-key reference.
	ErrInvalidReference = errors.New("invalid reference to related resource")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("insufficient privileges")
)

// ValidationError reports malformed or out-of-range input, including unknown
// patch fields. Fields names the offending field(s) when known.
type ValidationError struct {
	Reason string
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

// NewValidationError builds a ValidationError for the given fields.
func NewValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Reason: reason, Fields: fields}
}
