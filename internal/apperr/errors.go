// Package apperr holds the error outcomes shared by the domain packages.
// The request layer maps them to transport status codes; the domain code
// never deals with statuses.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record does not exist or is not visible
	// to the requesting owner.
	ErrNotFound = errors.New("not found")

	// ErrIndexOutOfRange is returned by positional operations on ordered lists
	// (e.g. removing the n-th food of a meal) when the index is invalid.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrConflictRetryable signals that a record changed between read and
	// write. The whole read-modify-write cycle can be safely retried.
	ErrConflictRetryable = errors.New("concurrent modification, retry")
)

// ValidationError means a field violates a domain constraint.
// It is never retried.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

func Invalidf(field, format string, args ...any) error {
	return Invalid(field, fmt.Sprintf(format, args...))
}

// AsValidation returns the validation error wrapped in err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// WithFieldPrefix re-scopes a validation error to a nested field, e.g.
// "quantity" becomes "foods[2].quantity". Other errors are returned unchanged.
func WithFieldPrefix(prefix string, err error) error {
	vErr, ok := AsValidation(err)
	if !ok {
		return err
	}
	return &ValidationError{
		Field:  prefix + "." + vErr.Field,
		Reason: vErr.Reason,
	}
}

func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflictRetryable)
}
