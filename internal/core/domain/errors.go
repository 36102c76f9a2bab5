package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP statuses at the REST boundary.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrSoldOut means the chair exists but has no stock left; direct lookups
	// treat it the same as a missing row.
	ErrSoldOut = errors.New("sold out")
	// ErrNoSearchCondition means a search request supplied no recognized facet.
	ErrNoSearchCondition = errors.New("search condition not found")
)

// ValidationError marks a malformed client parameter.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid parameter %q", e.Param)
	}
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// NewValidationError builds a ValidationError for the given parameter.
func NewValidationError(param, reason string) *ValidationError {
	return &ValidationError{Param: param, Reason: reason}
}

// IsClientError reports whether the error should map to a 400 response.
func IsClientError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrNoSearchCondition)
}
