package selection

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a booking session is missing or has
// expired from the session store.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError marks a rejected transition or checkout. It is always
// recoverable: the Selection is left exactly as it was.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CatalogUnavailableError wraps a failed catalog fetch. The Selection keeps
// its last known state so the caller can simply retry.
type CatalogUnavailableError struct {
	Err error
}

func (e *CatalogUnavailableError) Error() string {
	return fmt.Sprintf("catalog unavailable: %v", e.Err)
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}
