/*
errors.go - Error types for the time-log engine

ERROR CATEGORIES:
  1. Validation errors - malformed or mis-ordered time fields
  2. Persistence errors - the backing store rejected a read/write
  3. Ownership errors - entry does not belong to the caller

Validation failures carry the full list of human-readable messages so the
caller can surface all of them at once; the save is aborted with no partial
write.
*/
package timelog

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInterval is the sentinel behind every ValidationError.
	ErrInvalidInterval = errors.New("invalid time interval")

	// ErrFutureDate is returned when an attendance entry is dated after today.
	ErrFutureDate = errors.New("attendance date is in the future")

	// ErrEntryNotFound is returned when a referenced entry doesn't exist.
	ErrEntryNotFound = errors.New("time log not found")

	// ErrNotOwner is returned when an entry is edited or deleted by someone
	// other than the person it belongs to.
	ErrNotOwner = errors.New("time log belongs to another person")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ValidationError reports every interval-ordering rule an entry violates.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid time fields: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInterval }

// PersistenceError wraps a store failure. No automatic retry is attempted;
// the caller is expected to surface a generic failure notice.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInterval) ||
		errors.Is(err, ErrFutureDate) ||
		errors.Is(err, ErrNotOwner)
}
