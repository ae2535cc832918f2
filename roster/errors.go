/*
errors.go - Error types for roster operations

Policy conflicts (illegal lifecycle transitions, touching the protected
default role) are explicit rejections surfaced to the caller; nothing here is
silently swallowed.
*/
package roster

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - use with errors.Is()
// =============================================================================

var (
	// ErrPersonNotFound is returned when a referenced person doesn't exist.
	ErrPersonNotFound = errors.New("person not found")

	// ErrBatchNotFound is returned when a referenced batch doesn't exist.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrRoleNotFound is returned when a referenced role doesn't exist.
	ErrRoleNotFound = errors.New("role not found")

	// ErrTaskNotFound is returned when a referenced task doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAccomplishmentNotFound is returned when a referenced accomplishment
	// doesn't exist.
	ErrAccomplishmentNotFound = errors.New("accomplishment not found")

	// ErrPolicyConflict is the sentinel behind every rejected policy action.
	ErrPolicyConflict = errors.New("policy conflict")

	// ErrDefaultRoleProtected is returned on attempts to delete or rename
	// the built-in default role.
	ErrDefaultRoleProtected = errors.New("cannot delete or rename the default built-in role")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// TransitionError reports a lifecycle transition the state machine forbids.
type TransitionError struct {
	PersonID string
	From     Status
	To       Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition %s from %s to %s", e.PersonID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrPolicyConflict }

// IsNotFound reports whether the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPersonNotFound) ||
		errors.Is(err, ErrBatchNotFound) ||
		errors.Is(err, ErrRoleNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrAccomplishmentNotFound)
}
