/*
Package roster manages the people side of the internship program: intern
profiles, the onboarding lifecycle, cohort batches, roles, absences, and
accomplishment tracking.

KEY CONCEPTS IN THIS FILE (types.go):
  - Person: an intern's accumulated profile
  - Status: the onboarding lifecycle state
  - Batch: a named cohort with a start/end date window
  - Role: an assignable role with one protected default
  - Absence, Task, Accomplishment: supporting records

Totals cached on a Person are exactly that - a cache. The source of truth is
the person's time logs; TotalHoursRendered is overwritten on every
re-aggregation and never hand-edited.

SEE ALSO:
  - status.go: Transition table and lifecycle derivation
  - batch.go: Date-window matching and auto-creation
  - registry.go: Persistence-backed lifecycle operations
*/
package roster

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PERSON
// =============================================================================

type Person struct {
	ID        string
	FirstName string
	LastName  string
	Email     string // verified identity from the auth collaborator
	Admin     bool

	Role     string
	Position string

	HoursNeeded        decimal.Decimal
	TotalHoursRendered decimal.Decimal // cache, recomputed after every log save
	Status             Status
	BatchName          string
	StartDate          time.Time // zero until the person is approved

	Absences []Absence
}

// HoursLeft returns hoursNeeded - totalHoursRendered.
func (p Person) HoursLeft() decimal.Decimal {
	return p.HoursNeeded.Sub(p.TotalHoursRendered)
}

type Absence struct {
	Date   time.Time
	Reason string
}

// =============================================================================
// BATCH - cohort window used to group interns by start date
// =============================================================================

type Batch struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// Contains reports whether day falls inside the batch window, inclusive on
// both ends.
func (b Batch) Contains(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(b.StartDate)) && !d.After(truncateDay(b.EndDate))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// ROLE
// =============================================================================

// DefaultRoleName is the built-in role every intern falls back to. It cannot
// be deleted or renamed.
const DefaultRoleName = "Intern"

type Role struct {
	ID          string
	Name        string
	Description string
}

// IsDefault reports whether this is the protected built-in role.
func (r Role) IsDefault() bool { return r.Name == DefaultRoleName }

// =============================================================================
// TASKS AND ACCOMPLISHMENTS
// =============================================================================

type Task struct {
	ID          string
	Name        string
	Description string
}

type Accomplishment struct {
	ID          string
	OwnerID     string
	TaskID      string
	Title       string
	Description string
	Link        string
	Date        time.Time
}
