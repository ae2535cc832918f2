/*
Package timelog provides the core time-log engine.

PURPOSE:
  This package contains the types and algorithms for intern time logging:
  converting clock-in/out and break times into rendered hours, classifying
  a log as attendance or overtime, and aggregating totals per person.

KEY CONCEPTS IN THIS FILE (types.go):
  - TimeOfDay: An hour:minute value anchored to a single reference day
  - Entry: A single day's (or overtime session's) logged work
  - Kind: Attendance vs. Overtime - mutually exclusive
  - Totals: Aggregated rendered hours for one person

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal for rendered hours, never raw floats
  2. Purity: Calculator, classifier, and aggregator are side-effect free
  3. Explicit identity: Every entry carries its OwnerID; there is no
     ambient session inside this package

SEE ALSO:
  - calculator.go: Rendered-hours computation and interval validation
  - classifier.go: Attendance/overtime classification
  - aggregate.go: Totals over entry sets
  - logbook.go: Persistence-backed submission flow
*/
package timelog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TIME OF DAY - hour:minute on a single reference day
// =============================================================================

// TimeOfDay is a clock value with minute resolution. All four time fields of
// an entry are anchored to the same reference day; an end time earlier than a
// start time is a validation error, never an overnight wraparound.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "15:04" formatted input.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q (use HH:MM): %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustTimeOfDay is a test/fixture helper; panics on malformed input.
func MustTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

// MinuteOfDay returns minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int { return t.Hour*60 + t.Minute }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.MinuteOfDay() < o.MinuteOfDay() }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.MinuteOfDay() > o.MinuteOfDay() }

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// =============================================================================
// ENTRY - a single logged work session
// =============================================================================

// Kind distinguishes regular attendance from overtime. An entry is never both.
type Kind string

const (
	KindAttendance Kind = "attendance"
	KindOvertime   Kind = "overtime"
)

// Entry is one logged work session. RenderedHours is derived, never
// user-editable: it is recomputed from the four time fields at every save.
type Entry struct {
	ID         string
	OwnerID    string
	Date       time.Time // day granularity only
	ClockIn    TimeOfDay
	ClockOut   TimeOfDay
	BreakStart TimeOfDay
	BreakEnd   TimeOfDay

	RenderedHours decimal.Decimal
	Report        string // free text, comma-delimited sub-items for display
	Kind          Kind

	CreatedAt time.Time
}

// Day truncates the entry date to day granularity in UTC.
func (e Entry) Day() time.Time {
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// TOTALS - aggregated rendered hours for one person
// =============================================================================

type Totals struct {
	Attendance decimal.Decimal
	Overtime   decimal.Decimal
	Grand      decimal.Decimal
}

// ZeroTotals returns totals for the empty entry set.
func ZeroTotals() Totals {
	return Totals{Attendance: decimal.Zero, Overtime: decimal.Zero, Grand: decimal.Zero}
}
