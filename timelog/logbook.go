/*
logbook.go - Persistence-backed submission flow

PURPOSE:
  Logbook ties the pure pieces together over an EntryStore:

    submit -> validate interval -> compute rendered hours -> classify
           -> persist -> re-aggregate owner totals

  Rendered hours are recomputed from the four time fields at every save;
  whatever value arrives on the entry is discarded.

REDIRECT SEMANTICS:
  An attendance submission that classifies as overtime is stored as an
  overtime record and the attendance save is abandoned. The caller receives
  OutcomeRedirected so the UI can warn before confirming success. Edits never
  reclassify: an attendance record stays attendance even if its recomputed
  hours cross the threshold.

FUTURE DATES:
  Attendance must not be dated after today. Overtime carries no such
  restriction.
*/
package timelog

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Logbook is the submission service over an EntryStore.
type Logbook struct {
	store     EntryStore
	threshold decimal.Decimal
	now       func() time.Time
}

// NewLogbook creates a Logbook with the default overtime threshold.
func NewLogbook(store EntryStore) *Logbook {
	return NewLogbookWithThreshold(store, DefaultOvertimeThreshold)
}

// NewLogbookWithThreshold creates a Logbook with a custom daily threshold.
func NewLogbookWithThreshold(store EntryStore, threshold decimal.Decimal) *Logbook {
	return &Logbook{store: store, threshold: threshold, now: time.Now}
}

// SetClock overrides the time source. Intended for tests.
func (l *Logbook) SetClock(now func() time.Time) { l.now = now }

// SubmitResult reports what happened to a submission.
type SubmitResult struct {
	Entry   Entry
	Outcome Outcome
	Totals  Totals
}

// Submit validates, computes, classifies, and persists a new entry, then
// re-aggregates the owner's totals.
func (l *Logbook) Submit(ctx context.Context, e Entry) (*SubmitResult, error) {
	hours, err := ComputeRenderedHours(e.ClockIn, e.ClockOut, e.BreakStart, e.BreakEnd)
	if err != nil {
		return nil, err
	}

	requested := e.Kind
	if requested == "" {
		requested = KindAttendance
	}

	kind := requested
	if requested == KindAttendance {
		// Classification fires on creation only, and only redirects
		// attendance upward; overtime submissions are taken as-is.
		kind = Classify(hours, l.threshold)
	}

	if kind == KindAttendance && e.Day().After(l.today()) {
		return nil, ErrFutureDate
	}

	e.Kind = kind
	e.RenderedHours = hours
	if e.CreatedAt.IsZero() {
		e.CreatedAt = l.now().UTC()
	}

	if err := l.store.SaveEntry(ctx, e); err != nil {
		return nil, &PersistenceError{Op: "save time log", Err: err}
	}

	totals, err := l.TotalsFor(ctx, e.OwnerID)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{Entry: e, Outcome: outcomeFor(requested, kind), Totals: totals}, nil
}

// Update recomputes and replaces an existing entry. Only the owner may edit.
// The entry keeps its kind: edits never reclassify.
func (l *Logbook) Update(ctx context.Context, id, ownerID string, e Entry) (*SubmitResult, error) {
	existing, err := l.store.GetEntry(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "load time log", Err: err}
	}
	if existing == nil {
		return nil, ErrEntryNotFound
	}
	if existing.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	hours, err := ComputeRenderedHours(e.ClockIn, e.ClockOut, e.BreakStart, e.BreakEnd)
	if err != nil {
		return nil, err
	}

	if existing.Kind == KindAttendance && e.Day().After(l.today()) {
		return nil, ErrFutureDate
	}

	updated := *existing
	updated.Date = e.Date
	updated.ClockIn = e.ClockIn
	updated.ClockOut = e.ClockOut
	updated.BreakStart = e.BreakStart
	updated.BreakEnd = e.BreakEnd
	updated.Report = e.Report
	updated.RenderedHours = hours

	if err := l.store.SaveEntry(ctx, updated); err != nil {
		return nil, &PersistenceError{Op: "update time log", Err: err}
	}

	totals, err := l.TotalsFor(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	outcome := OutcomeAttendance
	if updated.Kind == KindOvertime {
		outcome = OutcomeOvertime
	}
	return &SubmitResult{Entry: updated, Outcome: outcome, Totals: totals}, nil
}

// Delete removes an entry. Only the owner may delete.
func (l *Logbook) Delete(ctx context.Context, id, ownerID string) (Totals, error) {
	existing, err := l.store.GetEntry(ctx, id)
	if err != nil {
		return ZeroTotals(), &PersistenceError{Op: "load time log", Err: err}
	}
	if existing == nil {
		return ZeroTotals(), ErrEntryNotFound
	}
	if existing.OwnerID != ownerID {
		return ZeroTotals(), ErrNotOwner
	}

	if err := l.store.DeleteEntry(ctx, id); err != nil {
		return ZeroTotals(), &PersistenceError{Op: "delete time log", Err: err}
	}
	return l.TotalsFor(ctx, ownerID)
}

// TotalsFor re-reads and sums every entry belonging to an owner.
func (l *Logbook) TotalsFor(ctx context.Context, ownerID string) (Totals, error) {
	entries, err := l.store.ListEntries(ctx, ownerID, "")
	if err != nil {
		return ZeroTotals(), &PersistenceError{Op: fmt.Sprintf("list time logs for %s", ownerID), Err: err}
	}
	attendance, overtime := Partition(entries)
	return Aggregate(attendance, overtime), nil
}

func (l *Logbook) today() time.Time {
	now := l.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
