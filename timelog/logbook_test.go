package timelog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mghs/internhub/store/memory"
	"github.com/mghs/internhub/timelog"
)

var testClock = func() time.Time {
	return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
}

func newTestLogbook() (*timelog.Logbook, *memory.Store) {
	store := memory.New()
	lb := timelog.NewLogbook(store)
	lb.SetClock(testClock)
	return lb, store
}

func entryFor(owner, day string, clockIn, clockOut, breakStart, breakEnd string) timelog.Entry {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return timelog.Entry{
		ID:         "log-" + owner + "-" + day + "-" + clockIn,
		OwnerID:    owner,
		Date:       d,
		ClockIn:    timelog.MustTimeOfDay(clockIn),
		ClockOut:   timelog.MustTimeOfDay(clockOut),
		BreakStart: timelog.MustTimeOfDay(breakStart),
		BreakEnd:   timelog.MustTimeOfDay(breakEnd),
	}
}

func TestSubmitAttendance(t *testing.T) {
	lb, _ := newTestLogbook()

	res, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-28", "09:00", "18:00", "12:00", "13:00"))
	require.NoError(t, err)

	assert.Equal(t, timelog.OutcomeAttendance, res.Outcome)
	assert.Equal(t, timelog.KindAttendance, res.Entry.Kind)
	assert.Equal(t, "8", res.Entry.RenderedHours.String())
	assert.Equal(t, "8", res.Totals.Grand.String())
}

func TestSubmitRedirectsLongAttendanceToOvertime(t *testing.T) {
	lb, store := newTestLogbook()

	res, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-28", "08:00", "20:00", "12:00", "13:00"))
	require.NoError(t, err)

	assert.Equal(t, timelog.OutcomeRedirected, res.Outcome)
	assert.Equal(t, timelog.KindOvertime, res.Entry.Kind)
	assert.Equal(t, "11", res.Entry.RenderedHours.String())

	// The attendance save is abandoned; only the overtime record exists.
	attendance, err := store.ListEntries(context.Background(), "amy@example.com", timelog.KindAttendance)
	require.NoError(t, err)
	assert.Empty(t, attendance)

	overtime, err := store.ListEntries(context.Background(), "amy@example.com", timelog.KindOvertime)
	require.NoError(t, err)
	assert.Len(t, overtime, 1)
}

func TestSubmitExplicitOvertimeIsNeverRedirected(t *testing.T) {
	lb, _ := newTestLogbook()

	e := entryFor("amy@example.com", "2026-08-28", "18:00", "21:00", "18:00", "18:00")
	e.Kind = timelog.KindOvertime

	res, err := lb.Submit(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, timelog.OutcomeOvertime, res.Outcome)
	assert.Equal(t, timelog.KindOvertime, res.Entry.Kind)
	assert.Equal(t, "3", res.Entry.RenderedHours.String())
}

func TestSubmitRejectsFutureAttendance(t *testing.T) {
	lb, _ := newTestLogbook()

	_, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-09-01", "09:00", "18:00", "12:00", "13:00"))
	assert.ErrorIs(t, err, timelog.ErrFutureDate)
}

func TestSubmitAllowsFutureOvertime(t *testing.T) {
	lb, _ := newTestLogbook()

	e := entryFor("amy@example.com", "2026-09-05", "18:00", "20:00", "18:00", "18:00")
	e.Kind = timelog.KindOvertime

	_, err := lb.Submit(context.Background(), e)
	assert.NoError(t, err)
}

func TestSubmitRejectsInvalidInterval(t *testing.T) {
	lb, store := newTestLogbook()

	_, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-28", "18:00", "09:00", "18:00", "18:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, timelog.ErrInvalidInterval)

	// Nothing was written.
	entries, err := store.ListEntries(context.Background(), "amy@example.com", "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateKeepsKindEvenAcrossThreshold(t *testing.T) {
	lb, _ := newTestLogbook()

	res, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-28", "09:00", "17:00", "12:00", "13:00"))
	require.NoError(t, err)
	require.Equal(t, timelog.KindAttendance, res.Entry.Kind)

	// Stretch the same record past the threshold via an edit.
	edited := entryFor("amy@example.com", "2026-08-28", "08:00", "20:00", "12:00", "13:00")
	updated, err := lb.Update(context.Background(), res.Entry.ID, "amy@example.com", edited)
	require.NoError(t, err)

	assert.Equal(t, timelog.KindAttendance, updated.Entry.Kind)
	assert.Equal(t, "11", updated.Entry.RenderedHours.String())
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	lb, _ := newTestLogbook()

	res, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-28", "09:00", "17:00", "12:00", "13:00"))
	require.NoError(t, err)

	edited := entryFor("bob@example.com", "2026-08-28", "09:00", "18:00", "12:00", "13:00")
	_, err = lb.Update(context.Background(), res.Entry.ID, "bob@example.com", edited)
	assert.ErrorIs(t, err, timelog.ErrNotOwner)
}

func TestUpdateMissingEntry(t *testing.T) {
	lb, _ := newTestLogbook()

	edited := entryFor("amy@example.com", "2026-08-28", "09:00", "18:00", "12:00", "13:00")
	_, err := lb.Update(context.Background(), "log-missing", "amy@example.com", edited)
	assert.ErrorIs(t, err, timelog.ErrEntryNotFound)
}

func TestDeleteReturnsRecomputedTotals(t *testing.T) {
	lb, _ := newTestLogbook()

	first, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-27", "09:00", "18:00", "12:00", "13:00"))
	require.NoError(t, err)
	_, err = lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-28", "09:00", "17:00", "12:00", "13:00"))
	require.NoError(t, err)

	totals, err := lb.Delete(context.Background(), first.Entry.ID, "amy@example.com")
	require.NoError(t, err)
	assert.Equal(t, "7", totals.Grand.String())
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	lb, _ := newTestLogbook()

	res, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-28", "09:00", "17:00", "12:00", "13:00"))
	require.NoError(t, err)

	_, err = lb.Delete(context.Background(), res.Entry.ID, "bob@example.com")
	assert.True(t, errors.Is(err, timelog.ErrNotOwner))
}

func TestTotalsForMixesBothKinds(t *testing.T) {
	lb, _ := newTestLogbook()

	_, err := lb.Submit(context.Background(), entryFor("amy@example.com", "2026-08-27", "09:00", "18:00", "12:00", "13:00"))
	require.NoError(t, err)

	ot := entryFor("amy@example.com", "2026-08-27", "18:00", "21:00", "18:00", "18:00")
	ot.Kind = timelog.KindOvertime
	_, err = lb.Submit(context.Background(), ot)
	require.NoError(t, err)

	totals, err := lb.TotalsFor(context.Background(), "amy@example.com")
	require.NoError(t, err)
	assert.Equal(t, "8", totals.Attendance.String())
	assert.Equal(t, "3", totals.Overtime.String())
	assert.Equal(t, "11", totals.Grand.String())
}
