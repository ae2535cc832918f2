package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mghs/internhub/roster"
	"github.com/mghs/internhub/store/memory"
)

var testClock = func() time.Time {
	return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
}

func newTestRegistry(t *testing.T) (*roster.Registry, *memory.Store) {
	t.Helper()
	store := memory.New()
	reg := roster.NewRegistry(store)
	reg.SetClock(testClock)
	return reg, store
}

func seedPerson(t *testing.T, store *memory.Store, p roster.Person) {
	t.Helper()
	require.NoError(t, store.SavePerson(context.Background(), p))
}

func pendingIntern(id string) roster.Person {
	return roster.Person{
		ID:          id,
		FirstName:   "Amy",
		LastName:    "Santos",
		Email:       id + "@example.com",
		Role:        roster.DefaultRoleName,
		HoursNeeded: decimal.NewFromInt(500),
		Status:      roster.StatusPending,
	}
}

// =============================================================================
// TRANSITIONS
// =============================================================================

func TestApprovalStampsStartDateAndAssignsBatch(t *testing.T) {
	reg, store := newTestRegistry(t)
	seedPerson(t, store, pendingIntern("p1"))

	p, err := reg.Transition(context.Background(), "p1", roster.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, roster.StatusApproved, p.Status)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, "Batch-2026-08", p.BatchName)

	// The batch was auto-created with the expected five-day window.
	batches, err := store.ListBatches(context.Background())
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), batches[0].EndDate)
}

func TestSecondApprovalInWindowReusesBatch(t *testing.T) {
	reg, store := newTestRegistry(t)
	seedPerson(t, store, pendingIntern("p1"))
	seedPerson(t, store, pendingIntern("p2"))

	_, err := reg.Transition(context.Background(), "p1", roster.StatusApproved)
	require.NoError(t, err)
	p2, err := reg.Transition(context.Background(), "p2", roster.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, "Batch-2026-08", p2.BatchName)

	batches, err := store.ListBatches(context.Background())
	require.NoError(t, err)
	assert.Len(t, batches, 1, "no duplicate batch inside the same window")
}

func TestIllegalTransitionIsRejected(t *testing.T) {
	reg, store := newTestRegistry(t)
	seedPerson(t, store, pendingIntern("p1"))

	_, err := reg.Transition(context.Background(), "p1", roster.StatusOffboarded)
	require.Error(t, err)
	assert.ErrorIs(t, err, roster.ErrPolicyConflict)

	var tErr *roster.TransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, roster.StatusPending, tErr.From)

	// Nothing was written.
	p, err := store.GetPerson(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, roster.StatusPending, p.Status)
}

func TestTransitionUnknownStatus(t *testing.T) {
	reg, store := newTestRegistry(t)
	seedPerson(t, store, pendingIntern("p1"))

	_, err := reg.Transition(context.Background(), "p1", roster.Status("fired"))
	assert.ErrorIs(t, err, roster.ErrPolicyConflict)
}

func TestTransitionMissingPerson(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Transition(context.Background(), "ghost", roster.StatusApproved)
	assert.ErrorIs(t, err, roster.ErrPersonNotFound)
}

func TestBackoutIsTerminal(t *testing.T) {
	reg, store := newTestRegistry(t)
	seedPerson(t, store, pendingIntern("p1"))

	_, err := reg.Transition(context.Background(), "p1", roster.StatusBackout)
	require.NoError(t, err)

	_, err = reg.Transition(context.Background(), "p1", roster.StatusApproved)
	assert.ErrorIs(t, err, roster.ErrPolicyConflict)
}

// =============================================================================
// AUTOMATIC OFFBOARDING
// =============================================================================

func TestRecordHoursTriggersOffboarding(t *testing.T) {
	reg, store := newTestRegistry(t)

	p := pendingIntern("p1")
	p.Status = roster.StatusApproved
	seedPerson(t, store, p)

	// 500 needed, 459 rendered: 41 left, still approved.
	updated, err := reg.RecordHours(context.Background(), "p1", decimal.NewFromInt(459))
	require.NoError(t, err)
	assert.Equal(t, roster.StatusApproved, updated.Status)

	// 461 rendered: 39 left, inside the margin.
	updated, err = reg.RecordHours(context.Background(), "p1", decimal.NewFromInt(461))
	require.NoError(t, err)
	assert.Equal(t, roster.StatusOffboarding, updated.Status)
	assert.Equal(t, "461", updated.TotalHoursRendered.String())

	// Deleting logs afterwards never reverts the ratchet.
	updated, err = reg.RecordHours(context.Background(), "p1", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, roster.StatusOffboarding, updated.Status)
}

func TestRecordHoursLeavesPendingAlone(t *testing.T) {
	reg, store := newTestRegistry(t)
	seedPerson(t, store, pendingIntern("p1"))

	updated, err := reg.RecordHours(context.Background(), "p1", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, roster.StatusPending, updated.Status)
}

// =============================================================================
// BATCHES
// =============================================================================

func TestReassignAll(t *testing.T) {
	reg, store := newTestRegistry(t)

	p1 := pendingIntern("p1")
	p1.Status = roster.StatusApproved
	p1.StartDate = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	p1.BatchName = "Batch-stale"
	seedPerson(t, store, p1)

	admin := pendingIntern("boss")
	admin.Admin = true
	admin.StartDate = p1.StartDate
	seedPerson(t, store, admin)

	noStart := pendingIntern("p2")
	seedPerson(t, store, noStart)

	require.NoError(t, store.SaveBatch(context.Background(), roster.Batch{
		ID:        "b1",
		Name:      "Batch-2026-08",
		StartDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	}))

	updated, err := reg.ReassignAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	p, err := store.GetPerson(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Batch-2026-08", p.BatchName)

	// Idempotent: a second run changes nothing.
	updated, err = reg.ReassignAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestDeleteBatchCascadesMembers(t *testing.T) {
	reg, store := newTestRegistry(t)

	require.NoError(t, store.SaveBatch(context.Background(), roster.Batch{
		ID:        "b1",
		Name:      "Batch-2026-08",
		StartDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	}))

	member := pendingIntern("p1")
	member.BatchName = "Batch-2026-08"
	seedPerson(t, store, member)

	outsider := pendingIntern("p2")
	outsider.BatchName = "Batch-2026-07"
	seedPerson(t, store, outsider)

	require.NoError(t, reg.DeleteBatch(context.Background(), "b1"))

	gone, err := store.GetPerson(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := store.GetPerson(context.Background(), "p2")
	require.NoError(t, err)
	assert.NotNil(t, kept)

	batches, err := store.ListBatches(context.Background())
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestDeleteBatchMissing(t *testing.T) {
	reg, _ := newTestRegistry(t)
	assert.ErrorIs(t, reg.DeleteBatch(context.Background(), "ghost"), roster.ErrBatchNotFound)
}

// =============================================================================
// ROLES
// =============================================================================

func TestEnsureDefaultRoleIsIdempotent(t *testing.T) {
	reg, store := newTestRegistry(t)

	require.NoError(t, reg.EnsureDefaultRole(context.Background()))
	require.NoError(t, reg.EnsureDefaultRole(context.Background()))

	roles, err := store.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.True(t, roles[0].IsDefault())
}

func TestDefaultRoleCannotBeDeletedOrRenamed(t *testing.T) {
	reg, store := newTestRegistry(t)
	require.NoError(t, reg.EnsureDefaultRole(context.Background()))

	roles, err := store.ListRoles(context.Background())
	require.NoError(t, err)
	defaultRole := roles[0]

	err = reg.DeleteRole(context.Background(), defaultRole.ID)
	assert.ErrorIs(t, err, roster.ErrDefaultRoleProtected)

	err = reg.UpdateRole(context.Background(), defaultRole.ID, roster.Role{Name: "Trainee"})
	assert.ErrorIs(t, err, roster.ErrDefaultRoleProtected)

	// Re-describing without renaming is fine.
	err = reg.UpdateRole(context.Background(), defaultRole.ID, roster.Role{
		Name:        roster.DefaultRoleName,
		Description: "updated",
	})
	assert.NoError(t, err)
}

func TestDeleteRoleReassignsMembersToDefault(t *testing.T) {
	reg, store := newTestRegistry(t)
	require.NoError(t, reg.EnsureDefaultRole(context.Background()))
	require.NoError(t, store.SaveRole(context.Background(), roster.Role{ID: "r1", Name: "QA"}))

	member := pendingIntern("p1")
	member.Role = "QA"
	seedPerson(t, store, member)

	require.NoError(t, reg.DeleteRole(context.Background(), "r1"))

	p, err := store.GetPerson(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, roster.DefaultRoleName, p.Role)

	role, err := store.GetRole(context.Background(), "r1")
	require.NoError(t, err)
	assert.Nil(t, role)
}

// =============================================================================
// ABSENCES
// =============================================================================

func TestRecordAbsenceDefaultsReason(t *testing.T) {
	reg, store := newTestRegistry(t)
	seedPerson(t, store, pendingIntern("p1"))

	p, err := reg.RecordAbsence(context.Background(), "p1", roster.Absence{
		Date: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, p.Absences, 1)
	assert.Equal(t, "No reason provided", p.Absences[0].Reason)
}

func TestRemoveAbsence(t *testing.T) {
	reg, store := newTestRegistry(t)
	seedPerson(t, store, pendingIntern("p1"))

	_, err := reg.RecordAbsence(context.Background(), "p1", roster.Absence{
		Date: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), Reason: "sick",
	})
	require.NoError(t, err)
	_, err = reg.RecordAbsence(context.Background(), "p1", roster.Absence{
		Date: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), Reason: "travel",
	})
	require.NoError(t, err)

	p, err := reg.RemoveAbsence(context.Background(), "p1", 0)
	require.NoError(t, err)
	require.Len(t, p.Absences, 1)
	assert.Equal(t, "travel", p.Absences[0].Reason)

	_, err = reg.RemoveAbsence(context.Background(), "p1", 5)
	assert.Error(t, err)
}
