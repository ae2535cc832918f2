/*
registry.go - Persistence-backed lifecycle operations

PURPOSE:
  Registry wires the pure lifecycle rules (status.go, batch.go) to the
  stores. It owns every multi-record operation:

    - manual status transitions, including the approval side effects
      (StartDate stamp, batch auto-assignment)
    - the automatic offboarding check after hours are recorded
    - batch deletion cascades and bulk window re-assignment
    - the protected default role rules

PARTIAL FAILURE:
  The person's status update and the batch-assignment writes are independent
  operations; a failed batch write does not roll back the status change.
  This matches observed behavior and stays safe because re-running
  assignment only matches by date window (at-least-once idempotent).
*/
package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Registry is the lifecycle service over a roster Store.
type Registry struct {
	store Store
	now   func() time.Time
}

// NewRegistry creates a Registry.
func NewRegistry(store Store) *Registry {
	return &Registry{store: store, now: time.Now}
}

// SetClock overrides the time source. Intended for tests.
func (r *Registry) SetClock(now func() time.Time) { r.now = now }

// =============================================================================
// LIFECYCLE TRANSITIONS
// =============================================================================

// Transition applies a manual admin status change. Approval stamps the start
// date and assigns a batch; illegal transitions are rejected with a
// TransitionError and nothing is written.
func (r *Registry) Transition(ctx context.Context, personID string, to Status) (*Person, error) {
	if !ValidStatus(to) {
		return nil, fmt.Errorf("unknown status %q: %w", to, ErrPolicyConflict)
	}

	p, err := r.store.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPersonNotFound
	}

	if !p.Status.CanTransition(to) {
		return nil, &TransitionError{PersonID: personID, From: p.Status, To: to}
	}

	p.Status = to
	if to == StatusApproved {
		p.StartDate = r.today()
	}

	if err := r.store.SavePerson(ctx, *p); err != nil {
		return nil, err
	}

	// Batch assignment is deliberately outside the status write: if it
	// fails, the approval stands and assignment can be re-run.
	if to == StatusApproved {
		if _, err := r.AssignBatch(ctx, p); err != nil {
			return p, err
		}
	}

	return p, nil
}

// RecordHours persists a freshly aggregated grand total onto the person and
// applies the automatic offboarding rule. Called every time attendance or
// overtime is recorded.
func (r *Registry) RecordHours(ctx context.Context, personID string, grandTotal decimal.Decimal) (*Person, error) {
	p, err := r.store.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPersonNotFound
	}

	p.TotalHoursRendered = grandTotal
	p.Status = DeriveStatus(p.Status, p.HoursNeeded, grandTotal)

	if err := r.store.SavePerson(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// =============================================================================
// BATCH ASSIGNMENT
// =============================================================================

// AssignBatch places a person into the batch whose window covers their start
// date, creating the batch when none exists, and persists the updated
// person. Returns the assigned batch name.
func (r *Registry) AssignBatch(ctx context.Context, p *Person) (string, error) {
	batches, err := r.store.ListBatches(ctx)
	if err != nil {
		return "", err
	}

	day := p.StartDate
	if day.IsZero() {
		day = r.today()
	}

	batch := FindBatchFor(batches, day)
	if batch == nil {
		created := NewBatchFor(day)
		created.ID = fmt.Sprintf("batch-%d", r.now().UnixNano())
		if err := r.store.SaveBatch(ctx, created); err != nil {
			return "", err
		}
		batch = &created
	}

	p.BatchName = batch.Name
	if err := r.store.SavePerson(ctx, *p); err != nil {
		return batch.Name, err
	}
	return batch.Name, nil
}

// ReassignAll re-derives every intern's batch name from the current batch
// windows. Safe to re-run at any time; interns whose start date matches no
// window keep their current batch name.
func (r *Registry) ReassignAll(ctx context.Context) (int, error) {
	batches, err := r.store.ListBatches(ctx)
	if err != nil {
		return 0, err
	}
	persons, err := r.store.ListPersons(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, p := range persons {
		if p.Admin || p.StartDate.IsZero() {
			continue
		}
		batch := FindBatchFor(batches, p.StartDate)
		if batch == nil || batch.Name == p.BatchName {
			continue
		}
		p.BatchName = batch.Name
		if err := r.store.SavePerson(ctx, p); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// DeleteBatch removes a batch and every intern assigned to it, matching the
// original cascade. The person deletes happen first so a failure leaves the
// batch (and a re-runnable cascade) in place.
func (r *Registry) DeleteBatch(ctx context.Context, batchID string) error {
	b, err := r.store.GetBatch(ctx, batchID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBatchNotFound
	}

	members, err := r.store.ListPersonsByBatch(ctx, b.Name)
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := r.store.DeletePerson(ctx, m.ID); err != nil {
			return err
		}
	}

	return r.store.DeleteBatch(ctx, batchID)
}

// =============================================================================
// ROLES
// =============================================================================

// EnsureDefaultRole creates the built-in role when missing. Called at startup.
func (r *Registry) EnsureDefaultRole(ctx context.Context) error {
	roles, err := r.store.ListRoles(ctx)
	if err != nil {
		return err
	}
	for _, role := range roles {
		if role.IsDefault() {
			return nil
		}
	}
	return r.store.SaveRole(ctx, Role{
		ID:          "role-intern",
		Name:        DefaultRoleName,
		Description: "Default role for all interns.",
	})
}

// UpdateRole renames or re-describes a role. Renaming the default role is a
// policy conflict.
func (r *Registry) UpdateRole(ctx context.Context, roleID string, updated Role) error {
	existing, err := r.store.GetRole(ctx, roleID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRoleNotFound
	}
	if existing.IsDefault() && updated.Name != DefaultRoleName {
		return ErrDefaultRoleProtected
	}

	updated.ID = roleID
	return r.store.SaveRole(ctx, updated)
}

// DeleteRole removes a role after moving its members back to the default
// role. Deleting the default role itself is a policy conflict.
func (r *Registry) DeleteRole(ctx context.Context, roleID string) error {
	role, err := r.store.GetRole(ctx, roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	if role.IsDefault() {
		return ErrDefaultRoleProtected
	}

	members, err := r.store.ListPersonsByRole(ctx, role.Name)
	if err != nil {
		return err
	}
	for _, m := range members {
		m.Role = DefaultRoleName
		if err := r.store.SavePerson(ctx, m); err != nil {
			return err
		}
	}

	return r.store.DeleteRole(ctx, roleID)
}

// =============================================================================
// ABSENCES
// =============================================================================

// RecordAbsence appends an absence to a person's record.
func (r *Registry) RecordAbsence(ctx context.Context, personID string, a Absence) (*Person, error) {
	p, err := r.store.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPersonNotFound
	}

	if a.Reason == "" {
		a.Reason = "No reason provided"
	}
	p.Absences = append(p.Absences, a)

	if err := r.store.SavePerson(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveAbsence deletes an absence by position.
func (r *Registry) RemoveAbsence(ctx context.Context, personID string, index int) (*Person, error) {
	p, err := r.store.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPersonNotFound
	}
	if index < 0 || index >= len(p.Absences) {
		return nil, fmt.Errorf("absence index %d out of range", index)
	}

	p.Absences = append(p.Absences[:index], p.Absences[index+1:]...)

	if err := r.store.SavePerson(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Registry) today() time.Time {
	now := r.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
