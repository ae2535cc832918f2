/*
store.go - Persistence interfaces for roster records

All records are owned by the persistence collaborator; the roster package
operates on values passed in and returns values to be persisted. Writes are
simple read-then-write with last-write-wins, matching the single-operator
usage pattern. No interface here wraps multiple writes in a transaction;
multi-record operations (batch deletion cascades, bulk re-assignment) are
sequences of independent writes that are safe to re-run.
*/
package roster

import "context"

// PersonStore handles persistence of intern profiles keyed by opaque id.
type PersonStore interface {
	SavePerson(ctx context.Context, p Person) error
	GetPerson(ctx context.Context, id string) (*Person, error)
	GetPersonByEmail(ctx context.Context, email string) (*Person, error)
	DeletePerson(ctx context.Context, id string) error

	// ListPersons returns every person. Filters are applied by callers; the
	// roster is small enough that the store stays dumb.
	ListPersons(ctx context.Context) ([]Person, error)
	ListPersonsByBatch(ctx context.Context, batchName string) ([]Person, error)
	ListPersonsByRole(ctx context.Context, roleName string) ([]Person, error)
}

// BatchStore handles persistence of cohort batches.
type BatchStore interface {
	SaveBatch(ctx context.Context, b Batch) error
	GetBatch(ctx context.Context, id string) (*Batch, error)
	DeleteBatch(ctx context.Context, id string) error
	ListBatches(ctx context.Context) ([]Batch, error)
}

// RoleStore handles persistence of roles.
type RoleStore interface {
	SaveRole(ctx context.Context, r Role) error
	GetRole(ctx context.Context, id string) (*Role, error)
	DeleteRole(ctx context.Context, id string) error
	ListRoles(ctx context.Context) ([]Role, error)
}

// TaskStore handles persistence of the task catalog.
type TaskStore interface {
	SaveTask(ctx context.Context, t Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context) ([]Task, error)
}

// AccomplishmentStore handles persistence of accomplishment records.
type AccomplishmentStore interface {
	SaveAccomplishment(ctx context.Context, a Accomplishment) error
	GetAccomplishment(ctx context.Context, id string) (*Accomplishment, error)
	DeleteAccomplishment(ctx context.Context, id string) error
	ListAccomplishments(ctx context.Context) ([]Accomplishment, error)
	ListAccomplishmentsByOwner(ctx context.Context, ownerID string) ([]Accomplishment, error)
	ListAccomplishmentsByTask(ctx context.Context, taskID string) ([]Accomplishment, error)
}

// Store is the full persistence surface the Registry operates over.
type Store interface {
	PersonStore
	BatchStore
	RoleStore
	TaskStore
	AccomplishmentStore
}
