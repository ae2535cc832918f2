/*
store.go - Persistence interface for time-log entries

PURPOSE:
  Defines the boundary between the time-log engine and the database. The
  engine operates on values passed in and returns values to be persisted; it
  holds no state of its own between calls.

CONCURRENCY:
  Reads and writes are simple read-then-write with last-write-wins. There is
  no optimistic concurrency token; concurrent edits to the same entry are an
  accepted risk of the single-admin-operator usage pattern.

IMPLEMENTATIONS:
  - store/sqlite: production store
  - store/memory: in-memory store for tests
*/
package timelog

import "context"

// EntryStore handles persistence of time-log entries keyed by opaque id.
type EntryStore interface {
	// SaveEntry creates or replaces an entry.
	SaveEntry(ctx context.Context, e Entry) error

	// GetEntry returns an entry by id, or nil when absent.
	GetEntry(ctx context.Context, id string) (*Entry, error)

	// DeleteEntry removes an entry by id.
	DeleteEntry(ctx context.Context, id string) error

	// ListEntries returns all entries belonging to an owner, optionally
	// filtered by kind (empty kind = both), ordered by date.
	ListEntries(ctx context.Context, ownerID string, kind Kind) ([]Entry, error)
}
