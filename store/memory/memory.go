// Package memory provides an in-memory store implementation for tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mghs/internhub/roster"
	"github.com/mghs/internhub/timelog"
)

// =============================================================================
// MEMORY STORE - implements timelog.EntryStore and roster.Store
// =============================================================================

type Store struct {
	mu              sync.RWMutex
	entries         map[string]timelog.Entry
	persons         map[string]roster.Person
	batches         map[string]roster.Batch
	roles           map[string]roster.Role
	tasks           map[string]roster.Task
	accomplishments map[string]roster.Accomplishment
}

func New() *Store {
	return &Store{
		entries:         make(map[string]timelog.Entry),
		persons:         make(map[string]roster.Person),
		batches:         make(map[string]roster.Batch),
		roles:           make(map[string]roster.Role),
		tasks:           make(map[string]roster.Task),
		accomplishments: make(map[string]roster.Accomplishment),
	}
}

// =============================================================================
// TIME LOG ENTRIES
// =============================================================================

func (s *Store) SaveEntry(_ context.Context, e timelog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = e
	return nil
}

func (s *Store) GetEntry(_ context.Context, id string) (*timelog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (s *Store) DeleteEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *Store) ListEntries(_ context.Context, ownerID string, kind timelog.Kind) ([]timelog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []timelog.Entry
	for _, e := range s.entries {
		if e.OwnerID != ownerID {
			continue
		}
		if kind != "" && e.Kind != kind {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

// =============================================================================
// PERSONS
// =============================================================================

func (s *Store) SavePerson(_ context.Context, p roster.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons[p.ID] = p
	return nil
}

func (s *Store) GetPerson(_ context.Context, id string) (*roster.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.persons[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *Store) GetPersonByEmail(_ context.Context, email string) (*roster.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.persons {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) DeletePerson(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.persons, id)
	return nil
}

func (s *Store) ListPersons(_ context.Context) ([]roster.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedPersons(func(roster.Person) bool { return true }), nil
}

func (s *Store) ListPersonsByBatch(_ context.Context, batchName string) ([]roster.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedPersons(func(p roster.Person) bool { return p.BatchName == batchName }), nil
}

func (s *Store) ListPersonsByRole(_ context.Context, roleName string) ([]roster.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedPersons(func(p roster.Person) bool { return p.Role == roleName }), nil
}

func (s *Store) sortedPersons(match func(roster.Person) bool) []roster.Person {
	var result []roster.Person
	for _, p := range s.persons {
		if match(p) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// =============================================================================
// BATCHES
// =============================================================================

func (s *Store) SaveBatch(_ context.Context, b roster.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[b.ID] = b
	return nil
}

func (s *Store) GetBatch(_ context.Context, id string) (*roster.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.batches[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (s *Store) DeleteBatch(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, id)
	return nil
}

func (s *Store) ListBatches(_ context.Context) ([]roster.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []roster.Batch
	for _, b := range s.batches {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}

// =============================================================================
// ROLES
// =============================================================================

func (s *Store) SaveRole(_ context.Context, r roster.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[r.ID] = r
	return nil
}

func (s *Store) GetRole(_ context.Context, id string) (*roster.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.roles[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s *Store) DeleteRole(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roles, id)
	return nil
}

func (s *Store) ListRoles(_ context.Context) ([]roster.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []roster.Role
	for _, r := range s.roles {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// =============================================================================
// TASKS
// =============================================================================

func (s *Store) SaveTask(_ context.Context, t roster.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = t
	return nil
}

func (s *Store) GetTask(_ context.Context, id string) (*roster.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tasks[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (s *Store) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, id)
	return nil
}

func (s *Store) ListTasks(_ context.Context) ([]roster.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []roster.Task
	for _, t := range s.tasks {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// =============================================================================
// ACCOMPLISHMENTS
// =============================================================================

func (s *Store) SaveAccomplishment(_ context.Context, a roster.Accomplishment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accomplishments[a.ID] = a
	return nil
}

func (s *Store) GetAccomplishment(_ context.Context, id string) (*roster.Accomplishment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.accomplishments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (s *Store) DeleteAccomplishment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accomplishments, id)
	return nil
}

func (s *Store) ListAccomplishments(_ context.Context) ([]roster.Accomplishment, error) {
	return s.listAccomplishments(func(roster.Accomplishment) bool { return true }), nil
}

func (s *Store) ListAccomplishmentsByOwner(_ context.Context, ownerID string) ([]roster.Accomplishment, error) {
	return s.listAccomplishments(func(a roster.Accomplishment) bool { return a.OwnerID == ownerID }), nil
}

func (s *Store) ListAccomplishmentsByTask(_ context.Context, taskID string) ([]roster.Accomplishment, error) {
	return s.listAccomplishments(func(a roster.Accomplishment) bool { return a.TaskID == taskID }), nil
}

func (s *Store) listAccomplishments(match func(roster.Accomplishment) bool) []roster.Accomplishment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []roster.Accomplishment
	for _, a := range s.accomplishments {
		if match(a) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}
