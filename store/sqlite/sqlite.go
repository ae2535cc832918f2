/*
Package sqlite provides the SQLite-backed implementation of the storage
interfaces.

INTERFACES IMPLEMENTED:
  timelog.EntryStore: time-log persistence
  roster.Store:       persons, batches, roles, tasks, accomplishments

KEY TABLES:
  time_logs:        attendance and overtime entries (kind column)
  persons:          intern profiles; absences held as a JSON column,
                    mirroring the original document model
  batches:          cohort windows
  roles:            assignable roles (default "Intern" seeded at startup)
  tasks:            task catalog
  accomplishments:  per-intern accomplishment records

DATA REPRESENTATION:
  Rendered hours and hours-needed are stored as decimal strings, never
  floats. Dates are stored as "2006-01-02"; timestamps as RFC3339.

CONCURRENCY:
  Uses sync.RWMutex for thread safety and opens SQLite in WAL mode. Writes
  are simple last-write-wins; there is no optimistic concurrency token,
  matching the single-operator usage pattern.

USAGE:
  store, err := sqlite.New("./data/internhub.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - timelog/store.go, roster/store.go: interface definitions
  - store/memory: in-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/mghs/internhub/roster"
	"github.com/mghs/internhub/timelog"
)

const dayFormat = "2006-01-02"

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS time_logs (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		log_date TEXT NOT NULL,
		clock_in TEXT NOT NULL,
		clock_out TEXT NOT NULL,
		break_start TEXT NOT NULL,
		break_end TEXT NOT NULL,
		rendered_hours TEXT NOT NULL,
		report TEXT,
		kind TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_time_logs_owner
		ON time_logs(owner_id);
	CREATE INDEX IF NOT EXISTS idx_time_logs_owner_kind
		ON time_logs(owner_id, kind);
	CREATE INDEX IF NOT EXISTS idx_time_logs_date
		ON time_logs(log_date);

	CREATE TABLE IF NOT EXISTS persons (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		admin BOOLEAN DEFAULT FALSE,
		role TEXT,
		position TEXT,
		hours_needed TEXT NOT NULL DEFAULT '0',
		total_hours_rendered TEXT NOT NULL DEFAULT '0',
		status TEXT NOT NULL DEFAULT 'pending',
		batch_name TEXT,
		start_date TEXT,
		absences_json TEXT,
		created_at TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_persons_email
		ON persons(email);
	CREATE INDEX IF NOT EXISTS idx_persons_batch
		ON persons(batch_name);
	CREATE INDEX IF NOT EXISTS idx_persons_role
		ON persons(role);
	CREATE INDEX IF NOT EXISTS idx_persons_status
		ON persons(status);

	CREATE TABLE IF NOT EXISTS batches (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_batches_name
		ON batches(name);

	CREATE TABLE IF NOT EXISTS roles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_roles_name
		ON roles(name);

	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS accomplishments (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		task_id TEXT,
		title TEXT NOT NULL,
		description TEXT,
		link TEXT,
		acc_date TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_accomplishments_owner
		ON accomplishments(owner_id);
	CREATE INDEX IF NOT EXISTS idx_accomplishments_task
		ON accomplishments(task_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// TIME LOGS (timelog.EntryStore interface)
// =============================================================================

// SaveEntry creates or replaces a time log.
func (s *Store) SaveEntry(ctx context.Context, e timelog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT OR REPLACE INTO time_logs
		(id, owner_id, log_date, clock_in, clock_out, break_start, break_end,
		 rendered_hours, report, kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.OwnerID,
		e.Day().Format(dayFormat),
		e.ClockIn.String(),
		e.ClockOut.String(),
		e.BreakStart.String(),
		e.BreakEnd.String(),
		e.RenderedHours.String(),
		e.Report,
		string(e.Kind),
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save time log: %w", err)
	}
	return nil
}

// GetEntry returns a time log by id, or nil when absent.
func (s *Store) GetEntry(ctx context.Context, id string) (*timelog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, owner_id, log_date, clock_in, clock_out, break_start, break_end,
		       rendered_hours, report, kind, created_at
		FROM time_logs WHERE id = ?
	`
	row := s.db.QueryRowContext(ctx, query, id)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEntry removes a time log by id.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM time_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete time log: %w", err)
	}
	return nil
}

// ListEntries returns an owner's time logs ordered by date, optionally
// filtered by kind.
func (s *Store) ListEntries(ctx context.Context, ownerID string, kind timelog.Kind) ([]timelog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, owner_id, log_date, clock_in, clock_out, break_start, break_end,
		       rendered_hours, report, kind, created_at
		FROM time_logs WHERE owner_id = ?
	`
	args := []any{ownerID}
	if kind != "" {
		query += " AND kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY log_date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time logs: %w", err)
	}
	defer rows.Close()

	var entries []timelog.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (timelog.Entry, error) {
	var (
		e             timelog.Entry
		logDate       string
		clockIn       string
		clockOut      string
		breakStart    string
		breakEnd      string
		renderedHours string
		report        sql.NullString
		kind          string
		createdAt     string
	)

	err := row.Scan(&e.ID, &e.OwnerID, &logDate, &clockIn, &clockOut,
		&breakStart, &breakEnd, &renderedHours, &report, &kind, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return e, err
		}
		return e, fmt.Errorf("failed to scan time log: %w", err)
	}

	e.Date, _ = time.Parse(dayFormat, logDate)
	e.ClockIn, _ = timelog.ParseTimeOfDay(clockIn)
	e.ClockOut, _ = timelog.ParseTimeOfDay(clockOut)
	e.BreakStart, _ = timelog.ParseTimeOfDay(breakStart)
	e.BreakEnd, _ = timelog.ParseTimeOfDay(breakEnd)
	e.RenderedHours = parseDecimal(renderedHours)
	e.Report = report.String
	e.Kind = timelog.Kind(kind)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}

// =============================================================================
// PERSONS (roster.PersonStore interface)
// =============================================================================

// SavePerson creates or replaces a person.
func (s *Store) SavePerson(ctx context.Context, p roster.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	absencesJSON, _ := json.Marshal(p.Absences)

	query := `
		INSERT OR REPLACE INTO persons
		(id, first_name, last_name, email, admin, role, position, hours_needed,
		 total_hours_rendered, status, batch_name, start_date, absences_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	startDate := ""
	if !p.StartDate.IsZero() {
		startDate = p.StartDate.Format(dayFormat)
	}

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.FirstName,
		p.LastName,
		p.Email,
		p.Admin,
		nullString(p.Role),
		nullString(p.Position),
		p.HoursNeeded.String(),
		p.TotalHoursRendered.String(),
		string(p.Status),
		nullString(p.BatchName),
		nullString(startDate),
		string(absencesJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

// GetPerson returns a person by id, or nil when absent.
func (s *Store) GetPerson(ctx context.Context, id string) (*roster.Person, error) {
	return s.getPersonWhere(ctx, "id = ?", id)
}

// GetPersonByEmail returns a person by verified email, or nil when absent.
func (s *Store) GetPersonByEmail(ctx context.Context, email string) (*roster.Person, error) {
	return s.getPersonWhere(ctx, "email = ?", email)
}

func (s *Store) getPersonWhere(ctx context.Context, where string, arg any) (*roster.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, personSelect+" WHERE "+where, arg)
	p, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePerson removes a person together with their time logs and
// accomplishments.
func (s *Store) DeletePerson(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var email string
	err := s.db.QueryRowContext(ctx, "SELECT email FROM persons WHERE id = ?", id).Scan(&email)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to load person for delete: %w", err)
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer sqlTx.Rollback()

	if email != "" {
		if _, err := sqlTx.ExecContext(ctx, "DELETE FROM time_logs WHERE owner_id = ?", email); err != nil {
			return fmt.Errorf("failed to delete time logs: %w", err)
		}
		if _, err := sqlTx.ExecContext(ctx, "DELETE FROM accomplishments WHERE owner_id = ?", email); err != nil {
			return fmt.Errorf("failed to delete accomplishments: %w", err)
		}
	}
	if _, err := sqlTx.ExecContext(ctx, "DELETE FROM persons WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	return sqlTx.Commit()
}

// ListPersons returns every person ordered by id.
func (s *Store) ListPersons(ctx context.Context) ([]roster.Person, error) {
	return s.listPersonsWhere(ctx, "", nil)
}

// ListPersonsByBatch returns persons assigned to a batch.
func (s *Store) ListPersonsByBatch(ctx context.Context, batchName string) ([]roster.Person, error) {
	return s.listPersonsWhere(ctx, "WHERE batch_name = ?", []any{batchName})
}

// ListPersonsByRole returns persons holding a role.
func (s *Store) ListPersonsByRole(ctx context.Context, roleName string) ([]roster.Person, error) {
	return s.listPersonsWhere(ctx, "WHERE role = ?", []any{roleName})
}

const personSelect = `
	SELECT id, first_name, last_name, email, admin, role, position, hours_needed,
	       total_hours_rendered, status, batch_name, start_date, absences_json
	FROM persons
`

func (s *Store) listPersonsWhere(ctx context.Context, where string, args []any) ([]roster.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, personSelect+" "+where+" ORDER BY id ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var persons []roster.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

func scanPerson(row rowScanner) (roster.Person, error) {
	var (
		p            roster.Person
		role         sql.NullString
		position     sql.NullString
		hoursNeeded  string
		totalHours   string
		status       string
		batchName    sql.NullString
		startDate    sql.NullString
		absencesJSON sql.NullString
	)

	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Admin,
		&role, &position, &hoursNeeded, &totalHours, &status,
		&batchName, &startDate, &absencesJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return p, err
		}
		return p, fmt.Errorf("failed to scan person: %w", err)
	}

	p.Role = role.String
	p.Position = position.String
	p.HoursNeeded = parseDecimal(hoursNeeded)
	p.TotalHoursRendered = parseDecimal(totalHours)
	p.Status = roster.Status(status)
	p.BatchName = batchName.String
	if startDate.Valid && startDate.String != "" {
		p.StartDate, _ = time.Parse(dayFormat, startDate.String)
	}
	if absencesJSON.Valid && absencesJSON.String != "" {
		json.Unmarshal([]byte(absencesJSON.String), &p.Absences)
	}
	return p, nil
}

// =============================================================================
// BATCHES (roster.BatchStore interface)
// =============================================================================

// SaveBatch creates or replaces a batch.
func (s *Store) SaveBatch(ctx context.Context, b roster.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT OR REPLACE INTO batches (id, name, start_date, end_date)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		b.ID, b.Name, b.StartDate.Format(dayFormat), b.EndDate.Format(dayFormat))
	if err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}
	return nil
}

// GetBatch returns a batch by id, or nil when absent.
func (s *Store) GetBatch(ctx context.Context, id string) (*roster.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, start_date, end_date FROM batches WHERE id = ?", id)
	b, err := scanBatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBatch removes a batch row. Cascading member deletion is owned by
// roster.Registry.
func (s *Store) DeleteBatch(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM batches WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	return nil
}

// ListBatches returns all batches ordered by window start.
func (s *Store) ListBatches(ctx context.Context) ([]roster.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, start_date, end_date FROM batches ORDER BY start_date ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	var batches []roster.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func scanBatch(row rowScanner) (roster.Batch, error) {
	var (
		b         roster.Batch
		startDate string
		endDate   string
	)
	err := row.Scan(&b.ID, &b.Name, &startDate, &endDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return b, err
		}
		return b, fmt.Errorf("failed to scan batch: %w", err)
	}
	b.StartDate, _ = time.Parse(dayFormat, startDate)
	b.EndDate, _ = time.Parse(dayFormat, endDate)
	return b, nil
}

// =============================================================================
// ROLES (roster.RoleStore interface)
// =============================================================================

// SaveRole creates or replaces a role.
func (s *Store) SaveRole(ctx context.Context, r roster.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO roles (id, name, description) VALUES (?, ?, ?)",
		r.ID, r.Name, r.Description)
	if err != nil {
		return fmt.Errorf("failed to save role: %w", err)
	}
	return nil
}

// GetRole returns a role by id, or nil when absent.
func (s *Store) GetRole(ctx context.Context, id string) (*roster.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r roster.Role
	var desc sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM roles WHERE id = ?", id).
		Scan(&r.ID, &r.Name, &desc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan role: %w", err)
	}
	r.Description = desc.String
	return &r, nil
}

// DeleteRole removes a role row. The default-role guard is owned by
// roster.Registry.
func (s *Store) DeleteRole(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM roles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

// ListRoles returns all roles ordered by name.
func (s *Store) ListRoles(ctx context.Context) ([]roster.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description FROM roles ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []roster.Role
	for rows.Next() {
		var r roster.Role
		var desc sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &desc); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		r.Description = desc.String
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

// =============================================================================
// TASKS (roster.TaskStore interface)
// =============================================================================

// SaveTask creates or replaces a task.
func (s *Store) SaveTask(ctx context.Context, t roster.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO tasks (id, name, description) VALUES (?, ?, ?)",
		t.ID, t.Name, t.Description)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// GetTask returns a task by id, or nil when absent.
func (s *Store) GetTask(ctx context.Context, id string) (*roster.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t roster.Task
	var desc sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM tasks WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &desc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}
	t.Description = desc.String
	return &t, nil
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ListTasks returns all tasks ordered by name.
func (s *Store) ListTasks(ctx context.Context) ([]roster.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description FROM tasks ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []roster.Task
	for rows.Next() {
		var t roster.Task
		var desc sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &desc); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t.Description = desc.String
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// =============================================================================
// ACCOMPLISHMENTS (roster.AccomplishmentStore interface)
// =============================================================================

// SaveAccomplishment creates or replaces an accomplishment.
func (s *Store) SaveAccomplishment(ctx context.Context, a roster.Accomplishment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT OR REPLACE INTO accomplishments
		(id, owner_id, task_id, title, description, link, acc_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.OwnerID, nullString(a.TaskID), a.Title,
		nullString(a.Description), nullString(a.Link), a.Date.Format(dayFormat))
	if err != nil {
		return fmt.Errorf("failed to save accomplishment: %w", err)
	}
	return nil
}

// GetAccomplishment returns an accomplishment by id, or nil when absent.
func (s *Store) GetAccomplishment(ctx context.Context, id string) (*roster.Accomplishment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, accomplishmentSelect+" WHERE id = ?", id)
	a, err := scanAccomplishment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAccomplishment removes an accomplishment by id.
func (s *Store) DeleteAccomplishment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM accomplishments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete accomplishment: %w", err)
	}
	return nil
}

// ListAccomplishments returns all accomplishments ordered by date.
func (s *Store) ListAccomplishments(ctx context.Context) ([]roster.Accomplishment, error) {
	return s.listAccomplishmentsWhere(ctx, "", nil)
}

// ListAccomplishmentsByOwner returns an intern's accomplishments.
func (s *Store) ListAccomplishmentsByOwner(ctx context.Context, ownerID string) ([]roster.Accomplishment, error) {
	return s.listAccomplishmentsWhere(ctx, "WHERE owner_id = ?", []any{ownerID})
}

// ListAccomplishmentsByTask returns accomplishments filed under a task.
func (s *Store) ListAccomplishmentsByTask(ctx context.Context, taskID string) ([]roster.Accomplishment, error) {
	return s.listAccomplishmentsWhere(ctx, "WHERE task_id = ?", []any{taskID})
}

const accomplishmentSelect = `
	SELECT id, owner_id, task_id, title, description, link, acc_date
	FROM accomplishments
`

func (s *Store) listAccomplishmentsWhere(ctx context.Context, where string, args []any) ([]roster.Accomplishment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, accomplishmentSelect+" "+where+" ORDER BY acc_date ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accomplishments: %w", err)
	}
	defer rows.Close()

	var accs []roster.Accomplishment
	for rows.Next() {
		a, err := scanAccomplishment(rows)
		if err != nil {
			return nil, err
		}
		accs = append(accs, a)
	}
	return accs, rows.Err()
}

func scanAccomplishment(row rowScanner) (roster.Accomplishment, error) {
	var (
		a       roster.Accomplishment
		taskID  sql.NullString
		desc    sql.NullString
		link    sql.NullString
		accDate string
	)
	err := row.Scan(&a.ID, &a.OwnerID, &taskID, &a.Title, &desc, &link, &accDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, err
		}
		return a, fmt.Errorf("failed to scan accomplishment: %w", err)
	}
	a.TaskID = taskID.String
	a.Description = desc.String
	a.Link = link.String
	a.Date, _ = time.Parse(dayFormat, accDate)
	return a, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
