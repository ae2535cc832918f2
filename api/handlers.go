/*
handlers.go - HTTP handlers for the intern management API

PURPOSE:
  Implements the REST endpoints over the timelog and roster services. Every
  handler follows the same shape:

    decode -> validate -> call service -> convert to DTO -> respond

IDENTITY:
  Time-log ownership is keyed by the person's email, carried in the
  X-User-Email header on log edits and deletes. The auth layer upstream is
  expected to have verified it; this service only enforces ownership.

ERROR MAPPING:
  - validation failures (field tags or time-interval rules) -> 400
  - missing records -> 404
  - ownership violations -> 403
  - policy conflicts (illegal transitions, protected role) -> 409
  - everything else -> 500 with a generic message

SEE ALSO:
  - dto.go: Request/response types
  - server.go: Route registration
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mghs/internhub/roster"
	"github.com/mghs/internhub/timelog"
)

// userHeader carries the verified email of the calling user.
const userHeader = "X-User-Email"

// Datastore is the combined persistence surface the API serves from.
type Datastore interface {
	timelog.EntryStore
	roster.Store
}

// Handler holds the services and dependencies shared by all endpoints.
type Handler struct {
	log      *zap.Logger
	store    Datastore
	logbook  *timelog.Logbook
	registry *roster.Registry
	validate *validator.Validate
	now      func() time.Time
}

// NewHandler creates a Handler over the given store.
func NewHandler(log *zap.Logger, store Datastore, logbook *timelog.Logbook, registry *roster.Registry) *Handler {
	return &Handler{
		log:      log,
		store:    store,
		logbook:  logbook,
		registry: registry,
		validate: validator.New(),
		now:      time.Now,
	}
}

// SetClock overrides the time source. Intended for tests.
func (h *Handler) SetClock(now func() time.Time) { h.now = now }

func (h *Handler) newID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, h.now().UnixNano())
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var vErr *timelog.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid time fields",
			Code:    "invalid_interval",
			Details: vErr.Messages,
		})
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request body",
			Code:    "invalid_body",
			Details: details,
		})
		return
	}

	switch {
	case errors.Is(err, timelog.ErrNotOwner):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error(), Code: "not_owner"})
	case errors.Is(err, timelog.ErrEntryNotFound) || roster.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
	case errors.Is(err, roster.ErrPolicyConflict) || errors.Is(err, roster.ErrDefaultRoleProtected):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "policy_conflict"})
	case timelog.IsClientError(err):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "bad_request"})
	default:
		h.log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "internal"})
	}
}

// decode unmarshals and tag-validates a request body.
func (h *Handler) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("malformed JSON body: %w", timelog.ErrInvalidInterval)
	}
	return h.validate.Struct(v)
}

// =============================================================================
// HEALTH
// =============================================================================

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// INTERNS
// =============================================================================

func (h *Handler) ListInterns(w http.ResponseWriter, r *http.Request) {
	persons, err := h.store.ListPersons(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	dtos := make([]PersonDTO, 0, len(persons))
	for _, p := range persons {
		dtos = append(dtos, toPersonDTO(p))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateIntern(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	role := req.Role
	if role == "" {
		role = roster.DefaultRoleName
	}
	id := req.ID
	if id == "" {
		id = h.newID("person")
	}

	p := roster.Person{
		ID:                 id,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Role:               role,
		Position:           req.Position,
		HoursNeeded:        decimal.NewFromFloat(req.HoursNeeded),
		TotalHoursRendered: decimal.Zero,
		Status:             roster.StatusPending,
	}
	if err := h.store.SavePerson(r.Context(), p); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPersonDTO(p))
}

func (h *Handler) GetIntern(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadPerson(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonDTO(*p))
}

func (h *Handler) UpdateIntern(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadPerson(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req UpdatePersonRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	p.FirstName = req.FirstName
	p.LastName = req.LastName
	p.Position = req.Position
	p.HoursNeeded = decimal.NewFromFloat(req.HoursNeeded)
	if req.Role != "" {
		p.Role = req.Role
	}

	if err := h.store.SavePerson(r.Context(), *p); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonDTO(*p))
}

func (h *Handler) DeleteIntern(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadPerson(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.store.DeletePerson(r.Context(), p.ID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) TransitionIntern(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	p, err := h.registry.Transition(r.Context(), chi.URLParam(r, "id"), roster.Status(req.Status))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonDTO(*p))
}

func (h *Handler) InternSummary(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadPerson(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	totals, err := h.logbook.TotalsFor(r.Context(), p.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(*p, totals))
}

func (h *Handler) loadPerson(r *http.Request) (*roster.Person, error) {
	p, err := h.store.GetPerson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, roster.ErrPersonNotFound
	}
	return p, nil
}

// =============================================================================
// TIME LOGS
// =============================================================================

func (h *Handler) ListInternLogs(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadPerson(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	kind := timelog.Kind(r.URL.Query().Get("kind"))
	entries, err := h.store.ListEntries(r.Context(), p.Email, kind)
	if err != nil {
		h.writeError(w, err)
		return
	}
	dtos := make([]TimeLogDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, toTimeLogDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) SubmitInternLog(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadPerson(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req SubmitLogRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	entry, err := h.entryFromRequest(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	entry.ID = h.newID("log")
	entry.OwnerID = p.Email

	res, err := h.logbook.Submit(r.Context(), entry)
	if err != nil {
		h.writeError(w, err)
		return
	}

	// Totals are pushed back onto the profile so the automatic offboarding
	// rule runs on every save.
	updated, err := h.registry.RecordHours(r.Context(), p.ID, res.Totals.Grand)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SubmitLogResponse{
		Log:     toTimeLogDTO(res.Entry),
		Outcome: string(res.Outcome),
		Totals:  toSummaryDTO(*updated, res.Totals),
	})
}

func (h *Handler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	owner := r.Header.Get(userHeader)
	if owner == "" {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "missing " + userHeader + " header", Code: "no_identity"})
		return
	}

	var req SubmitLogRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	entry, err := h.entryFromRequest(req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	res, err := h.logbook.Update(r.Context(), chi.URLParam(r, "id"), owner, entry)
	if err != nil {
		h.writeError(w, err)
		return
	}

	updated, err := h.recordHoursByEmail(r, owner, res.Totals)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmitLogResponse{
		Log:     toTimeLogDTO(res.Entry),
		Outcome: string(res.Outcome),
		Totals:  toSummaryDTO(*updated, res.Totals),
	})
}

func (h *Handler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	owner := r.Header.Get(userHeader)
	if owner == "" {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "missing " + userHeader + " header", Code: "no_identity"})
		return
	}

	totals, err := h.logbook.Delete(r.Context(), chi.URLParam(r, "id"), owner)
	if err != nil {
		h.writeError(w, err)
		return
	}

	updated, err := h.recordHoursByEmail(r, owner, totals)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(*updated, totals))
}

func (h *Handler) entryFromRequest(req SubmitLogRequest) (timelog.Entry, error) {
	day, err := parseDay(req.Date)
	if err != nil {
		return timelog.Entry{}, &timelog.ValidationError{Messages: []string{"date must be YYYY-MM-DD"}}
	}

	fields := [4]string{req.ClockIn, req.ClockOut, req.BreakStart, req.BreakEnd}
	var times [4]timelog.TimeOfDay
	var msgs []string
	for i, s := range fields {
		tod, err := timelog.ParseTimeOfDay(s)
		if err != nil {
			msgs = append(msgs, err.Error())
			continue
		}
		times[i] = tod
	}
	if len(msgs) > 0 {
		return timelog.Entry{}, &timelog.ValidationError{Messages: msgs}
	}

	return timelog.Entry{
		Date:       day,
		ClockIn:    times[0],
		ClockOut:   times[1],
		BreakStart: times[2],
		BreakEnd:   times[3],
		Report:     req.Report,
		Kind:       timelog.Kind(req.Kind),
	}, nil
}

func (h *Handler) recordHoursByEmail(r *http.Request, email string, totals timelog.Totals) (*roster.Person, error) {
	p, err := h.store.GetPersonByEmail(r.Context(), email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, roster.ErrPersonNotFound
	}
	return h.registry.RecordHours(r.Context(), p.ID, totals.Grand)
}

// =============================================================================
// ABSENCES
// =============================================================================

func (h *Handler) RecordAbsence(w http.ResponseWriter, r *http.Request) {
	var req AbsenceRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	day, err := parseDay(req.Date)
	if err != nil {
		h.writeError(w, &timelog.ValidationError{Messages: []string{"date must be YYYY-MM-DD"}})
		return
	}

	p, err := h.registry.RecordAbsence(r.Context(), chi.URLParam(r, "id"), roster.Absence{Date: day, Reason: req.Reason})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPersonDTO(*p))
}

func (h *Handler) RemoveAbsence(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.writeError(w, &timelog.ValidationError{Messages: []string{"absence index must be an integer"}})
		return
	}

	p, err := h.registry.RemoveAbsence(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonDTO(*p))
}

// =============================================================================
// BATCHES
// =============================================================================

func (h *Handler) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.store.ListBatches(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	dtos := make([]BatchDTO, 0, len(batches))
	for _, b := range batches {
		dtos = append(dtos, toBatchDTO(b))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	b, err := h.batchFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	b.ID = h.newID("batch")

	if err := h.store.SaveBatch(r.Context(), b); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBatchDTO(b))
}

func (h *Handler) UpdateBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.store.GetBatch(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if existing == nil {
		h.writeError(w, roster.ErrBatchNotFound)
		return
	}

	b, err := h.batchFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	b.ID = id

	if err := h.store.SaveBatch(r.Context(), b); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchDTO(b))
}

func (h *Handler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.DeleteBatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) ReassignBatches(w http.ResponseWriter, r *http.Request) {
	updated, err := h.registry.ReassignAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

func (h *Handler) batchFromRequest(r *http.Request) (roster.Batch, error) {
	var req BatchRequest
	if err := h.decode(r, &req); err != nil {
		return roster.Batch{}, err
	}

	start, err := parseDay(req.StartDate)
	if err != nil {
		return roster.Batch{}, &timelog.ValidationError{Messages: []string{"start_date must be YYYY-MM-DD"}}
	}
	end, err := parseDay(req.EndDate)
	if err != nil {
		return roster.Batch{}, &timelog.ValidationError{Messages: []string{"end_date must be YYYY-MM-DD"}}
	}
	if end.Before(start) {
		return roster.Batch{}, &timelog.ValidationError{Messages: []string{"end_date is before start_date"}}
	}

	return roster.Batch{Name: req.Name, StartDate: start, EndDate: end}, nil
}

// =============================================================================
// ROLES
// =============================================================================

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.store.ListRoles(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	dtos := make([]RoleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, toRoleDTO(role))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	role := roster.Role{ID: h.newID("role"), Name: req.Name, Description: req.Description}
	if err := h.store.SaveRole(r.Context(), role); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoleDTO(role))
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	role := roster.Role{Name: req.Name, Description: req.Description}
	if err := h.registry.UpdateRole(r.Context(), id, role); err != nil {
		h.writeError(w, err)
		return
	}
	role.ID = id
	writeJSON(w, http.StatusOK, toRoleDTO(role))
}

func (h *Handler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.DeleteRole(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// =============================================================================
// TASKS
// =============================================================================

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, TaskDTO{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	t := roster.Task{ID: h.newID("task"), Name: req.Name, Description: req.Description}
	if err := h.store.SaveTask(r.Context(), t); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, TaskDTO{ID: t.ID, Name: t.Name, Description: t.Description})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.store.GetTask(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if existing == nil {
		h.writeError(w, roster.ErrTaskNotFound)
		return
	}

	var req TaskRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	t := roster.Task{ID: id, Name: req.Name, Description: req.Description}
	if err := h.store.SaveTask(r.Context(), t); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TaskDTO{ID: t.ID, Name: t.Name, Description: t.Description})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.store.GetTask(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if existing == nil {
		h.writeError(w, roster.ErrTaskNotFound)
		return
	}
	if err := h.store.DeleteTask(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// =============================================================================
// ACCOMPLISHMENTS
// =============================================================================

func (h *Handler) ListAccomplishments(w http.ResponseWriter, r *http.Request) {
	var (
		records []roster.Accomplishment
		err     error
	)
	switch {
	case r.URL.Query().Get("owner") != "":
		records, err = h.store.ListAccomplishmentsByOwner(r.Context(), r.URL.Query().Get("owner"))
	case r.URL.Query().Get("task") != "":
		records, err = h.store.ListAccomplishmentsByTask(r.Context(), r.URL.Query().Get("task"))
	default:
		records, err = h.store.ListAccomplishments(r.Context())
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	dtos := make([]AccomplishmentDTO, 0, len(records))
	for _, a := range records {
		dtos = append(dtos, toAccomplishmentDTO(a))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateAccomplishment(w http.ResponseWriter, r *http.Request) {
	a, err := h.accomplishmentFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	a.ID = h.newID("accomplishment")

	if err := h.store.SaveAccomplishment(r.Context(), a); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccomplishmentDTO(a))
}

func (h *Handler) UpdateAccomplishment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.store.GetAccomplishment(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if existing == nil {
		h.writeError(w, roster.ErrAccomplishmentNotFound)
		return
	}

	a, err := h.accomplishmentFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	a.ID = id

	if err := h.store.SaveAccomplishment(r.Context(), a); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccomplishmentDTO(a))
}

func (h *Handler) DeleteAccomplishment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.store.GetAccomplishment(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if existing == nil {
		h.writeError(w, roster.ErrAccomplishmentNotFound)
		return
	}
	if err := h.store.DeleteAccomplishment(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) accomplishmentFromRequest(r *http.Request) (roster.Accomplishment, error) {
	var req AccomplishmentRequest
	if err := h.decode(r, &req); err != nil {
		return roster.Accomplishment{}, err
	}

	day, err := parseDay(req.Date)
	if err != nil {
		return roster.Accomplishment{}, &timelog.ValidationError{Messages: []string{"date must be YYYY-MM-DD"}}
	}

	if req.TaskID != "" {
		task, err := h.store.GetTask(r.Context(), req.TaskID)
		if err != nil {
			return roster.Accomplishment{}, err
		}
		if task == nil {
			return roster.Accomplishment{}, roster.ErrTaskNotFound
		}
	}

	return roster.Accomplishment{
		OwnerID:     req.OwnerID,
		TaskID:      req.TaskID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Date:        day,
	}, nil
}
