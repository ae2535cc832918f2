/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request types carry go-playground/validator tags; handlers run the shared
  Validate instance before touching domain logic. Domain-level rules (time
  ordering, lifecycle transitions) stay in timelog/ and roster/.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/mghs/internhub/roster"
	"github.com/mghs/internhub/timelog"
)

// =============================================================================
// PERSONS
// =============================================================================

// PersonDTO represents an intern profile in API responses.
type PersonDTO struct {
	ID                 string       `json:"id"`
	FirstName          string       `json:"first_name"`
	LastName           string       `json:"last_name"`
	Email              string       `json:"email"`
	Admin              bool         `json:"admin"`
	Role               string       `json:"role,omitempty"`
	Position           string       `json:"position,omitempty"`
	HoursNeeded        float64      `json:"hours_needed"`
	TotalHoursRendered float64      `json:"total_hours_rendered"`
	Status             string       `json:"status"`
	BatchName          string       `json:"batch_name,omitempty"`
	StartDate          string       `json:"start_date,omitempty"`
	Absences           []AbsenceDTO `json:"absences,omitempty"`
}

// CreatePersonRequest is the request to register an intern.
type CreatePersonRequest struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Role        string  `json:"role"`
	Position    string  `json:"position"`
	HoursNeeded float64 `json:"hours_needed" validate:"gte=0"`
}

// UpdatePersonRequest is the request to edit a profile. Status and totals
// are not editable here; they move through their own endpoints.
type UpdatePersonRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Role        string  `json:"role"`
	Position    string  `json:"position"`
	HoursNeeded float64 `json:"hours_needed" validate:"gte=0"`
}

// StatusRequest is a manual admin lifecycle transition.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SummaryDTO reports an intern's aggregated hours and lifecycle position.
type SummaryDTO struct {
	PersonID        string  `json:"person_id"`
	AttendanceTotal float64 `json:"attendance_total"`
	OvertimeTotal   float64 `json:"overtime_total"`
	GrandTotal      float64 `json:"grand_total"`
	HoursNeeded     float64 `json:"hours_needed"`
	HoursLeft       float64 `json:"hours_left"`
	Status          string  `json:"status"`
	BatchName       string  `json:"batch_name,omitempty"`
}

// AbsenceDTO represents one recorded absence.
type AbsenceDTO struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// AbsenceRequest records an absence against an intern.
type AbsenceRequest struct {
	Date   string `json:"date" validate:"required"`
	Reason string `json:"reason"`
}

// =============================================================================
// TIME LOGS
// =============================================================================

// TimeLogDTO represents a single attendance or overtime record.
type TimeLogDTO struct {
	ID            string  `json:"id"`
	OwnerID       string  `json:"owner_id"`
	Date          string  `json:"date"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      string  `json:"clock_out"`
	BreakStart    string  `json:"break_start"`
	BreakEnd      string  `json:"break_end"`
	RenderedHours float64 `json:"rendered_hours"`
	Report        string  `json:"report,omitempty"`
	Kind          string  `json:"kind"`
}

// SubmitLogRequest submits or edits a time log. Kind is only honored on
// create, and only "overtime" is meaningful there: attendance is the default
// and may still be redirected by the classifier.
type SubmitLogRequest struct {
	Date       string `json:"date" validate:"required"`
	ClockIn    string `json:"clock_in" validate:"required"`
	ClockOut   string `json:"clock_out" validate:"required"`
	BreakStart string `json:"break_start" validate:"required"`
	BreakEnd   string `json:"break_end" validate:"required"`
	Report     string `json:"report"`
	Kind       string `json:"kind" validate:"omitempty,oneof=attendance overtime"`
}

// SubmitLogResponse reports the three-way outcome of a submission together
// with the recomputed totals and any lifecycle change.
type SubmitLogResponse struct {
	Log     TimeLogDTO `json:"log"`
	Outcome string     `json:"outcome"`
	Totals  SummaryDTO `json:"totals"`
}

// =============================================================================
// BATCHES / ROLES / TASKS / ACCOMPLISHMENTS
// =============================================================================

// BatchDTO represents a cohort batch.
type BatchDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// BatchRequest creates or updates a batch.
type BatchRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// RoleDTO represents an assignable role.
type RoleDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default"`
}

// RoleRequest creates or updates a role.
type RoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// TaskDTO represents a catalog task.
type TaskDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TaskRequest creates or updates a task.
type TaskRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// AccomplishmentDTO represents an accomplishment record.
type AccomplishmentDTO struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	TaskID      string `json:"task_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Date        string `json:"date"`
}

// AccomplishmentRequest creates or updates an accomplishment.
type AccomplishmentRequest struct {
	OwnerID     string `json:"owner_id" validate:"required"`
	TaskID      string `json:"task_id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Link        string `json:"link" validate:"omitempty,url"`
	Date        string `json:"date" validate:"required"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toPersonDTO(p roster.Person) PersonDTO {
	hoursNeeded, _ := p.HoursNeeded.Float64()
	total, _ := p.TotalHoursRendered.Float64()

	dto := PersonDTO{
		ID:                 p.ID,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Email:              p.Email,
		Admin:              p.Admin,
		Role:               p.Role,
		Position:           p.Position,
		HoursNeeded:        hoursNeeded,
		TotalHoursRendered: total,
		Status:             string(p.Status),
		BatchName:          p.BatchName,
	}
	if !p.StartDate.IsZero() {
		dto.StartDate = p.StartDate.Format("2006-01-02")
	}
	for _, a := range p.Absences {
		dto.Absences = append(dto.Absences, AbsenceDTO{
			Date:   a.Date.Format("2006-01-02"),
			Reason: a.Reason,
		})
	}
	return dto
}

func toTimeLogDTO(e timelog.Entry) TimeLogDTO {
	rendered, _ := e.RenderedHours.Float64()
	return TimeLogDTO{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		Date:          e.Day().Format("2006-01-02"),
		ClockIn:       e.ClockIn.String(),
		ClockOut:      e.ClockOut.String(),
		BreakStart:    e.BreakStart.String(),
		BreakEnd:      e.BreakEnd.String(),
		RenderedHours: rendered,
		Report:        e.Report,
		Kind:          string(e.Kind),
	}
}

func toSummaryDTO(p roster.Person, t timelog.Totals) SummaryDTO {
	attendance, _ := t.Attendance.Float64()
	overtime, _ := t.Overtime.Float64()
	grand, _ := t.Grand.Float64()
	hoursNeeded, _ := p.HoursNeeded.Float64()
	hoursLeft, _ := p.HoursNeeded.Sub(t.Grand).Float64()

	return SummaryDTO{
		PersonID:        p.ID,
		AttendanceTotal: attendance,
		OvertimeTotal:   overtime,
		GrandTotal:      grand,
		HoursNeeded:     hoursNeeded,
		HoursLeft:       hoursLeft,
		Status:          string(p.Status),
		BatchName:       p.BatchName,
	}
}

func toBatchDTO(b roster.Batch) BatchDTO {
	return BatchDTO{
		ID:        b.ID,
		Name:      b.Name,
		StartDate: b.StartDate.Format("2006-01-02"),
		EndDate:   b.EndDate.Format("2006-01-02"),
	}
}

func toRoleDTO(r roster.Role) RoleDTO {
	return RoleDTO{ID: r.ID, Name: r.Name, Description: r.Description, Default: r.IsDefault()}
}

func toAccomplishmentDTO(a roster.Accomplishment) AccomplishmentDTO {
	return AccomplishmentDTO{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		TaskID:      a.TaskID,
		Title:       a.Title,
		Description: a.Description,
		Link:        a.Link,
		Date:        a.Date.Format("2006-01-02"),
	}
}

func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
