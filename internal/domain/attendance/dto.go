package attendance

import (
	"fmt"
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type UpsertAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Task       *string `json:"task"`

	date time.Time
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.date = date
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, AllStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, Half Day, WFH",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the parsed date field. Valid only after Validate.
func (r *UpsertAttendanceRequest) ParsedDate() time.Time {
	return r.date
}

type UpdateAttendanceRequest struct {
	Status   *string `json:"status"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Task     *string `json:"task"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, AllStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, Half Day, WFH",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkTaskRequest targets a set of employees, or every employee when
// employee_ids is empty. Date defaults to today when omitted.
type BulkTaskRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Date        string   `json:"date"`
	Task        string   `json:"task"`

	date time.Time
}

func (r *BulkTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Task) {
		errs = append(errs, validator.ValidationError{
			Field:   "task",
			Message: "task is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		r.date = time.Now()
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.date = date
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *BulkTaskRequest) ParsedDate() time.Time {
	return r.date
}

type BulkTaskFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// BulkTaskResult accounts for every requested employee exactly once:
// Updated + Created + Failed == Total.
type BulkTaskResult struct {
	Updated  int               `json:"updated"`
	Created  int               `json:"created"`
	Failed   int               `json:"failed"`
	Total    int               `json:"total"`
	Message  string            `json:"message"`
	Failures []BulkTaskFailure `json:"failures,omitempty"`
}

// Summarize fills Message from the counters.
func (r *BulkTaskResult) Summarize() {
	r.Message = fmt.Sprintf("Task assigned to %d employees (%d updated, %d created, %d failed)",
		r.Updated+r.Created, r.Updated, r.Created, r.Failed)
}

// ListFilter narrows attendance list queries. Zero values mean no filtering.
type ListFilter struct {
	Date       *time.Time
	EmployeeID string
	Status     string
}

type AttendanceResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CheckIn    *string   `json:"check_in"`
	CheckOut   *string   `json:"check_out"`
	Task       *string   `json:"task"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToResponse(a *Attendance) *AttendanceResponse {
	return &AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Task:       a.Task,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// RosterEntryResponse is one row of the day roster: every employee appears,
// with a null attendance when nothing was recorded for the day.
type RosterEntryResponse struct {
	EmployeeID string              `json:"employee_id"`
	Name       string              `json:"name"`
	Position   string              `json:"position"`
	Department string              `json:"department"`
	Attendance *AttendanceResponse `json:"attendance"`
}

func ToRosterResponse(entries []*RosterEntry) []*RosterEntryResponse {
	responses := make([]*RosterEntryResponse, 0, len(entries))
	for _, e := range entries {
		entry := &RosterEntryResponse{
			EmployeeID: e.EmployeeID,
			Name:       e.EmployeeName,
			Position:   e.EmployeePosition,
			Department: e.EmployeeDepartment,
		}
		if e.Attendance != nil {
			entry.Attendance = ToResponse(e.Attendance)
		}
		responses = append(responses, entry)
	}
	return responses
}
