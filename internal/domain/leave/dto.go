package leave

import (
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`

	startDate time.Time
	endDate   time.Time
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if date, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	} else {
		r.startDate = date
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if date, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	} else {
		r.endDate = date
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed start and end dates. Valid only after Validate.
func (r *CreateLeaveRequest) Dates() (time.Time, time.Time) {
	return r.startDate, r.endDate
}

// UpdateLeaveRequest enumerates the patchable fields. Setting Status to
// Approved or Rejected triggers the same stamping as the dedicated
// approve and reject operations.
type UpdateLeaveRequest struct {
	LeaveType       *string `json:"leave_type"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	Reason          *string `json:"reason"`
	Status          *string `json:"status"`
	RejectionReason *string `json:"rejection_reason"`

	startDate *time.Time
	endDate   *time.Time
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType != nil && validator.IsEmpty(*r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must not be empty",
		})
	}

	if r.StartDate != nil {
		if date, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		} else {
			r.startDate = &date
		}
	}

	if r.EndDate != nil {
		if date, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else {
			r.endDate = &date
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, AllStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Pending, Approved, Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateLeaveRequest) ParsedDates() (*time.Time, *time.Time) {
	return r.startDate, r.endDate
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

type LeaveResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
	Department      *string    `json:"department,omitempty"`
	Position        *string    `json:"position,omitempty"`
	LeaveType       string     `json:"leave_type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedBy      *string    `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	Attachment      *string    `json:"attachment,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ToResponse(l *Leave) *LeaveResponse {
	return &LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		EmployeeName:    l.EmployeeName,
		Department:      l.EmployeeDepartment,
		Position:        l.EmployeePosition,
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          string(l.Status),
		ApprovedBy:      l.ApprovedBy,
		ApprovedAt:      l.ApprovedAt,
		RejectedBy:      l.RejectedBy,
		RejectedAt:      l.RejectedAt,
		RejectionReason: l.RejectionReason,
		Attachment:      l.AttachmentPath,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func ToResponseList(leaves []*Leave) []*LeaveResponse {
	responses := make([]*LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, ToResponse(l))
	}
	return responses
}
