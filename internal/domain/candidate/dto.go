package candidate

import (
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type CreateCandidateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Status   string `json:"status"`
}

func (r *CreateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, AllStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: New, Shortlisted, Interview, Selected, Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCandidateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	Status   *string `json:"status"`
}

func (r *UpdateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, AllStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: New, Shortlisted, Interview, Selected, Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConvertCandidateRequest supplies the fields a candidate record lacks when
// promoting them to an employee.
type ConvertCandidateRequest struct {
	Department    string  `json:"department"`
	DateOfJoining string  `json:"date_of_joining"`
	Salary        float64 `json:"salary"`

	joiningDate time.Time
}

func (r *ConvertCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining is required",
		})
	} else if date, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	} else {
		r.joiningDate = date
	}

	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *ConvertCandidateRequest) JoiningDate() time.Time {
	return r.joiningDate
}

type CandidateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Status    string    `json:"status"`
	HasResume bool      `json:"has_resume"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(c *Candidate) *CandidateResponse {
	return &CandidateResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		Status:    string(c.Status),
		HasResume: c.ResumePath != nil,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToResponseList(candidates []*Candidate) []*CandidateResponse {
	responses := make([]*CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		responses = append(responses, ToResponse(c))
	}
	return responses
}
