package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Position      string  `json:"position"`
	Department    string  `json:"department"`
	DateOfJoining string  `json:"date_of_joining"`
	Salary        float64 `json:"salary"`

	joiningDate time.Time
}

func (r *CreateEmployeeRequest) Validate() error {
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

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

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

// JoiningDate returns the parsed date_of_joining. Valid only after Validate.
func (r *CreateEmployeeRequest) JoiningDate() time.Time {
	return r.joiningDate
}

// UpdateEmployeeRequest carries the patchable fields. Absent fields stay
// untouched; unknown fields are rejected at decode time.
type UpdateEmployeeRequest struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Position      *string  `json:"position"`
	Department    *string  `json:"department"`
	DateOfJoining *string  `json:"date_of_joining"`
	Salary        *float64 `json:"salary"`

	joiningDate *time.Time
}

func (r *UpdateEmployeeRequest) Validate() error {
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

	if r.DateOfJoining != nil {
		if date, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		} else {
			r.joiningDate = &date
		}
	}

	if r.Salary != nil && *r.Salary < 0 {
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

func (r *UpdateEmployeeRequest) JoiningDate() *time.Time {
	return r.joiningDate
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Position      string          `json:"position"`
	Department    string          `json:"department"`
	DateOfJoining string          `json:"date_of_joining"`
	Salary        decimal.Decimal `json:"salary"`
	Profile       string          `json:"profile"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func ToResponse(e *Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Position:      e.Position,
		Department:    e.Department,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		Salary:        e.Salary,
		Profile:       e.Profile,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToResponseList(employees []*Employee) []*EmployeeResponse {
	responses := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToResponse(e))
	}
	return responses
}
