package profile

import (
	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type ProfileResponse struct {
	User     *auth.UserInfo             `json:"user"`
	Employee *employee.EmployeeResponse `json:"employee,omitempty"`
}

// UpdateProfileRequest covers the contact fields a user may edit on their own
// account and linked employee record.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
