package employee

import (
	"context"
	"io"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
)

type Service interface {
	List(ctx context.Context, caller auth.Caller) ([]*EmployeeResponse, error)
	Get(ctx context.Context, caller auth.Caller, id string) (*EmployeeResponse, error)
	Create(ctx context.Context, caller auth.Caller, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	Update(ctx context.Context, caller auth.Caller, id string, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
	UploadProfilePicture(ctx context.Context, caller auth.Caller, id string, file io.Reader, filename string) (*EmployeeResponse, error)
}
