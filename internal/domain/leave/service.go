package leave

import (
	"context"
	"mime/multipart"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
)

type Service interface {
	// List returns every leave request for admin/hr callers and only the
	// caller's own otherwise.
	List(ctx context.Context, caller auth.Caller) ([]*LeaveResponse, error)

	// ListMine returns the leave requests of the caller's linked employee.
	ListMine(ctx context.Context, caller auth.Caller) ([]*LeaveResponse, error)

	Get(ctx context.Context, caller auth.Caller, id string) (*LeaveResponse, error)

	// Create files a leave request. When the request names no employee the
	// caller's linked profile is used; naming another employee requires
	// admin or hr role.
	Create(ctx context.Context, caller auth.Caller, req *CreateLeaveRequest, attachment multipart.File, attachmentHeader *multipart.FileHeader) (*LeaveResponse, error)

	Update(ctx context.Context, caller auth.Caller, id string, req *UpdateLeaveRequest) (*LeaveResponse, error)
	Approve(ctx context.Context, caller auth.Caller, id string) (*LeaveResponse, error)
	Reject(ctx context.Context, caller auth.Caller, id string, reason string) (*LeaveResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
}
