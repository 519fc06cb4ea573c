package candidate

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
)

type Service interface {
	List(ctx context.Context, caller auth.Caller) ([]*CandidateResponse, error)
	Get(ctx context.Context, caller auth.Caller, id string) (*CandidateResponse, error)
	Create(ctx context.Context, caller auth.Caller, req *CreateCandidateRequest, resume multipart.File, resumeHeader *multipart.FileHeader) (*CandidateResponse, error)
	Update(ctx context.Context, caller auth.Caller, id string, req *UpdateCandidateRequest) (*CandidateResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
	DownloadResume(ctx context.Context, caller auth.Caller, id string) (io.ReadCloser, string, error)
	Convert(ctx context.Context, caller auth.Caller, id string, req *ConvertCandidateRequest) (*employee.EmployeeResponse, error)
}
