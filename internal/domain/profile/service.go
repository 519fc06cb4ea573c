package profile

import (
	"context"
	"io"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
)

type Service interface {
	Get(ctx context.Context, caller auth.Caller) (*ProfileResponse, error)
	Update(ctx context.Context, caller auth.Caller, req *UpdateProfileRequest) (*ProfileResponse, error)
	UpdatePicture(ctx context.Context, caller auth.Caller, file io.Reader, filename string) (*ProfileResponse, error)
}
