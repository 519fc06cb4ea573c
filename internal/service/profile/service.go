package profile

import (
	"context"
	"errors"
	"io"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/domain/profile"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/service/file"
)

type profileService struct {
	userRepo     user.Repository
	employeeRepo employee.Repository
	fileSvc      file.FileService
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo user.Repository, employeeRepo employee.Repository, fileSvc file.FileService) profile.Service {
	return &profileService{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		fileSvc:      fileSvc,
	}
}

func (s *profileService) Get(ctx context.Context, caller auth.Caller) (*profile.ProfileResponse, error) {
	u, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	resp := &profile.ProfileResponse{User: auth.UserInfoFromEntity(u)}

	if u.EmployeeID != nil {
		e, err := s.employeeRepo.GetByID(ctx, *u.EmployeeID)
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, err
		}
		if e != nil {
			resp.Employee = employee.ToResponse(e)
		}
	}

	return resp, nil
}

func (s *profileService) Update(ctx context.Context, caller auth.Caller, req *profile.UpdateProfileRequest) (*profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	// Contact fields live on the linked employee record.
	if u.EmployeeID != nil && (req.Name != nil || req.Phone != nil) {
		e, err := s.employeeRepo.GetByID(ctx, *u.EmployeeID)
		if err == nil {
			if req.Name != nil {
				e.Name = *req.Name
			}
			if req.Phone != nil {
				e.Phone = *req.Phone
			}
			if err := s.employeeRepo.Update(ctx, e); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, err
		}
	}

	return s.Get(ctx, caller)
}

func (s *profileService) UpdatePicture(ctx context.Context, caller auth.Caller, f io.Reader, filename string) (*profile.ProfileResponse, error) {
	u, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if u.EmployeeID == nil {
		return nil, user.ErrNoLinkedEmployee
	}

	e, err := s.employeeRepo.GetByID(ctx, *u.EmployeeID)
	if err != nil {
		return nil, err
	}

	path, err := s.fileSvc.UploadProfilePicture(ctx, e.ID, f, filename)
	if err != nil {
		return nil, err
	}

	e.Profile = path
	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	return s.Get(ctx, caller)
}
