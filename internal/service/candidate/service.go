package candidate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/candidate"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/service/file"
)

type candidateService struct {
	candidateRepo candidate.Repository
	employeeRepo  employee.Repository
	fileSvc       file.FileService
}

// NewCandidateService creates a new candidate service
func NewCandidateService(candidateRepo candidate.Repository, employeeRepo employee.Repository, fileSvc file.FileService) candidate.Service {
	return &candidateService{
		candidateRepo: candidateRepo,
		employeeRepo:  employeeRepo,
		fileSvc:       fileSvc,
	}
}

func (s *candidateService) List(ctx context.Context, caller auth.Caller) ([]*candidate.CandidateResponse, error) {
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return candidate.ToResponseList(candidates), nil
}

func (s *candidateService) Get(ctx context.Context, caller auth.Caller, id string) (*candidate.CandidateResponse, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return candidate.ToResponse(c), nil
}

func (s *candidateService) Create(ctx context.Context, caller auth.Caller, req *candidate.CreateCandidateRequest, resume multipart.File, resumeHeader *multipart.FileHeader) (*candidate.CandidateResponse, error) {
	if !caller.CanManageOthers() {
		return nil, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &candidate.Candidate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		Status:   candidate.StatusNew,
	}
	if req.Status != "" {
		c.Status = candidate.Status(req.Status)
	}

	if err := s.candidateRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	if resume != nil && resumeHeader != nil {
		path, err := s.fileSvc.UploadResume(ctx, c.ID, resume, resumeHeader.Filename)
		if err != nil {
			return nil, err
		}
		c.ResumePath = &path
		if err := s.candidateRepo.Update(ctx, c); err != nil {
			return nil, err
		}
	}

	return candidate.ToResponse(c), nil
}

func (s *candidateService) Update(ctx context.Context, caller auth.Caller, id string, req *candidate.UpdateCandidateRequest) (*candidate.CandidateResponse, error) {
	if !caller.CanManageOthers() {
		return nil, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Position != nil {
		c.Position = *req.Position
	}
	if req.Status != nil {
		c.Status = candidate.Status(*req.Status)
	}

	if err := s.candidateRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return candidate.ToResponse(c), nil
}

func (s *candidateService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	if !caller.CanManageOthers() {
		return user.ErrHRAccessRequired
	}

	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.candidateRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort: the record is gone either way.
	if c.ResumePath != nil {
		_ = s.fileSvc.Delete(ctx, *c.ResumePath)
	}

	return nil
}

func (s *candidateService) DownloadResume(ctx context.Context, caller auth.Caller, id string) (io.ReadCloser, string, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if c.ResumePath == nil {
		return nil, "", candidate.ErrResumeNotFound
	}

	reader, err := s.fileSvc.Download(ctx, *c.ResumePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download resume: %w", err)
	}

	filename := fmt.Sprintf("%s-resume%s", c.Name, filepath.Ext(*c.ResumePath))
	return reader, filename, nil
}

// Convert promotes a candidate into an employee record and marks the
// candidate Selected.
func (s *candidateService) Convert(ctx context.Context, caller auth.Caller, id string, req *candidate.ConvertCandidateRequest) (*employee.EmployeeResponse, error) {
	if !caller.CanManageOthers() {
		return nil, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch _, err := s.employeeRepo.GetByEmail(ctx, c.Email); {
	case err == nil:
		return nil, candidate.ErrAlreadyConverted
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return nil, err
	}

	e := &employee.Employee{
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Position:      c.Position,
		Department:    req.Department,
		DateOfJoining: req.JoiningDate(),
		Salary:        decimal.NewFromFloat(req.Salary),
		Profile:       employee.DefaultProfileImage,
	}

	if err := s.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	c.Status = candidate.StatusSelected
	if err := s.candidateRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return employee.ToResponse(e), nil
}
