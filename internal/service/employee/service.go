package employee

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/service/file"
)

type employeeService struct {
	employeeRepo employee.Repository
	fileSvc      file.FileService
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo employee.Repository, fileSvc file.FileService) employee.Service {
	return &employeeService{
		employeeRepo: employeeRepo,
		fileSvc:      fileSvc,
	}
}

func (s *employeeService) List(ctx context.Context, caller auth.Caller) ([]*employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return employee.ToResponseList(employees), nil
}

func (s *employeeService) Get(ctx context.Context, caller auth.Caller, id string) (*employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return employee.ToResponse(e), nil
}

func (s *employeeService) Create(ctx context.Context, caller auth.Caller, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if !caller.CanManageOthers() {
		return nil, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	e := &employee.Employee{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Position:      req.Position,
		Department:    req.Department,
		DateOfJoining: req.JoiningDate(),
		Salary:        decimal.NewFromFloat(req.Salary),
		Profile:       employee.DefaultProfileImage,
	}

	if err := s.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	return employee.ToResponse(e), nil
}

func (s *employeeService) Update(ctx context.Context, caller auth.Caller, id string, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if !caller.CanManageOthers() {
		return nil, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if date := req.JoiningDate(); date != nil {
		e.DateOfJoining = *date
	}
	if req.Salary != nil {
		e.Salary = decimal.NewFromFloat(*req.Salary)
	}

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	return employee.ToResponse(e), nil
}

func (s *employeeService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	if !caller.CanManageOthers() {
		return user.ErrHRAccessRequired
	}

	return s.employeeRepo.Delete(ctx, id)
}

func (s *employeeService) UploadProfilePicture(ctx context.Context, caller auth.Caller, id string, f io.Reader, filename string) (*employee.EmployeeResponse, error) {
	// Employees may change their own picture; admin/hr may change anyone's.
	if !caller.CanManageOthers() && !caller.OwnsEmployee(id) {
		return nil, user.ErrHRAccessRequired
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.fileSvc.UploadProfilePicture(ctx, id, f, filename)
	if err != nil {
		return nil, err
	}

	e.Profile = path
	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	return employee.ToResponse(e), nil
}
