package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/domain/notification"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

type attendanceService struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	userRepo       user.Repository
	notifier       notification.Service
	logger         *slog.Logger
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	userRepo user.Repository,
	notifier notification.Service,
	logger *slog.Logger,
) attendance.Service {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// List builds the day roster: every employee left-joined with their
// attendance record inside the day window of the filter date.
func (s *attendanceService) List(ctx context.Context, caller auth.Caller, filter attendance.ListFilter) ([]*attendance.RosterEntryResponse, error) {
	day := time.Now()
	if filter.Date != nil {
		day = *filter.Date
	}
	dayStart, dayEnd := attendance.DayWindow(day)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string]*attendance.Attendance, len(records))
	for _, a := range records {
		byEmployee[a.EmployeeID] = a
	}

	var entries []*attendance.RosterEntry
	for _, e := range employees {
		if filter.EmployeeID != "" && e.ID != filter.EmployeeID {
			continue
		}

		record := byEmployee[e.ID]
		if filter.Status != "" {
			if record == nil || string(record.Status) != filter.Status {
				continue
			}
		}

		entries = append(entries, &attendance.RosterEntry{
			EmployeeID:         e.ID,
			EmployeeName:       e.Name,
			EmployeePosition:   e.Position,
			EmployeeDepartment: e.Department,
			Attendance:         record,
		})
	}

	return attendance.ToRosterResponse(entries), nil
}

// Upsert implements create-or-update-by-day: a second create for the same
// employee-day merges into the existing record instead of inserting.
func (s *attendanceService) Upsert(ctx context.Context, caller auth.Caller, req *attendance.UpsertAttendanceRequest) (*attendance.AttendanceResponse, bool, error) {
	if err := req.Validate(); err != nil {
		return nil, false, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, false, err
	}

	dayStart, dayEnd := attendance.DayWindow(req.ParsedDate())

	existing, err := s.attendanceRepo.GetByEmployeeAndDay(ctx, req.EmployeeID, dayStart, dayEnd)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		existing.Status = attendance.Status(req.Status)
		if req.CheckIn != nil {
			existing.CheckIn = req.CheckIn
		}
		if req.CheckOut != nil {
			existing.CheckOut = req.CheckOut
		}
		if req.Task != nil {
			existing.Task = req.Task
		}

		if err := s.attendanceRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}

		return attendance.ToResponse(existing), false, nil
	}

	a := &attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       dayStart,
		Status:     attendance.Status(req.Status),
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Task:       req.Task,
	}

	// A concurrent create for the same employee-day may win the race; the
	// unique index rejects this insert and the error surfaces as-is.
	if err := s.attendanceRepo.Create(ctx, a); err != nil {
		return nil, false, err
	}

	return attendance.ToResponse(a), true, nil
}

func (s *attendanceService) Update(ctx context.Context, caller auth.Caller, id string, req *attendance.UpdateAttendanceRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		a.Status = attendance.Status(*req.Status)
	}
	if req.CheckIn != nil {
		a.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		a.CheckOut = req.CheckOut
	}
	if req.Task != nil {
		a.Task = req.Task
	}

	if err := s.attendanceRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	return attendance.ToResponse(a), nil
}

func (s *attendanceService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// AssignTask processes each target employee independently; a failure for one
// is counted and must not abort the rest.
func (s *attendanceService) AssignTask(ctx context.Context, caller auth.Caller, req *attendance.BulkTaskRequest) (*attendance.BulkTaskResult, error) {
	if !caller.CanManageOthers() {
		return nil, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	dayStart, dayEnd := attendance.DayWindow(req.ParsedDate())

	targets := req.EmployeeIDs
	if len(targets) == 0 {
		employees, err := s.employeeRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range employees {
			targets = append(targets, e.ID)
		}
	}

	result := &attendance.BulkTaskResult{Total: len(targets)}
	task := req.Task

	for _, employeeID := range targets {
		existing, err := s.attendanceRepo.GetByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
		if err != nil {
			s.recordFailure(result, employeeID, err)
			continue
		}

		if existing != nil {
			existing.Task = &task
			if err := s.attendanceRepo.Update(ctx, existing); err != nil {
				s.recordFailure(result, employeeID, err)
				continue
			}
			result.Updated++
			continue
		}

		checkIn := time.Now().Format("3:04:05 PM")
		a := &attendance.Attendance{
			EmployeeID: employeeID,
			Date:       dayStart,
			Status:     attendance.StatusPresent,
			CheckIn:    &checkIn,
			Task:       &task,
		}
		if err := s.attendanceRepo.Create(ctx, a); err != nil {
			s.recordFailure(result, employeeID, err)
			continue
		}
		result.Created++
	}

	result.Summarize()

	s.notifyAssignees(ctx, targets, task)

	return result, nil
}

func (s *attendanceService) recordFailure(result *attendance.BulkTaskResult, employeeID string, err error) {
	result.Failed++
	result.Failures = append(result.Failures, attendance.BulkTaskFailure{
		EmployeeID: employeeID,
		Reason:     err.Error(),
	})
	s.logger.Warn("bulk task assignment failed for employee",
		slog.String("employee_id", employeeID),
		slog.String("error", err.Error()),
	)
}

// notifyAssignees pushes a task notification to every targeted employee with
// a linked user account. Failures are logged and swallowed.
func (s *attendanceService) notifyAssignees(ctx context.Context, employeeIDs []string, task string) {
	for _, employeeID := range employeeIDs {
		u, err := s.userRepo.GetByEmployeeID(ctx, employeeID)
		if err != nil {
			continue
		}

		if err := s.notifier.Send(ctx, u.ID, "New task assigned", task, notification.TypeAttendance, nil); err != nil {
			s.logger.Warn("failed to send task notification",
				slog.String("user_id", u.ID),
				slog.String("error", err.Error()),
			)
		}
	}
}
