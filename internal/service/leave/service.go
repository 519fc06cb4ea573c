package leave

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/domain/notification"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/service/file"
)

type leaveService struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
	userRepo     user.Repository
	fileSvc      file.FileService
	notifier     notification.Service
	logger       *slog.Logger
}

// NewLeaveService creates a new leave service
func NewLeaveService(
	leaveRepo leave.Repository,
	employeeRepo employee.Repository,
	userRepo user.Repository,
	fileSvc file.FileService,
	notifier notification.Service,
	logger *slog.Logger,
) leave.Service {
	return &leaveService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		fileSvc:      fileSvc,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *leaveService) List(ctx context.Context, caller auth.Caller) ([]*leave.LeaveResponse, error) {
	if caller.CanManageOthers() {
		leaves, err := s.leaveRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return leave.ToResponseList(leaves), nil
	}

	return s.ListMine(ctx, caller)
}

func (s *leaveService) ListMine(ctx context.Context, caller auth.Caller) ([]*leave.LeaveResponse, error) {
	employeeID, err := s.resolveEmployee(ctx, caller)
	if err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return leave.ToResponseList(leaves), nil
}

func (s *leaveService) Get(ctx context.Context, caller auth.Caller, id string) (*leave.LeaveResponse, error) {
	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Non-privileged callers may only read their own leave.
	if !caller.CanManageOthers() && !caller.OwnsEmployee(l.EmployeeID) {
		return nil, leave.ErrNotLeaveOwner
	}

	return leave.ToResponse(l), nil
}

func (s *leaveService) Create(ctx context.Context, caller auth.Caller, req *leave.CreateLeaveRequest, attachment multipart.File, attachmentHeader *multipart.FileHeader) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeID := req.EmployeeID
	if employeeID == "" {
		resolved, err := s.resolveEmployee(ctx, caller)
		if err != nil {
			return nil, err
		}
		employeeID = resolved
	} else {
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return nil, err
		}
		// Filing for another employee is an admin/hr action.
		if !caller.CanManageOthers() && !caller.OwnsEmployee(employeeID) {
			return nil, leave.ErrCrossEmployee
		}
	}

	start, end := req.Dates()

	l := &leave.Leave{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  leave.TotalDaysBetween(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	if attachment != nil && attachmentHeader != nil {
		path, err := s.fileSvc.UploadLeaveAttachment(ctx, employeeID, attachment, attachmentHeader.Filename)
		if err != nil {
			return nil, err
		}
		l.AttachmentPath = &path
	}

	if err := s.leaveRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	return s.respond(ctx, l.ID)
}

func (s *leaveService) Update(ctx context.Context, caller auth.Caller, id string, req *leave.UpdateLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LeaveType != nil {
		l.LeaveType = *req.LeaveType
	}
	if req.Reason != nil {
		l.Reason = *req.Reason
	}

	start, end := req.ParsedDates()
	if start != nil {
		l.StartDate = *start
	}
	if end != nil {
		l.EndDate = *end
	}
	// Total days is recomputed only when both dates are resubmitted.
	if start != nil && end != nil {
		l.TotalDays = leave.TotalDaysBetween(*start, *end)
	}

	// A status patch through the generic update stamps identically to the
	// dedicated approve/reject operations.
	if req.Status != nil {
		switch leave.Status(*req.Status) {
		case leave.StatusApproved:
			if !caller.CanManageOthers() {
				return nil, leave.ErrApprovalRequired
			}
			l.Approve(caller.UserID, time.Now())
		case leave.StatusRejected:
			if !caller.CanManageOthers() {
				return nil, leave.ErrApprovalRequired
			}
			reason := ""
			if req.RejectionReason != nil {
				reason = *req.RejectionReason
			}
			l.Reject(caller.UserID, time.Now(), reason)
		default:
			l.Status = leave.Status(*req.Status)
		}
	}

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	if l.Status == leave.StatusApproved || l.Status == leave.StatusRejected {
		if req.Status != nil {
			s.notifyTransition(ctx, l)
		}
	}

	return s.respond(ctx, l.ID)
}

func (s *leaveService) Approve(ctx context.Context, caller auth.Caller, id string) (*leave.LeaveResponse, error) {
	if !caller.CanManageOthers() {
		return nil, leave.ErrApprovalRequired
	}

	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Approve(caller.UserID, time.Now())

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, l)

	return s.respond(ctx, l.ID)
}

func (s *leaveService) Reject(ctx context.Context, caller auth.Caller, id string, reason string) (*leave.LeaveResponse, error) {
	if !caller.CanManageOthers() {
		return nil, leave.ErrApprovalRequired
	}

	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Reject(caller.UserID, time.Now(), reason)

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, l)

	return s.respond(ctx, l.ID)
}

func (s *leaveService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	if !caller.CanManageOthers() {
		return user.ErrHRAccessRequired
	}

	return s.leaveRepo.Delete(ctx, id)
}

// resolveEmployee maps the caller to their linked employee profile.
func (s *leaveService) resolveEmployee(ctx context.Context, caller auth.Caller) (string, error) {
	if caller.EmployeeID != nil {
		return *caller.EmployeeID, nil
	}

	u, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return "", err
	}
	if u.EmployeeID == nil {
		return "", user.ErrNoLinkedEmployee
	}

	return *u.EmployeeID, nil
}

// respond re-reads the leave so the response carries the joined employee
// fields.
func (s *leaveService) respond(ctx context.Context, id string) (*leave.LeaveResponse, error) {
	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return leave.ToResponse(l), nil
}

// notifyTransition pushes a status notification to the leave owner's user
// account. Failures are logged and swallowed.
func (s *leaveService) notifyTransition(ctx context.Context, l *leave.Leave) {
	u, err := s.userRepo.GetByEmployeeID(ctx, l.EmployeeID)
	if err != nil {
		return
	}

	title := fmt.Sprintf("Leave request %s", l.Status)
	message := fmt.Sprintf("Your %s leave from %s to %s is now %s",
		l.LeaveType, l.StartDate.Format("2006-01-02"), l.EndDate.Format("2006-01-02"), l.Status)

	if err := s.notifier.Send(ctx, u.ID, title, message, notification.TypeLeave, nil); err != nil {
		s.logger.Warn("failed to send leave notification",
			slog.String("user_id", u.ID),
			slog.String("error", err.Error()),
		)
	}
}
