package leave

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/domain/notification"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

type fakeLeaveRepo struct {
	leaves []*leave.Leave
	nextID int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l *leave.Leave) error {
	f.nextID++
	l.ID = fmt.Sprintf("leave-%d", f.nextID)
	l.Status = leave.StatusPending
	f.leaves = append(f.leaves, l)
	return nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (*leave.Leave, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context) ([]*leave.Leave, error) {
	return f.leaves, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*leave.Leave, error) {
	var out []*leave.Leave
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListRecent(ctx context.Context, limit int) ([]*leave.Leave, error) {
	if len(f.leaves) > limit {
		return f.leaves[:limit], nil
	}
	return f.leaves, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, l *leave.Leave) error {
	for i, existing := range f.leaves {
		if existing.ID == l.ID {
			f.leaves[i] = l
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	for i, l := range f.leaves {
		if l.ID == id {
			f.leaves = append(f.leaves[:i], f.leaves[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) CountByStatus(ctx context.Context) (map[leave.Status]int, error) {
	counts := make(map[leave.Status]int)
	for _, l := range f.leaves {
		counts[l.Status]++
	}
	return counts, nil
}

func (f *fakeLeaveRepo) CountByStartMonth(ctx context.Context, from time.Time) (map[string]int, error) {
	counts := make(map[string]int)
	for _, l := range f.leaves {
		if !l.StartDate.Before(from) {
			counts[l.StartDate.Format("2006-01")]++
		}
	}
	return counts, nil
}

type fakeEmployeeRepo struct {
	employees []*employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]*employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error            { return nil }

type fakeUserRepo struct {
	users []*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*user.User, error) {
	for _, u := range f.users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) LinkEmployee(ctx context.Context, userID string, employeeID *string) error {
	return nil
}

type fakeFileService struct{}

func (fakeFileService) UploadProfilePicture(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	return "profiles/" + employeeID, nil
}
func (fakeFileService) UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string) (string, error) {
	return "resumes/" + candidateID, nil
}
func (fakeFileService) UploadLeaveAttachment(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	return "leave-attachments/" + employeeID, nil
}
func (fakeFileService) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, nil
}
func (fakeFileService) Delete(ctx context.Context, path string) error { return nil }

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) List(ctx context.Context, caller auth.Caller) (*notification.NotificationListResponse, error) {
	return nil, nil
}
func (f *fakeNotifier) Create(ctx context.Context, caller auth.Caller, req *notification.CreateNotificationRequest) (*notification.NotificationResponse, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkRead(ctx context.Context, caller auth.Caller, id string) (*notification.NotificationResponse, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkAllRead(ctx context.Context, caller auth.Caller) error { return nil }
func (f *fakeNotifier) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return nil
}
func (f *fakeNotifier) Send(ctx context.Context, recipientID, title, message string, typ notification.Type, link *string) error {
	f.sent = append(f.sent, recipientID)
	return nil
}

func strPtr(s string) *string { return &s }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	leaveRepo *fakeLeaveRepo
	notifier  *fakeNotifier
	svc       leave.Service
}

func newFixture() *fixture {
	leaveRepo := &fakeLeaveRepo{}
	empRepo := &fakeEmployeeRepo{employees: []*employee.Employee{
		{ID: "emp-1", Name: "Alice"},
		{ID: "emp-2", Name: "Bob"},
	}}
	userRepo := &fakeUserRepo{users: []*user.User{
		{ID: "user-1", Role: user.RoleUser, EmployeeID: strPtr("emp-1")},
		{ID: "user-2", Role: user.RoleUser, EmployeeID: strPtr("emp-2")},
	}}
	notifier := &fakeNotifier{}
	svc := NewLeaveService(leaveRepo, empRepo, userRepo, fakeFileService{}, notifier, testLogger())
	return &fixture{leaveRepo: leaveRepo, notifier: notifier, svc: svc}
}

func selfCaller() auth.Caller {
	return auth.Caller{UserID: "user-1", Role: user.RoleUser, EmployeeID: strPtr("emp-1")}
}

func hrCaller() auth.Caller {
	return auth.Caller{UserID: "hr-user", Role: user.RoleHR}
}

func TestCreateComputesTotalDays(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-17",
		Reason:    "Family trip",
	}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestCreateForOtherEmployeeRequiresPrivilege(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-2",
		LeaveType:  "Annual",
		StartDate:  "2024-03-15",
		EndDate:    "2024-03-16",
		Reason:     "Covering shift",
	}, nil, nil)

	assert.ErrorIs(t, err, leave.ErrCrossEmployee)
}

func TestCreateForOtherEmployeeAllowedForHR(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Create(context.Background(), hrCaller(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-2",
		LeaveType:  "Sick",
		StartDate:  "2024-03-15",
		EndDate:    "2024-03-15",
		Reason:     "Flu",
	}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "emp-2", resp.EmployeeID)
	assert.Equal(t, 1, resp.TotalDays)
}

func TestApproveStampsActorAndNotifies(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
		Reason:    "Trip",
	}, nil, nil)
	require.NoError(t, err)

	resp, err := f.svc.Approve(context.Background(), hrCaller(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "hr-user", *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)

	// Owner's user account got the status notification.
	assert.Equal(t, []string{"user-1"}, f.notifier.sent)
}

func TestApproveRequiresPrivilegedRole(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
		Reason:    "Trip",
	}, nil, nil)
	require.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), selfCaller(), created.ID)
	assert.ErrorIs(t, err, leave.ErrApprovalRequired)
}

func TestRejectWithoutReasonUsesDefault(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
		Reason:    "Trip",
	}, nil, nil)
	require.NoError(t, err)

	resp, err := f.svc.Reject(context.Background(), hrCaller(), created.ID, "")

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, leave.DefaultRejectionReason, *resp.RejectionReason)
}

func TestUpdateStatusStampsLikeDedicatedOperations(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
		Reason:    "Trip",
	}, nil, nil)
	require.NoError(t, err)

	status := string(leave.StatusApproved)
	resp, err := f.svc.Update(context.Background(), hrCaller(), created.ID, &leave.UpdateLeaveRequest{
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "hr-user", *resp.ApprovedBy)
	assert.Equal(t, []string{"user-1"}, f.notifier.sent)
}

func TestUpdateRecomputesTotalDaysOnlyWithBothDates(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-17",
		Reason:    "Trip",
	}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 3, created.TotalDays)

	// Only the start date changes: total days stays as computed at creation.
	start := "2024-03-16"
	resp, err := f.svc.Update(context.Background(), selfCaller(), created.ID, &leave.UpdateLeaveRequest{
		StartDate: &start,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalDays)

	// Both dates resubmitted: total days is recomputed.
	end := "2024-03-20"
	resp, err = f.svc.Update(context.Background(), selfCaller(), created.ID, &leave.UpdateLeaveRequest{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalDays)
}

func TestGetDeniesOtherEmployeesLeave(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), hrCaller(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-2",
		LeaveType:  "Sick",
		StartDate:  "2024-03-15",
		EndDate:    "2024-03-15",
		Reason:     "Flu",
	}, nil, nil)
	require.NoError(t, err)

	_, err = f.svc.Get(context.Background(), selfCaller(), created.ID)
	assert.ErrorIs(t, err, leave.ErrNotLeaveOwner)
}

func TestListReturnsOwnLeavesForRegularUsers(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
		Reason:    "Trip",
	}, nil, nil)
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), hrCaller(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-2",
		LeaveType:  "Sick",
		StartDate:  "2024-03-15",
		EndDate:    "2024-03-15",
		Reason:     "Flu",
	}, nil, nil)
	require.NoError(t, err)

	mine, err := f.svc.List(context.Background(), selfCaller())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "emp-1", mine[0].EmployeeID)

	all, err := f.svc.List(context.Background(), hrCaller())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteRequiresPrivilegedRole(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), selfCaller(), &leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
		Reason:    "Trip",
	}, nil, nil)
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), selfCaller(), created.ID)
	assert.ErrorIs(t, err, user.ErrHRAccessRequired)

	require.NoError(t, f.svc.Delete(context.Background(), hrCaller(), created.ID))
	assert.Empty(t, f.leaveRepo.leaves)
}
