package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/domain/notification"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records   []*attendance.Attendance
	createErr map[string]error
	nextID    int
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	if err := f.createErr[a.EmployeeID]; err != nil {
		return err
	}
	f.nextID++
	a.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records = append(f.records, a)
	return nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	for _, a := range f.records {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*attendance.Attendance, error) {
	for _, a := range f.records {
		if a.EmployeeID == employeeID && !a.Date.Before(dayStart) && !a.Date.After(dayEnd) {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*attendance.Attendance, error) {
	var out []*attendance.Attendance
	for _, a := range f.records {
		if !a.Date.Before(dayStart) && !a.Date.After(dayEnd) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListRange(ctx context.Context, start, end time.Time) ([]*attendance.Attendance, error) {
	return f.ListByDay(ctx, start, end)
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error {
	for i, existing := range f.records {
		if existing.ID == a.ID {
			f.records[i] = a
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	for i, a := range f.records {
		if a.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, dayStart, dayEnd time.Time) (map[attendance.Status]int, error) {
	counts := make(map[attendance.Status]int)
	for _, a := range f.records {
		if !a.Date.Before(dayStart) && !a.Date.After(dayEnd) {
			counts[a.Status]++
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
	byEmployee map[string]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*user.User, error) {
	if u, ok := f.byEmployee[employeeID]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) LinkEmployee(ctx context.Context, userID string, employeeID *string) error {
	return nil
}

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

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminCaller() auth.Caller {
	return auth.Caller{UserID: "admin-user", Role: user.RoleAdmin}
}

func newTestService(attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, userRepo *fakeUserRepo, notifier *fakeNotifier) attendance.Service {
	return NewAttendanceService(attRepo, empRepo, userRepo, notifier, testLogger())
}

func threeEmployees() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: []*employee.Employee{
		{ID: "emp-1", Name: "Alice", Position: "Engineer", Department: "Engineering"},
		{ID: "emp-2", Name: "Bob", Position: "Designer", Department: "Design"},
		{ID: "emp-3", Name: "Carol", Position: "Manager", Department: "Engineering"},
	}}
}

func TestUpsertCreatesNewRecord(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(attRepo, threeEmployees(), &fakeUserRepo{}, &fakeNotifier{})

	resp, created, err := svc.Upsert(context.Background(), adminCaller(), &attendance.UpsertAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-15",
		Status:     "Present",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Present", resp.Status)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Len(t, attRepo.records, 1)
}

func TestUpsertMergesExistingDay(t *testing.T) {
	checkIn := "9:00:00 AM"
	attRepo := &fakeAttendanceRepo{records: []*attendance.Attendance{
		{
			ID:         "att-1",
			EmployeeID: "emp-1",
			Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
			CheckIn:    &checkIn,
		},
	}}
	svc := newTestService(attRepo, threeEmployees(), &fakeUserRepo{}, &fakeNotifier{})

	checkOut := "5:30:00 PM"
	resp, created, err := svc.Upsert(context.Background(), adminCaller(), &attendance.UpsertAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-15",
		Status:     "Half Day",
		CheckOut:   &checkOut,
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Half Day", resp.Status)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, checkIn, *resp.CheckIn)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, checkOut, *resp.CheckOut)
	assert.Len(t, attRepo.records, 1)
}

func TestUpsertUnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, threeEmployees(), &fakeUserRepo{}, &fakeNotifier{})

	_, _, err := svc.Upsert(context.Background(), adminCaller(), &attendance.UpsertAttendanceRequest{
		EmployeeID: "emp-99",
		Date:       "2024-03-15",
		Status:     "Present",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListBuildsRosterWithNullAttendance(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{records: []*attendance.Attendance{
		{ID: "att-1", EmployeeID: "emp-2", Date: day, Status: attendance.StatusWFH},
	}}
	svc := newTestService(attRepo, threeEmployees(), &fakeUserRepo{}, &fakeNotifier{})

	entries, err := svc.List(context.Background(), adminCaller(), attendance.ListFilter{Date: &day})

	require.NoError(t, err)
	require.Len(t, entries, 3)

	byID := make(map[string]*attendance.RosterEntryResponse)
	for _, e := range entries {
		byID[e.EmployeeID] = e
	}
	assert.Nil(t, byID["emp-1"].Attendance)
	assert.Nil(t, byID["emp-3"].Attendance)
	require.NotNil(t, byID["emp-2"].Attendance)
	assert.Equal(t, "WFH", byID["emp-2"].Attendance.Status)
}

func TestListStatusFilterNarrowsRoster(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{records: []*attendance.Attendance{
		{ID: "att-1", EmployeeID: "emp-1", Date: day, Status: attendance.StatusPresent},
		{ID: "att-2", EmployeeID: "emp-2", Date: day, Status: attendance.StatusAbsent},
	}}
	svc := newTestService(attRepo, threeEmployees(), &fakeUserRepo{}, &fakeNotifier{})

	entries, err := svc.List(context.Background(), adminCaller(), attendance.ListFilter{
		Date:   &day,
		Status: "Present",
	})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "emp-1", entries[0].EmployeeID)
}

func TestAssignTaskRequiresPrivilegedRole(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, threeEmployees(), &fakeUserRepo{}, &fakeNotifier{})

	_, err := svc.AssignTask(context.Background(), auth.Caller{UserID: "u1", Role: user.RoleUser}, &attendance.BulkTaskRequest{
		Task: "Write report",
	})

	assert.ErrorIs(t, err, user.ErrHRAccessRequired)
}

func TestAssignTaskTargetsAllEmployeesWhenUnspecified(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(attRepo, threeEmployees(), &fakeUserRepo{}, &fakeNotifier{})

	result, err := svc.AssignTask(context.Background(), adminCaller(), &attendance.BulkTaskRequest{
		Task: "Submit timesheet",
		Date: "2024-03-15",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, "Task assigned to 3 employees (0 updated, 3 created, 0 failed)", result.Message)

	// Created records are Present with a check-in time.
	for _, a := range attRepo.records {
		assert.Equal(t, attendance.StatusPresent, a.Status)
		assert.NotNil(t, a.CheckIn)
		require.NotNil(t, a.Task)
		assert.Equal(t, "Submit timesheet", *a.Task)
	}
}

func TestAssignTaskMixedOutcome(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{
		records: []*attendance.Attendance{
			{ID: "att-1", EmployeeID: "emp-1", Date: day, Status: attendance.StatusWFH},
		},
		createErr: map[string]error{"emp-3": errors.New("insert failed")},
	}
	svc := newTestService(attRepo, threeEmployees(), &fakeUserRepo{}, &fakeNotifier{})

	result, err := svc.AssignTask(context.Background(), adminCaller(), &attendance.BulkTaskRequest{
		EmployeeIDs: []string{"emp-1", "emp-2", "emp-3"},
		Task:        "Inventory check",
		Date:        "2024-03-15",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "emp-3", result.Failures[0].EmployeeID)

	// Updating an existing record patches the task but keeps the status.
	existing, _ := attRepo.GetByID(context.Background(), "att-1")
	assert.Equal(t, attendance.StatusWFH, existing.Status)
	require.NotNil(t, existing.Task)
	assert.Equal(t, "Inventory check", *existing.Task)
}

func TestAssignTaskNotifiesLinkedUsers(t *testing.T) {
	notifier := &fakeNotifier{}
	userRepo := &fakeUserRepo{byEmployee: map[string]*user.User{
		"emp-1": {ID: "user-1"},
	}}
	svc := newTestService(&fakeAttendanceRepo{}, threeEmployees(), userRepo, notifier)

	_, err := svc.AssignTask(context.Background(), adminCaller(), &attendance.BulkTaskRequest{
		EmployeeIDs: []string{"emp-1", "emp-2"},
		Task:        "Team sync prep",
		Date:        "2024-03-15",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, notifier.sent)
}
