package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/report"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records []*attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (f *fakeAttendanceRepo) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) ListRange(ctx context.Context, start, end time.Time) ([]*attendance.Attendance, error) {
	return f.records, nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error                { return nil }
func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, dayStart, dayEnd time.Time) (map[attendance.Status]int, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func TestAttendanceWorkbookRequiresPrivilegedRole(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{})

	_, _, err := svc.AttendanceWorkbook(context.Background(), auth.Caller{UserID: "u1", Role: user.RoleUser}, &report.AttendanceReportRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})

	assert.ErrorIs(t, err, user.ErrHRAccessRequired)
}

func TestAttendanceWorkbookRendersRows(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []*attendance.Attendance{
		{
			EmployeeID:         "emp-1",
			Date:               time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:             attendance.StatusPresent,
			CheckIn:            strPtr("9:00:00 AM"),
			EmployeeName:       strPtr("Alice"),
			EmployeeDepartment: strPtr("Engineering"),
			EmployeePosition:   strPtr("Engineer"),
		},
	}}
	svc := NewReportService(repo)

	data, filename, err := svc.AttendanceWorkbook(context.Background(), auth.Caller{UserID: "hr-1", Role: user.RoleHR}, &report.AttendanceReportRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "attendance-2024-03-01-2024-03-31.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2024-03-15", rows[1][0])
	assert.Equal(t, "Alice", rows[1][1])
	assert.Equal(t, "Engineering", rows[1][2])
	assert.Equal(t, "Present", rows[1][4])
}
