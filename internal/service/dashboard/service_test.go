package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/candidate"
	"github.com/peoplehub/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

type fakeDashboardRepo struct {
	employees   int
	candidates  int
	departments []dashboard.DepartmentCount
}

func (f *fakeDashboardRepo) CountEmployees(ctx context.Context) (int, error) {
	return f.employees, nil
}

func (f *fakeDashboardRepo) CountCandidates(ctx context.Context) (int, error) {
	return f.candidates, nil
}

func (f *fakeDashboardRepo) TopDepartments(ctx context.Context, limit int) ([]dashboard.DepartmentCount, error) {
	if len(f.departments) > limit {
		return f.departments[:limit], nil
	}
	return f.departments, nil
}

type fakeAttendanceRepo struct {
	statusCounts map[attendance.Status]int
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
	return nil, nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error                { return nil }
func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, dayStart, dayEnd time.Time) (map[attendance.Status]int, error) {
	return f.statusCounts, nil
}

type fakeLeaveRepo struct {
	statusCounts map[leave.Status]int
	monthCounts  map[string]int
	recent       []*leave.Leave
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l *leave.Leave) error { return nil }
func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (*leave.Leave, error) {
	return nil, leave.ErrLeaveNotFound
}
func (f *fakeLeaveRepo) List(ctx context.Context) ([]*leave.Leave, error) { return nil, nil }
func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*leave.Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) ListRecent(ctx context.Context, limit int) ([]*leave.Leave, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}
func (f *fakeLeaveRepo) Update(ctx context.Context, l *leave.Leave) error { return nil }
func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error      { return nil }
func (f *fakeLeaveRepo) CountByStatus(ctx context.Context) (map[leave.Status]int, error) {
	return f.statusCounts, nil
}
func (f *fakeLeaveRepo) CountByStartMonth(ctx context.Context, from time.Time) (map[string]int, error) {
	return f.monthCounts, nil
}

type fakeCandidateRepo struct {
	statusCounts map[candidate.Status]int
	recent       []*candidate.Candidate
}

func (f *fakeCandidateRepo) Create(ctx context.Context, c *candidate.Candidate) error { return nil }
func (f *fakeCandidateRepo) GetByID(ctx context.Context, id string) (*candidate.Candidate, error) {
	return nil, candidate.ErrCandidateNotFound
}
func (f *fakeCandidateRepo) GetByEmail(ctx context.Context, email string) (*candidate.Candidate, error) {
	return nil, candidate.ErrCandidateNotFound
}
func (f *fakeCandidateRepo) List(ctx context.Context) ([]*candidate.Candidate, error) {
	return nil, nil
}
func (f *fakeCandidateRepo) ListRecent(ctx context.Context, limit int) ([]*candidate.Candidate, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}
func (f *fakeCandidateRepo) CountByStatus(ctx context.Context) (map[candidate.Status]int, error) {
	return f.statusCounts, nil
}
func (f *fakeCandidateRepo) Update(ctx context.Context, c *candidate.Candidate) error { return nil }
func (f *fakeCandidateRepo) Delete(ctx context.Context, id string) error              { return nil }

func testCaller() auth.Caller {
	return auth.Caller{UserID: "admin-user", Role: user.RoleAdmin}
}

func TestStatsAssemblesSnapshot(t *testing.T) {
	now := time.Now()
	thisMonth := now.Format("2006-01")

	svc := NewDashboardService(
		&fakeDashboardRepo{
			employees:  42,
			candidates: 7,
			departments: []dashboard.DepartmentCount{
				{Department: "Engineering", Count: 20},
				{Department: "Design", Count: 10},
			},
		},
		&fakeAttendanceRepo{statusCounts: map[attendance.Status]int{
			attendance.StatusPresent: 30,
			attendance.StatusAbsent:  5,
			attendance.StatusHalfDay: 4,
			attendance.StatusWFH:     3,
		}},
		&fakeLeaveRepo{
			statusCounts: map[leave.Status]int{
				leave.StatusPending:  6,
				leave.StatusApproved: 11,
			},
			monthCounts: map[string]int{thisMonth: 4},
		},
		&fakeCandidateRepo{statusCounts: map[candidate.Status]int{
			candidate.StatusNew:       3,
			candidate.StatusInterview: 2,
		}},
	)

	stats, err := svc.Stats(context.Background(), testCaller())

	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalEmployees)
	assert.Equal(t, 7, stats.TotalCandidates)
	assert.Equal(t, 6, stats.PendingLeaves)
	assert.Equal(t, 11, stats.ApprovedLeaves)
	assert.Equal(t, 30, stats.TodayAttendance.Present)
	assert.Equal(t, 3, stats.TodayAttendance.WFH)
	assert.Equal(t, 3, stats.Pipeline.New)
	assert.Equal(t, 2, stats.Pipeline.Interview)
	assert.Len(t, stats.TopDepartments, 2)

	// Six buckets, oldest first, zero-filled, current month last.
	require.Len(t, stats.LeaveTrend, 6)
	assert.Equal(t, now.Format("Jan"), stats.LeaveTrend[5].Month)
	assert.Equal(t, 4, stats.LeaveTrend[5].Count)
	for _, point := range stats.LeaveTrend[:5] {
		assert.Zero(t, point.Count)
	}
}

func TestLeaveTrendLabelsAreChronological(t *testing.T) {
	svc := NewDashboardService(
		&fakeDashboardRepo{},
		&fakeAttendanceRepo{},
		&fakeLeaveRepo{monthCounts: map[string]int{}},
		&fakeCandidateRepo{},
	)

	stats, err := svc.Stats(context.Background(), testCaller())
	require.NoError(t, err)
	require.Len(t, stats.LeaveTrend, 6)

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)
	for i, point := range stats.LeaveTrend {
		assert.Equal(t, first.AddDate(0, i, 0).Format("Jan"), point.Month)
	}
}

func TestActivitiesMergesNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	name := "Alice"

	svc := NewDashboardService(
		&fakeDashboardRepo{},
		&fakeAttendanceRepo{},
		&fakeLeaveRepo{recent: []*leave.Leave{
			{
				ID:           "leave-1",
				EmployeeID:   "emp-1",
				EmployeeName: &name,
				LeaveType:    "Annual",
				TotalDays:    2,
				Status:       leave.StatusPending,
				CreatedAt:    base.Add(2 * time.Hour),
			},
		}},
		&fakeCandidateRepo{recent: []*candidate.Candidate{
			{ID: "cand-1", Name: "Dana", Position: "Engineer", Status: candidate.StatusNew, CreatedAt: base.Add(time.Hour)},
			{ID: "cand-2", Name: "Evan", Position: "Designer", Status: candidate.StatusInterview, CreatedAt: base.Add(3 * time.Hour)},
		}},
	)

	activities, err := svc.Activities(context.Background(), testCaller())

	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "candidate", activities[0].Type)
	assert.Contains(t, activities[0].Title, "Evan")
	assert.Equal(t, "leave", activities[1].Type)
	assert.Contains(t, activities[1].Title, "Alice")
	assert.Equal(t, "candidate", activities[2].Type)
}

func TestActivitiesTruncatesToTen(t *testing.T) {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	var candidates []*candidate.Candidate
	for i := 0; i < 8; i++ {
		candidates = append(candidates, &candidate.Candidate{
			Name:      "Candidate",
			Position:  "Engineer",
			Status:    candidate.StatusNew,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	var leaves []*leave.Leave
	for i := 0; i < 8; i++ {
		leaves = append(leaves, &leave.Leave{
			EmployeeID: "emp-1",
			LeaveType:  "Annual",
			Status:     leave.StatusPending,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		})
	}

	svc := NewDashboardService(
		&fakeDashboardRepo{},
		&fakeAttendanceRepo{},
		&fakeLeaveRepo{recent: leaves},
		&fakeCandidateRepo{recent: candidates},
	)

	activities, err := svc.Activities(context.Background(), testCaller())

	require.NoError(t, err)
	// Each source contributes at most 5, merged and capped at 10.
	assert.Len(t, activities, 10)
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].CreatedAt.After(activities[i-1].CreatedAt))
	}
}
