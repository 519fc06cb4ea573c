package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/candidate"
	"github.com/peoplehub/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
)

// trendMonths is the width of the rolling leave trend, current month included.
const trendMonths = 6

// activityFeedSize caps the merged recent activity feed.
const activityFeedSize = 10

// recentPerSource is how many rows each source contributes to the feed.
const recentPerSource = 5

type dashboardService struct {
	dashboardRepo  dashboard.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	candidateRepo  candidate.Repository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	dashboardRepo dashboard.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	candidateRepo candidate.Repository,
) dashboard.Service {
	return &dashboardService{
		dashboardRepo:  dashboardRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		candidateRepo:  candidateRepo,
	}
}

// Stats fans the independent aggregate queries out and assembles the
// snapshot. Everything is recomputed per call.
func (s *dashboardService) Stats(ctx context.Context, caller auth.Caller) (*dashboard.StatsResponse, error) {
	stats := &dashboard.StatsResponse{}
	now := time.Now()
	dayStart, dayEnd := attendance.DayWindow(now)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.dashboardRepo.CountEmployees(gctx)
		if err != nil {
			return err
		}
		stats.TotalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.dashboardRepo.CountCandidates(gctx)
		if err != nil {
			return err
		}
		stats.TotalCandidates = count
		return nil
	})

	g.Go(func() error {
		counts, err := s.leaveRepo.CountByStatus(gctx)
		if err != nil {
			return err
		}
		stats.PendingLeaves = counts[leave.StatusPending]
		stats.ApprovedLeaves = counts[leave.StatusApproved]
		return nil
	})

	g.Go(func() error {
		counts, err := s.attendanceRepo.CountByStatus(gctx, dayStart, dayEnd)
		if err != nil {
			return err
		}
		stats.TodayAttendance = dashboard.AttendanceBreakdown{
			Present: counts[attendance.StatusPresent],
			Absent:  counts[attendance.StatusAbsent],
			HalfDay: counts[attendance.StatusHalfDay],
			WFH:     counts[attendance.StatusWFH],
		}
		return nil
	})

	g.Go(func() error {
		counts, err := s.candidateRepo.CountByStatus(gctx)
		if err != nil {
			return err
		}
		stats.Pipeline = dashboard.CandidatePipeline{
			New:         counts[candidate.StatusNew],
			Shortlisted: counts[candidate.StatusShortlisted],
			Interview:   counts[candidate.StatusInterview],
			Selected:    counts[candidate.StatusSelected],
			Rejected:    counts[candidate.StatusRejected],
		}
		return nil
	})

	g.Go(func() error {
		departments, err := s.dashboardRepo.TopDepartments(gctx, 5)
		if err != nil {
			return err
		}
		stats.TopDepartments = departments
		return nil
	})

	g.Go(func() error {
		trend, err := s.leaveTrend(gctx, now)
		if err != nil {
			return err
		}
		stats.LeaveTrend = trend
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// leaveTrend builds exactly trendMonths buckets ending at the current month,
// oldest first, zero-filled where no leaves start in a month.
func (s *dashboardService) leaveTrend(ctx context.Context, now time.Time) ([]dashboard.TrendPoint, error) {
	oldest := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(trendMonths - 1), 0)

	counts, err := s.leaveRepo.CountByStartMonth(ctx, oldest)
	if err != nil {
		return nil, err
	}

	trend := make([]dashboard.TrendPoint, 0, trendMonths)
	for i := 0; i < trendMonths; i++ {
		month := oldest.AddDate(0, i, 0)
		trend = append(trend, dashboard.TrendPoint{
			Month: month.Format("Jan"),
			Count: counts[month.Format("2006-01")],
		})
	}

	return trend, nil
}

// Activities merges the newest candidates and leaves into one feed, newest
// first, truncated to activityFeedSize.
func (s *dashboardService) Activities(ctx context.Context, caller auth.Caller) ([]*dashboard.Activity, error) {
	var (
		candidates []*candidate.Candidate
		leaves     []*leave.Leave
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		candidates, err = s.candidateRepo.ListRecent(gctx, recentPerSource)
		return err
	})

	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListRecent(gctx, recentPerSource)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	activities := make([]*dashboard.Activity, 0, len(candidates)+len(leaves))

	for _, c := range candidates {
		activities = append(activities, &dashboard.Activity{
			Type:        "candidate",
			Title:       fmt.Sprintf("New candidate: %s", c.Name),
			Description: fmt.Sprintf("Applied for %s", c.Position),
			Status:      string(c.Status),
			CreatedAt:   c.CreatedAt,
		})
	}

	for _, l := range leaves {
		name := l.EmployeeID
		if l.EmployeeName != nil {
			name = *l.EmployeeName
		}
		activities = append(activities, &dashboard.Activity{
			Type:        "leave",
			Title:       fmt.Sprintf("Leave request: %s", name),
			Description: fmt.Sprintf("%s leave, %d day(s)", l.LeaveType, l.TotalDays),
			Status:      string(l.Status),
			CreatedAt:   l.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	if len(activities) > activityFeedSize {
		activities = activities[:activityFeedSize]
	}

	return activities, nil
}
