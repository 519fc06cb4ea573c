package dashboard

import (
	"time"
)

type AttendanceBreakdown struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	HalfDay int `json:"half_day"`
	WFH     int `json:"wfh"`
}

type CandidatePipeline struct {
	New         int `json:"new"`
	Shortlisted int `json:"shortlisted"`
	Interview   int `json:"interview"`
	Selected    int `json:"selected"`
	Rejected    int `json:"rejected"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// TrendPoint is one month bucket of the leave trend, labeled with the
// 3-letter month abbreviation.
type TrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	TotalEmployees  int                 `json:"total_employees"`
	TotalCandidates int                 `json:"total_candidates"`
	PendingLeaves   int                 `json:"pending_leaves"`
	ApprovedLeaves  int                 `json:"approved_leaves"`
	TodayAttendance AttendanceBreakdown `json:"today_attendance"`
	Pipeline        CandidatePipeline   `json:"candidate_pipeline"`
	TopDepartments  []DepartmentCount   `json:"top_departments"`
	LeaveTrend      []TrendPoint        `json:"leave_trend"`
}

// Activity is one row of the recent activity feed, merged from the newest
// candidates and leave requests.
type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
