package leave

import (
	"math"
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// AllStatuses returns the leave lifecycle states.
func AllStatuses() []string {
	return []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
}

// DefaultRejectionReason is recorded when a rejection carries no reason.
const DefaultRejectionReason = "No reason provided"

type Leave struct {
	ID              string
	EmployeeID      string
	LeaveType       string
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
	Reason          string
	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectedBy      *string
	RejectedAt      *time.Time
	RejectionReason *string
	AttachmentPath  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for list views
	EmployeeName       *string
	EmployeeDepartment *string
	EmployeePosition   *string
}

// TotalDaysBetween counts the calendar days a leave spans, inclusive of both
// endpoints. The difference is taken absolute, so swapped arguments yield the
// same count, and a same-day leave counts as 1.
func TotalDaysBetween(start, end time.Time) int {
	diff := math.Abs(end.Sub(start).Hours() / 24)
	return int(math.Ceil(diff)) + 1
}

// Approve stamps the approving actor and flips the status. Stamps are
// overwritten on repeated transitions.
func (l *Leave) Approve(actorID string, at time.Time) {
	l.Status = StatusApproved
	l.ApprovedBy = &actorID
	l.ApprovedAt = &at
}

// Reject stamps the rejecting actor, recording reason or the default.
func (l *Leave) Reject(actorID string, at time.Time, reason string) {
	if reason == "" {
		reason = DefaultRejectionReason
	}
	l.Status = StatusRejected
	l.RejectedBy = &actorID
	l.RejectedAt = &at
	l.RejectionReason = &reason
}
