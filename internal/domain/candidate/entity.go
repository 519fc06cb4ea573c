package candidate

import (
	"time"
)

type Status string

const (
	StatusNew         Status = "New"
	StatusShortlisted Status = "Shortlisted"
	StatusInterview   Status = "Interview"
	StatusSelected    Status = "Selected"
	StatusRejected    Status = "Rejected"
)

// AllStatuses returns the recruitment pipeline stages in order.
func AllStatuses() []string {
	return []string{
		string(StatusNew),
		string(StatusShortlisted),
		string(StatusInterview),
		string(StatusSelected),
		string(StatusRejected),
	}
}

type Candidate struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Position   string
	Status     Status
	ResumePath *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
