package notification

import (
	"time"
)

type Type string

const (
	TypeLeave      Type = "leave"
	TypeAttendance Type = "attendance"
	TypeEmployee   Type = "employee"
	TypeCandidate  Type = "candidate"
	TypeSystem     Type = "system"
)

// AllTypes returns the valid notification categories.
func AllTypes() []string {
	return []string{
		string(TypeLeave),
		string(TypeAttendance),
		string(TypeEmployee),
		string(TypeCandidate),
		string(TypeSystem),
	}
}

type Notification struct {
	ID          string
	RecipientID string
	Title       string
	Message     string
	Type        Type
	Link        *string
	Read        bool
	CreatedAt   time.Time
}
