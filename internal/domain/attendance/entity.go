package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
	StatusWFH     Status = "WFH"
)

// AllStatuses returns the recordable attendance statuses.
func AllStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusHalfDay),
		string(StatusWFH),
	}
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CheckIn    *string
	CheckOut   *string
	Task       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for list views
	EmployeeName       *string
	EmployeePosition   *string
	EmployeeDepartment *string
}

// DayWindow returns the inclusive bounds of the calendar day containing t,
// from midnight to the last representable millisecond of the day.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}

// RosterEntry pairs an employee with their attendance record for a day.
// Attendance is nil when nothing was recorded.
type RosterEntry struct {
	EmployeeID         string
	EmployeeName       string
	EmployeePosition   string
	EmployeeDepartment string
	Attendance         *Attendance
}
