package attendance

import (
	"context"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
)

type Service interface {
	// List returns the day roster: every employee overlaid with their
	// attendance for the filter date (today when unset). The employee and
	// status filters narrow the roster after the overlay.
	List(ctx context.Context, caller auth.Caller, filter ListFilter) ([]*RosterEntryResponse, error)

	// Upsert records attendance for an employee-day, updating in place when a
	// record for that day already exists. The returned flag is true when a new
	// record was created.
	Upsert(ctx context.Context, caller auth.Caller, req *UpsertAttendanceRequest) (*AttendanceResponse, bool, error)

	Update(ctx context.Context, caller auth.Caller, id string, req *UpdateAttendanceRequest) (*AttendanceResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error

	// AssignTask writes the task onto each targeted employee's attendance for
	// the day, creating present-status records where none exist. Individual
	// failures are isolated and accounted for in the result.
	AssignTask(ctx context.Context, caller auth.Caller, req *BulkTaskRequest) (*BulkTaskResult, error)
}
