package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	GetByID(ctx context.Context, id string) (*Attendance, error)

	// GetByEmployeeAndDay returns the record whose date falls inside the
	// inclusive [dayStart, dayEnd] window, or (nil, nil) when absent.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*Attendance, error)

	// ListByDay returns all records inside the inclusive day window.
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*Attendance, error)

	// ListRange returns records between start and end inclusive, joined with
	// employee name and department, ordered by date then employee name.
	ListRange(ctx context.Context, start, end time.Time) ([]*Attendance, error)

	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, id string) error

	// CountByStatus tallies records inside the day window per status.
	CountByStatus(ctx context.Context, dayStart, dayEnd time.Time) (map[Status]int, error)
}
