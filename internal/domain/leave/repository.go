package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Leave) error
	GetByID(ctx context.Context, id string) (*Leave, error)
	List(ctx context.Context) ([]*Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Leave, error)
	ListRecent(ctx context.Context, limit int) ([]*Leave, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id string) error

	// CountByStatus tallies all leave requests per lifecycle state.
	CountByStatus(ctx context.Context) (map[Status]int, error)

	// CountByStartMonth buckets leaves by the calendar month of their start
	// date, keyed "2006-01", for start dates at or after from.
	CountByStartMonth(ctx context.Context, from time.Time) (map[string]int, error)
}
