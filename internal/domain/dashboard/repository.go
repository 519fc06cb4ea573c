package dashboard

import (
	"context"
)

// Repository covers the count queries that have no home in a single entity
// store.
type Repository interface {
	CountEmployees(ctx context.Context) (int, error)
	CountCandidates(ctx context.Context) (int, error)

	// TopDepartments returns the largest departments by employee count,
	// descending, capped at limit.
	TopDepartments(ctx context.Context, limit int) ([]DepartmentCount, error)
}
