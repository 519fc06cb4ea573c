package postgresql

import (
	"context"
	"fmt"

	"github.com/peoplehub/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) CountCandidates(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) TopDepartments(ctx context.Context, limit int) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, COUNT(*) AS cnt
		FROM employees
		GROUP BY department
		ORDER BY cnt DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top departments: %w", err)
	}
	defer rows.Close()

	var departments []dashboard.DepartmentCount
	for rows.Next() {
		var dc dashboard.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		departments = append(departments, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department counts: %w", err)
	}

	return departments, nil
}
