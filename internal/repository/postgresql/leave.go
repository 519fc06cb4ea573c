package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// NewLeaveRepository creates a new leave repository
func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

const leaveSelect = `
	SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.total_days,
	       l.reason, l.status, l.approved_by, l.approved_at, l.rejected_by, l.rejected_at,
	       l.rejection_reason, l.attachment_path, l.created_at, l.updated_at,
	       e.name, e.department, e.position
	FROM leaves l
	JOIN employees e ON e.id = l.employee_id
`

func (r *leaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Status == "" {
		l.Status = leave.StatusPending
	}
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	query := `
		INSERT INTO leaves (id, employee_id, leave_type, start_date, end_date, total_days,
		                    reason, status, attachment_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		l.ID,
		l.EmployeeID,
		l.LeaveType,
		l.StartDate,
		l.EndDate,
		l.TotalDays,
		l.Reason,
		string(l.Status),
		l.AttachmentPath,
		l.CreatedAt,
		l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create leave: %w", err)
	}

	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, leaveSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) List(ctx context.Context) ([]*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveSelect+` ORDER BY l.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveSelect+` WHERE l.employee_id = $1 ORDER BY l.created_at DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) ListRecent(ctx context.Context, limit int) ([]*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveSelect+` ORDER BY l.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	l.UpdatedAt = time.Now()

	query := `
		UPDATE leaves
		SET leave_type = $1, start_date = $2, end_date = $3, total_days = $4, reason = $5,
		    status = $6, approved_by = $7, approved_at = $8, rejected_by = $9, rejected_at = $10,
		    rejection_reason = $11, attachment_path = $12, updated_at = $13
		WHERE id = $14
	`

	tag, err := q.Exec(ctx, query,
		l.LeaveType,
		l.StartDate,
		l.EndDate,
		l.TotalDays,
		l.Reason,
		string(l.Status),
		l.ApprovedBy,
		l.ApprovedAt,
		l.RejectedBy,
		l.RejectedAt,
		l.RejectionReason,
		l.AttachmentPath,
		l.UpdatedAt,
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepository) CountByStatus(ctx context.Context) (map[leave.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM leaves GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[leave.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan leave count: %w", err)
		}
		counts[leave.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave counts: %w", err)
	}

	return counts, nil
}

func (r *leaveRepository) CountByStartMonth(ctx context.Context, from time.Time) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(start_date, 'YYYY-MM') AS month, COUNT(*)
		FROM leaves
		WHERE start_date >= $1
		GROUP BY month
	`

	rows, err := q.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by month: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var month string
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, fmt.Errorf("failed to scan month count: %w", err)
		}
		counts[month] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate month counts: %w", err)
	}

	return counts, nil
}

func scanLeave(row pgx.Row) (*leave.Leave, error) {
	var l leave.Leave
	var status string

	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.TotalDays,
		&l.Reason,
		&status,
		&l.ApprovedBy,
		&l.ApprovedAt,
		&l.RejectedBy,
		&l.RejectedAt,
		&l.RejectionReason,
		&l.AttachmentPath,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.EmployeeName,
		&l.EmployeeDepartment,
		&l.EmployeePosition,
	)
	if err != nil {
		return nil, err
	}

	l.Status = leave.Status(status)
	return &l, nil
}

func collectLeaves(rows pgx.Rows) ([]*leave.Leave, error) {
	var leaves []*leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaves: %w", err)
	}
	return leaves, nil
}
