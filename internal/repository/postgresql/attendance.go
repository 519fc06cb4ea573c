package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO attendances (id, employee_id, date, status, check_in, check_out, task, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		a.ID,
		a.EmployeeID,
		a.Date,
		string(a.Status),
		a.CheckIn,
		a.CheckOut,
		a.Task,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		// The unique index on (employee_id, date) is the only concurrency
		// guard for the employee-day upsert; surface the loser's violation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrDuplicateDay
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in, check_out, task, created_at, updated_at
		FROM attendances
		WHERE id = $1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in, check_out, task, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, dayStart, dayEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for day: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in, check_out, task, created_at, updated_at
		FROM attendances
		WHERE date >= $1 AND date <= $2
	`

	rows, err := q.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by day: %w", err)
	}
	defer rows.Close()

	var records []*attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

func (r *attendanceRepository) ListRange(ctx context.Context, start, end time.Time) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in, a.check_out, a.task, a.created_at, a.updated_at,
		       e.name, e.position, e.department
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date, e.name
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	var records []*attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		var status string
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.Date,
			&status,
			&a.CheckIn,
			&a.CheckOut,
			&a.Task,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeName,
			&a.EmployeePosition,
			&a.EmployeeDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		a.Status = attendance.Status(status)
		records = append(records, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance range: %w", err)
	}

	return records, nil
}

func (r *attendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	a.UpdatedAt = time.Now()

	query := `
		UPDATE attendances
		SET status = $1, check_in = $2, check_out = $3, task = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		string(a.Status),
		a.CheckIn,
		a.CheckOut,
		a.Task,
		a.UpdatedAt,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, dayStart, dayEnd time.Time) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE date >= $1 AND date <= $2
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts[attendance.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance counts: %w", err)
	}

	return counts, nil
}

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var a attendance.Attendance
	var status string

	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&status,
		&a.CheckIn,
		&a.CheckOut,
		&a.Task,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Status = attendance.Status(status)
	return &a, nil
}
