package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, email, phone, position, department, date_of_joining, salary, profile, created_at, updated_at`

func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Profile == "" {
		e.Profile = employee.DefaultProfileImage
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO employees (id, name, email, phone, position, department, date_of_joining, salary, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		e.ID,
		e.Name,
		e.Email,
		e.Phone,
		e.Position,
		e.Department,
		e.DateOfJoining,
		e.Salary,
		e.Profile,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	e.UpdatedAt = time.Now()

	query := `
		UPDATE employees
		SET name = $1, email = $2, phone = $3, position = $4, department = $5,
		    date_of_joining = $6, salary = $7, profile = $8, updated_at = $9
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		e.Name,
		e.Email,
		e.Phone,
		e.Position,
		e.Department,
		e.DateOfJoining,
		e.Salary,
		e.Profile,
		e.UpdatedAt,
		e.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Phone,
		&e.Position,
		&e.Department,
		&e.DateOfJoining,
		&e.Salary,
		&e.Profile,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
