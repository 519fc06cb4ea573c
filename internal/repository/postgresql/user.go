package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, email, password_hash, role, employee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.EmployeeID,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE employee_id = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by employee: %w", err)
	}

	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	u.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, role = $4, employee_id = $5, updated_at = $6
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.EmployeeID,
		u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) LinkEmployee(ctx context.Context, userID string, employeeID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET employee_id = $1, updated_at = $2 WHERE id = $3`

	tag, err := q.Exec(ctx, query, employeeID, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to link employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	var role string

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.EmployeeID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role = user.Role(role)
	return &u, nil
}
