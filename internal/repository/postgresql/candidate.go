package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peoplehub/hrm-backend-go/internal/domain/candidate"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type candidateRepository struct {
	db *database.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *database.DB) candidate.Repository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, name, email, phone, position, status, resume_path, created_at, updated_at`

func (r *candidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = candidate.StatusNew
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO candidates (id, name, email, phone, position, status, resume_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Position,
		string(c.Status),
		c.ResumePath,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return candidate.ErrEmailExists
		}
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, candidate.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return c, nil
}

func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`

	c, err := scanCandidate(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, candidate.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate by email: %w", err)
	}

	return c, nil
}

func (r *candidateRepository) List(ctx context.Context) ([]*candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	return collectCandidates(rows)
}

func (r *candidateRepository) ListRecent(ctx context.Context, limit int) ([]*candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent candidates: %w", err)
	}
	defer rows.Close()

	return collectCandidates(rows)
}

func (r *candidateRepository) CountByStatus(ctx context.Context) (map[candidate.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT status, COUNT(*) FROM candidates GROUP BY status`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[candidate.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan candidate count: %w", err)
		}
		counts[candidate.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidate counts: %w", err)
	}

	return counts, nil
}

func (r *candidateRepository) Update(ctx context.Context, c *candidate.Candidate) error {
	q := GetQuerier(ctx, r.db)

	c.UpdatedAt = time.Now()

	query := `
		UPDATE candidates
		SET name = $1, email = $2, phone = $3, position = $4, status = $5, resume_path = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.Position,
		string(c.Status),
		c.ResumePath,
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return candidate.ErrEmailExists
		}
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

func scanCandidate(row pgx.Row) (*candidate.Candidate, error) {
	var c candidate.Candidate
	var status string

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Position,
		&status,
		&c.ResumePath,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = candidate.Status(status)
	return &c, nil
}

func collectCandidates(rows pgx.Rows) ([]*candidate.Candidate, error) {
	var candidates []*candidate.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}
