package candidate

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	List(ctx context.Context) ([]*Candidate, error)
	ListRecent(ctx context.Context, limit int) ([]*Candidate, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
	Update(ctx context.Context, c *Candidate) error
	Delete(ctx context.Context, id string) error
}
