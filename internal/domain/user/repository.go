package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*User, error)
	Update(ctx context.Context, u *User) error
	LinkEmployee(ctx context.Context, userID string, employeeID *string) error
}
