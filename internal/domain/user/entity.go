package user

import (
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleHR    Role = "hr"
	RoleUser  Role = "user"
)

// AllRoles returns every assignable role.
func AllRoles() []string {
	return []string{string(RoleAdmin), string(RoleHR), string(RoleUser)}
}

// IsPrivileged reports whether the role may manage records owned by other users.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleHR
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
