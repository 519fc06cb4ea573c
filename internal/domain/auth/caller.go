package auth

import (
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

// Caller identifies the authenticated principal behind a request. Handlers
// build it from verified token claims; services receive it as an explicit
// argument and never read request state themselves.
type Caller struct {
	UserID     string
	Role       user.Role
	EmployeeID *string
}

// CanManageOthers reports whether the caller may act on records owned by
// other users.
func (c Caller) CanManageOthers() bool {
	return c.Role.IsPrivileged()
}

// OwnsEmployee reports whether employeeID is the caller's linked profile.
func (c Caller) OwnsEmployee(employeeID string) bool {
	return c.EmployeeID != nil && *c.EmployeeID == employeeID
}
