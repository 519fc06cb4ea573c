package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrHRAccessRequired = errors.New("admin or hr access required")
	ErrNoLinkedEmployee = errors.New("no employee profile linked to this account")
)
