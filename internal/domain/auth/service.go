package auth

import (
	"context"
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Me(ctx context.Context, caller Caller) (*UserInfo, error)
}
