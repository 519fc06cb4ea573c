package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/jwt"
)

type authService struct {
	userRepo user.Repository
	jwtSvc   jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo user.Repository, jwtSvc jwt.Service) auth.Service {
	return &authService{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
	}
}

func (s *authService) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleUser
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	u := &user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issueToken(u)
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issueToken(u)
}

func (s *authService) Me(ctx context.Context, caller auth.Caller) (*auth.UserInfo, error) {
	u, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	return auth.UserInfoFromEntity(u), nil
}

func (s *authService) issueToken(u *user.User) (*auth.AuthResponse, error) {
	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &auth.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      auth.UserInfoFromEntity(u),
	}, nil
}
