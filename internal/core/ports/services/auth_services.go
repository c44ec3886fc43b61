package services

import (
	"context"

	"github.com/bukukita/bkk_backend/internal/dto"
)

// AuthService registers users, authenticates them and issues bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
