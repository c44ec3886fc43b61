package services

import (
	"context"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/bukukita/bkk_backend/internal/dto"
)

// AccountService manages a business's chart of accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, businessID, accountID, userID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, businessID, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, businessID, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, businessID, accountID, userID string) error
	// SeedSystemAccounts creates the standard chart for a new business.
	SeedSystemAccounts(ctx context.Context, businessID, creatorUserID string) error
}
