package repositories

import (
	"context"

	"github.com/bukukita/bkk_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for chart-of-accounts rows.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
	FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error)
	// ListAccounts returns all accounts of a business ordered by sort_order
	// then account_code. The aggregation engine needs the full chart.
	ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, businessID, accountID, userID string) error
}
