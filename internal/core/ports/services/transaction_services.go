package services

import (
	"context"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/bukukita/bkk_backend/internal/dto"
)

// TransactionService manages bookkeeping entries of a business.
type TransactionService interface {
	CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, domain.ValidationResult, error)
	CreateQuickTransaction(ctx context.Context, businessID string, req dto.QuickTransactionRequest, creatorUserID string) (*domain.Transaction, domain.ValidationResult, error)
	// ValidateTransaction runs the business-rule validator for live form
	// feedback without persisting anything.
	ValidateTransaction(ctx context.Context, businessID string, req dto.ValidateTransactionRequest, userID string) (domain.ValidationResult, error)
	GetTransactionByID(ctx context.Context, businessID, transactionID, userID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, businessID string, from, to *time.Time, userID string) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, businessID, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, domain.ValidationResult, error)
	SoftDeleteTransaction(ctx context.Context, businessID, transactionID, userID string) error
	RestoreTransaction(ctx context.Context, businessID, transactionID, userID string) error
	// ReclassifyStockToCOGS moves a stock transaction's debit side to the
	// business's COGS account, leaving amount, date and credit side untouched.
	ReclassifyStockToCOGS(ctx context.Context, businessID, transactionID, userID string) (*domain.Transaction, error)
}
