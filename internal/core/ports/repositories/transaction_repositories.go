package repositories

import (
	"context"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error)
	// ListTransactions returns non-deleted transactions of a business, newest
	// first, optionally bounded by [from, to] on the transaction date.
	ListTransactions(ctx context.Context, businessID string, from, to *time.Time) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// UpdateDebitAccount rewrites only the debit side of a double-entry row;
	// used by the stock -> COGS reclassification.
	UpdateDebitAccount(ctx context.Context, businessID, transactionID, debitAccountID, userID string, now time.Time) error
	SoftDeleteTransaction(ctx context.Context, businessID, transactionID, userID string, now time.Time) error
	RestoreTransaction(ctx context.Context, businessID, transactionID, userID string, now time.Time) error
}
