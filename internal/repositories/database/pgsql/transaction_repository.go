package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bukukita/bkk_backend/internal/apperrors"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	portsrepo "github.com/bukukita/bkk_backend/internal/core/ports/repositories"
	"github.com/bukukita/bkk_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger rows.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction for DB storage.
// The posting variant collapses into the is_double_entry flag plus the
// corresponding nullable columns.
func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		BusinessID:    d.BusinessID,
		Date:          d.Date,
		Category:      string(d.Category),
		Name:          d.Name,
		Description:   d.Description,
		Amount:        d.Amount,
		DeletedAt:     d.DeletedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	switch posting := d.Posting.(type) {
	case domain.DoubleEntryPosting:
		m.IsDoubleEntry = true
		m.DebitAccountID = posting.DebitAccountID
		m.CreditAccountID = posting.CreditAccountID
	case domain.LegacyPosting:
		m.AccountLabel = posting.AccountLabel
	}
	return m
}

// Helper to convert models.Transaction from DB to domain.Transaction.
func toDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		BusinessID:    m.BusinessID,
		Date:          m.Date,
		Category:      domain.TransactionCategory(m.Category),
		Name:          m.Name,
		Description:   m.Description,
		Amount:        m.Amount,
		DeletedAt:     m.DeletedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.IsDoubleEntry {
		d.Posting = domain.DoubleEntryPosting{
			DebitAccountID:  m.DebitAccountID,
			CreditAccountID: m.CreditAccountID,
		}
	} else {
		d.Posting = domain.LegacyPosting{AccountLabel: m.AccountLabel}
	}
	return d
}

const transactionColumns = `transaction_id, business_id, transaction_date, category, name, description, amount, is_double_entry, debit_account_id, credit_account_id, account_label, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var debitID, creditID, accountLabel sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.BusinessID,
		&m.Date,
		&m.Category,
		&m.Name,
		&m.Description,
		&m.Amount,
		&m.IsDoubleEntry,
		&debitID,
		&creditID,
		&accountLabel,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	m.DebitAccountID = debitID.String
	m.CreditAccountID = creditID.String
	m.AccountLabel = accountLabel.String
	return m, nil
}

// SaveTransaction inserts a new ledger row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.BusinessID,
		m.Date,
		m.Category,
		m.Name,
		m.Description,
		m.Amount,
		m.IsDoubleEntry,
		nullIfEmpty(m.DebitAccountID),
		nullIfEmpty(m.CreditAccountID),
		nullIfEmpty(m.AccountLabel),
		m.DeletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction of a business, including
// soft-deleted rows so restore can find them.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_id = $1 AND transaction_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, businessID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves non-deleted transactions of a business, newest
// first, optionally bounded by [from, to] on the transaction date.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, businessID string, from, to *time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_id = $1
		  AND deleted_at IS NULL
		  AND ($2::timestamptz IS NULL OR transaction_date >= $2)
		  AND ($3::timestamptz IS NULL OR transaction_date <= $3)
		ORDER BY transaction_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return transactions, nil
}

// UpdateTransaction persists the mutable fields of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET transaction_date = $3, category = $4, name = $5, description = $6, amount = $7,
		    debit_account_id = $8, credit_account_id = $9, last_updated_at = $10, last_updated_by = $11
		WHERE business_id = $1 AND transaction_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BusinessID,
		m.TransactionID,
		m.Date,
		m.Category,
		m.Name,
		m.Description,
		m.Amount,
		nullIfEmpty(m.DebitAccountID),
		nullIfEmpty(m.CreditAccountID),
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}
	return nil
}

// UpdateDebitAccount rewrites only the debit side of a double-entry row.
func (r *PgxTransactionRepository) UpdateDebitAccount(ctx context.Context, businessID, transactionID, debitAccountID, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET debit_account_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE business_id = $1 AND transaction_id = $2 AND is_double_entry AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, businessID, transactionID, debitAccountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update debit account of transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

// SoftDeleteTransaction marks a row deleted; aggregations and listings skip it.
func (r *PgxTransactionRepository) SoftDeleteTransaction(ctx context.Context, businessID, transactionID, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1 AND transaction_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, businessID, transactionID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

// RestoreTransaction clears the soft-delete marker.
func (r *PgxTransactionRepository) RestoreTransaction(ctx context.Context, businessID, transactionID, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET deleted_at = NULL, last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1 AND transaction_id = $2 AND deleted_at IS NOT NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, businessID, transactionID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to restore transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s is not deleted", apperrors.ErrNotFound, transactionID)
	}
	return nil
}
