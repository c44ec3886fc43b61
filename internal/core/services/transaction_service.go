package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bukukita/bkk_backend/internal/apperrors"
	"github.com/bukukita/bkk_backend/internal/core/accounting"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	portsrepo "github.com/bukukita/bkk_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/bukukita/bkk_backend/internal/dto"
	"github.com/google/uuid"
)

var (
	// ErrNotStockTransaction is returned when reclassification is requested
	// for a transaction that is not a stock purchase.
	ErrNotStockTransaction = errors.New("transaction is not a stock transaction")
	// ErrNoExpenseAccount is returned when no COGS candidate exists.
	ErrNoExpenseAccount = errors.New("no expense account configured")
	// ErrNotDeleted is returned when restoring a transaction that is not soft-deleted.
	ErrNotDeleted = errors.New("transaction is not deleted")
)

// transactionService manages bookkeeping entries: validated creation, the
// quick-add derivation path, updates, soft delete and the stock -> COGS flow.
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.AccountRepository
	policy      accounting.ChartPolicy
}

// TransactionServiceOption is a functional option for configuring the transaction service.
type TransactionServiceOption func(*transactionService)

// WithTransactionBusinessAuthorizer sets the business authorizer for the transaction service.
func WithTransactionBusinessAuthorizer(authorizer portssvc.BusinessAuthorizer) TransactionServiceOption {
	return func(s *transactionService) {
		s.BusinessAuthorizer = authorizer
	}
}

// NewTransactionService creates a new transaction service with the provided options.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository, options ...TransactionServiceOption) portssvc.TransactionService {
	svc := &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		policy:      accounting.DefaultChartPolicy(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionService = (*transactionService)(nil)

// resolveCandidateAccounts fetches both sides of a prospective pair. Missing
// accounts come back as nil pointers; the validator turns those into
// ACCOUNT_NOT_FOUND findings rather than this layer erroring out.
func (s *transactionService) resolveCandidateAccounts(ctx context.Context, businessID, debitID, creditID string) (*domain.Account, *domain.Account, error) {
	ids := make([]string, 0, 2)
	if debitID != "" {
		ids = append(ids, debitID)
	}
	if creditID != "" {
		ids = append(ids, creditID)
	}
	if len(ids) == 0 {
		return nil, nil, nil
	}

	found, err := s.accountRepo.FindAccountsByIDs(ctx, businessID, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve accounts: %w", err)
	}

	var debit, credit *domain.Account
	if a, ok := found[debitID]; ok {
		debit = &a
	}
	if a, ok := found[creditID]; ok {
		credit = &a
	}
	return debit, credit, nil
}

// CreateTransaction validates and persists a full double-entry transaction.
// Validation findings are returned as data; the transaction is only persisted
// when the result is valid.
func (s *transactionService) CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, domain.ValidationResult, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, businessID, domain.RoleManager); err != nil {
		return nil, domain.ValidationResult{}, err
	}

	debit, credit, err := s.resolveCandidateAccounts(ctx, businessID, req.DebitAccountID, req.CreditAccountID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	result := accounting.Validate(accounting.TransactionCandidate{
		Amount:          req.Amount,
		Date:            req.Date,
		Name:            req.Name,
		Description:     req.Description,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		DebitAccount:    debit,
		CreditAccount:   credit,
	})
	if !result.IsValid {
		return nil, result, nil
	}

	category := req.Category
	if category == "" {
		category = accounting.DetectCategory(s.policy, debit.AccountCode, credit.AccountCode, debit, credit)
	}

	date, _ := time.Parse("2006-01-02", req.Date) // validated above
	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    businessID,
		Date:          date,
		Category:      category,
		Name:          req.Name,
		Description:   req.Description,
		Amount:        req.Amount,
		Posting: domain.DoubleEntryPosting{
			DebitAccountID:  req.DebitAccountID,
			CreditAccountID: req.CreditAccountID,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("business_id", businessID))
		return nil, result, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category", string(txn.Category)))
	return &txn, result, nil
}

// CreateQuickTransaction derives the double-entry pair from the simplified
// single-account form and persists it through the same validation path.
func (s *transactionService) CreateQuickTransaction(ctx context.Context, businessID string, req dto.QuickTransactionRequest, creatorUserID string) (*domain.Transaction, domain.ValidationResult, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, businessID, domain.RoleManager); err != nil {
		return nil, domain.ValidationResult{}, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, businessID)
	if err != nil {
		return nil, domain.ValidationResult{}, fmt.Errorf("failed to list accounts: %w", err)
	}

	date, dateErr := time.Parse("2006-01-02", req.Date)
	if dateErr != nil {
		return nil, domain.ValidationResult{
			Errors: []domain.ValidationIssue{{
				Field:    "date",
				Code:     domain.CodeInvalidDate,
				Message:  "date must be a valid calendar date (YYYY-MM-DD)",
				Severity: domain.SeverityError,
			}},
			Warnings: []domain.ValidationIssue{},
		}, nil
	}

	resolved, err := accounting.ResolveQuickTransaction(s.policy, accounting.QuickTransactionInput{
		Amount:            req.Amount,
		SelectedAccountID: req.SelectedAccountID,
		Name:              req.Name,
		Date:              date,
		Notes:             req.Notes,
	}, accounts)
	if err != nil {
		// Resolver precondition failures surface as validation findings so the
		// form renders them inline like any other input problem.
		return nil, domain.ValidationResult{
			Errors: []domain.ValidationIssue{{
				Field:    "selectedAccountID",
				Code:     domain.CodeAccountNotFound,
				Message:  err.Error(),
				Severity: domain.SeverityError,
			}},
			Warnings: []domain.ValidationIssue{},
		}, nil
	}

	description := resolved.Description
	if description == "" {
		description = resolved.Name
	}

	return s.CreateTransaction(ctx, businessID, dto.CreateTransactionRequest{
		Date:            req.Date,
		Name:            resolved.Name,
		Description:     description,
		Amount:          resolved.Amount,
		DebitAccountID:  resolved.DebitAccountID,
		CreditAccountID: resolved.CreditAccountID,
		Category:        resolved.Category,
	}, creatorUserID)
}

// ValidateTransaction runs the validator for live form feedback.
func (s *transactionService) ValidateTransaction(ctx context.Context, businessID string, req dto.ValidateTransactionRequest, userID string) (domain.ValidationResult, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleManager); err != nil {
		return domain.ValidationResult{}, err
	}

	debit, credit, err := s.resolveCandidateAccounts(ctx, businessID, req.DebitAccountID, req.CreditAccountID)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	return accounting.Validate(accounting.TransactionCandidate{
		Amount:          req.Amount,
		Date:            req.Date,
		Name:            req.Name,
		Description:     req.Description,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		DebitAccount:    debit,
		CreditAccount:   credit,
	}), nil
}

// GetTransactionByID retrieves one transaction of a business.
func (s *transactionService) GetTransactionByID(ctx context.Context, businessID, transactionID, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleInvestor); err != nil {
		return nil, err
	}
	return s.txnRepo.FindTransactionByID(ctx, businessID, transactionID)
}

// ListTransactions returns non-deleted transactions within the date range.
func (s *transactionService) ListTransactions(ctx context.Context, businessID string, from, to *time.Time, userID string) ([]domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleInvestor); err != nil {
		return nil, err
	}
	return s.txnRepo.ListTransactions(ctx, businessID, from, to)
}

// UpdateTransaction applies field changes to an existing transaction and
// re-validates the result before persisting.
func (s *transactionService) UpdateTransaction(ctx context.Context, businessID, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, domain.ValidationResult, error) {
	if err := s.AuthorizeUser(ctx, updaterUserID, businessID, domain.RoleManager); err != nil {
		return nil, domain.ValidationResult{}, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, businessID, transactionID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	posting, isDoubleEntry := txn.Posting.(domain.DoubleEntryPosting)
	if !isDoubleEntry && (req.DebitAccountID != nil || req.CreditAccountID != nil) {
		return nil, domain.ValidationResult{}, fmt.Errorf("%w: legacy transactions carry no account pair", apperrors.ErrValidation)
	}

	if req.Date != nil {
		date, parseErr := time.Parse("2006-01-02", *req.Date)
		if parseErr != nil {
			return nil, domain.ValidationResult{}, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
		}
		txn.Date = date
	}
	if req.Name != nil {
		txn.Name = *req.Name
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if isDoubleEntry {
		if req.DebitAccountID != nil {
			posting.DebitAccountID = *req.DebitAccountID
		}
		if req.CreditAccountID != nil {
			posting.CreditAccountID = *req.CreditAccountID
		}
		txn.Posting = posting
	}

	if isDoubleEntry {
		debit, credit, resolveErr := s.resolveCandidateAccounts(ctx, businessID, posting.DebitAccountID, posting.CreditAccountID)
		if resolveErr != nil {
			return nil, domain.ValidationResult{}, resolveErr
		}
		result := accounting.Validate(accounting.TransactionCandidate{
			Amount:          txn.Amount,
			Date:            txn.Date.Format("2006-01-02"),
			Name:            txn.Name,
			Description:     txn.Description,
			DebitAccountID:  posting.DebitAccountID,
			CreditAccountID: posting.CreditAccountID,
			DebitAccount:    debit,
			CreditAccount:   credit,
		})
		if !result.IsValid {
			return nil, result, nil
		}
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = updaterUserID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, domain.ValidationResult{}, err
	}
	return txn, domain.ValidationResult{IsValid: true, Errors: []domain.ValidationIssue{}, Warnings: []domain.ValidationIssue{}}, nil
}

// SoftDeleteTransaction marks a transaction deleted so aggregations skip it.
func (s *transactionService) SoftDeleteTransaction(ctx context.Context, businessID, transactionID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleManager); err != nil {
		return err
	}
	return s.txnRepo.SoftDeleteTransaction(ctx, businessID, transactionID, userID, time.Now())
}

// RestoreTransaction clears the soft-delete marker.
func (s *transactionService) RestoreTransaction(ctx context.Context, businessID, transactionID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleManager); err != nil {
		return err
	}
	return s.txnRepo.RestoreTransaction(ctx, businessID, transactionID, userID, time.Now())
}

// ReclassifyStockToCOGS converts a stock purchase into a cost of goods sold
// posting by swapping the debit side to the business's COGS account. Amount,
// date, credit account and stored category stay untouched; the display label
// is re-derived from the new debit account.
func (s *transactionService) ReclassifyStockToCOGS(ctx context.Context, businessID, transactionID, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleManager); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, businessID, transactionID)
	if err != nil {
		return nil, err
	}

	posting, ok := txn.Posting.(domain.DoubleEntryPosting)
	if !ok {
		return nil, fmt.Errorf("%w: legacy transactions cannot be reclassified", ErrNotStockTransaction)
	}

	debitAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, posting.DebitAccountID)
	if err != nil {
		return nil, fmt.Errorf("debit account lookup failed: %w", err)
	}
	if !accounting.IsStockTransaction(*txn, debitAccount) {
		return nil, ErrNotStockTransaction
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	cogs := accounting.FindCOGSAccount(accounts)
	if cogs == nil {
		return nil, ErrNoExpenseAccount
	}

	update := accounting.BuildStockToCOGSUpdate(*txn, *cogs)
	now := time.Now()
	if err := s.txnRepo.UpdateDebitAccount(ctx, businessID, update.TransactionID, update.DebitAccountID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to reclassify transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	posting.DebitAccountID = update.DebitAccountID
	txn.Posting = posting
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	s.LogInfo(ctx, "Stock transaction reclassified to COGS",
		slog.String("transaction_id", transactionID),
		slog.String("cogs_account_id", cogs.AccountID))
	return txn, nil
}
