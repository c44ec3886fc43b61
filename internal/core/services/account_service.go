package services

import (
	"context"
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

// accountService manages the chart of accounts of a business.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	policy      accounting.ChartPolicy
}

// AccountServiceOption is a functional option for configuring the account service.
type AccountServiceOption func(*accountService)

// WithAccountBusinessAuthorizer sets the business authorizer for the account service.
func WithAccountBusinessAuthorizer(authorizer portssvc.BusinessAuthorizer) AccountServiceOption {
	return func(s *accountService) {
		s.BusinessAuthorizer = authorizer
	}
}

// NewAccountService creates a new account service with the provided options.
func NewAccountService(repo portsrepo.AccountRepository, options ...AccountServiceOption) portssvc.AccountService {
	svc := &accountService{
		accountRepo: repo,
		policy:      accounting.DefaultChartPolicy(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountService = (*accountService)(nil)

// systemAccountSeed describes one row of the standard chart.
type systemAccountSeed struct {
	code            string
	name            string
	accountType     domain.AccountType
	parentCode      string
	defaultCategory domain.TransactionCategory
	sortOrder       int
}

// systemChart is the chart seeded into every new business. Category accounts
// first, then their sub-accounts.
var systemChart = []systemAccountSeed{
	{code: "1100", name: "Cash & Bank", accountType: domain.Asset, sortOrder: 10},
	{code: "1110", name: "Cash", accountType: domain.Asset, parentCode: "1100", sortOrder: 11},
	{code: "1120", name: "Bank", accountType: domain.Asset, parentCode: "1100", sortOrder: 12},
	{code: "1200", name: "Fixed Assets", accountType: domain.Asset, sortOrder: 20},
	{code: "1210", name: "Equipment", accountType: domain.Asset, parentCode: "1200", defaultCategory: domain.CategoryCapex, sortOrder: 21},
	{code: "2100", name: "Liabilities", accountType: domain.Liability, sortOrder: 30},
	{code: "2110", name: "Accounts Payable", accountType: domain.Liability, parentCode: "2100", sortOrder: 31},
	{code: "3100", name: "Owner Capital", accountType: domain.Equity, sortOrder: 40},
	{code: "3300", name: "Owner Drawings", accountType: domain.Equity, sortOrder: 41},
	{code: "4100", name: "Sales Revenue", accountType: domain.Revenue, defaultCategory: domain.CategoryEarn, sortOrder: 50},
	{code: "5100", name: "Operating Expenses", accountType: domain.Expense, sortOrder: 60},
	{code: "5110", name: "General Expenses", accountType: domain.Expense, parentCode: "5100", sortOrder: 61},
	{code: "5210", name: "Cost of Goods Sold (HPP)", accountType: domain.Expense, parentCode: "5100", defaultCategory: domain.CategoryVar, sortOrder: 62},
}

// SeedSystemAccounts creates the standard chart for a new business.
func (s *accountService) SeedSystemAccounts(ctx context.Context, businessID, creatorUserID string) error {
	now := time.Now()
	idsByCode := make(map[string]string, len(systemChart))
	accounts := make([]domain.Account, 0, len(systemChart))

	for _, seed := range systemChart {
		accountID := uuid.NewString()
		idsByCode[seed.code] = accountID
		accounts = append(accounts, domain.Account{
			AccountID:       accountID,
			BusinessID:      businessID,
			AccountCode:     seed.code,
			Name:            seed.name,
			AccountType:     seed.accountType,
			NormalBalance:   accounting.NormalBalanceFor(seed.accountType),
			ParentAccountID: idsByCode[seed.parentCode],
			DefaultCategory: seed.defaultCategory,
			IsSystem:        true,
			IsActive:        true,
			SortOrder:       seed.sortOrder,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
	}

	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("failed to seed chart for business %s: %w", businessID, err)
	}
	s.LogInfo(ctx, "System chart seeded", slog.String("business_id", businessID), slog.Int("accounts", len(accounts)))
	return nil
}

// CreateAccount creates a user-defined account after verifying that the code
// prefix agrees with the declared type.
func (s *accountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, businessID, domain.RoleManager); err != nil {
		return nil, err
	}

	if derived := accounting.AccountTypeFromCode(req.AccountCode); derived != req.AccountType {
		return nil, fmt.Errorf("%w: account code %s implies type %s, got %s",
			apperrors.ErrValidation, req.AccountCode, derived, req.AccountType)
	}

	if req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, businessID, req.ParentAccountID)
		if err != nil {
			return nil, fmt.Errorf("parent account lookup failed: %w", err)
		}
		if parent.AccountType != req.AccountType {
			return nil, fmt.Errorf("%w: sub-account type %s does not match parent type %s",
				apperrors.ErrValidation, req.AccountType, parent.AccountType)
		}
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		BusinessID:      businessID,
		AccountCode:     req.AccountCode,
		Name:            req.Name,
		AccountType:     req.AccountType,
		NormalBalance:   accounting.NormalBalanceFor(req.AccountType),
		ParentAccountID: req.ParentAccountID,
		DefaultCategory: req.DefaultCategory,
		IsSystem:        false,
		IsActive:        true,
		SortOrder:       req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_code", req.AccountCode))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("account_code", account.AccountCode))
	return &account, nil
}

// GetAccountByID retrieves one account of a business.
func (s *accountService) GetAccountByID(ctx context.Context, businessID, accountID, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleInvestor); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, businessID, accountID)
}

// ListAccounts returns the full chart of a business ordered by sort order.
func (s *accountService) ListAccounts(ctx context.Context, businessID, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleInvestor); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccounts(ctx, businessID)
}

// UpdateAccount applies the allowed field changes to an account.
func (s *accountService) UpdateAccount(ctx context.Context, businessID, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, updaterUserID, businessID, domain.RoleManager); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.DefaultCategory != nil {
		if *req.DefaultCategory != "" && !req.DefaultCategory.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, *req.DefaultCategory)
		}
		account.DefaultCategory = *req.DefaultCategory
	}
	if req.SortOrder != nil {
		account.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		if account.IsSystem && !*req.IsActive {
			return nil, fmt.Errorf("%w: system accounts cannot be deactivated", apperrors.ErrValidation)
		}
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeactivateAccount hides an account from selection UIs. Historical
// transactions keep referencing it; this is never a hard delete.
func (s *accountService) DeactivateAccount(ctx context.Context, businessID, accountID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleManager); err != nil {
		return err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return err
	}
	if account.IsSystem {
		return fmt.Errorf("%w: system accounts cannot be deactivated", apperrors.ErrValidation)
	}

	return s.accountRepo.DeactivateAccount(ctx, businessID, accountID, userID)
}
