package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/accounting"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	portsrepo "github.com/bukukita/bkk_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService computes financial reports over a business's ledger.
// Reports are read-only, so the INVESTOR role is sufficient.
type reportingService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.AccountRepository
	policy      accounting.ChartPolicy
}

// ReportingServiceOption is a functional option for configuring the reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingBusinessAuthorizer sets the business authorizer for the reporting service.
func WithReportingBusinessAuthorizer(authorizer portssvc.BusinessAuthorizer) ReportingServiceOption {
	return func(s *reportingService) {
		s.BusinessAuthorizer = authorizer
	}
}

// NewReportingService creates a new reporting service with the provided options.
func NewReportingService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		policy:      accounting.DefaultChartPolicy(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) loadLedger(ctx context.Context, businessID string, from, to *time.Time) ([]domain.Transaction, []domain.Account, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx, businessID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return transactions, accounts, nil
}

// FinancialSummary returns category totals and net profit for the period.
func (s *reportingService) FinancialSummary(ctx context.Context, businessID string, from, to *time.Time, userID string) (*domain.FinancialSummary, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleInvestor); err != nil {
		return nil, err
	}
	transactions, err := s.txnRepo.ListTransactions(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	summary := accounting.CalculateFinancialSummary(transactions)
	return &summary, nil
}

// TrialBalance returns per-account net movement grouped by account type.
func (s *reportingService) TrialBalance(ctx context.Context, businessID string, from, to *time.Time, userID string) (*domain.TrialBalanceReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleInvestor); err != nil {
		return nil, err
	}
	transactions, accounts, err := s.loadLedger(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}
	report := accounting.CalculateTrialBalance(transactions, accounts)
	return &report, nil
}

// BalanceSheet returns the assets / liabilities / equity statement, bridging
// legacy single-entry data where present.
func (s *reportingService) BalanceSheet(ctx context.Context, businessID string, from, to *time.Time, capital decimal.Decimal, userID string) (*domain.BalanceSheetData, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleInvestor); err != nil {
		return nil, err
	}
	transactions, accounts, err := s.loadLedger(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}
	sheet := accounting.CalculateBalanceSheet(s.policy, transactions, accounts, capital)
	return &sheet, nil
}

// CashFlow returns period inflows, outflows and the closing cash position.
func (s *reportingService) CashFlow(ctx context.Context, businessID string, from, to *time.Time, capital decimal.Decimal, userID string) (*domain.CashFlowData, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleInvestor); err != nil {
		return nil, err
	}
	transactions, err := s.txnRepo.ListTransactions(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	flow := accounting.CalculateCashFlow(transactions, capital)
	return &flow, nil
}
