package services

import (
	"context"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService computes financial reports over a business's ledger.
type ReportingService interface {
	FinancialSummary(ctx context.Context, businessID string, from, to *time.Time, userID string) (*domain.FinancialSummary, error)
	TrialBalance(ctx context.Context, businessID string, from, to *time.Time, userID string) (*domain.TrialBalanceReport, error)
	BalanceSheet(ctx context.Context, businessID string, from, to *time.Time, capital decimal.Decimal, userID string) (*domain.BalanceSheetData, error)
	CashFlow(ctx context.Context, businessID string, from, to *time.Time, capital decimal.Decimal, userID string) (*domain.CashFlowData, error)
}
