package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialSummary holds per-category totals plus derived profit figures.
type FinancialSummary struct {
	TotalEarn  decimal.Decimal `json:"totalEarn"`
	TotalOpex  decimal.Decimal `json:"totalOpex"`
	TotalVar   decimal.Decimal `json:"totalVar"`
	TotalCapex decimal.Decimal `json:"totalCapex"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	TotalFin   decimal.Decimal `json:"totalFin"`
	// GrossProfit = TotalEarn - TotalVar
	GrossProfit decimal.Decimal `json:"grossProfit"`
	// NetProfit = TotalEarn - TotalOpex - TotalVar - TotalCapex - TotalTax.
	// Financing flows are balance-sheet movements, not P&L items.
	NetProfit decimal.Decimal `json:"netProfit"`
}

// CashFlowData is the category-sum cash flow used for legacy transaction sets.
type CashFlowData struct {
	Operating      decimal.Decimal `json:"operating"` // EARN - OPEX - VAR - TAX
	Investing      decimal.Decimal `json:"investing"` // -CAPEX
	Financing      decimal.Decimal `json:"financing"` // FIN
	NetCashFlow    decimal.Decimal `json:"netCashFlow"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Supplied capital
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// TrialBalanceRow represents a single account row in a trial balance report.
// Every debit posting lands in Debit and every credit posting in Credit,
// regardless of the account's normal balance.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceGroup groups rows of one account type for display.
type TrialBalanceGroup struct {
	AccountType AccountType       `json:"accountType"`
	Rows        []TrialBalanceRow `json:"rows"`
}

// TrialBalanceReport is the full trial balance with its balance check.
type TrialBalanceReport struct {
	Groups       []TrialBalanceGroup `json:"groups"`
	TotalDebits  decimal.Decimal     `json:"totalDebits"`
	TotalCredits decimal.Decimal     `json:"totalCredits"`
	IsBalanced   bool                `json:"isBalanced"`
	// Difference = |TotalDebits - TotalCredits|, surfaced when unbalanced.
	Difference decimal.Decimal `json:"difference"`
}

// BalanceSheetData is the assets/liabilities/equity breakdown, including the
// legacy-transaction reconciliation bridge.
type BalanceSheetData struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalCash        decimal.Decimal `json:"totalCash"`
	TotalProperty    decimal.Decimal `json:"totalProperty"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	SuppliedCapital  decimal.Decimal `json:"suppliedCapital"`
	// RetainedEarnings = TotalRevenue - TotalExpenses
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	// TotalEquity = SuppliedCapital + RetainedEarnings
	TotalEquity decimal.Decimal `json:"totalEquity"`
}
