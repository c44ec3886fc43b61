package accounting

import (
	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateBalanceSheet folds a transaction set into the assets/liabilities/
// equity breakdown. Double-entry and legacy rows are disjoint partitions:
// typed postings fold account by account, while legacy rows go through the
// category-sum bridge (financial summary + cash flow) so datasets still
// transitioning from single-entry reconcile without double-counting.
func CalculateBalanceSheet(policy ChartPolicy, transactions []domain.Transaction, accounts []domain.Account, capital decimal.Decimal) domain.BalanceSheetData {
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		accountsByID[a.AccountID] = a
	}

	var sheet domain.BalanceSheetData
	var legacy []domain.Transaction

	applyAsset := func(code string, amount decimal.Decimal) {
		sheet.TotalAssets = sheet.TotalAssets.Add(amount)
		if code >= "1110" && code <= "1199" {
			sheet.TotalCash = sheet.TotalCash.Add(amount)
		} else if policy.IsFixedAsset(code) {
			sheet.TotalProperty = sheet.TotalProperty.Add(amount)
		}
	}

	apply := func(acct domain.Account, amount decimal.Decimal, debitSide bool) {
		switch acct.AccountType {
		case domain.Asset:
			if debitSide {
				applyAsset(acct.AccountCode, amount)
			} else {
				applyAsset(acct.AccountCode, amount.Neg())
			}
		case domain.Liability:
			if debitSide {
				sheet.TotalLiabilities = sheet.TotalLiabilities.Sub(amount)
			} else {
				sheet.TotalLiabilities = sheet.TotalLiabilities.Add(amount)
			}
		case domain.Expense:
			if debitSide {
				sheet.TotalExpenses = sheet.TotalExpenses.Add(amount)
			}
		case domain.Revenue:
			if !debitSide {
				sheet.TotalRevenue = sheet.TotalRevenue.Add(amount)
			}
		}
	}

	for _, txn := range transactions {
		if txn.IsDeleted() {
			continue
		}
		switch posting := txn.Posting.(type) {
		case domain.DoubleEntryPosting:
			if debitAcct, ok := accountsByID[posting.DebitAccountID]; ok {
				apply(debitAcct, txn.Amount, true)
			}
			if creditAcct, ok := accountsByID[posting.CreditAccountID]; ok {
				apply(creditAcct, txn.Amount, false)
			}
		case domain.LegacyPosting:
			legacy = append(legacy, txn)
		}
	}

	// Reconciliation bridge for the legacy partition.
	if len(legacy) > 0 {
		legacySummary := CalculateFinancialSummary(legacy)
		legacyCashFlow := CalculateCashFlow(legacy, capital)

		sheet.TotalCash = sheet.TotalCash.Add(legacyCashFlow.ClosingBalance)
		sheet.TotalAssets = sheet.TotalAssets.Add(legacyCashFlow.ClosingBalance)
		sheet.TotalProperty = sheet.TotalProperty.Add(legacySummary.TotalCapex)
		sheet.TotalAssets = sheet.TotalAssets.Add(legacySummary.TotalCapex)
		sheet.TotalRevenue = sheet.TotalRevenue.Add(legacySummary.TotalEarn)
		sheet.TotalExpenses = sheet.TotalExpenses.
			Add(legacySummary.TotalOpex).
			Add(legacySummary.TotalVar).
			Add(legacySummary.TotalTax)
	}

	sheet.SuppliedCapital = capital
	sheet.RetainedEarnings = sheet.TotalRevenue.Sub(sheet.TotalExpenses)
	sheet.TotalEquity = sheet.SuppliedCapital.Add(sheet.RetainedEarnings)
	return sheet
}
