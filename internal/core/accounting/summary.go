package accounting

import (
	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateFinancialSummary folds a transaction set into per-category totals
// and derived profit figures. Soft-deleted rows and rows with an unknown
// category are skipped; historical data from the store is not guaranteed
// clean and unattributable amounts must not crash the fold.
func CalculateFinancialSummary(transactions []domain.Transaction) domain.FinancialSummary {
	var s domain.FinancialSummary
	for _, txn := range transactions {
		if txn.IsDeleted() {
			continue
		}
		switch txn.Category {
		case domain.CategoryEarn:
			s.TotalEarn = s.TotalEarn.Add(txn.Amount)
		case domain.CategoryOpex:
			s.TotalOpex = s.TotalOpex.Add(txn.Amount)
		case domain.CategoryVar:
			s.TotalVar = s.TotalVar.Add(txn.Amount)
		case domain.CategoryCapex:
			s.TotalCapex = s.TotalCapex.Add(txn.Amount)
		case domain.CategoryTax:
			s.TotalTax = s.TotalTax.Add(txn.Amount)
		case domain.CategoryFin:
			s.TotalFin = s.TotalFin.Add(txn.Amount)
		}
	}
	s.GrossProfit = s.TotalEarn.Sub(s.TotalVar)
	s.NetProfit = s.TotalEarn.Sub(s.TotalOpex).Sub(s.TotalVar).Sub(s.TotalCapex).Sub(s.TotalTax)
	return s
}

// CalculateCashFlow is the category-sum cash flow used for legacy transaction
// sets: operating = EARN - OPEX - VAR - TAX, investing = -CAPEX,
// financing = FIN. Opening balance is the supplied capital.
func CalculateCashFlow(transactions []domain.Transaction, capital decimal.Decimal) domain.CashFlowData {
	summary := CalculateFinancialSummary(transactions)

	operating := summary.TotalEarn.Sub(summary.TotalOpex).Sub(summary.TotalVar).Sub(summary.TotalTax)
	investing := summary.TotalCapex.Neg()
	financing := summary.TotalFin
	net := operating.Add(investing).Add(financing)

	return domain.CashFlowData{
		Operating:      operating,
		Investing:      investing,
		Financing:      financing,
		NetCashFlow:    net,
		OpeningBalance: capital,
		ClosingBalance: capital.Add(net),
	}
}
