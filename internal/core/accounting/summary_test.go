package accounting_test

import (
	"testing"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/accounting"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func legacyTxn(category domain.TransactionCategory, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-" + string(category),
		Category:      category,
		Amount:        decimal.NewFromInt(amount),
		Posting:       domain.LegacyPosting{AccountLabel: "kas"},
	}
}

func TestCalculateFinancialSummary(t *testing.T) {
	transactions := []domain.Transaction{
		legacyTxn(domain.CategoryEarn, 1000000),
		legacyTxn(domain.CategoryOpex, 200000),
		legacyTxn(domain.CategoryVar, 300000),
		legacyTxn(domain.CategoryCapex, 150000),
		legacyTxn(domain.CategoryTax, 50000),
		legacyTxn(domain.CategoryFin, 500000),
	}

	summary := accounting.CalculateFinancialSummary(transactions)

	assert.True(t, summary.TotalEarn.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, summary.TotalOpex.Equal(decimal.NewFromInt(200000)))
	assert.True(t, summary.TotalVar.Equal(decimal.NewFromInt(300000)))
	assert.True(t, summary.TotalCapex.Equal(decimal.NewFromInt(150000)))
	assert.True(t, summary.TotalTax.Equal(decimal.NewFromInt(50000)))
	assert.True(t, summary.TotalFin.Equal(decimal.NewFromInt(500000)))

	// grossProfit = earn - var; netProfit excludes financing flows.
	assert.True(t, summary.GrossProfit.Equal(decimal.NewFromInt(700000)))
	assert.True(t, summary.NetProfit.Equal(decimal.NewFromInt(300000)))
}

func TestCalculateFinancialSummary_SkipsDeletedAndUnknown(t *testing.T) {
	deletedAt := time.Now()
	deleted := legacyTxn(domain.CategoryEarn, 999999)
	deleted.DeletedAt = &deletedAt

	unknown := legacyTxn("", 123456)

	summary := accounting.CalculateFinancialSummary([]domain.Transaction{
		deleted,
		unknown,
		legacyTxn(domain.CategoryEarn, 1000000),
	})

	assert.True(t, summary.TotalEarn.Equal(decimal.NewFromInt(1000000)))
}

func TestCalculateFinancialSummary_Additivity(t *testing.T) {
	setA := []domain.Transaction{
		legacyTxn(domain.CategoryEarn, 400000),
		legacyTxn(domain.CategoryOpex, 100000),
	}
	setB := []domain.Transaction{
		legacyTxn(domain.CategoryEarn, 600000),
		legacyTxn(domain.CategoryVar, 250000),
	}

	combined := accounting.CalculateFinancialSummary(append(append([]domain.Transaction{}, setA...), setB...))
	summaryA := accounting.CalculateFinancialSummary(setA)
	summaryB := accounting.CalculateFinancialSummary(setB)

	assert.True(t, combined.TotalEarn.Equal(summaryA.TotalEarn.Add(summaryB.TotalEarn)))
	assert.True(t, combined.TotalOpex.Equal(summaryA.TotalOpex.Add(summaryB.TotalOpex)))
	assert.True(t, combined.TotalVar.Equal(summaryA.TotalVar.Add(summaryB.TotalVar)))
	assert.True(t, combined.GrossProfit.Equal(summaryA.GrossProfit.Add(summaryB.GrossProfit)))
	assert.True(t, combined.NetProfit.Equal(summaryA.NetProfit.Add(summaryB.NetProfit)))
}

func TestCalculateCashFlow(t *testing.T) {
	transactions := []domain.Transaction{
		legacyTxn(domain.CategoryEarn, 1000000),
		legacyTxn(domain.CategoryOpex, 200000),
		legacyTxn(domain.CategoryVar, 100000),
		legacyTxn(domain.CategoryTax, 50000),
		legacyTxn(domain.CategoryCapex, 300000),
		legacyTxn(domain.CategoryFin, 400000),
	}
	capital := decimal.NewFromInt(2000000)

	cashFlow := accounting.CalculateCashFlow(transactions, capital)

	assert.True(t, cashFlow.Operating.Equal(decimal.NewFromInt(650000)), "operating = earn - opex - var - tax")
	assert.True(t, cashFlow.Investing.Equal(decimal.NewFromInt(-300000)), "investing = -capex")
	assert.True(t, cashFlow.Financing.Equal(decimal.NewFromInt(400000)))
	assert.True(t, cashFlow.NetCashFlow.Equal(decimal.NewFromInt(750000)))
	assert.True(t, cashFlow.OpeningBalance.Equal(capital))
	assert.True(t, cashFlow.ClosingBalance.Equal(decimal.NewFromInt(2750000)))
}
