package accounting_test

import (
	"testing"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/accounting"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doubleEntryTxn(id, debitID, creditID string, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Amount:        decimal.NewFromInt(amount),
		Posting:       domain.DoubleEntryPosting{DebitAccountID: debitID, CreditAccountID: creditID},
	}
}

func TestCalculateTrialBalance_ExampleScenario(t *testing.T) {
	// Bank (1120, ASSET) debited 1,000,000 against Rental Income (4100, REVENUE).
	accounts := []domain.Account{
		chartAccount("acc-bank", "1120", "Bank", domain.Asset, 1),
		chartAccount("acc-rental", "4100", "Rental Income", domain.Revenue, 2),
	}
	transactions := []domain.Transaction{
		doubleEntryTxn("txn-1", "acc-bank", "acc-rental", 1000000),
	}

	report := accounting.CalculateTrialBalance(transactions, accounts)

	require.Len(t, report.Groups, 2)
	assert.Equal(t, domain.Asset, report.Groups[0].AccountType)
	assert.Equal(t, domain.Revenue, report.Groups[1].AccountType)

	bankRow := report.Groups[0].Rows[0]
	assert.Equal(t, "Bank", bankRow.AccountName)
	assert.True(t, bankRow.Debit.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, bankRow.Credit.IsZero())

	rentalRow := report.Groups[1].Rows[0]
	assert.True(t, rentalRow.Credit.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, rentalRow.Debit.IsZero())

	assert.True(t, report.IsBalanced)
	assert.True(t, report.Difference.IsZero())
}

func TestCalculateTrialBalance_AlwaysBalancedForValidPostings(t *testing.T) {
	accounts := testChart()
	transactions := []domain.Transaction{
		doubleEntryTxn("txn-1", "acc-bank", "acc-sales", 1000000),
		doubleEntryTxn("txn-2", "acc-electricity", "acc-bank", 500000),
		doubleEntryTxn("txn-3", "acc-fixed", "acc-bank", 2500000),
		doubleEntryTxn("txn-4", "acc-bank", "acc-payable", 3000000),
		doubleEntryTxn("txn-5", "acc-drawings", "acc-cash", 150000),
	}

	report := accounting.CalculateTrialBalance(transactions, accounts)

	assert.True(t, report.TotalDebits.Equal(report.TotalCredits))
	assert.True(t, report.IsBalanced)
	assert.True(t, report.TotalDebits.Equal(decimal.NewFromInt(7150000)))
}

func TestCalculateTrialBalance_GroupOrderAndRowSort(t *testing.T) {
	accounts := testChart()
	transactions := []domain.Transaction{
		doubleEntryTxn("txn-1", "acc-electricity", "acc-cash", 100),
		doubleEntryTxn("txn-2", "acc-drawings", "acc-bank", 200),
		doubleEntryTxn("txn-3", "acc-bank", "acc-payable", 300),
		doubleEntryTxn("txn-4", "acc-bank", "acc-sales", 400),
	}

	report := accounting.CalculateTrialBalance(transactions, accounts)

	var order []domain.AccountType
	for _, g := range report.Groups {
		order = append(order, g.AccountType)
	}
	assert.Equal(t, []domain.AccountType{domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense}, order)

	// Asset rows sorted by sort order: Cash (1) before Bank (2).
	assetRows := report.Groups[0].Rows
	require.Len(t, assetRows, 2)
	assert.Equal(t, "acc-cash", assetRows[0].AccountID)
	assert.Equal(t, "acc-bank", assetRows[1].AccountID)
}

func TestCalculateTrialBalance_SkipsUnattributableRows(t *testing.T) {
	accounts := []domain.Account{
		chartAccount("acc-bank", "1120", "Bank", domain.Asset, 1),
	}
	transactions := []domain.Transaction{
		// Credit side references an account missing from the snapshot.
		doubleEntryTxn("txn-1", "acc-bank", "acc-ghost", 1000),
		{
			TransactionID: "txn-legacy",
			Amount:        decimal.NewFromInt(500),
			Posting:       domain.LegacyPosting{AccountLabel: "kas"},
		},
	}

	report := accounting.CalculateTrialBalance(transactions, accounts)

	require.Len(t, report.Groups, 1)
	assert.True(t, report.TotalDebits.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.TotalCredits.IsZero())
	assert.False(t, report.IsBalanced)
	assert.True(t, report.Difference.Equal(decimal.NewFromInt(1000)))
}

func TestCalculateTrialBalance_ExcludesSoftDeleted(t *testing.T) {
	accounts := testChart()
	deleted := doubleEntryTxn("txn-del", "acc-bank", "acc-sales", 12345)
	deletedAt := time.Now()
	deleted.DeletedAt = &deletedAt

	report := accounting.CalculateTrialBalance([]domain.Transaction{deleted}, accounts)
	assert.Empty(t, report.Groups)
	assert.True(t, report.TotalDebits.IsZero())
}
