package accounting

import (
	"sort"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// trialBalanceGroupOrder is the fixed display sequence for the report.
var trialBalanceGroupOrder = []domain.AccountType{
	domain.Asset,
	domain.Liability,
	domain.Equity,
	domain.Revenue,
	domain.Expense,
}

// CalculateTrialBalance accumulates per-account debit and credit columns over
// the double-entry transactions in the set. Every debit posting adds to the
// account's Debit column and every credit posting to its Credit column,
// regardless of the account's normal balance; normal balance only affects
// sign interpretation elsewhere. Postings whose account is not in the chart
// snapshot are skipped rather than crashing the fold.
func CalculateTrialBalance(transactions []domain.Transaction, accounts []domain.Account) domain.TrialBalanceReport {
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		accountsByID[a.AccountID] = a
	}

	type balance struct {
		debit  decimal.Decimal
		credit decimal.Decimal
	}
	balances := make(map[string]*balance)
	post := func(accountID string, amount decimal.Decimal, debitSide bool) {
		if _, ok := accountsByID[accountID]; !ok {
			return
		}
		b, ok := balances[accountID]
		if !ok {
			b = &balance{}
			balances[accountID] = b
		}
		if debitSide {
			b.debit = b.debit.Add(amount)
		} else {
			b.credit = b.credit.Add(amount)
		}
	}

	for _, txn := range transactions {
		if txn.IsDeleted() {
			continue
		}
		posting, ok := txn.Posting.(domain.DoubleEntryPosting)
		if !ok {
			continue
		}
		post(posting.DebitAccountID, txn.Amount, true)
		post(posting.CreditAccountID, txn.Amount, false)
	}

	rowsByType := make(map[domain.AccountType][]domain.TrialBalanceRow)
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for accountID, b := range balances {
		acct := accountsByID[accountID]
		rowsByType[acct.AccountType] = append(rowsByType[acct.AccountType], domain.TrialBalanceRow{
			AccountID:   acct.AccountID,
			AccountCode: acct.AccountCode,
			AccountName: acct.Name,
			AccountType: acct.AccountType,
			Debit:       b.debit,
			Credit:      b.credit,
		})
		totalDebits = totalDebits.Add(b.debit)
		totalCredits = totalCredits.Add(b.credit)
	}

	groups := make([]domain.TrialBalanceGroup, 0, len(trialBalanceGroupOrder))
	for _, accountType := range trialBalanceGroupOrder {
		rows := rowsByType[accountType]
		if len(rows) == 0 {
			continue
		}
		sort.SliceStable(rows, func(i, j int) bool {
			a := accountsByID[rows[i].AccountID]
			b := accountsByID[rows[j].AccountID]
			if a.SortOrder != b.SortOrder {
				return a.SortOrder < b.SortOrder
			}
			return a.AccountCode < b.AccountCode
		})
		groups = append(groups, domain.TrialBalanceGroup{AccountType: accountType, Rows: rows})
	}

	// Exact equality: amounts are exact decimals, so any nonzero difference is
	// a real imbalance, not rounding noise.
	return domain.TrialBalanceReport{
		Groups:       groups,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		IsBalanced:   totalDebits.Equal(totalCredits),
		Difference:   totalDebits.Sub(totalCredits).Abs(),
	}
}
