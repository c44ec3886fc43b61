package accounting

import (
	"errors"
	"sort"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when the selected account id resolves to
	// no account in the provided chart.
	ErrAccountNotFound = errors.New("selected account not found")
	// ErrNoCashAccount is returned when no active cash/bank account exists to
	// act as the counter side.
	ErrNoCashAccount = errors.New("no active cash/bank account configured")
	// ErrCashAccountSelected is returned when the selected account is itself a
	// cash/bank account; cash-to-cash transfers need the full double-entry form.
	ErrCashAccountSelected = errors.New("cash/bank accounts cannot be used as a quick-add category")
)

// FlowDirection is the human-facing money movement hint for an account.
type FlowDirection string

const (
	FlowMoneyIn  FlowDirection = "MONEY_IN"
	FlowMoneyOut FlowDirection = "MONEY_OUT"
)

// QuickTransactionInput is the simplified single-account form input.
type QuickTransactionInput struct {
	Amount            decimal.Decimal
	SelectedAccountID string
	Name              string
	Date              time.Time
	Notes             string
}

// ResolvedTransaction is a fully derived, balanced double-entry transaction
// ready for validation and persistence.
type ResolvedTransaction struct {
	Date            time.Time
	Category        domain.TransactionCategory
	Name            string
	Description     string
	Amount          decimal.Decimal
	DebitAccountID  string
	CreditAccountID string
}

// ResolveQuickTransaction derives the full double-entry pair from one selected
// account, an amount and the implied direction. Pure computation; the caller
// persists the result. Precondition failures come back as error values.
func ResolveQuickTransaction(policy ChartPolicy, input QuickTransactionInput, accounts []domain.Account) (*ResolvedTransaction, error) {
	var selected *domain.Account
	for i := range accounts {
		if accounts[i].AccountID == input.SelectedAccountID {
			selected = &accounts[i]
			break
		}
	}
	if selected == nil {
		return nil, ErrAccountNotFound
	}

	cash := findDefaultCashAccount(policy, accounts)
	if cash == nil {
		return nil, ErrNoCashAccount
	}

	if policy.IsCashBank(selected.AccountCode) {
		return nil, ErrCashAccountSelected
	}

	var debit, credit *domain.Account
	if FlowDirectionFor(policy, *selected) == FlowMoneyOut {
		debit, credit = selected, cash
	} else {
		debit, credit = cash, selected
	}

	category := DetectCategory(policy, debit.AccountCode, credit.AccountCode, debit, credit)

	return &ResolvedTransaction{
		Date:            input.Date,
		Category:        category,
		Name:            input.Name,
		Description:     input.Notes,
		Amount:          input.Amount,
		DebitAccountID:  debit.AccountID,
		CreditAccountID: credit.AccountID,
	}, nil
}

// findDefaultCashAccount picks the quick-add counter-account: active accounts
// in the cash/bank range sorted by SortOrder (code as tie-break), preferring
// the policy's default code when present.
func findDefaultCashAccount(policy ChartPolicy, accounts []domain.Account) *domain.Account {
	candidates := make([]domain.Account, 0, 2)
	for _, a := range accounts {
		if a.IsActive && policy.IsCashBank(a.AccountCode) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].SortOrder != candidates[j].SortOrder {
			return candidates[i].SortOrder < candidates[j].SortOrder
		}
		return candidates[i].AccountCode < candidates[j].AccountCode
	})
	for i := range candidates {
		if candidates[i].AccountCode == policy.PreferredCashCode {
			return &candidates[i]
		}
	}
	return &candidates[0]
}

// FlowDirectionFor maps an account to the side money moves when it is picked
// in quick-add. The money-out group (account debited, cash credited): every
// EXPENSE account, the owner-drawings equity account, and fixed-asset
// purchases. Everything else is money in (cash debited, account credited).
func FlowDirectionFor(policy ChartPolicy, acct domain.Account) FlowDirection {
	switch acct.AccountType {
	case domain.Expense:
		return FlowMoneyOut
	case domain.Equity:
		if policy.IsDrawings(acct.AccountCode) {
			return FlowMoneyOut
		}
	case domain.Asset:
		if policy.IsFixedAsset(acct.AccountCode) {
			return FlowMoneyOut
		}
	}
	return FlowMoneyIn
}

// FlowLabelFor renders the direction as the label shown next to the account.
func FlowLabelFor(policy ChartPolicy, acct domain.Account) string {
	if FlowDirectionFor(policy, acct) == FlowMoneyOut {
		return "Money out"
	}
	return "Money in"
}
