// Package accounting holds the double-entry derivation, validation and
// aggregation engine. Every function in this package is a pure transform over
// an in-memory snapshot of accounts and transactions; no I/O happens here.
package accounting

import (
	"github.com/bukukita/bkk_backend/internal/core/domain"
)

// ChartPolicy captures the chart-of-accounts conventions that recur across
// category detection, quick-add resolution and the inventory check. Account
// codes are compared lexically; the standard chart uses 4-digit codes so
// lexical and numeric order coincide.
type ChartPolicy struct {
	// CashRangeStart/End bound the cash and bank accounts, inclusive.
	CashRangeStart string
	CashRangeEnd   string
	// PreferredCashCode is the default counter-account for quick-add.
	PreferredCashCode string
	// ControlAccountCodes are category-neutral header accounts; when one side
	// of a pair is a control account, the other side's override wins.
	ControlAccountCodes []string
	// FixedAssetRangeStart/End bound property/fixed-asset accounts, inclusive.
	FixedAssetRangeStart string
	FixedAssetRangeEnd   string
	// DrawingsCode is the owner-drawings equity account.
	DrawingsCode string
}

// DefaultChartPolicy returns the conventions of the standard seeded chart.
func DefaultChartPolicy() ChartPolicy {
	return ChartPolicy{
		CashRangeStart:       "1110",
		CashRangeEnd:         "1132",
		PreferredCashCode:    "1120",
		ControlAccountCodes:  []string{"1100", "1200"},
		FixedAssetRangeStart: "1200",
		FixedAssetRangeEnd:   "1299",
		DrawingsCode:         "3300",
	}
}

// IsCashBank reports whether code falls in the cash/bank range.
func (p ChartPolicy) IsCashBank(code string) bool {
	return code >= p.CashRangeStart && code <= p.CashRangeEnd
}

// IsControlAccount reports whether code is a category-neutral header account.
func (p ChartPolicy) IsControlAccount(code string) bool {
	for _, c := range p.ControlAccountCodes {
		if code == c {
			return true
		}
	}
	return false
}

// IsFixedAsset reports whether code falls in the fixed-asset range.
func (p ChartPolicy) IsFixedAsset(code string) bool {
	return code >= p.FixedAssetRangeStart && code <= p.FixedAssetRangeEnd
}

// IsDrawings reports whether code is the owner-drawings account.
func (p ChartPolicy) IsDrawings(code string) bool {
	return code == p.DrawingsCode
}

// AccountTypeFromCode derives the account type from the code's leading digit:
// 1xxx ASSET, 2xxx LIABILITY, 3xxx EQUITY, 4xxx REVENUE, 5xxx EXPENSE.
func AccountTypeFromCode(code string) domain.AccountType {
	if len(code) == 0 {
		return domain.UnknownType
	}
	switch code[0] {
	case '1':
		return domain.Asset
	case '2':
		return domain.Liability
	case '3':
		return domain.Equity
	case '4':
		return domain.Revenue
	case '5':
		return domain.Expense
	default:
		return domain.UnknownType
	}
}

// NormalBalanceFor returns the side that increases an account of the given
// type: DEBIT for ASSET/EXPENSE, CREDIT for LIABILITY/EQUITY/REVENUE.
func NormalBalanceFor(t domain.AccountType) domain.NormalBalance {
	switch t {
	case domain.Asset, domain.Expense:
		return domain.NormalDebit
	default:
		return domain.NormalCredit
	}
}
