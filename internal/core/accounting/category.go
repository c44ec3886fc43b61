package accounting

import (
	"github.com/bukukita/bkk_backend/internal/core/domain"
)

// typePair keys the classification rule table on (debit type, credit type).
type typePair struct {
	debit  domain.AccountType
	credit domain.AccountType
}

// categoryRules maps account-type pairs to categories. Anything unmatched
// falls back to OPEX. VAR/TAX and expense CAPEX are only reachable via an
// explicit per-account DefaultCategory; an expense posting without one
// classifies as OPEX as a matter of policy, pushing explicit categorization
// onto account setup.
var categoryRules = map[typePair]domain.TransactionCategory{
	{domain.Asset, domain.Revenue}:   domain.CategoryEarn,  // sale for cash/receivable
	{domain.Asset, domain.Liability}: domain.CategoryFin,   // loan proceeds
	{domain.Asset, domain.Equity}:    domain.CategoryFin,   // capital injection
	{domain.Expense, domain.Asset}:   domain.CategoryOpex,  // default expense bucket
	{domain.Asset, domain.Asset}:     domain.CategoryCapex, // asset purchase
	{domain.Equity, domain.Asset}:    domain.CategoryFin,   // owner withdrawal
	{domain.Liability, domain.Asset}: domain.CategoryFin,   // liability repayment
}

// DetectCategory classifies a (debit, credit) account pair into one of the six
// transaction categories. Resolution is a two-stage pipeline: per-account
// DefaultCategory overrides first (control-account aware), then the type-pair
// rule table. Total and deterministic; unknown combinations yield OPEX.
// The account arguments are optional; pass nil when only codes are known.
func DetectCategory(policy ChartPolicy, debitCode, creditCode string, debitAcct, creditAcct *domain.Account) domain.TransactionCategory {
	// Stage 1: explicit overrides. A cash/bank control side is category-neutral,
	// so the opposite side's override is preferred.
	if policy.IsControlAccount(debitCode) {
		if c := overrideOf(creditAcct); c != "" {
			return c
		}
	}
	if policy.IsControlAccount(creditCode) {
		if c := overrideOf(debitAcct); c != "" {
			return c
		}
	}
	if c := overrideOf(debitAcct); c != "" {
		return c
	}
	if c := overrideOf(creditAcct); c != "" {
		return c
	}

	// Stage 2: structural classification by account-type pair.
	pair := typePair{AccountTypeFromCode(debitCode), AccountTypeFromCode(creditCode)}
	if c, ok := categoryRules[pair]; ok {
		return c
	}
	return domain.CategoryOpex
}

func overrideOf(acct *domain.Account) domain.TransactionCategory {
	if acct == nil || !acct.DefaultCategory.IsValid() {
		return ""
	}
	return acct.DefaultCategory
}
