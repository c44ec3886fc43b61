package accounting

import (
	"fmt"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// largeAmountThreshold flags amounts that are unusually large relative to
// typical bookkeeping entries. Advisory only.
var largeAmountThreshold = decimal.New(1, 12) // 10^12 currency units

// TransactionCandidate is a prospective transaction under validation. Account
// objects are resolved by the caller; a nil account with a non-empty id means
// the lookup failed (stale or deleted reference).
type TransactionCandidate struct {
	Amount          decimal.Decimal
	Date            string // calendar date, "2006-01-02"
	Name            string
	Description     string
	DebitAccountID  string
	CreditAccountID string
	DebitAccount    *domain.Account
	CreditAccount   *domain.Account
}

// Validate checks a candidate against the bookkeeping business rules and
// returns every finding as data; nothing here is a Go error. Validation is
// input-progressive: with neither account selected the result is trivially
// valid so live forms can call this on every keystroke.
func Validate(candidate TransactionCandidate) domain.ValidationResult {
	result := domain.ValidationResult{
		IsValid:  true,
		Errors:   []domain.ValidationIssue{},
		Warnings: []domain.ValidationIssue{},
	}

	if candidate.DebitAccountID == "" && candidate.CreditAccountID == "" {
		return result
	}

	addError := func(field, code, message string) {
		result.Errors = append(result.Errors, domain.ValidationIssue{
			Field: field, Code: code, Message: message, Severity: domain.SeverityError,
		})
	}
	addWarning := func(field, code, message string) {
		result.Warnings = append(result.Warnings, domain.ValidationIssue{
			Field: field, Code: code, Message: message, Severity: domain.SeverityWarning,
		})
	}

	if !candidate.Amount.IsPositive() {
		addError("amount", domain.CodeInvalidAmount, "amount must be greater than zero")
	} else if candidate.Amount.GreaterThanOrEqual(largeAmountThreshold) {
		addWarning("amount", domain.CodeLargeAmount, "amount is unusually large; double-check before submitting")
	}

	// Partial account selection is invalid, not silently ignored.
	if candidate.DebitAccountID == "" {
		addError("debitAccountID", domain.CodeMissingAccount, "debit account is required")
	}
	if candidate.CreditAccountID == "" {
		addError("creditAccountID", domain.CodeMissingAccount, "credit account is required")
	}
	if candidate.DebitAccountID != "" && candidate.DebitAccountID == candidate.CreditAccountID {
		addError("creditAccountID", domain.CodeSameAccount, "debit and credit accounts must be different")
	}

	// A reference that no longer resolves must not silently validate,
	// regardless of active status.
	if candidate.DebitAccountID != "" && candidate.DebitAccount == nil {
		addError("debitAccountID", domain.CodeAccountNotFound, fmt.Sprintf("debit account %s not found", candidate.DebitAccountID))
	}
	if candidate.CreditAccountID != "" && candidate.CreditAccount == nil {
		addError("creditAccountID", domain.CodeAccountNotFound, fmt.Sprintf("credit account %s not found", candidate.CreditAccountID))
	}
	if candidate.DebitAccount != nil && !candidate.DebitAccount.IsActive {
		addWarning("debitAccountID", domain.CodeInactiveAccount, "debit account is inactive")
	}
	if candidate.CreditAccount != nil && !candidate.CreditAccount.IsActive {
		addWarning("creditAccountID", domain.CodeInactiveAccount, "credit account is inactive")
	}

	if date, err := time.Parse("2006-01-02", candidate.Date); err != nil {
		addError("date", domain.CodeInvalidDate, "date must be a valid calendar date (YYYY-MM-DD)")
	} else if date.After(time.Now().AddDate(1, 0, 0)) {
		addError("date", domain.CodeInvalidDate, "date must not be more than one year in the future")
	}

	if candidate.Name == "" {
		addError("name", domain.CodeRequiredField, "name is required")
	}
	if candidate.Description == "" {
		addError("description", domain.CodeRequiredField, "description is required")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
