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

func validCandidate() accounting.TransactionCandidate {
	debit := acct("5110", domain.Expense, "")
	credit := acct("1120", domain.Asset, "")
	return accounting.TransactionCandidate{
		Amount:          decimal.NewFromInt(500000),
		Date:            "2025-06-01",
		Name:            "PLN",
		Description:     "Electricity for June",
		DebitAccountID:  debit.AccountID,
		CreditAccountID: credit.AccountID,
		DebitAccount:    debit,
		CreditAccount:   credit,
	}
}

func issueCodes(issues []domain.ValidationIssue) []string {
	codes := make([]string, len(issues))
	for i, issue := range issues {
		codes[i] = issue.Code
	}
	return codes
}

func TestValidate_ValidCandidate(t *testing.T) {
	result := accounting.Validate(validCandidate())
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_EmptyInputIsTriviallyValid(t *testing.T) {
	// Progressive validation: nothing selected yet means nothing to complain
	// about, so live forms are not covered in errors on first render.
	result := accounting.Validate(accounting.TransactionCandidate{})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*accounting.TransactionCandidate)
		wantCode string
	}{
		{
			name:     "zero amount",
			mutate:   func(c *accounting.TransactionCandidate) { c.Amount = decimal.Zero },
			wantCode: domain.CodeInvalidAmount,
		},
		{
			name:     "negative amount",
			mutate:   func(c *accounting.TransactionCandidate) { c.Amount = decimal.NewFromInt(-100) },
			wantCode: domain.CodeInvalidAmount,
		},
		{
			name: "partial account selection",
			mutate: func(c *accounting.TransactionCandidate) {
				c.CreditAccountID = ""
				c.CreditAccount = nil
			},
			wantCode: domain.CodeMissingAccount,
		},
		{
			name: "same account on both sides",
			mutate: func(c *accounting.TransactionCandidate) {
				c.CreditAccountID = c.DebitAccountID
				c.CreditAccount = c.DebitAccount
			},
			wantCode: domain.CodeSameAccount,
		},
		{
			name:     "stale debit reference",
			mutate:   func(c *accounting.TransactionCandidate) { c.DebitAccount = nil },
			wantCode: domain.CodeAccountNotFound,
		},
		{
			name:     "stale credit reference",
			mutate:   func(c *accounting.TransactionCandidate) { c.CreditAccount = nil },
			wantCode: domain.CodeAccountNotFound,
		},
		{
			name:     "unparseable date",
			mutate:   func(c *accounting.TransactionCandidate) { c.Date = "01/06/2025" },
			wantCode: domain.CodeInvalidDate,
		},
		{
			name: "date too far in the future",
			mutate: func(c *accounting.TransactionCandidate) {
				c.Date = time.Now().AddDate(2, 0, 0).Format("2006-01-02")
			},
			wantCode: domain.CodeInvalidDate,
		},
		{
			name:     "missing name",
			mutate:   func(c *accounting.TransactionCandidate) { c.Name = "" },
			wantCode: domain.CodeRequiredField,
		},
		{
			name:     "missing description",
			mutate:   func(c *accounting.TransactionCandidate) { c.Description = "" },
			wantCode: domain.CodeRequiredField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			tt.mutate(&candidate)
			result := accounting.Validate(candidate)
			assert.False(t, result.IsValid)
			assert.Contains(t, issueCodes(result.Errors), tt.wantCode)
		})
	}
}

func TestValidate_StaleReferenceOverridesActiveFlag(t *testing.T) {
	// A deleted reference must not silently validate even though the account
	// cannot be checked for IsActive.
	candidate := validCandidate()
	candidate.DebitAccount = nil
	result := accounting.Validate(candidate)
	assert.False(t, result.IsValid)
	assert.Contains(t, issueCodes(result.Errors), domain.CodeAccountNotFound)
}

func TestValidate_Warnings(t *testing.T) {
	t.Run("inactive account warns but does not block", func(t *testing.T) {
		candidate := validCandidate()
		inactive := *candidate.DebitAccount
		inactive.IsActive = false
		candidate.DebitAccount = &inactive

		result := accounting.Validate(candidate)
		require.True(t, result.IsValid)
		assert.Contains(t, issueCodes(result.Warnings), domain.CodeInactiveAccount)
	})

	t.Run("unusually large amount warns but does not block", func(t *testing.T) {
		candidate := validCandidate()
		candidate.Amount = decimal.New(5, 12)

		result := accounting.Validate(candidate)
		require.True(t, result.IsValid)
		assert.Contains(t, issueCodes(result.Warnings), domain.CodeLargeAmount)
	})

	t.Run("warning severity is warning", func(t *testing.T) {
		candidate := validCandidate()
		candidate.Amount = decimal.New(5, 12)
		result := accounting.Validate(candidate)
		require.NotEmpty(t, result.Warnings)
		assert.Equal(t, domain.SeverityWarning, result.Warnings[0].Severity)
	})
}
