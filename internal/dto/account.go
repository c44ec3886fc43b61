package dto

import (
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a sub-account.
type CreateAccountRequest struct {
	AccountCode     string                     `json:"accountCode" binding:"required"`
	Name            string                     `json:"name" binding:"required"`
	AccountType     domain.AccountType         `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentAccountID string                     `json:"parentAccountID"`
	DefaultCategory domain.TransactionCategory `json:"defaultCategory" binding:"omitempty,oneof=EARN OPEX VAR CAPEX TAX FIN"`
	SortOrder       int                        `json:"sortOrder"`
}

// UpdateAccountRequest defines the fields that may change on an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name            *string                     `json:"name"`
	DefaultCategory *domain.TransactionCategory `json:"defaultCategory"`
	SortOrder       *int                        `json:"sortOrder"`
	IsActive        *bool                       `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string                     `json:"accountID"`
	BusinessID      string                     `json:"businessID"`
	AccountCode     string                     `json:"accountCode"`
	Name            string                     `json:"name"`
	AccountType     domain.AccountType         `json:"accountType"`
	NormalBalance   domain.NormalBalance       `json:"normalBalance"`
	ParentAccountID string                     `json:"parentAccountID"`
	DefaultCategory domain.TransactionCategory `json:"defaultCategory,omitempty"`
	IsSystem        bool                       `json:"isSystem"`
	IsActive        bool                       `json:"isActive"`
	SortOrder       int                        `json:"sortOrder"`
	FlowLabel       string                     `json:"flowLabel"` // "Money in" / "Money out" hint for pickers
	CreatedAt       time.Time                  `json:"createdAt"`
	LastUpdatedAt   time.Time                  `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account, flowLabel string) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		BusinessID:      acc.BusinessID,
		AccountCode:     acc.AccountCode,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		NormalBalance:   acc.NormalBalance,
		ParentAccountID: acc.ParentAccountID,
		DefaultCategory: acc.DefaultCategory,
		IsSystem:        acc.IsSystem,
		IsActive:        acc.IsActive,
		SortOrder:       acc.SortOrder,
		FlowLabel:       flowLabel,
		CreatedAt:       acc.CreatedAt,
		LastUpdatedAt:   acc.LastUpdatedAt,
	}
}

// ListAccountsResponse wraps the chart of accounts of a business.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
