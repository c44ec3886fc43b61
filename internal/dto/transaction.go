package dto

import (
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines a full double-entry transaction as entered
// on the double-entry form. Date arrives as a plain calendar string so the
// validator can report INVALID_DATE instead of the binder rejecting it.
type CreateTransactionRequest struct {
	Date            string          `json:"date" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	// Category is optional; when empty it is detected from the account pair.
	Category domain.TransactionCategory `json:"category" binding:"omitempty,oneof=EARN OPEX VAR CAPEX TAX FIN"`
}

// QuickTransactionRequest is the simplified single-account form input.
type QuickTransactionRequest struct {
	Date              string          `json:"date" binding:"required"`
	Name              string          `json:"name" binding:"required"`
	Notes             string          `json:"notes"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	SelectedAccountID string          `json:"selectedAccountID" binding:"required"`
}

// ValidateTransactionRequest mirrors CreateTransactionRequest without binding
// requirements: live form feedback validates partial input.
type ValidateTransactionRequest struct {
	Date            string          `json:"date"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
}

// UpdateTransactionRequest defines the fields that may change on an existing
// transaction. The amount is deliberately immutable on reclassification flows.
type UpdateTransactionRequest struct {
	Date            *string                     `json:"date"`
	Name            *string                     `json:"name"`
	Description     *string                     `json:"description"`
	Amount          *decimal.Decimal            `json:"amount"`
	DebitAccountID  *string                     `json:"debitAccountID"`
	CreditAccountID *string                     `json:"creditAccountID"`
	Category        *domain.TransactionCategory `json:"category"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                     `json:"transactionID"`
	BusinessID      string                     `json:"businessID"`
	Date            time.Time                  `json:"date"`
	Category        domain.TransactionCategory `json:"category"`
	DisplayCategory string                     `json:"displayCategory"` // "STOCK" for inventory VAR rows
	Name            string                     `json:"name"`
	Description     string                     `json:"description"`
	Amount          decimal.Decimal            `json:"amount"`
	IsDoubleEntry   bool                       `json:"isDoubleEntry"`
	DebitAccountID  string                     `json:"debitAccountID,omitempty"`
	CreditAccountID string                     `json:"creditAccountID,omitempty"`
	AccountLabel    string                     `json:"account,omitempty"` // legacy free-text label
	DeletedAt       *time.Time                 `json:"deletedAt,omitempty"`
	CreatedAt       time.Time                  `json:"createdAt"`
	CreatedBy       string                     `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
// displayCategory carries the derived "STOCK" label when applicable.
func ToTransactionResponse(txn *domain.Transaction, displayCategory string) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:   txn.TransactionID,
		BusinessID:      txn.BusinessID,
		Date:            txn.Date,
		Category:        txn.Category,
		DisplayCategory: displayCategory,
		Name:            txn.Name,
		Description:     txn.Description,
		Amount:          txn.Amount,
		DeletedAt:       txn.DeletedAt,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
	}
	switch posting := txn.Posting.(type) {
	case domain.DoubleEntryPosting:
		resp.IsDoubleEntry = true
		resp.DebitAccountID = posting.DebitAccountID
		resp.CreditAccountID = posting.CreditAccountID
	case domain.LegacyPosting:
		resp.AccountLabel = posting.AccountLabel
	}
	return resp
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	From string `form:"from"` // inclusive, "2006-01-02"
	To   string `form:"to"`   // inclusive, "2006-01-02"
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
