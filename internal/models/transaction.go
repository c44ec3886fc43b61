package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one ledger row. Double-entry rows carry the account
// pair; rows from the single-entry era carry only the free-text label.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	BusinessID      string          `db:"business_id"`
	Date            time.Time       `db:"transaction_date"`
	Category        string          `db:"category"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	IsDoubleEntry   bool            `db:"is_double_entry"`
	DebitAccountID  string          `db:"debit_account_id"`  // Nullable; set iff is_double_entry
	CreditAccountID string          `db:"credit_account_id"` // Nullable; set iff is_double_entry
	AccountLabel    string          `db:"account_label"`     // Nullable; set iff legacy row
	DeletedAt       *time.Time      `db:"deleted_at"`
	AuditFields
}
