package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is the tagged variant for how a transaction attributes its amount.
// Exactly one concrete type is populated per transaction: a typed double-entry
// pair, or the free-text label carried by rows from the single-entry era.
// Consumers must switch on the concrete type rather than probe optional fields.
type Posting interface {
	isPosting()
}

// DoubleEntryPosting references two distinct accounts of the same business.
type DoubleEntryPosting struct {
	DebitAccountID  string `json:"debitAccountID"`
	CreditAccountID string `json:"creditAccountID"`
}

func (DoubleEntryPosting) isPosting() {}

// LegacyPosting carries the free-text account label used before the ledger
// moved to double-entry. Kept so historical datasets keep aggregating.
type LegacyPosting struct {
	AccountLabel string `json:"accountLabel"`
}

func (LegacyPosting) isPosting() {}

// Transaction represents a single bookkeeping entry of a business.
type Transaction struct {
	TransactionID string              `json:"transactionID"` // Primary Key (UUID)
	BusinessID    string              `json:"businessID"`    // FK -> businesses.business_id (Not Null)
	Date          time.Time           `json:"date"`          // Date the event occurred
	Category      TransactionCategory `json:"category"`
	Name          string              `json:"name"` // Counterparty
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"` // Positive value; precise decimal type
	Posting       Posting             `json:"-"`
	DeletedAt     *time.Time          `json:"deletedAt,omitempty"` // Soft delete marker
	AuditFields
}

// IsDoubleEntry reports whether the transaction carries a typed account pair.
func (t Transaction) IsDoubleEntry() bool {
	_, ok := t.Posting.(DoubleEntryPosting)
	return ok
}

// IsDeleted reports whether the transaction has been soft-deleted.
func (t Transaction) IsDeleted() bool {
	return t.DeletedAt != nil
}
