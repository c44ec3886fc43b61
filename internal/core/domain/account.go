package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	// UnknownType is returned when a code falls outside the chart's numbered bands.
	UnknownType AccountType = "UNKNOWN"
)

// NormalBalance indicates which side increases an account.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "DEBIT"
	NormalCredit NormalBalance = "CREDIT"
)

// Account represents one entry in a business's chart of accounts.
// This is the primary representation used by services and the accounting engine.
type Account struct {
	AccountID       string              `json:"accountID"`       // Primary Key (UUID)
	BusinessID      string              `json:"businessID"`      // FK -> businesses.business_id (NON-NULL)
	AccountCode     string              `json:"accountCode"`     // Lexically ordered; leading digit encodes type
	Name            string              `json:"name"`            // User-defined name
	AccountType     AccountType         `json:"accountType"`     // ASSET, LIABILITY, etc. Must agree with AccountCode.
	NormalBalance   NormalBalance       `json:"normalBalance"`   // DEBIT for ASSET/EXPENSE, CREDIT otherwise
	ParentAccountID string              `json:"parentAccountID"` // Empty for category accounts; sub-accounts reference a parent
	DefaultCategory TransactionCategory `json:"defaultCategory"` // Optional override for category detection; empty when unset
	IsSystem        bool                `json:"isSystem"`        // Seeded accounts; cannot be deactivated or deleted
	IsActive        bool                `json:"isActive"`        // Deactivation hides from selection without breaking history
	SortOrder       int                 `json:"sortOrder"`       // Display order, tie-broken by AccountCode
	AuditFields
}
