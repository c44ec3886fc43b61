package models

// Account represents one chart-of-accounts row.
// Note: ParentAccountID uses string for nullable foreign key; DB handling may vary.
type Account struct {
	AccountID       string `db:"account_id"`
	BusinessID      string `db:"business_id"`
	AccountCode     string `db:"account_code"`
	Name            string `db:"name"`
	AccountType     string `db:"account_type"`
	NormalBalance   string `db:"normal_balance"`
	ParentAccountID string `db:"parent_account_id"` // Nullable
	DefaultCategory string `db:"default_category"`  // Nullable; empty means derive from type
	IsSystem        bool   `db:"is_system"`
	IsActive        bool   `db:"is_active"`
	SortOrder       int    `db:"sort_order"`
	AuditFields
}
