package domain

// TransactionCategory buckets a transaction for reporting purposes.
type TransactionCategory string

const (
	CategoryEarn  TransactionCategory = "EARN"  // Revenue
	CategoryOpex  TransactionCategory = "OPEX"  // Operating expense (default expense bucket)
	CategoryVar   TransactionCategory = "VAR"   // Variable cost / stock purchases
	CategoryCapex TransactionCategory = "CAPEX" // Asset purchases
	CategoryTax   TransactionCategory = "TAX"   // Tax payments
	CategoryFin   TransactionCategory = "FIN"   // Financing flows; excluded from net profit
)

// IsValid reports whether c is one of the six known categories.
func (c TransactionCategory) IsValid() bool {
	switch c {
	case CategoryEarn, CategoryOpex, CategoryVar, CategoryCapex, CategoryTax, CategoryFin:
		return true
	}
	return false
}
