package dto

import "github.com/shopspring/decimal"

// ReportParams defines the shared query parameters for report endpoints.
type ReportParams struct {
	From string `form:"from"` // inclusive, "2006-01-02"
	To   string `form:"to"`   // inclusive, "2006-01-02"
	// Capital is the supplied opening capital for balance sheet and cash flow.
	Capital decimal.Decimal `form:"capital"`
}
