package domain

// Validation issue codes. Stable: clients key inline rendering off these.
const (
	CodeInvalidAmount   = "INVALID_AMOUNT"
	CodeMissingAccount  = "MISSING_ACCOUNT"
	CodeSameAccount     = "SAME_ACCOUNT"
	CodeAccountNotFound = "ACCOUNT_NOT_FOUND"
	CodeInvalidDate     = "INVALID_DATE"
	CodeRequiredField   = "REQUIRED_FIELD"
	CodeInactiveAccount = "INACTIVE_ACCOUNT"
	CodeLargeAmount     = "LARGE_AMOUNT"
)

// ValidationSeverity distinguishes blocking errors from advisory warnings.
type ValidationSeverity string

const (
	SeverityError   ValidationSeverity = "error"
	SeverityWarning ValidationSeverity = "warning"
)

// ValidationIssue is one field-attributed finding from the transaction validator.
type ValidationIssue struct {
	Field    string             `json:"field"`
	Code     string             `json:"code"`
	Message  string             `json:"message"`
	Severity ValidationSeverity `json:"severity"`
}

// ValidationResult carries all findings for a prospective transaction.
// Warnings never block submission; callers gate only on Errors.
type ValidationResult struct {
	IsValid  bool              `json:"isValid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}
