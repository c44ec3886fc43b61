package models

// Business represents one tenant.
type Business struct {
	BusinessID  string `db:"business_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// BusinessMember links a user to a business with a role.
type BusinessMember struct {
	BusinessID string `db:"business_id"`
	UserID     string `db:"user_id"`
	Role       string `db:"role"`
	AuditFields
}
