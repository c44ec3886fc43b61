package domain

// User represents an authenticated principal (business manager or investor).
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash; never serialized
	AuditFields
}
