package domain

// Business is the tenancy boundary: every account and transaction belongs to one.
type Business struct {
	BusinessID  string `json:"businessID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// BusinessRole defines what a member may do within a business.
type BusinessRole string

const (
	RoleOwner    BusinessRole = "OWNER"
	RoleManager  BusinessRole = "MANAGER"
	RoleInvestor BusinessRole = "INVESTOR" // Read-only: reports and listings
)

// CanWrite reports whether the role may create or modify bookkeeping data.
func (r BusinessRole) CanWrite() bool {
	return r == RoleOwner || r == RoleManager
}

// BusinessMember links a user to a business with a role.
type BusinessMember struct {
	BusinessID string       `json:"businessID"`
	UserID     string       `json:"userID"`
	Role       BusinessRole `json:"role"`
	AuditFields
}
