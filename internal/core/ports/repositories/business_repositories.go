package repositories

import (
	"context"

	"github.com/bukukita/bkk_backend/internal/core/domain"
)

// BusinessRepository defines persistence operations for businesses and their
// memberships.
type BusinessRepository interface {
	SaveBusiness(ctx context.Context, business domain.Business, ownerMember domain.BusinessMember) error
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
	ListBusinessesByUser(ctx context.Context, userID string) ([]domain.Business, error)
	FindMembership(ctx context.Context, businessID, userID string) (*domain.BusinessMember, error)
}
