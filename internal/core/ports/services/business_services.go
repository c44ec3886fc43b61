package services

import (
	"context"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	"github.com/bukukita/bkk_backend/internal/dto"
)

// BusinessAuthorizer checks a user's role within a business. Services consume
// this narrow interface instead of the full BusinessService.
type BusinessAuthorizer interface {
	// AuthorizeUserAction returns nil when the user holds at least the
	// required role; apperrors.ErrNotFound when there is no membership;
	// apperrors.ErrForbidden when the role is insufficient.
	AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.BusinessRole) error
}

// BusinessService manages businesses and their memberships.
type BusinessService interface {
	BusinessAuthorizer
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error)
	ListBusinessesForUser(ctx context.Context, userID string) ([]domain.Business, error)
}
