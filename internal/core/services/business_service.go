package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bukukita/bkk_backend/internal/apperrors"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	portsrepo "github.com/bukukita/bkk_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/bukukita/bkk_backend/internal/dto"
	"github.com/google/uuid"
)

// businessService manages businesses, memberships and role checks.
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepository
	accountSvc   portssvc.AccountService
}

// NewBusinessService creates a new business service. accountSvc seeds the
// system chart of accounts for freshly created businesses; pass nil to skip
// seeding (tests).
func NewBusinessService(repo portsrepo.BusinessRepository, accountSvc portssvc.AccountService) portssvc.BusinessService {
	return &businessService{
		businessRepo: repo,
		accountSvc:   accountSvc,
	}
}

var _ portssvc.BusinessService = (*businessService)(nil)

// roleRank orders roles by privilege for the minimum-role check.
var roleRank = map[domain.BusinessRole]int{
	domain.RoleInvestor: 1,
	domain.RoleManager:  2,
	domain.RoleOwner:    3,
}

// AuthorizeUserAction checks the caller's membership against the required role.
func (s *businessService) AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.BusinessRole) error {
	member, err := s.businessRepo.FindMembership(ctx, businessID, userID)
	if err != nil {
		return err
	}
	if roleRank[member.Role] < roleRank[requiredRole] {
		return fmt.Errorf("%w: role %s cannot perform this action", apperrors.ErrForbidden, member.Role)
	}
	return nil
}

// CreateBusiness creates a business, grants the creator the OWNER role and
// seeds the system chart of accounts.
func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error) {
	now := time.Now()
	business := domain.Business{
		BusinessID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	owner := domain.BusinessMember{
		BusinessID: business.BusinessID,
		UserID:     creatorUserID,
		Role:       domain.RoleOwner,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.businessRepo.SaveBusiness(ctx, business, owner); err != nil {
		s.LogError(ctx, err, "Failed to save business", slog.String("business_name", req.Name))
		return nil, err
	}

	if s.accountSvc != nil {
		if err := s.accountSvc.SeedSystemAccounts(ctx, business.BusinessID, creatorUserID); err != nil {
			s.LogError(ctx, err, "Failed to seed system accounts", slog.String("business_id", business.BusinessID))
			return nil, fmt.Errorf("failed to seed system accounts: %w", err)
		}
	}

	s.LogInfo(ctx, "Business created", slog.String("business_id", business.BusinessID))
	return &business, nil
}

// ListBusinessesForUser returns the businesses the user is a member of.
func (s *businessService) ListBusinessesForUser(ctx context.Context, userID string) ([]domain.Business, error) {
	businesses, err := s.businessRepo.ListBusinessesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses", slog.String("user_id", userID))
		return nil, err
	}
	return businesses, nil
}
