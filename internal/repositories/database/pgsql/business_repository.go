package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bukukita/bkk_backend/internal/apperrors"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	portsrepo "github.com/bukukita/bkk_backend/internal/core/ports/repositories"
	"github.com/bukukita/bkk_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for businesses and
// memberships.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepository {
	return &PgxBusinessRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessRepository = (*PgxBusinessRepository)(nil)

func toModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:  d.BusinessID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveBusiness inserts the business and its owner membership in one
// transaction so a business never exists without an owner.
func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business, ownerMember domain.BusinessMember) error {
	m := toModelBusiness(business)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	businessQuery := `
		INSERT INTO businesses (business_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := tx.Exec(ctx, businessQuery,
		m.BusinessID, m.Name, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: business %s", apperrors.ErrDuplicate, m.BusinessID)
		}
		return fmt.Errorf("failed to save business %s: %w", m.BusinessID, err)
	}

	memberQuery := `
		INSERT INTO business_members (business_id, user_id, role, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := tx.Exec(ctx, memberQuery,
		ownerMember.BusinessID, ownerMember.UserID, string(ownerMember.Role),
		ownerMember.CreatedAt, ownerMember.CreatedBy, ownerMember.LastUpdatedAt, ownerMember.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to save owner membership for business %s: %w", m.BusinessID, err)
	}

	return r.Commit(ctx, tx)
}

// FindBusinessByID retrieves one business.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT business_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM businesses
		WHERE business_id = $1;
	`
	var m models.Business
	err := r.Pool.QueryRow(ctx, query, businessID).Scan(
		&m.BusinessID, &m.Name, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: business %s", apperrors.ErrNotFound, businessID)
		}
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}

	business := toDomainBusiness(m)
	return &business, nil
}

// ListBusinessesByUser retrieves the businesses a user is a member of.
func (r *PgxBusinessRepository) ListBusinessesByUser(ctx context.Context, userID string) ([]domain.Business, error) {
	query := `
		SELECT b.business_id, b.name, b.description, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
		FROM businesses b
		JOIN business_members bm ON bm.business_id = b.business_id
		WHERE bm.user_id = $1
		ORDER BY b.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses for user %s: %w", userID, err)
	}
	defer rows.Close()

	businesses := make([]domain.Business, 0)
	for rows.Next() {
		var m models.Business
		if err := rows.Scan(
			&m.BusinessID, &m.Name, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, toDomainBusiness(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading business rows: %w", err)
	}
	return businesses, nil
}

// FindMembership retrieves a user's membership in a business.
func (r *PgxBusinessRepository) FindMembership(ctx context.Context, businessID, userID string) (*domain.BusinessMember, error) {
	query := `
		SELECT business_id, user_id, role, created_at, created_by, last_updated_at, last_updated_by
		FROM business_members
		WHERE business_id = $1 AND user_id = $2;
	`
	var m models.BusinessMember
	err := r.Pool.QueryRow(ctx, query, businessID, userID).Scan(
		&m.BusinessID, &m.UserID, &m.Role,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no membership for user %s in business %s", apperrors.ErrNotFound, userID, businessID)
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}

	return &domain.BusinessMember{
		BusinessID: m.BusinessID,
		UserID:     m.UserID,
		Role:       domain.BusinessRole(m.Role),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}
