package dto

import (
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
)

// CreateBusinessRequest defines the data needed to create a business.
type CreateBusinessRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID  string    `json:"businessID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:  b.BusinessID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

// ListBusinessesResponse wraps the businesses visible to the caller.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}
