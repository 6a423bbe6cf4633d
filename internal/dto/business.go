package dto

import (
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// CreateBusinessRequest defines the data needed to create a business.
type CreateBusinessRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameBusinessRequest renames the active business.
type RenameBusinessRequest struct {
	Name string `json:"name" binding:"required"`
}

// SwitchBusinessRequest selects the business subsequent requests act on.
type SwitchBusinessRequest struct {
	BusinessID string `json:"businessID" binding:"required"`
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID    string    `json:"businessID"`
	Name          string    `json:"name"`
	OwnerUserID   string    `json:"ownerUserID"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:    b.BusinessID,
		Name:          b.Name,
		OwnerUserID:   b.OwnerUserID,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ListBusinessesResponse wraps the list of businesses.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

func ToListBusinessesResponse(businesses []domain.Business) ListBusinessesResponse {
	res := make([]BusinessResponse, len(businesses))
	for i := range businesses {
		res[i] = ToBusinessResponse(&businesses[i])
	}
	return ListBusinessesResponse{Businesses: res}
}
