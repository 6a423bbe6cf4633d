package repositories

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// BusinessReader defines read operations for business data
type BusinessReader interface {
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinessesByOwner returns the businesses owned by a user, oldest first.
	ListBusinessesByOwner(ctx context.Context, ownerUserID string) ([]domain.Business, error)
}

// BusinessWriter defines write operations for business data
type BusinessWriter interface {
	SaveBusiness(ctx context.Context, business domain.Business) error
	UpdateBusiness(ctx context.Context, business domain.Business) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
