package services

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// BusinessReaderSvc defines read operations for business data
type BusinessReaderSvc interface {
	ListBusinesses(ctx context.Context, userID string) ([]domain.Business, error)
	GetBusiness(ctx context.Context, auth domain.AuthContext) (*domain.Business, error)
}

// BusinessWriterSvc defines write operations for business data
type BusinessWriterSvc interface {
	// CreateBusiness creates a business owned by userID and seeds its system accounts.
	CreateBusiness(ctx context.Context, userID, name string) (*domain.Business, error)
	RenameBusiness(ctx context.Context, auth domain.AuthContext, name string) (*domain.Business, error)
}

// BusinessAuthorizerSvc checks that a user may act on a business.
type BusinessAuthorizerSvc interface {
	AuthorizeOwner(ctx context.Context, userID, businessID string) error
}

// BusinessSvcFacade combines all business-related service interfaces
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
	BusinessAuthorizerSvc
}
