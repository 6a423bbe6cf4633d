package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

func (s *Store) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	defer s.lock(ctx)()
	e, ok := s.businesses[businessID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	business := e.value
	return &business, nil
}

func (s *Store) ListBusinessesByOwner(ctx context.Context, ownerUserID string) ([]domain.Business, error) {
	defer s.lock(ctx)()
	var matched []entry[domain.Business]
	for _, e := range s.businesses {
		if e.value.OwnerUserID == ownerUserID {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	businesses := make([]domain.Business, 0, len(matched))
	for _, e := range matched {
		businesses = append(businesses, e.value)
	}
	return businesses, nil
}

func (s *Store) SaveBusiness(ctx context.Context, business domain.Business) error {
	defer s.lock(ctx)()
	if _, exists := s.businesses[business.BusinessID]; exists {
		return fmt.Errorf("%w: business with ID %s already exists", apperrors.ErrDuplicate, business.BusinessID)
	}
	s.businesses[business.BusinessID] = entry[domain.Business]{value: business, seq: s.nextSeq()}
	return nil
}

func (s *Store) UpdateBusiness(ctx context.Context, business domain.Business) error {
	defer s.lock(ctx)()
	e, ok := s.businesses[business.BusinessID]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.value.Name = business.Name
	e.value.LastUpdatedAt = business.LastUpdatedAt
	e.value.LastUpdatedBy = business.LastUpdatedBy
	s.businesses[business.BusinessID] = e
	return nil
}
