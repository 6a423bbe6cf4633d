package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

func (s *Store) FindPartyByID(ctx context.Context, businessID, partyID string) (*domain.Party, error) {
	defer s.lock(ctx)()
	e, ok := s.parties[partyID]
	if !ok || e.value.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	party := e.value
	return &party, nil
}

func (s *Store) ListParties(ctx context.Context, businessID string, partyType domain.PartyType) ([]domain.Party, error) {
	defer s.lock(ctx)()
	var matched []entry[domain.Party]
	for _, e := range s.parties {
		if e.value.BusinessID != businessID {
			continue
		}
		if partyType != "" && e.value.PartyType != partyType {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool {
		return newerFirst(matched[i], matched[j], func(p domain.Party) time.Time { return p.CreatedAt })
	})

	parties := make([]domain.Party, 0, len(matched))
	for _, e := range matched {
		parties = append(parties, e.value)
	}
	return parties, nil
}

func (s *Store) SaveParty(ctx context.Context, party domain.Party) error {
	defer s.lock(ctx)()
	if _, exists := s.parties[party.PartyID]; exists {
		return fmt.Errorf("%w: party with ID %s already exists", apperrors.ErrDuplicate, party.PartyID)
	}
	s.parties[party.PartyID] = entry[domain.Party]{value: party, seq: s.nextSeq()}
	return nil
}

func (s *Store) UpdateParty(ctx context.Context, party domain.Party) error {
	defer s.lock(ctx)()
	e, ok := s.parties[party.PartyID]
	if !ok || e.value.BusinessID != party.BusinessID {
		return apperrors.ErrNotFound
	}
	e.value.Name = party.Name
	e.value.ContactNumber = party.ContactNumber
	e.value.LastUpdatedAt = party.LastUpdatedAt
	e.value.LastUpdatedBy = party.LastUpdatedBy
	s.parties[party.PartyID] = e
	return nil
}

func (s *Store) DeleteParty(ctx context.Context, businessID, partyID string) error {
	defer s.lock(ctx)()
	e, ok := s.parties[partyID]
	if !ok || e.value.BusinessID != businessID {
		return apperrors.ErrNotFound
	}
	for _, t := range s.transactions {
		if t.value.PartyID != nil && *t.value.PartyID == partyID {
			return fmt.Errorf("party %s is still referenced by transaction %s", partyID, t.value.TransactionID)
		}
	}
	for id, a := range s.accounts {
		if a.value.PartyID != nil && *a.value.PartyID == partyID {
			a.value.PartyID = nil
			s.accounts[id] = a
		}
	}
	delete(s.parties, partyID)
	return nil
}
