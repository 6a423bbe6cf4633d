package repositories

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	FindPartyByID(ctx context.Context, businessID, partyID string) (*domain.Party, error)

	// ListParties returns the parties of a business, newest first. An empty
	// partyType lists every party.
	ListParties(ctx context.Context, businessID string, partyType domain.PartyType) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	SaveParty(ctx context.Context, party domain.Party) error
	UpdateParty(ctx context.Context, party domain.Party) error
	DeleteParty(ctx context.Context, businessID, partyID string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
