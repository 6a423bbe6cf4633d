package services

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
)

// PartyReaderSvc defines read operations for party data
type PartyReaderSvc interface {
	ListParties(ctx context.Context, auth domain.AuthContext, partyType domain.PartyType) ([]domain.Party, error)
	GetParty(ctx context.Context, auth domain.AuthContext, partyID string) (*domain.Party, error)
}

// PartyWriterSvc defines write operations for party data
type PartyWriterSvc interface {
	CreateParty(ctx context.Context, auth domain.AuthContext, req dto.CreatePartyRequest) (*domain.Party, error)
	UpdateParty(ctx context.Context, auth domain.AuthContext, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error)

	// DeleteParty removes the party together with its transactions and unlinks
	// its accounts. It returns the number of deleted transactions.
	DeleteParty(ctx context.Context, auth domain.AuthContext, partyID string) (int64, error)
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
