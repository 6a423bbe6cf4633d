package dto

import (
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a party.
type CreatePartyRequest struct {
	Name          string           `json:"name" binding:"required"`
	ContactNumber *string          `json:"contactNumber"`
	PartyType     domain.PartyType `json:"partyType" binding:"required,partytype"`
	ProfileURL    *string          `json:"profileURL" binding:"omitempty,url"`
}

// UpdatePartyRequest only allows the name and contact number to change.
type UpdatePartyRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contactNumber"`
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	PartyType domain.PartyType `form:"type" binding:"omitempty,partytype"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID       string           `json:"partyID"`
	BusinessID    string           `json:"businessID"`
	Name          string           `json:"name"`
	ContactNumber *string          `json:"contactNumber,omitempty"`
	PartyType     domain.PartyType `json:"partyType"`
	ProfileURL    *string          `json:"profileURL,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		BusinessID:    p.BusinessID,
		Name:          p.Name,
		ContactNumber: p.ContactNumber,
		PartyType:     p.PartyType,
		ProfileURL:    p.ProfileURL,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return ListPartiesResponse{Parties: res}
}

// DeletePartyResponse reports the cascade performed by a party deletion.
type DeletePartyResponse struct {
	Success             bool  `json:"success"`
	DeletedTransactions int64 `json:"deletedTransactions"`
}
