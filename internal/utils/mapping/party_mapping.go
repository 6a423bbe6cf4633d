package mapping

import (
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/models"
)

func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:       d.PartyID,
		BusinessID:    d.BusinessID,
		Name:          d.Name,
		ContactNumber: d.ContactNumber,
		PartyType:     string(d.PartyType),
		ProfileURL:    d.ProfileURL,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:       m.PartyID,
		BusinessID:    m.BusinessID,
		Name:          m.Name,
		ContactNumber: m.ContactNumber,
		PartyType:     domain.PartyType(m.PartyType),
		ProfileURL:    m.ProfileURL,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}

func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:  d.BusinessID,
		Name:        d.Name,
		OwnerUserID: d.OwnerUserID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		OwnerUserID: m.OwnerUserID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainBusinessSlice(ms []models.Business) []domain.Business {
	ds := make([]domain.Business, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBusiness(m)
	}
	return ds
}
