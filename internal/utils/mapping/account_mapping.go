package mapping

import (
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		BusinessID:   d.BusinessID,
		Name:         d.Name,
		AccountType:  string(d.AccountType),
		MoneyType:    stringPtr(d.MoneyType),
		PartyType:    stringPtr(d.PartyType),
		CategoryType: stringPtr(d.CategoryType),
		PartyID:      d.PartyID,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		BusinessID:   m.BusinessID,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		MoneyType:    enumPtr[domain.MoneyType](m.MoneyType),
		PartyType:    enumPtr[domain.PartyType](m.PartyType),
		CategoryType: enumPtr[domain.CategoryType](m.CategoryType),
		PartyID:      m.PartyID,
		Status:       domain.AccountStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
