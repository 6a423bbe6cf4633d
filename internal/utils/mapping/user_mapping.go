package mapping

import (
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Name:           d.Name,
		Email:          d.Email,
		PasswordHash:   nullIfEmpty(d.PasswordHash),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: nullIfEmpty(d.ProviderUserID),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   valueOrEmpty(m.PasswordHash),
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: valueOrEmpty(m.ProviderUserID),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelUserSettings(d domain.UserSettings) models.UserSettings {
	return models.UserSettings{
		UserID:           d.UserID,
		ActiveBusinessID: d.ActiveBusinessID,
		CurrencyCode:     d.CurrencyCode,
		DateFormat:       d.DateFormat,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToDomainUserSettings(m models.UserSettings) domain.UserSettings {
	return domain.UserSettings{
		UserID:           m.UserID,
		ActiveBusinessID: m.ActiveBusinessID,
		CurrencyCode:     m.CurrencyCode,
		DateFormat:       m.DateFormat,
		UpdatedAt:        m.UpdatedAt,
	}
}
