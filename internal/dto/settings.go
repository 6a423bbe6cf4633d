package dto

import (
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// UpdateSettingsRequest defines the user preferences that may be changed.
type UpdateSettingsRequest struct {
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,currencycode"`
	DateFormat   *string `json:"dateFormat"`
}

// SettingsResponse defines the data returned for user settings.
type SettingsResponse struct {
	ActiveBusinessID *string   `json:"activeBusinessID,omitempty"`
	CurrencyCode     string    `json:"currencyCode"`
	DateFormat       string    `json:"dateFormat"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func ToSettingsResponse(s *domain.UserSettings) SettingsResponse {
	return SettingsResponse{
		ActiveBusinessID: s.ActiveBusinessID,
		CurrencyCode:     s.CurrencyCode,
		DateFormat:       s.DateFormat,
		UpdatedAt:        s.UpdatedAt,
	}
}
