package services

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
)

// SettingsSvcFacade manages user preferences.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error)
	// SetActiveBusiness remembers the business the user last acted on.
	SetActiveBusiness(ctx context.Context, userID, businessID string) error
}
