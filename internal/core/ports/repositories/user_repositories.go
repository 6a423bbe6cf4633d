package repositories

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// SettingsRepository stores per-user preferences.
type SettingsRepository interface {
	// FindSettingsByUserID returns ErrNotFound when the user never saved settings.
	FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error)

	// UpsertSettings creates or replaces the settings of a user.
	UpsertSettings(ctx context.Context, settings domain.UserSettings) error
}
