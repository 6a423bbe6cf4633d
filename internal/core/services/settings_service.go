package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IsCurrencyCode reports whether code looks like an ISO 4217 alphabetic code.
func IsCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}

type settingsService struct {
	BaseService
	settingsRepo    portsrepo.SettingsRepository
	defaultCurrency string
}

// NewSettingsService creates a settings service; defaultCurrency is used for users without stored settings.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, defaultCurrency string) portssvc.SettingsSvcFacade {
	if !IsCurrencyCode(defaultCurrency) {
		defaultCurrency = domain.DefaultCurrencyCode
	}
	return &settingsService{settingsRepo: settingsRepo, defaultCurrency: defaultCurrency}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("an authenticated session is required")
	}
	settings, err := s.settingsRepo.FindSettingsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultUserSettings(userID, s.defaultCurrency)
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to load settings", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.CurrencyCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CurrencyCode))
		if !IsCurrencyCode(code) {
			return nil, fmt.Errorf("%w: currency code must be a 3-letter ISO code", apperrors.ErrValidation)
		}
		settings.CurrencyCode = code
	}
	if req.DateFormat != nil {
		if !domain.IsSupportedDateFormat(*req.DateFormat) {
			return nil, fmt.Errorf("%w: unsupported date format %q", apperrors.ErrValidation, *req.DateFormat)
		}
		settings.DateFormat = *req.DateFormat
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.UpsertSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) SetActiveBusiness(ctx context.Context, userID, businessID string) error {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return err
	}
	settings.ActiveBusinessID = &businessID
	settings.UpdatedAt = time.Now().UTC()
	if err := s.settingsRepo.UpsertSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save active business", slog.String("user_id", userID))
		return fmt.Errorf("failed to save active business: %w", err)
	}
	return nil
}
