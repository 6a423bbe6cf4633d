package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService implements GoogleOAuthSvc.
type googleOAuthService struct {
	clientID     string
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvc {
	return &googleOAuthService{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var errGoogleNotConfigured = apperrors.NewAppError(http.StatusServiceUnavailable, "google sign-in is not configured", nil)

// ExchangeCodeForIDToken exchanges an OAuth authorization code and returns the ID token it carries.
func (s *googleOAuthService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	if s.clientID == "" {
		return "", errGoogleNotConfigured
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: failed to exchange oauth code: %v", apperrors.ErrUnauthorized, err)
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", fmt.Errorf("%w: google response did not include an id token", apperrors.ErrUnauthorized)
	}
	return idToken, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.clientID == "" {
		return nil, errGoogleNotConfigured
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %v", apperrors.ErrUnauthorized, err)
	}
	if payload.Subject == "" {
		return nil, errors.Join(apperrors.ErrUnauthorized, errors.New("google ID token has no subject"))
	}
	return payload, nil
}
