package services

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"google.golang.org/api/idtoken"
)

// Session is the result of a successful sign-in or business switch.
type Session struct {
	User       domain.User
	BusinessID string
	Token      string
}

// IdentitySvcFacade signs users in and issues access tokens.
type IdentitySvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*Session, error)
	Login(ctx context.Context, req dto.LoginRequest) (*Session, error)
	ExchangeGoogleCode(ctx context.Context, code string) (*Session, error)
	SwitchBusiness(ctx context.Context, auth domain.AuthContext, businessID string) (*Session, error)
}

// GoogleOAuthSvc wraps the Google OAuth endpoints.
type GoogleOAuthSvc interface {
	// ExchangeCodeForIDToken exchanges an authorization code and returns the raw ID token.
	ExchangeCodeForIDToken(ctx context.Context, code string) (string, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
