package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/Murlidhar08/settlr-sub001/internal/utils"
	"github.com/google/uuid"
)

// TokenConfig holds what is needed to sign access tokens.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

var errInvalidCredentials = apperrors.NewUnauthorizedError("invalid email or password")

// identityService implements IdentitySvcFacade. Passwords and Google sign-in
// only ever produce a session; the session is a signed JWT.
type identityService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	userRepo    portsrepo.UserRepositoryFacade
	businessSvc portssvc.BusinessSvcFacade
	settingsSvc portssvc.SettingsSvcFacade
	googleOAuth portssvc.GoogleOAuthSvc
	tokens      TokenConfig
}

// NewIdentityService creates a new identity service.
func NewIdentityService(
	txManager portsrepo.TransactionManager,
	userRepo portsrepo.UserRepositoryFacade,
	businessSvc portssvc.BusinessSvcFacade,
	settingsSvc portssvc.SettingsSvcFacade,
	googleOAuth portssvc.GoogleOAuthSvc,
	tokens TokenConfig,
) portssvc.IdentitySvcFacade {
	return &identityService{
		txManager:   txManager,
		userRepo:    userRepo,
		businessSvc: businessSvc,
		settingsSvc: settingsSvc,
		googleOAuth: googleOAuth,
		tokens:      tokens,
	}
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

func (s *identityService) Register(ctx context.Context, req dto.RegisterRequest) (*portssvc.Session, error) {
	email := normalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name and email are required", apperrors.ErrValidation)
	}
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalServerError("failed to register user")
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.NewAuditFields("", time.Now().UTC()),
	}
	user.CreatedBy, user.LastUpdatedBy = user.UserID, user.UserID

	businessID, err := s.createUserWithBusiness(ctx, user, req.BusinessName)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to register user", slog.String("email", email))
		return nil, err
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return s.issue(user, businessID)
}

func (s *identityService) Login(ctx context.Context, req dto.LoginRequest) (*portssvc.Session, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	// A password account keeps its password after a Google identity is linked.
	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogDebug(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return nil, errInvalidCredentials
	}

	businessID, err := s.resolveBusiness(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return s.issue(*user, businessID)
}

func (s *identityService) ExchangeGoogleCode(ctx context.Context, code string) (*portssvc.Session, error) {
	rawIDToken, err := s.googleOAuth.ExchangeCodeForIDToken(ctx, code)
	if err != nil {
		s.LogUnexpected(ctx, err, "Google code exchange failed")
		return nil, err
	}
	payload, err := s.googleOAuth.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		s.LogUnexpected(ctx, err, "Google ID token rejected")
		return nil, err
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	email = normalizeEmail(email)

	user, err := s.userRepo.FindUserByProvider(ctx, domain.ProviderGoogle, payload.Subject)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if user == nil {
		// Anything keyed on the email needs Google to vouch for it.
		if email == "" || !emailVerified(payload.Claims) {
			s.LogDebug(ctx, "Google sign-in rejected, email missing or unverified", slog.String("subject", payload.Subject))
			return nil, apperrors.NewUnauthorizedError("google account email is not verified")
		}
		user, err = s.userRepo.FindUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if user != nil {
			if err := s.linkGoogleIdentity(ctx, user, payload.Subject); err != nil {
				return nil, err
			}
		}
	}

	if user == nil {
		if strings.TrimSpace(name) == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		newUser := domain.User{
			UserID:         uuid.NewString(),
			Name:           name,
			Email:          email,
			AuthProvider:   domain.ProviderGoogle,
			ProviderUserID: payload.Subject,
			AuditFields:    domain.NewAuditFields("", time.Now().UTC()),
		}
		newUser.CreatedBy, newUser.LastUpdatedBy = newUser.UserID, newUser.UserID

		businessID, err := s.createUserWithBusiness(ctx, newUser, name+"'s Business")
		if err != nil {
			s.LogUnexpected(ctx, err, "Failed to create Google user")
			return nil, err
		}
		s.LogInfo(ctx, "User registered with Google", slog.String("user_id", newUser.UserID))
		return s.issue(newUser, businessID)
	}

	businessID, err := s.resolveBusiness(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User logged in with Google", slog.String("user_id", user.UserID))
	return s.issue(*user, businessID)
}

func (s *identityService) SwitchBusiness(ctx context.Context, auth domain.AuthContext, businessID string) (*portssvc.Session, error) {
	if !auth.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("an authenticated session is required")
	}
	if err := s.businessSvc.AuthorizeOwner(ctx, auth.UserID, businessID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, auth.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("user no longer exists")
		}
		return nil, err
	}
	if err := s.settingsSvc.SetActiveBusiness(ctx, auth.UserID, businessID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Active business switched", slog.String("business_id", businessID))
	return s.issue(*user, businessID)
}

// linkGoogleIdentity binds the Google subject to an existing user so later
// sign-ins match on the subject instead of the email.
func (s *identityService) linkGoogleIdentity(ctx context.Context, user *domain.User, subject string) error {
	if user.ProviderUserID != "" && user.ProviderUserID != subject {
		s.LogDebug(ctx, "Google subject does not match linked identity", slog.String("user_id", user.UserID))
		return apperrors.NewUnauthorizedError("account is linked to a different google identity")
	}
	user.AuthProvider = domain.ProviderGoogle
	user.ProviderUserID = subject
	user.Touch(user.UserID, time.Now().UTC())
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogUnexpected(ctx, err, "Failed to link Google identity", slog.String("user_id", user.UserID))
		return err
	}
	s.LogInfo(ctx, "Google identity linked", slog.String("user_id", user.UserID))
	return nil
}

// emailVerified reads the email_verified claim, which Google sends as a bool
// or, in older tokens, as the string "true".
func emailVerified(claims map[string]interface{}) bool {
	switch v := claims["email_verified"].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	}
	return false
}

// createUserWithBusiness persists the user, its first business and its settings atomically.
func (s *identityService) createUserWithBusiness(ctx context.Context, user domain.User, businessName string) (string, error) {
	var businessID string
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.SaveUser(ctx, user); err != nil {
			return err
		}
		business, err := s.businessSvc.CreateBusiness(ctx, user.UserID, businessName)
		if err != nil {
			return err
		}
		businessID = business.BusinessID
		return s.settingsSvc.SetActiveBusiness(ctx, user.UserID, businessID)
	})
	return businessID, err
}

// resolveBusiness picks the last active business if the user still owns it,
// otherwise the oldest owned business. It returns "" for users without one.
func (s *identityService) resolveBusiness(ctx context.Context, userID string) (string, error) {
	settings, err := s.settingsSvc.GetSettings(ctx, userID)
	if err != nil {
		return "", err
	}
	if settings.ActiveBusinessID != nil && *settings.ActiveBusinessID != "" {
		if err := s.businessSvc.AuthorizeOwner(ctx, userID, *settings.ActiveBusinessID); err == nil {
			return *settings.ActiveBusinessID, nil
		}
	}
	businesses, err := s.businessSvc.ListBusinesses(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(businesses) == 0 {
		return "", nil
	}
	return businesses[0].BusinessID, nil
}

func (s *identityService) issue(user domain.User, businessID string) (*portssvc.Session, error) {
	token, err := utils.GenerateJWT(user.UserID, businessID, s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to issue access token", err)
	}
	return &portssvc.Session{User: user, BusinessID: businessID, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
