package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	BusinessAuthorizer portssvc.BusinessAuthorizerSvc
}

// ServiceOption configures the BaseService embedded in every service.
type ServiceOption func(*BaseService)

// WithBusinessAuthorizer makes the service re-check business ownership on every call.
func WithBusinessAuthorizer(authorizer portssvc.BusinessAuthorizerSvc) ServiceOption {
	return func(s *BaseService) {
		s.BusinessAuthorizer = authorizer
	}
}

func (s *BaseService) apply(options []ServiceOption) {
	for _, option := range options {
		option(s)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogUnexpected logs err unless it is one of the domain errors callers expect.
func (s *BaseService) LogUnexpected(ctx context.Context, err error, msg string, keyvals ...any) {
	if isExpected(err) {
		s.LogDebug(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// Authorize checks that the caller has an active business and owns it.
func (s *BaseService) Authorize(ctx context.Context, auth domain.AuthContext) error {
	if !auth.HasBusiness() {
		return apperrors.NewUnauthorizedError("an authenticated session with an active business is required")
	}
	if s.BusinessAuthorizer != nil {
		return s.BusinessAuthorizer.AuthorizeOwner(ctx, auth.UserID, auth.ActiveBusinessID)
	}
	s.LogDebug(ctx, "No business authorizer provided, access granted by default",
		slog.String("user_id", auth.UserID),
		slog.String("business_id", auth.ActiveBusinessID))
	return nil
}

// authorizeRead is Authorize for listings: a user without an active business
// sees an empty result instead of an error, signalled by ok == false.
func (s *BaseService) authorizeRead(ctx context.Context, auth domain.AuthContext) (ok bool, err error) {
	if !auth.IsAuthenticated() {
		return false, apperrors.NewUnauthorizedError("an authenticated session is required")
	}
	if auth.ActiveBusinessID == "" {
		return false, nil
	}
	if err := s.Authorize(ctx, auth); err != nil {
		return false, err
	}
	return true, nil
}

func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrUnauthorized) ||
		errors.Is(err, apperrors.ErrProtectedResource) ||
		errors.Is(err, apperrors.ErrImmutableField)
}
