package middleware

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const authCtxKey = contextKey("auth")

// WithAuthContext returns a copy of ctx carrying the authenticated caller.
func WithAuthContext(ctx context.Context, auth domain.AuthContext) context.Context {
	return context.WithValue(ctx, authCtxKey, auth)
}

// AuthFromCtx retrieves the authenticated caller stored by AuthMiddleware.
func AuthFromCtx(ctx context.Context) (domain.AuthContext, bool) {
	auth, ok := ctx.Value(authCtxKey).(domain.AuthContext)
	return auth, ok && auth.IsAuthenticated()
}

// GetAuthContext retrieves the authenticated caller from the Gin request.
// The returned context is empty when the request was not authenticated.
func GetAuthContext(c *gin.Context) domain.AuthContext {
	auth, _ := AuthFromCtx(c.Request.Context())
	return auth
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	auth, ok := AuthFromCtx(c.Request.Context())
	return auth.UserID, ok
}
