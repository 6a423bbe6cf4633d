package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps err to its HTTP status. Client errors are surfaced
// verbatim; unexpected failures are logged and replaced with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)

	var appErr *apperrors.AppError
	isAppErr := errors.As(err, &appErr)

	switch {
	case status < http.StatusInternalServerError:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
		if isAppErr {
			c.JSON(status, ErrorResponse{Error: appErr.Message})
			return
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
	case isAppErr && status != http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, ErrorResponse{Error: appErr.Message})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// respondBindError reports a malformed body or query string.
func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + what + ": " + err.Error()})
}
