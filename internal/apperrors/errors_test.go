package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"wrapped unauthorized", fmt.Errorf("ctx: %w", apperrors.ErrUnauthorized), http.StatusUnauthorized},
		{"unauthorized app error", apperrors.NewUnauthorizedError("business not accessible"), http.StatusUnauthorized},
		{"not found", fmt.Errorf("%w: account x", apperrors.ErrNotFound), http.StatusNotFound},
		{"validation", fmt.Errorf("%w: name is required", apperrors.ErrValidation), http.StatusBadRequest},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict},
		{"protected", apperrors.ErrProtectedResource, http.StatusConflict},
		{"immutable", apperrors.ErrImmutableField, http.StatusConflict},
		{"app error code", apperrors.NewAppError(http.StatusServiceUnavailable, "google sign-in is not configured", nil), http.StatusServiceUnavailable},
		{"internal app error", apperrors.NewInternalServerError("failed to begin transaction"), http.StatusInternalServerError},
		{"plain error", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := errors.New("tx closed")
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to commit transaction: tx closed", err.Error())
}
