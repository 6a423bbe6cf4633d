package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "biz-1", testSecret, time.Hour, "settlr")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "biz-1", claims.BusinessID)
	assert.Equal(t, "settlr", claims.Issuer)
}

func TestParseJWT_WithoutBusiness(t *testing.T) {
	token, err := GenerateJWT("user-1", "", testSecret, time.Hour, "settlr")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Empty(t, claims.BusinessID)
}

func TestParseJWT_Rejects(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT("user-1", "biz-1", testSecret, time.Hour, "settlr")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, "other-secret")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateJWT("user-1", "biz-1", testSecret, -time.Minute, "settlr")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, testSecret)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := GenerateJWT("", "biz-1", testSecret, time.Hour, "settlr")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAndValidateJWT("not-a-token", testSecret)
		assert.Error(t, err)
	})
}
