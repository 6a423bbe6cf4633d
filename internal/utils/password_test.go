package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
)

func TestPasswordHash(t *testing.T) {
	PasswordCost = bcrypt.MinCost
	t.Cleanup(func() { PasswordCost = bcrypt.DefaultCost })

	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("", hash))

	t.Run("longest accepted password", func(t *testing.T) {
		long := strings.Repeat("a", MaxPasswordBytes)
		hash, err := HashPassword(long)
		require.NoError(t, err)
		assert.True(t, CheckPasswordHash(long, hash))
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := HashPassword("")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("password over bcrypt limit", func(t *testing.T) {
		_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("account without password", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("s3cret-pass", ""))
	})
}
