package utils

import (
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWT(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "secret", 1)
		require.NoError(t, err)

		sessionID, err := ParseJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "secret", 1)
		require.NoError(t, err)

		_, err = ParseJWT(token, "other")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr), "error should be a custom error")
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "secret", -1)
		require.NoError(t, err)

		_, err = ParseJWT(token, "secret")
		assert.Error(t, err, "expired token should be rejected")
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseJWT("not-a-jwt", "secret")
		assert.Error(t, err)
	})
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secr3t!pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Secr3t!pass", hash))
	assert.False(t, CheckPasswordHash("secr3t!pass", hash))
}
