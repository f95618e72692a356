package utils

import (
	"testing"
	"time"

	"whattoday/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	t.Run("subject survives the round trip", func(t *testing.T) {
		token, err := GenerateToken("user-1", "access", AccessTokenTTL)
		require.NoError(t, err)

		sub, err := ExtractIDFromToken(token, "access")
		require.NoError(t, err)
		assert.Equal(t, "user-1", sub)
	})

	t.Run("kind mismatch is rejected", func(t *testing.T) {
		token, err := GenerateToken("user-1", "refresh", RefreshTokenTTL)
		require.NoError(t, err)

		_, err = ExtractIDFromToken(token, "access")
		assert.ErrorContains(t, err, "unexpected token kind")
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := GenerateToken("user-1", "access", -time.Minute)
		require.NoError(t, err)

		_, err = ExtractIDFromToken(token, "access")
		assert.Error(t, err)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateToken("user-1", "access", AccessTokenTTL)
		require.NoError(t, err)

		config.AppConfig.JWTSecret = "another-secret"
		defer func() { config.AppConfig.JWTSecret = "test-secret" }()

		_, err = ExtractIDFromToken(token, "access")
		assert.Error(t, err)
	})
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
