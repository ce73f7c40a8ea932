package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "Mozilla/5.0 (classroom kiosk)"

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, "admin", testUserAgent)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(key, token, testUserAgent)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.AdminID)
	assert.Equal(t, testUserAgent, claims.UserAgent)
}

func TestParseTokenRejections(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, "admin", testUserAgent)
	require.NoError(t, err)

	t.Run("wrong signing key", func(t *testing.T) {
		_, err := ParseToken([]byte("other-key"), token, testUserAgent)

		assert.Error(t, err)
	})

	t.Run("different user agent", func(t *testing.T) {
		_, err := ParseToken(key, token, "curl/8.0")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseToken(key, "not.a.token", testUserAgent)

		assert.Error(t, err)
	})
}
