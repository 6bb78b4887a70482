package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	Configure("unit-test-secret", 60)

	token, err := GenerateToken("user-123", "artist")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "artist", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	Configure("first-secret", 60)
	token, err := GenerateToken("user-123", "customer")
	require.NoError(t, err)

	Configure("different-secret", 60)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	Configure("unit-test-secret", -1)
	token, err := GenerateToken("user-123", "customer")
	require.NoError(t, err)

	Configure("unit-test-secret", 60)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestGenerateWithoutSecretFails(t *testing.T) {
	Configure("", 60)
	_, err := GenerateToken("user-123", "admin")
	assert.Error(t, err)
}
