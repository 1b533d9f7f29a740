package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	token, exp, err := GenerateToken(testSecret, "u-1", "Harsh", "harsh@example.com", time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 2*time.Second)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Harsh", claims.Name)
	assert.Equal(t, "harsh@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(testSecret, "u-1", "n", "e@example.com", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("another-secret-another-secret-32", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, _, err := GenerateToken(testSecret, "u-1", "n", "e@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.Error(t, err)
}
