package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-1", "asha@example.com", "ROLE_USER", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "ROLE_USER", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "asha@example.com", "ROLE_USER", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaims(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ExtractClaims("not-a-token")
	assert.Error(t, err)
}
