package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, "user1", "testuser")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.EqualValues(t, (15 * time.Minute).Seconds(), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user1", claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "refkeeper", claims.Issuer)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateAccessToken(testJWTConfig(), "user1", "testuser")
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = []byte("different-secret")

	_, err = ValidateAccessToken(other, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenTTL = -time.Minute

	token, _, err := GenerateAccessToken(cfg, "user1", "testuser")
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken(testJWTConfig(), "not.a.token")
	assert.Error(t, err)
}

func TestGenerateRefreshToken(t *testing.T) {
	cfg := testJWTConfig()

	token1, expiresAt, err := GenerateRefreshToken(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token1)
	assert.WithinDuration(t, time.Now().Add(cfg.RefreshTokenTTL), expiresAt, time.Minute)

	token2, _, err := GenerateRefreshToken(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, token1, token2)
}
