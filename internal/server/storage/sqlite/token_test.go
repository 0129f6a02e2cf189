package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refkeeper/refkeeper/internal/models"
	"github.com/refkeeper/refkeeper/internal/server/storage"
)

func TestTokenStorage_SaveAndGetRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	token := &models.RefreshToken{
		Token:     "refresh-token-1",
		UserID:    userID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	retrieved, err := s.GetRefreshToken(ctx, "refresh-token-1")
	require.NoError(t, err)
	assert.Equal(t, token.Token, retrieved.Token)
	assert.Equal(t, token.UserID, retrieved.UserID)
	assert.True(t, token.ExpiresAt.Equal(retrieved.ExpiresAt))
}

func TestTokenStorage_GetRefreshToken_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetRefreshToken(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_DeleteRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	token := &models.RefreshToken{
		Token:     "to-delete",
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.SaveRefreshToken(ctx, token))
	require.NoError(t, s.DeleteRefreshToken(ctx, "to-delete"))

	_, err := s.GetRefreshToken(ctx, "to-delete")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Deleting again reports not found
	err = s.DeleteRefreshToken(ctx, "to-delete")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_DeleteUserTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	otherID := createTestUser(t, ctx, s)

	for _, tok := range []string{"t1", "t2", "t3"} {
		require.NoError(t, s.SaveRefreshToken(ctx, &models.RefreshToken{
			Token:     tok,
			UserID:    userID,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		}))
	}
	require.NoError(t, s.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "other",
		UserID:    otherID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}))

	deleted, err := s.DeleteUserTokens(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	// The other user's token is untouched
	_, err = s.GetRefreshToken(ctx, "other")
	require.NoError(t, err)
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	require.NoError(t, s.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "expired",
		UserID:    userID,
		ExpiresAt: now.Add(-time.Minute),
		CreatedAt: now.Add(-time.Hour),
	}))
	require.NoError(t, s.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "valid",
		UserID:    userID,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}))

	deleted, err := s.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.GetRefreshToken(ctx, "expired")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
	_, err = s.GetRefreshToken(ctx, "valid")
	require.NoError(t, err)
}
