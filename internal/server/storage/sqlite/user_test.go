package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refkeeper/refkeeper/internal/models"
	"github.com/refkeeper/refkeeper/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		user *models.User
		name string
	}{
		{
			name: "create new user successfully",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "testuser1",
				PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$salt$hash",
				CreatedAt:    time.Now(),
				LastLogin:    nil,
			},
		},
		{
			name: "create user with last login",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "testuser2",
				PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$salt$hash2",
				CreatedAt:    time.Now(),
				LastLogin:    timePtr(time.Now()),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.CreateUser(ctx, tt.user))

			retrieved, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, retrieved.ID)
			assert.Equal(t, tt.user.Username, retrieved.Username)
			assert.Equal(t, tt.user.PasswordHash, retrieved.PasswordHash)
			if tt.user.LastLogin != nil {
				require.NotNil(t, retrieved.LastLogin)
				assert.True(t, tt.user.LastLogin.Equal(*retrieved.LastLogin))
			} else {
				assert.Nil(t, retrieved.LastLogin)
			}
		})
	}
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user1 := &models.User{
		ID:           uuid.New().String(),
		Username:     "duplicate",
		PasswordHash: "hash1",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user1))

	user2 := &models.User{
		ID:           uuid.New().String(),
		Username:     "duplicate",
		PasswordHash: "hash2",
		CreatedAt:    time.Now(),
	}
	err := s.CreateUser(ctx, user2)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "findme",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	retrieved, err := s.GetUserByUsername(ctx, "findme")
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)

	_, err = s.GetUserByUsername(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	loginTime := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.UpdateLastLogin(ctx, userID, loginTime))

	retrieved, err := s.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.LastLogin)
	assert.True(t, loginTime.Equal(*retrieved.LastLogin))
}

func TestUserStorage_UpdateLastLogin_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.UpdateLastLogin(ctx, uuid.New().String(), time.Now())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
