package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refkeeper/refkeeper/internal/models"
)

func TestStorage_PendingChanges(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Nothing tracked yet: an empty, usable set
	pending, err := store.GetPendingChanges(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.False(t, pending.HasChanges())

	pending.Papers.Created = []models.Record{{"localId": float64(100), "title": "draft"}}
	pending.Annotations.Deleted = []int64{7}
	require.NoError(t, store.SavePendingChanges(ctx, pending))

	got, err := store.GetPendingChanges(ctx)
	require.NoError(t, err)
	require.Len(t, got.Papers.Created, 1)
	assert.Equal(t, "draft", got.Papers.Created[0]["title"])
	assert.EqualValues(t, 100, got.Papers.Created[0].LocalID())
	assert.Equal(t, []int64{7}, got.Annotations.Deleted)

	require.NoError(t, store.ClearPendingChanges(ctx))
	got, err = store.GetPendingChanges(ctx)
	require.NoError(t, err)
	assert.False(t, got.HasChanges())

	// Clearing twice is fine
	assert.NoError(t, store.ClearPendingChanges(ctx))
}

func TestStorage_Checkpoint(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	checkpoint, err := store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Empty(t, checkpoint, "never-synced client has no checkpoint")

	require.NoError(t, store.SaveCheckpoint(ctx, "cp-2026-01-15T10:00:00Z"))

	checkpoint, err = store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cp-2026-01-15T10:00:00Z", checkpoint)

	// Later checkpoint replaces
	require.NoError(t, store.SaveCheckpoint(ctx, "cp-2026-01-16T09:30:00Z"))
	checkpoint, err = store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cp-2026-01-16T09:30:00Z", checkpoint)
}

func TestStorage_ClientID(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	clientID, err := store.GetClientID(ctx)
	require.NoError(t, err)
	assert.Empty(t, clientID)

	require.NoError(t, store.SaveClientID(ctx, "3f1a7c2e-0b4d-4e8f-9a6b-1c2d3e4f5a6b"))

	clientID, err = store.GetClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3f1a7c2e-0b4d-4e8f-9a6b-1c2d3e4f5a6b", clientID)
}

func TestStorage_SyncLock(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	lock, err := store.GetSyncLock(ctx)
	require.NoError(t, err)
	assert.Nil(t, lock, "unheld lock reads back as nil")

	started := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveSyncLock(ctx, &models.SyncLock{StartedAt: started}))

	lock, err = store.GetSyncLock(ctx)
	require.NoError(t, err)
	require.NotNil(t, lock)
	assert.True(t, lock.StartedAt.Equal(started))

	require.NoError(t, store.ClearSyncLock(ctx))
	lock, err = store.GetSyncLock(ctx)
	require.NoError(t, err)
	assert.Nil(t, lock)

	// Releasing an unheld lock is fine
	assert.NoError(t, store.ClearSyncLock(ctx))
}

func TestStorage_StatePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "restart.db")

	// Reopening the same file simulates a client restart
	store1, err := New(ctx, dbPath)
	require.NoError(t, err)

	require.NoError(t, store1.SaveCheckpoint(ctx, "cp-1"))
	require.NoError(t, store1.SavePendingChanges(ctx, &models.PendingChanges{
		Papers: models.ChangeSet{Deleted: []int64{5}},
	}))
	require.NoError(t, store1.Close())

	store2, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, store2.Close()) }()

	checkpoint, err := store2.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cp-1", checkpoint)

	pending, err := store2.GetPendingChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, pending.Papers.Deleted)
}
