package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/internal/models"
)

// memoryState is an in-memory SyncStateStorage covering just the
// pending-change methods the tracker uses.
func memoryState(t *testing.T) (*storage.SyncStateStorageMock, *models.PendingChanges) {
	t.Helper()

	pending := &models.PendingChanges{}
	mock := &storage.SyncStateStorageMock{
		GetPendingChangesFunc: func(ctx context.Context) (*models.PendingChanges, error) {
			return pending, nil
		},
		SavePendingChangesFunc: func(ctx context.Context, p *models.PendingChanges) error {
			pending = p
			return nil
		},
		ClearPendingChangesFunc: func(ctx context.Context) error {
			pending = &models.PendingChanges{}
			return nil
		},
	}
	return mock, pending
}

func newTracker(t *testing.T) (*Tracker, *storage.SyncStateStorageMock) {
	t.Helper()
	mock, _ := memoryState(t)
	return New(mock, slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

func pendingOf(t *testing.T, tr *Tracker) *models.PendingChanges {
	t.Helper()
	pending, err := tr.Pending(context.Background())
	require.NoError(t, err)
	return pending
}

func TestTracker_Created(t *testing.T) {
	tr, _ := newTracker(t)
	ctx := context.Background()

	rec := models.Record{"localId": int64(100), "title": "first"}
	require.NoError(t, tr.PaperCreated(ctx, rec))

	pending := pendingOf(t, tr)
	require.Len(t, pending.Papers.Created, 1)
	assert.Equal(t, "first", pending.Papers.Created[0]["title"])

	// The tracker stores a clone: later caller mutations must not leak in.
	rec["title"] = "mutated"
	assert.Equal(t, "first", pendingOf(t, tr).Papers.Created[0]["title"])
}

func TestTracker_UpdateMergesIntoPendingCreate(t *testing.T) {
	tr, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.PaperCreated(ctx, models.Record{"localId": int64(100), "title": "draft"}))
	require.NoError(t, tr.PaperUpdated(ctx, 100, models.Record{"title": "final", "year": 2026}))

	pending := pendingOf(t, tr)
	require.Len(t, pending.Papers.Created, 1)
	assert.Empty(t, pending.Papers.Updated, "update of an unsynced create must stay a create")
	assert.Equal(t, "final", pending.Papers.Created[0]["title"])
	assert.Equal(t, 2026, pending.Papers.Created[0]["year"])
}

func TestTracker_UpdatesConsolidatePerID(t *testing.T) {
	tr, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.PaperUpdated(ctx, 5, models.Record{"title": "a", "notes": "keep"}))
	require.NoError(t, tr.PaperUpdated(ctx, 5, models.Record{"title": "b"}))
	require.NoError(t, tr.PaperUpdated(ctx, 6, models.Record{"title": "other"}))

	pending := pendingOf(t, tr)
	require.Len(t, pending.Papers.Updated, 2)

	var five models.Record
	for _, upd := range pending.Papers.Updated {
		if upd.ID() == 5 {
			five = upd
		}
	}
	require.NotNil(t, five)
	assert.Equal(t, "b", five["title"], "later patch wins per field")
	assert.Equal(t, "keep", five["notes"], "untouched fields survive consolidation")
}

func TestTracker_CreateThenDeleteVanishes(t *testing.T) {
	tr, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.PaperCreated(ctx, models.Record{"localId": int64(100), "title": "ephemeral"}))
	require.NoError(t, tr.PaperUpdated(ctx, 100, models.Record{"title": "still ephemeral"}))
	require.NoError(t, tr.PaperDeleted(ctx, 100))

	pending := pendingOf(t, tr)
	assert.True(t, pending.Papers.IsEmpty(), "never-synced record must leave no trace")
}

func TestTracker_DeleteSupersedesUpdate(t *testing.T) {
	tr, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.PaperUpdated(ctx, 7, models.Record{"title": "doomed"}))
	require.NoError(t, tr.PaperDeleted(ctx, 7))
	require.NoError(t, tr.PaperDeleted(ctx, 7)) // idempotent

	pending := pendingOf(t, tr)
	assert.Empty(t, pending.Papers.Updated)
	assert.Equal(t, []int64{7}, pending.Papers.Deleted)
}

func TestTracker_IDAppearsInAtMostOneList(t *testing.T) {
	tr, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.CollectionCreated(ctx, models.Record{"localId": int64(200), "name": "reading list"}))
	require.NoError(t, tr.CollectionUpdated(ctx, 10, models.Record{"name": "renamed"}))
	require.NoError(t, tr.CollectionDeleted(ctx, 11))
	require.NoError(t, tr.CollectionDeleted(ctx, 10))
	// A patch after a delete is dropped: the record is already gone
	require.NoError(t, tr.CollectionUpdated(ctx, 11, models.Record{"name": "zombie"}))

	set := pendingOf(t, tr).Collections
	assert.Empty(t, set.Updated)
	seen := map[int64]int{}
	for _, rec := range set.Created {
		seen[rec.LocalID()]++
	}
	for _, rec := range set.Updated {
		seen[rec.ID()]++
	}
	for _, id := range set.Deleted {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equalf(t, 1, n, "id %d tracked in %d lists", id, n)
	}
}

func TestTracker_TypesAreIndependent(t *testing.T) {
	tr, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.PaperDeleted(ctx, 1))
	require.NoError(t, tr.AnnotationDeleted(ctx, 1))

	pending := pendingOf(t, tr)
	assert.Equal(t, []int64{1}, pending.Papers.Deleted)
	assert.Equal(t, []int64{1}, pending.Annotations.Deleted)
	assert.Empty(t, pending.Collections.Deleted)
}

func TestTracker_Clear(t *testing.T) {
	tr, mock := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.PaperCreated(ctx, models.Record{"localId": int64(100)}))
	require.NoError(t, tr.Clear(ctx))

	assert.False(t, pendingOf(t, tr).HasChanges())
	assert.Len(t, mock.ClearPendingChangesCalls(), 1)
}

func TestTracker_StorageErrorPropagates(t *testing.T) {
	wantErr := errors.New("disk full")
	mock := &storage.SyncStateStorageMock{
		GetPendingChangesFunc: func(ctx context.Context) (*models.PendingChanges, error) {
			return nil, wantErr
		},
	}
	tr := New(mock, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := tr.PaperDeleted(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
