package storage

import (
	"context"

	"github.com/refkeeper/refkeeper/internal/models"
)

//go:generate go tool moq -out syncstate_mock.go . SyncStateStorage

// SyncStateStorage is the small durable key-value area holding everything the
// sync engine needs outside the main record store: the pending-change set,
// the last server checkpoint, the client identity, and the sync lock.
type SyncStateStorage interface {
	// GetPendingChanges returns the persisted change-tracker state.
	// Returns an empty (zero-value) set when nothing has been tracked yet.
	GetPendingChanges(ctx context.Context) (*models.PendingChanges, error)

	// SavePendingChanges persists the full change-tracker state
	SavePendingChanges(ctx context.Context, pending *models.PendingChanges) error

	// ClearPendingChanges drops all tracked changes
	ClearPendingChanges(ctx context.Context) error

	// GetCheckpoint returns the last server-issued sync checkpoint.
	// Empty string means a full sync has never completed.
	GetCheckpoint(ctx context.Context) (string, error)

	// SaveCheckpoint persists a new server-issued checkpoint
	SaveCheckpoint(ctx context.Context, checkpoint string) error

	// GetClientID returns the durable installation identity, empty if unset
	GetClientID(ctx context.Context) (string, error)

	// SaveClientID persists the installation identity
	SaveClientID(ctx context.Context, clientID string) error

	// GetSyncLock returns the current sync lock, nil when not held
	GetSyncLock(ctx context.Context) (*models.SyncLock, error)

	// SaveSyncLock persists the sync lock
	SaveSyncLock(ctx context.Context, lock *models.SyncLock) error

	// ClearSyncLock releases the sync lock; releasing an unheld lock is fine
	ClearSyncLock(ctx context.Context) error
}
