package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/internal/models"
)

const (
	keyPendingChanges = "pending_changes"
	keyCheckpoint     = "last_checkpoint"
	keyClientID       = "client_id"
	keySyncLock       = "sync_lock"
)

// Compile-time check that Storage implements SyncStateStorage
var _ storage.SyncStateStorage = (*Storage)(nil)

// GetPendingChanges returns the persisted change-tracker state, or an empty
// set when nothing has been tracked yet.
func (s *Storage) GetPendingChanges(ctx context.Context) (*models.PendingChanges, error) {
	pending := &models.PendingChanges{}

	err := s.getStateValue(keyPendingChanges, func(data []byte) error {
		if err := json.Unmarshal(data, pending); err != nil {
			return fmt.Errorf("failed to unmarshal pending changes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pending, nil
}

// SavePendingChanges persists the full change-tracker state
func (s *Storage) SavePendingChanges(ctx context.Context, pending *models.PendingChanges) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending changes: %w", err)
	}
	return s.putStateValue(keyPendingChanges, data)
}

// ClearPendingChanges drops all tracked changes
func (s *Storage) ClearPendingChanges(ctx context.Context) error {
	return s.deleteStateValue(keyPendingChanges)
}

// GetCheckpoint returns the last server-issued checkpoint, "" if never synced
func (s *Storage) GetCheckpoint(ctx context.Context) (string, error) {
	var checkpoint string
	err := s.getStateValue(keyCheckpoint, func(data []byte) error {
		checkpoint = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return checkpoint, nil
}

// SaveCheckpoint persists a new server-issued checkpoint
func (s *Storage) SaveCheckpoint(ctx context.Context, checkpoint string) error {
	return s.putStateValue(keyCheckpoint, []byte(checkpoint))
}

// GetClientID returns the durable installation identity, "" if unset
func (s *Storage) GetClientID(ctx context.Context) (string, error) {
	var clientID string
	err := s.getStateValue(keyClientID, func(data []byte) error {
		clientID = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return clientID, nil
}

// SaveClientID persists the installation identity
func (s *Storage) SaveClientID(ctx context.Context, clientID string) error {
	return s.putStateValue(keyClientID, []byte(clientID))
}

// GetSyncLock returns the current sync lock, nil when not held
func (s *Storage) GetSyncLock(ctx context.Context) (*models.SyncLock, error) {
	var lock *models.SyncLock
	err := s.getStateValue(keySyncLock, func(data []byte) error {
		lock = &models.SyncLock{}
		if err := json.Unmarshal(data, lock); err != nil {
			return fmt.Errorf("failed to unmarshal sync lock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lock, nil
}

// SaveSyncLock persists the sync lock
func (s *Storage) SaveSyncLock(ctx context.Context, lock *models.SyncLock) error {
	data, err := json.Marshal(lock)
	if err != nil {
		return fmt.Errorf("failed to marshal sync lock: %w", err)
	}
	return s.putStateValue(keySyncLock, data)
}

// ClearSyncLock releases the sync lock
func (s *Storage) ClearSyncLock(ctx context.Context) error {
	return s.deleteStateValue(keySyncLock)
}

// getStateValue reads one sync-state key; absent keys leave fn uncalled
func (s *Storage) getStateValue(key string, fn func(data []byte) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}
		return fn(data)
	})
}

func (s *Storage) putStateValue(key string, data []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}
		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		return nil
	})
}

func (s *Storage) deleteStateValue(key string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}
		return bucket.Delete([]byte(key))
	})
}
