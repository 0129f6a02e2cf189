package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketPapers      = []byte("papers")
	bucketCollections = []byte("collections")
	bucketAnnotations = []byte("annotations")
	bucketSyncState   = []byte("syncstate")
	bucketSession     = []byte("session")
)

// Storage is the BoltDB-backed implementation of the client storage
// interfaces: EntityStorage, SyncStateStorage and SessionStorage.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the client database at dbPath and prepares all
// buckets.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates all buckets if they don't exist yet
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{
			bucketPapers,
			bucketCollections,
			bucketAnnotations,
			bucketSyncState,
			bucketSession,
		}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// itob encodes an entity id as a sortable big-endian bucket key
func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
