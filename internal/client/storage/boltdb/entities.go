package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/internal/models"
)

// Compile-time check that Storage implements EntityStorage
var _ storage.EntityStorage = (*Storage)(nil)

// SavePaper inserts or replaces a paper by id
func (s *Storage) SavePaper(ctx context.Context, paper *models.Paper) error {
	return s.putRecord(bucketPapers, paper.ID, paper)
}

// GetPaper retrieves a paper by id
func (s *Storage) GetPaper(ctx context.Context, id int64) (*models.Paper, error) {
	paper := &models.Paper{}
	if err := s.getRecord(bucketPapers, id, paper); err != nil {
		return nil, err
	}
	return paper, nil
}

// ListPapers returns all papers
func (s *Storage) ListPapers(ctx context.Context) ([]*models.Paper, error) {
	var papers []*models.Paper
	err := s.forEachRecord(bucketPapers, func(v []byte) error {
		var paper models.Paper
		if err := json.Unmarshal(v, &paper); err != nil {
			return fmt.Errorf("failed to unmarshal paper: %w", err)
		}
		papers = append(papers, &paper)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return papers, nil
}

// FindPaperByNaturalKey scans papers for one whose natural key matches.
// Returns ErrNotFound when no paper matches or the key is empty.
func (s *Storage) FindPaperByNaturalKey(ctx context.Context, key models.NaturalKey) (*models.Paper, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	if key.IsZero() {
		return nil, storage.ErrNotFound
	}

	var found *models.Paper

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPapers)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			if found != nil {
				return nil
			}
			var paper models.Paper
			if err := json.Unmarshal(v, &paper); err != nil {
				return fmt.Errorf("failed to unmarshal paper: %w", err)
			}
			if paper.NaturalKey() == key {
				found = &paper
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find paper by natural key: %w", err)
	}
	if found == nil {
		return nil, storage.ErrNotFound
	}
	return found, nil
}

// DeletePaper removes a paper by id; deleting a missing id is not an error
func (s *Storage) DeletePaper(ctx context.Context, id int64) error {
	return s.deleteRecord(bucketPapers, id)
}

// SaveCollection inserts or replaces a collection by id
func (s *Storage) SaveCollection(ctx context.Context, collection *models.Collection) error {
	return s.putRecord(bucketCollections, collection.ID, collection)
}

// GetCollection retrieves a collection by id
func (s *Storage) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	collection := &models.Collection{}
	if err := s.getRecord(bucketCollections, id, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// ListCollections returns all collections
func (s *Storage) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	var collections []*models.Collection
	err := s.forEachRecord(bucketCollections, func(v []byte) error {
		var collection models.Collection
		if err := json.Unmarshal(v, &collection); err != nil {
			return fmt.Errorf("failed to unmarshal collection: %w", err)
		}
		collections = append(collections, &collection)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// DeleteCollection removes a collection by id; missing ids are not an error
func (s *Storage) DeleteCollection(ctx context.Context, id int64) error {
	return s.deleteRecord(bucketCollections, id)
}

// SaveAnnotation inserts or replaces an annotation by id
func (s *Storage) SaveAnnotation(ctx context.Context, annotation *models.Annotation) error {
	return s.putRecord(bucketAnnotations, annotation.ID, annotation)
}

// GetAnnotation retrieves an annotation by id
func (s *Storage) GetAnnotation(ctx context.Context, id int64) (*models.Annotation, error) {
	annotation := &models.Annotation{}
	if err := s.getRecord(bucketAnnotations, id, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

// ListAnnotations returns all annotations
func (s *Storage) ListAnnotations(ctx context.Context) ([]*models.Annotation, error) {
	var annotations []*models.Annotation
	err := s.forEachRecord(bucketAnnotations, func(v []byte) error {
		var annotation models.Annotation
		if err := json.Unmarshal(v, &annotation); err != nil {
			return fmt.Errorf("failed to unmarshal annotation: %w", err)
		}
		annotations = append(annotations, &annotation)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return annotations, nil
}

// DeleteAnnotation removes an annotation by id; missing ids are not an error
func (s *Storage) DeleteAnnotation(ctx context.Context, id int64) error {
	return s.deleteRecord(bucketAnnotations, id)
}

// ReplaceAll clears all three collections and repopulates them inside a
// single bolt transaction. Either the whole replace lands or none of it does.
func (s *Storage) ReplaceAll(ctx context.Context, papers []*models.Paper, collections []*models.Collection, annotations []*models.Annotation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Clear first, repopulation is sequenced after within the same tx
		for _, name := range [][]byte{bucketPapers, bucketCollections, bucketAnnotations} {
			if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
				return fmt.Errorf("failed to clear %s bucket: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate %s bucket: %w", name, err)
			}
		}

		for _, paper := range papers {
			if err := putInTx(tx, bucketPapers, paper.ID, paper); err != nil {
				return err
			}
		}
		for _, collection := range collections {
			if err := putInTx(tx, bucketCollections, collection.ID, collection); err != nil {
				return err
			}
		}
		for _, annotation := range annotations {
			if err := putInTx(tx, bucketAnnotations, annotation.ID, annotation); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace transaction failed: %w", err)
	}
	return nil
}

// CountEntities returns record counts per collection
func (s *Storage) CountEntities(ctx context.Context) (papers, collections, annotations int, err error) {
	if s.db == nil {
		return 0, 0, 0, storage.ErrStorageClosed
	}

	err = s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketPapers); b != nil {
			papers = b.Stats().KeyN
		}
		if b := tx.Bucket(bucketCollections); b != nil {
			collections = b.Stats().KeyN
		}
		if b := tx.Bucket(bucketAnnotations); b != nil {
			annotations = b.Stats().KeyN
		}
		return nil
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return papers, collections, annotations, nil
}

// putRecord JSON-serializes a record and stores it under its id
func (s *Storage) putRecord(bucketName []byte, id int64, record any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return putInTx(tx, bucketName, id, record)
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func putInTx(tx *bbolt.Tx, bucketName []byte, id int64, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	bucket, err := tx.CreateBucketIfNotExists(bucketName)
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	if err := bucket.Put(itob(id), data); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (s *Storage) getRecord(bucketName []byte, id int64, out any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return storage.ErrNotFound
		}
		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		return nil
	})
}

func (s *Storage) deleteRecord(bucketName []byte, id int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(itob(id))
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}
	return nil
}

func (s *Storage) forEachRecord(bucketName []byte, fn func(v []byte) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			return fn(v)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to iterate %s: %w", bucketName, err)
	}
	return nil
}
