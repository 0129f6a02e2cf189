package storage

import (
	"context"

	"github.com/refkeeper/refkeeper/internal/models"
)

//go:generate go tool moq -out entities_mock.go . EntityStorage

// EntityStorage is the local keyed store for the three synchronized
// collections. Both the UI layer (directly) and the sync orchestrator
// (during sync) mutate it; every method is individually consistent.
type EntityStorage interface {
	// SavePaper inserts or replaces a paper by id
	SavePaper(ctx context.Context, paper *models.Paper) error

	// GetPaper retrieves a paper by id
	// Returns ErrNotFound if the paper doesn't exist
	GetPaper(ctx context.Context, id int64) (*models.Paper, error)

	// ListPapers returns all papers
	ListPapers(ctx context.Context) ([]*models.Paper, error)

	// FindPaperByNaturalKey returns the paper whose natural key (DOI or
	// arXiv id) matches. Returns ErrNotFound when no paper matches.
	FindPaperByNaturalKey(ctx context.Context, key models.NaturalKey) (*models.Paper, error)

	// DeletePaper removes a paper by id; deleting a missing id is not an error
	DeletePaper(ctx context.Context, id int64) error

	// SaveCollection inserts or replaces a collection by id
	SaveCollection(ctx context.Context, collection *models.Collection) error

	// GetCollection retrieves a collection by id
	// Returns ErrNotFound if the collection doesn't exist
	GetCollection(ctx context.Context, id int64) (*models.Collection, error)

	// ListCollections returns all collections
	ListCollections(ctx context.Context) ([]*models.Collection, error)

	// DeleteCollection removes a collection by id; missing ids are not an error
	DeleteCollection(ctx context.Context, id int64) error

	// SaveAnnotation inserts or replaces an annotation by id
	SaveAnnotation(ctx context.Context, annotation *models.Annotation) error

	// GetAnnotation retrieves an annotation by id
	// Returns ErrNotFound if the annotation doesn't exist
	GetAnnotation(ctx context.Context, id int64) (*models.Annotation, error)

	// ListAnnotations returns all annotations
	ListAnnotations(ctx context.Context) ([]*models.Annotation, error)

	// DeleteAnnotation removes an annotation by id; missing ids are not an error
	DeleteAnnotation(ctx context.Context, id int64) error

	// ReplaceAll clears all three collections and repopulates them with the
	// given records in one atomic transaction. Used by full sync so a
	// concurrent read never observes a cleared-but-not-repopulated store.
	ReplaceAll(ctx context.Context, papers []*models.Paper, collections []*models.Collection, annotations []*models.Annotation) error

	// CountEntities returns record counts per collection
	CountEntities(ctx context.Context) (papers, collections, annotations int, err error)
}
