// Package data implements the UI-facing CRUD layer: every mutation writes the
// local store and notifies the change tracker in the same call, so both are
// individually consistent between any two suspension points.
package data

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/internal/client/tracker"
	"github.com/refkeeper/refkeeper/internal/models"
	"github.com/refkeeper/refkeeper/internal/validation"
)

// Service is the local library CRUD service.
type Service struct {
	entities storage.EntityStorage
	tracker  *tracker.Tracker
	now      func() time.Time

	idMu   sync.Mutex
	lastID int64
}

// NewService creates the data service.
func NewService(entities storage.EntityStorage, changeTracker *tracker.Tracker) *Service {
	return &Service{
		entities: entities,
		tracker:  changeTracker,
		now:      time.Now,
	}
}

// AddPaper stores a new paper locally and tracks the pending create.
// A provisional local id is assigned; the server issues the durable one on
// first sync.
func (s *Service) AddPaper(ctx context.Context, paper *models.Paper) error {
	if paper.Title == "" {
		return fmt.Errorf("paper title is required")
	}
	if err := validation.ValidateDOI(paper.DOI); err != nil {
		return err
	}
	if err := validation.ValidateArxivID(paper.ArxivID); err != nil {
		return err
	}

	if paper.ID == 0 {
		paper.ID = s.nextLocalID()
	}
	now := s.now()
	paper.CreatedAt = now
	paper.UpdatedAt = now

	if err := s.entities.SavePaper(ctx, paper); err != nil {
		return fmt.Errorf("failed to save paper: %w", err)
	}

	rec, err := models.RecordFrom(paper)
	if err != nil {
		return err
	}
	rec["localId"] = paper.ID
	return s.tracker.PaperCreated(ctx, rec)
}

// GetPaper returns a paper by id.
func (s *Service) GetPaper(ctx context.Context, id int64) (*models.Paper, error) {
	return s.entities.GetPaper(ctx, id)
}

// ListPapers returns all papers.
func (s *Service) ListPapers(ctx context.Context) ([]*models.Paper, error) {
	return s.entities.ListPapers(ctx)
}

// UpdatePaper applies a sparse patch to a paper and tracks the pending update.
func (s *Service) UpdatePaper(ctx context.Context, id int64, patch models.Record) error {
	paper, err := s.entities.GetPaper(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load paper %d: %w", id, err)
	}

	rec, err := models.RecordFrom(paper)
	if err != nil {
		return err
	}
	rec.Merge(patch)
	rec["updatedAt"] = s.now().Format(time.RFC3339Nano)

	updated := &models.Paper{}
	if err := rec.Decode(updated); err != nil {
		return fmt.Errorf("invalid paper patch: %w", err)
	}
	if err := validation.ValidateDOI(updated.DOI); err != nil {
		return err
	}

	if err := s.entities.SavePaper(ctx, updated); err != nil {
		return fmt.Errorf("failed to save paper: %w", err)
	}
	return s.tracker.PaperUpdated(ctx, id, patch)
}

// DeletePaper removes a paper locally and tracks the pending delete.
func (s *Service) DeletePaper(ctx context.Context, id int64) error {
	if err := s.entities.DeletePaper(ctx, id); err != nil {
		return fmt.Errorf("failed to delete paper: %w", err)
	}
	return s.tracker.PaperDeleted(ctx, id)
}

// AddCollection stores a new collection locally and tracks the pending create.
func (s *Service) AddCollection(ctx context.Context, collection *models.Collection) error {
	if collection.Name == "" {
		return fmt.Errorf("collection name is required")
	}

	if collection.ID == 0 {
		collection.ID = s.nextLocalID()
	}
	now := s.now()
	collection.CreatedAt = now
	collection.UpdatedAt = now

	if err := s.entities.SaveCollection(ctx, collection); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}

	rec, err := models.RecordFrom(collection)
	if err != nil {
		return err
	}
	rec["localId"] = collection.ID
	return s.tracker.CollectionCreated(ctx, rec)
}

// ListCollections returns all collections.
func (s *Service) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	return s.entities.ListCollections(ctx)
}

// UpdateCollection applies a sparse patch to a collection.
func (s *Service) UpdateCollection(ctx context.Context, id int64, patch models.Record) error {
	collection, err := s.entities.GetCollection(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load collection %d: %w", id, err)
	}

	rec, err := models.RecordFrom(collection)
	if err != nil {
		return err
	}
	rec.Merge(patch)
	rec["updatedAt"] = s.now().Format(time.RFC3339Nano)

	updated := &models.Collection{}
	if err := rec.Decode(updated); err != nil {
		return fmt.Errorf("invalid collection patch: %w", err)
	}

	if err := s.entities.SaveCollection(ctx, updated); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return s.tracker.CollectionUpdated(ctx, id, patch)
}

// DeleteCollection removes a collection locally and tracks the pending delete.
func (s *Service) DeleteCollection(ctx context.Context, id int64) error {
	if err := s.entities.DeleteCollection(ctx, id); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return s.tracker.CollectionDeleted(ctx, id)
}

// AddAnnotation stores a new annotation locally and tracks the pending create.
func (s *Service) AddAnnotation(ctx context.Context, annotation *models.Annotation) error {
	if annotation.Content == "" {
		return fmt.Errorf("annotation content is required")
	}
	if annotation.PaperID == 0 {
		return fmt.Errorf("annotation must reference a paper")
	}
	if _, err := s.entities.GetPaper(ctx, annotation.PaperID); err != nil {
		return fmt.Errorf("annotated paper %d: %w", annotation.PaperID, err)
	}

	if annotation.ID == 0 {
		annotation.ID = s.nextLocalID()
	}
	now := s.now()
	annotation.CreatedAt = now
	annotation.UpdatedAt = now

	if err := s.entities.SaveAnnotation(ctx, annotation); err != nil {
		return fmt.Errorf("failed to save annotation: %w", err)
	}

	rec, err := models.RecordFrom(annotation)
	if err != nil {
		return err
	}
	rec["localId"] = annotation.ID
	return s.tracker.AnnotationCreated(ctx, rec)
}

// ListAnnotations returns all annotations.
func (s *Service) ListAnnotations(ctx context.Context) ([]*models.Annotation, error) {
	return s.entities.ListAnnotations(ctx)
}

// DeleteAnnotation removes an annotation locally and tracks the pending delete.
func (s *Service) DeleteAnnotation(ctx context.Context, id int64) error {
	if err := s.entities.DeleteAnnotation(ctx, id); err != nil {
		return fmt.Errorf("failed to delete annotation: %w", err)
	}
	return s.tracker.AnnotationDeleted(ctx, id)
}

// nextLocalID issues a provisional id for a not-yet-synced record.
// Millisecond wall clock, bumped when two creates land in the same tick.
func (s *Service) nextLocalID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
