// Package tracker records local create/update/delete operations made between
// sync rounds so the orchestrator can replay them against the server.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/internal/models"
)

// Tracker accumulates pending local changes per entity type. Every call
// persists the full set, so tracked state survives restarts and stays
// consistent between any two suspension points of an in-flight sync.
//
// Invariant: a given id appears in at most one of created/updated/deleted
// per entity type.
type Tracker struct {
	state  storage.SyncStateStorage
	logger *slog.Logger
	mu     sync.Mutex
}

// New creates a change tracker backed by the given sync-state storage.
func New(state storage.SyncStateStorage, logger *slog.Logger) *Tracker {
	return &Tracker{
		state:  state,
		logger: logger,
	}
}

// PaperCreated records a locally created paper awaiting first upload.
func (t *Tracker) PaperCreated(ctx context.Context, rec models.Record) error {
	return t.trackCreated(ctx, models.EntityPapers, rec)
}

// PaperUpdated records a patch against paper id.
func (t *Tracker) PaperUpdated(ctx context.Context, id int64, patch models.Record) error {
	return t.trackUpdated(ctx, models.EntityPapers, id, patch)
}

// PaperDeleted records a paper deletion.
func (t *Tracker) PaperDeleted(ctx context.Context, id int64) error {
	return t.trackDeleted(ctx, models.EntityPapers, id)
}

// CollectionCreated records a locally created collection awaiting first upload.
func (t *Tracker) CollectionCreated(ctx context.Context, rec models.Record) error {
	return t.trackCreated(ctx, models.EntityCollections, rec)
}

// CollectionUpdated records a patch against collection id.
func (t *Tracker) CollectionUpdated(ctx context.Context, id int64, patch models.Record) error {
	return t.trackUpdated(ctx, models.EntityCollections, id, patch)
}

// CollectionDeleted records a collection deletion.
func (t *Tracker) CollectionDeleted(ctx context.Context, id int64) error {
	return t.trackDeleted(ctx, models.EntityCollections, id)
}

// AnnotationCreated records a locally created annotation awaiting first upload.
func (t *Tracker) AnnotationCreated(ctx context.Context, rec models.Record) error {
	return t.trackCreated(ctx, models.EntityAnnotations, rec)
}

// AnnotationUpdated records a patch against annotation id.
func (t *Tracker) AnnotationUpdated(ctx context.Context, id int64, patch models.Record) error {
	return t.trackUpdated(ctx, models.EntityAnnotations, id, patch)
}

// AnnotationDeleted records an annotation deletion.
func (t *Tracker) AnnotationDeleted(ctx context.Context, id int64) error {
	return t.trackDeleted(ctx, models.EntityAnnotations, id)
}

// Pending returns the accumulated change set.
func (t *Tracker) Pending(ctx context.Context) (*models.PendingChanges, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.GetPendingChanges(ctx)
}

// Clear drops all tracked changes. Called by the orchestrator only after a
// sync round fully succeeded.
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.ClearPendingChanges(ctx)
}

// trackCreated appends the full record to the type's created list.
func (t *Tracker) trackCreated(ctx context.Context, entityType models.EntityType, rec models.Record) error {
	return t.mutate(ctx, entityType, func(set *models.ChangeSet) {
		set.Created = append(set.Created, rec.Clone())
	})
}

// trackUpdated merges the patch into a still-pending create for the same id,
// or consolidates it into the existing updated entry. A record with no
// durable server id yet has no meaningful "update": it is still a create.
// A patch against an already-deleted id is dropped: deletion wins, matching
// how the server treats an update racing a delete.
func (t *Tracker) trackUpdated(ctx context.Context, entityType models.EntityType, id int64, patch models.Record) error {
	return t.mutate(ctx, entityType, func(set *models.ChangeSet) {
		for _, deleted := range set.Deleted {
			if deleted == id {
				return
			}
		}
		for _, created := range set.Created {
			if created.ID() == id || created.LocalID() == id {
				created.Merge(patch)
				return
			}
		}
		for _, updated := range set.Updated {
			if updated.ID() == id {
				updated.Merge(patch)
				return
			}
		}
		entry := patch.Clone()
		entry["id"] = id
		set.Updated = append(set.Updated, entry)
	})
}

// trackDeleted removes the id from created and updated, then records the
// delete. A record that was created and deleted without ever syncing vanishes
// entirely: the server never knew it existed.
func (t *Tracker) trackDeleted(ctx context.Context, entityType models.EntityType, id int64) error {
	return t.mutate(ctx, entityType, func(set *models.ChangeSet) {
		for i, created := range set.Created {
			if created.ID() == id || created.LocalID() == id {
				set.Created = append(set.Created[:i], set.Created[i+1:]...)
				return
			}
		}
		for i, updated := range set.Updated {
			if updated.ID() == id {
				set.Updated = append(set.Updated[:i], set.Updated[i+1:]...)
				break
			}
		}
		for _, deleted := range set.Deleted {
			if deleted == id {
				return
			}
		}
		set.Deleted = append(set.Deleted, id)
	})
}

// mutate applies fn to the type's change set under the tracker lock and
// persists the result.
func (t *Tracker) mutate(ctx context.Context, entityType models.EntityType, fn func(set *models.ChangeSet)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	pending, err := t.state.GetPendingChanges(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pending changes: %w", err)
	}

	fn(pending.Set(entityType))

	if err := t.state.SavePendingChanges(ctx, pending); err != nil {
		return fmt.Errorf("failed to save pending changes: %w", err)
	}

	t.logger.Debug("Tracked change",
		"entity_type", entityType,
		"pending_total", pending.Counts().Total())

	return nil
}
