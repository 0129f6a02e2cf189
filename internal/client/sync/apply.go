package sync

import (
	"context"
	"errors"

	"github.com/refkeeper/refkeeper/internal/client/adapter"
	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/internal/models"
	"github.com/refkeeper/refkeeper/pkg/api"
)

// applyReport aggregates the outcome of one apply pass. Individual record
// failures are collected rather than aborting the round: a single bad record
// must not block the checkpoint from advancing.
type applyReport struct {
	pulled       int
	deduplicated int
	deleted      int
	skipped      int
}

// applyServerChanges writes the server's change records into the local store,
// collapsing duplicate papers, then replays the server's deletions.
// Best-effort per record; failures are logged and counted.
func (s *Service) applyServerChanges(ctx context.Context, changes *api.ServerChanges) applyReport {
	report := applyReport{}

	for _, rec := range changes.Papers {
		report.pulled++
		deduped, err := s.applyServerPaper(ctx, rec)
		if err != nil {
			s.logger.Warn("Failed to apply server paper", "error", err)
			report.skipped++
			continue
		}
		if deduped {
			report.deduplicated++
		}
	}

	for _, rec := range changes.Collections {
		report.pulled++
		collection, err := adapter.CollectionFromWire(rec)
		if err == nil {
			err = s.entities.SaveCollection(ctx, collection)
		}
		if err != nil {
			s.logger.Warn("Failed to apply server collection", "error", err)
			report.skipped++
		}
	}

	for _, rec := range changes.Annotations {
		report.pulled++
		annotation, err := adapter.AnnotationFromWire(rec)
		if err == nil {
			err = s.entities.SaveAnnotation(ctx, annotation)
		}
		if err != nil {
			s.logger.Warn("Failed to apply server annotation", "error", err)
			report.skipped++
		}
	}

	report.deleted += s.applyDeletions(ctx, changes.Deleted)

	return report
}

// applyServerPaper inserts one incoming paper, first collapsing any local
// copy of the same publication that was created independently before either
// side had synced. The server-assigned id wins; the local orphan's id is
// deleted before the put so no reader ever sees both.
func (s *Service) applyServerPaper(ctx context.Context, rec api.Record) (deduped bool, err error) {
	paper, err := adapter.PaperFromWire(rec)
	if err != nil {
		return false, err
	}

	key := paper.NaturalKey()
	if !key.IsZero() {
		local, err := s.entities.FindPaperByNaturalKey(ctx, key)
		switch {
		case err == nil && local.ID != paper.ID:
			s.logger.Debug("Collapsing duplicate paper",
				"local_id", local.ID,
				"server_id", paper.ID,
				"key_kind", key.Kind,
				"key", key.Value)
			if err := s.entities.DeletePaper(ctx, local.ID); err != nil {
				return false, err
			}
			deduped = true
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			return false, err
		}
	}

	if err := s.entities.SavePaper(ctx, paper); err != nil {
		return deduped, err
	}
	return deduped, nil
}

// applyDeletions replays the server's deleted-id lists. Deleting an id the
// store never had is fine. Returns the count of attempted deletions that
// succeeded.
func (s *Service) applyDeletions(ctx context.Context, deleted api.DeletedIDs) int {
	applied := 0

	del := func(entityType models.EntityType, id int64, fn func(context.Context, int64) error) {
		if err := fn(ctx, id); err != nil {
			s.logger.Warn("Failed to apply server deletion",
				"entity_type", entityType,
				"id", id,
				"error", err)
			return
		}
		applied++
	}

	for _, id := range deleted.Papers {
		del(models.EntityPapers, id, s.entities.DeletePaper)
	}
	for _, id := range deleted.Collections {
		del(models.EntityCollections, id, s.entities.DeleteCollection)
	}
	for _, id := range deleted.Annotations {
		del(models.EntityAnnotations, id, s.entities.DeleteAnnotation)
	}

	return applied
}
