// Package adapter maps records between the local shape (camelCase JSON, as
// stored and tracked on this client) and the remote wire shape (snake_case,
// with a few renames and local-only fields).
package adapter

import (
	"fmt"

	"github.com/refkeeper/refkeeper/internal/models"
	"github.com/refkeeper/refkeeper/pkg/api"
)

// Per-type local-to-wire field name tables. Fields absent from a table are
// local-only (e.g. filePath) and never leave this machine; unknown wire
// fields are dropped on the way in.
var paperFields = map[string]string{
	"id":        "id",
	"localId":   "local_id",
	"title":     "title",
	"authors":   "authors",
	"year":      "year",
	"journal":   "journal",
	"doi":       "doi",
	"arxivId":   "arxiv_id",
	"abstract":  "abstract",
	"rating":    "stars",
	"notes":     "notes",
	"tags":      "tags",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

var collectionFields = map[string]string{
	"id":          "id",
	"localId":     "local_id",
	"name":        "name",
	"description": "description",
	"paperIds":    "paper_ids",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

var annotationFields = map[string]string{
	"id":        "id",
	"localId":   "local_id",
	"paperId":   "paper_id",
	"page":      "page",
	"content":   "content",
	"color":     "color",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

var wireFields = map[models.EntityType]map[string]string{
	models.EntityPapers:      paperFields,
	models.EntityCollections: collectionFields,
	models.EntityAnnotations: annotationFields,
}

// localFields holds the inverse tables, built once at init.
var localFields = func() map[models.EntityType]map[string]string {
	inverse := make(map[models.EntityType]map[string]string, len(wireFields))
	for entityType, fields := range wireFields {
		table := make(map[string]string, len(fields))
		for local, wire := range fields {
			table[wire] = local
		}
		inverse[entityType] = table
	}
	return inverse
}()

// ToWire converts a local record (full entity or sparse patch) into the wire
// shape. Local-only fields are dropped.
func ToWire(entityType models.EntityType, rec models.Record) api.Record {
	return rename(map[string]string(wireFields[entityType]), map[string]any(rec))
}

// FromWire converts a wire record into the local shape. Fields this client
// does not know are dropped.
func FromWire(entityType models.EntityType, rec api.Record) models.Record {
	return rename(localFields[entityType], rec)
}

// PaperFromWire converts a wire record into a typed local paper.
func PaperFromWire(rec api.Record) (*models.Paper, error) {
	paper := &models.Paper{}
	if err := FromWire(models.EntityPapers, rec).Decode(paper); err != nil {
		return nil, fmt.Errorf("failed to decode paper: %w", err)
	}
	return paper, nil
}

// CollectionFromWire converts a wire record into a typed local collection.
func CollectionFromWire(rec api.Record) (*models.Collection, error) {
	collection := &models.Collection{}
	if err := FromWire(models.EntityCollections, rec).Decode(collection); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}
	return collection, nil
}

// AnnotationFromWire converts a wire record into a typed local annotation.
func AnnotationFromWire(rec api.Record) (*models.Annotation, error) {
	annotation := &models.Annotation{}
	if err := FromWire(models.EntityAnnotations, rec).Decode(annotation); err != nil {
		return nil, fmt.Errorf("failed to decode annotation: %w", err)
	}
	return annotation, nil
}

// ChangeSetToWire converts one entity type's pending changes for an exchange
// request. Deleted ids pass through untranslated.
func ChangeSetToWire(entityType models.EntityType, set *models.ChangeSet) api.ChangeSet {
	wire := api.ChangeSet{
		Created: make([]api.Record, 0, len(set.Created)),
		Updated: make([]api.Record, 0, len(set.Updated)),
		Deleted: append([]int64(nil), set.Deleted...),
	}
	for _, rec := range set.Created {
		wire.Created = append(wire.Created, ToWire(entityType, rec))
	}
	for _, rec := range set.Updated {
		wire.Updated = append(wire.Updated, ToWire(entityType, rec))
	}
	return wire
}

// PendingToWire converts the whole pending set for an exchange request.
func PendingToWire(pending *models.PendingChanges) api.Changes {
	return api.Changes{
		Papers:      ChangeSetToWire(models.EntityPapers, &pending.Papers),
		Collections: ChangeSetToWire(models.EntityCollections, &pending.Collections),
		Annotations: ChangeSetToWire(models.EntityAnnotations, &pending.Annotations),
	}
}

func rename(table map[string]string, rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for field, value := range rec {
		if mapped, ok := table[field]; ok {
			out[mapped] = value
		}
	}
	return out
}
