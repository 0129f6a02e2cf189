package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EntityType identifies one of the three synchronized collections.
type EntityType string

const (
	EntityPapers      EntityType = "papers"
	EntityCollections EntityType = "collections"
	EntityAnnotations EntityType = "annotations"
)

// EntityTypes lists all synchronized collections in a stable order.
var EntityTypes = []EntityType{EntityPapers, EntityCollections, EntityAnnotations}

// Paper is the local shape of a catalogued research paper.
// DOI and ArxivID together form the paper's natural key used for
// de-duplication against independently created server copies.
type Paper struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `json:"title"`
	Authors   string    `json:"authors,omitempty"`
	Journal   string    `json:"journal,omitempty"`
	DOI       string    `json:"doi,omitempty"`
	ArxivID   string    `json:"arxivId,omitempty"`
	Abstract  string    `json:"abstract,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	FilePath  string    `json:"filePath,omitempty"` // attached PDF, never leaves this machine
	Tags      []string  `json:"tags,omitempty"`
	ID        int64     `json:"id"`
	Year      int       `json:"year,omitempty"`
	Rating    int       `json:"rating,omitempty"`
}

// Collection is a named group of papers.
type Collection struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PaperIDs    []int64   `json:"paperIds,omitempty"`
	ID          int64     `json:"id"`
}

// Annotation is a note attached to a page of a paper.
type Annotation struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Content   string    `json:"content"`
	Color     string    `json:"color,omitempty"`
	ID        int64     `json:"id"`
	PaperID   int64     `json:"paperId"`
	Page      int       `json:"page,omitempty"`
}

// Record is a schemaless local record: full entities for pending creates,
// sparse {id, ...fields} patches for pending updates. Field names follow the
// entities' JSON tags (the local shape).
type Record map[string]any

// RecordFrom converts any JSON-serializable value into a Record.
func RecordFrom(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return rec, nil
}

// Decode converts the record into a typed entity.
func (r Record) Decode(out any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

// ID extracts the record's id, tolerating the numeric types a JSON
// round-trip can produce. Returns 0 when no id is present.
func (r Record) ID() int64 {
	return coerceID(r["id"])
}

// LocalID extracts the provisional id a not-yet-synced create carries.
func (r Record) LocalID() int64 {
	return coerceID(r["localId"])
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge overlays patch onto the record, last-call-wins per field.
// The id field is never overwritten by a patch.
func (r Record) Merge(patch Record) {
	for k, v := range patch {
		if k == "id" || k == "localId" {
			continue
		}
		r[k] = v
	}
}

func coerceID(v any) int64 {
	switch id := v.(type) {
	case int64:
		return id
	case int:
		return int64(id)
	case float64:
		return int64(id)
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
