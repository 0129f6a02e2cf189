package models

import "time"

// ChangeSet holds one entity type's pending local edits, accumulated while
// offline or between sync rounds. A given id lives in at most one of the
// three lists at any time.
type ChangeSet struct {
	Created []Record `json:"created"`
	Updated []Record `json:"updated"`
	Deleted []int64  `json:"deleted"`
}

// IsEmpty reports whether the set carries no pending edits.
func (c *ChangeSet) IsEmpty() bool {
	return len(c.Created) == 0 && len(c.Updated) == 0 && len(c.Deleted) == 0
}

// OpCounts breaks a change set down by operation.
type OpCounts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// Counts returns the per-operation breakdown.
func (c *ChangeSet) Counts() OpCounts {
	return OpCounts{
		Created: len(c.Created),
		Updated: len(c.Updated),
		Deleted: len(c.Deleted),
	}
}

// PendingChanges is the full persisted change-tracker state, one ChangeSet
// per entity type.
type PendingChanges struct {
	Papers      ChangeSet `json:"papers"`
	Collections ChangeSet `json:"collections"`
	Annotations ChangeSet `json:"annotations"`
}

// Set returns the change set for the given entity type.
func (p *PendingChanges) Set(t EntityType) *ChangeSet {
	switch t {
	case EntityCollections:
		return &p.Collections
	case EntityAnnotations:
		return &p.Annotations
	default:
		return &p.Papers
	}
}

// HasChanges reports whether anything is waiting to be synced.
func (p *PendingChanges) HasChanges() bool {
	return !p.Papers.IsEmpty() || !p.Collections.IsEmpty() || !p.Annotations.IsEmpty()
}

// ChangeCounts is the per-type, per-operation breakdown exposed to
// presentation layers.
type ChangeCounts struct {
	Papers      OpCounts `json:"papers"`
	Collections OpCounts `json:"collections"`
	Annotations OpCounts `json:"annotations"`
}

// Counts returns the full breakdown.
func (p *PendingChanges) Counts() ChangeCounts {
	return ChangeCounts{
		Papers:      p.Papers.Counts(),
		Collections: p.Collections.Counts(),
		Annotations: p.Annotations.Counts(),
	}
}

// Total sums all pending operations across types.
func (c ChangeCounts) Total() int {
	total := 0
	for _, op := range []OpCounts{c.Papers, c.Collections, c.Annotations} {
		total += op.Created + op.Updated + op.Deleted
	}
	return total
}

// SyncLock guards against concurrent sync attempts. StartedAt supports
// stale-lock detection when a crashed sync never released it.
type SyncLock struct {
	StartedAt time.Time `json:"started_at"`
}

// HeldFor reports how long the lock has been held as of now.
func (l *SyncLock) HeldFor(now time.Time) time.Duration {
	return now.Sub(l.StartedAt)
}
