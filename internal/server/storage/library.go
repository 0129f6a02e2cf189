package storage

import (
	"context"

	"github.com/refkeeper/refkeeper/pkg/api"
)

// LibraryStorage defines interface for the per-user reference library.
//
// Every write to a user's library is stamped with a monotonically increasing
// per-user sequence number; the head of that sequence is what clients carry
// around as their checkpoint. Deletions are tombstoned rather than removed so
// they can be replayed to clients that have not seen them yet.
type LibraryStorage interface {
	// ApplyChanges applies one client's batch of pending changes in a single
	// transaction. Created records are assigned server ids (the client's
	// provisional id is echoed back as LocalID and tombstoned so the
	// submitting client drops its provisional copy). Updates merge the
	// patch into the stored record; an update is flagged as a conflict when
	// another writer touched the record after baseSeq. Deletes are
	// idempotent. Origin is the submitting client's id.
	ApplyChanges(ctx context.Context, userID, origin string, baseSeq int64, changes api.Changes) (*api.AppliedChanges, error)

	// ChangesSince returns every record and tombstone written after afterSeq,
	// except updates and deletes originating from excludeOrigin. Created
	// records are always included so the creating client learns its
	// server-assigned ids.
	ChangesSince(ctx context.Context, userID string, afterSeq int64, excludeOrigin string) (*api.ServerChanges, error)

	// Snapshot returns all live records of a user's library.
	Snapshot(ctx context.Context, userID string) (papers, collections, annotations []api.Record, err error)

	// HeadSeq returns the user's current sequence head, 0 for an empty library.
	HeadSeq(ctx context.Context, userID string) (int64, error)

	// Counts returns live record counts per entity type.
	Counts(ctx context.Context, userID string) (api.StatusCounts, error)
}
