package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/refkeeper/refkeeper/pkg/api"
)

// Entity kinds as stored in the records table.
const (
	kindPaper      = "paper"
	kindCollection = "collection"
	kindAnnotation = "annotation"
)

// ApplyChanges applies one client's exchange batch in a single transaction.
//
// Created records get a server-assigned id and are stored with an empty
// origin so every client, including the submitter, receives them on the next
// pull; the submitter's provisional id is tombstoned in the same breath so
// its local copy disappears. Updates and deletes keep the submitter's origin
// and are therefore not echoed back to it.
func (s *Storage) ApplyChanges(ctx context.Context, userID, origin string, baseSeq int64, changes api.Changes) (*api.AppliedChanges, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	seq, err := headSeqTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	w := &batchWriter{tx: tx, userID: userID, origin: origin, baseSeq: baseSeq, seq: seq}

	applied := &api.AppliedChanges{}
	if applied.Papers, err = w.applyChangeSet(ctx, kindPaper, changes.Papers); err != nil {
		return nil, err
	}
	if applied.Collections, err = w.applyChangeSet(ctx, kindCollection, changes.Collections); err != nil {
		return nil, err
	}
	if applied.Annotations, err = w.applyChangeSet(ctx, kindAnnotation, changes.Annotations); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit changes: %w", err)
	}

	return applied, nil
}

// batchWriter carries the per-batch state through one ApplyChanges call.
type batchWriter struct {
	tx      *sql.Tx
	userID  string
	origin  string
	baseSeq int64
	seq     int64
}

func (w *batchWriter) applyChangeSet(ctx context.Context, kind string, cs api.ChangeSet) ([]api.AppliedRecord, error) {
	var applied []api.AppliedRecord

	for _, rec := range cs.Created {
		result, err := w.applyCreate(ctx, kind, rec)
		if err != nil {
			return nil, err
		}
		applied = append(applied, result)
	}

	for _, rec := range cs.Updated {
		result, ok, err := w.applyUpdate(ctx, kind, rec)
		if err != nil {
			return nil, err
		}
		if ok {
			applied = append(applied, result)
		}
	}

	for _, id := range cs.Deleted {
		if err := w.applyDelete(ctx, kind, id); err != nil {
			return nil, err
		}
	}

	return applied, nil
}

func (w *batchWriter) applyCreate(ctx context.Context, kind string, rec api.Record) (api.AppliedRecord, error) {
	id, err := nextIDTx(ctx, w.tx, w.userID, kind)
	if err != nil {
		return api.AppliedRecord{}, err
	}

	localID := wireID(rec["local_id"])

	payload := make(api.Record, len(rec))
	for k, v := range rec {
		if k == "local_id" {
			continue
		}
		payload[k] = v
	}
	payload["id"] = id

	body, err := json.Marshal(payload)
	if err != nil {
		return api.AppliedRecord{}, fmt.Errorf("failed to marshal record: %w", err)
	}

	w.seq++
	if err := w.writeRow(ctx, kind, id, string(body), "", false); err != nil {
		return api.AppliedRecord{}, err
	}

	// Tombstone the submitter's provisional id so its local copy is replaced
	// by the server-assigned one. Other clients never had the provisional id;
	// replaying the deletion is a no-op for them.
	if localID != 0 && localID != id {
		w.seq++
		if err := w.writeRow(ctx, kind, localID, "{}", "", true); err != nil {
			return api.AppliedRecord{}, err
		}
	}

	return api.AppliedRecord{ID: id, LocalID: localID}, nil
}

// applyUpdate merges the patch into the stored record. Returns ok=false when
// the record does not exist or has been deleted: a deletion always wins over
// a concurrent update.
func (w *batchWriter) applyUpdate(ctx context.Context, kind string, rec api.Record) (api.AppliedRecord, bool, error) {
	id := wireID(rec["id"])
	if id == 0 {
		return api.AppliedRecord{}, false, nil
	}

	var (
		body         string
		storedSeq    int64
		storedOrigin string
		deleted      bool
	)
	err := w.tx.QueryRowContext(ctx,
		`SELECT payload, seq, origin, deleted FROM records WHERE user_id = ? AND kind = ? AND id = ?`,
		w.userID, kind, id,
	).Scan(&body, &storedSeq, &storedOrigin, &deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return api.AppliedRecord{}, false, nil
	}
	if err != nil {
		return api.AppliedRecord{}, false, fmt.Errorf("failed to load record: %w", err)
	}
	if deleted {
		return api.AppliedRecord{}, false, nil
	}

	stored := api.Record{}
	if err := json.Unmarshal([]byte(body), &stored); err != nil {
		return api.AppliedRecord{}, false, fmt.Errorf("failed to unmarshal stored record: %w", err)
	}

	for k, v := range rec {
		if k == "id" || k == "local_id" {
			continue
		}
		stored[k] = v
	}
	stored["id"] = id

	merged, err := json.Marshal(stored)
	if err != nil {
		return api.AppliedRecord{}, false, fmt.Errorf("failed to marshal record: %w", err)
	}

	// Another writer touched the record after the submitter's checkpoint.
	// Last write still wins; the flag tells the submitter what happened.
	conflict := storedSeq > w.baseSeq && storedOrigin != w.origin

	w.seq++
	if err := w.writeRow(ctx, kind, id, string(merged), w.origin, false); err != nil {
		return api.AppliedRecord{}, false, err
	}

	return api.AppliedRecord{ID: id, Conflict: conflict}, true, nil
}

// applyDelete tombstones a record. Deleting an id the server never saw is a
// no-op: the tracker only sends server-assigned ids for synced records.
func (w *batchWriter) applyDelete(ctx context.Context, kind string, id int64) error {
	var deleted bool
	err := w.tx.QueryRowContext(ctx,
		`SELECT deleted FROM records WHERE user_id = ? AND kind = ? AND id = ?`,
		w.userID, kind, id,
	).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && deleted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	w.seq++
	return w.writeRow(ctx, kind, id, "{}", w.origin, true)
}

func (w *batchWriter) writeRow(ctx context.Context, kind string, id int64, payload, origin string, deleted bool) error {
	_, err := w.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO records (user_id, kind, id, payload, seq, origin, deleted, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, w.userID, kind, id, payload, w.seq, origin, deleted, timeNow().UTC())
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// ChangesSince returns records and tombstones written after afterSeq, leaving
// out rows the excluded client wrote itself.
func (s *Storage) ChangesSince(ctx context.Context, userID string, afterSeq int64, excludeOrigin string) (*api.ServerChanges, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, id, payload, deleted, origin
		FROM records
		WHERE user_id = ? AND seq > ?
		ORDER BY seq ASC
	`, userID, afterSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to query changes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	changes := &api.ServerChanges{}

	for rows.Next() {
		var (
			kind, payload, origin string
			id                    int64
			deleted               bool
		)
		if err := rows.Scan(&kind, &id, &payload, &deleted, &origin); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		// Rows with an empty origin (creates and their provisional-id
		// tombstones) go to everyone; the rest are another client's edits.
		if origin != "" && origin == excludeOrigin {
			continue
		}

		if deleted {
			switch kind {
			case kindPaper:
				changes.Deleted.Papers = append(changes.Deleted.Papers, id)
			case kindCollection:
				changes.Deleted.Collections = append(changes.Deleted.Collections, id)
			case kindAnnotation:
				changes.Deleted.Annotations = append(changes.Deleted.Annotations, id)
			}
			continue
		}

		rec := api.Record{}
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		switch kind {
		case kindPaper:
			changes.Papers = append(changes.Papers, rec)
		case kindCollection:
			changes.Collections = append(changes.Collections, rec)
		case kindAnnotation:
			changes.Annotations = append(changes.Annotations, rec)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return changes, nil
}

// Snapshot returns all live records of a user's library.
func (s *Storage) Snapshot(ctx context.Context, userID string) (papers, collections, annotations []api.Record, err error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, payload
		FROM records
		WHERE user_id = ? AND deleted = 0
		ORDER BY kind, id
	`, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to scan record: %w", err)
		}

		rec := api.Record{}
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		switch kind {
		case kindPaper:
			papers = append(papers, rec)
		case kindCollection:
			collections = append(collections, rec)
		case kindAnnotation:
			annotations = append(annotations, rec)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return papers, collections, annotations, nil
}

// HeadSeq returns the user's current sequence head, 0 for an empty library.
func (s *Storage) HeadSeq(ctx context.Context, userID string) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM records WHERE user_id = ?`, userID,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to query head seq: %w", err)
	}
	return seq, nil
}

// Counts returns live record counts per entity type.
func (s *Storage) Counts(ctx context.Context, userID string) (api.StatusCounts, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*)
		FROM records
		WHERE user_id = ? AND deleted = 0
		GROUP BY kind
	`, userID)
	if err != nil {
		return api.StatusCounts{}, fmt.Errorf("failed to query counts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := api.StatusCounts{}
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return api.StatusCounts{}, fmt.Errorf("failed to scan count: %w", err)
		}
		switch kind {
		case kindPaper:
			counts.Papers = n
		case kindCollection:
			counts.Collections = n
		case kindAnnotation:
			counts.Annotations = n
		}
	}

	if err := rows.Err(); err != nil {
		return api.StatusCounts{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}

func headSeqTx(ctx context.Context, tx *sql.Tx, userID string) (int64, error) {
	var seq int64
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM records WHERE user_id = ?`, userID,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to query head seq: %w", err)
	}
	return seq, nil
}

// nextIDTx hands out the next server-assigned record id for (user, kind).
func nextIDTx(ctx context.Context, tx *sql.Tx, userID, kind string) (int64, error) {
	var next int64
	err := tx.QueryRowContext(ctx,
		`SELECT next_id FROM id_counters WHERE user_id = ? AND kind = ?`, userID, kind,
	).Scan(&next)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		next = 1
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO id_counters (user_id, kind, next_id) VALUES (?, ?, 2)`, userID, kind,
		); err != nil {
			return 0, fmt.Errorf("failed to init id counter: %w", err)
		}
	case err != nil:
		return 0, fmt.Errorf("failed to query id counter: %w", err)
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE id_counters SET next_id = ? WHERE user_id = ? AND kind = ?`, next+1, userID, kind,
		); err != nil {
			return 0, fmt.Errorf("failed to advance id counter: %w", err)
		}
	}
	return next, nil
}

// wireID coerces the loosely typed id field of a decoded JSON record.
func wireID(v any) int64 {
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
