package api

// Record is a schemaless wire record. Created records carry the full field
// set, updated records carry only the patched fields plus "id".
type Record map[string]any

// ChangeSet groups one entity type's outgoing changes for an exchange call.
type ChangeSet struct {
	Created []Record `json:"created"`
	Updated []Record `json:"updated"`
	Deleted []int64  `json:"deleted"`
}

// Changes carries the full pending payload, grouped by entity type.
type Changes struct {
	Papers      ChangeSet `json:"papers"`
	Collections ChangeSet `json:"collections"`
	Annotations ChangeSet `json:"annotations"`
}

// ExchangeRequest is the incremental sync request body.
// Checkpoint is the last server-issued checkpoint the client has seen,
// empty on the very first exchange. ClientID lets the server suppress
// echoing a client's own changes back to it.
type ExchangeRequest struct {
	Checkpoint string  `json:"checkpoint,omitempty"`
	ClientID   string  `json:"client_id"`
	Changes    Changes `json:"changes"`
}

// AppliedRecord reports the server's verdict on one submitted change.
// LocalID echoes the provisional id of a created record so the client can
// correlate it with the server-assigned ID.
type AppliedRecord struct {
	ID       int64 `json:"id"`
	LocalID  int64 `json:"local_id,omitempty"`
	Conflict bool  `json:"conflict,omitempty"`
}

// AppliedChanges lists what the server accepted, per entity type.
type AppliedChanges struct {
	Papers      []AppliedRecord `json:"papers"`
	Collections []AppliedRecord `json:"collections"`
	Annotations []AppliedRecord `json:"annotations"`
}

// DeletedIDs lists server-side deletions the client must replay locally.
type DeletedIDs struct {
	Papers      []int64 `json:"papers"`
	Collections []int64 `json:"collections"`
	Annotations []int64 `json:"annotations"`
}

// ServerChanges carries records the server believes this client is missing.
type ServerChanges struct {
	Papers      []Record   `json:"papers"`
	Collections []Record   `json:"collections"`
	Annotations []Record   `json:"annotations"`
	Deleted     DeletedIDs `json:"deleted"`
}

// ExchangeResponse is the incremental sync response body.
type ExchangeResponse struct {
	Applied       AppliedChanges `json:"applied"`
	ServerChanges ServerChanges  `json:"server_changes"`
	Checkpoint    string         `json:"checkpoint"`
}

// FullFetchResponse is the complete remote dataset plus the server checkpoint.
type FullFetchResponse struct {
	Papers      []Record `json:"papers"`
	Collections []Record `json:"collections"`
	Annotations []Record `json:"annotations"`
	Checkpoint  string   `json:"checkpoint"`
}

// StatusCounts holds server-side record counts per entity type.
type StatusCounts struct {
	Papers      int `json:"papers"`
	Collections int `json:"collections"`
	Annotations int `json:"annotations"`
}

// StatusResponse is the lightweight server status used for sync badges.
type StatusResponse struct {
	Checkpoint string       `json:"checkpoint"`
	Counts     StatusCounts `json:"counts"`
}

// Conflicts counts the per-record conflict markers across all types.
func (a *AppliedChanges) Conflicts() int {
	n := 0
	for _, group := range [][]AppliedRecord{a.Papers, a.Collections, a.Annotations} {
		for _, rec := range group {
			if rec.Conflict {
				n++
			}
		}
	}
	return n
}

// Total counts all applied records across types.
func (a *AppliedChanges) Total() int {
	return len(a.Papers) + len(a.Collections) + len(a.Annotations)
}
