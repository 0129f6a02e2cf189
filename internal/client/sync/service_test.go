package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/refkeeper/refkeeper/internal/client/api"
	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/internal/client/storage/boltdb"
	"github.com/refkeeper/refkeeper/internal/client/tracker"
	"github.com/refkeeper/refkeeper/internal/models"
	"github.com/refkeeper/refkeeper/pkg/api"
)

// fixture wires the orchestrator against a real BoltDB store and tracker,
// mocking only the network and the auth session.
type fixture struct {
	svc     *Service
	api     *httpClient.ClientAPIMock
	session *SessionProviderMock
	store   *boltdb.Storage
	tracker *tracker.Tracker
	clock   *time.Time
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "sync_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	apiMock := &httpClient.ClientAPIMock{}
	sessionMock := &SessionProviderMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) { return true, nil },
		AccessTokenFunc:     func(ctx context.Context) (string, error) { return "test-token", nil },
	}

	changeTracker := tracker.New(store, logger)

	svc := NewService(apiMock, store, store, changeTracker, sessionMock, cfg, logger)

	clock := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	f := &fixture{
		svc:     svc,
		api:     apiMock,
		session: sessionMock,
		store:   store,
		tracker: changeTracker,
		clock:   &clock,
	}
	// Keep the injected clock pointing at the fixture's mutable time
	svc.now = func() time.Time { return *f.clock }
	return f
}

func enabledFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixture(t, Config{Enabled: true})
}

func wirePaper(id int64, title, doi string) api.Record {
	return api.Record{
		"id":    float64(id),
		"title": title,
		"doi":   doi,
	}
}

func TestPerformSync_FullWhenNoCheckpoint(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	f.api.FetchFullFunc = func(ctx context.Context, accessToken string) (*api.FullFetchResponse, error) {
		return &api.FullFetchResponse{
			Papers:     []api.Record{wirePaper(1, "ImageNet Classification", "10.1145/3065386")},
			Checkpoint: "cp-1",
		}, nil
	}

	result, err := f.svc.PerformSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, "full", result.Strategy)
	assert.Len(t, f.api.FetchFullCalls(), 1)
	assert.Empty(t, f.api.ExchangeCalls())
}

func TestPerformSync_IncrementalWhenCheckpointExists(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{Checkpoint: "cp-2"}, nil
	}

	result, err := f.svc.PerformSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, "incremental", result.Strategy)
	assert.Empty(t, f.api.FetchFullCalls())
	require.Len(t, f.api.ExchangeCalls(), 1)
	assert.Equal(t, "cp-1", f.api.ExchangeCalls()[0].Req.Checkpoint)
}

func TestPerformFullSync_ReplacesLocalData(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	// Stale local state and leftover pending changes from before
	require.NoError(t, f.store.SavePaper(ctx, &models.Paper{ID: 99, Title: "stale"}))
	require.NoError(t, f.tracker.PaperDeleted(ctx, 99))

	f.api.FetchFullFunc = func(ctx context.Context, accessToken string) (*api.FullFetchResponse, error) {
		return &api.FullFetchResponse{
			Papers: []api.Record{
				wirePaper(1, "Attention Is All You Need", "10.5555/3295222"),
				wirePaper(2, "BERT", "10.18653/v1/N19-1423"),
			},
			Collections: []api.Record{{"id": float64(1), "name": "nlp"}},
			Checkpoint:  "cp-full",
		}, nil
	}

	result, err := f.svc.PerformFullSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, "cp-full", result.Checkpoint)
	assert.Equal(t, EntityCounts{Papers: 2, Collections: 1}, result.Fetched)

	// Local store holds exactly the server dataset
	_, err = f.store.GetPaper(ctx, 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	papers, err := f.store.ListPapers(ctx)
	require.NoError(t, err)
	assert.Len(t, papers, 2)

	// The round completed: checkpoint saved, tracker cleared, lock released
	checkpoint, err := f.store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cp-full", checkpoint)
	pending, err := f.tracker.Pending(ctx)
	require.NoError(t, err)
	assert.False(t, pending.HasChanges())
	inProgress, err := f.svc.IsSyncInProgress(ctx)
	require.NoError(t, err)
	assert.False(t, inProgress)
}

func TestPerformFullSync_StoreFailureKeepsCheckpointUnset(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	f.api.FetchFullFunc = func(ctx context.Context, accessToken string) (*api.FullFetchResponse, error) {
		return &api.FullFetchResponse{
			// Malformed record: decode fails before anything is written
			Papers:     []api.Record{{"id": "not-a-number"}},
			Checkpoint: "cp-bad",
		}, nil
	}

	_, err := f.svc.PerformFullSync(ctx)
	require.Error(t, err)

	checkpoint, err := f.store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Empty(t, checkpoint, "failed round must not advance the checkpoint")
}

func TestPerformIncrementalSync_PushesPendingChanges(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	require.NoError(t, f.tracker.PaperCreated(ctx, models.Record{
		"localId": int64(100), "title": "draft", "rating": 4, "filePath": "/tmp/draft.pdf",
	}))
	require.NoError(t, f.tracker.CollectionUpdated(ctx, 3, models.Record{"name": "renamed"}))
	require.NoError(t, f.tracker.AnnotationDeleted(ctx, 7))

	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{
			Applied: api.AppliedChanges{
				Papers:      []api.AppliedRecord{{ID: 42, LocalID: 100}},
				Collections: []api.AppliedRecord{{ID: 3, Conflict: true}},
				Annotations: []api.AppliedRecord{{ID: 7}},
			},
			Checkpoint: "cp-2",
		}, nil
	}

	result, err := f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Pushed)
	assert.Equal(t, 3, result.Applied)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, "cp-2", result.Checkpoint)

	// Outgoing payload is in wire shape and omits local-only fields
	req := f.api.ExchangeCalls()[0].Req
	assert.Equal(t, "test-token", f.api.ExchangeCalls()[0].AccessToken)
	require.Len(t, req.Changes.Papers.Created, 1)
	created := req.Changes.Papers.Created[0]
	// Pending records round-trip through JSON in storage, so numbers come
	// back as float64; compare by value, not by Go type.
	assert.EqualValues(t, 100, created["local_id"])
	assert.EqualValues(t, 4, created["stars"])
	assert.NotContains(t, created, "filePath")
	assert.NotContains(t, created, "file_path")
	assert.Equal(t, []int64{7}, req.Changes.Annotations.Deleted)

	// Round complete: tracker empty, checkpoint advanced
	pending, err := f.tracker.Pending(ctx)
	require.NoError(t, err)
	assert.False(t, pending.HasChanges())
	checkpoint, err := f.store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cp-2", checkpoint)
}

func TestPerformIncrementalSync_GeneratesDurableClientID(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{Checkpoint: "cp-2"}, nil
	}

	_, err := f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err)
	_, err = f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err)

	calls := f.api.ExchangeCalls()
	require.Len(t, calls, 2)
	first := calls[0].Req.ClientID
	_, err = uuid.Parse(first)
	assert.NoError(t, err)
	assert.Equal(t, first, calls[1].Req.ClientID, "client id must survive across rounds")

	stored, err := f.store.GetClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestPerformIncrementalSync_CollapsesDuplicatePapers(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	// The same publication was catalogued independently on both sides while
	// offline. The local copy has a provisional id; the server copy won.
	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	require.NoError(t, f.store.SavePaper(ctx, &models.Paper{
		ID:    10,
		Title: "GANs (local copy)",
		DOI:   "10.5555/2969033",
	}))

	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{
			ServerChanges: api.ServerChanges{
				Papers: []api.Record{wirePaper(20, "Generative Adversarial Networks", "10.5555/2969033")},
			},
			Checkpoint: "cp-2",
		}, nil
	}

	result, err := f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pulled)
	assert.Equal(t, 1, result.Deduplicated)

	// Only the server copy remains
	_, err = f.store.GetPaper(ctx, 10)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	got, err := f.store.GetPaper(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, "Generative Adversarial Networks", got.Title)

	papers, err := f.store.ListPapers(ctx)
	require.NoError(t, err)
	assert.Len(t, papers, 1)
}

func TestPerformIncrementalSync_DedupMatchesAcrossKeyEncodings(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	// Local copy identified by bare arXiv id, server copy by arXiv pseudo-DOI
	require.NoError(t, f.store.SavePaper(ctx, &models.Paper{ID: 10, Title: "local", ArxivID: "2301.01234"}))

	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{
			ServerChanges: api.ServerChanges{
				Papers: []api.Record{wirePaper(20, "server", "arXiv:2301.01234")},
			},
			Checkpoint: "cp-2",
		}, nil
	}

	result, err := f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deduplicated)

	papers, err := f.store.ListPapers(ctx)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, int64(20), papers[0].ID)
}

func TestPerformIncrementalSync_SameIDIsUpdateNotDuplicate(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	require.NoError(t, f.store.SavePaper(ctx, &models.Paper{ID: 20, Title: "old title", DOI: "10.5555/2969033"}))

	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{
			ServerChanges: api.ServerChanges{
				Papers: []api.Record{wirePaper(20, "new title", "10.5555/2969033")},
			},
			Checkpoint: "cp-2",
		}, nil
	}

	result, err := f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Deduplicated)

	got, err := f.store.GetPaper(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
}

func TestPerformIncrementalSync_AppliesServerDeletions(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	require.NoError(t, f.store.SavePaper(ctx, &models.Paper{ID: 1, Title: "doomed"}))

	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{
			ServerChanges: api.ServerChanges{
				Deleted: api.DeletedIDs{
					Papers:      []int64{1, 404}, // 404 never existed locally
					Collections: []int64{404},
				},
			},
			Checkpoint: "cp-2",
		}, nil
	}

	result, err := f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err, "deleting ids the store never had must not fail the round")
	assert.Equal(t, 3, result.Deleted)

	_, err = f.store.GetPaper(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPerformIncrementalSync_ExchangeFailureKeepsPending(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	require.NoError(t, f.tracker.PaperDeleted(ctx, 5))

	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return nil, errors.New("connection reset")
	}

	_, err := f.svc.PerformIncrementalSync(ctx)
	require.Error(t, err)

	// Nothing advanced: the next attempt retries the identical payload
	pending, err := f.tracker.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, pending.Papers.Deleted)
	checkpoint, err := f.store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cp-1", checkpoint)

	// And the lock was released, so the retry can proceed
	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{Checkpoint: "cp-2"}, nil
	}
	_, err = f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, f.api.ExchangeCalls()[1].Req.Changes.Papers.Deleted)
}

func TestPerformIncrementalSync_MalformedServerRecordIsSkipped(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.store.SaveCheckpoint(ctx, "cp-1"))
	f.api.ExchangeFunc = func(ctx context.Context, accessToken string, req api.ExchangeRequest) (*api.ExchangeResponse, error) {
		return &api.ExchangeResponse{
			ServerChanges: api.ServerChanges{
				Collections: []api.Record{
					{"id": "not-a-number", "name": "bad"},
					{"id": float64(2), "name": "good"},
				},
			},
			Checkpoint: "cp-2",
		}, nil
	}

	result, err := f.svc.PerformIncrementalSync(ctx)
	require.NoError(t, err, "one bad record must not block the round")

	assert.Equal(t, 2, result.Pulled)
	assert.Equal(t, 1, result.Skipped)

	got, err := f.store.GetCollection(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "good", got.Name)

	checkpoint, err := f.store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cp-2", checkpoint)
}

func TestSync_DisabledFailsBeforeNetwork(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{Enabled: false})

	_, err := f.svc.PerformFullSync(ctx)
	assert.ErrorIs(t, err, ErrSyncDisabled)

	_, err = f.svc.PerformIncrementalSync(ctx)
	assert.ErrorIs(t, err, ErrSyncDisabled)

	assert.Empty(t, f.api.FetchFullCalls())
	assert.Empty(t, f.api.ExchangeCalls())
	assert.Empty(t, f.session.IsAuthenticatedCalls())
}

func TestSync_UnauthenticatedFailsBeforeNetwork(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	f.session.IsAuthenticatedFunc = func(ctx context.Context) (bool, error) { return false, nil }

	_, err := f.svc.PerformFullSync(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, f.api.FetchFullCalls())
}

func TestSync_LockExclusion(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	// A fresh lock held by another attempt
	require.NoError(t, f.store.SaveSyncLock(ctx, &models.SyncLock{StartedAt: f.clock.Add(-time.Minute)}))

	_, err := f.svc.PerformFullSync(ctx)
	assert.ErrorIs(t, err, ErrSyncInProgress)
	assert.Empty(t, f.api.FetchFullCalls(), "a rejected attempt must not touch the network")

	// The losing attempt must not have cleared the winner's lock
	lock, err := f.store.GetSyncLock(ctx)
	require.NoError(t, err)
	assert.NotNil(t, lock)
}

func TestSync_StaleLockIsRecovered(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	// A lock left behind by a crashed sync, older than the timeout
	require.NoError(t, f.store.SaveSyncLock(ctx, &models.SyncLock{StartedAt: f.clock.Add(-10 * time.Minute)}))

	f.api.FetchFullFunc = func(ctx context.Context, accessToken string) (*api.FullFetchResponse, error) {
		return &api.FullFetchResponse{Checkpoint: "cp-1"}, nil
	}

	_, err := f.svc.PerformFullSync(ctx)
	require.NoError(t, err)
	assert.Len(t, f.api.FetchFullCalls(), 1)
}

func TestSync_ConfigurableStaleLockTimeout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{Enabled: true, StaleLockTimeout: time.Minute})

	// Held for 2 minutes: stale under the tightened policy
	require.NoError(t, f.store.SaveSyncLock(ctx, &models.SyncLock{StartedAt: f.clock.Add(-2 * time.Minute)}))

	f.api.FetchFullFunc = func(ctx context.Context, accessToken string) (*api.FullFetchResponse, error) {
		return &api.FullFetchResponse{Checkpoint: "cp-1"}, nil
	}

	_, err := f.svc.PerformFullSync(ctx)
	require.NoError(t, err)
}

func TestIsSyncInProgress(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	inProgress, err := f.svc.IsSyncInProgress(ctx)
	require.NoError(t, err)
	assert.False(t, inProgress)

	require.NoError(t, f.store.SaveSyncLock(ctx, &models.SyncLock{StartedAt: f.clock.Add(-time.Minute)}))
	inProgress, err = f.svc.IsSyncInProgress(ctx)
	require.NoError(t, err)
	assert.True(t, inProgress)

	// A stale lock does not count as in progress
	*f.clock = f.clock.Add(DefaultStaleLockTimeout)
	inProgress, err = f.svc.IsSyncInProgress(ctx)
	require.NoError(t, err)
	assert.False(t, inProgress)
}

func TestGetPendingChanges(t *testing.T) {
	ctx := context.Background()
	f := enabledFixture(t)

	require.NoError(t, f.tracker.PaperDeleted(ctx, 3))

	pending, err := f.svc.GetPendingChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, pending.Papers.Deleted)
}
