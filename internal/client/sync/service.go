// Package sync implements the offline-first synchronization engine: it
// reconciles the local store against the remote backend, replays pending
// local edits, merges server changes, and collapses duplicate papers that
// were created independently on both sides.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/refkeeper/refkeeper/internal/client/adapter"
	httpClient "github.com/refkeeper/refkeeper/internal/client/api"
	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/internal/models"
	"github.com/refkeeper/refkeeper/pkg/api"
)

// Sync precondition errors
var (
	// ErrSyncInProgress indicates another sync attempt holds the lock
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrSyncDisabled indicates remote sync is switched off
	ErrSyncDisabled = errors.New("synchronization is disabled")

	// ErrNotAuthenticated indicates no usable session exists
	ErrNotAuthenticated = errors.New("not authenticated")
)

// DefaultStaleLockTimeout is how long a sync lock may be held before the next
// caller treats it as abandoned. Policy, not a correctness constant: a sync
// that legitimately runs longer risks a second concurrent attempt.
const DefaultStaleLockTimeout = 5 * time.Minute

// DefaultStatusCooldown is how long GetSyncStatusInfo reuses the last server
// status before querying again.
const DefaultStatusCooldown = 30 * time.Second

// Config carries the orchestrator's policy knobs.
type Config struct {
	// Enabled switches remote sync on; when false every sync attempt fails
	// fast without touching the network.
	Enabled bool

	// StaleLockTimeout overrides DefaultStaleLockTimeout when positive.
	StaleLockTimeout time.Duration

	// StatusCooldown overrides DefaultStatusCooldown when positive.
	StatusCooldown time.Duration
}

func (c Config) staleLockTimeout() time.Duration {
	if c.StaleLockTimeout > 0 {
		return c.StaleLockTimeout
	}
	return DefaultStaleLockTimeout
}

func (c Config) statusCooldown() time.Duration {
	if c.StatusCooldown > 0 {
		return c.StatusCooldown
	}
	return DefaultStatusCooldown
}

//go:generate go tool moq -out session_mock.go . SessionProvider

// ChangeTracker is the slice of the change tracker the orchestrator needs.
type ChangeTracker interface {
	Pending(ctx context.Context) (*models.PendingChanges, error)
	Clear(ctx context.Context) error
}

// SessionProvider supplies the authenticated-precondition check and tokens.
type SessionProvider interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	AccessToken(ctx context.Context) (string, error)
}

// EntityCounts holds per-type record counts for sync results.
type EntityCounts struct {
	Papers      int `json:"papers"`
	Collections int `json:"collections"`
	Annotations int `json:"annotations"`
}

// Result reports one completed sync round.
type Result struct {
	// Strategy is "full" or "incremental"
	Strategy string

	// Checkpoint is the server checkpoint persisted by this round
	Checkpoint string

	// Fetched counts records written by a full sync
	Fetched EntityCounts

	// Pushed counts pending operations submitted by an incremental sync
	Pushed int

	// Applied counts changes the server accepted
	Applied int

	// Conflicts counts server-reported per-record conflicts
	Conflicts int

	// Pulled counts server change records received
	Pulled int

	// Deduplicated counts local orphan papers collapsed into server copies
	Deduplicated int

	// Deleted counts server-issued deletions replayed locally
	Deleted int

	// Skipped counts individual records that failed to apply (best-effort)
	Skipped int
}

// Service is the sync engine's public surface.
type Service struct {
	apiClient httpClient.ClientAPI
	entities  storage.EntityStorage
	state     storage.SyncStateStorage
	tracker   ChangeTracker
	session   SessionProvider
	logger    *slog.Logger
	cfg       Config
	now       func() time.Time

	status statusCache
}

// NewService creates the sync orchestrator.
func NewService(
	apiClient httpClient.ClientAPI,
	entities storage.EntityStorage,
	state storage.SyncStateStorage,
	changeTracker ChangeTracker,
	session SessionProvider,
	cfg Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		apiClient: apiClient,
		entities:  entities,
		state:     state,
		tracker:   changeTracker,
		session:   session,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// PerformSync runs a full sync when no checkpoint exists yet, an incremental
// one otherwise.
func (s *Service) PerformSync(ctx context.Context) (*Result, error) {
	checkpoint, err := s.state.GetCheckpoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	if checkpoint == "" {
		return s.PerformFullSync(ctx)
	}
	return s.PerformIncrementalSync(ctx)
}

// PerformFullSync replaces the entire local dataset with the server's.
func (s *Service) PerformFullSync(ctx context.Context) (*Result, error) {
	accessToken, err := s.checkPreconditions(ctx)
	if err != nil {
		return nil, err
	}

	release, err := s.acquireLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	s.logger.Info("Starting full sync")

	resp, err := s.apiClient.FetchFull(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("full fetch failed: %w", err)
	}

	papers := make([]*models.Paper, 0, len(resp.Papers))
	for _, rec := range resp.Papers {
		paper, err := adapter.PaperFromWire(rec)
		if err != nil {
			return nil, fmt.Errorf("malformed paper in full fetch: %w", err)
		}
		papers = append(papers, paper)
	}
	collections := make([]*models.Collection, 0, len(resp.Collections))
	for _, rec := range resp.Collections {
		collection, err := adapter.CollectionFromWire(rec)
		if err != nil {
			return nil, fmt.Errorf("malformed collection in full fetch: %w", err)
		}
		collections = append(collections, collection)
	}
	annotations := make([]*models.Annotation, 0, len(resp.Annotations))
	for _, rec := range resp.Annotations {
		annotation, err := adapter.AnnotationFromWire(rec)
		if err != nil {
			return nil, fmt.Errorf("malformed annotation in full fetch: %w", err)
		}
		annotations = append(annotations, annotation)
	}

	// Clear and repopulate in one transaction. A failure here aborts the
	// whole attempt before the checkpoint advances.
	if err := s.entities.ReplaceAll(ctx, papers, collections, annotations); err != nil {
		return nil, fmt.Errorf("failed to replace local data: %w", err)
	}

	if err := s.finishRound(ctx, resp.Checkpoint); err != nil {
		return nil, err
	}

	result := &Result{
		Strategy:   "full",
		Checkpoint: resp.Checkpoint,
		Fetched: EntityCounts{
			Papers:      len(papers),
			Collections: len(collections),
			Annotations: len(annotations),
		},
	}

	s.logger.Info("Full sync completed",
		"papers", result.Fetched.Papers,
		"collections", result.Fetched.Collections,
		"annotations", result.Fetched.Annotations,
		"checkpoint", resp.Checkpoint)

	return result, nil
}

// PerformIncrementalSync exchanges pending local changes for server changes
// since the stored checkpoint and merges the response into the local store.
func (s *Service) PerformIncrementalSync(ctx context.Context) (*Result, error) {
	accessToken, err := s.checkPreconditions(ctx)
	if err != nil {
		return nil, err
	}

	release, err := s.acquireLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	checkpoint, err := s.state.GetCheckpoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}

	pending, err := s.tracker.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending changes: %w", err)
	}

	clientID, err := s.ensureClientID(ctx)
	if err != nil {
		return nil, err
	}

	pushed := pending.Counts().Total()
	s.logger.Info("Starting incremental sync",
		"pending", pushed,
		"checkpoint", checkpoint)

	req := api.ExchangeRequest{
		Checkpoint: checkpoint,
		ClientID:   clientID,
		Changes:    adapter.PendingToWire(pending),
	}

	// A failure here leaves the tracker untouched: the same payload is
	// retried on the next attempt (at-least-once, server merge idempotent).
	resp, err := s.apiClient.Exchange(ctx, accessToken, req)
	if err != nil {
		return nil, fmt.Errorf("exchange failed: %w", err)
	}

	report := s.applyServerChanges(ctx, &resp.ServerChanges)

	if err := s.finishRound(ctx, resp.Checkpoint); err != nil {
		return nil, err
	}

	result := &Result{
		Strategy:     "incremental",
		Checkpoint:   resp.Checkpoint,
		Pushed:       pushed,
		Applied:      resp.Applied.Total(),
		Conflicts:    resp.Applied.Conflicts(),
		Pulled:       report.pulled,
		Deduplicated: report.deduplicated,
		Deleted:      report.deleted,
		Skipped:      report.skipped,
	}

	s.logger.Info("Incremental sync completed",
		"pushed", result.Pushed,
		"applied", result.Applied,
		"conflicts", result.Conflicts,
		"pulled", result.Pulled,
		"deduplicated", result.Deduplicated,
		"skipped", result.Skipped,
		"checkpoint", resp.Checkpoint)

	return result, nil
}

// IsSyncInProgress reports whether a fresh sync lock is currently held.
func (s *Service) IsSyncInProgress(ctx context.Context) (bool, error) {
	lock, err := s.state.GetSyncLock(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read sync lock: %w", err)
	}
	if lock == nil {
		return false, nil
	}
	return lock.HeldFor(s.now()) <= s.cfg.staleLockTimeout(), nil
}

// GetPendingChanges exposes the tracker's accumulated set.
func (s *Service) GetPendingChanges(ctx context.Context) (*models.PendingChanges, error) {
	return s.tracker.Pending(ctx)
}

// checkPreconditions fails fast, before any network call, when sync is
// disabled or the user is not authenticated. Returns the access token.
func (s *Service) checkPreconditions(ctx context.Context) (string, error) {
	if !s.cfg.Enabled {
		return "", ErrSyncDisabled
	}
	ok, err := s.session.IsAuthenticated(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to check authentication: %w", err)
	}
	if !ok {
		return "", ErrNotAuthenticated
	}
	accessToken, err := s.session.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	return accessToken, nil
}

// acquireLock takes the process-wide sync lock, clearing a stale one left by
// a crashed sync. Returns the release func to be deferred.
func (s *Service) acquireLock(ctx context.Context) (func(), error) {
	lock, err := s.state.GetSyncLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read sync lock: %w", err)
	}
	if lock != nil {
		held := lock.HeldFor(s.now())
		if held <= s.cfg.staleLockTimeout() {
			return nil, ErrSyncInProgress
		}
		s.logger.Warn("Clearing stale sync lock", "held_for", held)
	}

	if err := s.state.SaveSyncLock(ctx, &models.SyncLock{StartedAt: s.now()}); err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}

	return func() {
		// Release must run on every exit path; losing it only costs the
		// next caller a stale-lock wait.
		if err := s.state.ClearSyncLock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("Failed to release sync lock", "error", err)
		}
	}, nil
}

// ensureClientID returns the durable installation identity, generating it on
// first use.
func (s *Service) ensureClientID(ctx context.Context) (string, error) {
	clientID, err := s.state.GetClientID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read client id: %w", err)
	}
	if clientID != "" {
		return clientID, nil
	}
	clientID = uuid.NewString()
	if err := s.state.SaveClientID(ctx, clientID); err != nil {
		return "", fmt.Errorf("failed to save client id: %w", err)
	}
	s.logger.Info("Generated client identity", "client_id", clientID)
	return clientID, nil
}

// finishRound persists the new checkpoint and clears the tracker. Only runs
// after the round's writes succeeded; both steps must land for the round to
// count as complete.
func (s *Service) finishRound(ctx context.Context, checkpoint string) error {
	if err := s.state.SaveCheckpoint(ctx, checkpoint); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	if err := s.tracker.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear pending changes: %w", err)
	}
	return nil
}
