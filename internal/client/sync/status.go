package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/refkeeper/refkeeper/internal/models"
	"github.com/refkeeper/refkeeper/pkg/api"
)

// StatusInfo is the sync state exposed to presentation layers.
type StatusInfo struct {
	// Checkpoint is the last server checkpoint this client persisted,
	// empty when a full sync never completed.
	Checkpoint string

	// ClientID is the durable installation identity, empty until the first
	// incremental sync generates it.
	ClientID string

	// InProgress reports whether a fresh sync lock is held.
	InProgress bool

	// HasPendingChanges reports whether local edits await upload.
	HasPendingChanges bool

	// Pending is the per-type, per-operation breakdown.
	Pending models.ChangeCounts

	// Server holds the server's checkpoint and counts; nil when the server
	// was not queried (cooldown, offline, or unauthenticated).
	Server *api.StatusResponse

	// ServerCached marks Server as coming from the cooldown cache rather
	// than a fresh query.
	ServerCached bool
}

// statusCache rate-limits server status queries so badge polling does not
// produce a network call per check.
type statusCache struct {
	mu        sync.Mutex
	resp      *api.StatusResponse
	fetchedAt time.Time
}

// GetSyncStatusInfo assembles the full status picture. Locally-known
// information is always fresh; the server part is served from cache inside
// the cooldown window and degrades to nil when the server can't be asked.
func (s *Service) GetSyncStatusInfo(ctx context.Context) (*StatusInfo, error) {
	checkpoint, err := s.state.GetCheckpoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	clientID, err := s.state.GetClientID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read client id: %w", err)
	}
	inProgress, err := s.IsSyncInProgress(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.tracker.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending changes: %w", err)
	}

	info := &StatusInfo{
		Checkpoint:        checkpoint,
		ClientID:          clientID,
		InProgress:        inProgress,
		HasPendingChanges: pending.HasChanges(),
		Pending:           pending.Counts(),
	}

	info.Server, info.ServerCached = s.serverStatus(ctx)

	return info, nil
}

// serverStatus returns the cached server status within the cooldown window,
// otherwise queries the server. Failures degrade to local-only status.
func (s *Service) serverStatus(ctx context.Context) (*api.StatusResponse, bool) {
	s.status.mu.Lock()
	defer s.status.mu.Unlock()

	if s.status.resp != nil && s.now().Sub(s.status.fetchedAt) < s.cfg.statusCooldown() {
		return s.status.resp, true
	}

	if !s.cfg.Enabled {
		return s.status.resp, s.status.resp != nil
	}
	ok, err := s.session.IsAuthenticated(ctx)
	if err != nil || !ok {
		return s.status.resp, s.status.resp != nil
	}
	accessToken, err := s.session.AccessToken(ctx)
	if err != nil {
		s.logger.Warn("Failed to get access token for status query", "error", err)
		return s.status.resp, s.status.resp != nil
	}

	resp, err := s.apiClient.GetStatus(ctx, accessToken)
	if err != nil {
		s.logger.Warn("Server status query failed", "error", err)
		return s.status.resp, s.status.resp != nil
	}

	s.status.resp = resp
	s.status.fetchedAt = s.now()
	return resp, false
}
