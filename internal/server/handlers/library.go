package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/refkeeper/refkeeper/internal/server/storage"
	"github.com/refkeeper/refkeeper/pkg/api"
)

// contextKey is a private type for request context values.
type contextKey string

// Context keys populated by the auth middleware.
const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// GetUserID extracts the authenticated user id from the request context.
func GetUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", errors.New("user_id not found in context")
	}
	return userID, nil
}

// GetUsername extracts the authenticated username from the request context.
func GetUsername(ctx context.Context) (string, error) {
	username, ok := ctx.Value(UsernameKey).(string)
	if !ok || username == "" {
		return "", errors.New("username not found in context")
	}
	return username, nil
}

// LibraryHandler serves the sync protocol: full snapshot, incremental
// exchange and the lightweight status probe.
type LibraryHandler struct {
	logger  *slog.Logger
	library storage.LibraryStorage
}

// NewLibraryHandler creates the library handler.
func NewLibraryHandler(logger *slog.Logger, library storage.LibraryStorage) *LibraryHandler {
	return &LibraryHandler{
		logger:  logger,
		library: library,
	}
}

// Full handles GET /api/v1/library/full
// Returns every live record plus the current checkpoint.
func (h *LibraryHandler) Full(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := GetUserID(ctx)
	if err != nil {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	papers, collections, annotations, err := h.library.Snapshot(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load snapshot", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	head, err := h.library.HeadSeq(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load head seq", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "full fetch served",
		slog.String("user_id", userID),
		slog.Int("papers", len(papers)),
		slog.Int("collections", len(collections)),
		slog.Int("annotations", len(annotations)))

	h.sendJSON(w, api.FullFetchResponse{
		Papers:      papers,
		Collections: collections,
		Annotations: annotations,
		Checkpoint:  formatCheckpoint(head),
	}, http.StatusOK)
}

// Sync handles POST /api/v1/library/sync
// Applies the client's pending changes, then returns everything the client
// has not seen since its checkpoint, together with the new checkpoint.
func (h *LibraryHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := GetUserID(ctx)
	if err != nil {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode exchange request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ClientID == "" {
		h.sendError(w, "client_id is required", http.StatusBadRequest)
		return
	}

	baseSeq, err := parseCheckpoint(req.Checkpoint)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	applied, err := h.library.ApplyChanges(ctx, userID, req.ClientID, baseSeq, req.Changes)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to apply changes", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	changes, err := h.library.ChangesSince(ctx, userID, baseSeq, req.ClientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to collect changes", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	head, err := h.library.HeadSeq(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load head seq", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "exchange served",
		slog.String("user_id", userID),
		slog.String("client_id", req.ClientID),
		slog.Int("applied", applied.Total()),
		slog.Int("conflicts", applied.Conflicts()))

	h.sendJSON(w, api.ExchangeResponse{
		Applied:       *applied,
		ServerChanges: *changes,
		Checkpoint:    formatCheckpoint(head),
	}, http.StatusOK)
}

// Status handles GET /api/v1/library/status
func (h *LibraryHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := GetUserID(ctx)
	if err != nil {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	counts, err := h.library.Counts(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load counts", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	head, err := h.library.HeadSeq(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load head seq", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.StatusResponse{
		Checkpoint: formatCheckpoint(head),
		Counts:     counts,
	}, http.StatusOK)
}

// parseCheckpoint maps the wire checkpoint onto a sequence number. The empty
// checkpoint means "from the beginning".
func parseCheckpoint(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	seq, err := strconv.ParseInt(s, 10, 64)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("invalid checkpoint %q", s)
	}
	return seq, nil
}

func formatCheckpoint(seq int64) string {
	return strconv.FormatInt(seq, 10)
}

// sendJSON writes a JSON response
func (h *LibraryHandler) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func (h *LibraryHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{Error: message}, statusCode)
}
