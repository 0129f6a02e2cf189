package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refkeeper/refkeeper/pkg/api"
)

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada", req.Username)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(api.RegisterResponse{
			UserID:   "u-1",
			Username: "ada",
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Register(context.Background(), api.RegisterRequest{Username: "ada", Password: "secret-pw"})
	require.NoError(t, err)

	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, "ada", resp.Username)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada", req.Username)
		assert.Equal(t, "secret", req.Password)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), api.LoginRequest{Username: "ada", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "refresh", resp.RefreshToken)
	assert.EqualValues(t, 900, resp.ExpiresIn)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		require.NoError(t, json.NewEncoder(w).Encode(api.ErrorResponse{Error: "invalid credentials"}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), api.LoginRequest{Username: "ada", Password: "wrong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Contains(t, err.Error(), "401")
}

func TestClient_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/refresh", r.URL.Path)

		var req api.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "old-refresh", req.RefreshToken)

		require.NoError(t, json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Refresh(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", resp.AccessToken)
}

func TestClient_FetchFull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/library/full", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		require.NoError(t, json.NewEncoder(w).Encode(api.FullFetchResponse{
			Papers:     []api.Record{{"id": float64(1), "title": "ResNet"}},
			Checkpoint: "cp-1",
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.FetchFull(context.Background(), "token-1")
	require.NoError(t, err)

	assert.Equal(t, "cp-1", resp.Checkpoint)
	require.Len(t, resp.Papers, 1)
	assert.Equal(t, "ResNet", resp.Papers[0]["title"])
}

func TestClient_Exchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/library/sync", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var req api.ExchangeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cp-1", req.Checkpoint)
		assert.Equal(t, "client-1", req.ClientID)
		assert.Equal(t, []int64{7}, req.Changes.Papers.Deleted)

		require.NoError(t, json.NewEncoder(w).Encode(api.ExchangeResponse{
			Applied: api.AppliedChanges{
				Papers: []api.AppliedRecord{{ID: 7}},
			},
			Checkpoint: "cp-2",
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Exchange(context.Background(), "token-1", api.ExchangeRequest{
		Checkpoint: "cp-1",
		ClientID:   "client-1",
		Changes: api.Changes{
			Papers: api.ChangeSet{Deleted: []int64{7}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "cp-2", resp.Checkpoint)
	assert.Equal(t, 1, resp.Applied.Total())
}

func TestClient_GetStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/library/status", r.URL.Path)

		require.NoError(t, json.NewEncoder(w).Encode(api.StatusResponse{
			Checkpoint: "cp-3",
			Counts:     api.StatusCounts{Papers: 10, Collections: 2, Annotations: 5},
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.GetStatus(context.Background(), "token-1")
	require.NoError(t, err)

	assert.Equal(t, "cp-3", resp.Checkpoint)
	assert.Equal(t, 10, resp.Counts.Papers)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetStatus(context.Background(), "token-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestClient_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	_, err := client.FetchFull(context.Background(), "token-1")
	assert.Error(t, err)
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	_, err := client.GetStatus(ctx, "token-1")
	assert.Error(t, err)
}

func TestClient_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetStatus(context.Background(), "token-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
