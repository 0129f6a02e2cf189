package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
	w := httptest.NewRecorder()
	LoggingMiddleware(logger)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	out := buf.String()
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/api/v1/auth/register")
	assert.Contains(t, out, "status=201")
	assert.Contains(t, out, "level=INFO")
}

func TestLoggingMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success is info", http.StatusOK, "level=INFO"},
		{"client error is warn", http.StatusNotFound, "level=WARN"},
		{"server error is error", http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			w := httptest.NewRecorder()
			LoggingMiddleware(logger)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}

func TestLoggingMiddleware_DefaultStatusIs200(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// Handler never calls WriteHeader explicitly
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	w := httptest.NewRecorder()
	LoggingMiddleware(logger)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Contains(t, buf.String(), "status=200")
}

func TestLoggingWithSkip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := LoggingWithSkip(logger, []string{"/api/v1/health"})(next)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Empty(t, buf.String(), "health checks stay out of the log")

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/library/status", nil))
	assert.Contains(t, buf.String(), "path=/api/v1/library/status")
}
