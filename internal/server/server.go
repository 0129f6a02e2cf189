// Package server assembles the refkeeper sync backend: routes, middleware
// chain and the HTTP server itself.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/refkeeper/refkeeper/internal/server/handlers"
	"github.com/refkeeper/refkeeper/internal/server/middleware"
	"github.com/refkeeper/refkeeper/internal/server/storage"
)

// Config holds everything the HTTP server needs besides storage.
type Config struct {
	Addr      string
	JWT       handlers.JWTConfig
	Version   string
	RateLimit RateLimitConfig
}

// RateLimitConfig throttles credential endpoints harder than the rest.
type RateLimitConfig struct {
	DefaultRate   int
	DefaultWindow time.Duration
	AuthRate      int
	AuthWindow    time.Duration
}

// DefaultRateLimit is a sane production baseline.
func DefaultRateLimit() RateLimitConfig {
	return RateLimitConfig{
		DefaultRate:   300,
		DefaultWindow: time.Minute,
		AuthRate:      10,
		AuthWindow:    5 * time.Minute,
	}
}

// Storages groups the storage interfaces the handlers consume. A single
// sqlite.Storage satisfies all three.
type Storages struct {
	Users   storage.UserStorage
	Tokens  storage.TokenStorage
	Library storage.LibraryStorage
}

// New builds the fully wired HTTP server.
func New(cfg Config, store Storages, logger *slog.Logger) *http.Server {
	authHandler := handlers.NewAuthHandler(logger, store.Users, store.Tokens, cfg.JWT)
	libraryHandler := handlers.NewLibraryHandler(logger, store.Library)
	healthHandler := handlers.NewHealthHandler(logger, cfg.Version)

	requireAuth := middleware.AuthMiddleware(logger, cfg.JWT)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.Handle("POST /api/v1/auth/logout", requireAuth(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/v1/library/full", requireAuth(http.HandlerFunc(libraryHandler.Full)))
	mux.Handle("POST /api/v1/library/sync", requireAuth(http.HandlerFunc(libraryHandler.Sync)))
	mux.Handle("GET /api/v1/library/status", requireAuth(http.HandlerFunc(libraryHandler.Status)))

	rateLimit := middleware.RateLimitByPathMiddleware(
		[]middleware.PathRateLimit{
			{Path: "/api/v1/auth/register", Rate: cfg.RateLimit.AuthRate, Window: cfg.RateLimit.AuthWindow},
			{Path: "/api/v1/auth/login", Rate: cfg.RateLimit.AuthRate, Window: cfg.RateLimit.AuthWindow},
		},
		cfg.RateLimit.DefaultRate,
		cfg.RateLimit.DefaultWindow,
		logger,
	)

	// Outermost first: recovery catches everything, including logging itself.
	var handler http.Handler = mux
	handler = rateLimit(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
