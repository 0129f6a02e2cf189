package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/refkeeper/refkeeper/internal/server"
	"github.com/refkeeper/refkeeper/internal/server/handlers"
	"github.com/refkeeper/refkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "refkeeper-server.db", "Path to SQLite database")
	accessTTL := flag.Duration("access-ttl", 15*time.Minute, "Access token lifetime")
	refreshTTL := flag.Duration("refresh-ttl", 30*24*time.Hour, "Refresh token lifetime")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	jwtSecret := os.Getenv("REFKEEPER_JWT_SECRET")
	if jwtSecret == "" {
		fmt.Fprintln(os.Stderr, "REFKEEPER_JWT_SECRET must be set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	srv := server.New(server.Config{
		Addr: *addr,
		JWT: handlers.JWTConfig{
			Secret:          []byte(jwtSecret),
			AccessTokenTTL:  *accessTTL,
			RefreshTokenTTL: *refreshTTL,
		},
		Version:   Version,
		RateLimit: server.DefaultRateLimit(),
	}, server.Storages{
		Users:   store,
		Tokens:  store,
		Library: store,
	}, logger)

	errC := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", *addr, "db", *dbPath, "version", Version)
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
		}
	}
}

func printVersion() {
	fmt.Printf("RefKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
