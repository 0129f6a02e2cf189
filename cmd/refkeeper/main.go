package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	httpClient "github.com/refkeeper/refkeeper/internal/client/api"
	"github.com/refkeeper/refkeeper/internal/client/auth"
	"github.com/refkeeper/refkeeper/internal/client/cli"
	"github.com/refkeeper/refkeeper/internal/client/data"
	"github.com/refkeeper/refkeeper/internal/client/iocli"
	"github.com/refkeeper/refkeeper/internal/client/storage/boltdb"
	syncService "github.com/refkeeper/refkeeper/internal/client/sync"
	"github.com/refkeeper/refkeeper/internal/client/tracker"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Sync server base URL")
	dbPath := flag.String("db", "refkeeper.db", "Path to local database")
	offline := flag.Bool("offline", false, "Disable remote sync")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	io := iocli.NewStdio()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	args := flag.Args()
	if len(args) == 0 {
		cli.New(io, nil, nil, nil).PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := httpClient.NewClient(*serverURL)
	session := auth.NewSession(store, apiClient, logger)
	changeTracker := tracker.New(store, logger)
	dataService := data.NewService(store, changeTracker)
	syncSvc := syncService.NewService(
		apiClient,
		store,
		store,
		changeTracker,
		session,
		syncService.Config{Enabled: !*offline},
		logger,
	)

	app := cli.New(io, session, dataService, syncSvc)
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("RefKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
