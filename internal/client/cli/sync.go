package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/refkeeper/refkeeper/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("sync", flag.ContinueOnError)
	full := flags.Bool("full", false, "Force a full re-sync, replacing all local data")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var (
		result *sync.Result
		err    error
	)
	if *full {
		result, err = c.sync.PerformFullSync(ctx)
	} else {
		result, err = c.sync.PerformSync(ctx)
	}

	switch {
	case errors.Is(err, sync.ErrSyncInProgress):
		return fmt.Errorf("a sync is already running; try again in a moment")
	case errors.Is(err, sync.ErrSyncDisabled):
		return fmt.Errorf("sync is disabled (started with --offline)")
	case errors.Is(err, sync.ErrNotAuthenticated):
		return fmt.Errorf("not authenticated; run 'refkeeper login' first")
	case err != nil:
		return fmt.Errorf("sync failed, your changes are kept for retry: %w", err)
	}

	if result.Strategy == "full" {
		c.io.Println("Full sync completed.")
		c.io.Printf("  papers:      %d\n", result.Fetched.Papers)
		c.io.Printf("  collections: %d\n", result.Fetched.Collections)
		c.io.Printf("  annotations: %d\n", result.Fetched.Annotations)
		return nil
	}

	if result.Pushed == 0 && result.Pulled == 0 && result.Deleted == 0 {
		c.io.Println("Nothing to sync, already up to date.")
		return nil
	}

	c.io.Println("Sync completed.")
	c.io.Printf("  pushed:  %d\n", result.Pushed)
	c.io.Printf("  applied: %d\n", result.Applied)
	c.io.Printf("  pulled:  %d\n", result.Pulled)
	if result.Deduplicated > 0 {
		c.io.Printf("  duplicates collapsed: %d\n", result.Deduplicated)
	}
	if result.Conflicts > 0 {
		c.io.Printf("  conflicts resolved by server: %d\n", result.Conflicts)
	}
	if result.Skipped > 0 {
		c.io.Printf("  skipped (errors): %d\n", result.Skipped)
	}
	return nil
}
