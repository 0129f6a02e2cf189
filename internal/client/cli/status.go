package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	isAuth, err := c.session.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Status: not authenticated")
		c.io.Println("Run 'refkeeper login' to enable sync.")
	} else {
		username, err := c.session.Username(ctx)
		if err != nil {
			return err
		}
		c.io.Printf("Status: authenticated as %s\n", username)
	}

	info, err := c.sync.GetSyncStatusInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	c.io.Println("")
	if info.Checkpoint == "" {
		c.io.Println("Never synced; the first sync will download the full library.")
	} else {
		c.io.Printf("Last checkpoint: %s\n", info.Checkpoint)
	}
	if info.InProgress {
		c.io.Println("A sync is currently running.")
	}

	if !info.HasPendingChanges {
		c.io.Println("No local changes waiting to sync.")
	} else {
		c.io.Printf("Pending local changes: %d\n", info.Pending.Total())
		printOps := func(name string, created, updated, deleted int) {
			if created+updated+deleted == 0 {
				return
			}
			c.io.Printf("  %-12s %d created, %d updated, %d deleted\n", name, created, updated, deleted)
		}
		printOps("papers:", info.Pending.Papers.Created, info.Pending.Papers.Updated, info.Pending.Papers.Deleted)
		printOps("collections:", info.Pending.Collections.Created, info.Pending.Collections.Updated, info.Pending.Collections.Deleted)
		printOps("annotations:", info.Pending.Annotations.Created, info.Pending.Annotations.Updated, info.Pending.Annotations.Deleted)
	}

	if info.Server != nil {
		source := "server"
		if info.ServerCached {
			source = "cached"
		}
		c.io.Printf("Server library (%s): %d papers, %d collections, %d annotations\n",
			source,
			info.Server.Counts.Papers,
			info.Server.Counts.Collections,
			info.Server.Counts.Annotations)
	}

	return nil
}
