package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/refkeeper/refkeeper/internal/models"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 || args[0] != "paper" {
		return fmt.Errorf("usage: refkeeper update paper <id> [flags]")
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("update paper", flag.ContinueOnError)
	title := flags.String("title", "", "New title")
	rating := flags.Int("rating", -1, "New rating 0-5")
	notes := flags.String("notes", "", "New notes")
	tags := flags.String("tags", "", "New comma-separated tags")
	doi := flags.String("doi", "", "New DOI")
	if err := flags.Parse(args[2:]); err != nil {
		return err
	}

	// Only explicitly set flags become part of the patch
	patch := models.Record{}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch["title"] = *title
		case "rating":
			patch["rating"] = *rating
		case "notes":
			patch["notes"] = *notes
		case "tags":
			patch["tags"] = splitTags(*tags)
		case "doi":
			patch["doi"] = *doi
		}
	})
	if len(patch) == 0 {
		return fmt.Errorf("nothing to update; pass at least one field flag")
	}

	if err := c.data.UpdatePaper(ctx, id, patch); err != nil {
		return err
	}

	c.io.Printf("Updated paper %d\n", id)
	return nil
}
