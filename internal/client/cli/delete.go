package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: refkeeper delete paper|collection|annotation <id>")
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	switch args[0] {
	case "paper":
		if err := c.data.DeletePaper(ctx, id); err != nil {
			return err
		}
		c.io.Printf("Deleted paper %d\n", id)
	case "collection":
		if err := c.data.DeleteCollection(ctx, id); err != nil {
			return err
		}
		c.io.Printf("Deleted collection %d\n", id)
	case "annotation":
		if err := c.data.DeleteAnnotation(ctx, id); err != nil {
			return err
		}
		c.io.Printf("Deleted annotation %d\n", id)
	default:
		return fmt.Errorf("unknown entity type: %s", args[0])
	}
	return nil
}
