package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) < 2 || args[0] != "paper" {
		return fmt.Errorf("usage: refkeeper get paper <id>")
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	paper, err := c.data.GetPaper(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get paper %d: %w", id, err)
	}

	c.io.Printf("Title:    %s\n", paper.Title)
	if paper.Authors != "" {
		c.io.Printf("Authors:  %s\n", paper.Authors)
	}
	if paper.Year > 0 {
		c.io.Printf("Year:     %d\n", paper.Year)
	}
	if paper.Journal != "" {
		c.io.Printf("Journal:  %s\n", paper.Journal)
	}
	if paper.DOI != "" {
		c.io.Printf("DOI:      %s\n", paper.DOI)
	}
	if paper.ArxivID != "" {
		c.io.Printf("arXiv:    %s\n", paper.ArxivID)
	}
	if paper.Rating > 0 {
		c.io.Printf("Rating:   %s\n", strings.Repeat("*", paper.Rating))
	}
	if len(paper.Tags) > 0 {
		c.io.Printf("Tags:     %s\n", strings.Join(paper.Tags, ", "))
	}
	if paper.Notes != "" {
		c.io.Printf("Notes:    %s\n", paper.Notes)
	}
	if paper.FilePath != "" {
		c.io.Printf("PDF:      %s\n", paper.FilePath)
	}
	c.io.Printf("Added:    %s\n", paper.CreatedAt.Format(time.RFC3339))
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
