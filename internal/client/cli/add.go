package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/refkeeper/refkeeper/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: refkeeper add paper|collection|annotation [flags]")
	}

	switch args[0] {
	case "paper":
		return c.addPaper(ctx, args[1:])
	case "collection":
		return c.addCollection(ctx, args[1:])
	case "annotation":
		return c.addAnnotation(ctx, args[1:])
	default:
		return fmt.Errorf("unknown entity type: %s", args[0])
	}
}

func (c *Cli) addPaper(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("add paper", flag.ContinueOnError)
	title := flags.String("title", "", "Paper title (required)")
	authors := flags.String("authors", "", "Authors")
	year := flags.Int("year", 0, "Publication year")
	journal := flags.String("journal", "", "Journal or venue")
	doi := flags.String("doi", "", "DOI (10.xxxx/...)")
	arxivID := flags.String("arxiv", "", "arXiv identifier")
	tags := flags.String("tags", "", "Comma-separated tags")
	rating := flags.Int("rating", 0, "Rating 0-5")
	notes := flags.String("notes", "", "Notes")
	file := flags.String("file", "", "Path to the PDF (stays local)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	paper := &models.Paper{
		Title:    *title,
		Authors:  *authors,
		Year:     *year,
		Journal:  *journal,
		DOI:      *doi,
		ArxivID:  *arxivID,
		Rating:   *rating,
		Notes:    *notes,
		FilePath: *file,
		Tags:     splitTags(*tags),
	}

	if err := c.data.AddPaper(ctx, paper); err != nil {
		return err
	}

	c.io.Printf("Added paper %d: %s\n", paper.ID, paper.Title)
	return nil
}

func (c *Cli) addCollection(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("add collection", flag.ContinueOnError)
	name := flags.String("name", "", "Collection name (required)")
	description := flags.String("description", "", "Description")
	if err := flags.Parse(args); err != nil {
		return err
	}

	collection := &models.Collection{
		Name:        *name,
		Description: *description,
	}

	if err := c.data.AddCollection(ctx, collection); err != nil {
		return err
	}

	c.io.Printf("Added collection %d: %s\n", collection.ID, collection.Name)
	return nil
}

func (c *Cli) addAnnotation(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("add annotation", flag.ContinueOnError)
	paperID := flags.Int64("paper", 0, "Paper id (required)")
	page := flags.Int("page", 0, "Page number")
	content := flags.String("text", "", "Annotation text (required)")
	color := flags.String("color", "", "Highlight color")
	if err := flags.Parse(args); err != nil {
		return err
	}

	annotation := &models.Annotation{
		PaperID: *paperID,
		Page:    *page,
		Content: *content,
		Color:   *color,
	}

	if err := c.data.AddAnnotation(ctx, annotation); err != nil {
		return err
	}

	c.io.Printf("Added annotation %d on paper %d\n", annotation.ID, annotation.PaperID)
	return nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
