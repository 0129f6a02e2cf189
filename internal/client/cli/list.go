package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	kind := "papers"
	if len(args) > 0 {
		kind = args[0]
	}

	switch kind {
	case "papers":
		return c.listPapers(ctx)
	case "collections":
		return c.listCollections(ctx)
	case "annotations":
		return c.listAnnotations(ctx)
	default:
		return fmt.Errorf("unknown entity type: %s", kind)
	}
}

func (c *Cli) listPapers(ctx context.Context) error {
	papers, err := c.data.ListPapers(ctx)
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		c.io.Println("No papers in the library.")
		return nil
	}

	for _, paper := range papers {
		line := fmt.Sprintf("%-14d %s", paper.ID, paper.Title)
		if paper.Year > 0 {
			line += fmt.Sprintf(" (%d)", paper.Year)
		}
		if paper.DOI != "" {
			line += "  doi:" + paper.DOI
		} else if paper.ArxivID != "" {
			line += "  arXiv:" + paper.ArxivID
		}
		if len(paper.Tags) > 0 {
			line += "  [" + strings.Join(paper.Tags, ", ") + "]"
		}
		c.io.Println(line)
	}
	return nil
}

func (c *Cli) listCollections(ctx context.Context) error {
	collections, err := c.data.ListCollections(ctx)
	if err != nil {
		return err
	}
	if len(collections) == 0 {
		c.io.Println("No collections.")
		return nil
	}
	for _, collection := range collections {
		c.io.Printf("%-14d %s (%d papers)\n", collection.ID, collection.Name, len(collection.PaperIDs))
	}
	return nil
}

func (c *Cli) listAnnotations(ctx context.Context) error {
	annotations, err := c.data.ListAnnotations(ctx)
	if err != nil {
		return err
	}
	if len(annotations) == 0 {
		c.io.Println("No annotations.")
		return nil
	}
	for _, annotation := range annotations {
		c.io.Printf("%-14d paper %d p.%d: %s\n", annotation.ID, annotation.PaperID, annotation.Page, annotation.Content)
	}
	return nil
}
