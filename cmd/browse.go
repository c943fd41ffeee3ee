// submodule cmd contains listing mode actions
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/jellycli/internal/formatter"
	"github.com/desertthunder/jellycli/internal/models"
	"github.com/desertthunder/jellycli/internal/shared"
	"github.com/urfave/cli/v3"
)

// List prints the user's top-level collections and exits.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	r.logger.Debug("listing collections")

	items, err := r.media.ListCollections(ctx)
	if err != nil {
		return err
	}

	return r.renderListing(cmd, "Collections", items)
}

// Browse prints the children of the parent id given by --browse and exits.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	parentID := cmd.String("browse")
	r.logger.Debug("browsing children", "parent", parentID)

	items, err := r.media.ListChildren(ctx, parentID)
	if err != nil {
		return err
	}

	return r.renderListing(cmd, fmt.Sprintf("Items in %s", parentID), items)
}

// renderListing writes items in the requested representation: csv or
// markdown via --format, raw JSON via --json, enumerated text otherwise.
func (r *Runner) renderListing(cmd *cli.Command, title string, items []models.Item) error {
	switch strings.ToLower(cmd.String("format")) {
	case "csv":
		data, err := formatter.ListingToCSV(items)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)

	case "markdown", "md":
		return r.writePlain("%s", formatter.ListingToMarkdown(title, items))

	case "":
		if cmd.Bool("json") {
			return r.writeJSON(items, cmd.Bool("pretty"))
		}

		r.writePlain("\n=== %s ===\n", title)
		for i, item := range items {
			r.writePlain("%d. %s %s (ID: %s)\n", i+1, item.Marker(), item.Name, item.ID)
		}
		return nil

	default:
		return fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidInput, cmd.String("format"))
	}
}
