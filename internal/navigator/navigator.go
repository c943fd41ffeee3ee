// Package navigator implements the line-oriented interactive browser.
//
// The session is a single loop over a mutable stack of breadcrumbs, one per
// folder descended into, so call depth stays constant no matter how deep the
// library nests. Each iteration renders the current node, reads one line of
// input and either descends, ascends, plays, or re-renders with a diagnostic.
package navigator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jellycli/internal/models"
	"github.com/desertthunder/jellycli/internal/services"
	"github.com/desertthunder/jellycli/internal/shared"
)

// Player launches playback of a resolved stream URL. Implemented by
// [player.Launcher].
type Player interface {
	Play(url, title string) error
}

// crumb is one entry of the navigation path: the folder fetched by id,
// rendered by name.
type crumb struct {
	id   string
	name string
}

// Navigator walks the item tree based on user input.
type Navigator struct {
	media  services.MediaService
	player Player
	logger *log.Logger
	in     *bufio.Scanner
	out    io.Writer
	path   []crumb
}

// Opts contains configuration options for creating a Navigator.
type Opts struct {
	Media  services.MediaService
	Player Player
	Logger *log.Logger
	Input  io.Reader
	Output io.Writer
}

// New creates a Navigator. Input defaults to [os.Stdin] and Output to [os.Stdout].
func New(opts Opts) *Navigator {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Navigator{
		media:  opts.Media,
		player: opts.Player,
		logger: opts.Logger,
		in:     bufio.NewScanner(opts.Input),
		out:    opts.Output,
	}
}

// Depth returns the current navigation depth, which always equals the length
// of the path.
func (n *Navigator) Depth() int {
	return len(n.path)
}

// Breadcrumb renders the current path as folder names joined by " > ", or
// "Collections" at the root.
func (n *Navigator) Breadcrumb() string {
	if len(n.path) == 0 {
		return "Collections"
	}

	names := make([]string, len(n.path))
	for i, c := range n.path {
		names[i] = c.name
	}
	return strings.Join(names, " > ")
}

// Run drives the session until the user quits, input is exhausted, or a fetch
// fails. Fetch errors propagate to the caller; player and input errors are
// reported and the session continues.
func (n *Navigator) Run(ctx context.Context) error {
	items, err := n.fetch(ctx)
	if err != nil {
		return err
	}

	for {
		if len(items) == 0 {
			fmt.Fprintln(n.out, "No items found.")
			return nil
		}

		n.render(items)

		if !n.in.Scan() {
			return n.in.Err()
		}
		choice := strings.ToLower(strings.TrimSpace(n.in.Text()))

		switch choice {
		case "q":
			return nil
		case "b":
			if len(n.path) == 0 {
				return nil
			}
			n.path = n.path[:len(n.path)-1]
			if items, err = n.fetch(ctx); err != nil {
				return err
			}
		default:
			index, convErr := strconv.Atoi(choice)
			if convErr != nil {
				fmt.Fprintln(n.out, "Invalid input.")
				continue
			}
			if index < 1 || index > len(items) {
				fmt.Fprintln(n.out, "Invalid selection.")
				continue
			}

			item := items[index-1]
			switch {
			case item.IsFolder:
				n.path = append(n.path, crumb{id: item.ID, name: item.Name})
				if items, err = n.fetch(ctx); err != nil {
					return err
				}
			case item.Playable():
				n.play(item)
			default:
				fmt.Fprintf(n.out, "Cannot play item: %s\n", item.Name)
			}
		}
	}
}

// fetch retrieves the items of the current node: top-level collections at the
// root, children of the top of the path otherwise.
func (n *Navigator) fetch(ctx context.Context) ([]models.Item, error) {
	if len(n.path) == 0 {
		return n.media.ListCollections(ctx)
	}
	return n.media.ListChildren(ctx, n.path[len(n.path)-1].id)
}

func (n *Navigator) render(items []models.Item) {
	fmt.Fprintf(n.out, "\n=== %s ===\n", n.Breadcrumb())

	for i, item := range items {
		fmt.Fprintf(n.out, "%d. %s %s (ID: %s)\n", i+1, item.Marker(), item.Name, item.ID)
	}

	fmt.Fprint(n.out, "\nOptions:\n")
	fmt.Fprint(n.out, "  - Enter item number to browse/play\n")
	fmt.Fprint(n.out, "  - 'b' to go back\n")
	fmt.Fprint(n.out, "  - 'q' to quit\n")
	fmt.Fprint(n.out, "\nYour choice: ")
}

func (n *Navigator) play(item models.Item) {
	url := n.media.DownloadURL(item.ID)

	if err := n.player.Play(url, item.Name); err != nil {
		if errors.Is(err, shared.ErrPlayerNotFound) {
			n.logger.Error("player not found, install it or set player.command in settings.toml", "error", err)
		} else {
			n.logger.Error("could not launch player", "error", err)
		}
		return
	}

	fmt.Fprintf(n.out, "Playing: %s\n", item.Name)
}
