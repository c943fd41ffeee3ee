package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// placeholderTitle stands in for the real display name in --play mode, which
// launches immediately without fetching item metadata.
const placeholderTitle = "Video"

// Play launches the external player for the item id given by --play.
//
// Spawn failures are reported but never fatal; the process still exits 0.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	itemID := cmd.String("play")

	url := r.media.DownloadURL(itemID)
	r.logger.Debug("playing item", "id", itemID)

	if err := r.player.Play(url, placeholderTitle); err != nil {
		r.logger.Errorf("could not launch player: %v", err)
		return nil
	}

	r.writePlain("Playing: %s\n", placeholderTitle)
	return nil
}
