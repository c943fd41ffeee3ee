package main

import (
	"context"

	"github.com/desertthunder/jellycli/internal/navigator"
	"github.com/urfave/cli/v3"
)

// Interactive starts the line-oriented browsing session. This is the default
// mode when no other mode flag is given.
func (r *Runner) Interactive(ctx context.Context, cmd *cli.Command) error {
	nav := navigator.New(navigator.Opts{
		Media:  r.media,
		Player: r.player,
		Logger: r.logger,
		Input:  r.input,
		Output: r.output,
	})

	return nav.Run(ctx)
}
