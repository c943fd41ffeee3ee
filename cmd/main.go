package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jellycli/internal/player"
	"github.com/desertthunder/jellycli/internal/services"
	"github.com/desertthunder/jellycli/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	app := &cli.Command{
		Name:    "jellycli",
		Usage:   "Browse a Jellyfin media server and play items with an external player",
		Version: services.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the server config file",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List all collections",
			},
			&cli.StringFlag{
				Name:  "browse",
				Usage: "Browse items under a specific `PARENT_ID`",
			},
			&cli.StringFlag{
				Name:  "play",
				Usage: "Play a specific item by `ITEM_ID`",
			},
			&cli.BoolFlag{
				Name:  "interactive",
				Usage: "Start interactive browsing mode (default)",
			},
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "Start the full-screen browser",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output listings as raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export listings as `FORMAT` (csv or markdown)",
			},
			&cli.BoolFlag{
				Name:  "init-settings",
				Usage: "Write the default settings file and exit",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, logger)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrMissingConfig) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "Please create a config file with the following format:")
			fmt.Fprintln(os.Stderr, shared.ExampleServerConfig)
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}

// run loads configuration, wires the service and player, and dispatches to
// the mode selected by the flags.
func run(ctx context.Context, cmd *cli.Command, logger *log.Logger) error {
	if cmd.Bool("init-settings") {
		path, err := shared.DefaultSettingsPath()
		if err != nil {
			return err
		}
		if err := shared.CreateSettingsFile(path); err != nil {
			return err
		}
		fmt.Printf("Settings file created at %s\n", path)
		return nil
	}

	configPath := cmd.String("config")
	if configPath == "" {
		var err error
		if configPath, err = shared.DefaultServerConfigPath(); err != nil {
			return err
		}
	}

	config, err := shared.LoadServerConfig(configPath)
	if err != nil {
		return err
	}

	settings := loadSettings(logger)
	if level, err := log.ParseLevel(settings.Log.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	media := services.NewJellyfinService(config, nil)
	launcher := player.NewLauncher(settings.Player, logger)

	r := NewRunner(RunnerOpts{
		Config:   config,
		Settings: settings,
		Media:    media,
		Player:   launcher,
		Logger:   logger,
	})

	switch {
	case cmd.Bool("list"):
		return r.List(ctx, cmd)
	case cmd.String("browse") != "":
		return r.Browse(ctx, cmd)
	case cmd.String("play") != "":
		return r.Play(ctx, cmd)
	case cmd.Bool("tui"):
		return r.TUI(ctx, cmd)
	default:
		return r.Interactive(ctx, cmd)
	}
}

// loadSettings returns the optional TOML settings, falling back to the
// embedded defaults when the file is absent or unparsable.
func loadSettings(logger *log.Logger) *shared.Settings {
	settings := shared.DefaultSettings()

	path, err := shared.DefaultSettingsPath()
	if err != nil {
		return settings
	}

	if _, err := os.Stat(path); err == nil {
		if loaded, loadErr := shared.LoadSettings(path); loadErr == nil {
			settings = loaded
		} else {
			logger.Warnf("failed to load settings, using defaults %v", loadErr)
		}
	}

	return settings
}
