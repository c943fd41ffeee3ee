package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jellycli/internal/navigator"
	"github.com/desertthunder/jellycli/internal/services"
	"github.com/desertthunder/jellycli/internal/shared"
)

// Runner holds all dependencies for CLI modes and provides a method for each mode.
type Runner struct {
	config   *shared.ServerConfig
	settings *shared.Settings
	media    services.MediaService
	player   navigator.Player
	logger   *log.Logger
	output   io.Writer
	input    io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.ServerConfig
	Settings *shared.Settings
	Media    services.MediaService
	Player   navigator.Player
	Logger   *log.Logger
	Output   io.Writer
	Input    io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Settings == nil {
		opts.Settings = shared.DefaultSettings()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	return &Runner{
		config:   opts.Config,
		settings: opts.Settings,
		media:    opts.Media,
		player:   opts.Player,
		logger:   opts.Logger,
		output:   opts.Output,
		input:    opts.Input,
	}
}

// SetLogger swaps the Runner's logger, e.g. for file logging while the TUI
// owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
