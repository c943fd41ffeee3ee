// Package player spawns an external media player for resolved stream URLs.
//
// Playback is fire and forget: the CLI starts the process and holds no
// ownership over its lifetime. Success means the spawn call did not fail, not
// that playback started.
package player

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jellycli/internal/shared"
)

// Launcher invokes the configured external player.
type Launcher struct {
	command string
	args    []string
	logger  *log.Logger
}

// NewLauncher creates a Launcher from player settings. Empty settings fall
// back to the embedded defaults (vlc with title formatting).
func NewLauncher(settings shared.PlayerSettings, logger *log.Logger) *Launcher {
	if settings.Command == "" {
		settings = shared.DefaultSettings().Player
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Launcher{
		command: settings.Command,
		args:    settings.Args,
		logger:  logger,
	}
}

// Play spawns the player with url and title substituted into the configured
// argument template. The process is never waited on.
//
// A missing executable wraps [shared.ErrPlayerNotFound]; any other spawn
// failure wraps [shared.ErrPlayerSpawn]. Neither is fatal to the session.
func (l *Launcher) Play(url, title string) error {
	argv := ExpandArgs(l.args, url, title)

	l.logger.Debug("launching player", "command", l.command, "title", title)

	cmd := exec.Command(l.command, argv...)
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", shared.ErrPlayerNotFound, l.command)
		}
		return fmt.Errorf("%w: %v", shared.ErrPlayerSpawn, err)
	}

	// Detach so the child's exit never blocks on this process.
	if cmd.Process != nil {
		cmd.Process.Release()
	}

	return nil
}

// Command returns the configured player executable.
func (l *Launcher) Command() string {
	return l.command
}

// ExpandArgs substitutes {url} and {title} placeholders in the argument template.
func ExpandArgs(template []string, url, title string) []string {
	argv := make([]string, len(template))
	for i, arg := range template {
		arg = strings.ReplaceAll(arg, "{url}", url)
		arg = strings.ReplaceAll(arg, "{title}", title)
		argv[i] = arg
	}
	return argv
}
