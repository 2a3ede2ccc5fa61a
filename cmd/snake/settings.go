package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// loadConfig reads snake.yaml and applies the command-line overrides that
// were set explicitly.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed.Value = flagSpeed
	}
	if flags.Changed("obstacles") {
		cfg.Obstacles.Enabled = flagObstacles
	}
	if flags.Changed("obstacle-limit") {
		cfg.Obstacles.Limit = config.ParseObstacleLimit(flagObstLimit)
	}
	if flags.Changed("name") {
		cfg.Player.Name = flagPlayerName
	}
	if flags.Changed("grid") {
		cfg.Grid.Size = flagGridSize
	}
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	return cfg.Sanitize(), nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogFile returns a logger writing to path. The terminal belongs to the
// game, so nothing is logged to stderr while playing.
func openLogFile(path string) (logger *log.Logger, closeFn func()) {
	opts := log.Options{ReportTimestamp: true, Prefix: "snake"}
	if path == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}
