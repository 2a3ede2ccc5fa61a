package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start or resume
  P            - Pause
  R            - Restart
  X            - Back to the start screen
  +/-          - Speed up / slow down
  O            - Toggle obstacles
  [ / ]        - Fewer / more obstacles
  L/Tab        - Leaderboard
  Esc/B        - Give up the current game
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --speed 10 --name ada
  snake play --obstacles --obstacle-limit 40
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog := openLogFile(flagLogFile)
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		logger.Warn("score store unavailable, playing without persistence", "dsn", flagDB, "error", err)
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	game := snake.New(cfg, rt,
		snake.WithStore(store),
		snake.WithLogger(logger),
	)
	game.LoadRecords(context.Background())

	history, _ := store.(storage.History)
	logger.Info("game started", "player", game.PlayerName(), "seed", rt.Seed, "speed", game.Speed())

	if err := tui.Run(game, rt, history, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
