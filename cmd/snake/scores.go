package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 5 scores and the best score ever.

Examples:
  snake scores
  snake scores --db redis://localhost:6379/0
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the leaderboard, best score and history")
}

// historyClearer is implemented by stores that can drop their game history.
type historyClearer interface {
	ClearHistory(ctx context.Context) error
}

func runScores(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := storage.Open(flagDB)
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(ctx, store)
	}

	var board []snake.Entry
	raw, ok, err := store.Get(ctx, snake.LeaderboardKey)
	if err != nil {
		return fmt.Errorf("reading leaderboard: %w", err)
	}
	if ok {
		board = snake.DecodeLeaderboard(raw)
	}

	best := 0
	raw, ok, err = store.Get(ctx, snake.HighScoreKey)
	if err != nil {
		return fmt.Errorf("reading best score: %w", err)
	}
	if ok {
		best = snake.DecodeHighScore(raw)
	}

	fmt.Println("Snake - Top Scores")
	fmt.Println()

	if len(board) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")
	for i, e := range board {
		date := time.UnixMilli(e.Timestamp).Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, e.Name, e.Score, date)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}

func clearScores(ctx context.Context, store storage.KV) error {
	for _, key := range []string{snake.LeaderboardKey, snake.HighScoreKey} {
		if err := store.Delete(ctx, key); err != nil {
			return err
		}
	}
	if hc, ok := store.(historyClearer); ok {
		if err := hc.ClearHistory(ctx); err != nil {
			return err
		}
	}
	fmt.Println("Scores cleared.")
	return nil
}
