package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show game history statistics",
	Long: `Display totals over every finished game and the most recent games.
Works with every store except memory:, which forgets games on exit.

Examples:
  snake stats
  snake stats --recent 20`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent games to list")
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := storage.Open(flagDB)
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	defer store.Close()

	history, ok := store.(storage.History)
	if !ok {
		return fmt.Errorf("store %q does not keep game history", flagDB)
	}

	stats, err := history.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Snake - Statistics")
	fmt.Println()
	if stats.GamesCount == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  Best score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Food eaten:    %d\n", stats.TotalScore)
	fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))

	games, err := history.RecentGames(ctx, flagRecent)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-13s  %s\n", "Player", "Score", "Result", "Date")
	fmt.Printf("  %-16s  %-6s  %-13s  %s\n", "------", "-----", "------", "----")
	for _, g := range games {
		fmt.Printf("  %-16s  %-6d  %-13s  %s\n", g.Player, g.Score, g.Reason, g.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
