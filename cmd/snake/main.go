// snake is a terminal snake game.
//
// Usage:
//
//	snake                  - Play (same as "snake play")
//	snake play             - Play in this terminal
//	snake serve            - Host the game over SSH
//	snake scores           - Show the leaderboard
//	snake stats            - Show game history statistics
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible food and obstacles
//	--db <dsn>       - Score store: SQLite path, postgres://, redis:// or memory:
//	--config <path>  - Custom snake.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDB         string
	flagConfig     string
	flagLogFile    string
	flagSpeed      int
	flagObstacles  bool
	flagObstLimit  string
	flagPlayerName string
	flagGridSize   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal version of the classic grid game. Steer the snake,
eat the food, avoid the walls, yourself and the obstacles.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server, one game per connection
  scores   - View the top 5 and the best score
  stats    - View game history statistics

Examples:
  snake
  snake --speed 8 --obstacles --obstacle-limit 30
  snake serve --ssh :2222 --db redis://localhost:6379/0
  snake scores`,
	RunE: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate of the terminal loop")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDB, "db", "~/.snake/snake.db", "Score store: SQLite path, postgres://, redis:// or memory:")
	pf.StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	pf.StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Log file used while playing")

	pf.IntVar(&flagSpeed, "speed", 0, "Speed slider value (overrides config)")
	pf.BoolVar(&flagObstacles, "obstacles", false, "Enable obstacles (overrides config)")
	pf.StringVar(&flagObstLimit, "obstacle-limit", "", "Number of obstacles, 0-100 (overrides config)")
	pf.StringVar(&flagPlayerName, "name", "", "Name recorded on the leaderboard (overrides config)")
	pf.IntVar(&flagGridSize, "grid", 0, "Grid width and height (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
