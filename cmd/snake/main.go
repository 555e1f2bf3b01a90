// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the score history and high score
//	snake sim                - Run a headless game with an autopilot
//
// Global flags:
//
//	--config <path> - Game config YAML (env SNAKE_CONFIG)
//	--db <path>     - Scores database (env SNAKE_DB, default ~/.snake/snake.db)
//	--log <path>    - Write logs to this file (env SNAKE_LOG)
//	--seed <value>  - RNG seed for food placement (0 = time based)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a wrapping board. Eat food to grow and score; every 50
points the game speeds up. Hold a direction key for turbo.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View the score history
  sim      - Run a headless game with an autopilot

Examples:
  snake
  snake play --config ./big-board.yaml
  snake serve --ssh :2222
  snake scores --limit 20
  snake sim --ticks 1000 --seed 42`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Missing .env is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("SNAKE_CONFIG"), "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("SNAKE_DB", storage.DefaultPath), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", os.Getenv("SNAKE_LOG"), "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("SNAKE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
