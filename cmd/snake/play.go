package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD - Steer (hold for turbo)
  Space       - Start, pause, resume, play again
  R           - Restart
  Q/Esc       - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log /tmp/snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal; try 'snake sim'")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	// Warn early; the game itself also shows a notice until the window grows.
	needW := cfg.Board.Width*cfg.Board.CellWidth + 2
	needH := cfg.Board.Height + 6
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), "seed", flagSeed)

	return tui.Run(tui.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Seed:   flagSeed,
		Player: playerName(),
	})
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
