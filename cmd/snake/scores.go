package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best scores and the stored high score for the configured
board. In a terminal the list is an interactive table; otherwise, or with
--plain, it is printed as text.

Examples:
  snake scores
  snake scores --limit 20 --plain
  snake scores --limit 0 --plain   # every recorded game
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = all, plain output only)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history and the stored high score")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print text even in a terminal")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gameID := storage.BoardKey(cfg.Board.Width, cfg.Board.Height)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		if err := store.HighScoreSlot(gameID).Clear(); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", gameID)
		return nil
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		w, h, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			w, h = 80, 24
		}
		return tui.RunScoreboard(store, gameID, w, h)
	}

	return printScores(os.Stdout, store, gameID, flagScoresLimit)
}

// printScores writes the plain text score listing. A limit of zero or less
// lists every recorded game.
func printScores(w io.Writer, store *storage.Store, gameID string, limit int) error {
	var scores []storage.ScoreEntry
	var err error
	if limit <= 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", gameID)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake' to set the first high score!")
	} else {
		fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "Rank", "Score", "Level", "Length", "Player", "Date")
		fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "-----", "------", "------", "----")
		for i, e := range scores {
			fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-6d  %-12s  %s\n",
				i+1, e.Score, e.Level, e.Length, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintln(w)
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		fmt.Fprintln(w, statsLine(stats))
	}

	high, err := store.HighScoreSlot(gameID).Load()
	switch {
	case err == nil:
		fmt.Fprintf(w, "Best: %d\n", high)
	case errors.Is(err, engine.ErrHighScoreMissing):
		fmt.Fprintln(w, "Best: -")
	case errors.Is(err, engine.ErrHighScoreCorrupt):
		fmt.Fprintln(w, "Best: unreadable (will reset on the next record)")
	default:
		return err
	}
	return nil
}

// statsLine summarizes the recorded games of one board.
func statsLine(st *storage.GameStats) string {
	return fmt.Sprintf("Games: %d  Average: %.1f  Best level: %d  Longest: %d  Last played: %s",
		st.GamesCount, st.AvgScore, st.BestLevel, st.Longest, st.LastPlayed.Format("2006-01-02 15:04"))
}
