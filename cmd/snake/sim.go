package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSimTicks int
	flagSimBoard bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Play a game without a terminal UI. A greedy autopilot steers towards the
food on virtual time, so a thousand ticks finish instantly. The final score,
level and tempo are printed, followed by the board.

Examples:
  snake sim
  snake sim --ticks 2000 --seed 42
  snake sim --board=false`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 500, "Maximum number of ticks to run")
	simCmd.Flags().BoolVar(&flagSimBoard, "board", true, "Print the final board")
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks   int
	Elapsed time.Duration
	Final   engine.Snapshot
	Board   *tui.BoardRenderer
}

// simulate plays up to ticks ticks with the autopilot.
func simulate(cfg config.SnakeConfig, seed int64, ticks int, logger *log.Logger) simResult {
	clk := clock.NewManual()
	board := tui.NewBoardRenderer(cfg.Board.Width, cfg.Board.Height, 1)
	e := engine.New(cfg,
		engine.WithScheduler(clk),
		engine.WithRenderer(board),
		engine.WithLogger(logger),
		engine.WithRand(rand.New(rand.NewSource(seed))),
	)
	defer e.Close()

	e.Confirm()

	res := simResult{Board: board}
	for res.Ticks < ticks && e.State() == engine.StatePlaying {
		e.Steer(autopilot(e.Snapshot()))
		fired := clk.Advance(e.Interval())
		if fired == 0 {
			break
		}
		res.Ticks += fired
	}

	res.Elapsed = clk.Now()
	res.Final = e.Snapshot()
	return res
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "snake-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res := simulate(cfg, seed, flagSimTicks, logger)
	printSim(os.Stdout, res, seed, flagSimBoard)
	return nil
}

func printSim(w io.Writer, res simResult, seed int64, showBoard bool) {
	s := res.Final
	fmt.Fprintf(w, "seed:     %d\n", seed)
	fmt.Fprintf(w, "ticks:    %d (%s of game time)\n", res.Ticks, res.Elapsed)
	fmt.Fprintf(w, "state:    %s\n", s.State)
	fmt.Fprintf(w, "score:    %d\n", s.Score)
	fmt.Fprintf(w, "level:    %d\n", s.Level)
	fmt.Fprintf(w, "length:   %d\n", len(s.Snake))
	fmt.Fprintf(w, "interval: %s\n", s.Interval)
	if showBoard {
		fmt.Fprintln(w)
		fmt.Fprintln(w, res.Board.Screen().String())
	}
}
