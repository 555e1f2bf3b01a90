// Package engine implements the snake simulation: the Ready/Playing/Paused/
// GameOver state machine, the per-tick movement step, food placement, level
// and tempo progression, and the keyboard intent mapper.
//
// The engine is single-threaded. Every method, including the callback it
// hands to its Scheduler, must be called from the same goroutine.
package engine

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Errors a Persistence implementation reports from Load.
var (
	ErrHighScoreMissing = errors.New("engine: no stored high score")
	ErrHighScoreCorrupt = errors.New("engine: stored high score is not a number")
)

// Handle identifies a periodic trigger armed by a Scheduler.
// The zero Handle means "no timer".
type Handle uint64

// Scheduler arms and cancels periodic callbacks.
// Cancel must accept the zero Handle and handles that are no longer live.
type Scheduler interface {
	Schedule(fn func(), every time.Duration) Handle
	Cancel(h Handle)
}

// Persistence stores the single high score value.
type Persistence interface {
	Load() (int, error)
	Save(score int) error
}

// Renderer receives a snapshot after every simulated tick.
type Renderer interface {
	Render(s Snapshot)
}

// Engine is one snake game instance.
type Engine struct {
	cfg    config.SnakeConfig
	width  int
	height int

	sched      Scheduler
	store      Persistence
	renderer   Renderer
	logger     *log.Logger
	rng        *rand.Rand
	onGameOver func(Snapshot)

	state     GameState
	gameID    uuid.UUID
	snake     []core.Position // Head at index 0
	direction core.Direction
	pending   core.Direction // Committed to direction on the next tick
	food      core.Position
	score     int
	level     int

	highScore        int
	highScoreCorrupt bool

	tempo Tempo
	held  mapset.Set[string]
	turbo bool
	timer Handle

	closed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler sets the periodic trigger used while playing.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sched = s
		}
	}
}

// WithPersistence sets the high score store.
func WithPersistence(p Persistence) Option {
	return func(e *Engine) {
		e.store = p
	}
}

// WithRenderer sets the render target. It may be nil and supplied later
// through SetRenderer.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand sets the food placement source, for reproducible games.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithGameOverHook registers a callback invoked with the final snapshot
// each time a game ends in a collision.
func WithGameOverHook(fn func(Snapshot)) Option {
	return func(e *Engine) {
		e.onGameOver = fn
	}
}

// New creates an engine in the Ready state with a freshly placed snake.
func New(cfg config.SnakeConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		width:  max(cfg.Board.Width, 1),
		height: max(cfg.Board.Height, 1),
		sched:  nopScheduler{},
		logger: log.New(io.Discard),
		held:   mapset.New[string](),
		level:  1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.loadHighScore()
	e.reset()
	e.render()
	return e
}

// SetRenderer attaches or replaces the render target and draws the current
// state onto it.
func (e *Engine) SetRenderer(r Renderer) {
	e.renderer = r
	e.render()
}

// Close stops the periodic trigger and forgets held keys. The engine
// ignores further input afterwards.
func (e *Engine) Close() {
	e.halt()
	e.clearTurbo()
	e.closed = true
}

// loadHighScore reads the persisted high score, falling back to zero.
func (e *Engine) loadHighScore() {
	if e.store == nil {
		return
	}

	v, err := e.store.Load()
	switch {
	case err == nil:
		e.highScore = max(v, 0)
	case errors.Is(err, ErrHighScoreMissing):
		e.highScore = 0
	case errors.Is(err, ErrHighScoreCorrupt):
		e.highScore = 0
		e.highScoreCorrupt = true
		e.logger.Warn("stored high score is corrupt, starting from zero", "error", err)
	default:
		e.highScore = 0
		e.logger.Warn("could not load high score", "error", err)
	}
}

// saveHighScore writes the high score. Failures are logged and dropped.
func (e *Engine) saveHighScore() {
	if e.store == nil {
		return
	}
	if err := e.store.Save(e.highScore); err != nil {
		e.logger.Warn("could not save high score", "score", e.highScore, "error", err)
		return
	}
	e.highScoreCorrupt = false
}

func (e *Engine) render() {
	if e.renderer == nil {
		return
	}
	e.renderer.Render(e.Snapshot())
}

// --- Queries ---

// State returns the current game state.
func (e *Engine) State() GameState { return e.state }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// HighScore returns the best score seen by this engine or loaded from storage.
func (e *Engine) HighScore() int { return e.highScore }

// HighScoreCorrupt reports whether the stored high score could not be parsed.
func (e *Engine) HighScoreCorrupt() bool { return e.highScoreCorrupt }

// Direction returns the committed movement direction.
func (e *Engine) Direction() core.Direction { return e.direction }

// PendingDirection returns the direction the next tick will commit.
func (e *Engine) PendingDirection() core.Direction { return e.pending }

// Food returns the food cell.
func (e *Engine) Food() core.Position { return e.food }

// GameID returns the identifier of the current game, renewed on every reset.
func (e *Engine) GameID() string { return e.gameID.String() }

// Snake returns a copy of the snake cells, head first.
func (e *Engine) Snake() []core.Position {
	out := make([]core.Position, len(e.snake))
	copy(out, e.snake)
	return out
}

// nopScheduler is used when no scheduler is wired; ticks must be driven by
// calling Step directly.
type nopScheduler struct{}

func (nopScheduler) Schedule(func(), time.Duration) Handle { return 0 }
func (nopScheduler) Cancel(Handle)                         {}
