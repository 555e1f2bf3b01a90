package engine

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameState is the state machine position.
type GameState int

const (
	StateReady GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Confirm performs the single "confirm" transition for the current state:
// Ready starts, Playing pauses, Paused resumes and GameOver restarts.
func (e *Engine) Confirm() {
	if e.closed {
		return
	}

	switch e.state {
	case StateReady:
		e.start()
	case StatePlaying:
		e.pause()
	case StatePaused:
		e.resume()
	case StateGameOver:
		e.Restart()
	}
}

// Restart resets the game and starts playing, whatever the current state.
func (e *Engine) Restart() {
	if e.closed {
		return
	}

	e.halt()
	e.reset()
	e.render()
	e.start()
}

// reset reinitializes snake, food, score, level and tempo and enters Ready.
func (e *Engine) reset() {
	e.halt()

	dir := e.cfg.Snake.StartDirection()
	head := core.Position{X: e.cfg.Snake.X, Y: e.cfg.Snake.Y}.Wrap(e.width, e.height)
	length := max(e.cfg.Snake.Length, 1)

	e.snake = make([]core.Position, 0, length)
	for i := range length {
		e.snake = append(e.snake, head.Move(dir.Opposite(), i).Wrap(e.width, e.height))
	}

	e.direction = dir
	e.pending = dir
	e.score = 0
	e.level = 1
	e.tempo = NewTempo(e.cfg.Tempo)
	e.turbo = false
	e.held = mapset.New[string]()
	e.gameID = uuid.New()

	e.spawnFood()
	e.state = StateReady
}

func (e *Engine) start() {
	e.state = StatePlaying
	e.logger.Info("game started", "game", e.gameID, "interval", e.Interval())
	e.rearm()
}

func (e *Engine) pause() {
	e.state = StatePaused
	e.halt()
	e.clearTurbo()
	e.pending = e.direction
	e.logger.Info("game paused", "game", e.gameID, "score", e.score)
}

func (e *Engine) resume() {
	e.state = StatePlaying
	e.logger.Info("game resumed", "game", e.gameID, "interval", e.Interval())
	e.rearm()
}

// gameOver ends the game after a collision.
func (e *Engine) gameOver() {
	e.state = StateGameOver
	e.halt()
	e.clearTurbo()
	e.pending = e.direction

	if e.score > e.highScore {
		e.highScore = e.score
		e.saveHighScore()
	}

	e.logger.Info("game over",
		"game", e.gameID,
		"score", e.score,
		"level", e.level,
		"length", len(e.snake),
		"high_score", e.highScore,
	)

	e.render()
	if e.onGameOver != nil {
		e.onGameOver(e.Snapshot())
	}
}
