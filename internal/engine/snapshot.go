package engine

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only copy of the game handed to renderers and hooks.
type Snapshot struct {
	GameID    string
	Width     int
	Height    int
	Snake     []core.Position // Head at index 0
	Food      core.Position
	Score     int
	Level     int
	HighScore int
	State     GameState
	Direction core.Direction
	Turbo     bool
	Interval  time.Duration
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		GameID:    e.gameID.String(),
		Width:     e.width,
		Height:    e.height,
		Snake:     e.Snake(),
		Food:      e.food,
		Score:     e.score,
		Level:     e.level,
		HighScore: e.highScore,
		State:     e.state,
		Direction: e.direction,
		Turbo:     e.turbo,
		Interval:  e.Interval(),
	}
}

// Head returns the head cell and false for an empty snake.
func (s Snapshot) Head() (core.Position, bool) {
	if len(s.Snake) == 0 {
		return core.Position{}, false
	}
	return s.Snake[0], true
}
