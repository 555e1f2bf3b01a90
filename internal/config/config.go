// Package config provides YAML-based game configuration loading for the
// snake engine and its front ends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Snake StartConfig `yaml:"snake"`
	Rules RulesConfig `yaml:"rules"`
	Tempo TempoConfig `yaml:"tempo"`
	Input InputConfig `yaml:"input"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per board cell
}

// StartConfig places the snake at the beginning of every game.
type StartConfig struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Length    int    `yaml:"length"`
	Direction string `yaml:"direction"`
}

// RulesConfig defines scoring.
type RulesConfig struct {
	FoodReward     int `yaml:"food_reward"`
	PointsPerLevel int `yaml:"points_per_level"`
}

// TempoConfig defines tick intervals in milliseconds.
type TempoConfig struct {
	BaseMS       int `yaml:"base_ms"`
	TurboMS      int `yaml:"turbo_ms"`
	BaseStepMS   int `yaml:"base_step_ms"`
	TurboStepMS  int `yaml:"turbo_step_ms"`
	BaseFloorMS  int `yaml:"base_floor_ms"`
	TurboFloorMS int `yaml:"turbo_floor_ms"`
}

// InputConfig tunes how the terminal front end interprets key repeats.
type InputConfig struct {
	ReleaseAfterMS int `yaml:"release_after_ms"`
}

// StartDirection returns the parsed initial heading, falling back to up.
func (c StartConfig) StartDirection() core.Direction {
	d, err := core.ParseDirection(c.Direction)
	if err != nil {
		return core.DirUp
	}
	return d
}

// Base returns the starting base interval.
func (t TempoConfig) Base() time.Duration { return ms(t.BaseMS) }

// Turbo returns the starting turbo interval.
func (t TempoConfig) Turbo() time.Duration { return ms(t.TurboMS) }

// BaseStep returns the per-level base interval decrement.
func (t TempoConfig) BaseStep() time.Duration { return ms(t.BaseStepMS) }

// TurboStep returns the per-level turbo interval decrement.
func (t TempoConfig) TurboStep() time.Duration { return ms(t.TurboStepMS) }

// BaseFloor returns the fastest allowed base interval.
func (t TempoConfig) BaseFloor() time.Duration { return ms(t.BaseFloorMS) }

// TurboFloor returns the fastest allowed turbo interval.
func (t TempoConfig) TurboFloor() time.Duration { return ms(t.TurboFloorMS) }

// ReleaseAfter returns how long a key may stay silent before it counts as released.
func (i InputConfig) ReleaseAfter() time.Duration { return ms(i.ReleaseAfterMS) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate reports every inconsistency in the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Board.Width, c.Board.Height))
	}
	if c.Board.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("board cell_width %d must be positive", c.Board.CellWidth))
	}
	if c.Snake.Length <= 0 {
		errs = append(errs, fmt.Errorf("snake length %d must be positive", c.Snake.Length))
	}
	start := core.Position{X: c.Snake.X, Y: c.Snake.Y}
	if !start.In(c.Board.Width, c.Board.Height) {
		errs = append(errs, fmt.Errorf("snake start %v is outside the board", start))
	}
	if c.Snake.Length > c.Board.Width*c.Board.Height-1 {
		errs = append(errs, fmt.Errorf("snake length %d leaves no room for food", c.Snake.Length))
	}
	if d, err := core.ParseDirection(c.Snake.Direction); err != nil {
		errs = append(errs, err)
	} else {
		// The starting body is laid out in a straight line behind the head.
		axis, name := c.Board.Height, "height"
		if d == core.DirLeft || d == core.DirRight {
			axis, name = c.Board.Width, "width"
		}
		if c.Snake.Length > axis {
			errs = append(errs, fmt.Errorf("snake length %d heading %s exceeds board %s %d", c.Snake.Length, d, name, axis))
		}
	}
	if c.Rules.FoodReward <= 0 {
		errs = append(errs, fmt.Errorf("food_reward %d must be positive", c.Rules.FoodReward))
	}
	if c.Rules.PointsPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("points_per_level %d must be positive", c.Rules.PointsPerLevel))
	}
	t := c.Tempo
	if t.BaseFloorMS <= 0 || t.TurboFloorMS <= 0 {
		errs = append(errs, errors.New("tempo floors must be positive"))
	}
	if t.BaseMS < t.BaseFloorMS {
		errs = append(errs, fmt.Errorf("tempo base_ms %d is below base_floor_ms %d", t.BaseMS, t.BaseFloorMS))
	}
	if t.TurboMS < t.TurboFloorMS {
		errs = append(errs, fmt.Errorf("tempo turbo_ms %d is below turbo_floor_ms %d", t.TurboMS, t.TurboFloorMS))
	}
	if t.BaseStepMS < 0 || t.TurboStepMS < 0 {
		errs = append(errs, errors.New("tempo steps must not be negative"))
	}
	if c.Input.ReleaseAfterMS <= 0 {
		errs = append(errs, fmt.Errorf("input release_after_ms %d must be positive", c.Input.ReleaseAfterMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
