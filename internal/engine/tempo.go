package engine

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Tempo holds the current base and turbo tick intervals.
type Tempo struct {
	Base  time.Duration
	Turbo time.Duration
	cfg   config.TempoConfig
}

// NewTempo returns the starting tempo for a game.
func NewTempo(cfg config.TempoConfig) Tempo {
	return Tempo{
		Base:  cfg.Base(),
		Turbo: cfg.Turbo(),
		cfg:   cfg,
	}
}

// Accelerate applies one level-up decrement to both intervals, stopping at
// their floors.
func (t *Tempo) Accelerate() {
	t.Base = max(t.cfg.BaseFloor(), t.Base-t.cfg.BaseStep())
	t.Turbo = max(t.cfg.TurboFloor(), t.Turbo-t.cfg.TurboStep())
}

// Interval returns the effective interval for the given turbo status.
func (t Tempo) Interval(turbo bool) time.Duration {
	if turbo {
		return t.Turbo
	}
	return t.Base
}

// LevelFor returns the level reached with the given score.
func LevelFor(score, pointsPerLevel int) int {
	if pointsPerLevel <= 0 || score < 0 {
		return 1
	}
	return score/pointsPerLevel + 1
}

// Tempo returns the current tempo.
func (e *Engine) Tempo() Tempo { return e.tempo }

// Turbo reports whether turbo is engaged.
func (e *Engine) Turbo() bool { return e.turbo }

// Interval returns the effective tick interval.
func (e *Engine) Interval() time.Duration {
	return e.tempo.Interval(e.turbo)
}

// updateLevel recomputes the level after scoring. A level-up speeds the
// game by a single tempo step even when several levels were crossed.
func (e *Engine) updateLevel() {
	level := LevelFor(e.score, e.cfg.Rules.PointsPerLevel)
	if level <= e.level {
		return
	}

	e.level = level
	e.tempo.Accelerate()
	e.logger.Info("level up",
		"level", e.level,
		"base", e.tempo.Base,
		"turbo", e.tempo.Turbo,
	)
	e.rearm()
}

// rearm replaces the periodic trigger with one at the effective interval.
// Every tempo change goes through here, so at most one trigger is ever live.
func (e *Engine) rearm() {
	e.halt()
	if e.state != StatePlaying || e.closed {
		return
	}
	e.timer = e.sched.Schedule(e.Step, e.Interval())
}

// halt cancels the periodic trigger, if any.
func (e *Engine) halt() {
	if e.timer == 0 {
		return
	}
	e.sched.Cancel(e.timer)
	e.timer = 0
}
