package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Key identifiers understood by KeyDown and KeyUp. Front ends normalize
// their native key names to these.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyConfirm    = " "
)

var movementKeys = map[string]core.Direction{
	KeyArrowUp:    core.DirUp,
	"w":           core.DirUp,
	"W":           core.DirUp,
	KeyArrowDown:  core.DirDown,
	"s":           core.DirDown,
	"S":           core.DirDown,
	KeyArrowLeft:  core.DirLeft,
	"a":           core.DirLeft,
	"A":           core.DirLeft,
	KeyArrowRight: core.DirRight,
	"d":           core.DirRight,
	"D":           core.DirRight,
}

// DirectionForKey maps a movement key to its direction.
func DirectionForKey(key string) (core.Direction, bool) {
	d, ok := movementKeys[key]
	return d, ok
}

// IsMovementKey reports whether key steers the snake.
func IsMovementKey(key string) bool {
	_, ok := movementKeys[key]
	return ok
}

// KeyDown handles a key press. The confirm key drives the state machine in
// every state; movement keys steer and engage turbo only while playing.
// Anything else is ignored.
func (e *Engine) KeyDown(key string) {
	if e.closed {
		return
	}
	if key == KeyConfirm {
		e.Confirm()
		return
	}
	if e.state != StatePlaying {
		return
	}

	if d, ok := DirectionForKey(key); ok {
		e.Steer(d)
		e.setHeld(key, true)
	}
}

// KeyUp handles a key release. Only movement keys released while playing
// have an effect.
func (e *Engine) KeyUp(key string) {
	if e.closed || e.state != StatePlaying {
		return
	}
	e.setHeld(key, false)
}

// Steer buffers d as the pending direction unless it reverses the committed
// direction. It reports whether d was accepted.
//
// The check is made against the committed direction, not the pending one,
// so two presses within one tick may each pass.
func (e *Engine) Steer(d core.Direction) bool {
	if e.closed || e.state != StatePlaying {
		return false
	}
	if d == e.direction.Opposite() {
		return false
	}
	e.pending = d
	return true
}

// setHeld tracks held movement keys; turbo is on while any is held.
func (e *Engine) setHeld(key string, down bool) {
	if !IsMovementKey(key) {
		return
	}

	if down {
		e.held.Put(key)
	} else {
		e.held.Remove(key)
	}

	want := e.held.Size() > 0
	if want == e.turbo {
		return
	}
	e.turbo = want
	e.logger.Debug("turbo", "on", e.turbo, "interval", e.Interval())
	e.rearm()
}

// clearTurbo forgets held keys and drops turbo without rescheduling.
func (e *Engine) clearTurbo() {
	e.held = mapset.New[string]()
	e.turbo = false
}

// HeldKeys returns the number of movement keys currently held.
func (e *Engine) HeldKeys() int {
	return e.held.Size()
}
