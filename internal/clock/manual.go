// Package clock provides a virtual-time scheduler for driving the engine
// without a wall clock.
package clock

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// minEvery bounds how often a single timer may fire.
const minEvery = time.Millisecond

type timer struct {
	fn       func()
	every    time.Duration
	deadline time.Duration
}

// Manual is a Scheduler whose time only moves when Advance is called.
// It is not safe for concurrent use.
type Manual struct {
	now       time.Duration
	next      engine.Handle
	timers    map[engine.Handle]*timer
	scheduled int
}

var _ engine.Scheduler = (*Manual)(nil)

// NewManual returns a scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{timers: make(map[engine.Handle]*timer)}
}

// Schedule arms fn to run every interval, first at now+every.
func (m *Manual) Schedule(fn func(), every time.Duration) engine.Handle {
	every = max(every, minEvery)
	m.next++
	m.timers[m.next] = &timer{fn: fn, every: every, deadline: m.now + every}
	m.scheduled++
	return m.next
}

// Cancel disarms h. Unknown and zero handles are ignored.
func (m *Manual) Cancel(h engine.Handle) {
	delete(m.timers, h)
}

// Advance moves virtual time forward by d, firing every due callback in
// deadline order. Callbacks may schedule and cancel timers; new timers fire
// within the same call if they fall due. It returns the number of callbacks
// run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + max(d, 0)
	fired := 0

	for {
		t := m.due(target)
		if t == nil {
			break
		}
		m.now = t.deadline
		t.deadline += t.every
		t.fn()
		fired++
	}

	m.now = target
	return fired
}

// due returns the earliest timer at or before target. Ties go to the lower
// handle.
func (m *Manual) due(target time.Duration) *timer {
	var (
		best  engine.Handle
		bestT *timer
	)
	for h, t := range m.timers {
		if t.deadline > target {
			continue
		}
		if bestT == nil || t.deadline < bestT.deadline || (t.deadline == bestT.deadline && h < best) {
			best, bestT = h, t
		}
	}
	return bestT
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration { return m.now }

// Active returns the number of live timers.
func (m *Manual) Active() int { return len(m.timers) }

// Scheduled returns how many timers have been armed in total.
func (m *Manual) Scheduled() int { return m.scheduled }
