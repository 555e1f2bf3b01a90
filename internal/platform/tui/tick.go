// Package tui runs the snake engine inside a Bubble Tea program, locally or
// over SSH. It maps terminal keys to engine keys, drives engine timers with
// tea.Tick and draws snapshots with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// scheduledTickMsg fires one period of a scheduled engine timer.
type scheduledTickMsg struct {
	handle engine.Handle
}

type tickEntry struct {
	fn    func()
	every time.Duration
}

// TickScheduler is an engine.Scheduler backed by tea.Tick. Callbacks run on
// the Update goroutine when their tick message arrives; commands produced by
// Schedule are collected and handed back to Bubble Tea by Flush.
type TickScheduler struct {
	next    engine.Handle
	live    map[engine.Handle]tickEntry
	pending []tea.Cmd
}

var _ engine.Scheduler = (*TickScheduler)(nil)

// NewTickScheduler creates an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{live: make(map[engine.Handle]tickEntry)}
}

// Schedule arms fn to run every interval.
func (s *TickScheduler) Schedule(fn func(), every time.Duration) engine.Handle {
	s.next++
	s.live[s.next] = tickEntry{fn: fn, every: every}
	s.pending = append(s.pending, tickCmd(s.next, every))
	return s.next
}

// Cancel disarms h; its in-flight tick is dropped on arrival.
func (s *TickScheduler) Cancel(h engine.Handle) {
	delete(s.live, h)
}

// Handle runs the callback for a scheduler tick message and re-arms it.
// It reports whether msg belonged to the scheduler.
func (s *TickScheduler) Handle(msg tea.Msg) bool {
	tick, ok := msg.(scheduledTickMsg)
	if !ok {
		return false
	}

	entry, live := s.live[tick.handle]
	if !live {
		return true
	}
	entry.fn()

	// The callback may have cancelled or replaced its own timer.
	if _, still := s.live[tick.handle]; still {
		s.pending = append(s.pending, tickCmd(tick.handle, entry.every))
	}
	return true
}

// Flush returns the commands queued since the last call, batched.
func (s *TickScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of live timers.
func (s *TickScheduler) Active() int {
	return len(s.live)
}

func tickCmd(h engine.Handle, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return scheduledTickMsg{handle: h}
	})
}
