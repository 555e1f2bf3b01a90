package clock

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func TestManualFiresAtInterval(t *testing.T) {
	m := NewManual()
	n := 0
	m.Schedule(func() { n++ }, 100*time.Millisecond)

	tests := []struct {
		advance time.Duration
		want    int
	}{
		{50 * time.Millisecond, 0},
		{50 * time.Millisecond, 1},
		{250 * time.Millisecond, 3},
		{0, 3},
	}
	for i, tt := range tests {
		m.Advance(tt.advance)
		if n != tt.want {
			t.Errorf("step %d: fired %d times, want %d", i, n, tt.want)
		}
	}
	if m.Now() != 350*time.Millisecond {
		t.Errorf("Now() = %v, want 350ms", m.Now())
	}
}

func TestManualDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.Schedule(func() { order = append(order, "slow") }, 30*time.Millisecond)
	m.Schedule(func() { order = append(order, "fast") }, 20*time.Millisecond)

	m.Advance(60 * time.Millisecond)

	// fast@20, slow@30, fast@40, then a tie at 60 goes to the older timer.
	want := []string{"fast", "slow", "fast", "slow", "fast"}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	n := 0
	h := m.Schedule(func() { n++ }, 10*time.Millisecond)
	m.Advance(10 * time.Millisecond)
	m.Cancel(h)
	m.Cancel(h)
	m.Cancel(0)
	m.Advance(100 * time.Millisecond)

	if n != 1 {
		t.Errorf("fired %d times, want 1", n)
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d, want 0", m.Active())
	}
}

func TestManualRescheduleFromCallback(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	var h engine.Handle
	h = m.Schedule(func() {
		at = append(at, m.Now())
		m.Cancel(h)
		h = m.Schedule(func() { at = append(at, m.Now()) }, 5*time.Millisecond)
	}, 10*time.Millisecond)

	fired := m.Advance(20 * time.Millisecond)

	want := []time.Duration{10 * time.Millisecond, 15 * time.Millisecond, 20 * time.Millisecond}
	if !slices.Equal(at, want) {
		t.Errorf("fired at %v, want %v", at, want)
	}
	if fired != 3 {
		t.Errorf("Advance() = %d, want 3", fired)
	}
	if m.Active() != 1 || m.Scheduled() != 2 {
		t.Errorf("Active/Scheduled = %d/%d, want 1/2", m.Active(), m.Scheduled())
	}
}

func TestManualClampsInterval(t *testing.T) {
	m := NewManual()
	n := 0
	m.Schedule(func() { n++ }, 0)

	m.Advance(5 * time.Millisecond)

	if n != 5 {
		t.Errorf("fired %d times, want 5", n)
	}
}

func TestManualNegativeAdvance(t *testing.T) {
	m := NewManual()
	m.Advance(10 * time.Millisecond)
	m.Advance(-time.Second)
	if m.Now() != 10*time.Millisecond {
		t.Errorf("Now() = %v, want 10ms", m.Now())
	}
}

func TestManualDrivesEngine(t *testing.T) {
	m := NewManual()
	e := engine.New(config.DefaultSnakeConfig(),
		engine.WithScheduler(m),
		engine.WithRand(rand.New(rand.NewSource(1))),
	)
	e.Confirm()

	m.Advance(600 * time.Millisecond)

	head := e.Snake()[0]
	if head.X != 10 || head.Y != 7 {
		t.Errorf("head = %v after 3 ticks, want (10,7)", head)
	}
	if m.Active() != 1 {
		t.Errorf("Active() = %d while playing, want 1", m.Active())
	}

	e.KeyDown("d")
	m.Advance(100 * time.Millisecond)
	if got := e.Snake()[0]; got.X != 11 || got.Y != 7 {
		t.Errorf("head = %v after a turbo tick, want (11,7)", got)
	}

	e.Confirm()
	if m.Active() != 0 {
		t.Errorf("Active() = %d while paused, want 0", m.Active())
	}
}
