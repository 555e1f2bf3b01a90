package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{Config: config.DefaultSnakeConfig(), Seed: 1})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return out
}

func liveHandle(t *testing.T, s *TickScheduler) engine.Handle {
	t.Helper()
	if len(s.live) != 1 {
		t.Fatalf("%d live timers, want 1", len(s.live))
	}
	for h := range s.live {
		return h
	}
	return 0
}

func TestModelStartsReady(t *testing.T) {
	m := newTestModel(t)

	if m.Engine().State() != engine.StateReady {
		t.Errorf("State() = %v, want ready", m.Engine().State())
	}
	if m.Init() != nil {
		t.Error("Init() armed a timer before start")
	}
	if m.board.Frames() != 1 {
		t.Errorf("board drew %d frames, want 1", m.board.Frames())
	}
	if !strings.Contains(m.View(), "Press SPACE to start") || !strings.Contains(m.View(), "READY") {
		t.Error("View() missing the start banner")
	}
}

func TestModelSpaceStartsAndTicks(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, space)

	if m.Engine().State() != engine.StatePlaying {
		t.Fatalf("State() = %v, want playing", m.Engine().State())
	}

	head := m.Engine().Snake()[0]
	m = send(t, m, scheduledTickMsg{handle: liveHandle(t, m.sched)})

	if got := m.Engine().Snake()[0]; got != head.Move(core.DirUp, 1) {
		t.Errorf("head = %v after a tick, want one cell up from %v", got, head)
	}
}

func TestModelHoldEngagesTurbo(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, space)

	m = send(t, m, runes("a"))
	if !m.Engine().Turbo() {
		t.Fatal("turbo off after pressing a movement key")
	}
	first := keyReleaseMsg{key: "a", seq: m.holds.seq["a"]}

	// Auto-repeat keeps the key held.
	m = send(t, m, runes("a"))
	m = send(t, m, first)
	if !m.Engine().Turbo() {
		t.Fatal("stale release dropped turbo")
	}

	m = send(t, m, keyReleaseMsg{key: "a", seq: m.holds.seq["a"]})
	if m.Engine().Turbo() {
		t.Error("turbo still on after release")
	}
	if m.Engine().PendingDirection() != core.DirLeft {
		t.Errorf("pending = %v, want left", m.Engine().PendingDirection())
	}
}

func TestModelArrowKeysSteer(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, space)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.Engine().PendingDirection() != core.DirRight {
		t.Errorf("pending = %v, want right", m.Engine().PendingDirection())
	}
}

func TestModelPauseAndRestart(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, space)
	m = send(t, m, space)

	if m.Engine().State() != engine.StatePaused {
		t.Fatalf("State() = %v, want paused", m.Engine().State())
	}
	if m.sched.Active() != 0 {
		t.Errorf("Active() = %d while paused, want 0", m.sched.Active())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() missing the pause banner")
	}

	m = send(t, m, runes("r"))
	if m.Engine().State() != engine.StatePlaying || m.sched.Active() != 1 {
		t.Errorf("after restart: state %v, %d timers", m.Engine().State(), m.sched.Active())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, space)

	next, cmd := m.Update(runes("q"))
	m = next.(Model)

	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit did not return tea.Quit")
	}
	if m.sched.Active() != 0 {
		t.Errorf("Active() = %d after quit, want 0", m.sched.Active())
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() missing the size warning")
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() warns on a large terminal")
	}
}

func TestRecordScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	hook := recordScore(store, "snake-20x20", "ann", nil)
	hook(engine.Snapshot{GameID: "g1", Score: 0})
	hook(engine.Snapshot{GameID: "g2", Score: 60, Level: 2, Snake: make([]core.Position, 9)})

	scores, err := store.TopScores("snake-20x20", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.SessionID != "g2" || got.Player != "ann" || got.Score != 60 || got.Level != 2 || got.Length != 9 {
		t.Errorf("entry = %+v", got)
	}
}

func TestModelWithStoreLoadsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.HighScoreSlot(storage.BoardKey(20, 20)).Save(90)

	m := NewModel(Options{Config: config.DefaultSnakeConfig(), Store: store, Seed: 1})

	if m.Engine().HighScore() != 90 {
		t.Errorf("HighScore() = %d, want 90", m.Engine().HighScore())
	}
	if !strings.Contains(m.View(), "High 90") {
		t.Error("View() missing the high score")
	}
}
