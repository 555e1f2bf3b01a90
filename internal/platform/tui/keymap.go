package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// KeyMap defines the key bindings shown in the help line.
// Movement and confirm keys are forwarded to the engine, which owns their
// meaning; Restart and Quit are handled by the model.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// normalizeKey translates a Bubble Tea key to the engine's key names.
// Keys without an engine meaning pass through unchanged; the engine ignores
// them.
func normalizeKey(msg tea.KeyMsg) string {
	switch k := msg.String(); k {
	case "up":
		return engine.KeyArrowUp
	case "down":
		return engine.KeyArrowDown
	case "left":
		return engine.KeyArrowLeft
	case "right":
		return engine.KeyArrowRight
	default:
		return k
	}
}

// keyReleaseMsg reports that a held key has gone quiet.
type keyReleaseMsg struct {
	key string
	seq uint64
}

// holdTracker synthesizes key releases. Terminals only report presses and
// auto-repeats, so a key counts as released once no press for it has arrived
// within the release window.
type holdTracker struct {
	after   time.Duration
	counter uint64
	seq     map[string]uint64 // Latest press per key
}

func newHoldTracker(after time.Duration) *holdTracker {
	return &holdTracker{after: after, seq: make(map[string]uint64)}
}

// press records a press of key and returns the command that will report its
// release.
func (h *holdTracker) press(key string) tea.Cmd {
	h.counter++
	h.seq[key] = h.counter
	msg := keyReleaseMsg{key: key, seq: h.counter}
	return tea.Tick(h.after, func(time.Time) tea.Msg {
		return msg
	})
}

// released reports whether msg is the release for the latest press of its
// key. Stale releases, superseded by a later repeat, return false.
func (h *holdTracker) released(msg keyReleaseMsg) bool {
	if cur, ok := h.seq[msg.key]; !ok || cur != msg.seq {
		return false
	}
	delete(h.seq, msg.key)
	return true
}

// held returns the number of keys awaiting release.
func (h *holdTracker) held() int {
	return len(h.seq)
}

func (h *holdTracker) reset() {
	clear(h.seq)
}
