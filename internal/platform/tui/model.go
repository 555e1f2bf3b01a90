package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	turboStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Options configures a game model.
type Options struct {
	Config config.SnakeConfig
	Store  *storage.Store // Optional; nil disables persistence
	Logger *log.Logger
	Seed   int64 // Zero picks a time-based seed
	Player string
}

// Model is the Bubble Tea model for one snake game.
type Model struct {
	engine *engine.Engine
	sched  *TickScheduler
	board  *BoardRenderer
	holds  *holdTracker
	keys   KeyMap
	help   help.Model
	cfg    config.SnakeConfig
	logger *log.Logger

	width    int
	height   int
	quitting bool
}

// NewModel creates a model with a fresh engine in the Ready state.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := opts.Config
	sched := NewTickScheduler()
	board := NewBoardRenderer(cfg.Board.Width, cfg.Board.Height, cfg.Board.CellWidth)

	engineOpts := []engine.Option{
		engine.WithScheduler(sched),
		engine.WithRenderer(board),
		engine.WithLogger(logger),
		engine.WithRand(rand.New(rand.NewSource(seed))),
	}
	if opts.Store != nil {
		gameID := storage.BoardKey(cfg.Board.Width, cfg.Board.Height)
		engineOpts = append(engineOpts,
			engine.WithPersistence(opts.Store.HighScoreSlot(gameID)),
			engine.WithGameOverHook(recordScore(opts.Store, gameID, opts.Player, logger)),
		)
	}

	return Model{
		engine: engine.New(cfg, engineOpts...),
		sched:  sched,
		board:  board,
		holds:  newHoldTracker(cfg.Input.ReleaseAfter()),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		cfg:    cfg,
		logger: logger,
	}
}

// recordScore appends finished games to the score history.
func recordScore(store *storage.Store, gameID, player string, logger *log.Logger) func(engine.Snapshot) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return func(s engine.Snapshot) {
		if s.Score <= 0 {
			return
		}
		_, err := store.SaveScore(storage.ScoreEntry{
			GameID:    gameID,
			SessionID: s.GameID,
			Player:    player,
			Score:     s.Score,
			Level:     s.Level,
			Length:    len(s.Snake),
		})
		if err != nil {
			logger.Warn("could not record score", "score", s.Score, "error", err)
		}
	}
}

// Engine returns the game engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Init initializes the model. The game waits in Ready for the confirm key.
func (m Model) Init() tea.Cmd {
	return m.sched.Flush()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case keyReleaseMsg:
		if m.holds.released(msg) {
			m.engine.KeyUp(msg.key)
		}
		return m, m.sched.Flush()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.sched.Handle(msg) {
		return m, m.sched.Flush()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.engine.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.holds.reset()
		m.engine.Restart()
		return m, m.sched.Flush()
	}

	k := normalizeKey(msg)
	m.engine.KeyDown(k)

	var release tea.Cmd
	if engine.IsMovementKey(k) && m.engine.State() == engine.StatePlaying {
		release = m.holds.press(k)
	} else if k == engine.KeyConfirm {
		m.holds.reset()
	}

	return m, tea.Batch(m.sched.Flush(), release)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.engine.Snapshot()
	boardW, boardH := m.board.Screen().Width(), m.board.Screen().Height()

	if m.width > 0 && m.height > 0 && (m.width < boardW || m.height < boardH+4) {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", boardW, boardH+4, m.width, m.height))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SNAKE"))
	b.WriteString("  ")
	b.WriteString(m.hud(s))
	b.WriteString("\n")
	b.WriteString(m.board.ViewWithLabel(stateLabel(s.State)))
	b.WriteString("\n")
	b.WriteString(m.banner(s))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	out := b.String()
	if m.width > 0 && m.height > 0 {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

func (m Model) hud(s engine.Snapshot) string {
	hud := hudStyle.Render(fmt.Sprintf("Score %d  Level %d  High %d", s.Score, s.Level, s.HighScore))
	if s.Turbo {
		hud += "  " + turboStyle.Render("TURBO")
	}
	return hud
}

func (m Model) banner(s engine.Snapshot) string {
	var text string
	switch s.State {
	case engine.StateReady:
		text = "Press SPACE to start"
	case engine.StatePaused:
		text = "PAUSED - SPACE to resume"
	case engine.StateGameOver:
		text = fmt.Sprintf("GAME OVER - score %d - SPACE to play again", s.Score)
	default:
		return dimStyle.Render(fmt.Sprintf("length %d  tick %s", len(s.Snake), s.Interval))
	}

	out := bannerStyle.Render(text)
	if m.engine.HighScoreCorrupt() {
		out += " " + warnStyle.Render("stored high score was unreadable")
	}
	return out
}

// Run starts the Bubble Tea program with a new game.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.engine.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
