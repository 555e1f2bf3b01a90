package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// Board glyphs.
const (
	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

// BoardRenderer draws engine snapshots into a screen buffer framed by a
// border. Each board cell is cellWidth characters wide so the board looks
// square in a terminal.
type BoardRenderer struct {
	screen    *core.Screen
	cellWidth int
	frames    int
}

var _ engine.Renderer = (*BoardRenderer)(nil)

// NewBoardRenderer creates a renderer for a w x h board.
func NewBoardRenderer(w, h, cellWidth int) *BoardRenderer {
	cellWidth = max(cellWidth, 1)
	return &BoardRenderer{
		screen:    core.NewScreen(w*cellWidth+2, h+2),
		cellWidth: cellWidth,
	}
}

// Render draws s. A renderer without a screen draws nothing.
func (r *BoardRenderer) Render(s engine.Snapshot) {
	if r == nil || r.screen == nil {
		return
	}
	r.frames++

	r.screen.Clear()
	r.screen.DrawBox(core.NewRect(0, 0, r.screen.Width(), r.screen.Height()), core.ColorGray)

	r.drawCell(s.Food, glyphFood, core.ColorOrange)
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawCell(s.Snake[i], glyphHead, core.ColorBrightGreen)
		} else {
			r.drawCell(s.Snake[i], glyphBody, core.ColorGreen)
		}
	}
}

// drawCell paints one board cell; the glyph takes the first column.
func (r *BoardRenderer) drawCell(p core.Position, g rune, c core.Color) {
	x := 1 + p.X*r.cellWidth
	y := 1 + p.Y
	r.screen.SetColored(x, y, g, c)
	for i := 1; i < r.cellWidth; i++ {
		r.screen.SetColored(x+i, y, ' ', c)
	}
}

// Screen returns the underlying buffer.
func (r *BoardRenderer) Screen() *core.Screen {
	return r.screen
}

// Frames returns how many snapshots have been drawn.
func (r *BoardRenderer) Frames() int {
	return r.frames
}

// View returns the styled board.
func (r *BoardRenderer) View() string {
	if r == nil || r.screen == nil {
		return ""
	}
	return RenderScreen(r.screen)
}

// ViewWithLabel returns the styled board with text centered on its middle
// row. Text wider than the board is cut; the buffer is left untouched.
func (r *BoardRenderer) ViewWithLabel(text string, c core.Color) string {
	if r == nil || r.screen == nil {
		return ""
	}
	inner := r.screen.Width() - 2
	label := []rune(text)
	if len(label) > inner {
		label = label[:max(inner, 0)]
	}
	if len(label) == 0 {
		return r.View()
	}

	x := 1 + (inner-len(label))/2
	y := r.screen.Height() / 2
	saved := make([]core.Cell, len(label))
	for i := range saved {
		saved[i] = r.screen.GetCell(x+i, y)
	}

	r.screen.DrawText(x, y, string(label), c)
	out := RenderScreen(r.screen)
	for i, cell := range saved {
		r.screen.SetColored(x+i, y, cell.Rune, cell.Color)
	}
	return out
}

// stateLabel returns the board label shown while the game is not running.
func stateLabel(state engine.GameState) (string, core.Color) {
	switch state {
	case engine.StateReady:
		return " READY ", core.ColorBlue
	case engine.StatePaused:
		return " PAUSED ", core.ColorYellow
	case engine.StateGameOver:
		return " GAME OVER ", core.ColorYellow
	default:
		return "", core.ColorDefault
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
