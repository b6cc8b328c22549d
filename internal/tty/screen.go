// internal/tty/screen.go

// Package tty draws the packed body buffer on a terminal with tcell.
package tty

import (
	"fmt"

	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/state"
	"go-bouncing-circles/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const bodyRune = '●'

// Screen maps world coordinates onto character cells. One cell covers
// CellWidth x CellHeight world units; the bottom row is the status line.
type Screen struct {
	screen tcell.Screen
	styles []tcell.Style
	dimmed []tcell.Style // paused
}

func NewScreen(screen tcell.Screen, palette render.Palette) *Screen {
	return &Screen{
		screen: screen,
		styles: paletteStyles(palette),
		dimmed: paletteStyles(palette.Dimmed()),
	}
}

func paletteStyles(p render.Palette) []tcell.Style {
	styles := make([]tcell.Style, len(p.Colors))
	for i, c := range p.Colors {
		styles[i] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return styles
}

// Viewport returns the world size covered by the drawable rows.
func (s *Screen) Viewport() (width, height float32) {
	cols, rows := s.screen.Size()
	return ViewportFor(cols, rows)
}

// ViewportFor converts a terminal size to world units, leaving one row for
// the status line. The result is at least one cell in each direction.
func ViewportFor(cols, rows int) (width, height float32) {
	cols = max(cols, 1)
	rows = max(rows-1, 1)
	return float32(cols) * config.CellWidth, float32(rows) * config.CellHeight
}

// CellFor returns the cell containing world point (x, y). ok is false for
// points outside the cols x rows field, which happens for one frame after a
// bounce since positions are not clamped.
func CellFor(x, y float32, cols, rows int) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(x / config.CellWidth)
	row = int(y / config.CellHeight)
	if col >= cols || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

func (s *Screen) style(i int, paused bool) tcell.Style {
	styles := s.styles
	if paused {
		styles = s.dimmed
	}
	if len(styles) == 0 {
		return tcell.StyleDefault
	}
	return styles[i%len(styles)]
}

// Draw renders buf and a status line for sm, then shows the frame.
func (s *Screen) Draw(buf []float32, sm *state.StateMachine) {
	s.screen.Clear()
	cols, rows := s.screen.Size()
	field := max(rows-1, 1)
	paused := sm.Phase() == state.Paused

	render.EachCircle(buf, func(i int, c render.Circle) {
		if col, row, ok := CellFor(c.X, c.Y, cols, field); ok {
			s.screen.SetContent(col, row, bodyRune, nil, s.style(i, paused))
		}
	})

	status := fmt.Sprintf(" %s | frame %d | bounce %d | p pause  r reset  s sound  q quit", sm.Phase(), sm.Frames(), sm.Reflections())
	statusStyle := tcell.StyleDefault.Reverse(true)
	if paused {
		statusStyle = statusStyle.Foreground(tcell.ColorRed)
	}
	for x, r := range []rune(status) {
		if x >= cols {
			break
		}
		s.screen.SetContent(x, rows-1, r, nil, statusStyle)
	}

	s.screen.Show()
}
