// internal/ui/circle_renderer.go
package ui

import (
	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CircleRenderer draws a packed render buffer with ebiten.
type CircleRenderer struct {
	palette render.Palette
	dimmed  render.Palette
	stroke  bool
}

// NewCircleRenderer creates a renderer. With stroke set every body gets an
// outline in config.BodyStrokeColor.
func NewCircleRenderer(palette render.Palette, stroke bool) *CircleRenderer {
	return &CircleRenderer{palette: palette, dimmed: palette.Dimmed(), stroke: stroke}
}

// Draw renders every [x, y, r] triple of buf. buf is only read. Paused
// frames use the dimmed palette.
func (r *CircleRenderer) Draw(screen *ebiten.Image, buf []float32, paused bool) {
	screen.Fill(config.BackgroundColor)

	palette := r.palette
	if paused {
		palette = r.dimmed
	}
	render.EachCircle(buf, func(i int, c render.Circle) {
		if r.stroke {
			vector.DrawFilledCircle(screen, c.X, c.Y, c.Radius+1, config.BodyStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, c.X, c.Y, c.Radius, palette.BodyColor(i), true)
	})
}
