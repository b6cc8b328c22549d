// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const panelWidth = 220

// InfoPanel draws a small HUD in the top left corner.
type InfoPanel struct {
	IsVisible bool
	fontFace  font.Face
	bodies    int
	seed      uint64
}

// NewInfoPanel creates a visible panel. A nil face selects basicfont.
func NewInfoPanel(face font.Face, bodies int, seed uint64) *InfoPanel {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &InfoPanel{
		IsVisible: true,
		fontFace:  face,
		bodies:    bodies,
		seed:      seed,
	}
}

// Toggle shows or hides the panel.
func (p *InfoPanel) Toggle() {
	p.IsVisible = !p.IsVisible
}

// Lines returns the text rows shown for the given machine.
func (p *InfoPanel) Lines(sm *state.StateMachine, fps float64) []string {
	return []string{
		fmt.Sprintf("bodies: %d", p.bodies),
		fmt.Sprintf("phase:  %s", sm.Phase()),
		fmt.Sprintf("frame:  %d", sm.Frames()),
		fmt.Sprintf("bounce: %d", sm.Reflections()),
		fmt.Sprintf("fps:    %.1f", fps),
		fmt.Sprintf("seed:   %d", p.seed),
		"P pause  R reset  H hud  Esc quit",
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, sm *state.StateMachine, fps float64) {
	if !p.IsVisible {
		return
	}

	lines := p.Lines(sm, fps)
	h := float32(len(lines)*config.PanelLineHeight + config.PanelMargin)
	vector.DrawFilledRect(screen, config.PanelMargin/2, config.PanelMargin/2, panelWidth, h, config.PanelColor, false)

	var textColor color.Color = config.TextLightColor
	if sm.Phase() == state.Paused {
		textColor = config.PausedColor
	}
	for i, line := range lines {
		y := config.PanelMargin + (i+1)*config.PanelLineHeight - 4
		text.Draw(screen, line, p.fontFace, config.PanelMargin, y, textColor)
	}
}
