// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"go-bouncing-circles/internal/app"
	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/state"
	"go-bouncing-circles/internal/ui"
	"go-bouncing-circles/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppGame adapts a Simulation to ebiten. ebiten calls Update once per tick,
// which steps the simulation once, and Draw afterwards, which reads the buffer.
type AppGame struct {
	sim       *app.Simulation
	renderer  *ui.CircleRenderer
	infoPanel *ui.InfoPanel

	width, height int
}

func (a *AppGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.sim.StateMachine.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.sim.StateMachine.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		a.infoPanel.Toggle()
	}

	return a.sim.Update(float32(a.width), float32(a.height))
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.sim.RenderBuffer(), a.sim.StateMachine.Phase() == state.Paused)
	a.infoPanel.Draw(screen, a.sim.StateMachine, ebiten.ActualFPS())
}

// Layout follows the window size, so resizes change the viewport.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.width, a.height = outsideWidth, outsideHeight
	}
	return a.width, a.height
}

func main() {
	settings, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if settings.Debug {
		if f := app.SetupLogging(settings.Debug); f != nil {
			defer f.Close()
		}
	}

	sim, err := app.NewSimulation(settings)
	if err != nil {
		log.Fatal(err)
	}

	palette := render.Palette{Colors: config.BodyPalette, Fallback: config.BodyColor}
	game := &AppGame{
		sim:       sim,
		renderer:  ui.NewCircleRenderer(palette, settings.Stroke),
		infoPanel: ui.NewInfoPanel(nil, settings.BodyCount, sim.Rng.Seed()),
		width:     int(settings.Width),
		height:    int(settings.Height),
	}

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
