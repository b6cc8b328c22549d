// cmd/viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"go-bouncing-circles/internal/app"
	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/state"
	"go-bouncing-circles/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
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

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(settings.Width), int32(settings.Height), config.WindowTitle+" | P pause, R reset")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	palette := render.Palette{Colors: config.BodyPalette, Fallback: config.BodyColor}
	dimmed := palette.Dimmed()
	stroke := colorToRL(config.BodyStrokeColor)
	background := colorToRL(config.BackgroundColor)
	textColor := colorToRL(config.TextLightColor)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyP) {
			sim.StateMachine.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			sim.StateMachine.Reset()
		}

		w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
		if err := sim.Update(w, h); err != nil {
			log.Printf("update: %v", err)
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(background)
		p := palette
		if sim.StateMachine.Phase() == state.Paused {
			p = dimmed
		}
		render.EachCircle(sim.RenderBuffer(), func(i int, c render.Circle) {
			center := rl.NewVector2(c.X, c.Y)
			rl.DrawCircleV(center, c.Radius, colorToRL(p.BodyColor(i)))
			if settings.Stroke {
				rl.DrawCircleLines(int32(c.X), int32(c.Y), c.Radius, stroke)
			}
		})
		status := fmt.Sprintf("%s  frame %d  bounce %d", sim.StateMachine.Phase(), sim.StateMachine.Frames(), sim.StateMachine.Reflections())
		rl.DrawText(status, config.PanelMargin, config.PanelMargin, 20, textColor)
		rl.DrawFPS(config.PanelMargin, config.PanelMargin+24)
		rl.EndDrawing()
	}
}
