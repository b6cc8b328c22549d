// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth      = 1200
	ScreenHeight     = 900
	WindowTitle      = "Bouncing Circles"
	TargetFPS        = 60
	DefaultBodyCount = 1000

	BodyRadius     = 10.0 // every body gets this radius at init and keeps it
	VelocitySpread = 0.5  // velocities start in [-VelocitySpread, VelocitySpread)

	// Bodies per worker chunk when the step runs in parallel. Smaller stores
	// are stepped on the calling goroutine.
	MinBodiesPerWorker = 256

	// Terminal front end: world units covered by one character cell.
	CellWidth  = 8.0
	CellHeight = 16.0
	FrameMs    = 16 // ~60 FPS ticker

	// Bounce tone
	ToneFrequency  = 880.0
	ToneDurationMs = 30
	ToneCooldownMs = 120
	SampleRate     = 44100

	LogDir      = "logs"
	LogFileName = "bounce.log"

	PanelMargin     = 10
	PanelLineHeight = 16
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BodyColor       = color.RGBA{70, 130, 180, 220}
	BodyStrokeColor = color.RGBA{240, 240, 240, 255}
	PanelColor      = color.RGBA{0, 0, 0, 160}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PausedColor     = color.RGBA{220, 60, 60, 220}
	BodyPalette     = []color.RGBA{
		{255, 50, 50, 255},
		{50, 255, 50, 255},
		{50, 100, 255, 255},
		{180, 50, 230, 255},
		{255, 215, 0, 255},
	}
)
