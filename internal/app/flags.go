// internal/app/flags.go
package app

import (
	"flag"
	"os"

	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/utils"
)

// ParseFlags builds settings from defaults, an optional -config JSON file,
// and explicitly set flags, in that order of precedence.
func ParseFlags(fs *flag.FlagSet, args []string) (config.Settings, error) {
	def := config.DefaultSettings()

	path := fs.String("config", "", "JSON settings file")
	n := fs.Int("n", def.BodyCount, "number of bodies")
	width := fs.Float64("width", float64(def.Width), "viewport width")
	height := fs.Float64("height", float64(def.Height), "viewport height")
	seed := fs.Uint64("seed", def.Seed, "random seed, 0 for time based")
	workers := fs.Int("workers", def.Workers, "goroutines used per step")
	sound := fs.Bool("sound", def.Sound, "play a tone on bounces (terminal only)")
	stroke := fs.Bool("stroke", def.Stroke, "outline bodies (window front ends)")
	debug := fs.Bool("debug", def.Debug, "write a debug log to "+config.LogDir)

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	settings := def
	if *path != "" {
		loaded, err := config.LoadSettings(*path)
		if err != nil {
			return def, err
		}
		settings = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			settings.BodyCount = *n
		case "width":
			settings.Width = float32(*width)
		case "height":
			settings.Height = float32(*height)
		case "seed":
			settings.Seed = *seed
		case "workers":
			settings.Workers = *workers
		case "sound":
			settings.Sound = *sound
		case "stroke":
			settings.Stroke = *stroke
		case "debug":
			settings.Debug = *debug
		}
	})

	return settings, settings.Validate()
}

// SetupLogging sends the standard logger to the debug log file, or discards it.
func SetupLogging(debug bool) *os.File {
	return utils.SetupLogging(debug, config.LogDir, config.LogFileName)
}
