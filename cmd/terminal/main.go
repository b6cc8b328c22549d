// cmd/terminal/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"go-bouncing-circles/internal/app"
	"go-bouncing-circles/internal/audio"
	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/tty"
	"go-bouncing-circles/pkg/render"

	"github.com/gdamore/tcell/v2"
)

func main() {
	settings, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// The terminal belongs to tcell; the log goes to a file or nowhere.
	if f := app.SetupLogging(settings.Debug); f != nil {
		defer f.Close()
	}

	sim, err := app.NewSimulation(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	if settings.Sound {
		player, err := audio.NewTonePlayer()
		if err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer player.Close()
			sim.AttachSound(player)
		}
	}

	view := tty.NewScreen(screen, render.Palette{Colors: config.BodyPalette, Fallback: config.BodyColor})
	runErr := tty.Run(screen, view, sim)
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		os.Exit(1)
	}
}
