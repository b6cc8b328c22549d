// internal/tty/loop.go
package tty

import (
	"time"

	"go-bouncing-circles/internal/app"
	"go-bouncing-circles/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Run drives sim from a ticker until the user quits or an update fails.
// Input is read on its own goroutine and handed over on a channel, so all
// simulation and drawing stays on the calling goroutine.
func Run(screen tcell.Screen, view *Screen, sim *app.Simulation) error {
	ticker := time.NewTicker(config.FrameMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !HandleEvent(ev, screen, sim) {
				return nil
			}

		case <-ticker.C:
			w, h := view.Viewport()
			if err := sim.Update(w, h); err != nil {
				return err
			}
			view.Draw(sim.RenderBuffer(), sim.StateMachine)
		}
	}
}

// HandleEvent applies one input event. It returns false when the user quits.
func HandleEvent(ev tcell.Event, screen tcell.Screen, sim *app.Simulation) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p', ' ':
				sim.StateMachine.TogglePause()
			case 'r':
				sim.StateMachine.Reset()
			case 's':
				sim.ToggleSound()
			}
		}

	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
