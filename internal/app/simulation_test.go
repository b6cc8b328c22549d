package app

import (
	"testing"

	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/event"
)

type bounceCounter struct{ n int }

func (c *bounceCounter) OnEvent(e event.Event) { c.n++ }

func TestSimulation_ToggleSound(t *testing.T) {
	sim, err := NewSimulation(config.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if sim.ToggleSound() {
		t.Fatal("ToggleSound without a listener reported enabled")
	}

	c := &bounceCounter{}
	sim.AttachSound(c)
	if !sim.SoundOn() {
		t.Fatal("AttachSound did not enable sound")
	}

	bounce := event.Event{Type: event.BoundaryReflected, Data: 1}
	sim.EventDispatcher.Dispatch(bounce)
	if c.n != 1 {
		t.Fatalf("count = %d, want 1", c.n)
	}

	if sim.ToggleSound() {
		t.Fatal("first toggle should mute")
	}
	sim.EventDispatcher.Dispatch(bounce)
	if c.n != 1 {
		t.Errorf("muted listener received an event, count = %d", c.n)
	}

	if !sim.ToggleSound() {
		t.Fatal("second toggle should unmute")
	}
	sim.EventDispatcher.Dispatch(bounce)
	if c.n != 2 {
		t.Errorf("count = %d, want 2", c.n)
	}
}

func TestSimulation_AttachSoundReplaces(t *testing.T) {
	sim, err := NewSimulation(config.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	a, b := &bounceCounter{}, &bounceCounter{}
	sim.AttachSound(a)
	sim.AttachSound(b)

	sim.EventDispatcher.Dispatch(event.Event{Type: event.BoundaryReflected, Data: 1})
	if a.n != 0 || b.n != 1 {
		t.Errorf("counts = %d, %d, want 0, 1", a.n, b.n)
	}
}
