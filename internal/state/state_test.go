package state

import (
	"errors"
	"testing"

	"go-bouncing-circles/internal/entity"
	"go-bouncing-circles/internal/event"
	"go-bouncing-circles/internal/system"
)

// fakeSim records calls in order.
type fakeSim struct {
	store       *entity.Store
	calls       []string
	reflections int
	err         error
}

func (f *fakeSim) Init(width, height float32) error {
	f.calls = append(f.calls, "init")
	return f.err
}

func (f *fakeSim) Step(width, height float32) (system.StepStats, error) {
	f.calls = append(f.calls, "step")
	return system.StepStats{Reflections: f.reflections}, f.err
}

func (f *fakeSim) Store() *entity.Store { return f.store }

func newFake(t *testing.T) *fakeSim {
	t.Helper()
	store, err := entity.NewStore(3)
	if err != nil {
		t.Fatal(err)
	}
	return &fakeSim{store: store}
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStateMachine_InitOnceThenStep(t *testing.T) {
	sim := newFake(t)
	sm := NewStateMachine(sim, nil)

	if sm.Phase() != Uninitialized {
		t.Fatalf("initial phase = %s", sm.Phase())
	}

	for i := 0; i < 4; i++ {
		if err := sm.Update(100, 100); err != nil {
			t.Fatalf("Update %d: %v", i, err)
		}
	}

	want := []string{"init", "step", "step", "step"}
	if !equalStrings(sim.calls, want) {
		t.Errorf("calls = %v, want %v", sim.calls, want)
	}
	if sm.Phase() != Running {
		t.Errorf("phase = %s, want running", sm.Phase())
	}
	if sm.Frames() != 3 {
		t.Errorf("Frames = %d, want 3", sm.Frames())
	}
}

func TestStateMachine_PauseStopsStepping(t *testing.T) {
	sim := newFake(t)
	sm := NewStateMachine(sim, nil)

	sm.TogglePause() // ignored before init
	if sm.Phase() != Uninitialized {
		t.Fatalf("TogglePause before init changed phase to %s", sm.Phase())
	}

	sm.Update(100, 100)
	sm.TogglePause()
	if sm.Phase() != Paused {
		t.Fatalf("phase = %s, want paused", sm.Phase())
	}
	sm.Update(100, 100)
	sm.Update(100, 100)

	sm.TogglePause()
	if sm.Phase() != Running {
		t.Fatalf("phase = %s, want running", sm.Phase())
	}
	sm.Update(100, 100)

	want := []string{"init", "step"}
	if !equalStrings(sim.calls, want) {
		t.Errorf("calls = %v, want %v", sim.calls, want)
	}
}

func TestStateMachine_ResetReinitialises(t *testing.T) {
	sim := newFake(t)
	sm := NewStateMachine(sim, nil)

	sm.Update(100, 100)
	sm.Update(100, 100)
	sm.Reset()
	if sm.Phase() != Uninitialized {
		t.Fatalf("phase after Reset = %s", sm.Phase())
	}
	sm.Update(100, 100)
	sm.Update(100, 100)

	want := []string{"init", "step", "init", "step"}
	if !equalStrings(sim.calls, want) {
		t.Errorf("calls = %v, want %v", sim.calls, want)
	}
}

func TestStateMachine_Events(t *testing.T) {
	sim := newFake(t)
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, et := range []event.EventType{event.BodiesInitialized, event.BoundaryReflected, event.SimulationPaused, event.SimulationResumed} {
		d.Subscribe(et, rec)
	}
	sm := NewStateMachine(sim, d)

	sm.Update(10, 10) // init
	sm.Update(10, 10) // step, no bounce
	sim.reflections = 4
	sm.Update(10, 10) // step with bounces
	sm.TogglePause()
	if sm.Reflections() != 4 {
		t.Errorf("Reflections while paused = %d, want 4", sm.Reflections())
	}
	sm.TogglePause()

	want := []event.EventType{event.BodiesInitialized, event.BoundaryReflected, event.SimulationPaused, event.SimulationResumed}
	got := rec.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
	if n, ok := rec.events[0].Data.(int); !ok || n != 3 {
		t.Errorf("BodiesInitialized data = %v, want 3", rec.events[0].Data)
	}
	if n, ok := rec.events[1].Data.(int); !ok || n != 4 {
		t.Errorf("BoundaryReflected data = %v, want 4", rec.events[1].Data)
	}
	if sm.Reflections() != 4 {
		t.Errorf("Reflections = %d, want 4", sm.Reflections())
	}
}

func TestStateMachine_ResetFromPaused(t *testing.T) {
	sim := newFake(t)
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.SimulationPaused, rec)
	d.Subscribe(event.SimulationResumed, rec)
	sm := NewStateMachine(sim, d)

	sm.Update(10, 10)
	sm.TogglePause()
	sm.Reset()
	if sm.Phase() != Uninitialized {
		t.Fatalf("phase after Reset = %s", sm.Phase())
	}

	got := rec.types()
	if len(got) != 1 || got[0] != event.SimulationPaused {
		t.Errorf("events = %v, want only %v", got, event.SimulationPaused)
	}

	// TogglePause after the reset is ignored until the next Init.
	sm.TogglePause()
	if len(rec.events) != 1 {
		t.Errorf("TogglePause after Reset sent %v", rec.types()[1:])
	}
}

func TestStateMachine_InitErrorKeepsUninitialized(t *testing.T) {
	sim := newFake(t)
	sim.err = entity.ErrInvalidArgument
	sm := NewStateMachine(sim, nil)

	if err := sm.Update(0, 100); !errors.Is(err, entity.ErrInvalidArgument) {
		t.Fatalf("Update error = %v", err)
	}
	if sm.Phase() != Uninitialized {
		t.Errorf("phase = %s, want uninitialized", sm.Phase())
	}

	sim.err = nil
	if err := sm.Update(100, 100); err != nil {
		t.Fatal(err)
	}
	if sm.Phase() != Running {
		t.Errorf("phase = %s, want running", sm.Phase())
	}
}

func TestStateMachine_WithMovementSystem(t *testing.T) {
	store, _ := entity.NewStore(5)
	rng := &constSource{v: 0.5}
	sm := NewStateMachine(system.NewMovementSystem(store, rng), nil)

	sm.Update(200, 100)
	for _, b := range store.Bodies() {
		if b.X != 100 || b.Y != 50 || b.VX != 0 || b.VY != 0 {
			t.Fatalf("after init body = %+v", b)
		}
	}
	sm.Update(200, 100)
	if sm.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", sm.Frames())
	}
}

type constSource struct{ v float32 }

func (c *constSource) Float32() float32 { return c.v }

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{Uninitialized: "uninitialized", Running: "running", Paused: "paused", Phase(9): "unknown"} {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), p.String(), want)
		}
	}
}
