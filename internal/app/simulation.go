// internal/app/simulation.go
package app

import (
	"fmt"
	"log"

	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/entity"
	"go-bouncing-circles/internal/event"
	"go-bouncing-circles/internal/state"
	"go-bouncing-circles/internal/system"
	"go-bouncing-circles/internal/utils"
)

// Simulation bundles the pieces every front end needs: the store, the
// movement system, and the state machine driving them.
type Simulation struct {
	Settings        config.Settings
	Store           *entity.Store
	MovementSystem  *system.MovementSystem
	StateMachine    *state.StateMachine
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	sound   event.Listener
	soundOn bool
}

// NewSimulation validates settings and wires a simulation. Nothing is
// initialised until the first Update.
func NewSimulation(settings config.Settings) (*Simulation, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	store, err := entity.NewStore(settings.BodyCount)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	rng := utils.NewPRNGService(settings.Seed)
	movement := system.NewMovementSystem(store, rng, system.WithWorkers(settings.Workers))

	dispatcher := event.NewDispatcher()
	logListener := event.LogListener{}
	dispatcher.Subscribe(event.BodiesInitialized, logListener)
	dispatcher.Subscribe(event.SimulationPaused, logListener)
	dispatcher.Subscribe(event.SimulationResumed, logListener)

	log.Printf("simulation: %d bodies, seed %d, %d workers", settings.BodyCount, rng.Seed(), settings.Workers)

	return &Simulation{
		Settings:        settings,
		Store:           store,
		MovementSystem:  movement,
		StateMachine:    state.NewStateMachine(movement, dispatcher),
		EventDispatcher: dispatcher,
		Rng:             rng,
	}, nil
}

// Update runs one frame for a viewport of width x height.
func (s *Simulation) Update(width, height float32) error {
	return s.StateMachine.Update(width, height)
}

// RenderBuffer is the packed [x, y, r] buffer to draw after Update.
func (s *Simulation) RenderBuffer() []float32 {
	return s.Store.RenderBuffer()
}

// AttachSound subscribes l to bounce events and enables it. A previously
// attached listener is detached first.
func (s *Simulation) AttachSound(l event.Listener) {
	if s.soundOn {
		s.EventDispatcher.Unsubscribe(event.BoundaryReflected, s.sound)
	}
	s.sound = l
	s.soundOn = l != nil
	if s.soundOn {
		s.EventDispatcher.Subscribe(event.BoundaryReflected, l)
	}
}

// ToggleSound mutes or unmutes the attached listener and reports whether it
// is now enabled. Without a listener it does nothing and returns false.
func (s *Simulation) ToggleSound() bool {
	if s.sound == nil {
		return false
	}
	if s.soundOn {
		s.EventDispatcher.Unsubscribe(event.BoundaryReflected, s.sound)
	} else {
		s.EventDispatcher.Subscribe(event.BoundaryReflected, s.sound)
	}
	s.soundOn = !s.soundOn
	log.Printf("sound enabled: %v", s.soundOn)
	return s.soundOn
}

// SoundOn reports whether a bounce listener is attached and enabled.
func (s *Simulation) SoundOn() bool {
	return s.soundOn
}
