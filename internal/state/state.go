// internal/state/state.go
package state

import (
	"go-bouncing-circles/internal/entity"
	"go-bouncing-circles/internal/event"
	"go-bouncing-circles/internal/system"
)

// Simulator is what the states drive.
type Simulator interface {
	Init(width, height float32) error
	Step(width, height float32) (system.StepStats, error)
	Store() *entity.Store
}

// State is one phase of the simulation lifecycle.
type State interface {
	Enter()
	Update(width, height float32) error
	Exit()
	Phase() Phase
}

// Phase identifies the current state.
type Phase int

const (
	Uninitialized Phase = iota
	Running
	Paused
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// StateMachine drives a Simulator once per frame. It guarantees that Init
// runs before the first Step and that Step runs at most once per Update.
type StateMachine struct {
	current    State
	sim        Simulator
	dispatcher *event.Dispatcher

	frames      uint64
	reflections int // last frame
}

// NewStateMachine creates a machine in the Uninitialized state.
func NewStateMachine(sim Simulator, dispatcher *event.Dispatcher) *StateMachine {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	sm := &StateMachine{sim: sim, dispatcher: dispatcher}
	sm.SetState(NewUninitializedState(sm))
	return sm
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update advances the current state by one frame for the given viewport.
func (sm *StateMachine) Update(width, height float32) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(width, height)
}

// Phase reports the current phase.
func (sm *StateMachine) Phase() Phase {
	if sm.current == nil {
		return Uninitialized
	}
	return sm.current.Phase()
}

// TogglePause switches between Running and Paused. It does nothing before
// the first Init.
func (sm *StateMachine) TogglePause() {
	switch s := sm.current.(type) {
	case *RunningState:
		sm.SetState(NewPauseState(sm, s))
	case *PauseState:
		sm.SetState(s.previousState)
		sm.dispatcher.Dispatch(event.Event{Type: event.SimulationResumed})
	}
}

// Reset returns to Uninitialized; the next Update redraws random state.
// Resetting from Paused does not announce a resume.
func (sm *StateMachine) Reset() {
	sm.SetState(NewUninitializedState(sm))
}

// Frames is the number of steps taken since the machine was created.
func (sm *StateMachine) Frames() uint64 {
	return sm.frames
}

// Reflections is the number of bounces in the last step.
func (sm *StateMachine) Reflections() int {
	return sm.reflections
}

// Dispatcher returns the dispatcher events are sent to.
func (sm *StateMachine) Dispatcher() *event.Dispatcher {
	return sm.dispatcher
}
