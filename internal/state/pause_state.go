// internal/state/pause_state.go
package state

import "go-bouncing-circles/internal/event"

var _ State = (*PauseState)(nil)

// PauseState freezes the bodies. The render buffer and the last frame's
// bounce count keep their values until the machine leaves the state.
type PauseState struct {
	sm            *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.sm.dispatcher.Dispatch(event.Event{Type: event.SimulationPaused})
}

func (s *PauseState) Update(width, height float32) error {
	return nil
}

// Exit is silent; TogglePause sends SimulationResumed.
func (s *PauseState) Exit() {}

func (s *PauseState) Phase() Phase { return Paused }
