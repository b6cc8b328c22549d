// internal/state/game_state.go
package state

import (
	"go-bouncing-circles/internal/event"
)

var (
	_ State = (*UninitializedState)(nil)
	_ State = (*RunningState)(nil)
)

// UninitializedState holds zeroed buffers. Its first Update initialises the
// bodies and hands over to RunningState.
type UninitializedState struct {
	sm *StateMachine
}

func NewUninitializedState(sm *StateMachine) *UninitializedState {
	return &UninitializedState{sm: sm}
}

func (s *UninitializedState) Enter() {}

func (s *UninitializedState) Update(width, height float32) error {
	if err := s.sm.sim.Init(width, height); err != nil {
		return err
	}
	s.sm.reflections = 0
	s.sm.dispatcher.Dispatch(event.Event{Type: event.BodiesInitialized, Data: s.sm.sim.Store().Len()})
	s.sm.SetState(NewRunningState(s.sm))
	return nil
}

func (s *UninitializedState) Exit() {}

func (s *UninitializedState) Phase() Phase { return Uninitialized }

// RunningState steps the simulation once per Update.
type RunningState struct {
	sm *StateMachine
}

func NewRunningState(sm *StateMachine) *RunningState {
	return &RunningState{sm: sm}
}

func (s *RunningState) Enter() {}

func (s *RunningState) Update(width, height float32) error {
	stats, err := s.sm.sim.Step(width, height)
	if err != nil {
		return err
	}
	s.sm.frames++
	s.sm.reflections = stats.Reflections
	if stats.Reflections > 0 {
		s.sm.dispatcher.Dispatch(event.Event{Type: event.BoundaryReflected, Data: stats.Reflections})
	}
	return nil
}

func (s *RunningState) Exit() {}

func (s *RunningState) Phase() Phase { return Running }
