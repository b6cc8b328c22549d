// internal/event/types.go
package event

const (
	BodiesInitialized EventType = "BodiesInitialized" // Data: body count
	BoundaryReflected EventType = "BoundaryReflected" // Data: reflections in the frame
	SimulationPaused  EventType = "SimulationPaused"
	SimulationResumed EventType = "SimulationResumed"
)
