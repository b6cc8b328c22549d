// internal/component/movement.go
package component

// Body is one circle as a plain value: position, fixed radius and velocity.
// Stores keep bodies flattened; this record is for logic and tests.
type Body struct {
	X, Y   float32
	Radius float32
	VX, VY float32
}
