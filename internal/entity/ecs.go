// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"

	"go-bouncing-circles/internal/component"
)

const (
	// RenderStride is the number of floats per body in the render buffer: x, y, radius.
	RenderStride = 3
	// VelocityStride is the number of floats per body in the velocity buffer: vx, vy.
	VelocityStride = 2
)

// ErrInvalidArgument is returned for a non-positive body count or viewport dimension.
var ErrInvalidArgument = errors.New("invalid argument")

// Store owns the flat per-body buffers.
//
// The render buffer is laid out as [x0,y0,r0, x1,y1,r1, ...] and is handed to
// renderers as is. The velocity buffer [vx0,vy0, vx1,vy1, ...] never leaves
// the simulation. Both are allocated once and keep their length and order for
// the lifetime of the store.
type Store struct {
	count    int
	render   []float32
	velocity []float32
}

// NewStore allocates zeroed buffers for bodyCount bodies.
func NewStore(bodyCount int) (*Store, error) {
	if bodyCount <= 0 {
		return nil, fmt.Errorf("%w: body count must be positive, got %d", ErrInvalidArgument, bodyCount)
	}
	return &Store{
		count:    bodyCount,
		render:   make([]float32, RenderStride*bodyCount),
		velocity: make([]float32, VelocityStride*bodyCount),
	}, nil
}

// Len returns the fixed number of bodies.
func (s *Store) Len() int {
	return s.count
}

// RenderBuffer returns the renderer-facing buffer. Callers must treat it as
// read-only between a step and the end of the frame.
func (s *Store) RenderBuffer() []float32 {
	return s.render
}

// VelocityBuffer returns the internal velocity buffer.
func (s *Store) VelocityBuffer() []float32 {
	return s.velocity
}

// RenderIndex is the offset of body i in the render buffer.
func RenderIndex(i int) int {
	return RenderStride * i
}

// VelocityIndex is the offset of body i in the velocity buffer.
func VelocityIndex(i int) int {
	return VelocityStride * i
}

// Body reads body i out of the flat buffers.
func (s *Store) Body(i int) component.Body {
	ri, vi := RenderIndex(i), VelocityIndex(i)
	return component.Body{
		X:      s.render[ri],
		Y:      s.render[ri+1],
		Radius: s.render[ri+2],
		VX:     s.velocity[vi],
		VY:     s.velocity[vi+1],
	}
}

// SetBody writes body i into the flat buffers.
func (s *Store) SetBody(i int, b component.Body) {
	ri, vi := RenderIndex(i), VelocityIndex(i)
	s.render[ri] = b.X
	s.render[ri+1] = b.Y
	s.render[ri+2] = b.Radius
	s.velocity[vi] = b.VX
	s.velocity[vi+1] = b.VY
}

// Pack flattens bodies into the buffers in order. The slice must hold exactly
// Len() bodies.
func (s *Store) Pack(bodies []component.Body) error {
	if len(bodies) != s.count {
		return fmt.Errorf("%w: pack expects %d bodies, got %d", ErrInvalidArgument, s.count, len(bodies))
	}
	for i, b := range bodies {
		s.SetBody(i, b)
	}
	return nil
}

// Bodies unpacks a copy of every body in index order.
func (s *Store) Bodies() []component.Body {
	bodies := make([]component.Body, s.count)
	for i := range bodies {
		bodies[i] = s.Body(i)
	}
	return bodies
}
