// internal/system/movement.go
package system

import (
	"fmt"

	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/entity"

	"golang.org/x/sync/errgroup"
)

// RandomSource yields uniform samples in [0, 1).
type RandomSource interface {
	Float32() float32
}

// StepStats summarises one step.
type StepStats struct {
	Reflections int // velocity components flipped during the step
}

// Option configures a MovementSystem.
type Option func(*MovementSystem)

// WithWorkers spreads the per-body update over n goroutines. Values below 2
// keep the step on the calling goroutine.
func WithWorkers(n int) Option {
	return func(s *MovementSystem) {
		s.workers = n
	}
}

// WithChunkSize sets the minimum number of bodies handed to one worker.
func WithChunkSize(n int) Option {
	return func(s *MovementSystem) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// MovementSystem randomises and advances the bodies held in a Store.
//
// Positions are integrated with a unit Euler step and bounce off the viewport
// by flipping the sign of the offending velocity component. Positions are not
// clamped, so a body may sit outside the viewport for one frame after a hit.
// Comparisons are strict: a body exactly on the edge does not bounce.
//
// Width and height must be positive. NaN or infinite dimensions are a caller
// error; they are not rejected and propagate into the buffers.
type MovementSystem struct {
	store     *entity.Store
	rng       RandomSource
	workers   int
	chunkSize int
}

func NewMovementSystem(store *entity.Store, rng RandomSource, opts ...Option) *MovementSystem {
	s := &MovementSystem{
		store:     store,
		rng:       rng,
		workers:   1,
		chunkSize: config.MinBodiesPerWorker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the store the system operates on.
func (s *MovementSystem) Store() *entity.Store {
	return s.store
}

// Init places every body uniformly inside the viewport with a random velocity
// and the fixed radius. Calling it again redraws all values.
func (s *MovementSystem) Init(width, height float32) error {
	if err := checkViewport(width, height); err != nil {
		return err
	}

	render := s.store.RenderBuffer()
	vel := s.store.VelocityBuffer()
	for i, iv := 0, 0; i < len(render); i, iv = i+entity.RenderStride, iv+entity.VelocityStride {
		render[i] = width * s.rng.Float32()
		render[i+1] = height * s.rng.Float32()
		render[i+2] = config.BodyRadius

		vel[iv] = s.rng.Float32() - config.VelocitySpread
		vel[iv+1] = s.rng.Float32() - config.VelocitySpread
	}
	return nil
}

// Step advances every body by one time unit. All workers have finished when
// it returns, so the render buffer is safe to read.
func (s *MovementSystem) Step(width, height float32) (StepStats, error) {
	if err := checkViewport(width, height); err != nil {
		return StepStats{}, err
	}

	n := s.store.Len()
	if s.workers < 2 || n <= s.chunkSize {
		return StepStats{Reflections: s.stepRange(0, n, width, height)}, nil
	}

	chunk := (n + s.workers - 1) / s.workers
	if chunk < s.chunkSize {
		chunk = s.chunkSize
	}
	parts := (n + chunk - 1) / chunk
	counts := make([]int, parts)

	var g errgroup.Group
	for p := 0; p < parts; p++ {
		p := p
		from := p * chunk
		to := min(from+chunk, n)
		g.Go(func() error {
			counts[p] = s.stepRange(from, to, width, height)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return StepStats{}, err
	}

	var stats StepStats
	for _, c := range counts {
		stats.Reflections += c
	}
	return stats, nil
}

// stepRange updates bodies [from, to) and returns the number of reflections.
func (s *MovementSystem) stepRange(from, to int, width, height float32) int {
	render := s.store.RenderBuffer()
	vel := s.store.VelocityBuffer()
	reflections := 0

	for b := from; b < to; b++ {
		i, iv := entity.RenderIndex(b), entity.VelocityIndex(b)

		render[i] += vel[iv]
		render[i+1] += vel[iv+1]

		if render[i] > width || render[i] < 0 {
			vel[iv] = -vel[iv]
			reflections++
		}
		if render[i+1] > height || render[i+1] < 0 {
			vel[iv+1] = -vel[iv+1]
			reflections++
		}
	}
	return reflections
}

func checkViewport(width, height float32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %gx%g", entity.ErrInvalidArgument, width, height)
	}
	return nil
}
