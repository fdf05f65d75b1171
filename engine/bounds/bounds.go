// Package bounds derives the arcball pivot and default eye distance from a set of vertex positions.
package bounds

import (
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoVertices is returned when bounds are requested for an empty vertex set.
var ErrNoVertices = errors.New("bounds: no vertices")

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box, used as the arcball pivot.
//
// Returns:
//   - mgl32.Vec3: the box center
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Radius returns the distance from the center to the Max corner.
//
// Returns:
//   - float32: the bounding-sphere radius
func (b Bounds) Radius() float32 {
	return b.Max.Sub(b.Center()).Len()
}

// ViewRadius returns twice the bounding-sphere radius, which places the default eye
// outside the object with room to spare.
//
// Returns:
//   - float32: the default camera distance
func (b Bounds) ViewRadius() float32 {
	return 2 * b.Radius()
}

// merge grows b to contain o.
func (b Bounds) merge(o Bounds) Bounds {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], o.Min[i])
		b.Max[i] = max(b.Max[i], o.Max[i])
	}
	return b
}

// scan computes the bounds of a non-empty slice.
func scan(vertices []mgl32.Vec3) Bounds {
	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b = b.merge(Bounds{Min: v, Max: v})
	}
	return b
}

// Compute returns the bounding box of vertices in a single pass.
//
// Parameters:
//   - vertices: vertex positions
//
// Returns:
//   - Bounds: the bounding box
//   - error: ErrNoVertices if vertices is empty
func Compute(vertices []mgl32.Vec3) (Bounds, error) {
	if len(vertices) == 0 {
		return Bounds{}, ErrNoVertices
	}
	return scan(vertices), nil
}

// ComputeParallel returns the same result as Compute, splitting large inputs into chunks that
// are reduced on a worker pool. Inputs no larger than one chunk are scanned on the calling goroutine.
//
// Parameters:
//   - vertices: vertex positions
//   - options: functional options controlling workers and chunk size
//
// Returns:
//   - Bounds: the bounding box
//   - error: ErrNoVertices if vertices is empty
func ComputeParallel(vertices []mgl32.Vec3, options ...BoundsOption) (Bounds, error) {
	if len(vertices) == 0 {
		return Bounds{}, ErrNoVertices
	}

	cfg := defaultBoundsConfig()
	for _, option := range options {
		option(&cfg)
	}

	if len(vertices) <= cfg.chunkSize {
		return scan(vertices), nil
	}

	chunks := (len(vertices) + cfg.chunkSize - 1) / cfg.chunkSize
	partials := make([]Bounds, chunks)

	// Idle workers exit after a second, so the pool needs no explicit shutdown.
	pool := worker.NewDynamicWorkerPool(cfg.workers, chunks, 1*time.Second)

	var wg sync.WaitGroup
	for i := range chunks {
		lo := i * cfg.chunkSize
		hi := min(lo+cfg.chunkSize, len(vertices))
		part := vertices[lo:hi]
		slot := i

		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: slot,
			Do: func() (any, error) {
				defer wg.Done()
				partials[slot] = scan(part)
				return nil, nil
			},
		})
	}
	wg.Wait()

	b := partials[0]
	for _, p := range partials[1:] {
		b = b.merge(p)
	}
	return b, nil
}
