package bounds

import "runtime"

// defaultChunkSize is the number of vertices each pool task reduces.
const defaultChunkSize = 16384

type boundsConfig struct {
	workers   int
	chunkSize int
}

func defaultBoundsConfig() boundsConfig {
	return boundsConfig{
		workers:   runtime.NumCPU(),
		chunkSize: defaultChunkSize,
	}
}

// BoundsOption is a functional option for configuring ComputeParallel.
type BoundsOption func(*boundsConfig)

// WithWorkers sets the maximum number of pool workers. Values below 1 are ignored.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - BoundsOption: option function to apply
func WithWorkers(n int) BoundsOption {
	return func(c *boundsConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithChunkSize sets how many vertices each task reduces. Values below 1 are ignored.
//
// Parameters:
//   - n: vertices per chunk
//
// Returns:
//   - BoundsOption: option function to apply
func WithChunkSize(n int) BoundsOption {
	return func(c *boundsConfig) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}
