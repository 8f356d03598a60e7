package sampler

import (
	"math/rand"

	"github.com/df07/go-raycaster/pkg/core"
)

// Jitter places one sample at a uniformly random position inside every
// cell of a k×k sub-grid. It owns its random generator.
type Jitter struct {
	grid
	random *rand.Rand
}

// NewJitter creates a jittered grid sampler for n requested samples
func NewJitter(n uint8) *Jitter {
	return &Jitter{
		grid:   grid{size: gridSize(n)},
		random: rand.New(rand.NewSource(Seed)),
	}
}

// Sample returns one jittered sample per sub-cell and advances the generator
func (s *Jitter) Sample(pixelSize float32, pixelCenter core.Point2) []core.Point2 {
	corner, step := s.origin(pixelSize, pixelCenter)
	samples := make([]core.Point2, 0, s.NumSamples())
	s.cells(func(i, j int) {
		samples = append(samples, core.NewPoint2(
			corner.X()+(float32(i)+s.random.Float32())*step,
			corner.Y()+(float32(j)+s.random.Float32())*step,
		))
	})
	return samples
}
