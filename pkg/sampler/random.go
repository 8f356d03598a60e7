package sampler

import (
	"math/rand"

	"github.com/df07/go-raycaster/pkg/core"
)

// Random draws independent uniform samples over the whole pixel.
// The grid size only determines how many samples are drawn.
type Random struct {
	grid
	random *rand.Rand
}

// NewRandom creates a random sampler for n requested samples
func NewRandom(n uint8) *Random {
	return &Random{
		grid:   grid{size: gridSize(n)},
		random: rand.New(rand.NewSource(Seed)),
	}
}

// Sample returns NumSamples uniform points and advances the generator
func (s *Random) Sample(pixelSize float32, pixelCenter core.Point2) []core.Point2 {
	n := int(s.NumSamples())
	samples := make([]core.Point2, n)
	for i := range samples {
		samples[i] = core.NewPoint2(
			pixelCenter.X()+(s.random.Float32()-0.5)*pixelSize,
			pixelCenter.Y()+(s.random.Float32()-0.5)*pixelSize,
		)
	}
	return samples
}
