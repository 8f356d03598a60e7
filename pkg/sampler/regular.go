package sampler

import "github.com/df07/go-raycaster/pkg/core"

// Regular places one sample at the center of every cell of a k×k sub-grid
type Regular struct {
	grid
}

// NewRegular creates a regular grid sampler for n requested samples
func NewRegular(n uint8) *Regular {
	return &Regular{grid: grid{size: gridSize(n)}}
}

// Sample returns the sub-cell centers, row by row
func (r *Regular) Sample(pixelSize float32, pixelCenter core.Point2) []core.Point2 {
	corner, step := r.origin(pixelSize, pixelCenter)
	samples := make([]core.Point2, 0, r.NumSamples())
	r.cells(func(i, j int) {
		samples = append(samples, core.NewPoint2(
			corner.X()+(float32(i)+0.5)*step,
			corner.Y()+(float32(j)+0.5)*step,
		))
	})
	return samples
}
