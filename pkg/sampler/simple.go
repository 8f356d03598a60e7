package sampler

import "github.com/df07/go-raycaster/pkg/core"

// Simple samples the pixel center only. It cannot be reconfigured.
type Simple struct{}

// NewSimple creates a single sample sampler
func NewSimple() *Simple {
	return &Simple{}
}

// Sample returns the pixel center
func (s *Simple) Sample(pixelSize float32, pixelCenter core.Point2) []core.Point2 {
	return []core.Point2{pixelCenter}
}

// NumSamples always returns 1
func (s *Simple) NumSamples() uint8 { return 1 }

// SetNumSamples does nothing
func (s *Simple) SetNumSamples(n uint8) {}
