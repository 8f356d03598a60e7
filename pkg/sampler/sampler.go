package sampler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/df07/go-raycaster/pkg/core"
)

// Seed is the fixed seed every randomized sampler starts from
const Seed = 42

// MaxGridSize is the largest per-axis grid size whose square fits in a uint8
const MaxGridSize = 15

// ErrUnknownSampler is returned by ParseKind for unrecognized names
var ErrUnknownSampler = errors.New("unknown sampler")

// Sampler produces sub-pixel sample coordinates for anti-aliasing
type Sampler interface {
	// Sample returns the sample coordinates for one pixel. Randomized
	// samplers advance their generator on every call.
	Sample(pixelSize float32, pixelCenter core.Point2) []core.Point2
	// NumSamples returns the number of samples Sample produces
	NumSamples() uint8
	// SetNumSamples sets the sample count to the largest perfect square not
	// above n. Zero is treated as one.
	SetNumSamples(n uint8)
}

// Kind names a sampling strategy
type Kind string

const (
	KindSimple  Kind = "simple"
	KindRegular Kind = "regular"
	KindJitter  Kind = "jitter"
	KindRandom  Kind = "random"
)

// Kinds lists every supported strategy
func Kinds() []Kind {
	return []Kind{KindSimple, KindRegular, KindJitter, KindRandom}
}

// ParseKind converts a name such as "jitter" into a Kind
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSampler, name)
}

// New creates a sampler of the given kind with n requested samples
func New(kind Kind, n uint8) (Sampler, error) {
	switch kind {
	case KindSimple:
		return NewSimple(), nil
	case KindRegular:
		return NewRegular(n), nil
	case KindJitter:
		return NewJitter(n), nil
	case KindRandom:
		return NewRandom(n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSampler, kind)
	}
}

// GridSize returns the per-axis sample count of s
func GridSize(s Sampler) uint8 {
	return gridSize(s.NumSamples())
}

// gridSize maps a requested sample count to a per-axis grid size
func gridSize(n uint8) uint8 {
	k := uint8(math32.Floor(math32.Sqrt(float32(n))))
	if k == 0 {
		k = 1
	}
	return k
}

// grid is the square sub-pixel layout shared by the grid based samplers
type grid struct {
	size uint8
}

func (g *grid) NumSamples() uint8 {
	return g.size * g.size
}

func (g *grid) SetNumSamples(n uint8) {
	g.size = gridSize(n)
}

// cells calls fn for every sub-cell, x index varying fastest
func (g *grid) cells(fn func(i, j int)) {
	k := int(g.size)
	for j := 0; j < k; j++ {
		for i := 0; i < k; i++ {
			fn(i, j)
		}
	}
}

// origin returns the lower corner of the pixel and the sub-cell width
func (g *grid) origin(pixelSize float32, pixelCenter core.Point2) (core.Point2, float32) {
	half := pixelSize * 0.5
	corner := core.NewPoint2(pixelCenter.X()-half, pixelCenter.Y()-half)
	return corner, pixelSize / float32(g.size)
}
