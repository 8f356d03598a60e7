package controls

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/sampler"
	"github.com/df07/go-raycaster/pkg/scene"
)

// MaxPixels caps the frame size the resolution keys can reach
const MaxPixels = 4096 * 4096

// Session owns the mutable state of an interactive render: the world, the
// tracer and the output buffer. Mutations only happen between traces.
type Session struct {
	World  *scene.World
	Tracer *renderer.Tracer
	buf    []uint32
}

// Prepare creates a session without tracing. The buffer is allocated by the
// first Render.
func Prepare(w *scene.World, t *renderer.Tracer) *Session {
	return &Session{World: w, Tracer: t}
}

// NewSession creates a session and renders the first frame
func NewSession(w *scene.World, t *renderer.Tracer) (*Session, error) {
	s := Prepare(w, t)
	if err := s.Render(); err != nil {
		return nil, err
	}
	return s, nil
}

// Buffer returns the most recently rendered frame. After Mutate its size may
// lag Size until the next Render.
func (s *Session) Buffer() []uint32 {
	return s.buf
}

// Size returns the current frame dimensions
func (s *Session) Size() (width, height int) {
	h, v := s.World.Resolution()
	return int(h), int(v)
}

// Render re-traces the world into the buffer
func (s *Session) Render() error {
	s.resize()
	if err := s.Tracer.Trace(s.World, s.buf); err != nil {
		return fmt.Errorf("error tracing frame: %w", err)
	}
	return nil
}

// Apply performs the action bound to key and re-renders when it changed
// anything. See Mutate for the returned bool.
func (s *Session) Apply(key Key) (bool, error) {
	changed, err := s.Mutate(key)
	if err != nil || !changed {
		return changed, err
	}
	return true, s.Render()
}

// Mutate performs the action bound to key without tracing. Keys that would
// leave the view plane unusable or larger than MaxPixels are ignored with a
// warning; the returned bool reports whether the key changed anything.
func (s *Session) Mutate(key Key) (bool, error) {
	log := core.Logger()

	switch key {
	case KeyW:
		s.World.MoveInZ(-ZStep)
	case KeyS:
		s.World.MoveInZ(ZStep)
	case KeyA:
		if s.World.ViewPlane.PixelSize-PixelSizeStep <= 0 {
			log.Warn("pixel size change rejected", "pixelSize", s.World.ViewPlane.PixelSize, "delta", -PixelSizeStep)
			return false, nil
		}
		s.World.ChangePixelSize(-PixelSizeStep)
	case KeyD:
		s.World.ChangePixelSize(PixelSizeStep)
	case KeyUp:
		if 4*s.World.PixelCount() > MaxPixels {
			h, v := s.World.Resolution()
			log.Warn("resolution change rejected", "hres", h, "vres", v, "maxPixels", MaxPixels)
			return false, nil
		}
		s.World.ChangeResolution(ResolutionStep)
	case KeyDown:
		h, v := s.World.Resolution()
		if h < 2 || v < 2 {
			log.Warn("resolution change rejected", "hres", h, "vres", v)
			return false, nil
		}
		s.World.ChangeResolution(1 / ResolutionStep)
	case KeyJ:
		s.Tracer.SetSampler(sampler.NewJitter(DefaultSamples))
	case KeyR:
		s.Tracer.SetSampler(sampler.NewRandom(DefaultSamples))
	case KeyG:
		s.Tracer.SetSampler(sampler.NewRegular(DefaultSamples))
	case KeyP:
		s.Tracer.SetSampler(sampler.NewSimple())
	case KeyPlus:
		s.Tracer.IncreaseGridSize(GridStep)
	case KeyMinus:
		s.Tracer.DecreaseGridSize(GridStep)
	case KeyK:
		s.Tracer.Sampler().SetNumSamples(1)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	vp := s.World.ViewPlane
	log.Info("key applied",
		"key", string(key),
		"z", vp.Z,
		"pixelSize", vp.PixelSize,
		"hres", vp.HRes,
		"vres", vp.VRes,
		"samples", s.Tracer.Sampler().NumSamples(),
	)
	return true, nil
}

// resize matches the buffer length to the view plane
func (s *Session) resize() {
	n := s.World.PixelCount()
	if cap(s.buf) >= n {
		s.buf = s.buf[:n]
		clear(s.buf)
		return
	}
	s.buf = make([]uint32, n)
}
