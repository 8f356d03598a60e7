package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/sampler"
	"github.com/df07/go-raycaster/pkg/scene"
)

// ErrBufferSize is returned by Trace when the buffer does not match the view plane
var ErrBufferSize = errors.New("buffer size does not match view plane")

// viewDirection is the direction of every cast ray: orthographic along -z
var viewDirection = core.NewVec3(0, 0, -1)

// Tracer casts orthographic rays through a world and resolves pixel colors
type Tracer struct {
	sampler sampler.Sampler
	stats   RenderStats
}

// NewTracer creates a tracer that uses s for anti-aliasing
func NewTracer(s sampler.Sampler) *Tracer {
	return &Tracer{sampler: s}
}

// Sampler returns the current sampler
func (t *Tracer) Sampler() sampler.Sampler {
	return t.sampler
}

// SetSampler replaces the sampler used by subsequent traces
func (t *Tracer) SetSampler(s sampler.Sampler) {
	t.sampler = s
	core.Logger().Info("sampler changed", "type", fmt.Sprintf("%T", s), "samples", s.NumSamples())
}

// IncreaseGridSize grows the per-axis sample count by step, up to sampler.MaxGridSize
func (t *Tracer) IncreaseGridSize(step uint8) {
	k := int(sampler.GridSize(t.sampler)) + int(step)
	t.setGridSize(min(k, sampler.MaxGridSize))
}

// DecreaseGridSize shrinks the per-axis sample count by step, down to 1
func (t *Tracer) DecreaseGridSize(step uint8) {
	k := int(sampler.GridSize(t.sampler)) - int(step)
	t.setGridSize(max(k, 1))
}

func (t *Tracer) setGridSize(k int) {
	t.sampler.SetNumSamples(uint8(k * k))
	core.Logger().Info("sample count changed", "samples", t.sampler.NumSamples())
}

// LastStats returns statistics about the most recent Trace call
func (t *Tracer) LastStats() RenderStats {
	return t.stats
}

// Trace renders w into buf. buf must hold HRes*VRes pixels, row-major with
// index j*HRes+i, each packed as 0x00RRGGBB.
func (t *Tracer) Trace(w *scene.World, buf []uint32) error {
	vp := w.ViewPlane
	hres, vres := int(vp.HRes), int(vp.VRes)
	if len(buf) != hres*vres {
		return fmt.Errorf("%w: got %d pixels, view plane is %dx%d", ErrBufferSize, len(buf), hres, vres)
	}

	start := time.Now()
	stats := RenderStats{TotalPixels: hres * vres}

	for j := 0; j < vres; j++ {
		for i := 0; i < hres; i++ {
			center := core.NewPoint2(
				vp.PixelSize*(float32(i)-0.5*float32(hres-1)),
				vp.PixelSize*(float32(j)-0.5*float32(vres-1)),
			)
			buf[j*hres+i] = PackColor(t.pixelColor(w, center, &stats))
		}
	}

	stats.Elapsed = time.Since(start)
	stats.Luminance = CalculateAverageLuminance(buf)
	t.stats = stats
	core.Logger().Debug("frame traced",
		"width", hres,
		"height", vres,
		"rays", stats.TotalRays,
		"hits", stats.TotalHits,
		"luminance", stats.Luminance,
		"elapsed", stats.Elapsed,
	)
	return nil
}

// pixelColor averages the colors of every sample the sampler produces for one pixel
func (t *Tracer) pixelColor(w *scene.World, center core.Point2, stats *RenderStats) core.Vec3 {
	samples := t.sampler.Sample(w.ViewPlane.PixelSize, center)
	if len(samples) == 0 {
		return w.Background
	}

	var accum core.Vec3
	for _, s := range samples {
		ray := core.NewRay(core.NewVec3(s.X(), s.Y(), w.ViewPlane.Z), viewDirection)
		color, hit := t.castRay(w, ray)
		accum = accum.Add(color)
		stats.TotalRays++
		if hit {
			stats.TotalHits++
		}
	}

	// Divide by what was produced, not by NumSamples
	return accum.Mul(1 / float32(len(samples)))
}

// CastRay returns the color of the nearest primitive the ray hits, or the
// background color when it hits nothing
func (t *Tracer) CastRay(w *scene.World, ray core.Ray) core.Vec3 {
	color, _ := t.castRay(w, ray)
	return color
}

func (t *Tracer) castRay(w *scene.World, ray core.Ray) (core.Vec3, bool) {
	rec, ok := geometry.NearestHit(ray, w.Objects)
	if !ok {
		return w.Background, false
	}
	return w.Objects[rec.Index].Color(), true
}

// PackColor clamps each channel to [0,1] and packs it as 0x00RRGGBB,
// truncating 255*channel
func PackColor(c core.Vec3) uint32 {
	r := uint32(255 * mgl32.Clamp(c.X(), 0, 1))
	g := uint32(255 * mgl32.Clamp(c.Y(), 0, 1))
	b := uint32(255 * mgl32.Clamp(c.Z(), 0, 1))
	return r<<16 | g<<8 | b
}

// UnpackColor splits a packed pixel into its 8-bit channels
func UnpackColor(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}
