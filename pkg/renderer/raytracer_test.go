package renderer

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/sampler"
	"github.com/df07/go-raycaster/pkg/scene"
)

// MockSampler implements sampler.Sampler with a fixed sample pattern
type MockSampler struct {
	offsets []core.Point2
	count   uint8
}

func (m *MockSampler) Sample(pixelSize float32, center core.Point2) []core.Point2 {
	samples := make([]core.Point2, len(m.offsets))
	for i, o := range m.offsets {
		samples[i] = center.Add(o)
	}
	return samples
}
func (m *MockSampler) NumSamples() uint8     { return m.count }
func (m *MockSampler) SetNumSamples(n uint8) { m.count = n }

const (
	packedRed   = 0xFF0000
	packedBlack = 0x000000
)

func newBuffer(w *scene.World) []uint32 {
	return make([]uint32, w.PixelCount())
}

func TestTracer_SingleSphereDisc(t *testing.T) {
	w := scene.NewSingleSphereScene()
	hres, vres := int(w.ViewPlane.HRes), int(w.ViewPlane.VRes)

	for _, kind := range sampler.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			s, _ := sampler.New(kind, 16)
			tracer := NewTracer(s)
			buf := newBuffer(w)
			if err := tracer.Trace(w, buf); err != nil {
				t.Fatalf("Trace failed: %v", err)
			}

			for j := 0; j < vres; j++ {
				for i := 0; i < hres; i++ {
					x := float32(i) - 0.5*float32(hres-1)
					y := float32(j) - 0.5*float32(vres-1)
					r := math32.Sqrt(x*x + y*y)
					got := buf[j*hres+i]

					// Samples stay within 0.71 of the pixel center
					switch {
					case r < 14:
						if got != packedRed {
							t.Fatalf("Pixel (%d,%d) at r=%.2f: expected sphere color %06x, got %06x", i, j, r, packedRed, got)
						}
					case r > 16:
						if got != packedBlack {
							t.Fatalf("Pixel (%d,%d) at r=%.2f: expected background %06x, got %06x", i, j, r, packedBlack, got)
						}
					}
				}
			}
		})
	}
}

func TestTracer_SimpleSamplerMatchesDiscExactly(t *testing.T) {
	w := scene.NewSingleSphereScene()
	hres, vres := int(w.ViewPlane.HRes), int(w.ViewPlane.VRes)
	buf := newBuffer(w)
	if err := NewTracer(sampler.NewSimple()).Trace(w, buf); err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	for j := 0; j < vres; j++ {
		for i := 0; i < hres; i++ {
			x := float32(i) - 0.5*float32(hres-1)
			y := float32(j) - 0.5*float32(vres-1)
			d := x*x + y*y
			got := buf[j*hres+i]
			if d < 224 && got != packedRed {
				t.Errorf("Pixel (%d,%d) inside disc shows %06x", i, j, got)
			}
			if d > 226 && got != packedBlack {
				t.Errorf("Pixel (%d,%d) outside disc shows %06x", i, j, got)
			}
		}
	}
}

func TestTracer_AntiAliasedEdge(t *testing.T) {
	w := scene.NewSingleSphereScene()
	buf := newBuffer(w)
	if err := NewTracer(sampler.NewRegular(16)).Trace(w, buf); err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	partial := 0
	for _, p := range buf {
		r, g, b := UnpackColor(p)
		if g != 0 || b != 0 {
			t.Fatalf("Expected only red channel, got %06x", p)
		}
		if r > 0 && r < 255 {
			partial++
		}
	}
	if partial == 0 {
		t.Error("Expected edge pixels with partial coverage")
	}
}

func TestTracer_Deterministic(t *testing.T) {
	w := scene.NewDefaultScene()
	tracer := NewTracer(sampler.NewSimple())

	first := newBuffer(w)
	second := newBuffer(w)
	if err := tracer.Trace(w, first); err != nil {
		t.Fatalf("Trace failed: %v", err)
	}
	if err := tracer.Trace(w, second); err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Pixel %d differs between renders: %06x vs %06x", i, first[i], second[i])
		}
	}
}

func TestTracer_BufferSizeMismatch(t *testing.T) {
	w := scene.NewSingleSphereScene()
	tracer := NewTracer(sampler.NewSimple())

	for _, n := range []int{0, w.PixelCount() - 1, w.PixelCount() + 1} {
		err := tracer.Trace(w, make([]uint32, n))
		if !errors.Is(err, ErrBufferSize) {
			t.Errorf("Buffer of %d pixels: expected ErrBufferSize, got %v", n, err)
		}
	}
}

func TestTracer_AveragesActualSampleCount(t *testing.T) {
	// One sample lands on the sphere, the other misses; NumSamples lies
	mock := &MockSampler{
		offsets: []core.Point2{core.NewPoint2(0, 0), core.NewPoint2(100, 0)},
		count:   1,
	}
	vp := scene.ViewPlane{HRes: 1, VRes: 1, PixelSize: 1, Z: 10}
	w := scene.NewWorld(vp, core.NewVec3(0, 0, 0),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, core.NewMaterial(1, 1, 1)),
	)

	buf := make([]uint32, 1)
	if err := NewTracer(mock).Trace(w, buf); err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	// 0.5 * 255 = 127.5, truncated
	if buf[0] != 0x7F7F7F {
		t.Errorf("Expected half gray 7f7f7f, got %06x", buf[0])
	}
}

func TestTracer_NoSamplesUsesBackground(t *testing.T) {
	vp := scene.ViewPlane{HRes: 2, VRes: 2, PixelSize: 1, Z: 10}
	w := scene.NewWorld(vp, core.NewVec3(0, 0, 1),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 5, core.NewMaterial(1, 0, 0)),
	)

	buf := make([]uint32, 4)
	if err := NewTracer(&MockSampler{}).Trace(w, buf); err != nil {
		t.Fatalf("Trace failed: %v", err)
	}
	for i, p := range buf {
		if p != 0x0000FF {
			t.Errorf("Pixel %d: expected background 0000ff, got %06x", i, p)
		}
	}
}

func TestTracer_RowMajorLayout(t *testing.T) {
	// A small sphere marks a single pixel center
	vp := scene.ViewPlane{HRes: 4, VRes: 2, PixelSize: 10, Z: 100}
	w := scene.NewWorld(vp, core.NewVec3(0, 0, 0),
		geometry.NewSphere(core.NewVec3(15, -5, 0), 1, core.NewMaterial(0, 1, 0)),
	)

	buf := make([]uint32, 8)
	if err := NewTracer(sampler.NewSimple()).Trace(w, buf); err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	// Pixel (3,0) has center (15,-5); index j*hres+i = 3
	for i, p := range buf {
		want := uint32(packedBlack)
		if i == 3 {
			want = 0x00FF00
		}
		if p != want {
			t.Errorf("Pixel %d: expected %06x, got %06x", i, want, p)
		}
	}
}

func TestTracer_CastRay(t *testing.T) {
	w := scene.NewDefaultScene()
	tracer := NewTracer(sampler.NewSimple())

	// Straight through the red sphere at the origin
	ray := core.NewRay(core.NewVec3(0, 0, 100), core.NewVec3(0, 0, -1))
	if got := tracer.CastRay(w, ray); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red sphere color, got %v", got)
	}

	// Pointing away from everything
	ray = core.NewRay(core.NewVec3(0, 0, 100), core.NewVec3(0, 0, 1))
	if got := tracer.CastRay(w, ray); got != w.Background {
		t.Errorf("Expected background %v, got %v", w.Background, got)
	}
}

func TestTracer_GridSizeControls(t *testing.T) {
	tracer := NewTracer(sampler.NewJitter(16))

	tracer.IncreaseGridSize(2)
	if got := tracer.Sampler().NumSamples(); got != 36 {
		t.Errorf("Expected 36 samples after increase, got %d", got)
	}

	for i := 0; i < 10; i++ {
		tracer.IncreaseGridSize(2)
	}
	if got := sampler.GridSize(tracer.Sampler()); got != sampler.MaxGridSize {
		t.Errorf("Expected grid size to saturate at %d, got %d", sampler.MaxGridSize, got)
	}

	for i := 0; i < 10; i++ {
		tracer.DecreaseGridSize(2)
	}
	if got := tracer.Sampler().NumSamples(); got != 1 {
		t.Errorf("Expected grid size to bottom out at 1 sample, got %d", got)
	}

	tracer.SetSampler(sampler.NewSimple())
	tracer.IncreaseGridSize(2)
	if got := tracer.Sampler().NumSamples(); got != 1 {
		t.Errorf("Expected simple sampler to ignore grid changes, got %d", got)
	}
}

func TestTracer_LastStats(t *testing.T) {
	w := scene.NewSingleSphereScene()
	tracer := NewTracer(sampler.NewRegular(4))
	if err := tracer.Trace(w, newBuffer(w)); err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	stats := tracer.LastStats()
	if stats.TotalPixels != 20000 {
		t.Errorf("Expected 20000 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalRays != 80000 {
		t.Errorf("Expected 80000 rays, got %d", stats.TotalRays)
	}
	if stats.AverageSamples() != 4 {
		t.Errorf("Expected 4 samples per pixel, got %f", stats.AverageSamples())
	}
	if stats.TotalHits == 0 || stats.TotalHits >= stats.TotalRays {
		t.Errorf("Expected some but not all rays to hit, got %d of %d", stats.TotalHits, stats.TotalRays)
	}
}

func TestPackColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected uint32
	}{
		{"black", core.NewVec3(0, 0, 0), 0x000000},
		{"white", core.NewVec3(1, 1, 1), 0xFFFFFF},
		{"red", core.NewVec3(1, 0, 0), 0xFF0000},
		{"green", core.NewVec3(0, 1, 0), 0x00FF00},
		{"blue", core.NewVec3(0, 0, 1), 0x0000FF},
		{"truncates", core.NewVec3(0.5, 0.25, 0.125), 0x7F3F1F},
		{"clamps above one", core.NewVec3(2, 1.5, 0), 0xFFFF00},
		{"clamps below zero", core.NewVec3(-1, 0, 1), 0x0000FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackColor(tt.color); got != tt.expected {
				t.Errorf("Expected %06x, got %06x", tt.expected, got)
			}
		})
	}
}

func TestUnpackColor(t *testing.T) {
	r, g, b := UnpackColor(0x7F3F1F)
	if r != 0x7F || g != 0x3F || b != 0x1F {
		t.Errorf("Expected (7f,3f,1f), got (%x,%x,%x)", r, g, b)
	}
}
