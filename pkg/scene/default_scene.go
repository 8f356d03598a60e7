package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// NewDefaultScene creates the demo scene: two spheres in front of a tilted backdrop
func NewDefaultScene() *World {
	vp := ViewPlane{
		HRes:      200,
		VRes:      100,
		PixelSize: 1.0,
		Z:         100,
	}

	w := NewWorld(vp, core.NewVec3(0, 0, 0))

	w.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 15, core.NewMaterial(1, 0, 0)))
	w.Add(geometry.NewSphere(core.NewVec3(100, 4, -2), 21, core.NewMaterial(0.1, 0.2, 0.8)))

	// Any plane not parallel to the view axis covers every pixel the spheres miss
	w.Add(geometry.NewPlane(
		core.NewVec3(0, 0, -60),
		core.NewVec3(0, 0.5, 1),
		core.NewMaterial(0.3, 0.6, 0.3),
	))

	return w
}

// NewSingleSphereScene creates a 200x100 view of one sphere of radius 15 at the origin
func NewSingleSphereScene() *World {
	vp := ViewPlane{HRes: 200, VRes: 100, PixelSize: 1.0, Z: 100}
	return NewWorld(vp, core.NewVec3(0, 0, 0),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 15, core.NewMaterial(1, 0, 0)),
	)
}

// NewOverlapScene creates three spheres that overlap along the viewing axis
func NewOverlapScene() *World {
	vp := ViewPlane{HRes: 160, VRes: 120, PixelSize: 0.5, Z: 50}
	w := NewWorld(vp, core.NewVec3(0.05, 0.05, 0.1))

	w.Add(geometry.NewSphere(core.NewVec3(-10, 0, -10), 20, core.NewMaterial(0.9, 0.2, 0.2)))
	w.Add(geometry.NewSphere(core.NewVec3(10, 5, 0), 15, core.NewMaterial(0.2, 0.9, 0.2)))
	w.Add(geometry.NewSphere(core.NewVec3(0, -10, 10), 10, core.NewMaterial(0.2, 0.2, 0.9)))

	return w
}
