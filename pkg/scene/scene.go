package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// ViewPlane is the virtual image plane rays are cast from
type ViewPlane struct {
	HRes      uint32  // Horizontal pixel count
	VRes      uint32  // Vertical pixel count
	PixelSize float32 // World-space size of one pixel
	Z         float32 // Position along the viewing axis
}

// World contains all the elements needed for rendering.
// It must not be mutated while a trace against it is in progress.
type World struct {
	ViewPlane  ViewPlane
	Objects    []core.Primitive // Hit-tested in order; ties go to the earlier object
	Background core.Vec3        // Color of rays that hit nothing
}

// NewWorld creates a world with the given view plane, background and objects
func NewWorld(vp ViewPlane, background core.Vec3, objects ...core.Primitive) *World {
	return &World{
		ViewPlane:  vp,
		Objects:    objects,
		Background: background,
	}
}

// Add appends a primitive to the end of the object list
func (w *World) Add(p core.Primitive) {
	w.Objects = append(w.Objects, p)
}

// MoveInZ moves the view plane along the viewing axis
func (w *World) MoveInZ(step float32) {
	w.ViewPlane.Z += step
}

// ChangePixelSize grows or shrinks the world-space pixel size. No lower bound
// is enforced; callers must keep the pixel size positive.
func (w *World) ChangePixelSize(delta float32) {
	w.ViewPlane.PixelSize += delta
}

// ChangeResolution scales both resolutions by factor, truncating. The caller
// must resize its output buffer before the next trace.
func (w *World) ChangeResolution(factor float32) {
	w.ViewPlane.HRes = uint32(float32(w.ViewPlane.HRes) * factor)
	w.ViewPlane.VRes = uint32(float32(w.ViewPlane.VRes) * factor)
}

// Resolution returns the horizontal and vertical pixel counts
func (w *World) Resolution() (hres, vres uint32) {
	return w.ViewPlane.HRes, w.ViewPlane.VRes
}

// PixelCount returns the length an output buffer must have
func (w *World) PixelCount() int {
	return int(w.ViewPlane.HRes) * int(w.ViewPlane.VRes)
}
