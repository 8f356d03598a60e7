package core

// EPS is the smallest ray parameter accepted as a hit. Anything closer to the
// ray origin is treated as a self-intersection.
const EPS float32 = 1e-4

// Material holds the flat color of a primitive
type Material struct {
	Color Vec3
}

// NewMaterial creates a flat colored material
func NewMaterial(r, g, b float32) Material {
	return Material{Color: NewVec3(r, g, b)}
}

// Primitive is a geometric object that can be hit-tested by a ray
type Primitive interface {
	// Hit returns the smallest ray parameter greater than EPS at which the
	// ray meets the surface.
	Hit(ray Ray) (float32, bool)
	// Color returns the flat material color. It does not depend on the hit.
	Color() Vec3
}

// HitRecord is the result of a nearest-hit query. Index refers to the
// position of the winning primitive in the slice that was queried.
type HitRecord struct {
	T     float32
	Index int
}
