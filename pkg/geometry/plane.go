package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Point3   // A point on the plane
	Normal   core.Vec3     // Normal vector, any non-zero length
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point core.Point3, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal,
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (float32, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Parallel (or nearly so): no intersection
	if math32.Abs(denominator) < core.EPS {
		return 0, false
	}

	// t = N · (P - O) / (N · D)
	t := p.Normal.Dot(p.Point.Sub(ray.Origin)) / denominator

	// Plane is behind or at the ray origin
	if t <= core.EPS {
		return 0, false
	}
	return t, true
}

// Color returns the plane's flat color
func (p *Plane) Color() core.Vec3 {
	return p.Material.Color
}
