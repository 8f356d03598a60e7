package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point3
	Radius   float32
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float32, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit returns the nearest ray parameter greater than core.EPS at which the ray
// meets the sphere. When the ray starts inside the sphere only the far root
// qualifies and it is returned.
func (s *Sphere) Hit(ray core.Ray) (float32, bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.LenSqr()
	if a == 0 {
		// A zero-length direction never reaches the surface
		return 0, false
	}
	b := 2 * oc.Dot(ray.Direction)
	c := oc.LenSqr() - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return 0, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// Try the closer intersection point first
	if t := (-b - sqrtD) / (2 * a); t > core.EPS {
		return t, true
	}
	if t := (-b + sqrtD) / (2 * a); t > core.EPS {
		return t, true
	}
	return 0, false
}

// Color returns the sphere's flat color
func (s *Sphere) Color() core.Vec3 {
	return s.Material.Color
}
