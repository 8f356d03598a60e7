package core

import "github.com/go-gl/mathgl/mgl32"

// Vec3 represents a 3D displacement, direction or RGB color
type Vec3 = mgl32.Vec3

// Point3 represents a position in world space
type Point3 = mgl32.Vec3

// Point2 represents a coordinate on the view plane
type Point2 = mgl32.Vec2

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// NewPoint2 creates a new view plane coordinate
func NewPoint2(x, y float32) Point2 {
	return Point2{x, y}
}

// Ray represents a ray with an origin and direction.
// The direction is not required to be normalized.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
