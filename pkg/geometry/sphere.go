package geometry

import (
	"math"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: mat,
	}
}

// Hit tests if a ray intersects with the sphere.
// The ray direction is expected to be unit length.
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	t1 := ray.Direction.Dot(oc)
	discriminant := t1*t1 - oc.LengthSquared() + s.Radius*s.Radius

	if discriminant < 0 {
		return nil, false
	}

	t2 := math.Sqrt(discriminant)
	near, far := -t1-t2, -t1+t2

	// Sphere lies entirely behind the origin
	if far < 0 {
		return nil, false
	}

	distance := near
	if near < 0 {
		// Origin is inside the sphere
		distance = far
	}

	return &HitRecord{
		Distance: distance,
		Normal:   ray.At(distance).Subtract(s.Center).Normalize(),
		Shape:    s,
	}, true
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.material
}
