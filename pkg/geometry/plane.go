package geometry

import (
	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal, the same on both sides
	material material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	numerator := p.Point.Subtract(ray.Origin).Dot(p.Normal)

	// Parallel ray, or a plane behind the origin (quotient would be negative)
	if denominator == 0 || numerator*denominator < 0 {
		return nil, false
	}

	return &HitRecord{
		Distance: numerator / denominator,
		Normal:   p.Normal,
		Shape:    p,
	}, true
}

// Material returns the plane's material
func (p *Plane) Material() material.Material {
	return p.material
}
