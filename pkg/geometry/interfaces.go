package geometry

import (
	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection in front of the ray origin
	Hit(ray core.Ray) (*HitRecord, bool)
	Material() material.Material
}

// HitRecord contains information about a ray-object intersection.
// It only lives for the duration of one query.
type HitRecord struct {
	Distance float64   // Parameter t along the ray, never negative
	Normal   core.Vec3 // Unit surface normal at the hit point
	Shape    Shape     // Shape that was hit, used to look up its material
}
