package geometry

import (
	"github.com/df07/go-ao-raytracer/pkg/core"
)

// machineEpsilon is the gap between 1.0 and the next float64
const machineEpsilon = 2.220446049250313e-16

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	t := Triangle{V0: v0, V1: v1, V2: v2}
	t.computeNormal()
	return t
}

// computeNormal caches normalize(e2 × e1). The sign follows the authored
// winding and is never flipped toward the viewer.
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge2.Cross(edge1).Normalize()
}

// Normal returns the triangle's fixed-winding normal
func (t Triangle) Normal() core.Vec3 {
	return t.normal
}

// Intersect returns the ray parameter of the hit using the Möller-Trumbore algorithm
func (t Triangle) Intersect(ray core.Ray) (float64, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in (or parallel to) the triangle plane
	if det > -machineEpsilon && det < machineEpsilon {
		return 0, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	tParam := invDet * edge2.Dot(q)

	// Line intersection behind (or at) the origin is not a ray intersection
	if tParam <= machineEpsilon {
		return 0, false
	}

	return tParam, true
}
