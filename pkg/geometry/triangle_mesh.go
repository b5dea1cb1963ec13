package geometry

import (
	"fmt"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/material"
)

// TriangleMesh represents a collection of triangles sharing one material.
// Every triangle is tested on each ray; meshes are expected to stay small.
type TriangleMesh struct {
	triangles []Triangle
	material  material.Material
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of 0-based triangle indices (each group of 3 indices forms a triangle)
// mat: material for all triangles
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}

	numTriangles := len(faces) / 3
	triangles := make([]Triangle, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0 := faces[i*3]
		i1 := faces[i*3+1]
		i2 := faces[i*3+2]

		if i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			panic(fmt.Sprintf("Face index out of bounds in triangle %d", i))
		}

		triangles[i] = NewTriangle(vertices[i0], vertices[i1], vertices[i2])
	}

	return NewTriangleMeshFromTriangles(triangles, mat)
}

// NewTriangleMeshFromTriangles wraps already assembled triangles
func NewTriangleMeshFromTriangles(triangles []Triangle, mat material.Material) *TriangleMesh {
	return &TriangleMesh{
		triangles: triangles,
		material:  mat,
	}
}

// Hit tests every triangle and keeps the nearest one
func (tm *TriangleMesh) Hit(ray core.Ray) (*HitRecord, bool) {
	best := -1
	bestDistance := 0.0

	for i := range tm.triangles {
		distance, ok := tm.triangles[i].Intersect(ray)
		if !ok {
			continue
		}
		if best < 0 || distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}

	if best < 0 {
		return nil, false
	}

	return &HitRecord{
		Distance: bestDistance,
		Normal:   tm.triangles[best].Normal(),
		Shape:    tm,
	}, true
}

// Material returns the material shared by all triangles
func (tm *TriangleMesh) Material() material.Material {
	return tm.material
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// GetTriangles returns the individual triangles (for debugging or special operations)
func (tm *TriangleMesh) GetTriangles() []Triangle {
	return tm.triangles
}
