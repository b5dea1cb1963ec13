package scene

import (
	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/geometry"
	"github.com/df07/go-ao-raytracer/pkg/loaders"
	"github.com/df07/go-ao-raytracer/pkg/material"
)

// Mesh scene defaults. Model files are authored Y-up; negating Y and Z turns
// them upright in camera space, where Y grows downwards.
var (
	DefaultMeshPath   = "models/octahedron.obj"
	DefaultMeshScale  = core.NewVec3(150, -150, -150)
	DefaultMeshOffset = core.NewVec3(0, 0, 600)
)

// NewMeshScene creates a scene with a triangle mesh loaded from an OBJ file
// standing on a ground plane
func NewMeshScene(opts Options) (*Scene, error) {
	path := opts.MeshPath
	if path == "" {
		path = DefaultMeshPath
	}
	scale := opts.MeshScale
	if scale == (core.Vec3{}) {
		scale = DefaultMeshScale
	}
	offset := opts.MeshOffset
	if offset == (core.Vec3{}) {
		offset = DefaultMeshOffset
	}

	data, err := loaders.LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	data = data.Transform(scale, offset)

	s := newScene()

	meshMaterial := material.NewReflective(core.NewVec3(0.8, 0.6, 0.2), 0.25)
	s.AddShape(geometry.NewTriangleMesh(data.Vertices, data.Faces, meshMaterial))

	// Ground touches the lowest vertex
	lowest := offset.Y
	for _, v := range data.Vertices {
		if v.Y > lowest {
			lowest = v.Y
		}
	}
	s.AddPlane(core.NewVec3(0, lowest, 0), core.NewVec3(0, -1, 0), material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6)))

	return s, nil
}
