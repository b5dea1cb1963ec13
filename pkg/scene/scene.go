package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/geometry"
	"github.com/df07/go-ao-raytracer/pkg/material"
	"github.com/df07/go-ao-raytracer/pkg/renderer"
	"github.com/samber/lo"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes []geometry.Shape // Objects in the scene, in intersection order
	Config renderer.Config  // Recommended render settings for this scene
}

// Options customizes scene construction
type Options struct {
	MeshPath   string    // OBJ file for the mesh scene
	MeshScale  core.Vec3 // Per-axis scale applied to mesh vertices (zero = scene default)
	MeshOffset core.Vec3 // Translation applied after scaling (zero = scene default)
	Seed       int64     // Generator seed for randomized scenes (0 = scene default)
}

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type builder struct {
	description string
	create      func(opts Options) (*Scene, error)
}

var registry = map[string]builder{
	"default": {"Two eyes in front of a big yellow sphere over a ground plane", func(Options) (*Scene, error) { return NewDefaultScene(), nil }},
	"sphere":  {"A single white sphere in front of the camera", func(Options) (*Scene, error) { return NewSphereScene(), nil }},
	"mirrors": {"Spheres between two facing mirrors", func(Options) (*Scene, error) { return NewMirrorScene(), nil }},
	"random":  {"Grid of spheres with randomly generated materials", func(opts Options) (*Scene, error) { return NewRandomSpheresScene(opts.Seed), nil }},
	"mesh":    {"Triangle mesh loaded from an OBJ file", NewMeshScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// List returns every registered scene with its description
func List() []SceneInfo {
	return lo.Map(Names(), func(name string, _ int) SceneInfo {
		return SceneInfo{Name: name, Description: registry[name].description}
	})
}

// Create builds the named scene
func Create(name string, opts Options) (*Scene, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	s, err := b.create(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene %q: %w", name, err)
	}
	return s, nil
}

// newScene creates an empty scene with the default render settings
func newScene() *Scene {
	return &Scene{
		Shapes: make([]geometry.Shape, 0),
		Config: renderer.DefaultConfig(),
	}
}

// GetShapes returns the shapes in intersection order
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// AddShape appends shapes to the scene
func (s *Scene) AddShape(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.AddShape(geometry.NewSphere(center, radius, mat))
}

// AddPlane adds an infinite plane to the scene
func (s *Scene) AddPlane(point, normal core.Vec3, mat material.Material) {
	s.AddShape(geometry.NewPlane(point, normal, mat))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		switch obj := shape.(type) {
		case *geometry.TriangleMesh:
			// Triangle meshes contain multiple triangles
			count += obj.GetTriangleCount()
		default:
			count++
		}
	}
	return count
}
