package scene

import (
	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/material"
)

// NewDefaultScene creates the showcase scene: a face made of two eyes in
// front of a big yellow sphere, standing on a ground plane
func NewDefaultScene() *Scene {
	s := newScene()

	white := material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))
	yellow := material.NewReflective(core.NewVec3(0.8, 0.8, 0.0), 0.3)
	pupil := material.NewReflective(core.NewVec3(0.1, 0.1, 0.1), 0.5)
	ground := material.NewReflective(core.NewVec3(0.1, 0.5, 0.1), 0.2)

	// Eyeballs
	s.AddSphere(core.NewVec3(-100, -80, 400), 40, white)
	s.AddSphere(core.NewVec3(100, -80, 400), 40, white)

	// Head
	s.AddSphere(core.NewVec3(0, 0, 700), 350, yellow)

	// Pupils sit in front of the eyeballs
	s.AddSphere(core.NewVec3(100, -80, 370), 20, pupil)
	s.AddSphere(core.NewVec3(-100, -80, 370), 20, pupil)

	// World Y grows downwards on screen, so the ground sits at +Y facing the eye
	s.AddPlane(core.NewVec3(0, 200, 0), core.NewVec3(0, -1, 0), ground)

	return s
}

// NewSphereScene creates a single white sphere straight ahead of the eye
func NewSphereScene() *Scene {
	s := newScene()
	s.AddSphere(core.NewVec3(0, 0, 500), 100, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	return s
}

// NewMirrorScene creates colored spheres between two facing mirrors, so
// reflection rays bounce until the depth limit
func NewMirrorScene() *Scene {
	s := newScene()
	s.Config.MaxDepth = 8

	mirror := material.NewMaterial(core.NewVec3(0.9, 0.9, 0.9), 0.9, 0.5, 64)

	s.AddPlane(core.NewVec3(-300, 0, 0), core.NewVec3(1, 0, 0), mirror)
	s.AddPlane(core.NewVec3(300, 0, 0), core.NewVec3(-1, 0, 0), mirror)

	s.AddSphere(core.NewVec3(-120, 40, 600), 80, material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2)))
	s.AddSphere(core.NewVec3(0, 60, 800), 60, material.NewReflective(core.NewVec3(0.2, 0.8, 0.2), 0.2))
	s.AddSphere(core.NewVec3(140, 20, 700), 100, material.NewDiffuse(core.NewVec3(0.2, 0.3, 0.9)))

	// Floor below the spheres (world Y grows downwards on screen)
	s.AddPlane(core.NewVec3(0, 120, 0), core.NewVec3(0, -1, 0), material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7)))

	return s
}
