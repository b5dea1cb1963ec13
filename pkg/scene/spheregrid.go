package scene

import (
	"math/rand"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/material"
)

// DefaultRandomSceneSeed is used when no seed is given, so the scene is stable
const DefaultRandomSceneSeed = 1

// NewRandomSpheresScene creates a grid of spheres resting on a floor, each
// with a material drawn from a generator seeded with seed
func NewRandomSpheresScene(seed int64) *Scene {
	if seed == 0 {
		seed = DefaultRandomSceneSeed
	}
	random := rand.New(rand.NewSource(seed))

	s := newScene()

	floorY := 150.0
	s.AddPlane(core.NewVec3(0, floorY, 0), core.NewVec3(0, -1, 0), material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))

	columns, rows := 5, 4
	spacing := 120.0
	sphereRadius := spacing * 0.35

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			center := core.NewVec3(
				(float64(col)-float64(columns-1)/2)*spacing,
				floorY-sphereRadius,
				500+float64(row)*spacing*1.25,
			)
			s.AddSphere(center, sphereRadius, material.RandomMaterial(random))
		}
	}

	return s
}
