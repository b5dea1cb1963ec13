package material

import (
	"math/rand"

	"github.com/df07/go-ao-raytracer/pkg/core"
)

// Default Phong highlight used by the convenience constructors
const (
	DefaultSpecularStrength = 0.3
	DefaultSpecularExponent = 16.0
)

// Material describes how a surface is shaded. It is a plain value and is
// never modified after construction.
type Material struct {
	Color            core.Vec3 // Albedo, each channel nominally in [0,1]
	Reflectance      float64   // Fraction of the final color taken from the mirror ray
	SpecularStrength float64   // Scale of the Phong highlight
	SpecularExponent float64   // Sharpness of the Phong highlight
}

// NewMaterial creates a material with every parameter given explicitly
func NewMaterial(color core.Vec3, reflectance, specularStrength, specularExponent float64) Material {
	return Material{
		Color:            color,
		Reflectance:      reflectance,
		SpecularStrength: specularStrength,
		SpecularExponent: specularExponent,
	}
}

// NewDiffuse creates a non-reflective material with the default highlight
func NewDiffuse(color core.Vec3) Material {
	return NewMaterial(color, 0, DefaultSpecularStrength, DefaultSpecularExponent)
}

// NewReflective creates a material mixing the given color with mirror reflection
func NewReflective(color core.Vec3, reflectance float64) Material {
	return NewMaterial(color, reflectance, DefaultSpecularStrength, DefaultSpecularExponent)
}

// RandomMaterial picks a random color and reflectance from the given generator
func RandomMaterial(random *rand.Rand) Material {
	color := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
	return NewReflective(color, random.Float64())
}

// IsReflective reports whether shading spawns a mirror ray for this material
func (m Material) IsReflective() bool {
	return m.Reflectance > 0
}
