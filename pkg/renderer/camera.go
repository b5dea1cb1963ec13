package renderer

import (
	"github.com/df07/go-ao-raytracer/pkg/core"
)

// Camera generates one primary ray per pixel from a fixed eye point.
// The image plane faces +Z; image columns grow along +X and rows along +Y.
type Camera struct {
	eye         core.Vec3
	halfWidth   float64
	halfHeight  float64
	focalLength float64
}

// NewCamera creates a camera for the given configuration
func NewCamera(config Config) *Camera {
	focalLength := config.FocalLength
	if focalLength == 0 {
		focalLength = float64(config.Width) / 2
	}

	return &Camera{
		eye:         config.Eye,
		halfWidth:   float64(config.Width-1) / 2,
		halfHeight:  float64(config.Height-1) / 2,
		focalLength: focalLength,
	}
}

// GetRay returns the normalized primary ray through pixel (i, j)
func (c *Camera) GetRay(i, j int) core.Ray {
	direction := core.NewVec3(
		float64(i)-c.halfWidth,
		float64(j)-c.halfHeight,
		c.focalLength,
	)
	return core.NewRay(c.eye, direction.Normalize())
}
