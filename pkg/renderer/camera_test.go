package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-ao-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	config := DefaultConfig() // 1023x767, focal length 511.5
	camera := NewCamera(config)

	tests := []struct {
		name     string
		i, j     int
		expected core.Vec3
	}{
		{"centre pixel", 511, 383, core.NewVec3(0, 0, 1)},
		{"top left", 0, 0, core.NewVec3(-511, -383, 511.5).Normalize()},
		{"bottom right", 1022, 766, core.NewVec3(511, 383, 511.5).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.i, tt.j)

			if ray.Origin != config.Eye {
				t.Errorf("Expected origin %v, got %v", config.Eye, ray.Origin)
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-12 {
				t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
			}
		})
	}
}

func TestCamera_CustomEyeAndFocalLength(t *testing.T) {
	config := DefaultConfig()
	config.Width = 3
	config.Height = 3
	config.Eye = core.NewVec3(5, 5, 5)
	config.FocalLength = 1
	camera := NewCamera(config)

	ray := camera.GetRay(2, 1)
	expected := core.NewVec3(1, 0, 1).Normalize()

	if ray.Origin != config.Eye {
		t.Errorf("Expected origin %v, got %v", config.Eye, ray.Origin)
	}
	if ray.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}
