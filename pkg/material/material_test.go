package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-ao-raytracer/pkg/core"
)

func TestNewDiffuse(t *testing.T) {
	m := NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))

	if m.IsReflective() {
		t.Error("Expected diffuse material to be non-reflective")
	}
	if m.SpecularStrength != DefaultSpecularStrength || m.SpecularExponent != DefaultSpecularExponent {
		t.Errorf("Expected default highlight, got strength=%f exponent=%f", m.SpecularStrength, m.SpecularExponent)
	}
}

func TestRandomMaterial_Ranges(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		m := RandomMaterial(random)
		for _, c := range []float64{m.Color.X, m.Color.Y, m.Color.Z, m.Reflectance} {
			if c < 0 || c >= 1 {
				t.Fatalf("Expected value in [0,1), got %f", c)
			}
		}
	}
}

func TestRandomMaterial_Deterministic(t *testing.T) {
	a := RandomMaterial(rand.New(rand.NewSource(99)))
	b := RandomMaterial(rand.New(rand.NewSource(99)))

	if a != b {
		t.Errorf("Expected identical materials from identical seeds, got %+v and %+v", a, b)
	}
}
