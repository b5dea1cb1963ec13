package core

import (
	"math"
	"math/rand"
)

// parallelTolerance decides when a normal is too close to world Z to cross with it
const parallelTolerance = 1e-6

var (
	worldY = NewVec3(0, 1, 0)
	worldZ = NewVec3(0, 0, 1)
)

// RandomCosineDirection generates a cosine-weighted random direction in the hemisphere
// around a unit normal. Directions near the horizon are picked less often.
func RandomCosineDirection(normal Vec3, random *rand.Rand) Vec3 {
	return SampleCosineHemisphere(normal, random.Float64(), random.Float64())
}

// SampleCosineHemisphere maps two uniform numbers in [0, 1) to a cosine-weighted
// direction around normal. Split out from RandomCosineDirection so tests can
// drive it with fixed samples.
func SampleCosineHemisphere(normal Vec3, u1, u2 float64) Vec3 {
	// Uniform point on the unit disk, lifted onto the hemisphere
	r := math.Sqrt(u1)
	phi := 2.0 * math.Pi * u2
	height := math.Sqrt(1.0 - r*r)

	u, v := OrthonormalBasis(normal)

	return u.Multiply(math.Cos(phi) * r).
		Add(v.Multiply(math.Sin(phi) * r)).
		Add(normal.Multiply(height))
}

// OrthonormalBasis returns two unit vectors that together with normal form an
// orthonormal basis. World Z is the reference axis; world Y is used only when
// normal is (anti)parallel to Z, where the cross product would vanish.
func OrthonormalBasis(normal Vec3) (Vec3, Vec3) {
	reference := worldZ
	if math.Abs(math.Abs(normal.Dot(worldZ))-1.0) < parallelTolerance {
		reference = worldY
	}

	u := normal.Cross(reference).Normalize()
	v := normal.Cross(u)
	return u, v
}
