package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/geometry"
)

// selfIntersectionEpsilon lifts secondary ray origins off the surface they start on
const selfIntersectionEpsilon = 1e-7

// Scene interface to avoid circular imports
type Scene interface {
	GetShapes() []geometry.Shape
}

// Raytracer shades rays against a read-only scene. It holds no mutable
// state, so one instance is shared by every worker.
type Raytracer struct {
	scene    Scene
	config   Config
	lightDir core.Vec3
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config) *Raytracer {
	return &Raytracer{
		scene:    scene,
		config:   config,
		lightDir: config.LightDir.Normalize(),
	}
}

// Config returns the configuration the raytracer was built with
func (rt *Raytracer) Config() Config {
	return rt.config
}

// TraceRay returns the nearest hit over all shapes. On equal distances the
// shape that comes first in the scene wins.
func (rt *Raytracer) TraceRay(ray core.Ray) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord

	for _, shape := range rt.scene.GetShapes() {
		if hit, isHit := shape.Hit(ray); isHit {
			if closestHit == nil || hit.Distance < closestHit.Distance {
				closestHit = hit
			}
		}
	}

	return closestHit, closestHit != nil
}

// RayColor returns the linear color seen along a ray. depth starts at 0 for
// primary rays and grows by one for each mirror bounce.
func (rt *Raytracer) RayColor(ray core.Ray, random *rand.Rand, depth int, stats *RenderStats) core.Vec3 {
	stats.MaxDepthReached = max(stats.MaxDepthReached, depth)

	if depth > rt.config.MaxDepth {
		return rt.config.DepthCutoffColor
	}

	hit, isHit := rt.TraceRay(ray)
	if !isHit {
		stats.SkyHits++
		return rt.config.SkyColor
	}

	mat := hit.Shape.Material()
	normal := hit.Normal
	point := ray.At(hit.Distance).Add(normal.Multiply(selfIntersectionEpsilon))
	reflected := ray.Direction.Reflect(normal)

	diffuse := clamp01(normal.Dot(rt.lightDir))
	specular := math.Pow(clamp01(reflected.Dot(rt.lightDir)), mat.SpecularExponent) * mat.SpecularStrength

	occlusion := 1.0
	if rt.config.AOSamples > 0 {
		occlusion = rt.AmbientOcclusion(point, normal, random, rt.config.AOSamples, rt.config.AOCutoff)
		stats.AORays += rt.config.AOSamples
	}
	brightness := (diffuse + rt.config.Ambient) * occlusion

	local := mat.Color.Multiply(brightness).Add(rt.config.LightColor.Multiply(specular))

	if !mat.IsReflective() {
		return local
	}

	stats.ReflectionRays++
	mirrored := rt.RayColor(core.NewRay(point, reflected), random, depth+1, stats)
	return local.Multiply(1 - mat.Reflectance).Add(mirrored.Multiply(mat.Reflectance))
}

// AmbientOcclusion estimates the unoccluded fraction of the hemisphere around
// normal by firing cosine-weighted rays from pos. Hits closer than cutoff
// count as occluded. Returns a value in [0, 1].
func (rt *Raytracer) AmbientOcclusion(pos, normal core.Vec3, random *rand.Rand, numSamples int, cutoff float64) float64 {
	if numSamples <= 0 {
		return 1.0
	}

	hits := 0
	for i := 0; i < numSamples; i++ {
		dir := core.RandomCosineDirection(normal, random)
		if hit, isHit := rt.TraceRay(core.NewRay(pos, dir)); isHit && hit.Distance < cutoff {
			hits++
		}
	}

	return 1.0 - float64(hits)/float64(numSamples)
}

// PixelColor returns the 8-bit color for a primary ray
func (rt *Raytracer) PixelColor(ray core.Ray, random *rand.Rand, stats *RenderStats) [4]uint8 {
	stats.PrimaryRays++
	c := rt.RayColor(ray, random, 0, stats)
	return toRGBA(c)
}

// toRGBA clamps a linear color, applies gamma 2 and rounds each channel to 8 bits
func toRGBA(c core.Vec3) [4]uint8 {
	c = c.Clamp(0, 1).GammaCorrect(2.0)
	return [4]uint8{
		uint8(math.Round(c.X * 255)),
		uint8(math.Round(c.Y * 255)),
		uint8(math.Round(c.Z * 255)),
		255,
	}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
