package renderer

import (
	"runtime"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/shirou/gopsutil/cpu"
)

// Config contains every tunable of a render
type Config struct {
	Width  int // Image width in pixels
	Height int // Image height in pixels

	Eye         core.Vec3 // Origin of every primary ray
	FocalLength float64   // Distance to the image plane in pixel units (0 = Width/2)

	LightDir         core.Vec3 // Direction towards the light, normalized on use
	LightColor       core.Vec3 // Color of specular highlights
	SkyColor         core.Vec3 // Returned for rays that hit nothing
	DepthCutoffColor core.Vec3 // Returned once MaxDepth is exceeded
	Ambient          float64   // Constant added to the diffuse term before occlusion

	AOSamples int     // Ambient occlusion rays per shading point
	AOCutoff  float64 // Occluders farther than this do not count

	MaxDepth   int   // Deepest reflection level that is still shaded
	NumWorkers int   // Number of parallel workers (0 = logical core count)
	Seed       int64 // 0 = seed from entropy, otherwise reproducible output
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:            1023,
		Height:           767,
		Eye:              core.NewVec3(0, 0, 0),
		LightDir:         core.NewVec3(-1, -1, -1).Normalize(),
		LightColor:       core.NewVec3(1, 1, 1),
		SkyColor:         core.NewVec3(0.6, 0.75, 1.0),
		DepthCutoffColor: core.NewVec3(0.5, 0.5, 0.5),
		Ambient:          0.2,
		AOSamples:        64,
		AOCutoff:         100,
		MaxDepth:         5,
		NumWorkers:       0, // Auto-detect CPU count
		Seed:             0,
	}
}

// MergeConfig returns base with every non-zero field of override applied
func MergeConfig(base, override Config) Config {
	result := base
	zero := core.Vec3{}

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Eye != zero {
		result.Eye = override.Eye
	}
	if override.FocalLength != 0 {
		result.FocalLength = override.FocalLength
	}
	if override.LightDir != zero {
		result.LightDir = override.LightDir
	}
	if override.LightColor != zero {
		result.LightColor = override.LightColor
	}
	if override.SkyColor != zero {
		result.SkyColor = override.SkyColor
	}
	if override.DepthCutoffColor != zero {
		result.DepthCutoffColor = override.DepthCutoffColor
	}
	if override.Ambient != 0 {
		result.Ambient = override.Ambient
	}
	if override.AOSamples != 0 {
		result.AOSamples = override.AOSamples
	}
	if override.AOCutoff != 0 {
		result.AOCutoff = override.AOCutoff
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}

	return result
}

// DefaultNumWorkers returns the number of logical cores
func DefaultNumWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
