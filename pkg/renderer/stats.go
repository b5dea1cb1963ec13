package renderer

import (
	"image"

	"github.com/df07/go-ao-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int // Total number of pixels rendered
	RowsRendered    int // Number of row tasks completed
	PrimaryRays     int // One per pixel
	ReflectionRays  int // Mirror rays spawned by reflective materials
	AORays          int // Ambient occlusion probe rays
	SkyHits         int // Primary or mirror rays that left the scene
	MaxDepthReached int // Deepest recursion level RayColor was entered with
}

// Merge folds another worker's statistics into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.RowsRendered += other.RowsRendered
	s.PrimaryRays += other.PrimaryRays
	s.ReflectionRays += other.ReflectionRays
	s.AORays += other.AORays
	s.SkyHits += other.SkyHits
	s.MaxDepthReached = max(s.MaxDepthReached, other.MaxDepthReached)
}

// TotalRays returns every ray traced during the render
func (s RenderStats) TotalRays() int {
	return s.PrimaryRays + s.ReflectionRays + s.AORays
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R), float64(c.G), float64(c.B)).Multiply(1.0 / 255).Luminance()
		}
	}

	return total / float64(pixelCount)
}
