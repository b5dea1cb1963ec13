package renderer

import (
	"image"
	"image/color"
	"testing"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Create a 2x2 image
	// Top-left: Red (1, 0, 0) -> Lum = 0.2126
	// Top-right: Green (0, 1, 0) -> Lum = 0.7152
	// Bottom-left: Blue (0, 0, 1) -> Lum = 0.0722
	// Bottom-right: Black (0, 0, 0) -> Lum = 0.0

	// Expected average: (0.2126 + 0.7152 + 0.0722 + 0.0) / 4 = 1.0 / 4 = 0.25

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))

	if avgLum := CalculateAverageLuminance(img); avgLum != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", avgLum)
	}
}

func TestRenderStats_Merge(t *testing.T) {
	a := RenderStats{TotalPixels: 10, RowsRendered: 1, PrimaryRays: 10, ReflectionRays: 3, AORays: 80, SkyHits: 2, MaxDepthReached: 2}
	b := RenderStats{TotalPixels: 20, RowsRendered: 2, PrimaryRays: 20, ReflectionRays: 1, AORays: 40, SkyHits: 5, MaxDepthReached: 1}

	a.Merge(b)

	expected := RenderStats{TotalPixels: 30, RowsRendered: 3, PrimaryRays: 30, ReflectionRays: 4, AORays: 120, SkyHits: 7, MaxDepthReached: 2}
	if a != expected {
		t.Errorf("Expected %+v, got %+v", expected, a)
	}
	if a.TotalRays() != 154 {
		t.Errorf("Expected 154 rays, got %d", a.TotalRays())
	}
}
