package renderer

import (
	"math/rand"
)

// RowRenderer traces every pixel of one scanline
type RowRenderer struct {
	raytracer *Raytracer
	camera    *Camera
}

// NewRowRenderer creates a row renderer for the raytracer's configuration
func NewRowRenderer(raytracer *Raytracer) *RowRenderer {
	return &RowRenderer{
		raytracer: raytracer,
		camera:    NewCamera(raytracer.Config()),
	}
}

// RenderRow fills task.Pixels. It writes nothing outside the task's slice.
func (rr *RowRenderer) RenderRow(task RowTask, random *rand.Rand, stats *RenderStats) {
	width := len(task.Pixels) / bytesPerPixel

	for i := 0; i < width; i++ {
		ray := rr.camera.GetRay(i, task.Row)
		rgba := rr.raytracer.PixelColor(ray, random, stats)
		copy(task.Pixels[i*bytesPerPixel:], rgba[:])
	}

	stats.TotalPixels += width
	stats.RowsRendered++
}
