package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-ao-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer ties a scene, a configuration and a worker pool together
type Renderer struct {
	config     Config
	workerPool *WorkerPool
	logger     core.Logger
}

// NewRenderer creates a renderer for the scene
func NewRenderer(scene Scene, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Renderer{
		config:     config,
		workerPool: NewWorkerPool(NewRaytracer(scene, config), config.NumWorkers),
		logger:     logger,
	}
}

// Render produces the full image. It only fails when ctx is cancelled.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	fb := NewFramebuffer(r.config.Width, r.config.Height)

	r.logger.Printf("Rendering %dx%d with %d workers (%d AO samples, max depth %d)...\n",
		r.config.Width, r.config.Height, r.workerPool.GetNumWorkers(), r.config.AOSamples, r.config.MaxDepth)

	startTime := time.Now()
	stats, err := r.workerPool.Render(ctx, fb)
	if err != nil {
		r.logger.Printf("Rendering cancelled after %d of %d rows\n", stats.RowsRendered, r.config.Height)
		return nil, stats, fmt.Errorf("render cancelled: %w", err)
	}

	r.logger.Printf("Render completed in %v (%d rays, %d reflection, %d AO)\n",
		time.Since(startTime), stats.TotalRays(), stats.ReflectionRays, stats.AORays)

	return fb.Image(), stats, nil
}
