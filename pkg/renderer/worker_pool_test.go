package renderer

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/geometry"
	"github.com/df07/go-ao-raytracer/pkg/material"
)

func sphereOnGround() MockScene {
	return MockScene{shapes: []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, 500), 100, white),
		geometry.NewPlane(core.NewVec3(0, 100, 0), core.NewVec3(0, -1, 0), material.NewReflective(core.NewVec3(0.1, 0.5, 0.1), 0.3)),
	}}
}

func TestRowQueue_EachTaskDequeuedOnce(t *testing.T) {
	fb := NewFramebuffer(4, 500)
	queue := newRowQueue(fb.Rows())

	var mu sync.Mutex
	seen := make(map[int]int)
	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				task, ok := queue.TryDequeue()
				if !ok {
					return
				}
				mu.Lock()
				seen[task.Row]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != 500 {
		t.Fatalf("Expected 500 distinct rows, got %d", len(seen))
	}
	for row, count := range seen {
		if count != 1 {
			t.Errorf("Row %d dequeued %d times", row, count)
		}
	}
	if _, ok := queue.TryDequeue(); ok {
		t.Error("Expected empty queue")
	}
}

func TestWorkerPool_RenderFillsEveryPixel(t *testing.T) {
	config := testConfig()
	rt := NewRaytracer(sphereOnGround(), config)
	pool := NewWorkerPool(rt, 4)
	fb := NewFramebuffer(config.Width, config.Height)

	stats, err := pool.Render(context.Background(), fb)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if stats.TotalPixels != config.Width*config.Height {
		t.Errorf("Expected %d pixels, got %d", config.Width*config.Height, stats.TotalPixels)
	}
	if stats.RowsRendered != config.Height {
		t.Errorf("Expected %d rows, got %d", config.Height, stats.RowsRendered)
	}
	if stats.PrimaryRays != config.Width*config.Height {
		t.Errorf("Expected one primary ray per pixel, got %d", stats.PrimaryRays)
	}
	for k := 3; k < len(fb.Pix); k += 4 {
		if fb.Pix[k] != 255 {
			t.Fatalf("Pixel %d has alpha %d, expected every pixel written", k/4, fb.Pix[k])
		}
	}
}

func TestWorkerPool_FixedSeedIsReproducible(t *testing.T) {
	config := testConfig()
	rt := NewRaytracer(sphereOnGround(), config)

	render := func(workers int) []byte {
		fb := NewFramebuffer(config.Width, config.Height)
		if _, err := NewWorkerPool(rt, workers).Render(context.Background(), fb); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return fb.Pix
	}

	single := render(1)
	for _, workers := range []int{2, 4, 8} {
		if !bytes.Equal(single, render(workers)) {
			t.Errorf("Render with %d workers differs from single worker render", workers)
		}
	}
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	config := testConfig()
	rt := NewRaytracer(sphereOnGround(), config)
	fb := NewFramebuffer(config.Width, config.Height)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := NewWorkerPool(rt, 2).Render(ctx, fb)
	if err == nil {
		t.Fatal("Expected cancellation error")
	}
	if stats.RowsRendered != 0 {
		t.Errorf("Expected no rows after cancellation, got %d", stats.RowsRendered)
	}
}

func TestNewWorkerPool_DefaultsToCoreCount(t *testing.T) {
	pool := NewWorkerPool(NewRaytracer(MockScene{}, testConfig()), 0)

	if pool.GetNumWorkers() != DefaultNumWorkers() {
		t.Errorf("Expected %d workers, got %d", DefaultNumWorkers(), pool.GetNumWorkers())
	}
	if pool.GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}
}
