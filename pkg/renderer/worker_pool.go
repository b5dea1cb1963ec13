package renderer

import (
	"context"
	"math/rand"
	"sync"
)

// rowQueue is the shared task list. The mutex only guards the pop; tracing
// happens outside the lock.
type rowQueue struct {
	mu    sync.Mutex
	tasks []RowTask
}

func newRowQueue(tasks []RowTask) *rowQueue {
	return &rowQueue{tasks: tasks}
}

// TryDequeue pops the next task, reporting false once the queue is empty
func (q *rowQueue) TryDequeue() (RowTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return RowTask{}, false
	}
	task := q.tasks[0]
	q.tasks = q.tasks[1:]
	return task, true
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
	seed       int64
}

// Worker renders rows until the queue runs dry. Each worker owns its random
// generator and its statistics; neither is shared.
type Worker struct {
	ID       int
	renderer *RowRenderer
	queue    *rowQueue
	random   *rand.Rand
	seed     int64
	stats    RenderStats
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers()
	}

	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
		seed:       raytracer.Config().Seed,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Render traces every row of fb and blocks until all workers have exited.
// Workers check ctx between rows; a cancelled render leaves the remaining
// rows untouched and returns ctx.Err().
func (wp *WorkerPool) Render(ctx context.Context, fb *Framebuffer) (RenderStats, error) {
	queue := newRowQueue(fb.Rows())
	rowRenderer := NewRowRenderer(wp.raytracer)

	workers := make([]*Worker, wp.numWorkers)
	var wg sync.WaitGroup

	for i := range workers {
		workers[i] = &Worker{
			ID:       i,
			renderer: rowRenderer,
			queue:    queue,
			random:   newWorkerRandom(wp.seed),
			seed:     wp.seed,
		}
		wg.Add(1)
		go workers[i].run(ctx, &wg)
	}

	wg.Wait()

	var stats RenderStats
	for _, w := range workers {
		stats.Merge(w.stats)
	}

	return stats, ctx.Err()
}

// newWorkerRandom draws a seed from the process-wide generator, which is
// seeded from entropy at start-up. Fixed-seed renders reseed per row instead.
func newWorkerRandom(seed int64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for ctx.Err() == nil {
		task, ok := w.queue.TryDequeue()
		if !ok {
			return
		}

		// Tie the noise pattern to the row, not to whichever worker got it
		if w.seed != 0 {
			w.random.Seed(w.seed + int64(task.Row))
		}

		w.renderer.RenderRow(task, w.random, &w.stats)
	}
}
