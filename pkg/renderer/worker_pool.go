package renderer

import (
	"runtime"
	"sync"
)

// rowsPerTask is the row band height handed to a worker at a time
const rowsPerTask = 16

// RowTask represents a band of framebuffer rows for the worker pool.
// Bands never overlap, so workers write disjoint framebuffer slots.
type RowTask struct {
	RowStart int
	RowEnd   int // exclusive
}

// WorkerPool renders row bands of a framebuffer in parallel
type WorkerPool struct {
	taskQueue  chan RowTask
	workers    []*Worker
	numWorkers int
	fb         *Framebuffer
	wg         sync.WaitGroup
}

// Worker renders row band tasks into the shared framebuffer
type Worker struct {
	ID        int
	raytracer *Raytracer
	fb        *Framebuffer
	taskQueue chan RowTask
}

// NewWorkerPool creates a worker pool rendering into the given framebuffer.
// numWorkers <= 0 selects one worker per CPU.
func NewWorkerPool(scene Scene, fb *Framebuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	maxTasks := (fb.Height + rowsPerTask - 1) / rowsPerTask
	wp := &WorkerPool{
		taskQueue:  make(chan RowTask, maxTasks), // Buffer for all bands
		numWorkers: numWorkers,
		fb:         fb,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:        i,
			raytracer: NewRaytracer(scene, fb.Width, fb.Height),
			fb:        fb,
			taskQueue: wp.taskQueue,
		})
	}

	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Render submits one task per row band and blocks until every band is done
func (wp *WorkerPool) Render() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}

	for start := 0; start < wp.fb.Height; start += rowsPerTask {
		end := start + rowsPerTask
		if end > wp.fb.Height {
			end = wp.fb.Height
		}
		wp.taskQueue <- RowTask{RowStart: start, RowEnd: end}
	}

	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Bands have non-overlapping rows, so writing directly into the
		// shared framebuffer is thread-safe
		w.raytracer.RenderBounds(w.fb, task.RowStart, task.RowEnd)
	}
}
