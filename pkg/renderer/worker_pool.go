package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/raytracer-challenge/pkg/core"
)

// ErrCanvasSize is returned when a canvas does not match the viewport being rendered
var ErrCanvasSize = errors.New("canvas size does not match viewport")

// RowResult contains one fully shaded scanline
type RowResult struct {
	Y      int
	Pixels []Pixel
	Hits   int // Pixels in the row that hit a sphere
}

// WorkerPool renders a scene by handing scanlines to a fixed set of workers.
// Workers only read the scene. Results are delivered to a single consumer,
// which is the only goroutine that writes to the canvas.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
	logger     core.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers (0 = use CPU count)
func NewWorkerPool(scene Scene, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		raytracer:  NewRaytracer(scene),
		numWorkers: numWorkers,
		logger:     NopLogger{},
	}
}

// SetLogger sets the logger used for start, progress and completion messages
func (wp *WorkerPool) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	wp.logger = logger
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Viewport returns the viewport being rendered
func (wp *WorkerPool) Viewport() ViewportConfig {
	return wp.raytracer.Viewport()
}

// RenderRows starts rendering and returns a channel of finished rows in completion order.
// The row channel is closed when rendering ends; the error channel then yields
// the render error (if any) and is closed. The caller must drain the row channel
// or cancel the context.
func (wp *WorkerPool) RenderRows(ctx context.Context) (<-chan RowResult, <-chan error) {
	height := wp.raytracer.viewport.Height
	rowChan := make(chan RowResult, wp.numWorkers)
	errChan := make(chan error, 1)

	go func() {
		defer close(errChan)

		g, gctx := errgroup.WithContext(ctx)
		tasks := make(chan int)

		// Dispatcher: stops handing out rows as soon as the context is done
		g.Go(func() error {
			defer close(tasks)
			for y := 0; y < height; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				select {
				case tasks <- y:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})

		for i := 0; i < wp.numWorkers; i++ {
			g.Go(func() error {
				for y := range tasks {
					row := wp.raytracer.renderRow(y)
					select {
					case rowChan <- row:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
				return nil
			})
		}

		err := g.Wait()
		close(rowChan)
		if err != nil {
			errChan <- err
		}
	}()

	return rowChan, errChan
}

// Render fills the canvas using the worker pool and returns the render statistics.
// On cancellation the canvas holds whichever rows finished and the context error is returned.
func (wp *WorkerPool) Render(ctx context.Context, canvas *Canvas) (RenderStats, error) {
	viewport := wp.raytracer.viewport
	if canvas.Width() != viewport.Width || canvas.Height() != viewport.Height {
		return RenderStats{}, fmt.Errorf("%w: canvas is %dx%d, viewport is %dx%d",
			ErrCanvasSize, canvas.Width(), canvas.Height(), viewport.Width, viewport.Height)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	stats := RenderStats{Workers: wp.numWorkers}
	interval := progressInterval(viewport.Height)

	wp.logger.Printf("Rendering %dx%d with %d workers...\n", viewport.Width, viewport.Height, wp.numWorkers)

	rowChan, errChan := wp.RenderRows(ctx)
	for row := range rowChan {
		if err := canvas.WritePixels(row.Pixels); err != nil {
			return stats, err
		}
		stats.AddRow(row)
		if stats.Rows%interval == 0 && stats.Rows < viewport.Height {
			wp.logger.Printf("Rendered %d/%d rows\n", stats.Rows, viewport.Height)
		}
	}
	stats.Duration = time.Since(start)

	if err := <-errChan; err != nil {
		wp.logger.Printf("Render stopped after %d/%d rows: %v\n", stats.Rows, viewport.Height, err)
		return stats, fmt.Errorf("render cancelled: %w", err)
	}

	wp.logger.Printf("Render complete: %d pixels (%.1f%% hit) in %v\n",
		stats.TotalPixels, stats.HitRatio()*100, stats.Duration)
	return stats, nil
}
