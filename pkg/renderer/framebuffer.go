package renderer

import (
	"fmt"
	"image"
	"sync"
)

// FrameBuffer holds the RGBA pixels of a render in progress.
// Rows are written by the render loop while a display reads snapshots concurrently.
type FrameBuffer struct {
	mu    sync.Mutex
	img   *image.RGBA
	rows  int
	dirty bool
}

// NewFrameBuffer creates an opaque black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return &FrameBuffer{img: img, dirty: true}
}

// Width returns the buffer width in pixels
func (f *FrameBuffer) Width() int { return f.img.Bounds().Dx() }

// Height returns the buffer height in pixels
func (f *FrameBuffer) Height() int { return f.img.Bounds().Dy() }

// WriteRow stores a finished row. Pixels outside the buffer are rejected before anything is written.
func (f *FrameBuffer) WriteRow(row RowResult) error {
	bounds := f.img.Bounds()
	for _, p := range row.Pixels {
		if !(image.Point{X: p.X, Y: p.Y}).In(bounds) {
			return fmt.Errorf("%w: (%d, %d) on %dx%d frame", ErrOutOfBounds, p.X, p.Y, bounds.Dx(), bounds.Dy())
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range row.Pixels {
		f.img.SetRGBA(p.X, p.Y, tupleToRGBA(p.Color))
	}
	f.rows++
	f.dirty = true
	return nil
}

// RowsDone returns how many rows have been written
func (f *FrameBuffer) RowsDone() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows
}

// CopyTo copies the pixels into dst if anything changed since the last copy.
// dst must hold Width*Height*4 bytes.
func (f *FrameBuffer) CopyTo(dst []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.dirty {
		return false
	}
	copy(dst, f.img.Pix)
	f.dirty = false
	return true
}
