package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/raytracer-challenge/pkg/core"
)

// ErrOutOfBounds is returned when a pixel coordinate lies outside the canvas
var ErrOutOfBounds = errors.New("pixel out of bounds")

// Canvas is a rectangular grid of colors. (0,0) is the top-left pixel and y grows downward.
type Canvas struct {
	width  int
	height int
	pixels []core.Tuple // row-major
}

// NewCanvas creates a canvas with every pixel black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Tuple, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x, y) addresses a pixel on the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel sets the color at (x, y)
func (c *Canvas) WritePixel(x, y int, color core.Tuple) error {
	if !c.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	c.pixels[y*c.width+x] = color
	return nil
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) (core.Tuple, error) {
	if !c.InBounds(x, y) {
		return core.Tuple{}, fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return c.pixels[y*c.width+x], nil
}

// Fill sets every pixel to the given color
func (c *Canvas) Fill(color core.Tuple) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// WritePixels writes a batch of pixels, stopping at the first out-of-bounds pixel
func (c *Canvas) WritePixels(pixels []Pixel) error {
	for _, p := range pixels {
		if err := c.WritePixel(p.X, p.Y, p.Color); err != nil {
			return err
		}
	}
	return nil
}

// Pixel is a single shaded pixel produced by the renderer
type Pixel struct {
	X, Y  int
	Color core.Tuple
}
