package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/raytracer-challenge/pkg/core"
)

// ErrInvalidViewport is returned when a viewport cannot produce rays
var ErrInvalidViewport = errors.New("invalid viewport")

// ViewportConfig describes a pinhole view through a square wall.
// Rays start at RayOrigin and pass through points on a wall of size WallSize
// lying in the plane z = WallZ, one point per canvas pixel.
type ViewportConfig struct {
	RayOrigin core.Tuple // Eye position (a point)
	WallZ     float64    // Z coordinate of the wall plane
	WallSize  float64    // Width of the wall in world units
	Width     int        // Canvas width in pixels
	Height    int        // Canvas height in pixels
}

// DefaultViewportConfig returns the classic 100x100 view of a unit sphere at the origin
func DefaultViewportConfig() ViewportConfig {
	return ViewportConfig{
		RayOrigin: core.NewPoint(0, 0, -5),
		WallZ:     10,
		WallSize:  7,
		Width:     100,
		Height:    100,
	}
}

// Validate checks that the viewport has a positive size and a point origin
func (v ViewportConfig) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d must be positive", ErrInvalidViewport, v.Width, v.Height)
	}
	if v.WallSize <= 0 {
		return fmt.Errorf("%w: wall size %g must be positive", ErrInvalidViewport, v.WallSize)
	}
	if !v.RayOrigin.IsPoint() {
		return fmt.Errorf("%w: ray origin must be a point, got w=%g", ErrInvalidViewport, v.RayOrigin.W)
	}
	if v.WallZ == v.RayOrigin.Z {
		return fmt.Errorf("%w: wall at z=%g passes through the ray origin", ErrInvalidViewport, v.WallZ)
	}
	return nil
}

// PixelSize returns the width of one pixel in world units
func (v ViewportConfig) PixelSize() float64 {
	return v.WallSize / float64(v.Width)
}

// WallPoint returns the point on the wall that pixel (x, y) maps to.
// x grows to the right and y grows downward, while world y grows upward.
func (v ViewportConfig) WallPoint(x, y int) core.Tuple {
	pixelSize := v.PixelSize()
	halfWidth := v.WallSize / 2
	halfHeight := pixelSize * float64(v.Height) / 2

	worldX := -halfWidth + pixelSize*float64(x)
	worldY := halfHeight - pixelSize*float64(y)
	return core.NewPoint(worldX, worldY, v.WallZ)
}

// RayForPixel returns the ray from the origin through pixel (x, y) with a normalized direction
func (v ViewportConfig) RayForPixel(x, y int) core.Ray {
	direction := v.WallPoint(x, y).Subtract(v.RayOrigin).Normalize()
	return core.NewRay(v.RayOrigin, direction)
}
