package renderer

import (
	"time"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/geometry"
	"github.com/df07/raytracer-challenge/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetShapes() []*geometry.Sphere
	GetLight() lights.PointLight
	GetViewport() ViewportConfig
}

// Raytracer shades primary rays against the spheres of a scene.
// It holds no mutable state, so one Raytracer may be shared by many goroutines.
type Raytracer struct {
	shapes   []*geometry.Sphere
	light    lights.PointLight
	viewport ViewportConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		shapes:   scene.GetShapes(),
		light:    scene.GetLight(),
		viewport: scene.GetViewport(),
	}
}

// Viewport returns the viewport rays are generated from
func (rt *Raytracer) Viewport() ViewportConfig {
	return rt.viewport
}

// hitWorld intersects the ray with every sphere and returns the visible hit
func (rt *Raytracer) hitWorld(ray core.Ray) (geometry.Intersection, bool) {
	var xs geometry.Intersections
	for _, shape := range rt.shapes {
		xs = append(xs, shape.Intersect(ray)...)
	}
	return xs.Hit()
}

// ColorAt returns the shaded color seen along the ray and whether anything was hit.
// Rays that miss every sphere are black.
func (rt *Raytracer) ColorAt(ray core.Ray) (core.Tuple, bool) {
	hit, ok := rt.hitWorld(ray)
	if !ok {
		return core.NewColor(0, 0, 0), false
	}

	point := ray.Position(hit.T)
	normal := hit.Object.NormalAt(point)
	eye := ray.Direction.Negate()

	return hit.Object.Material.Lighting(rt.light, point, eye, normal), true
}

// renderRow shades every pixel in row y and counts the hits
func (rt *Raytracer) renderRow(y int) RowResult {
	row := RowResult{Y: y, Pixels: make([]Pixel, rt.viewport.Width)}
	for x := 0; x < rt.viewport.Width; x++ {
		color, hit := rt.ColorAt(rt.viewport.RayForPixel(x, y))
		if hit {
			row.Hits++
		}
		row.Pixels[x] = Pixel{X: x, Y: y, Color: color}
	}
	return row
}

// RenderRow shades every pixel in row y, left to right
func (rt *Raytracer) RenderRow(y int) []Pixel {
	return rt.renderRow(y).Pixels
}

// RenderPass renders the whole viewport on the calling goroutine
func (rt *Raytracer) RenderPass() (*Canvas, RenderStats) {
	start := time.Now()
	canvas := NewCanvas(rt.viewport.Width, rt.viewport.Height)
	stats := RenderStats{Workers: 1}

	for y := 0; y < rt.viewport.Height; y++ {
		row := rt.renderRow(y)
		for _, p := range row.Pixels {
			canvas.pixels[p.Y*canvas.width+p.X] = p.Color
		}
		stats.AddRow(row)
	}

	stats.Duration = time.Since(start)
	return canvas, stats
}
