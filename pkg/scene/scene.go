package scene

import (
	"errors"
	"fmt"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/geometry"
	"github.com/df07/raytracer-challenge/pkg/lights"
	"github.com/df07/raytracer-challenge/pkg/material"
	"github.com/df07/raytracer-challenge/pkg/renderer"
)

// ErrInvalidScene is returned when a scene cannot be rendered as described
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name     string
	Shapes   []*geometry.Sphere      // Spheres in the scene
	Light    lights.PointLight       // The single light source
	Viewport renderer.ViewportConfig // Where rays start and which wall they pass through
}

// GetShapes returns the spheres in the scene
func (s *Scene) GetShapes() []*geometry.Sphere {
	return s.Shapes
}

// GetLight returns the scene's point light
func (s *Scene) GetLight() lights.PointLight {
	return s.Light
}

// GetViewport returns the viewport configuration
func (s *Scene) GetViewport() renderer.ViewportConfig {
	return s.Viewport
}

// SetSize overrides the canvas size, keeping the wall and ray origin.
// Zero values leave the corresponding dimension unchanged.
func (s *Scene) SetSize(width, height int) {
	if width > 0 {
		s.Viewport.Width = width
	}
	if height > 0 {
		s.Viewport.Height = height
	}
}

// Validate checks the viewport, the light and every sphere's material
func (s *Scene) Validate() error {
	if err := s.Viewport.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if !s.Light.Position.IsPoint() {
		return fmt.Errorf("%w: light position must be a point", ErrInvalidScene)
	}
	if s.Light.Intensity.R() < 0 || s.Light.Intensity.G() < 0 || s.Light.Intensity.B() < 0 {
		return fmt.Errorf("%w: light intensity %v must not be negative", ErrInvalidScene, s.Light.Intensity)
	}
	for i, shape := range s.Shapes {
		if shape == nil {
			return fmt.Errorf("%w: sphere %d is nil", ErrInvalidScene, i)
		}
		if err := shape.Material.Validate(); err != nil {
			return fmt.Errorf("%w: sphere %d: %w", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// NewSphere creates a sphere with the given material and transforms.
// Transforms are listed in the order they are applied.
func NewSphere(m material.Material, transforms ...core.Matrix) (*geometry.Sphere, error) {
	sphere := geometry.NewSphere()
	sphere.SetMaterial(m)
	if len(transforms) > 0 {
		if err := sphere.SetTransform(core.Chain(transforms...)); err != nil {
			return nil, err
		}
	}
	return sphere, nil
}

// defaultLight is the white light above, left of and behind the eye used by most scenes
func defaultLight() lights.PointLight {
	return lights.NewPointLight(core.NewPoint(-10, 10, -10), core.NewColor(1, 1, 1))
}
