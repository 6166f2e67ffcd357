package lights

import "github.com/df07/raytracer-challenge/pkg/core"

// PointLight is a light source with no size at a single point in space.
// It is a plain value and may be shared read-only between render workers.
type PointLight struct {
	Position  core.Tuple // Point the light shines from
	Intensity core.Tuple // Color and brightness of the light
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Tuple) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
