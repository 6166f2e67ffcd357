package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/lights"
)

// ErrInvalidMaterial is returned by Validate for out-of-range material parameters
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the Phong reflection attributes of a surface
type Material struct {
	Color     core.Tuple // Surface color
	Ambient   float64    // Fraction of ambient light reflected
	Diffuse   float64    // Fraction of diffuse light reflected
	Specular  float64    // Strength of the specular highlight
	Shininess float64    // Size of the specular highlight (higher is smaller and tighter)
}

// NewMaterial returns the default material: white, ambient 0.1, diffuse 0.9, specular 0.9, shininess 200
func NewMaterial() Material {
	return Material{
		Color:     core.NewColor(1, 1, 1),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Validate checks that the reflection coefficients are usable
func (m Material) Validate() error {
	if m.Ambient < 0 || m.Diffuse < 0 || m.Specular < 0 {
		return fmt.Errorf("%w: ambient, diffuse and specular must be non-negative (got %g, %g, %g)",
			ErrInvalidMaterial, m.Ambient, m.Diffuse, m.Specular)
	}
	if m.Shininess <= 0 {
		return fmt.Errorf("%w: shininess must be positive, got %g", ErrInvalidMaterial, m.Shininess)
	}
	return nil
}

// Lighting shades a point on the surface with the Phong model.
// eyev points from the surface toward the eye and normalv is the unit surface normal.
// The result is not clamped; clamping happens when pixels are exported.
func (m Material) Lighting(light lights.PointLight, point, eyev, normalv core.Tuple) core.Tuple {
	black := core.NewColor(0, 0, 0)

	// Combine the surface color with the light's color/intensity
	effectiveColor := m.Color.Hadamard(light.Intensity)

	// Direction from the point to the light source
	lightv := light.Position.Subtract(point).Normalize()

	ambient := effectiveColor.Multiply(m.Ambient)

	// Cosine of the angle between light and normal; negative means
	// the light is on the other side of the surface
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	// Cosine of the angle between the reflection and the eye; zero or
	// negative means the light reflects away from the eye
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)

	specular := black
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
