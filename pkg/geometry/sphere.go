package geometry

import (
	"fmt"
	"math"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin.
// Its size and position in the world come from its transform.
type Sphere struct {
	Material material.Material

	transform        core.Matrix
	inverse          core.Matrix // world -> object
	inverseTranspose core.Matrix // object normals -> world normals
}

// NewSphere creates a sphere with the identity transform and the default material
func NewSphere() *Sphere {
	identity := core.Identity4()
	return &Sphere{
		Material:         material.NewMaterial(),
		transform:        identity,
		inverse:          identity,
		inverseTranspose: identity,
	}
}

// Transform returns the object-to-world transform
func (s *Sphere) Transform() core.Matrix {
	return s.transform
}

// SetTransform replaces the sphere's transform. Transforms that cannot be
// inverted are rejected and leave the sphere unchanged.
func (s *Sphere) SetTransform(m core.Matrix) error {
	if m.Size() != 4 {
		return fmt.Errorf("sphere transform must be 4x4: %w", core.ErrDimensionMismatch)
	}
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("sphere transform: %w", err)
	}
	s.transform = m
	s.inverse = inv
	s.inverseTranspose = inv.Transpose()
	return nil
}

// SetMaterial replaces the sphere's material
func (s *Sphere) SetMaterial(m material.Material) {
	s.Material = m
}

// Intersect returns the points where the ray crosses the sphere, sorted by t.
// A miss returns an empty collection; a tangent ray returns the same t twice.
func (s *Sphere) Intersect(ray core.Ray) Intersections {
	// Work in object space, where the sphere is centered at the origin with radius 1
	r := ray.Transform(s.inverse)

	sphereToRay := r.Origin.Subtract(core.NewPoint(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersections{}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return NewIntersections(
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	)
}

// NormalAt returns the unit surface normal at a point on the sphere in world space
func (s *Sphere) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectPoint := s.inverse.MultiplyTuple(worldPoint)
	objectNormal := objectPoint.Subtract(core.NewPoint(0, 0, 0))

	// The inverse transpose keeps normals perpendicular under non-uniform
	// scaling and shearing; it can disturb W, so force it back to a vector
	worldNormal := s.inverseTranspose.MultiplyTuple(objectNormal).WithW(0)

	return worldNormal.Normalize()
}
