package core

import "math"

// Epsilon is the tolerance used for approximate equality of tuples and matrices
const Epsilon = 1e-5

// Tuple is a 4-component value used for points (W=1), vectors (W=0) and RGB colors
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a new Tuple
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (W=1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (W=0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// NewColor creates a color; the W component is unused and left at 0
func NewColor(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// R returns the red channel of a color
func (t Tuple) R() float64 { return t.X }

// G returns the green channel of a color
func (t Tuple) G() float64 { return t.Y }

// B returns the blue channel of a color
func (t Tuple) B() float64 { return t.Z }

// WithW returns a copy of the tuple with W replaced
func (t Tuple) WithW(w float64) Tuple {
	t.W = w
	return t
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Hadamard returns the component-wise product of two tuples (color blending)
func (t Tuple) Hadamard(other Tuple) Tuple {
	return Tuple{t.X * other.X, t.Y * other.Y, t.Z * other.Z, t.W * other.W}
}

// Dot returns the dot product of two tuples, including W
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. W is ignored and the result is a vector.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Magnitude returns the length of the tuple over all four components
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns the tuple divided by its magnitude.
// A zero-length tuple yields NaN components; callers must pass non-zero vectors.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Magnitude())
}

// Reflect returns the tuple reflected around the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports whether every component differs by less than Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return floatEquals(t.X, other.X) &&
		floatEquals(t.Y, other.Y) &&
		floatEquals(t.Z, other.Z) &&
		floatEquals(t.W, other.W)
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
