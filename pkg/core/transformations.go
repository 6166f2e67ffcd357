package core

import "math"

// Translation returns a matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	return Identity4().
		With(0, 3, x).
		With(1, 3, y).
		With(2, 3, z)
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return Identity4().
		With(0, 0, x).
		With(1, 1, y).
		With(2, 2, z)
}

// RotationX returns a right-handed rotation around the X axis
func RotationX(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return Identity4().
		With(1, 1, c).
		With(1, 2, -s).
		With(2, 1, s).
		With(2, 2, c)
}

// RotationY returns a right-handed rotation around the Y axis
func RotationY(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return Identity4().
		With(0, 0, c).
		With(0, 2, s).
		With(2, 0, -s).
		With(2, 2, c)
}

// RotationZ returns a right-handed rotation around the Z axis
func RotationZ(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return Identity4().
		With(0, 0, c).
		With(0, 1, -s).
		With(1, 0, s).
		With(1, 1, c)
}

// Shearing returns a matrix where each coordinate moves in proportion to the others.
// xy is the amount x moves in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Identity4().
		With(0, 1, xy).
		With(0, 2, xz).
		With(1, 0, yx).
		With(1, 2, yz).
		With(2, 0, zx).
		With(2, 1, zy)
}

// Chain composes transforms listed in the order they are applied.
// Chain(a, b, c) equals c * b * a. With no arguments it returns the identity.
func Chain(transforms ...Matrix) Matrix {
	result := Identity4()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}
