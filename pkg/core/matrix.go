package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotInvertible is returned when an inverse is requested for a matrix with zero determinant
	ErrNotInvertible = errors.New("matrix: not invertible")

	// ErrDimensionMismatch is returned when matrix sizes do not agree
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Matrix is an immutable square matrix stored as a flat row-major slice
type Matrix struct {
	size     int
	elements []float64
}

// NewMatrix creates a size x size matrix from row-major elements.
// The elements are copied so later changes to the slice do not leak in.
func NewMatrix(size int, elements []float64) (Matrix, error) {
	if size < 1 || len(elements) != size*size {
		return Matrix{}, fmt.Errorf("%w: %d elements for a %dx%d matrix", ErrDimensionMismatch, len(elements), size, size)
	}
	e := make([]float64, len(elements))
	copy(e, elements)
	return Matrix{size: size, elements: e}, nil
}

// MustMatrix is like NewMatrix but panics on invalid input
func MustMatrix(size int, elements ...float64) Matrix {
	m, err := NewMatrix(size, elements)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the size x size identity matrix
func Identity(size int) Matrix {
	e := make([]float64, size*size)
	for i := 0; i < size; i++ {
		e[i*size+i] = 1
	}
	return Matrix{size: size, elements: e}
}

// Identity4 returns the 4x4 identity matrix, the default transform
func Identity4() Matrix {
	return Identity(4)
}

// Size returns the number of rows (and columns)
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row r, column c
func (m Matrix) At(r, c int) float64 {
	return m.elements[r*m.size+c]
}

// With returns a copy of the matrix with the element at (r, c) replaced by v
func (m Matrix) With(r, c int, v float64) Matrix {
	e := make([]float64, len(m.elements))
	copy(e, m.elements)
	e[r*m.size+c] = v
	return Matrix{size: m.size, elements: e}
}

// Equals reports whether two matrices have the same size and elements within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.elements {
		if !floatEquals(m.elements[i], other.elements[i]) {
			return false
		}
	}
	return true
}

// Multiply returns m * other. Both matrices must have the same size; a mismatch panics.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.size != other.size {
		panic(fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrDimensionMismatch, m.size, m.size, other.size, other.size))
	}
	n := m.size
	e := make([]float64, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += m.elements[r*n+k] * other.elements[k*n+c]
			}
			e[r*n+c] = sum
		}
	}
	return Matrix{size: n, elements: e}
}

// MultiplyTuple returns m * t, treating t as a column vector. m must be 4x4.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.size != 4 {
		panic(fmt.Errorf("%w: cannot multiply %dx%d matrix by a tuple", ErrDimensionMismatch, m.size, m.size))
	}
	e := m.elements
	return Tuple{
		X: e[0]*t.X + e[1]*t.Y + e[2]*t.Z + e[3]*t.W,
		Y: e[4]*t.X + e[5]*t.Y + e[6]*t.Z + e[7]*t.W,
		Z: e[8]*t.X + e[9]*t.Y + e[10]*t.Z + e[11]*t.W,
		W: e[12]*t.X + e[13]*t.Y + e[14]*t.Z + e[15]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	n := m.size
	e := make([]float64, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			e[c*n+r] = m.elements[r*n+c]
		}
	}
	return Matrix{size: n, elements: e}
}

// Submatrix returns the (size-1)x(size-1) matrix with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	n := m.size - 1
	e := make([]float64, 0, n*n)
	for r := 0; r < m.size; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.size; c++ {
			if c == col {
				continue
			}
			e = append(e, m.elements[r*m.size+c])
		}
	}
	return Matrix{size: n, elements: e}
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 1:
		return m.elements[0]
	case 2:
		return m.elements[0]*m.elements[3] - m.elements[1]*m.elements[2]
	}

	det := 0.0
	for c := 0; c < m.size; c++ {
		det += m.At(0, c) * m.Cofactor(0, c)
	}
	return det
}

// Invertible reports whether the matrix has a non-zero determinant
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse matrix, or ErrNotInvertible when the determinant is zero
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}

	n := m.size
	e := make([]float64, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			// Writing to (c, r) transposes the cofactor matrix
			e[c*n+r] = m.Cofactor(r, c) / det
		}
	}
	return Matrix{size: n, elements: e}, nil
}

// String formats the matrix one row per line
func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.size; r++ {
		sb.WriteString("|")
		for c := 0; c < m.size; c++ {
			fmt.Fprintf(&sb, " %9.5f |", m.At(r, c))
		}
		if r < m.size-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
