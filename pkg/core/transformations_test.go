package core

import (
	"math"
	"testing"
)

func mustInverse(t *testing.T, m Matrix) Matrix {
	t.Helper()
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error inverting\n%v\n: %v", m, err)
	}
	return inv
}

func TestTransformations_ApplyToTuples(t *testing.T) {
	tests := []struct {
		name      string
		transform Matrix
		input     Tuple
		expected  Tuple
	}{
		{"translate point", Translation(5, -3, 2), NewPoint(-3, 4, 5), NewPoint(2, 1, 7)},
		{"translation does not affect vectors", Translation(5, -3, 2), NewVector(-3, 4, 5), NewVector(-3, 4, 5)},
		{"scale point", Scaling(2, 3, 4), NewPoint(-4, 6, 8), NewPoint(-8, 18, 32)},
		{"scale vector", Scaling(2, 3, 4), NewVector(-4, 6, 8), NewVector(-8, 18, 32)},
		{"reflection is scaling by a negative value", Scaling(-1, 1, 1), NewPoint(2, 3, 4), NewPoint(-2, 3, 4)},
		{"half quarter around x", RotationX(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(0, math.Sqrt2/2, math.Sqrt2/2)},
		{"full quarter around x", RotationX(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"half quarter around y", RotationY(math.Pi / 4), NewPoint(0, 0, 1), NewPoint(math.Sqrt2/2, 0, math.Sqrt2/2)},
		{"full quarter around y", RotationY(math.Pi / 2), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"half quarter around z", RotationZ(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(-math.Sqrt2/2, math.Sqrt2/2, 0)},
		{"full quarter around z", RotationZ(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(-1, 0, 0)},
		{"shear x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(5, 3, 4)},
		{"shear x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(6, 3, 4)},
		{"shear y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(2, 5, 4)},
		{"shear y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 3, 4), NewPoint(2, 7, 4)},
		{"shear z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 4), NewPoint(2, 3, 6)},
		{"shear z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 4), NewPoint(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transform.MultiplyTuple(tt.input); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransformations_Inverses(t *testing.T) {
	tests := []struct {
		name      string
		transform Matrix
		input     Tuple
		expected  Tuple
	}{
		{"inverse translation", Translation(5, -3, 2), NewPoint(-3, 4, 5), NewPoint(-8, 7, 3)},
		{"inverse scaling", Scaling(2, 3, 4), NewVector(-4, 6, 8), NewVector(-2, 2, 2)},
		{"inverse x rotation rotates the other way", RotationX(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := mustInverse(t, tt.transform)
			if got := inv.MultiplyTuple(tt.input); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransformations_TimesInverseIsIdentity(t *testing.T) {
	transforms := map[string]Matrix{
		"translation": Translation(10, -5, 0.25),
		"scaling":     Scaling(2, 0.5, -3),
		"rotation x":  RotationX(0.3),
		"rotation y":  RotationY(-1.2),
		"rotation z":  RotationZ(math.Pi / 5),
		"shearing":    Shearing(1, 0.5, 0, 0.25, 0, 2),
		"composite":   Translation(1, 2, 3).Multiply(RotationY(0.7)).Multiply(Scaling(1, 0.5, 1)),
	}

	for name, m := range transforms {
		t.Run(name, func(t *testing.T) {
			if got := m.Multiply(mustInverse(t, m)); !got.Equals(Identity4()) {
				t.Errorf("Expected identity, got\n%v", got)
			}
		})
	}
}

func TestTransformations_Composition(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// Applied individually
	p2 := a.MultiplyTuple(p)
	if !p2.Equals(NewPoint(1, -1, 0)) {
		t.Errorf("After rotation expected (1,-1,0), got %v", p2)
	}
	p3 := b.MultiplyTuple(p2)
	if !p3.Equals(NewPoint(5, -5, 0)) {
		t.Errorf("After scaling expected (5,-5,0), got %v", p3)
	}
	p4 := c.MultiplyTuple(p3)
	if !p4.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("After translation expected (15,0,7), got %v", p4)
	}

	// Chained in reverse order
	composite := c.Multiply(b).Multiply(a)
	if got := composite.MultiplyTuple(p); !got.Equals(p4) {
		t.Errorf("Expected composite result %v, got %v", p4, got)
	}

	// Chain takes the application order
	if got := Chain(a, b, c).MultiplyTuple(p); !got.Equals(p4) {
		t.Errorf("Expected Chain result %v, got %v", p4, got)
	}
	if !Chain().Equals(Identity4()) {
		t.Error("Empty chain should be the identity")
	}
}
