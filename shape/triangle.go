// SPDX-License-Identifier: MIT
// Package: lvgeo/shape
//
// triangle.go — EquilateralTriangle variant.

package shape

import "fmt"

// EquilateralTriangle is a triangle with three sides of equal length.
type EquilateralTriangle struct {
	side float64
}

// NewEquilateralTriangle returns an EquilateralTriangle with side length s.
// Returns *NegativeDimensionError (ErrNegativeDimension) if s < 0.
// Complexity: O(1).
func NewEquilateralTriangle(s float64) (EquilateralTriangle, error) {
	if err := validateDimension(KindEquilateralTriangle, s); err != nil {
		return EquilateralTriangle{}, err
	}

	return EquilateralTriangle{side: s}, nil
}

// MustEquilateralTriangle is NewEquilateralTriangle that panics on invalid input.
func MustEquilateralTriangle(s float64) EquilateralTriangle {
	return must(NewEquilateralTriangle(s))
}

// Side returns the side length.
func (t EquilateralTriangle) Side() float64 { return t.side }

// Kind returns KindEquilateralTriangle.
func (t EquilateralTriangle) Kind() Kind { return KindEquilateralTriangle }

// Perimeter returns 3·s.
func (t EquilateralTriangle) Perimeter() float64 { return 3 * t.side }

// String formats the triangle as "equilateral_triangle(s=<side>)".
func (t EquilateralTriangle) String() string {
	return fmt.Sprintf("%s(s=%g)", KindEquilateralTriangle, t.side)
}
