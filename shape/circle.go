// SPDX-License-Identifier: MIT
// Package: lvgeo/shape
//
// circle.go — Circle variant.

package shape

import (
	"fmt"
	"math"
)

// Circle is a circle of fixed radius. The zero value is a circle of radius 0.
type Circle struct {
	radius float64
}

// NewCircle returns a Circle with radius r.
// Returns *NegativeDimensionError (ErrNegativeDimension) if r < 0.
// Complexity: O(1).
func NewCircle(r float64) (Circle, error) {
	if err := validateDimension(KindCircle, r); err != nil {
		return Circle{}, err
	}

	return Circle{radius: r}, nil
}

// MustCircle is NewCircle that panics on invalid input.
// Intended for literals in examples and tests.
func MustCircle(r float64) Circle { return must(NewCircle(r)) }

// Radius returns the circle's radius.
func (c Circle) Radius() float64 { return c.radius }

// Kind returns KindCircle.
func (c Circle) Kind() Kind { return KindCircle }

// Perimeter returns 2πr, computed as 8·atan(1)·r.
func (c Circle) Perimeter() float64 {
	return 8 * math.Atan(1) * c.radius
}

// String formats the circle as "circle(r=<radius>)".
func (c Circle) String() string {
	return fmt.Sprintf("%s(r=%g)", KindCircle, c.radius)
}
