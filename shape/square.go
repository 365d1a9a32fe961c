// SPDX-License-Identifier: MIT
// Package: lvgeo/shape
//
// square.go — Square variant.

package shape

import "fmt"

// Square is a square of fixed side length.
type Square struct {
	side float64
}

// NewSquare returns a Square with side length s.
// Returns *NegativeDimensionError (ErrNegativeDimension) if s < 0.
// Complexity: O(1).
func NewSquare(s float64) (Square, error) {
	if err := validateDimension(KindSquare, s); err != nil {
		return Square{}, err
	}

	return Square{side: s}, nil
}

// MustSquare is NewSquare that panics on invalid input.
func MustSquare(s float64) Square { return must(NewSquare(s)) }

// Side returns the side length.
func (q Square) Side() float64 { return q.side }

// Kind returns KindSquare.
func (q Square) Kind() Kind { return KindSquare }

// Perimeter returns 4·s.
func (q Square) Perimeter() float64 { return 4 * q.side }

// String formats the square as "square(s=<side>)".
func (q Square) String() string {
	return fmt.Sprintf("%s(s=%g)", KindSquare, q.side)
}
