// SPDX-License-Identifier: MIT
// Package: lvgeo/shape
//
// errors.go — sentinel and detail errors for shape construction.
//
// Error policy:
//   • Constructors are the only place that fail; Perimeter never does.
//   • Callers branch with errors.Is(err, ErrNegativeDimension).
//   • Details (kind, offending value) are reachable via errors.As into
//     *NegativeDimensionError.

package shape

import (
	"errors"
	"fmt"
)

// ErrNegativeDimension indicates that a radius or side length below zero
// was passed to a constructor.
var ErrNegativeDimension = errors.New("shape: negative dimension")

// NegativeDimensionError carries the kind that rejected a dimension and
// the rejected value. It unwraps to ErrNegativeDimension.
type NegativeDimensionError struct {
	Kind  Kind
	Value float64
}

// Error returns the human-readable rejection, e.g.
// "A circle must have a radius of at least 0.".
func (e *NegativeDimensionError) Error() string {
	return fmt.Sprintf("%s %s must have a %s of at least 0.",
		e.Kind.article(), e.Kind, e.Kind.DimensionName())
}

// Unwrap exposes the sentinel for errors.Is.
func (e *NegativeDimensionError) Unwrap() error { return ErrNegativeDimension }

// validateDimension accepts v ≥ 0 and rejects everything else, NaN included.
// Complexity: O(1).
func validateDimension(kind Kind, v float64) error {
	if !(v >= 0) {
		return &NegativeDimensionError{Kind: kind, Value: v}
	}

	return nil
}
