// SPDX-License-Identifier: MIT
// Package: lvgeo/shape
//
// shape.go — the Shape capability shared by all variants.

package shape

// Shape is anything whose perimeter can be computed. Aggregators such as
// scene.Scene depend only on this interface, so adding a variant never
// touches aggregation code.
//
// The built-in variants also report their Kind; that method is not part
// of the capability, so shapes defined elsewhere need not invent one.
type Shape interface {
	// Perimeter returns the length of the shape's boundary. It never fails:
	// the dimension was validated at construction.
	Perimeter() float64
}

// Compile-time checks.
var (
	_ Shape = Circle{}
	_ Shape = Square{}
	_ Shape = EquilateralTriangle{}
)

// must panics on a constructor error. Used by the Must* helpers only.
func must[T Shape](s T, err error) T {
	if err != nil {
		panic(err)
	}

	return s
}
