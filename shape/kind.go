// SPDX-License-Identifier: MIT
// Package: lvgeo/shape
//
// kind.go — enumeration of the supported shape kinds.

package shape

// Kind identifies a shape variant.
type Kind int

const (
	// KindCircle is a circle described by its radius.
	KindCircle Kind = iota
	// KindSquare is a square described by its side length.
	KindSquare
	// KindEquilateralTriangle is an equilateral triangle described by its side length.
	KindEquilateralTriangle
)

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	case KindEquilateralTriangle:
		return "equilateral_triangle"
	default:
		return "unknown"
	}
}

// DimensionName reports which measurement a kind is built from:
// "radius" for circles, "length" for polygons.
func (k Kind) DimensionName() string {
	if k == KindCircle {
		return "radius"
	}

	return "length"
}

// article picks the indefinite article for the kind name.
func (k Kind) article() string {
	switch k.String()[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "An"
	default:
		return "A"
	}
}
