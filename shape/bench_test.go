// Package shape_test provides benchmarks for shape construction and perimeters.
package shape_test

import (
	"testing"

	"github.com/katalvlaran/lvgeo/shape"
)

var sink float64

// BenchmarkNewCircle measures validated construction plus one perimeter call.
func BenchmarkNewCircle(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c, _ := shape.NewCircle(float64(i))
		sink = c.Perimeter()
	}
}

// BenchmarkPerimeter_Interface measures dynamic dispatch through Shape.
func BenchmarkPerimeter_Interface(b *testing.B) {
	shapes := []shape.Shape{
		shape.MustCircle(1),
		shape.MustSquare(1),
		shape.MustEquilateralTriangle(1),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = shapes[i%len(shapes)].Perimeter()
	}
}
