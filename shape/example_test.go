package shape_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeo/shape"
)

// ExampleNewCircle builds a unit circle and prints its perimeter.
func ExampleNewCircle() {
	c, err := shape.NewCircle(1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s perimeter=%.6f\n", c, c.Perimeter())
	// Output:
	// circle(r=1) perimeter=6.283185
}

// ExampleNewSquare shows how a rejected dimension is reported.
func ExampleNewSquare() {
	_, err := shape.NewSquare(-1)
	if errors.Is(err, shape.ErrNegativeDimension) {
		fmt.Println(err)
	}
	// Output:
	// A square must have a length of at least 0.
}

// ExampleShape treats the three kinds uniformly through the Shape interface.
func ExampleShape() {
	shapes := []shape.Shape{
		shape.MustCircle(0.5),
		shape.MustSquare(2),
		shape.MustEquilateralTriangle(3),
	}
	for _, s := range shapes {
		fmt.Printf("%-28s %.4f\n", s, s.Perimeter())
	}
	// Output:
	// circle(r=0.5)                3.1416
	// square(s=2)                  8.0000
	// equilateral_triangle(s=3)    9.0000
}
