// Package lvgeo is a small perimeter model for heterogeneous shapes.
//
// What is in the box:
//
//	shape/            — Circle, Square, EquilateralTriangle, the Shape interface
//	                    and the ErrNegativeDimension validation error
//	scene/            — Scene: ordered shapes + TotalPerimeter (a left fold)
//	cmd/geodemo/      — the fixed demonstration script
//	examples/         — extending Scene with a user-defined shape
//
// Quick example:
//
//	s := scene.New()
//	s.AddShape(shape.MustCircle(1))
//	s.AddShape(shape.MustSquare(1))
//	fmt.Println(s.TotalPerimeter()) // 10.283185307179586
//
// Only perimeters are modelled: no area, coordinates or transforms.
//
//	go get github.com/katalvlaran/lvgeo
package lvgeo
