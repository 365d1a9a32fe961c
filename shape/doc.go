// Package shape defines the closed-form shape kinds of lvgeo and the
// Shape capability that unites them.
//
// What:
//
//   - Circle, Square and EquilateralTriangle each hold one dimension
//     (radius or side length) and compute their perimeter from it.
//   - Shape is the single abstraction boundary: anything with a
//     Perimeter can be aggregated by package scene.
//   - Every constructor validates its dimension exactly once, before a
//     value is produced. Values are immutable afterwards.
//
// Formulas:
//
//   - Circle:              P = 8·atan(1)·r  (= 2πr)
//   - Square:              P = 4·s
//   - EquilateralTriangle: P = 3·s
//
// Errors:
//
//   - ErrNegativeDimension: dimension is negative (or NaN). The concrete
//     error is *NegativeDimensionError, which names the rejecting kind.
//
// Example:
//
//	c, err := shape.NewCircle(1)
//	if err != nil {
//		// errors.Is(err, shape.ErrNegativeDimension)
//	}
//	fmt.Println(c.Perimeter()) // 6.283185307179586
package shape
