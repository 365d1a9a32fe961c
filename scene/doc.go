// Package scene aggregates heterogeneous shapes and reports their combined
// perimeter.
//
// What:
//
//   - Scene is an ordered, append-only collection of shape.Shape values.
//   - TotalPerimeter folds left-to-right over the collection, starting
//     from 0.0, visiting every shape exactly once.
//   - Fold is the generic left fold behind TotalPerimeter.
//
// Guarantees:
//
//   - An empty scene totals exactly 0.0.
//   - Insertion order is preserved (Shapes returns it) and is the
//     summation order, so results are reproducible run to run.
//   - Scene guards its slice with a sync.RWMutex; AddShape and the read
//     methods may be called from several goroutines.
//
// Complexity:
//
//   - AddShape:       amortized O(1).
//   - TotalPerimeter: O(N) time, O(1) extra memory.
//   - Shapes:         O(N) time and memory (copy).
package scene
