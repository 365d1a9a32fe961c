// SPDX-License-Identifier: MIT
// Package: lvgeo/scene
//
// scene.go — Scene type, AddShape and TotalPerimeter.

package scene

import (
	"sync"

	"github.com/katalvlaran/lvgeo/shape"
)

// Scene is an ordered collection of shapes.
//
// mu guards shapes. Shapes are immutable values, so holding one after
// it was added needs no further locking.
type Scene struct {
	mu     sync.RWMutex
	shapes []shape.Shape
}

// New creates an empty Scene.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func New(opts ...Option) *Scene {
	s := &Scene{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddShape appends sh to the scene. A nil Shape is ignored: it cannot
// come out of a shape constructor.
// Complexity: amortized O(1).
func (s *Scene) AddShape(sh shape.Shape) {
	if sh == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shapes = append(s.shapes, sh)
}

// TotalPerimeter returns the sum of Perimeter over every shape, folded
// left to right in insertion order from 0.0. Empty scenes return 0.0.
// Complexity: O(N).
func (s *Scene) TotalPerimeter() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Fold(s.shapes, 0.0, func(acc float64, sh shape.Shape) float64 {
		return acc + sh.Perimeter()
	})
}

// Len returns the number of shapes added so far.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.shapes)
}

// Shapes returns a copy of the contained shapes in insertion order.
func (s *Scene) Shapes() []shape.Shape {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]shape.Shape, len(s.shapes))
	copy(out, s.shapes)

	return out
}
