// SPDX-License-Identifier: MIT
// Package: lvgeo/scene
//
// options.go — functional options for New.
//
// Option constructors validate and panic on meaningless inputs;
// Scene methods themselves never panic.

package scene

import "github.com/katalvlaran/lvgeo/shape"

// Option customizes a Scene before its first use.
type Option func(*Scene)

// WithCapacity preallocates room for n shapes.
// Panics on n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("scene: WithCapacity(n < 0)")
	}
	return func(s *Scene) {
		s.shapes = make([]shape.Shape, 0, n)
	}
}
