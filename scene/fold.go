// SPDX-License-Identifier: MIT
// Package: lvgeo/scene
//
// fold.go — generic left fold.

package scene

// Fold reduces xs from left to right: fn(...fn(fn(init, xs[0]), xs[1])..., xs[n-1]).
// With an empty xs it returns init unchanged.
// Complexity: O(len(xs)) calls to fn.
func Fold[T, A any](xs []T, init A, fn func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = fn(acc, x)
	}

	return acc
}
