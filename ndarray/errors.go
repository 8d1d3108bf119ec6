// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All casts and accessors return these sentinels (possibly wrapped with
// shape context); tests match them via errors.Is. No method panics on
// user-triggered conditions.

package ndarray

import "errors"

var (
	// ErrInvalidDimensions indicates a requested shape with a non-positive
	// dimension.
	ErrInvalidDimensions = errors.New("ndarray: dimensions must be > 0")

	// ErrNotCastable indicates a flat slice whose element count does not
	// match the requested shape. Wrapping adds the shape and the length:
	// "ndarray: not castable to shape (8, 8): length 4".
	ErrNotCastable = errors.New("ndarray: not castable to shape")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("ndarray: index out of bounds")
)
