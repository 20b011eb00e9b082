// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and the kernels built on it. All operations return these sentinels
// and tests check them via errors.Is. No routine panics on user-triggered
// error conditions; panics are reserved for programmer errors in private
// helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidShape is returned when a requested shape is invalid:
	// width or height below 1, or a data slice whose length does not
	// equal width*height. Constructors validate before allocation.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a well-formed matrix whose dimensions do
	// not fit the operation, e.g. an input offered to a plan prepared for a
	// different size, or subbands that disagree about the source shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonFinite signals a NaN or ±Inf value was encountered where finite
	// values are required. Kernels reject such inputs up front rather than
	// letting the poison propagate into emitted fixtures.
	ErrNonFinite = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
