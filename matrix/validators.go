// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/finiteness guards here.
//  - Return plain sentinel errors (tagged, unwrapped via errors.Is) so call
//    sites stay uniform.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Finiteness runs O(w·h) over the backing data exactly once.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Float](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims ensures width and height describe a non-empty matrix.
//
// Returns ErrInvalidShape when either dimension is below 1.
// Complexity: O(1).
func ValidateDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return validatorErrorf("ValidateDims", ErrInvalidShape)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical width and height.
//
// Implementation: assumes a and b are not nil (callers run ValidateNotNil
// first). Returns ErrDimensionMismatch on any disagreement.
// Complexity: O(1).
func ValidateSameShape[T Float](a, b *Dense[T]) error {
	if a.w != b.w || a.h != b.h {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every element of m is a finite number.
//
// Returns ErrNonFinite on the first NaN or ±Inf encountered.
// Complexity: O(w·h).
func ValidateFinite[T Float](m *Dense[T]) error {
	for _, v := range m.data {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return validatorErrorf("ValidateFinite", ErrNonFinite)
		}
	}

	return nil
}

// ValidateInput is the composite guard kernels run on their argument:
// NotNil → Finite. Fit against a specific plan or subband shape stays with
// the kernel, since only it knows the expected dimensions.
func ValidateInput[T Float](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateFinite(m)
}
