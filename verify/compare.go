package verify

import (
	"errors"
	"fmt"

	"github.com/goldvec/goldvec/matrix"
)

// ErrMismatch reports a value disagreement beyond the applied tolerance.
// Comparison helpers wrap it with the offending index; match via errors.Is.
var ErrMismatch = errors.New("verify: values differ beyond tolerance")

// EqualSlices checks want and got elementwise under tol.
//
// Returns nil on agreement, matrix.ErrDimensionMismatch (wrapped) on a
// length disagreement, and wrapped ErrMismatch naming the first offending
// index otherwise.
func EqualSlices[T matrix.Float](tol Tolerance, want, got []T) error {
	if len(want) != len(got) {
		return fmt.Errorf("EqualSlices: len %d vs %d: %w", len(want), len(got), matrix.ErrDimensionMismatch)
	}
	for i := range want {
		if !tol.Equal(float64(want[i]), float64(got[i])) {
			return fmt.Errorf("EqualSlices: element %d: want %v, got %v: %w", i, want[i], got[i], ErrMismatch)
		}
	}

	return nil
}

// EqualBytes checks two 8-bit channel buffers under tol, typically the YUV
// preset. Same error surface as EqualSlices.
func EqualBytes(tol Tolerance, want, got []uint8) error {
	if len(want) != len(got) {
		return fmt.Errorf("EqualBytes: len %d vs %d: %w", len(want), len(got), matrix.ErrDimensionMismatch)
	}
	for i := range want {
		if !tol.Equal(float64(want[i]), float64(got[i])) {
			return fmt.Errorf("EqualBytes: element %d: want %d, got %d: %w", i, want[i], got[i], ErrMismatch)
		}
	}

	return nil
}

// EqualMatrices checks two matrices for shape and elementwise agreement.
func EqualMatrices[T matrix.Float](tol Tolerance, want, got *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(want); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(got); err != nil {
		return err
	}
	if err := matrix.ValidateSameShape(want, got); err != nil {
		return err
	}

	return EqualSlices(tol, want.Data(), got.Data())
}
