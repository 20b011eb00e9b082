// Package verify: SVD acceptance checks that sidestep sign ambiguity.
//
// Singular vectors are determined only up to a simultaneous sign flip of a
// U column and the matching Vᵀ row, and equal singular values allow whole
// subspaces to rotate. Raw entrywise comparison of factors between two SVD
// implementations is therefore meaningless; these helpers compare what is
// actually invariant.
package verify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/goldvec/goldvec/matrix"
	"github.com/goldvec/goldvec/svd"
)

// ReconstructionResidual measures ‖A − U·Σ·Vᵀ‖_F / ‖A‖_F, the
// sign-invariant figure of merit for a full decomposition of A.
// For a zero A the absolute residual ‖U·Σ·Vᵀ‖_F is returned instead.
func ReconstructionResidual(a *matrix.Dense[float64], d *svd.Decomposition) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, err
	}
	rec, err := d.Reconstruct()
	if err != nil {
		return 0, err
	}
	if err := matrix.ValidateSameShape(a, rec); err != nil {
		return 0, err
	}

	am := mat.NewDense(a.Height(), a.Width(), a.Data())
	rm := mat.NewDense(rec.Height(), rec.Width(), rec.Data())
	var diff mat.Dense
	diff.Sub(am, rm)

	num := mat.Norm(&diff, 2)
	den := mat.Norm(am, 2)
	if den == 0 {
		return num, nil
	}

	return num / den, nil
}

// OrthogonalityResidual returns max|QᵀQ − I|, how far the columns of Q are
// from orthonormal. Exactly orthonormal factors score 0.
func OrthogonalityResidual(q *matrix.Dense[float64]) (float64, error) {
	if err := matrix.ValidateNotNil(q); err != nil {
		return 0, err
	}

	qm := mat.NewDense(q.Height(), q.Width(), q.Data())
	var qtq mat.Dense
	qtq.Mul(qm.T(), qm)

	n := q.Width()
	var worst float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if dev := math.Abs(qtq.At(i, j) - want); dev > worst {
				worst = dev
			}
		}
	}

	return worst, nil
}

// EqualUpToColumnSign compares two factor matrices columnwise, accepting a
// global sign flip per column. Use it for U factors; pair with
// EqualUpToRowSign for the matching Vᵀ.
func EqualUpToColumnSign(tol Tolerance, want, got *matrix.Dense[float64]) error {
	if err := shapeGuard(want, got); err != nil {
		return err
	}
	w, h := want.Width(), want.Height()
	wd, gd := want.Data(), got.Data()
	for c := 0; c < w; c++ {
		if columnMatches(tol, wd, gd, w, h, c, 1) || columnMatches(tol, wd, gd, w, h, c, -1) {
			continue
		}

		return fmt.Errorf("EqualUpToColumnSign: column %d: %w", c, ErrMismatch)
	}

	return nil
}

// EqualUpToRowSign is the rowwise counterpart of EqualUpToColumnSign, for
// Vᵀ factors whose rows flip together with U's columns.
func EqualUpToRowSign(tol Tolerance, want, got *matrix.Dense[float64]) error {
	if err := shapeGuard(want, got); err != nil {
		return err
	}
	w, h := want.Width(), want.Height()
	wd, gd := want.Data(), got.Data()
	for r := 0; r < h; r++ {
		if rowMatches(tol, wd, gd, w, r, 1) || rowMatches(tol, wd, gd, w, r, -1) {
			continue
		}

		return fmt.Errorf("EqualUpToRowSign: row %d: %w", r, ErrMismatch)
	}

	return nil
}

// shapeGuard runs the nil and same-shape checks shared by the sign-tolerant
// comparisons.
func shapeGuard(want, got *matrix.Dense[float64]) error {
	if err := matrix.ValidateNotNil(want); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(got); err != nil {
		return err
	}

	return matrix.ValidateSameShape(want, got)
}

// columnMatches reports whether column col of got, scaled by sign, matches
// want under tol.
func columnMatches(tol Tolerance, want, got []float64, w, h, col int, sign float64) bool {
	for r := 0; r < h; r++ {
		if !tol.Equal(want[r*w+col], sign*got[r*w+col]) {
			return false
		}
	}

	return true
}

// rowMatches reports whether row r of got, scaled by sign, matches want
// under tol.
func rowMatches(tol Tolerance, want, got []float64, w, r int, sign float64) bool {
	base := r * w
	for c := 0; c < w; c++ {
		if !tol.Equal(want[base+c], sign*got[base+c]) {
			return false
		}
	}

	return true
}
