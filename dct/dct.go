package dct

import (
	"math"

	"github.com/goldvec/goldvec/matrix"
)

// Plan holds precomputed 1-D orthonormal DCT-II bases for one matrix size.
//
// Description:
//
//	The 2-D DCT-II is separable: the 1-D transform runs along every row,
//	then along every column of the intermediate result. Precomputing the
//	two basis matrices turns each pass into plain dot products.
//
// Algorithm Outline:
//  1. basis(n) builds Φₙ, the n×n matrix with
//     Φₙ[k][x] = α(k)·cos(π·k·(2x+1) / (2n)),
//     where α(0) = √(1/n) and α(k>0) = √(2/n).
//  2. Transform computes F = Φ_h · f · Φ_wᵀ (row pass, then column pass).
//  3. Inverse computes f = Φ_hᵀ · F · Φ_w, exact because each basis is
//     orthonormal (Φᵀ = Φ⁻¹).
//
// Accumulation happens in float64 even for Dense[float32] inputs; only the
// final store rounds to T.
//
// A Plan is immutable after New and safe for concurrent use.
type Plan[T matrix.Float] struct {
	w, h int
	phiW []float64 // w×w basis, row k at phiW[k*w:(k+1)*w]
	phiH []float64 // h×h basis, row k at phiH[k*h:(k+1)*h]
}

// New builds a Plan for width×height inputs.
// Stage 1 (Validate): dimensions ≥ 1 via matrix.ValidateDims.
// Stage 2 (Prepare): precompute Φ_w and Φ_h.
// Complexity: O(w² + h²) time and memory.
func New[T matrix.Float](width, height int) (*Plan[T], error) {
	if err := matrix.ValidateDims(width, height); err != nil {
		return nil, err
	}

	return &Plan[T]{w: width, h: height, phiW: basis(width), phiH: basis(height)}, nil
}

// basis builds the orthonormal 1-D DCT-II basis matrix for size n:
// row k holds α(k)·cos(π·k·(2x+1)/(2n)) for x = 0..n-1.
func basis(n int) []float64 {
	phi := make([]float64, n*n)
	nf := float64(n)
	a0 := math.Sqrt(1 / nf)
	ak := math.Sqrt(2 / nf)
	for x := 0; x < n; x++ {
		phi[x] = a0 // the k=0 row is the scaled DC vector
	}
	for k := 1; k < n; k++ {
		row := phi[k*n : (k+1)*n]
		for x := 0; x < n; x++ {
			row[x] = ak * math.Cos(math.Pi*float64(k)*float64(2*x+1)/(2*nf))
		}
	}

	return phi
}

// Width returns the input width the plan was built for.
func (p *Plan[T]) Width() int { return p.w }

// Height returns the input height the plan was built for.
func (p *Plan[T]) Height() int { return p.h }

// check runs the shared guards: non-nil, finite, and plan-shape fit.
func (p *Plan[T]) check(m *matrix.Dense[T]) error {
	if err := matrix.ValidateInput(m); err != nil {
		return err
	}
	if m.Width() != p.w || m.Height() != p.h {
		return matrix.ErrDimensionMismatch
	}

	return nil
}

// Transform applies the forward 2-D DCT-II and returns the coefficient
// matrix, leaving m untouched.
//
// Errors:
//   - matrix.ErrNilMatrix         — m is nil.
//   - matrix.ErrNonFinite         — m contains NaN or ±Inf.
//   - matrix.ErrDimensionMismatch — m is sized for a different plan.
//
// Complexity: O(w·h·(w+h)).
func (p *Plan[T]) Transform(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := p.check(m); err != nil {
		return nil, err
	}
	src := m.Data()
	w, h := p.w, p.h

	// Row pass: tmp[y][k] = Σ_x src[y][x]·Φw[k][x].
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := src[y*w : (y+1)*w]
		for k := 0; k < w; k++ {
			phi := p.phiW[k*w : (k+1)*w]
			var sum float64
			for x := 0; x < w; x++ {
				sum += float64(row[x]) * phi[x]
			}
			tmp[y*w+k] = sum
		}
	}

	// Column pass: out[u][v] = Σ_y tmp[y][v]·Φh[u][y].
	out := make([]T, w*h)
	for u := 0; u < h; u++ {
		phi := p.phiH[u*h : (u+1)*h]
		for v := 0; v < w; v++ {
			var sum float64
			for y := 0; y < h; y++ {
				sum += tmp[y*w+v] * phi[y]
			}
			out[u*w+v] = T(sum)
		}
	}

	return matrix.FromSlice(w, h, out)
}

// Inverse applies the 2-D DCT-III, the exact inverse of Transform under
// orthonormal scaling, to a coefficient matrix.
//
// Same guards and complexity as Transform.
func (p *Plan[T]) Inverse(coef *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := p.check(coef); err != nil {
		return nil, err
	}
	src := coef.Data()
	w, h := p.w, p.h

	// Row pass with the transposed basis: tmp[u][x] = Σ_v src[u][v]·Φw[v][x].
	tmp := make([]float64, w*h)
	for u := 0; u < h; u++ {
		row := src[u*w : (u+1)*w]
		for x := 0; x < w; x++ {
			var sum float64
			for v := 0; v < w; v++ {
				sum += float64(row[v]) * p.phiW[v*w+x]
			}
			tmp[u*w+x] = sum
		}
	}

	// Column pass with the transposed basis: out[y][x] = Σ_u tmp[u][x]·Φh[u][y].
	out := make([]T, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for u := 0; u < h; u++ {
				sum += tmp[u*w+x] * p.phiH[u*h+y]
			}
			out[y*w+x] = T(sum)
		}
	}

	return matrix.FromSlice(w, h, out)
}

// Transform is the one-shot form: build a plan for m's size, run the
// forward DCT-II, drop the plan. Prefer a Plan or Cache inside loops.
func Transform[T matrix.Float](m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	p, err := New[T](m.Width(), m.Height())
	if err != nil {
		return nil, err
	}

	return p.Transform(m)
}

// Inverse is the one-shot counterpart of Transform for the DCT-III.
func Inverse[T matrix.Float](coef *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(coef); err != nil {
		return nil, err
	}
	p, err := New[T](coef.Width(), coef.Height())
	if err != nil {
		return nil, err
	}

	return p.Inverse(coef)
}
