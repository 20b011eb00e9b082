package svd

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/goldvec/goldvec/matrix"
)

// ErrNotConverged reports that the underlying factorization iteration
// failed, which gonum signals for pathological inputs.
var ErrNotConverged = errors.New("svd: factorization did not converge")

// Decomposition bundles the full SVD factors of an h×w matrix A:
//
//	A = U · Σ · Vᵀ
//
// U is h×h, Vt is w×w, and S holds the min(w,h) singular values in
// descending order; Σ is the h×w diagonal matrix built from S.
//
// Sign caveat: a column of U and the matching row of Vt may flip sign
// together without changing the product. Compare decompositions via
// Reconstruct, not entrywise.
type Decomposition struct {
	U  *matrix.Dense[float64] // left singular vectors, h×h
	S  []float64              // singular values, descending, len min(w,h)
	Vt *matrix.Dense[float64] // transposed right singular vectors, w×w
}

// Decompose computes the full SVD of m.
//
// Errors:
//   - matrix.ErrNilMatrix — m is nil.
//   - matrix.ErrNonFinite — m contains NaN or ±Inf.
//   - ErrNotConverged     — the iteration failed to converge.
//
// Complexity: O(min(w,h)·w·h) floating point work, inherited from LAPACK.
func Decompose(m *matrix.Dense[float64]) (*Decomposition, error) {
	if err := matrix.ValidateInput(m); err != nil {
		return nil, err
	}
	w, h := m.Width(), m.Height()

	a := mat.NewDense(h, w, m.Data())
	var f mat.SVD
	if ok := f.Factorize(a, mat.SVDFull); !ok {
		return nil, ErrNotConverged
	}

	// Copy the factors out of gonum into value-owned matrices.
	var u, v mat.Dense
	f.UTo(&u)
	f.VTo(&v)

	uu, err := fromGonum(&u)
	if err != nil {
		return nil, err
	}
	vt, err := fromGonumT(&v) // gonum hands back V; store its transpose
	if err != nil {
		return nil, err
	}

	return &Decomposition{U: uu, S: f.Values(nil), Vt: vt}, nil
}

// Values computes only the singular values of m (descending), skipping the
// singular-vector extraction. Cheaper than Decompose when the spectrum is
// all the caller needs.
func Values(m *matrix.Dense[float64]) ([]float64, error) {
	if err := matrix.ValidateInput(m); err != nil {
		return nil, err
	}

	a := mat.NewDense(m.Height(), m.Width(), m.Data())
	var f mat.SVD
	if ok := f.Factorize(a, mat.SVDNone); !ok {
		return nil, ErrNotConverged
	}

	return f.Values(nil), nil
}

// Reconstruct multiplies U·Σ·Vᵀ back into the original h×w matrix.
//
// Errors:
//   - matrix.ErrNilMatrix         — a factor is missing.
//   - matrix.ErrDimensionMismatch — factor shapes disagree with len(S).
//
// Complexity: O(w·h·(w+h)).
func (d *Decomposition) Reconstruct() (*matrix.Dense[float64], error) {
	if d == nil || d.U == nil || d.Vt == nil {
		return nil, matrix.ErrNilMatrix
	}
	h, w := d.U.Height(), d.Vt.Width()
	if d.U.Width() != h || d.Vt.Height() != w || len(d.S) != min(w, h) {
		return nil, matrix.ErrDimensionMismatch
	}

	// Σ is h×w with S on the main diagonal.
	sigma := mat.NewDense(h, w, nil)
	for i, s := range d.S {
		sigma.Set(i, i, s)
	}

	u := mat.NewDense(h, h, d.U.Data())
	vt := mat.NewDense(w, w, d.Vt.Data())
	var res mat.Dense
	res.Product(u, sigma, vt)

	return fromGonum(&res)
}

// fromGonum copies a gonum Dense into the package matrix model.
func fromGonum(src *mat.Dense) (*matrix.Dense[float64], error) {
	r, c := src.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = src.At(i, j)
		}
	}

	return matrix.FromSlice(c, r, data)
}

// fromGonumT copies the transpose of a gonum Dense into the matrix model.
func fromGonumT(src *mat.Dense) (*matrix.Dense[float64], error) {
	r, c := src.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[j*r+i] = src.At(i, j)
		}
	}

	return matrix.FromSlice(r, c, data)
}
