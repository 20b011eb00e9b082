package dwt_test

import (
	"math"
	"testing"

	"github.com/goldvec/goldvec/dwt"
	"github.com/goldvec/goldvec/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDense builds a float32 matrix or aborts the test.
func mustDense(t *testing.T, w, h int, data []float32) *matrix.Dense[float32] {
	t.Helper()
	m, err := matrix.FromSlice(w, h, data)
	require.NoError(t, err)
	return m
}

// assertPlane compares a subband plane against expected values elementwise.
func assertPlane(t *testing.T, want []float32, plane *matrix.Dense[float32], name string) {
	t.Helper()
	got := plane.Data()
	require.Len(t, got, len(want), "%s size", name)
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(got[i]), 1e-4, "%s element %d", name, i)
	}
}

// TestDecompose_Sequential4x4 pins all four subbands of the 1..16 gradient.
// Per 2×2 block [a b; c d]: cA=(a+b+c+d)/2, cH=(a+b−c−d)/2,
// cV=(a−b+c−d)/2, cD=(a−b−c+d)/2.
func TestDecompose_Sequential4x4(t *testing.T) {
	data := make([]float32, 16)
	for i := range data {
		data[i] = float32(i + 1)
	}
	m := mustDense(t, 4, 4, data)

	s, err := dwt.Decompose(m)
	require.NoError(t, err)

	assert.Equal(t, 4, s.SourceWidth())
	assert.Equal(t, 4, s.SourceHeight())
	assertPlane(t, []float32{7, 11, 23, 27}, s.CA, "CA")
	assertPlane(t, []float32{-4, -4, -4, -4}, s.CH, "CH")
	assertPlane(t, []float32{-1, -1, -1, -1}, s.CV, "CV")
	assertPlane(t, []float32{0, 0, 0, 0}, s.CD, "CD")
}

// TestDecompose_Odd3x3 checks the duplicated-edge behavior on 1..9.
func TestDecompose_Odd3x3(t *testing.T) {
	m := mustDense(t, 3, 3, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9})

	s, err := dwt.Decompose(m)
	require.NoError(t, err)

	assert.Equal(t, 2, s.CA.Width(), "planes are ⌈3/2⌉ wide")
	assert.Equal(t, 2, s.CA.Height())
	assertPlane(t, []float32{6, 9, 15, 18}, s.CA, "CA")
	assertPlane(t, []float32{-3, -3, 0, 0}, s.CH, "CH")
	assertPlane(t, []float32{-1, 0, -1, 0}, s.CV, "CV")
	assertPlane(t, []float32{0, 0, 0, 0}, s.CD, "CD")
}

// TestDecompose_Rectangular4x6 exercises a taller-than-wide source whose
// row pairs differ by 1 and column pairs by 2.
func TestDecompose_Rectangular4x6(t *testing.T) {
	m := mustDense(t, 4, 6, []float32{
		1, 3, 5, 7,
		2, 4, 6, 8,
		9, 11, 13, 15,
		10, 12, 14, 16,
		17, 19, 21, 23,
		18, 20, 22, 24,
	})

	s, err := dwt.Decompose(m)
	require.NoError(t, err)

	assert.Equal(t, 2, s.CA.Width())
	assert.Equal(t, 3, s.CA.Height())
	assertPlane(t, []float32{5, 13, 21, 29, 37, 45}, s.CA, "CA")
	assertPlane(t, []float32{-1, -1, -1, -1, -1, -1}, s.CH, "CH")
	assertPlane(t, []float32{-2, -2, -2, -2, -2, -2}, s.CV, "CV")
	assertPlane(t, []float32{0, 0, 0, 0, 0, 0}, s.CD, "CD")
}

// TestDecompose_Checkerboard verifies the period-2 pattern concentrates in
// CA and CD while both directional bands vanish.
func TestDecompose_Checkerboard(t *testing.T) {
	m, err := matrix.FromFunc(4, 4, func(row, col int) float32 {
		if (row+col)%2 == 0 {
			return 100
		}
		return 0
	})
	require.NoError(t, err)

	s, err := dwt.Decompose(m)
	require.NoError(t, err)

	assertPlane(t, []float32{100, 100, 100, 100}, s.CA, "CA")
	assertPlane(t, []float32{0, 0, 0, 0}, s.CH, "CH")
	assertPlane(t, []float32{0, 0, 0, 0}, s.CV, "CV")
	assertPlane(t, []float32{100, 100, 100, 100}, s.CD, "CD")
}

// TestDecompose_ConstantInput expects CA = 2·c everywhere and empty detail
// bands, including at duplicated odd edges.
func TestDecompose_ConstantInput(t *testing.T) {
	const c = 3
	m, err := matrix.FromFunc(5, 3, func(_, _ int) float32 { return c })
	require.NoError(t, err)

	s, err := dwt.Decompose(m)
	require.NoError(t, err)

	assert.Equal(t, 3, s.CA.Width())
	assert.Equal(t, 2, s.CA.Height())
	for i, v := range s.CA.Data() {
		assert.InDelta(t, 2*c, float64(v), 1e-4, "CA element %d", i)
	}
	for _, plane := range []*matrix.Dense[float32]{s.CH, s.CV, s.CD} {
		for i, v := range plane.Data() {
			assert.InDelta(t, 0, float64(v), 1e-4, "detail element %d", i)
		}
	}
}

// TestDecompose_SinglePixel covers the 1×1 degenerate case: both pair
// steps duplicate the sample, so CA = 2·v.
func TestDecompose_SinglePixel(t *testing.T) {
	m := mustDense(t, 1, 1, []float32{7})

	s, err := dwt.Decompose(m)
	require.NoError(t, err)
	assertPlane(t, []float32{14}, s.CA, "CA")
	assertPlane(t, []float32{0}, s.CH, "CH")
	assertPlane(t, []float32{0}, s.CV, "CV")
	assertPlane(t, []float32{0}, s.CD, "CD")

	back, err := s.Reconstruct()
	require.NoError(t, err)
	v, err := back.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 7, float64(v), 1e-4)
}

// TestDecompose_PreservesEnergy checks the normalized step keeps Σv²
// constant across subbands for even shapes (no duplicated samples).
func TestDecompose_PreservesEnergy(t *testing.T) {
	data := make([]float32, 16)
	for i := range data {
		data[i] = float32(i + 1)
	}
	m := mustDense(t, 4, 4, data)

	s, err := dwt.Decompose(m)
	require.NoError(t, err)

	var in, out float64
	for _, v := range data {
		in += float64(v) * float64(v)
	}
	for _, plane := range []*matrix.Dense[float32]{s.CA, s.CH, s.CV, s.CD} {
		for _, v := range plane.Data() {
			out += float64(v) * float64(v)
		}
	}
	assert.InDelta(t, in, out, 0.05, "energy must move, not leak")
}

// TestRoundTrip_Shapes runs Decompose→Reconstruct across even, odd and
// degenerate shapes, expecting the source back within float32 rounding.
func TestRoundTrip_Shapes(t *testing.T) {
	shapes := [][2]int{{4, 4}, {3, 3}, {4, 6}, {5, 7}, {1, 1}, {6, 1}, {1, 6}, {10, 12}}
	for _, sh := range shapes {
		w, h := sh[0], sh[1]
		m, err := matrix.FromFunc(w, h, func(row, col int) float32 {
			return float32(row*w+col) + 0.25
		})
		require.NoError(t, err)

		s, err := dwt.Decompose(m)
		require.NoError(t, err)
		back, err := s.Reconstruct()
		require.NoError(t, err)

		assert.Equal(t, w, back.Width(), "shape %dx%d", w, h)
		assert.Equal(t, h, back.Height(), "shape %dx%d", w, h)
		want, got := m.Data(), back.Data()
		for i := range want {
			assert.InDelta(t, float64(want[i]), float64(got[i]), 1e-4,
				"shape %dx%d element %d", w, h, i)
		}
	}
}

// TestRoundTrip_Float64Tight repeats a round-trip in float64, where the
// pair steps cancel to ~1e-12.
func TestRoundTrip_Float64Tight(t *testing.T) {
	m, err := matrix.FromFunc(7, 5, func(row, col int) float64 {
		return math.Sin(float64(row*11+col)) * 50
	})
	require.NoError(t, err)

	s, err := dwt.Decompose(m)
	require.NoError(t, err)
	back, err := s.Reconstruct()
	require.NoError(t, err)

	want, got := m.Data(), back.Data()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "element %d", i)
	}
}

// TestNewSubbands_RoundTrip rebuilds a decomposition from its serialized
// planes and reconstructs through the rebuilt value.
func TestNewSubbands_RoundTrip(t *testing.T) {
	m := mustDense(t, 3, 3, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	s, err := dwt.Decompose(m)
	require.NoError(t, err)

	rebuilt, err := dwt.NewSubbands(3, 3, s.CA.Clone(), s.CH.Clone(), s.CV.Clone(), s.CD.Clone())
	require.NoError(t, err)

	back, err := rebuilt.Reconstruct()
	require.NoError(t, err)
	want, got := m.Data(), back.Data()
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(got[i]), 1e-4, "element %d", i)
	}
}

// TestNewSubbands_Guards exercises the malformed-assembly surface.
func TestNewSubbands_Guards(t *testing.T) {
	plane, err := matrix.New[float32](2, 2)
	require.NoError(t, err)
	wrong, err := matrix.New[float32](3, 2)
	require.NoError(t, err)

	_, err = dwt.NewSubbands(0, 4, plane, plane, plane, plane)
	assert.ErrorIs(t, err, matrix.ErrInvalidShape, "bad source dims")

	_, err = dwt.NewSubbands(4, 4, plane, nil, plane, plane)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "missing plane")

	_, err = dwt.NewSubbands(4, 4, plane, plane, wrong, plane)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "plane shape off")

	_, err = dwt.NewSubbands(3, 3, plane, plane, plane, plane)
	assert.NoError(t, err, "2×2 planes fit a 3×3 source")
}

// TestDecompose_InputGuards covers nil and non-finite inputs.
func TestDecompose_InputGuards(t *testing.T) {
	_, err := dwt.Decompose[float32](nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	nan := mustDense(t, 2, 2, []float32{1, float32(math.NaN()), 3, 4})
	_, err = dwt.Decompose(nan)
	assert.ErrorIs(t, err, matrix.ErrNonFinite)
}
