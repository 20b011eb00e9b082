package matrix_test

import (
	"math"
	"testing"

	"github.com/goldvec/goldvec/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil_Nil ensures a nil matrix is reported as ErrNilMatrix.
func TestValidateNotNil_Nil(t *testing.T) {
	var m *matrix.Dense[float64]
	assert.ErrorIs(t, matrix.ValidateNotNil(m), matrix.ErrNilMatrix)
}

// TestValidateDims covers the accept and reject sides of the dims guard.
func TestValidateDims(t *testing.T) {
	assert.NoError(t, matrix.ValidateDims(1, 1))
	assert.NoError(t, matrix.ValidateDims(16, 8))
	assert.ErrorIs(t, matrix.ValidateDims(0, 4), matrix.ErrInvalidShape)
	assert.ErrorIs(t, matrix.ValidateDims(4, -1), matrix.ErrInvalidShape)
}

// TestValidateSameShape flags any width/height disagreement.
func TestValidateSameShape(t *testing.T) {
	a, err := matrix.New[float32](2, 3)
	require.NoError(t, err)
	b, err := matrix.New[float32](2, 3)
	require.NoError(t, err)
	c, err := matrix.New[float32](3, 2)
	require.NoError(t, err)

	assert.NoError(t, matrix.ValidateSameShape(a, b))
	assert.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch)
}

// TestValidateFinite_RejectsNaNInf ensures each non-finite poison value is
// caught, while ordinary extremes pass.
func TestValidateFinite_RejectsNaNInf(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m, err := matrix.FromSlice(2, 2, []float64{1, bad, 3, 4})
		require.NoError(t, err)
		assert.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNonFinite, "value %v must be rejected", bad)
	}

	ok, err := matrix.FromSlice(2, 1, []float64{math.MaxFloat64, -math.MaxFloat64})
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateFinite(ok), "finite extremes are acceptable")
}

// TestValidateInput_Composite checks the nil→finite ordering of the
// composite guard.
func TestValidateInput_Composite(t *testing.T) {
	var nilM *matrix.Dense[float32]
	assert.ErrorIs(t, matrix.ValidateInput(nilM), matrix.ErrNilMatrix)

	m, err := matrix.FromSlice(1, 1, []float32{float32(math.NaN())})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateInput(m), matrix.ErrNonFinite)

	good, err := matrix.FromSlice(1, 1, []float32{0})
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateInput(good))
}
