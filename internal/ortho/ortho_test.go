package ortho

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrthonormalize_StandardBasisUnchanged(t *testing.T) {
	batch := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	result, err := Orthonormalize(batch, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Rank)
	assert.Equal(t, 3, result.Dimension)
	assert.Equal(t, batch, result.Basis)
	assert.True(t, result.IsLinearlyIndependent(len(batch)))
}

func TestOrthonormalize_NonOrthogonalPair(t *testing.T) {
	result, err := Orthonormalize([][]float64{{1, 1}, {1, 0}}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, result.Rank)

	invSqrt2 := 1 / math.Sqrt2
	assert.InDelta(t, invSqrt2, result.Basis[0][0], 1e-12)
	assert.InDelta(t, invSqrt2, result.Basis[0][1], 1e-12)
	assert.InDelta(t, invSqrt2, result.Basis[1][0], 1e-12)
	assert.InDelta(t, -invSqrt2, result.Basis[1][1], 1e-12)
}

func TestOrthonormalize_DependentVectorSkipped(t *testing.T) {
	result, err := Orthonormalize([][]float64{{1, 0}, {2, 0}}, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Rank)
	require.Len(t, result.Basis, 1)
	assert.Equal(t, []float64{1, 0}, result.Basis[0])
	assert.False(t, result.IsLinearlyIndependent(2))
}

func TestOrthonormalize_DependentVectorStrictFails(t *testing.T) {
	_, err := OrthonormalizeWithOptions([][]float64{{1, 0}, {2, 0}}, Options{Strict: true})
	require.Error(t, err)

	var depErr *DependenceError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, 1, depErr.Index)
}

func TestOrthonormalize_SkipContinuesPastDependentVector(t *testing.T) {
	// Middle vector is dependent; the third is independent and must still
	// be accepted with projections against the surviving basis only.
	result, err := Orthonormalize([][]float64{{1, 0, 0}, {3, 0, 0}, {1, 1, 0}}, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Rank)
	assertOrthonormal(t, result.Basis, 1e-12)
}

func TestOrthonormalize_TinyResidualCountsAsDependent(t *testing.T) {
	// Nearly parallel pair: residual norm lands below a loose tolerance.
	result, err := Orthonormalize([][]float64{{1, 0}, {1, 1e-13}}, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rank)
}

func TestOrthonormalize_PropertiesOnObliqueBatch(t *testing.T) {
	batch := [][]float64{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	}

	result, err := Orthonormalize(batch, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Rank)
	assert.LessOrEqual(t, result.Rank, len(batch))
	assert.LessOrEqual(t, result.Rank, result.Dimension)
	assertOrthonormal(t, result.Basis, 1e-12)
}

func TestOrthonormalize_Idempotent(t *testing.T) {
	first, err := Orthonormalize([][]float64{{1, 1, 0}, {1, 0, 1}}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, first.Rank)

	second, err := Orthonormalize(first.Basis, 0)
	require.NoError(t, err)

	require.Equal(t, first.Rank, second.Rank)
	for i := range first.Basis {
		for k := range first.Basis[i] {
			assert.InDelta(t, first.Basis[i][k], second.Basis[i][k], 1e-12)
		}
	}
}

func TestOrthonormalize_InputNotMutated(t *testing.T) {
	batch := [][]float64{{3, 4}, {1, 0}}

	_, err := Orthonormalize(batch, 0)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{3, 4}, {1, 0}}, batch)
}

func TestOrthonormalize_OrderPreserved(t *testing.T) {
	// First input fixes the first basis direction exactly.
	result, err := Orthonormalize([][]float64{{0, 2, 0}, {5, 5, 0}}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, result.Rank)

	assert.InDelta(t, 0, result.Basis[0][0], 1e-12)
	assert.InDelta(t, 1, result.Basis[0][1], 1e-12)
	assert.InDelta(t, 1, result.Basis[1][0], 1e-12)
	assert.InDelta(t, 0, result.Basis[1][1], 1e-12)
}

func TestOrthonormalize_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		batch     [][]float64
		wantIndex int
	}{
		{"empty batch", [][]float64{}, -1},
		{"nil batch", nil, -1},
		{"empty first vector", [][]float64{{}}, 0},
		{"empty later vector", [][]float64{{1, 2}, {}}, 1},
		{"dimension mismatch", [][]float64{{1, 2}, {1, 2, 3}}, 1},
		{"zero vector", [][]float64{{1, 2}, {0, 0}}, 1},
		{"nan component", [][]float64{{1, math.NaN()}}, 0},
		{"inf component", [][]float64{{math.Inf(1), 0}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Orthonormalize(tt.batch, 0)
			require.Error(t, err)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantIndex, invalid.Index)
		})
	}
}

// assertOrthonormal checks unit norms and pairwise orthogonality.
func assertOrthonormal(t *testing.T, basis [][]float64, tol float64) {
	t.Helper()
	for i := range basis {
		assert.InDelta(t, 1, Norm(basis[i]), tol, "basis vector %d should be unit length", i)
		for j := i + 1; j < len(basis); j++ {
			assert.InDelta(t, 0, Dot(basis[i], basis[j]), tol, "basis vectors %d and %d should be orthogonal", i, j)
		}
	}
}
