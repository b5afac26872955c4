package ortho

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_StandardBasis(t *testing.T) {
	result, err := Check([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 0)
	require.NoError(t, err)

	assert.True(t, result.IsOrthonormal)
	assert.Equal(t, []string{"all vectors are orthonormal"}, result.Details)
}

func TestCheck_RotatedBasisWithinTolerance(t *testing.T) {
	invSqrt2 := 1 / math.Sqrt2
	result, err := Check([][]float64{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}, 0)
	require.NoError(t, err)
	assert.True(t, result.IsOrthonormal)
}

func TestCheck_NonUnitVectorReported(t *testing.T) {
	result, err := Check([][]float64{{2, 0}, {0, 1}}, 0)
	require.NoError(t, err)

	assert.False(t, result.IsOrthonormal)
	require.Len(t, result.Details, 1)
	assert.Contains(t, result.Details[0], "vector 0 is not unit length")
}

func TestCheck_NonOrthogonalPairReported(t *testing.T) {
	invSqrt2 := 1 / math.Sqrt2
	result, err := Check([][]float64{{1, 0}, {invSqrt2, invSqrt2}}, 0)
	require.NoError(t, err)

	assert.False(t, result.IsOrthonormal)
	require.Len(t, result.Details, 1)
	assert.Contains(t, result.Details[0], "vectors 0 and 1 are not orthogonal")
}

func TestCheck_ZeroVectorFailsNormCheck(t *testing.T) {
	result, err := Check([][]float64{{0, 0}}, 0)
	require.NoError(t, err)

	assert.False(t, result.IsOrthonormal)
	assert.Contains(t, result.Details[0], "not unit length")
}

func TestCheck_CollectsAllViolations(t *testing.T) {
	result, err := Check([][]float64{{2, 0}, {1, 1}}, 0)
	require.NoError(t, err)

	assert.False(t, result.IsOrthonormal)
	// Two norm violations plus one orthogonality violation.
	assert.Len(t, result.Details, 3)
}

func TestCheck_InvalidInput(t *testing.T) {
	_, err := Check(nil, 0)
	require.Error(t, err)

	_, err = Check([][]float64{{1, 0}, {1, 0, 0}}, 0)
	require.Error(t, err)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Index)

	_, err = Check([][]float64{{math.NaN()}}, 0)
	require.Error(t, err)
}

func TestCheck_CustomTolerance(t *testing.T) {
	// Slightly off unit length passes a loose tolerance, fails a tight one.
	batch := [][]float64{{1.0001, 0}}

	loose, err := Check(batch, 1e-3)
	require.NoError(t, err)
	assert.True(t, loose.IsOrthonormal)

	tight, err := Check(batch, 1e-6)
	require.NoError(t, err)
	assert.False(t, tight.IsOrthonormal)
}
