package ortho

import (
	"fmt"
	"math"
)

// DefaultCheckTolerance is the deviation threshold used when verifying an
// already-computed set, looser than the dependence tolerance because the
// set under test typically went through rounding on its way in.
const DefaultCheckTolerance = 1e-6

// CheckResult reports whether a vector set is orthonormal, with one detail
// line per violation found.
type CheckResult struct {
	IsOrthonormal bool
	Details       []string
}

// Check verifies that every vector in batch has unit Euclidean norm and
// that all pairs are orthogonal, within tolerance (<= 0 falls back to
// DefaultCheckTolerance). The batch must be non-empty, dimensionally
// consistent, and finite; unlike Orthonormalize, zero vectors are allowed
// here since the norm check reports them.
func Check(batch [][]float64, tolerance float64) (*CheckResult, error) {
	if tolerance <= 0 {
		tolerance = DefaultCheckTolerance
	}

	if len(batch) == 0 {
		return nil, invalidBatch("at least one vector is required")
	}
	dim := len(batch[0])
	if dim == 0 {
		return nil, invalidVector(0, "vector is empty")
	}
	for i, v := range batch {
		if len(v) != dim {
			return nil, invalidVector(i, "dimension %d does not match dimension %d of vector 0", len(v), dim)
		}
		if !isFinite(v) {
			return nil, invalidVector(i, "vector contains a non-finite component")
		}
	}

	result := &CheckResult{IsOrthonormal: true}

	for i, v := range batch {
		norm := Norm(v)
		if math.Abs(norm-1) > tolerance {
			result.IsOrthonormal = false
			result.Details = append(result.Details,
				fmt.Sprintf("vector %d is not unit length (norm = %.6f)", i, norm))
		}
	}

	for i := 0; i < len(batch); i++ {
		for j := i + 1; j < len(batch); j++ {
			d := Dot(batch[i], batch[j])
			if math.Abs(d) > tolerance {
				result.IsOrthonormal = false
				result.Details = append(result.Details,
					fmt.Sprintf("vectors %d and %d are not orthogonal (dot product = %.6f)", i, j, d))
			}
		}
	}

	if result.IsOrthonormal {
		result.Details = []string{"all vectors are orthonormal"}
	}

	return result, nil
}
