// Package ortho implements classical Gram-Schmidt orthonormalization over
// dense float64 vectors, with tolerance-based dependence detection.
package ortho

// DefaultTolerance is the residual norm below which a vector is treated as
// linearly dependent on the vectors accepted before it.
const DefaultTolerance = 1e-10

// Options control a single orthonormalization run.
type Options struct {
	// Tolerance is the dependence threshold. Values <= 0 fall back to
	// DefaultTolerance.
	Tolerance float64

	// Strict makes any dependent input vector fail the whole run with a
	// DependenceError instead of being skipped.
	Strict bool
}

// Result is the outcome of a successful orthonormalization.
type Result struct {
	// Basis holds the accepted vectors, unit norm and pairwise orthogonal,
	// in the order they were accepted.
	Basis [][]float64

	// Rank is len(Basis): the numerical rank of the input under the
	// run's tolerance.
	Rank int

	// Dimension is the shared length of every input vector.
	Dimension int
}

// IsLinearlyIndependent reports whether every input vector survived into
// the basis for an input of n vectors.
func (r *Result) IsLinearlyIndependent(n int) bool {
	return r.Rank == n
}

// Orthonormalize runs classical Gram-Schmidt over batch with the given
// tolerance and the permissive dependence policy: dependent vectors are
// skipped and the basis of the independent subset is returned.
func Orthonormalize(batch [][]float64, tolerance float64) (*Result, error) {
	return OrthonormalizeWithOptions(batch, Options{Tolerance: tolerance})
}

// OrthonormalizeWithOptions runs classical Gram-Schmidt over batch.
//
// The batch is validated before any arithmetic: it must be non-empty, every
// vector must share the same positive dimension, every component must be
// finite, and no vector may be exactly zero. Violations produce an
// *InvalidInputError naming the offending index.
//
// Input vectors are never mutated; each one is copied into a working
// residual, projections onto the previously accepted basis vectors are
// subtracted in acceptance order, and the residual is normalized only after
// its norm clears the tolerance, so no near-zero division occurs.
func OrthonormalizeWithOptions(batch [][]float64, opts Options) (*Result, error) {
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	dim, err := validate(batch)
	if err != nil {
		return nil, err
	}

	basis := make([][]float64, 0, len(batch))
	for i, v := range batch {
		w := make([]float64, dim)
		copy(w, v)

		for _, u := range basis {
			subtractScaled(w, u, Dot(w, u))
		}

		norm := Norm(w)
		if norm < tolerance {
			if opts.Strict {
				return nil, &DependenceError{Index: i}
			}
			continue
		}

		scale(w, 1/norm)
		basis = append(basis, w)
	}

	return &Result{Basis: basis, Rank: len(basis), Dimension: dim}, nil
}

// validate checks batch structure and returns the shared dimension.
func validate(batch [][]float64) (int, error) {
	if len(batch) == 0 {
		return 0, invalidBatch("at least one vector is required")
	}

	dim := len(batch[0])
	if dim == 0 {
		return 0, invalidVector(0, "vector is empty")
	}

	for i, v := range batch {
		switch {
		case len(v) == 0:
			return 0, invalidVector(i, "vector is empty")
		case len(v) != dim:
			return 0, invalidVector(i, "dimension %d does not match dimension %d of vector 0", len(v), dim)
		case !isFinite(v):
			return 0, invalidVector(i, "vector contains a non-finite component")
		case isZero(v):
			return 0, invalidVector(i, "vector is a zero vector")
		}
	}

	return dim, nil
}
