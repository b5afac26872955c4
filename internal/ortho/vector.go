package ortho

import "math"

// Dot returns the Euclidean inner product of a and b.
// Callers guarantee len(a) == len(b).
func Dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// Norm returns the Euclidean norm of a.
func Norm(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// scale multiplies every component of a by c in place.
func scale(a []float64, c float64) {
	for i := range a {
		a[i] *= c
	}
}

// subtractScaled updates w = w - c*u in place.
func subtractScaled(w, u []float64, c float64) {
	for i := range w {
		w[i] -= c * u[i]
	}
}

// isZero reports whether every component of a is exactly zero.
func isZero(a []float64) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}

// isFinite reports whether every component of a is a finite number.
func isFinite(a []float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
