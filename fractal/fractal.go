// Package fractal implements the escape-time iteration for the
// Mandelbrot set: z ← z² + c from z₀ = 0.
package fractal

import (
	"math"
	"math/cmplx"
)

// EscapeRadius is the magnitude beyond which an orbit is considered
// divergent. All escape tests compare squared magnitudes against
// EscapeRadius² to avoid a square root per iteration.
const EscapeRadius = 2.0

const escapeRadius2 = EscapeRadius * EscapeRadius

// Sample is the escape-time result for one point.
type Sample struct {
	Iterations int
	Escaped    bool
}

// Evaluate iterates z ← z² + c until |z|² ≥ 4 or maxIter iterations
// have run. Iteration 0 inspects z₁ = c, so a point already outside the
// escape radius reports {0, true}. Deterministic and total over finite
// inputs.
func Evaluate(c complex128, maxIter int) Sample {
	z := c
	for n := 0; n < maxIter; n++ {
		if real(z)*real(z)+imag(z)*imag(z) >= escapeRadius2 {
			return Sample{Iterations: n, Escaped: true}
		}
		z = z*z + c
	}
	return Sample{Iterations: maxIter, Escaped: false}
}

// EvaluateSmooth is Evaluate with a fractional iteration count
// (n + 1 − log₂ log |z|), which removes the banding from the coloring.
// For non-escaping points it returns (maxIter, false).
func EvaluateSmooth(c complex128, maxIter int) (mu float64, escaped bool) {
	z := c
	for n := 0; n < maxIter; n++ {
		if real(z)*real(z)+imag(z)*imag(z) >= escapeRadius2 {
			mu = float64(n) + 1 - math.Log(math.Log(cmplx.Abs(z)))/math.Ln2
			if mu < 0 {
				mu = 0
			}
			return mu, true
		}
		z = z*z + c
	}
	return float64(maxIter), false
}

// Trace records the orbit of c: z₀ = 0, z₁, …, up to and including the
// first iterate past the escape radius, or the maxIter-th iterate. The
// result has at most maxIter+1 elements and always starts at 0.
func Trace(c complex128, maxIter int) []complex128 {
	orbit := make([]complex128, 0, maxIter+1)
	z := complex(0, 0)
	for n := 0; n <= maxIter; n++ {
		orbit = append(orbit, z)
		if real(z)*real(z)+imag(z)*imag(z) >= escapeRadius2 {
			break
		}
		z = z*z + c
	}
	return orbit
}
