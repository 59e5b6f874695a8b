// SPDX-License-Identifier: MIT
// Package dense: shared numeric helpers for the factorization kernels.

package dense

import "math"

// Machine constants used by the convergence and rank logic.
// eps is the double-precision machine epsilon (2⁻⁵²); tiny (2⁻⁹⁶⁶) guards the
// SVD negligibility tests against denormal underflow.
const (
	eps  = 0x1p-52
	tiny = 0x1p-966
)

// Hypot returns sqrt(a²+b²) without intermediate overflow or underflow by
// scaling with the larger magnitude before squaring. The Householder and
// Givens kernels depend on this form for stability with very large or very
// small operands.
//
// Complexity: O(1).
func Hypot(a, b float64) float64 {
	var r float64
	switch {
	case math.Abs(a) > math.Abs(b):
		r = b / a
		r = math.Abs(a) * math.Sqrt(1+r*r)
	case b != 0:
		r = a / b
		r = math.Abs(b) * math.Sqrt(1+r*r)
	default:
		r = 0.0
	}

	return r
}
