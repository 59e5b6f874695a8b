// SPDX-License-Identifier: MIT
// Package dense: in-place operators on *Dense.
//
// Purpose:
//   - Offer the mutating counterparts of the fresh-result kernels in arith.go:
//     "the current matrix becomes ..." semantics.
//   - Each operator computes through the canonical kernel, then replaces the
//     receiver's owned buffer wholesale (the shape may change, e.g. after
//     TransposeInPlace or AugmentInPlace). No aliasing with the operand
//     survives the call.
//
// Notes:
//   - Normalize and Simplify rewrite the existing buffer directly; the rest
//     adopt the kernel's freshly allocated result.
//   - On error the receiver is left untouched.

package dense

import "math"

// adopt replaces the receiver's shape and storage with src's, dropping the old
// buffer. The numeric policy of the receiver is preserved.
// Complexity: O(1).
func (m *Dense) adopt(src *Dense) {
	m.r, m.c, m.data = src.r, src.c, src.data
}

// AddInPlace sets m = m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) AddInPlace(b Matrix) error {
	res, err := Add(m, b)
	if err != nil {
		return err
	}
	m.adopt(res.(*Dense))

	return nil
}

// SubInPlace sets m = m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) SubInPlace(b Matrix) error {
	res, err := Sub(m, b)
	if err != nil {
		return err
	}
	m.adopt(res.(*Dense))

	return nil
}

// MulInPlace sets m = m × b (right multiplication; the receiver is the left
// operand). The receiver's shape becomes Rows(m) × Cols(b).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*n*c).
func (m *Dense) MulInPlace(b Matrix) error {
	res, err := Mul(m, b)
	if err != nil {
		return err
	}
	m.adopt(res.(*Dense))

	return nil
}

// ScaleInPlace sets m = m * k. Operates directly on the owned buffer.
// Complexity: O(r*c).
func (m *Dense) ScaleInPlace(k float64) {
	for idx := range m.data { // single flat pass
		m.data[idx] *= k
	}
}

// DivElemInPlace sets m = m ⊘ b (Hadamard quotient). Division by a zero
// element yields ±Inf/NaN per float64 semantics; the receiver keeps its
// policy flag but the adopted buffer is written unchecked, matching DivElem.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) DivElemInPlace(b Matrix) error {
	res, err := DivElem(m, b)
	if err != nil {
		return err
	}
	m.adopt(res.(*Dense))

	return nil
}

// TransposeInPlace sets m = mᵀ, swapping the stored dimensions.
// Complexity: O(r*c).
func (m *Dense) TransposeInPlace() error {
	res, err := Transpose(m)
	if err != nil {
		return err
	}
	m.adopt(res.(*Dense))

	return nil
}

// AugmentInPlace appends the column vector v on the right; the receiver's
// column count grows by one.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) AugmentInPlace(v []float64) error {
	res, err := Augment(m, v)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// Normalize rescales all elements linearly into [minimum, maximum]. When all
// elements are equal the matrix is filled with the midpoint
// (minimum+maximum)/2, since no spread exists to map.
//
// Implementation:
//   - Stage 1: scan for the current min/max via Do (no allocations).
//   - Stage 2: all-equal → fill midpoint; otherwise affine rescale in place.
//
// Errors:
//   - ErrDimensionMismatch when maximum < minimum (an empty target interval).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Normalize(minimum, maximum float64) error {
	if maximum < minimum {
		return opErrorf(opNormalize, ErrDimensionMismatch)
	}

	// Stage 1: scan current bounds.
	lo, hi := m.data[0], m.data[0]
	m.Do(func(_, _ int, v float64) bool {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}

		return true
	})

	// Stage 2: degenerate spread fills the midpoint of the target interval.
	if lo == hi {
		mid := (maximum + minimum) / 2.0
		for idx := range m.data {
			m.data[idx] = mid
		}

		return nil
	}
	span, target := hi-lo, maximum-minimum
	for idx := range m.data {
		m.data[idx] = minimum + (m.data[idx]-lo)/span*target
	}

	return nil
}

// Simplify divides every element by the smallest non-zero |element|, scaling
// the matrix so its least significant magnitude becomes ±1. A zero matrix is
// left untouched (no non-zero magnitude exists).
// Complexity: O(r*c).
func (m *Dense) Simplify() {
	minAbs := math.Inf(1)
	var div float64
	m.Do(func(_, _ int, v float64) bool {
		if a := math.Abs(v); a > 0 && a < minAbs {
			minAbs = a
			div = v
		}

		return true
	})
	if math.IsInf(minAbs, 1) {
		return // all zeros
	}
	for idx := range m.data {
		m.data[idx] /= div
	}
}
