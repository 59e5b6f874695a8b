// SPDX-License-Identifier: MIT
// Package dense: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common construction tasks.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package dense

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewFilled returns a rows×cols *Dense with every element set to v.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data { // single flat pass
		m.data[i] = v
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewEye returns the rectangular identity: ones on the main diagonal up to
// min(rows, cols), zeros elsewhere. NewIdentity is the square special case.
// Complexity: O(r*c) zeroing + O(min(r,c)) diagonal writes.
func NewEye(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	size := rows
	if cols < size {
		size = cols
	}
	for i := 0; i < size; i++ {
		m.data[i*cols+i] = 1.0
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// asDense converts any Matrix into a concrete *Dense, copying only when the
// dynamic type is not already *Dense. Internal staging helper for kernels
// that need flat-buffer access to a snapshot of the input.
// Complexity: O(1) for *Dense inputs, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}
