// SPDX-License-Identifier: MIT
// Package dense provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, the Hadamard quotient and column augmentation.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via opErrorf at the facade.
//   - Every kernel has a *Dense fast-path (flat-slice loops) and a generic
//     interface fallback with a fixed i→j visitation order.

package dense

import "fmt"

// ZeroSum is the initial sum value for dot products and substitution loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opDivElem   = "DivElem"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opAugment   = "Augment"
	opNormalize = "Normalize"
	opInverse   = "Inverse"
	opRank      = "Rank"
	opDet       = "Det"
	opLU        = "LU"
	opQR        = "QR"
	opSVD       = "SVD"
)

// opErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation, allocation,
// and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (both from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, opErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, opErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, opErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Inputs are never mutated.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Inputs are never mutated.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, opErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, opErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, opErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Scale multiplies every element by the scalar k and returns a fresh Dense.
// The operand is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, k float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}

	// Fast-path: single flat loop over the backing slice.
	if dm, ok := m.(*Dense); ok {
		for idx := range dm.data {
			res.data[idx] = dm.data[idx] * k
		}

		return res, nil
	}

	// Fallback: fixed i→j order.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*k); err != nil {
				return nil, opErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// DivElem computes the Hadamard (element-wise) quotient C[i,j] = A[i,j]/B[i,j]
// and returns a fresh Dense. This is NOT matrix division: no factorization is
// involved, and a zero in B produces ±Inf/NaN exactly as float64 division does
// (the result matrix carries the relaxed numeric policy for this reason).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func DivElem(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opDivElem, err)
	}
	rows, cols := a.Rows(), a.Cols()
	// Quotients may be non-finite; construct with validation off.
	res, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, opErrorf(opDivElem, err)
	}

	// Fast path: flat loop on both backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				res.data[idx] = da.data[idx] / db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, opErrorf(opDivElem, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, opErrorf(opDivElem, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av/bv); err != nil {
				return nil, opErrorf(opDivElem, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Element (i,j) of the result equals element (j,i) of the source; since the
// operation only reindexes, Transpose(Transpose(A)) equals A exactly.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense: data[i*cols+j] → res.data[j*rows+i].
	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic i→j loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, opErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// MatVec computes the matrix-vector product y = m·x.
//
// Errors: ErrNilMatrix (nil input or nil vector), ErrDimensionMismatch
// (len(x) != m.Cols()).
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	y := make([]float64, rows)

	// Fast-path: row-block dot products on the flat buffer.
	var i, j int
	var sum float64
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				sum += dm.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	// Fallback: fixed i→j order over the interface.
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Augment appends the column vector v on the right of m and returns a fresh
// Dense of shape rows × (cols+1). The operand is never mutated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != m.Rows()).
// Complexity: Time O(r*c), Space O(r*(c+1)).
func Augment(m Matrix, v []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opAugment, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(v, rows); err != nil {
		return nil, opErrorf(opAugment, err)
	}
	res, err := NewDense(rows, cols+1)
	if err != nil {
		return nil, opErrorf(opAugment, err)
	}

	// Fast-path: row-block copies plus one trailing write per row.
	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			copy(res.data[i*(cols+1):i*(cols+1)+cols], dm.data[i*cols:(i+1)*cols])
			res.data[i*(cols+1)+cols] = v[i]
		}

		return res, nil
	}

	// Fallback: fixed i→j order.
	var mv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opAugment, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*(cols+1)+j] = mv
		}
		res.data[i*(cols+1)+cols] = v[i]
	}

	return res, nil
}
