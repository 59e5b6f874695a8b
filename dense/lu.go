// SPDX-License-Identifier: MIT
// Package dense: LU factorization with partial (row) pivoting.
//
// Purpose:
//   - Factor a rows×cols matrix A into a unit lower triangular L, an upper
//     triangular U and a row permutation pivot so that A(pivot,:) = L*U.
//   - The factorization uses a "left-looking", dot-product Crout/Doolittle
//     schedule with column localization for cache efficiency.
//
// Behavior highlights:
//   - Pivoted LU always exists, even for singular input, so the constructor
//     never fails on numeric grounds; Solve and Determinant surface the
//     failure modes instead.
//   - The whole factorization runs eagerly at construction and the result is
//     immutable afterwards: queries are O(1) or simple reads of cached factors.

package dense

import "math"

// LUDecomposition holds the compact factorization of a rows×cols matrix.
//   - lu stores L's multipliers strictly below the diagonal and U on and
//     above it, in a single working buffer.
//   - pivot is the row permutation applied during elimination.
//   - pivsign is ±1 and tracks the parity of row swaps (determinant sign).
type LUDecomposition struct {
	lu         *Dense // packed L (below diag) and U (on/above diag)
	rows, cols int
	pivot      []int // permutation of 0..rows-1
	pivsign    int   // +1 or -1
}

// NewLU computes the pivoted LU factorization of m.
//
// Implementation:
//   - Stage 1: snapshot m into a working buffer; pivot[i]=i, pivsign=+1.
//   - Stage 2: for each column j: localize the column, subtract the
//     min(i,j)-term dot products of already-computed L/U entries, pick the
//     largest-|v| pivot in [j, rows), swap rows (buffer + pivot + sign), and
//     divide the subcolumn by the pivot when it is non-zero. A zero pivot is
//     legal here: it encodes a singular factorization detected later.
//
// Errors:
//   - ErrNilMatrix only; the factorization itself cannot fail.
//
// Complexity:
//   - Time O(rows*cols*min(rows,cols)), Space O(rows*cols).
func NewLU(m Matrix) (*LUDecomposition, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, opErrorf(opLU, err)
	}

	d := &LUDecomposition{
		lu:      src.clone(), // decompositions snapshot their source
		rows:    src.r,
		cols:    src.c,
		pivot:   make([]int, src.r),
		pivsign: 1,
	}
	for i := range d.pivot {
		d.pivot[i] = i
	}

	rows, cols := d.rows, d.cols
	lu := d.lu.data
	colj := make([]float64, rows) // localized copy of the current column

	var i, j, k, p, kmax int
	var s, t float64
	// Outer loop over columns.
	for j = 0; j < cols; j++ {
		// Localize column j to avoid repeated strided access.
		for i = 0; i < rows; i++ {
			colj[i] = lu[i*cols+j]
		}

		// Apply previous transformations: the dominant dot-product step.
		for i = 0; i < rows; i++ {
			kmax = i
			if j < kmax {
				kmax = j
			}
			s = ZeroSum
			for k = 0; k < kmax; k++ {
				s += lu[i*cols+k] * colj[k]
			}
			colj[i] -= s
			lu[i*cols+j] = colj[i]
		}

		// Find pivot and exchange if necessary.
		p = j
		for i = j + 1; i < rows; i++ {
			if math.Abs(colj[i]) > math.Abs(colj[p]) {
				p = i
			}
		}
		if p != j {
			for k = 0; k < cols; k++ {
				t = lu[p*cols+k]
				lu[p*cols+k] = lu[j*cols+k]
				lu[j*cols+k] = t
			}
			d.pivot[p], d.pivot[j] = d.pivot[j], d.pivot[p]
			d.pivsign = -d.pivsign
		}

		// Compute multipliers. A zero pivot leaves the subcolumn as-is,
		// correctly encoding a singular factorization.
		if j < rows && lu[j*cols+j] != 0.0 {
			for i = j + 1; i < rows; i++ {
				lu[i*cols+j] /= lu[j*cols+j]
			}
		}
	}

	return d, nil
}

// IsNonsingular reports whether U (and hence A) has no exactly-zero diagonal
// entry. Callers wanting to avoid the ErrSingular path from Solve should
// check this first.
// Complexity: O(min(rows, cols)).
func (d *LUDecomposition) IsNonsingular() bool {
	n := d.cols
	if d.rows < n {
		n = d.rows
	}
	for j := 0; j < n; j++ {
		if d.lu.data[j*d.cols+j] == 0.0 {
			return false
		}
	}

	return true
}

// Determinant returns pivsign · ∏ U[j][j].
//
// Errors: ErrNonSquare when the factored matrix is not square.
// Complexity: O(cols).
func (d *LUDecomposition) Determinant() (float64, error) {
	if d.rows != d.cols {
		return 0, opErrorf(opDet, ErrNonSquare)
	}
	det := float64(d.pivsign)
	for j := 0; j < d.cols; j++ {
		det *= d.lu.data[j*d.cols+j]
	}

	return det, nil
}

// L returns the unit lower triangular factor as a fresh rows×cols Dense.
// Complexity: O(rows*cols).
func (d *LUDecomposition) L() *Dense {
	res, _ := NewDense(d.rows, d.cols) // dims are valid by construction
	var i, j int
	for i = 0; i < d.rows; i++ {
		for j = 0; j < d.cols; j++ {
			switch {
			case i > j:
				res.data[i*d.cols+j] = d.lu.data[i*d.cols+j]
			case i == j:
				res.data[i*d.cols+j] = 1.0
			}
		}
	}

	return res
}

// U returns the upper triangular factor as a fresh cols×cols Dense.
// Rows beyond the factored matrix's row count stay zero.
// Complexity: O(cols²).
func (d *LUDecomposition) U() *Dense {
	res, _ := NewDense(d.cols, d.cols)
	n := d.cols
	if d.rows < n {
		n = d.rows
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < d.cols; j++ {
			res.data[i*d.cols+j] = d.lu.data[i*d.cols+j]
		}
	}

	return res
}

// Pivot returns a copy of the row permutation vector.
// Complexity: O(rows).
func (d *LUDecomposition) Pivot() []int {
	p := make([]int, len(d.pivot))
	copy(p, d.pivot)

	return p
}

// PivotSign returns ±1: the parity of the row swaps performed.
// Complexity: O(1).
func (d *LUDecomposition) PivotSign() int { return d.pivsign }

// Solve returns X so that L·U·X = B(pivot,:), i.e. A·X = B.
//
// Implementation:
//   - Stage 1: validate B's row count and non-singularity.
//   - Stage 2: copy B with its rows permuted by pivot.
//   - Stage 3: forward-substitute through L, then back-substitute through U,
//     column-block at a time (fixed k→i→j order).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts disagree),
//     ErrSingular (zero on U's diagonal).
//
// Complexity:
//   - Time O(cols²·nx), Space O(rows·nx) for the solution.
func (d *LUDecomposition) Solve(b Matrix) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opLU, err)
	}
	if b.Rows() != d.rows {
		return nil, opErrorf(opLU, ErrDimensionMismatch)
	}
	if !d.IsNonsingular() {
		return nil, opErrorf(opLU, ErrSingular)
	}

	bd, err := asDense(b)
	if err != nil {
		return nil, opErrorf(opLU, err)
	}
	// Copy the right-hand side with row pivoting applied.
	nx := bd.c
	x, err := bd.SubmatrixRows(d.pivot, 0, nx)
	if err != nil {
		return nil, opErrorf(opLU, err)
	}

	lu := d.lu.data
	var i, j, k int
	// Solve L*Y = B(pivot,:).
	for k = 0; k < d.cols; k++ {
		for i = k + 1; i < d.cols; i++ {
			for j = 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * lu[i*d.cols+k]
			}
		}
	}
	// Solve U*X = Y.
	for k = d.cols - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			x.data[k*nx+j] /= lu[k*d.cols+k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * lu[i*d.cols+k]
			}
		}
	}

	return x, nil
}
