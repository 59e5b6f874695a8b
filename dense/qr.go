// SPDX-License-Identifier: MIT
// Package dense: QR factorization by Householder reflections.
//
// Purpose:
//   - Factor a rows×cols matrix A (rows >= cols) into an orthogonal Q and an
//     upper triangular R so that A = Q*R, stored compactly: the Householder
//     vectors sit below the diagonal of the working buffer, R's off-diagonal
//     above it, and R's true diagonal lives in a separate rdiag array.
//
// Behavior highlights:
//   - The factorization always exists, even without full column rank, so the
//     constructor fails only on shape grounds; Solve surfaces rank deficiency.
//   - Q, R and H are derived views reconstructed on demand, not stored eagerly.
//   - rows >= cols is a hard precondition (ErrTallRequired), not undefined
//     behavior: the Householder schedule indexes past the buffer otherwise.

package dense

// QRDecomposition holds the compact Householder factorization.
type QRDecomposition struct {
	qr         *Dense    // Householder vectors below diag, R above it
	rows, cols int       // rows >= cols
	rdiag      []float64 // true diagonal of R (the in-place diagonal is reflection data)
}

// NewQR computes the Householder QR factorization of m.
//
// Implementation:
//   - Stage 1: validate not-nil and rows >= cols; snapshot m.
//   - Stage 2: for each column k: overflow-safe 2-norm over rows k..rows-1,
//     sign matched to the current diagonal (minimizes cancellation), column
//     normalized with +1.0 added on the diagonal to encode the reflection
//     compactly, then one rank-1 update of every remaining column.
//     Rdiag[k] receives the negated norm: the true diagonal of R.
//
// Errors:
//   - ErrNilMatrix, ErrTallRequired (rows < cols).
//
// Complexity:
//   - Time O(rows*cols²), Space O(rows*cols).
func NewQR(m Matrix) (*QRDecomposition, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opQR, err)
	}
	if err := ValidateTall(m); err != nil {
		return nil, opErrorf(opQR, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, opErrorf(opQR, err)
	}

	d := &QRDecomposition{
		qr:    src.clone(),
		rows:  src.r,
		cols:  src.c,
		rdiag: make([]float64, src.c),
	}
	rows, cols := d.rows, d.cols
	qr := d.qr.data

	var i, j, k int
	var nrm, s float64
	// Main loop over columns.
	for k = 0; k < cols; k++ {
		// Compute 2-norm of the k-th column without under/overflow.
		nrm = 0.0
		for i = k; i < rows; i++ {
			nrm = Hypot(nrm, qr[i*cols+k])
		}
		if nrm != 0.0 {
			// Form the k-th Householder vector, sign matched to the diagonal.
			if qr[k*cols+k] < 0 {
				nrm = -nrm
			}
			for i = k; i < rows; i++ {
				qr[i*cols+k] /= nrm
			}
			qr[k*cols+k] += 1.0

			// Apply the reflection to the remaining columns (rank-1 update).
			for j = k + 1; j < cols; j++ {
				s = ZeroSum
				for i = k; i < rows; i++ {
					s += qr[i*cols+k] * qr[i*cols+j]
				}
				s = -s / qr[k*cols+k]
				for i = k; i < rows; i++ {
					qr[i*cols+j] += s * qr[i*cols+k]
				}
			}
		}
		d.rdiag[k] = -nrm
	}

	return d, nil
}

// IsFullRank reports whether R (and hence A) has full column rank: no entry
// of R's diagonal is exactly zero.
// Complexity: O(cols).
func (d *QRDecomposition) IsFullRank() bool {
	for j := 0; j < d.cols; j++ {
		if d.rdiag[j] == 0.0 {
			return false
		}
	}

	return true
}

// H returns the Householder vectors as a fresh lower trapezoidal rows×cols
// Dense. The columns define the reflections that produced the factorization.
// Complexity: O(rows*cols).
func (d *QRDecomposition) H() *Dense {
	res, _ := NewDense(d.rows, d.cols)
	var i, j int
	for i = 0; i < d.rows; i++ {
		for j = 0; j <= i && j < d.cols; j++ {
			res.data[i*d.cols+j] = d.qr.data[i*d.cols+j]
		}
	}

	return res
}

// R returns the upper triangular factor as a fresh cols×cols Dense: the
// stored off-diagonal entries with rdiag supplying the true diagonal.
// Complexity: O(cols²).
func (d *QRDecomposition) R() *Dense {
	res, _ := NewDense(d.cols, d.cols)
	var i, j int
	for i = 0; i < d.cols; i++ {
		res.data[i*d.cols+i] = d.rdiag[i]
		for j = i + 1; j < d.cols; j++ {
			res.data[i*d.cols+j] = d.qr.data[i*d.cols+j]
		}
	}

	return res
}

// Q reconstructs the economy-sized orthogonal factor (rows×cols) by
// back-accumulating the stored reflections in reverse column order.
// Complexity: O(rows*cols²).
func (d *QRDecomposition) Q() *Dense {
	res, _ := NewDense(d.rows, d.cols)
	rows, cols := d.rows, d.cols
	q := res.data
	qr := d.qr.data

	var i, j, k int
	var s float64
	for k = cols - 1; k >= 0; k-- {
		for i = 0; i < rows; i++ {
			q[i*cols+k] = 0.0
		}
		q[k*cols+k] = 1.0
		for j = k; j < cols; j++ {
			if qr[k*cols+k] != 0 {
				s = ZeroSum
				for i = k; i < rows; i++ {
					s += qr[i*cols+k] * q[i*cols+j]
				}
				s = -s / qr[k*cols+k]
				for i = k; i < rows; i++ {
					q[i*cols+j] += s * qr[i*cols+k]
				}
			}
		}
	}

	return res
}

// Solve returns the least-squares solution X minimizing ‖Q·R·X − B‖₂.
//
// Implementation:
//   - Stage 1: validate B's row count and full column rank.
//   - Stage 2: apply the stored reflections to a copy of B in forward order
//     (computing Qᵀ·B without forming Q).
//   - Stage 3: back-substitute through R using rdiag as the true diagonal;
//     return the top cols rows of the workspace.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts disagree),
//     ErrRankDeficient (zero on R's diagonal).
//
// Complexity:
//   - Time O(rows*cols·nx), Space O(rows·nx) workspace.
func (d *QRDecomposition) Solve(b Matrix) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opQR, err)
	}
	if b.Rows() != d.rows {
		return nil, opErrorf(opQR, ErrDimensionMismatch)
	}
	if !d.IsFullRank() {
		return nil, opErrorf(opQR, ErrRankDeficient)
	}

	bd, err := asDense(b)
	if err != nil {
		return nil, opErrorf(opQR, err)
	}
	nx := bd.c
	x := bd.clone() // workspace: rows×nx copy of the right-hand side
	qr := d.qr.data

	var i, j, k int
	var s float64
	// Compute Y = Qᵀ·B by applying the reflections in forward order.
	for k = 0; k < d.cols; k++ {
		for j = 0; j < nx; j++ {
			s = ZeroSum
			for i = k; i < d.rows; i++ {
				s += qr[i*d.cols+k] * x.data[i*nx+j]
			}
			s = -s / qr[k*d.cols+k]
			for i = k; i < d.rows; i++ {
				x.data[i*nx+j] += s * qr[i*d.cols+k]
			}
		}
	}
	// Solve R·X = Y by back substitution with the true diagonal.
	for k = d.cols - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			x.data[k*nx+j] /= d.rdiag[k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * qr[i*d.cols+k]
			}
		}
	}

	// Only the leading cols×nx block is the solution.
	return x.Submatrix(0, d.cols, 0, nx)
}
