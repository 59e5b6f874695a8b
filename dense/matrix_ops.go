// SPDX-License-Identifier: MIT
// Package dense: matrix-level compositions over the factorization kernels.
//
// Purpose:
//   - Provide the operations that dispatch between decompositions rather than
//     belonging to a single one: Inverse (LU or QR against the identity),
//     Rank (SVD with the standard numerical threshold) and the Det facade.

package dense

// Inverse returns A⁻¹ for a square matrix, or the least-squares pseudo-inverse
// for a tall one.
//
// Implementation:
//   - Square: factor with LU and solve LU·X = I.
//   - rows > cols: factor with QR and solve QR·X = I (the result is cols×rows).
//   - rows < cols: rejected, since the QR path requires rows >= cols.
//
// Errors:
//   - ErrNilMatrix, ErrSingular (square, singular), ErrRankDeficient
//     (tall, rank deficient), ErrTallRequired (wide input).
//
// Complexity:
//   - Time O(rows·cols·min(rows,cols)) for the factorization plus the solve.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opInverse, err)
	}
	rows, cols := m.Rows(), m.Cols()
	identity, err := NewIdentity(rows)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	// Square systems go through LU; everything else is a least-squares
	// problem for QR.
	if rows == cols {
		lu, luErr := NewLU(m)
		if luErr != nil {
			return nil, luErr
		}

		return lu.Solve(identity)
	}
	qr, qrErr := NewQR(m)
	if qrErr != nil {
		return nil, qrErr
	}

	return qr.Solve(identity)
}

// Rank returns the effective numerical rank of m: the count of singular
// values strictly greater than max(rows, cols) · σ_max · 2⁻⁵². Delegates to
// the SVD even for square matrices: the cheaper LU pivot inspection is less
// robust under roundoff, and rank queries are rarely hot.
//
// Errors: ErrNilMatrix.
// Complexity: dominated by the SVD.
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, opErrorf(opRank, err)
	}
	svd, err := NewSVD(m)
	if err != nil {
		return 0, err
	}

	return svd.Rank(), nil
}

// Det returns the determinant of a square matrix via pivoted LU.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func Det(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, opErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, opErrorf(opDet, err)
	}
	lu, err := NewLU(m)
	if err != nil {
		return 0, err
	}

	return lu.Determinant()
}
