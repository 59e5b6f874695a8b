// SPDX-License-Identifier: MIT
// Package dense_test contains unit tests for the Householder QR factorization.
package dense_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/dense"
	"github.com/stretchr/testify/require"
)

// TestQRReconstruction checks the defining identity Q·R = A on a random tall
// matrix.
func TestQRReconstruction(t *testing.T) {
	a := MustDense(t, 6, 4)
	RandomFill(t, a, 42)

	d, err := dense.NewQR(a)
	require.NoError(t, err)

	qr, err := dense.Mul(d.Q(), d.R())
	require.NoError(t, err)
	MatricesClose(t, a, qr, reconTol)
}

// TestQROrthonormalColumns checks QᵀQ = I for the economy-sized factor.
func TestQROrthonormalColumns(t *testing.T) {
	a := MustDense(t, 5, 3)
	RandomFill(t, a, 9)

	d, err := dense.NewQR(a)
	require.NoError(t, err)

	q := d.Q()
	qt, err := dense.Transpose(q)
	require.NoError(t, err)
	gram, err := dense.Mul(qt, q)
	require.NoError(t, err)

	id := IdentityDense(t, 3)
	MatricesClose(t, id, gram, reconTol)
}

// TestQRWideRejected enforces the rows >= cols precondition.
func TestQRWideRejected(t *testing.T) {
	a := MustDense(t, 2, 3)
	RandomFill(t, a, 3)

	_, err := dense.NewQR(a)
	require.ErrorIs(t, err, dense.ErrTallRequired)
}

// TestQRTallIdentity factors the 3x2 slice of the identity: full rank, with R
// equal to the identity up to the sign convention of the reflections.
func TestQRTallIdentity(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{1, 0},
		{0, 1},
		{0, 0},
	})

	d, err := dense.NewQR(a)
	require.NoError(t, err)
	require.True(t, d.IsFullRank())

	r := d.R()
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0 // diagonal magnitude, sign is convention
			}
			require.InDelta(t, want, math.Abs(MustAt(t, r, i, j)), 1e-15)
		}
	}
}

// TestQRUpperTriangularR checks R carries no entries below its diagonal.
func TestQRUpperTriangularR(t *testing.T) {
	a := MustDense(t, 5, 4)
	RandomFill(t, a, 13)

	d, err := dense.NewQR(a)
	require.NoError(t, err)

	r := d.R()
	var i, j int
	for i = 0; i < r.Rows(); i++ {
		for j = 0; j < i; j++ {
			require.Equal(t, 0.0, MustAt(t, r, i, j))
		}
	}
}

// TestQRSolveExact solves a square full-rank system through the QR path.
func TestQRSolveExact(t *testing.T) {
	a := MustFromRows(t, [][]float64{{4, 3}, {6, 3}})
	b := MustFromRows(t, [][]float64{{1}, {2}})

	d, err := dense.NewQR(a)
	require.NoError(t, err)

	x, err := d.Solve(b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0.5}, {-1.0 / 3.0}}, x, 1e-12)
}

// TestQRSolveLeastSquares fits an overdetermined system and checks against
// the hand-computed normal-equations solution.
func TestQRSolveLeastSquares(t *testing.T) {
	// Fit y = c0 + c1·x to the points (1,6), (2,0), (3,0).
	a := MustFromRows(t, [][]float64{
		{1, 1},
		{1, 2},
		{1, 3},
	})
	b := MustFromRows(t, [][]float64{{6}, {0}, {0}})

	d, err := dense.NewQR(a)
	require.NoError(t, err)

	x, err := d.Solve(b)
	require.NoError(t, err)

	// Normal equations give c0 = 8, c1 = -3.
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 1, x.Cols())
	CompareClose(t, [][]float64{{8}, {-3}}, x, 1e-10)
}

// TestQRSolveRankDeficient surfaces ErrRankDeficient for dependent columns.
func TestQRSolveRankDeficient(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{1, 1},
		{1, 1},
		{1, 1},
	})
	b := MustFromRows(t, [][]float64{{1}, {2}, {3}})

	d, err := dense.NewQR(a)
	require.NoError(t, err)
	require.False(t, d.IsFullRank())

	_, err = d.Solve(b)
	require.ErrorIs(t, err, dense.ErrRankDeficient)
}

// TestQRSolveRowMismatch rejects a right-hand side with the wrong row count.
func TestQRSolveRowMismatch(t *testing.T) {
	a := MustDense(t, 4, 2)
	RandomFill(t, a, 17)
	b := MustDense(t, 3, 1)

	d, err := dense.NewQR(a)
	require.NoError(t, err)

	_, err = d.Solve(b)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestQRHouseholderShape checks H is lower trapezoidal.
func TestQRHouseholderShape(t *testing.T) {
	a := MustDense(t, 5, 3)
	RandomFill(t, a, 23)

	d, err := dense.NewQR(a)
	require.NoError(t, err)

	h := d.H()
	require.Equal(t, 5, h.Rows())
	require.Equal(t, 3, h.Cols())
	var i, j int
	for i = 0; i < h.Rows(); i++ {
		for j = i + 1; j < h.Cols(); j++ {
			require.Equal(t, 0.0, MustAt(t, h, i, j)) // zero above diagonal
		}
	}
}

// TestQRThroughInterface checks the hidden-type path agrees with the fast one.
func TestQRThroughInterface(t *testing.T) {
	a := MustDense(t, 4, 3)
	RandomFill(t, a, 29)

	fast, err := dense.NewQR(a)
	require.NoError(t, err)
	slow, err := dense.NewQR(hide{a})
	require.NoError(t, err)

	MatricesClose(t, fast.R(), slow.R(), 0)
	MatricesClose(t, fast.Q(), slow.Q(), 0)
}
