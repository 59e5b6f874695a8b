// SPDX-License-Identifier: MIT
// Package dense_test contains unit tests for the Square specialization.
package dense_test

import (
	"testing"

	"github.com/katalvlaran/linalg/dense"
	"github.com/stretchr/testify/require"
)

// TestNewSquare allocates a zero square and checks the promoted Dense API.
func TestNewSquare(t *testing.T) {
	s, err := dense.NewSquare(3)
	require.NoError(t, err)

	require.Equal(t, 3, s.Size())
	require.Equal(t, 3, s.Rows())
	require.Equal(t, 3, s.Cols())

	require.NoError(t, s.Set(1, 1, 4.5))
	require.Equal(t, 4.5, MustAt(t, s, 1, 1))

	_, err = dense.NewSquare(0)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
}

// TestNewSquareFromRows accepts square slices and rejects rectangular ones.
func TestNewSquareFromRows(t *testing.T) {
	s, err := dense.NewSquareFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, s)

	_, err = dense.NewSquareFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, dense.ErrNonSquare)
}

// TestAsSquare wraps an existing Dense and rejects rectangular shapes.
func TestAsSquare(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0}, {0, 2}})

	s, err := dense.AsSquare(m)
	require.NoError(t, err)
	require.Equal(t, 2, s.Size())

	_, err = dense.AsSquare(MustDense(t, 2, 3))
	require.ErrorIs(t, err, dense.ErrNonSquare)

	_, err = dense.AsSquare(nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

// TestSquareDeterminant checks the LU-backed determinant accessor.
func TestSquareDeterminant(t *testing.T) {
	s, err := dense.NewSquareFromRows([][]float64{{4, 3}, {6, 3}})
	require.NoError(t, err)

	det, err := s.Determinant()
	require.NoError(t, err)
	require.InDelta(t, -6.0, det, 1e-12)
}

// TestSquareLU checks the factorization handle exposed on the square type.
func TestSquareLU(t *testing.T) {
	s, err := dense.NewSquareFromRows([][]float64{{2, 1}, {1, 2}})
	require.NoError(t, err)

	lu, err := s.LU()
	require.NoError(t, err)
	require.True(t, lu.IsNonsingular())

	prod, err := dense.Mul(lu.L(), lu.U())
	require.NoError(t, err)
	permuted, err := s.SubmatrixRows(lu.Pivot(), 0, 2)
	require.NoError(t, err)
	MatricesClose(t, permuted, prod, 1e-14)
}
