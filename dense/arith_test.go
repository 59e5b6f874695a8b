// SPDX-License-Identifier: MIT
// Package dense_test contains unit tests for the fresh-result arithmetic
// kernels: Add, Sub, Mul, Scale, DivElem, Transpose, MatVec and Augment.
package dense_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/dense"
	"github.com/stretchr/testify/require"
)

// TestAddSub verifies element-wise addition and subtraction on the fast path.
func TestAddSub(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := dense.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := dense.Sub(b, a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{9, 18}, {27, 36}}, diff)

	// Operands are untouched by the fresh-result kernels.
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
}

// TestAddShapeMismatch ensures shape validation fires before any arithmetic.
func TestAddShapeMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)

	_, err := dense.Add(a, b)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	_, err = dense.Sub(a, nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

// TestMul verifies the general product on a known rectangular case.
func TestMul(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	b := MustFromRows(t, [][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})

	p, err := dense.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, p)
}

// TestMulIncompatible checks the inner-dimension guard.
func TestMulIncompatible(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3) // inner dims 3 vs 2 disagree

	_, err := dense.Mul(a, b)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestMulIdentityNeutral checks I·A == A == A·I.
func TestMulIdentityNeutral(t *testing.T) {
	a := MustFromRows(t, [][]float64{{2, -1}, {0.5, 3}})
	id := IdentityDense(t, 2)

	left, err := dense.Mul(id, a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, -1}, {0.5, 3}}, left)

	right, err := dense.Mul(a, id)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, -1}, {0.5, 3}}, right)
}

// TestFallbackAgreesWithFastPath runs the kernels through an interface wrapper
// that hides the concrete type and checks the results match the fast path.
func TestFallbackAgreesWithFastPath(t *testing.T) {
	a := MustDense(t, 3, 4)
	b := MustDense(t, 4, 2)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	fast, err := dense.Mul(a, b)
	require.NoError(t, err)

	slow, err := dense.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	MatricesClose(t, fast, slow, 1e-12)

	c := MustDense(t, 3, 4)
	RandomFill(t, c, 3)

	fastSum, err := dense.Add(a, c)
	require.NoError(t, err)
	slowSum, err := dense.Add(hide{a}, hide{c})
	require.NoError(t, err)
	MatricesClose(t, fastSum, slowSum, 0)
}

// TestScale verifies scalar multiplication, including the zero annihilator.
func TestScale(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, -2}, {3, 4}})

	doubled, err := dense.Scale(a, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, -4}, {6, 8}}, doubled)

	zeroed, err := dense.Scale(a, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, zeroed)
}

// TestDivElem verifies the Hadamard quotient, including division by zero
// flowing through as IEEE-754 infinities.
func TestDivElem(t *testing.T) {
	a := MustFromRows(t, [][]float64{{10, 9}, {8, 1}})
	b := MustFromRows(t, [][]float64{{2, 3}, {4, 2}})

	q, err := dense.DivElem(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 3}, {2, 0.5}}, q)

	zeros := MustFromRows(t, [][]float64{{1, 1}, {1, 0}})
	q, err = dense.DivElem(a, zeros)
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, q, 1, 1), 1)) // 1/0 = +Inf, not an error
}

// TestTranspose verifies the reindexing copy and the involution Aᵀᵀ == A.
func TestTranspose(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	tr, err := dense.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	back, err := dense.Transpose(tr)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, back) // exact round-trip
}

// TestMatVec verifies matrix-vector application and its length guard.
func TestMatVec(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})

	y, err := dense.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = dense.MatVec(a, []float64{1, 2, 3}) // length 3 against 2 columns
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestAugment verifies the right-append of a column vector.
func TestAugment(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	aug, err := dense.Augment(a, []float64{9, 8})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 9}, {3, 4, 8}}, aug)

	_, err = dense.Augment(a, []float64{1}) // wrong vector length
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}
