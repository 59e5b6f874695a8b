// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package dense_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/dense"
)

// Tolerance used by reconstruction/orthogonality property tests.
const reconTol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths in the kernels.
type hide struct{ dense.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *dense.Dense {
	t.Helper()
	m, err := dense.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from a row-major 2-D slice (fatal on error).
func MustFromRows(t *testing.T, rows [][]float64) *dense.Dense {
	t.Helper()
	m, err := dense.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity matrix (fatal on error).
func IdentityDense(t *testing.T, n int) *dense.Dense {
	t.Helper()
	m, err := dense.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustSet WRITES v at (i,j) or aborts the test.
func MustSet(t *testing.T, m dense.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// MustAt READS (i,j) or aborts the test.
func MustAt(t *testing.T, m dense.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill POPULATES m with deterministic pseudo-random values in [-1, 1).
// The seed pins the sequence so failures reproduce bit-for-bit.
func RandomFill(t *testing.T, m dense.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// CompareExact ASSERTS got equals want element-for-element with no tolerance.
// Use only for integer-like data or pure reindexing operations.
func CompareExact(t *testing.T, want [][]float64, got dense.Matrix) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), got.Rows(), got.Cols())
	}
	var i, j int
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			if v := MustAt(t, got, i, j); v != want[i][j] {
				t.Fatalf("at [%d,%d]: want %g, got %g", i, j, want[i][j], v)
			}
		}
	}
}

// CompareClose ASSERTS got equals want within tol per element.
func CompareClose(t *testing.T, want [][]float64, got dense.Matrix, tol float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), got.Rows(), got.Cols())
	}
	var i, j int
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			if v := MustAt(t, got, i, j); math.Abs(v-want[i][j]) > tol {
				t.Fatalf("at [%d,%d]: want %g, got %g (tol %g)", i, j, want[i][j], v, tol)
			}
		}
	}
}

// MatricesClose ASSERTS two matrices agree within tol per element.
func MatricesClose(t *testing.T, want, got dense.Matrix, tol float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			want.Rows(), want.Cols(), got.Rows(), got.Cols())
	}
	var i, j int
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			wv, gv := MustAt(t, want, i, j), MustAt(t, got, i, j)
			if math.Abs(wv-gv) > tol {
				t.Fatalf("at [%d,%d]: want %g, got %g (tol %g)", i, j, wv, gv, tol)
			}
		}
	}
}

// AssertErrorIs CHECKS that err matches the expected sentinel via errors.Is.
func AssertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error %v, got nil", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("want errors.Is(err, %v), got: %v", want, err)
	}
}
