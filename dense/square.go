// SPDX-License-Identifier: MIT
// Package dense: the square-matrix specialization.

package dense

// Square is a Dense that statically guarantees rows == cols. The guarantee is
// established once at construction; all Dense methods are promoted unchanged,
// and the determinant becomes directly accessible through LU.
type Square struct {
	*Dense
}

// NewSquare returns an n×n zero Square.
//
// Errors: ErrInvalidDimensions (n <= 0).
// Complexity: O(n²).
func NewSquare(n int, opts ...Option) (*Square, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}

	return &Square{Dense: m}, nil
}

// NewSquareFromRows builds a Square from a 2-D slice, failing fast when the
// slice is not square.
//
// Errors: ErrInvalidDimensions, ErrRaggedRows, ErrNonSquare, ErrNaNInf.
// Complexity: O(n²).
func NewSquareFromRows(rows [][]float64, opts ...Option) (*Square, error) {
	m, err := NewFromRows(rows, opts...)
	if err != nil {
		return nil, err
	}
	if err = ValidateSquare(m); err != nil {
		return nil, err
	}

	return &Square{Dense: m}, nil
}

// AsSquare wraps an existing matrix as a Square, snapshotting non-Dense
// implementations. Fails fast when the shape disagrees.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1) for *Dense inputs, O(n²) otherwise.
func AsSquare(m Matrix) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}

	return &Square{Dense: d}, nil
}

// Size returns the single dimension n (= Rows() = Cols()).
// Complexity: O(1).
func (s *Square) Size() int { return s.r }

// LU returns the pivoted LU factorization of the square.
// Complexity: O(n³).
func (s *Square) LU() (*LUDecomposition, error) { return NewLU(s.Dense) }

// Determinant is exactly lu().Determinant(): pivsign · ∏ U[j][j].
// Complexity: O(n³) dominated by the factorization.
func (s *Square) Determinant() (float64, error) {
	lu, err := s.LU()
	if err != nil {
		return 0, err
	}

	return lu.Determinant()
}
