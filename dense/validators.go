// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (wrapped with the validator tag only) so
//    call sites can wrap uniformly with the operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes
//    (e.g. no nil check).

package dense

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – NotNil(a) → NotNil(b) → SameShape(a,b).
// Canonical guard for Add/Sub/DivElem kernels.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible – NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Canonical guard for the matrix product.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
//
// Errors: ErrNonSquare if the shape disagrees.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateTall checks that m has at least as many rows as columns
// (the QR precondition). Assumes m is not nil.
//
// Errors: ErrTallRequired when rows < cols.
// Complexity: O(1).
func ValidateTall(m Matrix) error {
	if m.Rows() < m.Cols() {
		return validatorErrorf("ValidateTall", ErrTallRequired)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRectangular ensures a 2-D slice is non-empty and all rows share the
// first row's length. Canonical guard for NewFromRows ingestion.
//
// Errors: ErrInvalidDimensions (empty), ErrRaggedRows (uneven rows).
// Complexity: O(rows).
func ValidateRectangular(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrRaggedRows)
		}
	}

	return nil
}
