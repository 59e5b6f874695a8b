// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers
// (if any).

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index/NaN -> dimension mismatch -> factorization
// failures (singular / rank deficient).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub/DivElem with different shapes, Mul where a.Cols != b.Rows,
	// Augment with a vector shorter or longer than the row count, or Solve
	// with a right-hand side whose row count disagrees with the factored matrix.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Determinant, Square construction).
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrRaggedRows signals that a 2-D slice used for construction has rows of
	// unequal length. Raw-array ingestion must reject such input up front.
	ErrRaggedRows = errors.New("dense: rows have unequal length")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, Apply).
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("dense: nil matrix")

	// ErrSingular is returned when a solve (or inverse) is requested against an
	// LU factorization whose U has an exactly zero diagonal entry. Callers who
	// want to avoid this path should check IsNonsingular first.
	ErrSingular = errors.New("dense: singular matrix")

	// ErrRankDeficient is returned when a least-squares solve is requested
	// against a QR factorization with a zero entry on R's diagonal. Distinct
	// from ErrSingular so callers can tell the two factorization failures apart.
	ErrRankDeficient = errors.New("dense: rank deficient matrix")

	// ErrTallRequired signals that a factorization requiring rows >= cols
	// (QR, and the QR-based pseudo-inverse) received a wide matrix.
	ErrTallRequired = errors.New("dense: rows >= cols required")
)
