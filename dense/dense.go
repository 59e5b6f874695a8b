// SPDX-License-Identifier: MIT

// Package dense - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Submatrix, SubmatrixRows).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Submatrix: O(r'*c').

package dense

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"        // method tag used in error wrappers
	ctxSet    = "Set"       // method tag used in error wrappers
	ctxApply  = "Apply"     // method tag used in error wrappers
	ctxSub    = "Submatrix" // tag for range-based extraction
	ctxSubRow = "SubmatrixRows"
	ctxView   = "View" // tag for no-copy windows
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps stable, human-friendly messages and preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default
//     from options.go).
//
// A Dense exclusively owns its buffer; in-place operators (inplace.go) replace
// the owned buffer wholesale rather than aliasing an operand's storage.
type Dense struct {
	r, c           int       // row and column counts (>=1 for public constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer; resolve numeric policy from opts.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFromRows builds a Dense from a 2-D row-major slice, copying the data.
//
// Implementation:
//   - Stage 1: ValidateRectangular (non-empty, all rows equal length).
//   - Stage 2: allocate and copy row by row; enforce the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrRaggedRows (uneven rows),
//     ErrNaNInf (non-finite value under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, err
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators (deterministic order)
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = rows[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Kept unexported so public methods (At/Set) wrap the sentinel with
// coordinates and method name at the detection site.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with context.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the copy do not affect the original.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// clone is the concrete-typed twin of Clone for internal callers that need
// direct buffer access without a type assertion.
func (m *Dense) clone() *Dense {
	return m.Clone().(*Dense)
}

// String renders a fixed-width, tab-separated grid for diagnostics with a
// shape header line. The element verb is DefaultPrintVerb ("% 10.4f"), kept
// stable for snapshot-style tests. Not for hot paths.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense %dx%d\n", m.r, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			if j > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprintf(&b, DefaultPrintVerb, m.data[base+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Submatrix materializes a copy of the half-open window
// [r0:r1) × [c0:c1) as an independent Dense.
//
// Implementation:
//   - Stage 1: validate window bounds and non-emptiness.
//   - Stage 2: allocate result and copy with direct offset math.
//
// Errors:
//   - ErrOutOfRange (window escapes the matrix),
//     ErrInvalidDimensions (empty window).
//
// Complexity:
//   - Time O((r1-r0)*(c1-c0)), Space same.
func (m *Dense) Submatrix(r0, r1, c0, c1 int) (*Dense, error) {
	if r0 < 0 || r1 > m.r || c0 < 0 || c1 > m.c {
		return nil, fmt.Errorf("Dense.%s(%d:%d,%d:%d): %w", ctxSub, r0, r1, c0, c1, ErrOutOfRange)
	}
	if r1 <= r0 || c1 <= c0 {
		return nil, fmt.Errorf("Dense.%s(%d:%d,%d:%d): %w", ctxSub, r0, r1, c0, c1, ErrInvalidDimensions)
	}
	res, err := NewDense(r1-r0, c1-c0)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	// Row-block copies; source rows are contiguous.
	var i int
	for i = r0; i < r1; i++ {
		copy(res.data[(i-r0)*res.c:(i-r0+1)*res.c], m.data[i*m.c+c0:i*m.c+c1])
	}

	return res, nil
}

// SubmatrixRows materializes a copy selecting explicit row indices (duplicates
// and permutations allowed) and the half-open column range [c0:c1). This is
// the extraction shape the pivoted LU solve needs: B(pivot, :).
//
// Errors:
//   - ErrOutOfRange (a row index or the column range escapes the matrix),
//     ErrInvalidDimensions (no rows selected or empty column range).
//
// Complexity:
//   - Time O(len(rows)*(c1-c0)), Space same.
func (m *Dense) SubmatrixRows(rows []int, c0, c1 int) (*Dense, error) {
	if c0 < 0 || c1 > m.c {
		return nil, fmt.Errorf("Dense.%s(%d:%d): %w", ctxSubRow, c0, c1, ErrOutOfRange)
	}
	if len(rows) == 0 || c1 <= c0 {
		return nil, fmt.Errorf("Dense.%s(%d:%d): %w", ctxSubRow, c0, c1, ErrInvalidDimensions)
	}
	res, err := NewDense(len(rows), c1-c0)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, ri int
	for i = 0; i < len(rows); i++ {
		ri = rows[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxSubRow, ri, ErrOutOfRange)
		}
		copy(res.data[i*res.c:(i+1)*res.c], m.data[ri*m.c+c0:ri*m.c+c1])
	}

	return res, nil
}

// view is a no-copy window into a parent Dense. Reads and writes go straight
// through to the parent's buffer; the parent's numeric policy applies.
type view struct {
	parent *Dense
	r0, c0 int
	r, c   int
}

// Rows returns the window's row count.
func (w *view) Rows() int { return w.r }

// Cols returns the window's column count.
func (w *view) Cols() int { return w.c }

// At reads (i,j) relative to the window origin.
func (w *view) At(i, j int) (float64, error) {
	if i < 0 || i >= w.r || j < 0 || j >= w.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return w.parent.At(w.r0+i, w.c0+j)
}

// Set writes (i,j) relative to the window origin, mutating the parent.
func (w *view) Set(i, j int, v float64) error {
	if i < 0 || i >= w.r || j < 0 || j >= w.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}

	return w.parent.Set(w.r0+i, w.c0+j, v)
}

// Clone detaches the window into an independent Dense.
func (w *view) Clone() Matrix {
	d, _ := w.parent.Submatrix(w.r0, w.r0+w.r, w.c0, w.c0+w.c) // bounds held by construction

	return d
}

// View returns a no-copy window over [r0:r1) × [c0:c1). The window reads and
// writes the receiver's buffer directly; use Submatrix for a detached copy.
//
// Errors:
//   - ErrOutOfRange (window escapes the matrix),
//     ErrInvalidDimensions (empty window).
//
// Complexity: O(1).
func (m *Dense) View(r0, r1, c0, c1 int) (Matrix, error) {
	if r0 < 0 || r1 > m.r || c0 < 0 || c1 > m.c {
		return nil, fmt.Errorf("Dense.%s(%d:%d,%d:%d): %w", ctxView, r0, r1, c0, c1, ErrOutOfRange)
	}
	if r1 <= r0 || c1 <= c0 {
		return nil, fmt.Errorf("Dense.%s(%d:%d,%d:%d): %w", ctxView, r0, r1, c0, c1, ErrInvalidDimensions)
	}

	return &view{parent: m, r0: r0, c0: c0, r: r1 - r0, c: c1 - c0}, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false. No allocations;
// deterministic i→j order.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced non-finite (if policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
