// SPDX-License-Identifier: MIT

// Package matrix - dual-layout storage & safe accessors.
//
// Purpose:
//   - Keep every matrix twice: a row-major buffer (offset i*cols + j) and a
//     column-major buffer (offset j*rows + i), so that both a row and a column
//     are contiguous slices.
//   - Guarantee safety at the public surface: At/Set/RowView/ColView return
//     errors instead of panicking.
//   - Route every mutation through one primitive (set) that writes both buffers.
//
// Invariant:
//   - rowMajor[i*c+j] == colMajor[j*r+i] for all 0 <= i < r, 0 <= j < c.
//   - len(rowMajor) == len(colMajor) == r*c.
//
// Complexity quicksheet:
//   - New/NewFromRowMajor: O(r*c); At/Set/RowView/ColView: O(1);
//     Clone/Transpose: O(r*c) copy; TransposeInPlace: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRowView = "RowView"
	ctxColView = "ColView"
	ctxNew     = "New"
	ctxNewRM   = "NewFromRowMajor"
	ctxNewRows = "NewFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Format: "Matrix.<method>(row,col): %w"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense r×c matrix stored in both row-major and column-major order.
//   - r,c hold dimensions (rows, cols); zero extents are legal.
//   - rowMajor holds element (i,j) at i*c + j.
//   - colMajor holds element (i,j) at j*r + i.
//
// The zero value is an empty 0×0 matrix. A Matrix is not safe for concurrent
// mutation; concurrent reads are fine.
type Matrix[T Number] struct {
	r, c     int // row and column counts (>= 0)
	rowMajor []T // contiguous rows, len == r*c
	colMajor []T // contiguous columns, len == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// alloc returns an r×c matrix with zeroed buffers. Callers validate the shape.
func alloc[T Number](rows, cols int) *Matrix[T] {
	n := rows * cols

	return &Matrix[T]{
		r:        rows,
		c:        cols,
		rowMajor: make([]T, n),
		colMajor: make([]T, n),
	}
}

// New creates a rows×cols matrix with every cell set to fill.
// Implementation:
//   - Stage 1: ValidateShape; negative or overflowing extents are ErrInvalidDimensions.
//   - Stage 2: allocate both buffers.
//   - Stage 3: write fill through the dual-write primitive (skipped for +0,
//     which make() already provides in both layouts).
//
// Errors:
//   - ErrInvalidDimensions on negative or overflowing extents.
//
// Complexity:
//   - Time O(r*c), Space O(2*r*c).
func New[T Number](rows, cols int, fill T) (*Matrix[T], error) {
	// Validate shape before any allocation
	if err := ValidateShape[T](rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	m := alloc[T](rows, cols)
	if isPositiveZero(fill) {
		return m, nil // both buffers are already zeroed
	}

	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.set(i, j, fill) // dual write keeps layouts in lockstep
		}
	}

	return m, nil
}

// isPositiveZero reports whether v is the zero value make() produces.
// Negative zero is excluded so that New(r, c, -0.0) stores -0.
func isPositiveZero[T Number](v T) bool {
	return v == 0 && !math.Signbit(float64(v))
}

// NewFromRowMajor creates a rows×cols matrix from a flat row-major slice.
// The first rows*cols elements of data are copied by value into both layouts;
// the returned matrix never aliases data.
//
// Errors:
//   - ErrInvalidDimensions on negative or overflowing extents.
//   - ErrOutOfRange when len(data) < rows*cols (nothing is allocated).
//
// Complexity:
//   - Time O(r*c), Space O(2*r*c).
func NewFromRowMajor[T Number](rows, cols int, data []T) (*Matrix[T], error) {
	// Validate shape first: rows*cols below is only safe once it cannot overflow
	if err := ValidateShape[T](rows, cols); err != nil {
		return nil, denseErrorf(ctxNewRM, rows, cols, err)
	}
	if need := rows * cols; len(data) < need {
		return nil, fmt.Errorf("Matrix.%s: data length %d < %d: %w", ctxNewRM, len(data), need, ErrOutOfRange)
	}

	m := alloc[T](rows, cols)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols // start of row i in data
		for j = 0; j < cols; j++ {
			m.set(i, j, data[base+j])
		}
	}

	return m, nil
}

// NewFromRows creates a matrix from a slice of equally sized rows.
// An empty or nil input yields a 0×0 matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows have different lengths.
func NewFromRows[T Number](rows [][]T) (*Matrix[T], error) {
	// Column count comes from the first row; every other row must match it
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("Matrix.%s: at row %d, want %d cols, got %d: %w",
				ctxNewRows, i, c, len(row), ErrInvalidDimensions)
		}
	}
	if err := ValidateShape[T](r, c); err != nil {
		return nil, denseErrorf(ctxNewRows, r, c, err)
	}

	m := alloc[T](r, c)
	for i, row := range rows {
		for j, v := range row {
			m.set(i, j, v) // copy by value; the result never aliases rows
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Size returns the number of logical elements, rows*cols.
// Each layout buffer has exactly this length.
func (m *Matrix[T]) Size() int { return m.r * m.c }

// inBounds reports whether (row, col) addresses a cell.
func (m *Matrix[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// at reads (row, col) from the row-major buffer without bounds checks.
func (m *Matrix[T]) at(row, col int) T {
	return m.rowMajor[row*m.c+col]
}

// set is the single mutation primitive: it writes v into both layouts.
// Callers must have validated (row, col).
func (m *Matrix[T]) set(row, col int, v T) {
	m.rowMajor[row*m.c+col] = v
	m.colMajor[col*m.r+row] = v
}

// At returns the value at (row, col) or ErrOutOfRange.
// The read is served from the row-major buffer.
func (m *Matrix[T]) At(row, col int) (T, error) {
	if !m.inBounds(row, col) {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.at(row, col), nil
}

// Set stores v at (row, col) in both layouts or returns ErrOutOfRange.
// On error neither buffer is touched.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.set(row, col, v) // both layouts or none

	return nil
}

// RowView returns row `row` as a contiguous slice of Cols() elements.
// MAIN DESCRIPTION:
//   - Zero-copy window into the row-major buffer; capacity is clipped to the row.
//
// Behavior highlights:
//   - Read-only by contract. Writing through the slice updates only the
//     row-major copy and breaks the dual-layout invariant; use Set instead.
//   - The view stays valid while the owner is alive. TransposeInPlace relabels
//     the buffers, so a view taken before it no longer describes a row.
//
// Errors:
//   - ErrOutOfRange when row is outside [0, Rows()).
func (m *Matrix[T]) RowView(row int) ([]T, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf(ctxRowView, row, 0, ErrOutOfRange)
	}

	return m.rowSlice(row), nil
}

// ColView returns column `col` as a contiguous slice of Rows() elements.
// Same contract as RowView, backed by the column-major buffer.
//
// Errors:
//   - ErrOutOfRange when col is outside [0, Cols()).
func (m *Matrix[T]) ColView(col int) ([]T, error) {
	if col < 0 || col >= m.c {
		return nil, denseErrorf(ctxColView, 0, col, ErrOutOfRange)
	}

	return m.colSlice(col), nil
}

// rowSlice returns row `row` of the row-major buffer without bounds checks.
func (m *Matrix[T]) rowSlice(row int) []T {
	lo := row * m.c // rows are c apart
	hi := lo + m.c

	return m.rowMajor[lo:hi:hi] // clip capacity so append cannot spill into the next row
}

// colSlice returns column `col` of the column-major buffer without bounds checks.
func (m *Matrix[T]) colSlice(col int) []T {
	lo := col * m.r // columns are r apart
	hi := lo + m.r

	return m.colMajor[lo:hi:hi]
}

// Clone returns a deep copy: both buffers are duplicated, nothing is shared.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	rm := make([]T, len(m.rowMajor))
	cm := make([]T, len(m.colMajor))
	copy(rm, m.rowMajor)
	copy(cm, m.colMajor) // copied, not rebuilt: the layouts already agree

	return &Matrix[T]{r: m.r, c: m.c, rowMajor: rm, colMajor: cm}
}

// Transpose returns a new matrix equal to mᵀ.
// MAIN DESCRIPTION:
//   - Duplicate both buffers, then swap which one is labeled row-major and
//     swap the extents. No element is permuted.
//
// Behavior highlights:
//   - Valid because the row-major layout of an r×c matrix is, element for
//     element, the column-major layout of its c×r transpose (and vice versa).
//     Any change to the storage format must preserve this equivalence.
//   - The result owns fresh buffers; m is untouched.
//
// Complexity:
//   - Time O(r*c) for the duplication, O(1) for the transpose itself.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := m.Clone()
	t.TransposeInPlace()

	return t
}

// TransposeInPlace turns m into mᵀ by swapping buffer labels and extents.
// Complexity: O(1). Views obtained before the call are invalidated.
func (m *Matrix[T]) TransposeInPlace() {
	// Relabel the buffers and let the extents follow; no element moves.
	m.r, m.c = m.c, m.r
	m.rowMajor, m.colMajor = m.colMajor, m.rowMajor
}

// Fill sets every cell to v through the dual-write primitive.
func (m *Matrix[T]) Fill(v T) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.set(i, j, v)
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Iteration stops early when f returns false.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.rowMajor[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in row-major order.
// Every write goes through the dual-write primitive, so both layouts stay in
// lockstep after each cell.
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.set(i, j, f(i, j, m.at(i, j)))
		}
	}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.rowMajor[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
