// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison of two matrices (exact and tolerance-based).
//   - A private layout self-check used by tests to prove the dual-layout invariant.
//
// Determinism & Performance:
//   - Flat loops over the row-major buffers (identical shapes share offsets).
//   - No allocations; early exit on the first violation.

package matrix

import "math"

const (
	opEqual    = "Equal"
	opAllClose = "AllClose"
)

// Equal reports whether a and b have the same shape and identical elements.
// Errors: ErrNilMatrix.
func Equal[T Number](a, b *Matrix[T]) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf(opEqual, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	for idx, v := range a.rowMajor {
		if v != b.rowMajor[idx] {
			return false, nil
		}
	}

	return true, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - NaN is never close to anything.
//
// Errors:
//   - ErrInvalidTolerance, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T Number](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range a.rowMajor {
		av, bv = float64(a.rowMajor[idx]), float64(b.rowMajor[idx])
		if av == bv {
			continue // covers equal infinities
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}

// EqualApprox is AllClose with rtol=0 and atol=DefaultTolerance.
func EqualApprox[T Number](a, b *Matrix[T]) (bool, error) {
	return AllClose(a, b, 0, DefaultTolerance)
}

// layoutsAgree reports whether the column-major buffer mirrors the row-major one.
func (m *Matrix[T]) layoutsAgree() bool {
	if len(m.rowMajor) != m.r*m.c || len(m.colMajor) != m.r*m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.rowMajor[i*m.c+j] != m.colMajor[j*m.r+i] {
				return false
			}
		}
	}

	return true
}
