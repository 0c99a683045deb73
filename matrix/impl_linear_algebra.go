// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication and closed-form inversion kernels
// over the dual-layout Matrix.
//
// Purpose:
//   - MulNaive and MulFast compute the same product C = A·B; they differ only
//     in how operands are read (indexed accessor vs contiguous row/column views).
//   - Determinant3x3 / Invert3x3 implement first-row cofactor expansion and the
//     adjugate formula for 3×3 matrices.
//
// Determinism:
//   - Every output cell starts from the zero value and accumulates t = 0..k-1
//     in increasing order, in both kernels. For float element types this makes
//     MulNaive and MulFast bit-for-bit identical.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMulNaive    = "MulNaive"
	opMulFast     = "MulFast"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant3x3"
	opInvert3x3   = "Invert3x3"
	opInverse3x3  = "Inverse3x3"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulNaive computes C = A·B reading both operands through the indexed accessor.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) before any allocation.
//   - Stage 2: for each (i,j), sum a.At(i,t) * b.At(t,j) for t = 0..k-1.
//   - Stage 3: store the sum with the dual-write primitive.
//
// Behavior highlights:
//   - Every read pays the index arithmetic and bounds check of At; B is walked
//     with a stride of B.Cols() through its row-major buffer.
//   - Operands are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func MulNaive[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}

	// Allocate result; the shape is already known to be storable
	rows, inner, cols := a.r, a.c, b.c
	res := alloc[T](rows, cols)

	var (
		i, j, t int // loop iterators
		av, bv  T
		sum     T
		err     error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0 // every cell starts from zero
			for t = 0; t < inner; t++ { // fixed t order keeps both kernels bit-identical
				if av, err = a.At(i, t); err != nil {
					return nil, matrixErrorf(opMulNaive, err)
				}
				if bv, err = b.At(t, j); err != nil {
					return nil, matrixErrorf(opMulNaive, err)
				}
				sum += av * bv
			}
			res.set(i, j, sum)
		}
	}

	return res, nil
}

// MulFast computes C = A·B from contiguous views.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) before any allocation.
//   - Stage 2: for each (i,j), take row i of A from the row-major buffer and
//     column j of B from the column-major buffer (O(1) each, no copy).
//   - Stage 3: walk both slices sequentially, t = 0..k-1, and store the sum
//     with the dual-write primitive.
//
// Behavior highlights:
//   - Both operands are read with unit stride; this is what the second
//     layout buys.
//   - Same summation order as MulNaive, so results are identical.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func MulFast[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulFast, err)
	}

	rows, cols := a.r, b.c
	res := alloc[T](rows, cols)

	var (
		i, j   int
		rowVec []T
		colVec []T
		sum    T
	)
	for i = 0; i < rows; i++ {
		rowVec = a.rowSlice(i) // row i of A, contiguous in the row-major buffer
		for j = 0; j < cols; j++ {
			colVec = b.colSlice(j) // column j of B, contiguous in the column-major buffer
			colVec = colVec[:len(rowVec)] // hoists the bounds check out of the loop
			sum = 0
			for t, av := range rowVec { // same t order as MulNaive
				sum += av * colVec[t]
			}
			res.set(i, j, sum)
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix (see (*Matrix).Transpose).
// Errors: ErrNilMatrix.
func Transpose[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// det3 expands along the first row:
//
//	m00(m11m22 − m12m21) − m01(m10m22 − m12m20) + m02(m10m21 − m11m20).
func det3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) float64 {
	return m00*(m11*m22-m12*m21) -
		m01*(m10*m22-m12*m20) +
		m02*(m10*m21-m11*m20)
}

// entries3 loads the nine cells of a validated 3×3 matrix as float64 in row-major order.
func entries3[T Float](m *Matrix[T]) (e [9]float64) {
	for k, v := range m.rowMajor[:9] {
		e[k] = float64(v)
	}

	return e
}

// Determinant3x3 returns det(m) by cofactor expansion along the first row.
// Intermediate products are evaluated in float64.
//
// Errors:
//   - ErrNilMatrix, ErrNotThreeByThree.
func Determinant3x3[T Float](m *Matrix[T]) (T, error) {
	if err := Validate3x3(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	e := entries3(m)

	return T(det3(e[0], e[1], e[2], e[3], e[4], e[5], e[6], e[7], e[8])), nil
}

// Invert3x3 computes m⁻¹ with the adjugate formula.
// MAIN DESCRIPTION:
//   - det is computed by first-row cofactor expansion; the matrix is singular
//     when |det| < eps (DefaultSingularEpsilon unless WithEpsilon is given).
//   - Each output cell is a signed 2×2 minor of mᵀ divided by det.
//
// Returns:
//   - (inv, true, nil) when m is invertible.
//   - (nil, false, nil) when m is singular. No division is attempted, so a
//     near-zero det never produces Inf/NaN cells.
//   - (nil, false, err) on contract violations.
//
// Errors:
//   - ErrNilMatrix, ErrNotThreeByThree.
//
// Complexity:
//   - Time O(1), Space O(1) beyond the 3×3 result and its transposed scratch copy.
func Invert3x3[T Float](m *Matrix[T], opts ...Option) (*Matrix[T], bool, error) {
	if err := Validate3x3(m); err != nil {
		return nil, false, matrixErrorf(opInvert3x3, err)
	}
	o := gatherOptions(opts...)

	// Singularity check happens before any division
	e := entries3(m)
	det := det3(e[0], e[1], e[2], e[3], e[4], e[5], e[6], e[7], e[8])
	if math.Abs(det) < o.eps {
		return nil, false, nil // |det| == eps still counts as invertible
	}

	// The cofactor table reads the transpose: tij == m[j][i].
	t := entries3(m.Transpose())
	t00, t01, t02 := t[0], t[1], t[2]
	t10, t11, t12 := t[3], t[4], t[5]
	t20, t21, t22 := t[6], t[7], t[8]

	// Negative cofactors are written as (y - x) rather than -(x - y) so that
	// zero minors come out as +0, not -0.
	inv := alloc[T](3, 3)
	inv.set(0, 0, T((t11*t22-t21*t12)/det))
	inv.set(0, 1, T((t20*t12-t10*t22)/det))
	inv.set(0, 2, T((t10*t21-t11*t20)/det))

	inv.set(1, 0, T((t02*t21-t01*t22)/det))
	inv.set(1, 1, T((t00*t22-t02*t20)/det))
	inv.set(1, 2, T((t20*t01-t00*t21)/det))

	inv.set(2, 0, T((t01*t12-t11*t02)/det))
	inv.set(2, 1, T((t10*t02-t00*t12)/det))
	inv.set(2, 2, T((t00*t11-t10*t01)/det))

	return inv, true, nil
}
