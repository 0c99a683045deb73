// SPDX-License-Identifier: MIT
// Package matrix: gonum interoperability.
//
// Purpose:
//   - Expose a Matrix to gonum's mat package without copying (AsGonum).
//   - Convert to and from *mat.Dense for callers that need gonum kernels
//     (factorizations, norms) outside the scope of this package.
//
// Behavior highlights:
//   - The adapter reads the row-major buffer directly; its T() is served by the
//     column-major buffer, so neither orientation copies or strides.
//   - The adapter is read-only: gonum never mutates a plain mat.Matrix.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// gonumView adapts a Matrix (or its transpose) to mat.Matrix.
type gonumView[T Number] struct {
	m          *Matrix[T]
	transposed bool
}

var _ mat.Matrix = gonumView[float64]{}

// AsGonum returns a zero-copy, read-only mat.Matrix over m.
// Mutations of m through Set are visible through the view; TransposeInPlace
// swaps its shape as well.
func AsGonum[T Number](m *Matrix[T]) (mat.Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return gonumView[T]{m: m}, nil
}

// Dims returns the gonum-facing shape.
func (v gonumView[T]) Dims() (r, c int) {
	if v.transposed {
		return v.m.c, v.m.r
	}

	return v.m.r, v.m.c
}

// At follows gonum's contract and panics with mat.ErrRowAccess/ErrColAccess
// on out-of-range indices.
func (v gonumView[T]) At(i, j int) float64 {
	r, c := v.Dims()
	if i < 0 || i >= r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= c {
		panic(mat.ErrColAccess)
	}
	if v.transposed {
		// (i,j) of mᵀ is (j,i) of m: column j of m is contiguous in colMajor.
		return float64(v.m.colMajor[i*v.m.r+j])
	}

	return float64(v.m.rowMajor[i*v.m.c+j])
}

// T returns the transposed view; no data is copied.
func (v gonumView[T]) T() mat.Matrix {
	return gonumView[T]{m: v.m, transposed: !v.transposed}
}

// ToGonumDense copies m into a new *mat.Dense.
// gonum rejects empty matrices, so 0×N and N×0 inputs return ErrInvalidDimensions.
func ToGonumDense[T Number](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("ToGonumDense: empty %dx%d: %w", m.r, m.c, ErrInvalidDimensions)
	}
	data := make([]float64, len(m.rowMajor))
	for idx, v := range m.rowMajor {
		data[idx] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any mat.Matrix into a new Matrix[T].
// Values are converted with T(v); integer element types truncate.
func FromGonum[T Number](src mat.Matrix) (*Matrix[T], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewZeros[T](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.set(i, j, T(src.At(i, j)))
		}
	}

	return out, nil
}
