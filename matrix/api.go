// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid any logic duplication; each facade delegates to one implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors ----------

// NewZeros returns a rows×cols matrix of zero values.
// Both layout buffers come zeroed from make(); no per-cell writes happen.
func NewZeros[T Number](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols, 0)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n < 0.
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	I, err := NewZeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.set(i, i, 1)
	}

	return I, nil
}

// CloneMatrix returns a deep copy of m, or ErrNilMatrix.
func CloneMatrix[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Clone(), nil
}

// ---------- Linear algebra ----------

// Product is the default matrix product a·b; it uses the contiguous-view kernel.
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return MulFast(a, b) }

// NaiveProduct is a·b through the indexed accessor (reference kernel).
func NaiveProduct[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return MulNaive(a, b) }

// T is an alias for Transpose.
func T[E Number](m *Matrix[E]) (*Matrix[E], error) { return Transpose(m) }

// Inverse3x3 returns m⁻¹ or ErrSingular when Invert3x3 reports failure.
// Use Invert3x3 directly to branch on the flag without an error value.
func Inverse3x3[T Float](m *Matrix[T], opts ...Option) (*Matrix[T], error) {
	inv, ok, err := Invert3x3(m, opts...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, matrixErrorf(opInverse3x3, ErrSingular)
	}

	return inv, nil
}
