// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
	"unsafe"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows×cols is a storable shape for element type T.
// Both extents must be non-negative, and neither rows*cols nor its byte size
// may overflow int.
// Errors: ErrInvalidDimensions.
func ValidateShape[T Number](rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape: %dx%d", rows, cols), ErrInvalidDimensions)
	}
	if rows == 0 || cols == 0 {
		return nil // empty shapes are legal and allocate nothing
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	// check element count first so the byte product below cannot wrap
	if rows > math.MaxInt/cols || rows*cols > math.MaxInt/elem {
		return validatorErrorf(fmt.Sprintf("ValidateShape: %dx%d overflows", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures the matrix pointer is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows() == Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// Validate3x3 ensures m is non-nil and exactly 3×3.
// Errors: ErrNilMatrix, ErrNotThreeByThree (which also matches ErrDimensionMismatch).
func Validate3x3[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("Validate3x3", ErrNilMatrix)
	}
	if m.r != 3 || m.c != 3 {
		return validatorErrorf(fmt.Sprintf("Validate3x3: got %dx%d", m.r, m.c), ErrNotThreeByThree)
	}

	return nil
}
