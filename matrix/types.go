// SPDX-License-Identifier: MIT

// Package matrix: element type constraints.
// Matrix[T] is generic over signed integers and floats; operations that need
// division by a non-integral determinant (Invert3x3, Determinant3x3) narrow to Float.
package matrix

// SignedInts lists the signed integer element types.
// Unsigned types are excluded because cofactor signs need unary negation.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float lists the floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is the element constraint of Matrix: + - * /, unary minus and a zero value.
type Number interface {
	SignedInts | Float
}
