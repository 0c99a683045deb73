// Package matrix offers a dense, generic matrix that keeps its elements in two
// layouts at once.
//
// The matrix package provides:
//
//   - Matrix[T] with a row-major and a column-major buffer kept in lockstep by a
//     single dual-write primitive; every row and every column is a contiguous slice.
//   - MulNaive (indexed access) and MulFast (contiguous row × column views) with
//     identical, deterministic summation order.
//   - Transpose by buffer relabeling, Invert3x3 / Determinant3x3 by cofactor expansion.
//   - JSON encoding and zero-copy interop with gonum's mat package.
//
// Doubling the storage buys unit-stride access on both operands of a product.
// Matrices are not safe for concurrent mutation; concurrent reads are.
//
// See the examples in this package for usage patterns.
package matrix
