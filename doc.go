// Package dualmat is a small dense-matrix library whose matrices keep every
// element twice: once in row-major order and once in column-major order.
//
// 🚀 What is dualmat?
//
//	A generic, pure-Go matrix type that brings together:
//		• Dual storage: row i and column j are both contiguous slices
//		• Multiplication: an indexed MulNaive and a view-based MulFast
//		• Transpose in O(n) by buffer swap, or O(1) in place
//		• 3×3 determinant and closed-form inverse with a singularity threshold
//		• JSON encoding and gonum interoperability
//
// ✨ Why the second layout?
//
//   - MulFast reads rows of A and columns of B with unit stride
//   - Both kernels sum in the same order, so results are bit-identical
//   - The price is doubled memory and a dual write on every Set
//
// Under the hood:
//
//	matrix/        Matrix[T], kernels, validators, JSON and gonum adapters
//	stopwatch/     millisecond wall-clock timing
//	cmd/matbench/  CLI comparing MulNaive and MulFast
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}})
//	b, _ := matrix.NewFromRows([][]float64{{3}, {4}})
//	c, _ := matrix.MulFast(a, b) // [11]
//
//	go get github.com/katalvlaran/dualmat
package dualmat
