// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private invariants and options.
//
// Purpose:
//   - Expose the layout self-check and the resolved options to matrix_test ONLY.
//   - The file ends in _test.go, so none of this reaches production builds.

// PanicEpsilonInvalid_TestOnly exports the WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// LayoutsAgree_TestOnly reports whether m's column-major buffer mirrors its row-major buffer.
func LayoutsAgree_TestOnly[T Number](m *Matrix[T]) bool { return m.layoutsAgree() }

// Buffers_TestOnly returns the raw (rowMajor, colMajor) buffers without copying.
func Buffers_TestOnly[T Number](m *Matrix[T]) (rowMajor, colMajor []T) {
	return m.rowMajor, m.colMajor
}

// Epsilon_TestOnly returns the singularity epsilon resolved from opts.
func Epsilon_TestOnly(opts ...Option) float64 { return gatherOptions(opts...).eps }
