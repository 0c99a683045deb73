// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualmat/matrix"
)

// Tolerances used across kernel tests.
const (
	mulTol = 1e-9
	invTol = 1e-6
)

// MustRows BUILDS a float64 matrix from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows")

	return m
}

// MustNew ALLOCATES an r×c matrix filled with v or fails the test.
func MustNew[T matrix.Number](t testing.TB, r, c int, v T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(r, c, v)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewIdentity[float64](n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet[T matrix.Number](t testing.TB, m *matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RandomDense BUILDS an r×c matrix with values in [-1, 1) from a fixed seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewFromRowMajor(r, c, data)
	require.NoError(t, err, "NewFromRowMajor(%d,%d)", r, c)

	return m
}

// RequireLayouts ASSERTS the dual-layout invariant on m.
func RequireLayouts[T matrix.Number](t testing.TB, m *matrix.Matrix[T]) {
	t.Helper()
	require.True(t, matrix.LayoutsAgree_TestOnly(m), "row-major and column-major buffers diverged")
}

// CompareExact ASSERTS that m equals want element-wise.
func CompareExact[T matrix.Number](t testing.TB, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols at row %d", i)
		for j, w := range row {
			require.Equal(t, w, MustAt(t, m, i, j), "at [%d,%d]", i, j)
		}
	}
}

// RequireClose ASSERTS AllClose(a, b, 0, atol).
func RequireClose(t testing.TB, want, got *matrix.Matrix[float64], atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "want\n%sgot\n%s", want, got)
}
