// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the multiplication kernels,
// transpose and 3×3 inversion, using deterministic random fill.

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/pkg/profile"

	"github.com/katalvlaran/dualmat/matrix"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM  *matrix.Matrix[float64]
	sinkOK bool
	sinkF  float64
)

// benchMulFn is the shared signature of MulNaive and MulFast.
type benchMulFn func(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error)

func benchMul(b *testing.B, mul benchMulFn) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 1337)
			B := RandomDense(b, n, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulNaive(b *testing.B) { benchMul(b, matrix.MulNaive[float64]) }

func BenchmarkMulFast(b *testing.B) { benchMul(b, matrix.MulFast[float64]) }

// BenchmarkMulFastProfiled writes a CPU profile of the largest MulFast case
// into the benchmark's temp dir.
func BenchmarkMulFastProfiled(b *testing.B) {
	n := benchSizes[len(benchSizes)-1]
	A := RandomDense(b, n, n, 7)
	B := RandomDense(b, n, n, 8)

	defer profile.Start(profile.CPUProfile, profile.ProfilePath(b.TempDir()), profile.Quiet).Stop()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.MulFast(A, B)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkTranspose(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 99)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Transpose()
			}
		})
	}
}

func BenchmarkTransposeInPlace(b *testing.B) {
	A := RandomDense(b, 256, 128, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		A.TransposeInPlace()
	}
	sinkM = A
}

func BenchmarkClone(b *testing.B) {
	A := RandomDense(b, 256, 256, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = A.Clone()
	}
}

func BenchmarkInvert3x3(b *testing.B) {
	A := MustRows(b, [][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, ok, err := matrix.Invert3x3(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkM, sinkOK = inv, ok
	}
}

func BenchmarkDeterminant3x3(b *testing.B) {
	A := MustRows(b, [][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, err := matrix.Determinant3x3(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = d
	}
}
