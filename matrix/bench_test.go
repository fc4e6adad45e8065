// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the multiplication kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mmult/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(n, n, 1337)
			B := randDense(n, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkMulNaiveOrder runs the i→j→k order through the public accessors
// for comparison with BenchmarkMul.
func BenchmarkMulNaiveOrder(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(n, n, 1337)
			B := randDense(n, n, 4242)
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				out := matrix.NewDense[float64](n, n)
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						var sum float64
						for k := 0; k < n; k++ {
							sum += A.At(i, k) * B.At(k, j)
						}
						out.Set(i, j, sum)
					}
				}
				sinkM = out
			}
		})
	}
}

func BenchmarkMulParallel(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(n, n, 11)
			B := randDense(n, n, 22)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MulParallel(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(n, n+8, 7) // rectangular
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.T()
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	A := randDense(256, 256, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = A.At(i&255, (i>>8)&255)
	}
}
