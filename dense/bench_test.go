// SPDX-License-Identifier: MIT
// Package dense_test provides benchmarks for the arithmetic kernels and the
// decompositions, using deterministic random fill.
package dense_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/dense"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM dense.Matrix
	sinkD *dense.Dense
	sinkF float64
	sinkI int
)

// benchDense allocates an n×n matrix filled with seeded random values.
func benchDense(b *testing.B, n int, seed int64) *dense.Dense {
	b.Helper()
	m, err := dense.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, 2*rng.Float64()-1); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 1337)
			y := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := dense.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 11)
			y := benchDense(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := dense.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 33)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := dense.Transpose(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkLUSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 55)
			rhs := benchDense(b, n, 66)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				lu, err := dense.NewLU(x)
				if err != nil {
					b.Fatal(err)
				}
				sol, err := lu.Solve(rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = sol
			}
		})
	}
}

func BenchmarkQR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 77)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				qr, err := dense.NewQR(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = qr.R()
			}
		})
	}
}

func BenchmarkSVD(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				svd, err := dense.NewSVD(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = svd.Norm2()
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 101)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := dense.Rank(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkI = r
			}
		})
	}
}
