// Package mmult is a small, cache-friendly dense matrix library with a
// driver that checks and times it against gonum.
//
// 🚀 What is mmult?
//
//	A generic, row-major Dense[T] with:
//		• Construction from dimensions, a fill value or literal rows
//		• Fast unchecked access plus opt-in bounds-checked accessors
//		• Multiplication in (i, k, j) order, serial or over row bands
//		• Dimension-checked Add/Sub/Hadamard, Scale and Transpose
//		• Approximate comparison with a configurable epsilon
//
// ✨ Why (i, k, j)?
//
//   - The inner loop walks one row of B and one row of C, both contiguous
//   - lhs[i,k] is hoisted out of the inner loop
//   - No blocking, unrolling or transposed copy: each was measured slower
//
// Under the hood:
//
//	matrix/     Dense[T], kernels, options, comparison
//	bridge/     shape-checked copies to and from gonum's mat.Dense
//	snapshot/   memory-mapped binary save/load of float64 matrices
//	bench/      demo, gonum cross-check, perf loop, Prometheus metrics
//	config/     flags, MMULT_* env and YAML resolved through viper
//	logging/    zap logger construction
//	cmd/mmult/  the cobra CLI
//
// Quick example:
//
//	a := matrix.NewDense[float64](2, 3)
//	a.Assign(1, 2, 3, 4, 5, 6)
//	c, err := matrix.Mul(a, a.T()) // 2x2
//
//	go install github.com/katalvlaran/mmult/cmd/mmult@latest
package mmult
