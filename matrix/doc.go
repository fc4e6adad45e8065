// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major matrix container with
// cache-friendly multiplication.
//
// The package provides:
//
//   - Dense[T]: a fixed-shape, mutable 2D container over a numeric scalar T,
//     backed by one flat slice where element (i, j) lives at i*cols + j.
//   - Mul / MulAssign: matrix product with the (i, k, j) loop order, so the
//     inner loop walks one row of the right operand and one row of the result
//     sequentially instead of striding down a column.
//   - MulParallel: the same kernel with output rows split across a bounded
//     worker group.
//   - Add / AddAssign / T: shape-checked addition and transpose.
//   - NearlyEqual / Close: epsilon comparison used by cross-checks.
//
// Element access comes in two flavours. At, Set and Ref are the fast path and
// perform no bounds validation: indices outside the matrix are undefined by
// contract. AtChecked and SetChecked validate coordinates and return
// ErrOutOfRange; callers opt in to the safety explicitly.
//
// Assign copies a flat sequence in row-major order and silently stops at
// whichever of the two lengths is shorter. It never fails.
//
// Blocking/tiling, loop unrolling and pre-transposing the right operand were
// all measured against the (i, k, j) order and gave no improvement, so the
// kernel uses none of them.
package matrix
