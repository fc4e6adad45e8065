// SPDX-License-Identifier: MIT
// Package matrix: multiplication and transpose kernels on Dense.
//
// Purpose:
//   - Hold the (i, k, j) multiplication kernel shared by Mul and MulParallel.
//   - Keep every binary operation dimension-checked through validators.go.
//
// Notes:
//   - Kernels index the flat data slices directly; the public accessors are
//     for callers, not for hot loops.

package matrix

// mulRows accumulates rows [i0, i1) of lhs×rhs into dst.
// MAIN DESCRIPTION:
//   - The (i, k, j) kernel. For a fixed output row i and inner index k the
//     scalar lhs[i,k] is hoisted and the j loop streams across row k of rhs
//     and row i of dst, both contiguous in row-major storage.
//
// Behavior highlights:
//   - dst rows [i0, i1) must be zero on entry; they are accumulated into.
//   - Touches no dst rows outside [i0, i1), so disjoint bands may run
//     concurrently.
//
// Determinism:
//   - Fixed i→k→j order; the summation order per element is k ascending,
//     identical for Mul and MulParallel.
//
// Complexity:
//   - Time O((i1-i0)*n*c), Space O(1).
//
// Notes:
//   - Swapping the j and k loops (the textbook i→j→k order) strides rhs by
//     whole rows per step and was about ten times slower on 1000x1000.
//   - No blocking, unrolling or rhs transposition: none of them beat this order.
func mulRows[T Scalar](dst, lhs, rhs *Dense[T], i0, i1 int) {
	n, c := lhs.c, rhs.c
	dstData, lhsData, rhsData := dst.data, lhs.data, rhs.data
	var (
		i, k, j          int // loop iterators
		rowL, rowR, rowD int // row base offsets
		av               T   // hoisted lhs[i,k]
	)
	for i = i0; i < i1; i++ {
		rowL = i * n // start of lhs row i
		rowD = i * c // start of dst row i
		for k = 0; k < n; k++ {
			av = lhsData[rowL+k]
			rowR = k * c // start of rhs row k
			for j = 0; j < c; j++ {
				dstData[rowD+j] += av * rhsData[rowR+j]
			}
		}
	}
}

// Mul performs matrix multiplication C = lhs × rhs.
// Implementation:
//   - Stage 1: validate lhs.Cols == rhs.Rows.
//   - Stage 2: allocate a zero result (lhs.Rows × rhs.Cols).
//   - Stage 3: run the (i, k, j) kernel over every output row.
//
// Inputs:
//   - lhs: left matrix with shape (r × n).
//   - rhs: right matrix with shape (n × c).
//
// Returns:
//   - *Dense[T]: new C with shape (r × c). Operands are not mutated.
//
// Errors:
//   - *DimensionError (matches ErrDimensionMismatch) with both shapes.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Scalar](lhs, rhs *Dense[T]) (*Dense[T], error) {
	if err := validateMulCompatible(opMul, lhs, rhs); err != nil {
		return nil, err
	}
	res := NewDense[T](lhs.r, rhs.c)
	mulRows(res, lhs, rhs, 0, lhs.r)

	return res, nil
}

// MulAssign replaces m with m × rhs.
// The product is computed into a temporary and only then swapped in, so
// m.MulAssign(m) is correct. On error m is unchanged.
// Pointers from Ref are invalidated.
func (m *Dense[T]) MulAssign(rhs *Dense[T]) error {
	if err := validateMulCompatible(opMulAssign, m, rhs); err != nil {
		return err
	}
	res := NewDense[T](m.r, rhs.c)
	mulRows(res, m, rhs, 0, m.r)
	m.r, m.c, m.data = res.r, res.c, res.data

	return nil
}

// T returns the transpose of m as a new (Cols × Rows) matrix.
// m is not mutated; m.T().T() is element-wise equal to m.
// Complexity: O(r*c).
func (m *Dense[T]) T() *Dense[T] {
	res := NewDense[T](m.c, m.r) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}
