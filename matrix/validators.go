// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for operand shape checks.
//   - Return *DimensionError carrying both shapes so every facade reports
//     mismatches identically.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate only on failure.

package matrix

// validateMulCompatible ensures lhs.Cols == rhs.Rows.
func validateMulCompatible[T Scalar](op string, lhs, rhs *Dense[T]) error {
	if lhs.c != rhs.r {
		return NewDimensionError(op, lhs.r, lhs.c, rhs.r, rhs.c)
	}

	return nil
}

// validateSameShape ensures lhs and rhs have identical dimensions.
func validateSameShape[T Scalar](op string, lhs, rhs *Dense[T]) error {
	if lhs.r != rhs.r || lhs.c != rhs.c {
		return NewDimensionError(op, lhs.r, lhs.c, rhs.r, rhs.c)
	}

	return nil
}
