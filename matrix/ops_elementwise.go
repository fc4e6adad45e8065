// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise arithmetic on Dense: Add, Sub, Hadamard and Scale, plus
//     their in-place forms.
//
// Design:
//   - Binary ops share one shape contract: validateSameShape runs before any
//     write, so a failing *Assign leaves the receiver untouched.
//   - Every loop is a single flat pass 0..n-1 over the row-major buffer; the
//     index maps to the same (i, j) in both operands because shapes match.

package matrix

// Add computes the element-wise sum C = lhs + rhs.
// Shapes must match exactly; a mismatch returns a *DimensionError.
// Complexity: O(r*c) time and space.
func Add[T Scalar](lhs, rhs *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(opAdd, lhs, rhs); err != nil {
		return nil, err
	}
	res := NewDense[T](lhs.r, lhs.c)
	for idx := range res.data { // flat 0..n-1
		res.data[idx] = lhs.data[idx] + rhs.data[idx]
	}

	return res, nil
}

// AddAssign adds rhs into m element-wise.
// Shapes are checked before any element is written.
func (m *Dense[T]) AddAssign(rhs *Dense[T]) error {
	if err := validateSameShape(opAddAssign, m, rhs); err != nil {
		return err
	}
	for idx := range m.data {
		m.data[idx] += rhs.data[idx]
	}

	return nil
}

// Sub computes C = lhs - rhs with the same shape contract as Add.
func Sub[T Scalar](lhs, rhs *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(opSub, lhs, rhs); err != nil {
		return nil, err
	}
	res := NewDense[T](lhs.r, lhs.c)
	for idx := range res.data {
		res.data[idx] = lhs.data[idx] - rhs.data[idx]
	}

	return res, nil
}

// SubAssign subtracts rhs from m element-wise.
func (m *Dense[T]) SubAssign(rhs *Dense[T]) error {
	if err := validateSameShape(opSubAssign, m, rhs); err != nil {
		return err
	}
	for idx := range m.data {
		m.data[idx] -= rhs.data[idx]
	}

	return nil
}

// Hadamard computes the element-wise product C[i,j] = lhs[i,j] * rhs[i,j].
// Not to be confused with Mul.
func Hadamard[T Scalar](lhs, rhs *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(opHadamard, lhs, rhs); err != nil {
		return nil, err
	}
	res := NewDense[T](lhs.r, lhs.c)
	for idx := range res.data {
		res.data[idx] = lhs.data[idx] * rhs.data[idx]
	}

	return res, nil
}

// Scale returns s*m as a new matrix.
func Scale[T Scalar](m *Dense[T], s T) *Dense[T] {
	res := NewDense[T](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = v * s
	}

	return res
}

// ScaleAssign multiplies every element of m by s.
func (m *Dense[T]) ScaleAssign(s T) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}
