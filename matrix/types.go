// SPDX-License-Identifier: MIT

// Package matrix: element type constraint.
package matrix

import "golang.org/x/exp/constraints"

// Scalar is the set of element types Dense can hold.
// Floating point is the intended use; integers are accepted because the
// kernels only need +, * and a zero value.
type Scalar interface {
	constraints.Float | constraints.Integer
}
