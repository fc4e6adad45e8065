// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mmult/matrix"
	"gonum.org/v1/gonum/mat"
)

// Demo walks through the core API on small literal matrices and prints each
// step: literal initialization, a 2x3 × 3x2 product, square and rectangular
// transposes, the double-transpose identity, the mismatch error, and a
// product after mutating one element.
func (r *Runner) Demo() error {
	w := r.out

	// Reference product from gonum for comparison with what follows.
	gm := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	gv := mat.NewVecDense(3, []float64{7, 8, 9})
	var mv mat.VecDense
	mv.MulVec(gm, gv)
	fmt.Fprintf(w, "m * v =\n%v\n", mat.Formatted(&mv))

	mm := matrix.NewDense[float64](3, 4)
	mm.Assign(1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12)
	fmt.Fprintln(w, mm)

	i1t6 := []float64{1, 2, 3, 4, 5, 6}
	mm23 := matrix.NewDense[float64](2, 3)
	mm23.Assign(i1t6...)
	fmt.Fprintln(w, "Initialization list:")
	fmt.Fprintln(w, mm23)

	mm32 := matrix.NewDense[float64](3, 2)
	mm32.Assign(7, 10,
		8, 11,
		9, 12)
	fmt.Fprintln(w, "Temporary initialization list:")
	fmt.Fprintln(w, mm32)

	prod, err := matrix.Mul(mm23, mm32)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintln(w, "Multiplication 2x3 x 3x2 initialization list:")
	fmt.Fprintln(w, prod)
	fmt.Fprintln(w, "Transpose:")
	fmt.Fprintln(w, prod.T())

	fmt.Fprintln(w, "Rect Transpose:")
	fmt.Fprintln(w, mm)
	fmt.Fprintln(w, mm.T())
	fmt.Fprintln(w, "Transpose equal")
	fmt.Fprintf(w, "equal %t\n", matrix.NearlyEqual(mm, mm.T().T()))

	// 3x2 × 3x2 must be refused.
	_, err = matrix.Mul(mm32, mm32)
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		return fmt.Errorf("demo: expected dimension mismatch, got %v", err)
	}
	fmt.Fprintf(w, "Expected error: %v\n", err)

	mm32.Set(1, 1, 1)
	outm, err := matrix.Mul(mm23, mm32)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintln(w, mm32)
	fmt.Fprintln(w, outm)

	r.log.Debug("demo finished")

	return nil
}
