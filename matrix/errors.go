// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinels and the one typed error that
// carries operand shapes. Tests MUST check them via errors.Is / errors.As.
// Panics are reserved for programmer errors (negative dimensions, nonsensical
// option values).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where lhs.Cols != rhs.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Only the checked accessors (AtChecked/SetChecked) report it.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opAddAssign = "AddAssign"
	opSub       = "Sub"
	opSubAssign = "SubAssign"
	opHadamard  = "Hadamard"
	opMul       = "Mul"
	opMulAssign = "MulAssign"
	opFromRows  = "FromRows"
)

// DimensionError reports a shape conflict between two operands.
// Left and Right hold the operands' DimString() renderings ("3x4").
// It matches ErrDimensionMismatch under errors.Is.
type DimensionError struct {
	Op    string // operation tag (Mul, Add, Copy, ...)
	Left  string // left operand shape
	Right string // right operand shape
}

// Error renders "matrix: <Op>: dimension mismatch lhs: <Left> rhs: <Right>".
func (e *DimensionError) Error() string {
	return fmt.Sprintf("matrix: %s: dimension mismatch lhs: %s rhs: %s", e.Op, e.Left, e.Right)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// NewDimensionError builds a DimensionError from two shapes.
// Adapters outside this package use it to report the same error kind as Mul.
func NewDimensionError(op string, lr, lc, rr, rc int) *DimensionError {
	return &DimensionError{Op: op, Left: dimString(lr, lc), Right: dimString(rr, rc)}
}
