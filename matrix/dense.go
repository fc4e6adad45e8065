// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Offer an unchecked fast path (At/Set/Ref) and an opt-in checked path
//     (AtChecked/SetChecked) under distinct names.
//   - Keep storage exclusively owned: no method hands out the backing slice.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); At/Set/Ref: O(1); Assign: O(min(n, r*c)); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAtChecked  = "AtChecked"
	ctxSetChecked = "SetChecked"
)

// ---------- Formatting literals ----------

const (
	_fmtDimSep  = "x"
	_fmtElemSep = " "
	_fmtRowEnd  = "\n"
)

const panicNegativeDims = "matrix: dimensions must be >= 0"

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the scalar type T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a valid 0x0 matrix.
type Dense[T Scalar] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c matrix of zeros.
// Either dimension may be zero, producing a valid empty matrix.
// Negative dimensions are a programmer error and panic.
func NewDense[T Scalar](rows, cols int) *Dense[T] {
	if rows < 0 || cols < 0 {
		panic(panicNegativeDims)
	}

	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewFilled creates an r×c matrix with every element set to fill.
// Implementation:
//   - Stage 1: allocate via NewDense (shape validation lives there).
//   - Stage 2: skip the fill loop when fill is already the zero value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T Scalar](rows, cols int, fill T) *Dense[T] {
	m := NewDense[T](rows, cols)
	if fill != 0 {
		for idx := range m.data {
			m.data[idx] = fill
		}
	}

	return m
}

// NewFromRows builds a matrix from a slice of equal-length rows.
// A ragged input returns a DimensionError naming the first offending row.
func NewFromRows[T Scalar](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return NewDense[T](0, 0), nil
	}
	r, c := len(rows), len(rows[0])
	m := NewDense[T](r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d: %w", i, NewDimensionError(opFromRows, 1, c, 1, len(row)))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense[T]) Len() int { return len(m.data) }

// Assign copies values into the matrix in row-major order.
// MAIN DESCRIPTION:
//   - Bulk initializer for literal-style call sites: m.Assign(1, 2, 3, 4).
//
// Behavior highlights:
//   - Copies exactly min(len(values), Rows*Cols) elements.
//   - A short sequence leaves the trailing elements at their prior values;
//     a long sequence is truncated. Neither case is an error.
//
// Returns:
//   - int: number of elements copied.
//
// Complexity:
//   - Time O(min(n, r*c)), Space O(1).
func (m *Dense[T]) Assign(values ...T) int {
	return copy(m.data, values)
}

// At returns element (i, j) without bounds validation.
// Out-of-range indices are undefined: an offset that still falls inside the
// buffer reads a different element, one that does not panics.
// Use AtChecked when indices come from untrusted input.
func (m *Dense[T]) At(i, j int) T { return m.data[i*m.c+j] }

// Set stores v at (i, j) without bounds validation. See At.
func (m *Dense[T]) Set(i, j int, v T) { m.data[i*m.c+j] = v }

// Ref returns a pointer to element (i, j) for read-modify-write call sites:
//
//	*m.Ref(1, 1) += 2
//
// No bounds validation; see At. The pointer is invalidated by MulAssign.
func (m *Dense[T]) Ref(i, j int) *T { return &m.data[i*m.c+j] }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// AtChecked returns element (i, j) or an error wrapping ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) AtChecked(i, j int) (T, error) {
	off, err := m.indexOf(i, j)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAtChecked, i, j, err)
	}

	return m.data[off], nil
}

// SetChecked stores v at (i, j) or returns an error wrapping ErrOutOfRange.
// The matrix is unchanged on error.
func (m *Dense[T]) SetChecked(i, j int, v T) error {
	off, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSetChecked, i, j, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with its own storage.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Data returns a row-major copy of the elements.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row i. No bounds validation beyond the slice's own.
func (m *Dense[T]) Row(i int) []T {
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// DimString renders the shape as "<rows>x<cols>".
func (m *Dense[T]) DimString() string { return dimString(m.r, m.c) }

func dimString(rows, cols int) string {
	return strconv.Itoa(rows) + _fmtDimSep + strconv.Itoa(cols)
}

// String renders the dimension line followed by one line per row with
// elements separated by single spaces. Intended for logs and debugging;
// there is no parser for it.
//
//	2x2
//	1 2
//	3 4
func (m *Dense[T]) String() string {
	var b strings.Builder
	b.WriteString(m.DimString())
	b.WriteString(_fmtRowEnd)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtElemSep)
			}
			fmt.Fprint(&b, m.data[base+j])
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}
