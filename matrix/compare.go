// SPDX-License-Identifier: MIT

package matrix

import "math"

// Close reports whether |a-b| < eps. The comparison is strict, so
// Close(x, x, 0) is false.
func Close(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// NearlyEqual reports whether a and b have the same shape and every pair of
// elements is Close under the configured epsilon (DefaultEpsilon unless
// WithEpsilon is given). Elements are compared as float64.
//
// Complexity: O(r*c); stops at the first differing element.
func NearlyEqual[T Scalar](a, b *Dense[T], opts ...Option) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	eps := gatherOptions(opts...).eps
	for idx := range a.data {
		if !Close(float64(a.data[idx]), float64(b.data[idx]), eps) {
			return false
		}
	}

	return true
}

// Equal reports exact shape and element equality.
func Equal[T Scalar](a, b *Dense[T]) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
