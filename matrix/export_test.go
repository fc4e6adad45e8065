// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers to matrix_test only.

// BandCount exposes bandCount for white-box tests of the row split.
var BandCount = bandCount
