// SPDX-License-Identifier: MIT

// Package matrix: the shared read-only view implemented by *Dense and *Vector.
// This file intentionally contains ONLY the Matrix interface and compile-time
// conformance checks. Errors and options live in dedicated files.
package matrix

import "fmt"

// Matrix is a read-only two-dimensional view of float64 values.
// *Dense implements it directly; *Vector implements it as a dim×1 column so
// tolerance checks (AllClose) and the ops engine can consume either.
//
// There is deliberately no Set: every value in this package is immutable
// after construction.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the view.
	Rows() int

	// Cols returns the number of columns in the view.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ Matrix       = (*Vector)(nil)
	_ fmt.Stringer = (*Dense)(nil)
	_ fmt.Stringer = (*Vector)(nil)
)
