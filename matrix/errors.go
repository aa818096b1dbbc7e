// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its ops subpackage. All operations MUST return these sentinels
// (optionally wrapped with %w) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf/shapeErrorf so
// the final message carries the operation tag and the offending shapes while
// errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> type -> empty/ragged -> NaN/Inf -> dimension mismatch -> numeric
// (division by zero, degenerate, singular).

var (
	// ErrTypeKind is returned when an operand cannot be coerced to the expected
	// numeric or sequence shape (e.g., dividing by a non-scalar, building a
	// Vector from a slice of strings).
	ErrTypeKind = errors.New("matrix: operand has unsupported type")

	// ErrEmptyInput is returned when a Vector or Dense is built from an empty
	// sequence (or a Dense whose first row is empty).
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrRaggedShape is returned when matrix rows have unequal lengths.
	ErrRaggedShape = errors.New("matrix: rows must have equal length")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add of different shapes, MatMul where a.Cols != b.Rows, or Cross
	// on vectors that are not three-dimensional.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivisionByZero is returned by scalar division when the divisor is exactly 0.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrDegenerateInput is returned when an operation needs a non-zero
	// magnitude (Unit, Angle, ProjectOnto) and receives the zero vector.
	ErrDegenerateInput = errors.New("matrix: zero-magnitude vector")

	// ErrInvalidArgument is returned for non-positive sizes and other
	// scalar arguments outside their contract.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense, *Vector or Matrix view was used.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrOutOfRange indicates that an index (row, column or component) is
	// outside valid bounds. Public indexers return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (construction, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a square matrix has no inverse
	// (row reduction of [A | I] leaves a zero pivot on the left block).
	ErrSingular = errors.New("matrix: singular matrix")
)
