// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/square/finite checks here.
//   - Return sentinel errors wrapped with a validator tag and the offending
//     shapes so call sites can wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; shape checks allocate only on failure.
//   - Finite-value scans run O(n) over the flat buffer.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps err with a tag and both operand shapes, e.g.
// "ValidateSameShape: (2×3) vs (3×2): matrix: dimension mismatch".
func shapeErrorf(tag string, ar, ac, br, bc int, err error) error {
	return fmt.Errorf("%s: (%d×%d) vs (%d×%d): %w", tag, ar, ac, br, bc, err)
}

// isNilMatrix reports whether m is a nil interface or a typed nil pointer
// of one of the package's concrete types.
func isNilMatrix(m Matrix) bool {
	switch x := m.(type) {
	case nil:
		return true
	case *Dense:
		return x == nil
	case *Vector:
		return x == nil
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil (including typed nil
// *Dense / *Vector hidden inside the interface).
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape checks a and b have identical Rows and Cols.
// Assumes both are non-nil (see ValidateBinarySameShape).
// Returns ErrDimensionMismatch carrying both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	ar, ac, br, bc := a.Rows(), a.Cols(), b.Rows(), b.Cols()
	if ar != br || ac != bc {
		return shapeErrorf("ValidateSameShape", ar, ac, br, bc, ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNotSquare (message carries the shape).
// Complexity: O(1).
// AI-Hints: Use before Trace, Determinant, Inverse and Minor.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if r, c := m.Rows(), m.Cols(); r != c {
		return fmt.Errorf("ValidateSquare: (%d×%d): %w", r, c, ErrNotSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return shapeErrorf("ValidateMulCompatible", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidatePositive checks that a requested size is a positive integer.
// Errors: ErrInvalidArgument.
func ValidatePositive(size int) error {
	if size <= 0 {
		return fmt.Errorf("ValidatePositive: size %d: %w", size, ErrInvalidArgument)
	}

	return nil
}

// validateVectors is the Vector counterpart of ValidateBinarySameShape:
// both non-nil, equal dim. The message carries both dims.
func validateVectors(tag string, v, w *Vector) error {
	if v == nil || w == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	if len(v.data) != len(w.data) {
		return fmt.Errorf("%s: %d vs %d: %w", tag, len(v.data), len(w.data), ErrDimensionMismatch)
	}

	return nil
}

// validateFinite scans xs under the numeric policy and reports the first
// non-finite value by flat index.
// Complexity: O(len(xs)).
func validateFinite(tag string, xs []float64, policy Options) error {
	if !policy.validateNaNInf {
		return nil
	}
	for idx, x := range xs {
		if isNonFinite(x) {
			return fmt.Errorf("%s: element %d = %v: %w", tag, idx, x, ErrNaNInf)
		}
	}

	return nil
}
