// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical method.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Product is the single entry point for "matrix times anything".

package matrix

import "fmt"

// NewZeros returns a new zero matrix of size rows×cols.
// Errors: ErrInvalidArgument unless both sizes are positive.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	if err := ValidatePositive(rows); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}
	if err := ValidatePositive(cols); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newDenseRaw(rows, cols), nil
}

// NewIdentity returns I_size (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidArgument unless size is a positive integer.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(size int) (*Dense, error) {
	if err := ValidatePositive(size); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	id := newDenseRaw(size, size)
	for i := 0; i < size; i++ {
		id.data[i*size+i] = 1
	}

	return id, nil
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
// Errors: ErrNilMatrix, ErrNotSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// Product is the matrix-product operator: it dispatches on the right operand.
// Implementation:
//   - *Vector          → m.LinearTransform(rhs), returns *Vector.
//   - *Dense           → m.MatMul(rhs), returns *Dense.
//   - nested sequence  → MatrixFrom at the edge, then MatMul.
//
// Errors:
//   - ErrTypeKind for unsupported operands; ErrDimensionMismatch from the kernels.
func Product(m *Dense, rhs any) (Matrix, error) {
	// Explicit returns keep a failed call from yielding a typed-nil Matrix.
	if v, ok := rhs.(*Vector); ok {
		y, err := m.LinearTransform(v)
		if err != nil {
			return nil, err
		}
		return y, nil
	}
	other, ok := rhs.(*Dense)
	if !ok {
		var err error
		if other, err = MatrixFrom(rhs); err != nil {
			return nil, fmt.Errorf("%s: %w", opProduct, err)
		}
	}
	out, err := m.MatMul(other)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Outer is the package-level alias of (*Vector).Outer.
func Outer(u, v *Vector) (*Dense, error) { return u.Outer(v) }

// Sum is an alias for (*Dense).Add.
func Sum(a, b *Dense) (*Dense, error) { return a.Add(b) }

// Diff is an alias for (*Dense).Sub.
func Diff(a, b *Dense) (*Dense, error) { return a.Sub(b) }

// Transpose is an alias for (*Dense).T.
func Transpose(m *Dense) (*Dense, error) { return m.T() }

// MatVec is an alias for (*Dense).LinearTransform.
func MatVec(m *Dense, v *Vector) (*Vector, error) { return m.LinearTransform(v) }
