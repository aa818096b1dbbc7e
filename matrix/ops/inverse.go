// Package ops provides the row-reduction engine for the lvlinal/matrix package.
// Inverse computes A⁻¹ by reducing the augmented matrix [A | I]; Solve applies
// the inverse to a right-hand side vector.
package ops

import (
	"fmt"

	"github.com/katalvlaran/lvlinal/matrix"
)

// Inverse returns the inverse of the square matrix m, or an error if m is not
// square or is singular.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Prepare): build the n×2n scratch [A | I].
//	Stage 3 (Execute): Gauss–Jordan with pivots searched in the left block only.
//	Stage 4 (Check): fewer than n pivots means rank(A) < n → ErrSingular.
//	Stage 5 (Finalize): the right block is A⁻¹.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m matrix.Matrix) (*matrix.Dense, error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	n := m.Rows()

	// Stage 2: Augment with the identity
	left, err := scratchOf(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], left[i])
		aug[i][n+i] = 1
	}

	// Stage 3 + 4: Reduce and check the pivot count
	if pivots := gaussJordan(aug, n); pivots < n {
		return nil, fmt.Errorf("%s: rank %d < %d: %w", opInverse, pivots, n, matrix.ErrSingular)
	}

	// Stage 5: Extract the right block
	inv := make([][]float64, n)
	for i := 0; i < n; i++ {
		inv[i] = aug[i][n:]
	}
	out, err := matrix.NewDense(inv, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}

	return out, nil
}

// Solve returns x with A·x = b, computed as Inverse(A) applied to b.
// b.Dim() must equal Rows(A); the check runs before the O(n³) inversion.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrDimensionMismatch, ErrSingular.
func Solve(a matrix.Matrix, b *matrix.Vector) (*matrix.Vector, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, matrix.ErrNilMatrix)
	}
	if b.Dim() != a.Rows() {
		return nil, fmt.Errorf("%s: (%d×%d) vs (1×%d): %w", opSolve, a.Rows(), a.Cols(), b.Dim(), matrix.ErrDimensionMismatch)
	}
	inv, err := Inverse(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return inv.LinearTransform(b)
}
