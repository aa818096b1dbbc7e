// Package ops provides the row-reduction engine for the lvlinal/matrix package.
// determinant.go computes determinants by partial-pivot elimination and
// cofactors via Dense.Minor.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinal/matrix"
)

// Determinant returns det(m) for a square matrix.
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and square.
//	Stage 2 (Execute): forward elimination with the same partial pivoting as
//	                   RREF; each row swap flips the sign, det accumulates pivots.
//	Stage 3 (Finalize): a column with max |pivot| < PivotTolerance ⇒ det = 0,
//	                   consistent with Rank(m) < n.
//
// Complexity: O(n³) time, O(n²) memory.
func Determinant(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opDeterminant, err)
	}
	rows, err := scratchOf(m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDeterminant, err)
	}

	n := len(rows)
	det := 1.0
	for k := 0; k < n; k++ {
		best := k
		for r := k + 1; r < n; r++ {
			if math.Abs(rows[r][k]) > math.Abs(rows[best][k]) {
				best = r
			}
		}
		if math.Abs(rows[best][k]) < PivotTolerance {
			return 0, nil
		}
		if best != k {
			rows[k], rows[best] = rows[best], rows[k]
			det = -det
		}
		pivot := rows[k][k]
		det *= pivot
		for r := k + 1; r < n; r++ {
			factor := rows[r][k] / pivot
			if factor == 0 {
				continue
			}
			for j := k; j < n; j++ {
				rows[r][j] -= factor * rows[k][j]
			}
		}
	}

	return det, nil
}

// Cofactor returns (-1)^(i+j) · det(Minor(i, j)).
// Errors: those of Dense.Minor (ErrNotSquare, ErrInvalidArgument for 1×1,
// ErrOutOfRange) and Determinant.
func Cofactor(m matrix.Matrix, i, j int) (float64, error) {
	d, err := matrix.NewDenseFrom(m, matrix.WithNoValidateNaNInf())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCofactor, err)
	}
	minor, err := d.Minor(i, j)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCofactor, err)
	}
	det, err := Determinant(minor)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCofactor, err)
	}
	if (i+j)%2 == 1 {
		det = -det
	}

	return det, nil
}
