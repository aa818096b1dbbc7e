// Package ops provides the row-reduction engine for the lvlinal/matrix package.
// reduce.go implements partial-pivot Gauss–Jordan elimination (RREF), Rank and Trace.
// Every routine works on a private scratch copy; the caller's matrix is never mutated.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinal/matrix"
)

// PivotTolerance is the fixed numerical-stability threshold of the engine.
// A column whose largest candidate pivot is below it has no pivot, and a
// reduced row counts toward Rank only if some entry exceeds it.
// Not configurable.
const PivotTolerance = 1e-9

const (
	opTrace       = "Trace"
	opRREF        = "RREF"
	opRank        = "Rank"
	opInverse     = "Inverse"
	opSolve       = "Solve"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
)

// scratchOf returns a fresh [][]float64 copy of m for in-place elimination.
// The copy never aliases m.
func scratchOf(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok && d != nil {
		return d.RawRows(), nil
	}
	d, err := matrix.NewDenseFrom(m, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}

	return d.RawRows(), nil
}

// Trace returns the sum of the diagonal entries of a square matrix.
// Complexity: O(n).
func Trace(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opTrace, err)
	}
	var (
		sum float64
		v   float64
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, fmt.Errorf("%s: %w", opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// gaussJordan reduces rows in place to reduced row-echelon form and returns
// the number of pivots found. Pivots are searched only in the first
// pivotCols columns; row operations always span the full row, so an
// augmented block to the right is carried along.
//
// Blueprint (per column c, left to right):
//
//	Stage 1: stop once the pivot cursor reaches the row count.
//	Stage 2: pick the row at or below the cursor with the largest |x| in c
//	         (the first such row wins ties).
//	Stage 3: if that |x| < PivotTolerance, c has no pivot; keep the cursor.
//	Stage 4: swap it into the cursor row and divide the row by the pivot.
//	Stage 5: subtract (row[c] × pivot row) from every other row, above and below.
//	Stage 6: advance the cursor.
//
// Complexity: O(r²·c) time, O(1) extra space.
func gaussJordan(rows [][]float64, pivotCols int) int {
	var (
		n      = len(rows)
		cursor int
	)
	for c := 0; c < pivotCols; c++ {
		if cursor >= n {
			break
		}

		// Partial pivoting: strict > keeps the first maximum.
		best := cursor
		for r := cursor + 1; r < n; r++ {
			if math.Abs(rows[r][c]) > math.Abs(rows[best][c]) {
				best = r
			}
		}
		if math.Abs(rows[best][c]) < PivotTolerance {
			continue // rank-deficient column, not an error
		}

		rows[cursor], rows[best] = rows[best], rows[cursor]

		pivotRow := rows[cursor]
		pivot := pivotRow[c]
		for j := range pivotRow {
			pivotRow[j] /= pivot
		}

		for r := 0; r < n; r++ {
			if r == cursor {
				continue
			}
			factor := rows[r][c]
			row := rows[r]
			for j := range row {
				row[j] -= factor * pivotRow[j]
			}
		}

		cursor++
	}

	return cursor
}

// RREF returns the reduced row-echelon form of m as a new Dense.
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and non-empty.
//	Stage 2 (Prepare): copy the entries into a private scratch buffer.
//	Stage 3 (Execute): partial-pivot Gauss–Jordan over all columns.
//	Stage 4 (Finalize): wrap the scratch rows into a new Dense.
//
// Complexity: O(r²·c) time, O(r·c) memory.
func RREF(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opRREF, err)
	}
	rows, err := scratchOf(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRREF, err)
	}
	gaussJordan(rows, m.Cols())

	out, err := matrix.NewDense(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRREF, err)
	}

	return out, nil
}

// Rank returns the number of rows of RREF(m) that contain at least one
// entry with |x| > PivotTolerance.
// Complexity: O(r²·c).
func Rank(m matrix.Matrix) (int, error) {
	reduced, err := RREF(m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opRank, err)
	}

	rank := 0
	for _, row := range reduced.RawRows() {
		for _, x := range row {
			if math.Abs(x) > PivotTolerance {
				rank++
				break
			}
		}
	}

	return rank, nil
}

// Nullity returns Cols(m) - Rank(m), the dimension of the null space.
func Nullity(m matrix.Matrix) (int, error) {
	rank, err := Rank(m)
	if err != nil {
		return 0, err
	}

	return m.Cols() - rank, nil
}
