// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an immutable, cache-friendly row-major buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking, and every read that hands out a slice hands out a copy.
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At: O(1); Row/Col: O(c)/O(r); RawRows/Clone: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxRow = "Row"
	ctxCol = "Col"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates a Dense from a rectangular sequence of rows (copied).
// Implementation:
//   - Stage 1: reject an empty outer slice or empty first row (ErrEmptyInput).
//   - Stage 2: reject rows whose length differs from the first (ErrRaggedShape).
//   - Stage 3: copy into a flat buffer and apply the NaN/Inf policy.
//
// Inputs:
//   - rows: m >= 1 rows of n >= 1 values each.
//   - opts: numeric policy (WithNoValidateNaNInf relaxes the finite check).
//
// Errors:
//   - ErrEmptyInput, ErrRaggedShape (message names the offending row), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - For non-float inputs use MatrixFrom; for copies use NewDenseFrom or Clone.
func NewDense(rows [][]float64, opts ...Option) (*Dense, error) {
	return newDenseOwned(opNewDense, rows, gatherOptions(opts...))
}

// newDenseOwned validates the row shape and flattens rows into a new buffer.
// rows itself is only read.
func newDenseOwned(tag string, rows [][]float64, policy Options) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(tag, ErrEmptyInput)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w", tag, i, len(row), c, ErrRaggedShape)
		}
		data = append(data, row...)
	}
	if err := validateFinite(tag, data, policy); err != nil {
		return nil, err
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// newDenseRaw allocates an r×c zero matrix without validation.
// Callers guarantee r,c >= 1.
func newDenseRaw(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// NewDenseFrom copies any Matrix view into a new Dense (logical copy).
// Fast path for *Dense and *Vector (flat copy); generic path via At.
//
// Errors: ErrNilMatrix, ErrEmptyInput (0-sized foreign view), ErrNaNInf, At errors.
func NewDenseFrom(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNewDenseFrom, err)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opNewDenseFrom, ErrEmptyInput)
	}
	out := newDenseRaw(r, c)
	if flat := flatOf(m); flat != nil {
		copy(out.data, flat)
	} else {
		var err error
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if out.data[i*c+j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opNewDenseFrom, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
			}
		}
	}
	if err := validateFinite(opNewDenseFrom, out.data, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return out, nil
}

// Rows returns the row count (0 for a nil receiver).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil receiver).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsSquare reports Rows() == Cols() for a non-nil receiver.
func (m *Dense) IsSquare() bool { return m != nil && m.r == m.c }

// At retrieves the element at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange (wrapped with coordinates).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// RowVector returns row i as a *Vector.
func (m *Dense) RowVector(i int) (*Vector, error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}

	return &Vector{data: row}, nil
}

// Col returns a copy of column j.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) Col(j int) ([]float64, error) {
	if m == nil {
		return nil, denseErrorf(ctxCol, 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RawRows returns a deep copy of the entries as [][]float64.
// The result is owned by the caller; the ops engine uses it as scratch space.
func (m *Dense) RawRows() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Clone returns an independent copy of m (nil for a nil receiver).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}

	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}
