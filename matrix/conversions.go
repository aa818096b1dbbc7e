// SPDX-License-Identifier: MIT

// Package matrix: narrow conversion functions for the API edge.
//
// Purpose:
//   - Turn caller-supplied numeric sequences into *Vector / *Dense exactly
//     once, at the boundary. Core types accept only their own kind.
//   - Map every unsupported input to ErrTypeKind.
//
// Supported scalars: all Go integer and float kinds.
// Supported sequences: []float64, []float32, []int, []int64, []any (of
// scalars); nested forms of the same for matrices; []*Vector as rows.
package matrix

import "fmt"

// toScalar converts a single Go numeric value to float64.
// Reports false for anything that is not an integer or float kind.
func toScalar(x any) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}

	return 0, false
}

// toFloats converts a one-dimensional numeric sequence to a fresh []float64.
// The result never aliases the input.
func toFloats(values any) ([]float64, error) {
	switch v := values.(type) {
	case *Vector:
		if v == nil {
			return nil, ErrNilMatrix
		}
		return v.Components(), nil
	case []float64:
		return append([]float64(nil), v...), nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int64:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []any:
		out := make([]float64, len(v))
		for i, x := range v {
			f, ok := toScalar(x)
			if !ok {
				return nil, fmt.Errorf("element %d of type %T: %w", i, x, ErrTypeKind)
			}
			out[i] = f
		}
		return out, nil
	}

	return nil, fmt.Errorf("%T: %w", values, ErrTypeKind)
}

// toRows converts a two-dimensional numeric sequence to fresh rows.
// Shape is not validated here; NewDense owns the empty/ragged policy.
func toRows(values any) ([][]float64, error) {
	switch v := values.(type) {
	case [][]float64:
		return copyRows(v), nil
	case []*Vector:
		out := make([][]float64, len(v))
		for i, row := range v {
			if row == nil {
				return nil, fmt.Errorf("row %d: %w", i, ErrNilMatrix)
			}
			out[i] = row.Components()
		}
		return out, nil
	case [][]int:
		return rowsOf(len(v), func(i int) any { return v[i] })
	case [][]int64:
		return rowsOf(len(v), func(i int) any { return v[i] })
	case [][]float32:
		return rowsOf(len(v), func(i int) any { return v[i] })
	case [][]any:
		return rowsOf(len(v), func(i int) any { return v[i] })
	case []any:
		return rowsOf(len(v), func(i int) any { return v[i] })
	}

	return nil, fmt.Errorf("%T: %w", values, ErrTypeKind)
}

// rowsOf converts n rows produced by rowAt through toFloats.
func rowsOf(n int, rowAt func(i int) any) ([][]float64, error) {
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row, err := toFloats(rowAt(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = row
	}

	return out, nil
}

// copyRows deep-copies a [][]float64.
func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// VectorFrom is the edge conversion for vectors: it accepts a *Vector (copied)
// or any supported numeric sequence and builds a new *Vector.
//
// Errors:
//   - ErrTypeKind for unsupported containers or non-numeric elements.
//   - ErrEmptyInput, ErrNaNInf from NewVector.
//
// Complexity: O(n).
func VectorFrom(values any, opts ...Option) (*Vector, error) {
	comps, err := toFloats(values)
	if err != nil {
		return nil, matrixErrorf(opVectorFrom, err)
	}

	return newVectorOwned(opVectorFrom, comps, gatherOptions(opts...))
}

// MatrixFrom is the edge conversion for matrices: it accepts a *Dense
// (copied), any other Matrix view, rows as []*Vector, or a nested numeric
// sequence, and builds a new *Dense.
//
// Errors:
//   - ErrTypeKind for unsupported containers or non-numeric elements.
//   - ErrEmptyInput, ErrRaggedShape, ErrNaNInf from NewDense.
//
// Complexity: O(r*c).
func MatrixFrom(values any, opts ...Option) (*Dense, error) {
	if m, ok := values.(Matrix); ok {
		return NewDenseFrom(m, opts...)
	}
	rows, err := toRows(values)
	if err != nil {
		return nil, matrixErrorf(opMatrixFrom, err)
	}

	return newDenseOwned(opMatrixFrom, rows, gatherOptions(opts...))
}

// ScalarFrom converts a Go numeric value to float64 or fails with ErrTypeKind.
func ScalarFrom(x any) (float64, error) {
	f, ok := toScalar(x)
	if !ok {
		return 0, fmt.Errorf("%T: %w", x, ErrTypeKind)
	}

	return f, nil
}
