// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for values and kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinal/matrix"
)

// Shared tolerances for float comparisons.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-12
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based fallback paths (AllClose, NewDenseFrom).
type hide struct{ matrix.Matrix }

// MustVector builds a *Vector or fails the test.
func MustVector(t *testing.T, xs ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(xs)
	require.NoError(t, err)

	return v
}

// MustDense builds a *Dense from row literals or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "Cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "not close:\n%v\nvs\n%v", a, b)
}

// RandomRows returns an r×c grid of values in [-10, 10) from a fixed seed.
func RandomRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}

	return rows
}

// RandomVector returns a dim-dimensional vector with components in [-10, 10).
func RandomVector(t *testing.T, dim int, seed int64) *matrix.Vector {
	t.Helper()

	return MustVector(t, RandomRows(1, dim, seed)[0]...)
}
