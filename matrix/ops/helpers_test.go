// SPDX-License-Identifier: MIT
package ops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinal/matrix"
)

// Tolerances for results of elimination.
const (
	rtolOps = 1e-9
	atolOps = 1e-9
)

// hide forces the At-based fallback paths by hiding the concrete type.
type hide struct{ matrix.Matrix }

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows)
	require.NoError(t, err)

	return m
}

func mustVector(t testing.TB, xs ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(xs)
	require.NoError(t, err)

	return v
}

func mustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return id
}

// requireClose asserts AllClose(a, b) under the shared tolerances.
func requireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtolOps, atolOps)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// randomRows returns an r×c grid in [-10, 10) from a fixed seed.
func randomRows(r, c int, seed int64) [][]float64 {
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

// diagonallyDominant returns a random n×n matrix whose diagonal outweighs
// each row, so it is comfortably invertible.
func diagonallyDominant(n int, seed int64) [][]float64 {
	rows := randomRows(n, n, seed)
	for i := range rows {
		rows[i][i] += float64(10 * (n + 1))
	}

	return rows
}

// lowRank returns an r×c matrix of rank k built as B(r×k)·C(k×c).
func lowRank(t testing.TB, r, c, k int, seed int64) *matrix.Dense {
	t.Helper()
	b := mustDense(t, randomRows(r, k, seed))
	cm := mustDense(t, randomRows(k, c, seed+1))
	out, err := b.MatMul(cm)
	require.NoError(t, err)

	return out
}
