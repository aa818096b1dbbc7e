// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlinal/matrix"
	"github.com/katalvlaran/lvlinal/matrix/ops"
)

// ReduceSuite groups tests for RREF, Rank, Nullity and Trace.
type ReduceSuite struct {
	suite.Suite
}

// TestRREF_TwoByTwo: [[2,4],[1,3]] reduces to the identity.
func (s *ReduceSuite) TestRREF_TwoByTwo() {
	m := mustDense(s.T(), [][]float64{{2, 4}, {1, 3}})

	r, err := ops.RREF(m)
	require.NoError(s.T(), err)
	require.True(s.T(), r.Equals(mustIdentity(s.T(), 2)), "got\n%v", r)
}

// TestRREF_Dependent: dependent rows leave a zero row and a non-pivot column.
func (s *ReduceSuite) TestRREF_Dependent() {
	m := mustDense(s.T(), [][]float64{{1, 2}, {2, 4}})

	r, err := ops.RREF(m)
	require.NoError(s.T(), err)
	require.True(s.T(), r.Equals(mustDense(s.T(), [][]float64{{1, 2}, {0, 0}})), "got\n%v", r)
}

// TestRREF_Rectangular: a wide system carries the right-hand block along.
func (s *ReduceSuite) TestRREF_Rectangular() {
	m := mustDense(s.T(), [][]float64{
		{1, 1, 1, 6},
		{0, 2, 5, -4},
		{2, 5, -1, 27},
	})

	r, err := ops.RREF(m)
	require.NoError(s.T(), err)
	requireClose(s.T(), mustDense(s.T(), [][]float64{
		{1, 0, 0, 5},
		{0, 1, 0, 3},
		{0, 0, 1, -2},
	}), r)
}

// TestRREF_SkipsZeroColumn: a zero leading column is not a pivot column.
func (s *ReduceSuite) TestRREF_SkipsZeroColumn() {
	m := mustDense(s.T(), [][]float64{{0, 3, 6}, {0, 1, 4}})

	r, err := ops.RREF(m)
	require.NoError(s.T(), err)
	requireClose(s.T(), mustDense(s.T(), [][]float64{{0, 1, 0}, {0, 0, 1}}), r)
}

// TestRREF_Idempotent: RREF(RREF(M)) == RREF(M) for full-rank inputs of several shapes.
func (s *ReduceSuite) TestRREF_Idempotent() {
	shapes := [][2]int{{1, 1}, {2, 2}, {3, 5}, {5, 3}, {4, 4}, {6, 2}}
	for idx, sh := range shapes {
		m := mustDense(s.T(), randomRows(sh[0], sh[1], int64(idx+1)))

		once, err := ops.RREF(m)
		require.NoError(s.T(), err)
		twice, err := ops.RREF(once)
		require.NoError(s.T(), err)
		require.True(s.T(), twice.Equals(once), "shape %v", sh)
	}
}

// TestRREF_DoesNotMutateInput: the engine works on a private copy.
func (s *ReduceSuite) TestRREF_DoesNotMutateInput() {
	rows := [][]float64{{0, 2, 1}, {3, 1, 4}, {1, 1, 1}}
	m := mustDense(s.T(), rows)
	before := m.Clone()

	_, err := ops.RREF(m)
	require.NoError(s.T(), err)
	_, err = ops.Rank(m)
	require.NoError(s.T(), err)
	_, err = ops.Inverse(m)
	require.NoError(s.T(), err)
	_, err = ops.Determinant(m)
	require.NoError(s.T(), err)
	require.True(s.T(), m.Equals(before))
}

// TestRREF_InterfaceViews: foreign views and Vector columns are accepted.
func (s *ReduceSuite) TestRREF_InterfaceViews() {
	m := mustDense(s.T(), [][]float64{{2, 4}, {1, 3}})
	direct, err := ops.RREF(m)
	require.NoError(s.T(), err)
	viaView, err := ops.RREF(hide{m})
	require.NoError(s.T(), err)
	require.True(s.T(), viaView.Equals(direct))

	col, err := ops.RREF(mustVector(s.T(), 0, 3, 0))
	require.NoError(s.T(), err)
	require.True(s.T(), col.Equals(mustDense(s.T(), [][]float64{{1}, {0}, {0}})))
}

// TestRREF_Nil: nil views are rejected.
func (s *ReduceSuite) TestRREF_Nil() {
	var nilDense *matrix.Dense
	_, err := ops.RREF(nilDense)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
	_, err = ops.Rank(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

// TestRank_Scenarios covers the canonical rank cases.
func (s *ReduceSuite) TestRank_Scenarios() {
	rank, err := ops.Rank(mustDense(s.T(), [][]float64{{1, 2}, {2, 4}}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, rank)

	for n := 1; n <= 6; n++ {
		rank, err = ops.Rank(mustIdentity(s.T(), n))
		require.NoError(s.T(), err)
		require.Equal(s.T(), n, rank, "rank(I_%d)", n)
	}

	for _, sh := range [][2]int{{1, 1}, {2, 3}, {4, 1}, {3, 3}} {
		z, err := matrix.NewZeros(sh[0], sh[1])
		require.NoError(s.T(), err)
		rank, err = ops.Rank(z)
		require.NoError(s.T(), err)
		require.Zero(s.T(), rank, "rank(0_%dx%d)", sh[0], sh[1])
	}
}

// TestRank_LowRankProducts: rank(B·C) == k for generic B (r×k), C (k×c).
func (s *ReduceSuite) TestRank_LowRankProducts() {
	cases := []struct{ r, c, k int }{
		{4, 4, 2}, {5, 3, 1}, {3, 6, 2}, {6, 6, 5},
	}
	for idx, tc := range cases {
		m := lowRank(s.T(), tc.r, tc.c, tc.k, int64(100+idx))
		rank, err := ops.Rank(m)
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.k, rank, "case %+v", tc)
	}
}

// TestRank_BelowTolerance: entries under PivotTolerance do not count.
func (s *ReduceSuite) TestRank_BelowTolerance() {
	m := mustDense(s.T(), [][]float64{{1, 0}, {0, ops.PivotTolerance / 10}})
	rank, err := ops.Rank(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, rank)
}

// TestNullity: rank-nullity over the column count.
func (s *ReduceSuite) TestNullity() {
	n, err := ops.Nullity(mustDense(s.T(), [][]float64{{1, 2, 3}, {2, 4, 6}}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, n)

	n, err = ops.Nullity(mustIdentity(s.T(), 3))
	require.NoError(s.T(), err)
	require.Zero(s.T(), n)
}

// TestTrace sums the diagonal and rejects non-square input.
func (s *ReduceSuite) TestTrace() {
	tr, err := ops.Trace(mustDense(s.T(), [][]float64{{1, 2}, {3, 4}}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, tr)

	tr, err = ops.Trace(hide{mustIdentity(s.T(), 4)})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, tr)

	_, err = ops.Trace(mustDense(s.T(), [][]float64{{1, 2, 3}}))
	require.ErrorIs(s.T(), err, matrix.ErrNotSquare)
}

func TestReduceSuite(t *testing.T) {
	suite.Run(t, new(ReduceSuite))
}
