// Package lvlinal is a small linear-algebra value library: immutable vectors
// and dense matrices with strict dimensional safety, plus a Gauss–Jordan
// row-reduction engine.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/      Vector and Dense values, arithmetic, geometry, conversions
//	matrix/ops/  RREF, Rank, Trace, Inverse, Solve, Determinant
//
// Quick example:
//
//	A, _ := matrix.NewDense([][]float64{{2, 4}, {1, 3}})
//	R, _ := ops.RREF(A) // [[1 0] [0 1]]
//	r, _ := ops.Rank(A) // 2
//
//	go get github.com/katalvlaran/lvlinal
package lvlinal
