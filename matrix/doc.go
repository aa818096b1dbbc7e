// Package matrix provides immutable linear-algebra values: Vector (R^n) and
// Dense (R^(m×n)).
//
// The matrix package provides:
//
//   - Vector with component-wise arithmetic, Dot, Cross, Magnitude, Unit,
//     Angle, ProjectOnto and Outer.
//   - Dense with element-wise arithmetic, Hadamard product, transpose,
//     MatMul, LinearTransform, Minor, NewIdentity and NewZeros.
//   - The read-only Matrix view shared by both (a Vector is a column), used
//     by AllClose and by the row-reduction engine in matrix/ops.
//   - Edge conversions (VectorFrom, MatrixFrom, ScalarFrom) that turn plain
//     Go numeric slices into values, reporting ErrTypeKind otherwise.
//
// Values never change after construction. Every operation returns a new value
// or a sentinel error (match with errors.Is); nothing panics on user input.
// Concurrent readers need no synchronization.
//
// Equality is exact by contract (Equals); use ApproxEqual or AllClose for
// results of floating-point pipelines.
//
// See the examples in this package and matrix/ops for usage patterns.
package matrix
