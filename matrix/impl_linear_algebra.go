// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic surface of Dense: element-wise
// addition, subtraction, scaling, Hadamard product, scalar division,
// transpose, matrix multiplication, linear transform and minors.
// All methods perform strict fail-fast validation, never mutate the receiver
// or the operands, and return clear errors on dimension mismatches.
//
// Notes:
//   - Element-wise loops live in ops_elementwise.go and are shared with Vector.
//   - All methods use the central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewVector    = "NewVector"
	opNewDense     = "NewDense"
	opNewDenseFrom = "NewDenseFrom"
	opVectorFrom   = "VectorFrom"
	opMatrixFrom   = "MatrixFrom"
	opComponent    = "Component"
	opNeg          = "Neg"
	opEquals       = "Equals"
	opApproxEqual  = "ApproxEqual"
	opAllClose     = "AllClose"
	opAdd          = "Add"
	opSub          = "Sub"
	opScale        = "Scale"
	opHadamard     = "Hadamard"
	opMul          = "Mul"
	opDiv          = "Div"
	opUnit         = "Unit"
	opDot          = "Dot"
	opCross        = "Cross"
	opAngle        = "Angle"
	opProject      = "ProjectOnto"
	opOuter        = "Outer"
	opTranspose    = "Transpose"
	opMatMul       = "MatMul"
	opLinTransform = "LinearTransform"
	opProduct      = "Product"
	opMinor        = "Minor"
	opIdentity     = "NewIdentity"
	opZeros        = "NewZeros"
)

// minorMinSize is the smallest square size that has a non-empty minor.
const minorMinSize = 2

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equals reports exact entry-wise equality.
// A shape mismatch (or a nil operand) yields false, not an error; this is the
// one comparison path that does not fail on mismatch.
func (m *Dense) Equals(other *Dense) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	if m.r != other.r || m.c != other.c {
		return false
	}

	return ewEqual(m.data, other.data)
}

// ApproxEqual reports |a_ij - b_ij| <= eps for all entries (eps via WithEpsilon).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) ApproxEqual(other *Dense, opts ...Option) (bool, error) {
	ok, err := AllClose(m, other, 0, gatherOptions(opts...).eps)
	if err != nil {
		return false, matrixErrorf(opApproxEqual, err)
	}

	return ok, nil
}

// binary validates two Dense operands for an element-wise op.
func binary(tag string, a, b *Dense) error {
	if a == nil || b == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch, both shapes in message).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if err := binary(opAdd, m, other); err != nil {
		return nil, err
	}

	return &Dense{r: m.r, c: m.c, data: ewZip(m.data, other.data, ewAdd)}, nil
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	if err := binary(opSub, m, other); err != nil {
		return nil, err
	}

	return &Dense{r: m.r, c: m.c, data: ewZip(m.data, other.data, ewSub)}, nil
}

// Hadamard computes the element-wise product C = A ⊙ B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Hadamard(other *Dense) (*Dense, error) {
	if err := binary(opHadamard, m, other); err != nil {
		return nil, err
	}

	return &Dense{r: m.r, c: m.c, data: ewZip(m.data, other.data, ewMul)}, nil
}

// Scale returns alpha*m.
func (m *Dense) Scale(alpha float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}

	return &Dense{r: m.r, c: m.c, data: ewScale(m.data, alpha)}, nil
}

// Mul is the overloaded multiply.
// Implementation:
//   - Stage 1: *Dense operand → Hadamard (same shape required).
//   - Stage 2: numeric scalar → Scale.
//   - Stage 3: nested numeric sequence → MatrixFrom → Hadamard.
//
// Errors:
//   - ErrDimensionMismatch on shape mismatch; ErrTypeKind for unsupported operands.
//
// AI-Hints:
//   - Mul is NOT the matrix product; use MatMul or Product for that.
func (m *Dense) Mul(operand any) (*Dense, error) {
	if other, ok := operand.(*Dense); ok {
		return m.Hadamard(other)
	}
	if alpha, ok := toScalar(operand); ok {
		return m.Scale(alpha)
	}
	other, err := MatrixFrom(operand)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return m.Hadamard(other)
}

// Div returns m / alpha entry-wise.
// Errors: ErrNilMatrix, ErrDivisionByZero when alpha == 0 exactly.
func (m *Dense) Div(alpha float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opDiv, ErrNilMatrix)
	}
	if alpha == 0 {
		return nil, fmt.Errorf("%s: (%d×%d) by 0: %w", opDiv, m.r, m.c, ErrDivisionByZero)
	}

	return &Dense{r: m.r, c: m.c, data: ewMap(m.data, func(x float64) float64 { return x / alpha })}, nil
}

// Quo is the overloaded divide: only numeric scalars are accepted.
// Errors: ErrTypeKind for a non-scalar divisor; otherwise as Div.
func (m *Dense) Quo(divisor any) (*Dense, error) {
	alpha, ok := toScalar(divisor)
	if !ok {
		return nil, fmt.Errorf("%s: divisor %T: %w", opDiv, divisor, ErrTypeKind)
	}

	return m.Div(alpha)
}

// T returns the (c×r) transpose with entry (i,j) = m(j,i).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) T() (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}

	return m.transpose(), nil
}

// transpose is the unchecked kernel behind T and MatMul.
func (m *Dense) transpose() *Dense {
	out := newDenseRaw(m.c, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// MatMul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate non-nil operands and A.Cols == B.Rows.
//   - Stage 2: transpose B once so each C[i,j] is a dot product of two
//     contiguous rows (A row i, Bᵀ row j).
//
// Inputs:
//   - A: (r × n), B: (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (message carries both shapes).
//
// Determinism:
//   - Fixed i→j loops, fixed k accumulation order inside ewDot.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) (the transposed copy of B).
func (m *Dense) MatMul(other *Dense) (*Dense, error) {
	if m == nil || other == nil {
		return nil, matrixErrorf(opMatMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	bt := other.transpose()
	n := m.c
	out := newDenseRaw(m.r, other.c)
	for i := 0; i < m.r; i++ {
		rowA := m.data[i*n : (i+1)*n]
		for j := 0; j < other.c; j++ {
			out.data[i*other.c+j] = ewDot(rowA, bt.data[j*n:(j+1)*n])
		}
	}

	return out, nil
}

// LinearTransform applies m to v: y_i = (row i of m) · v.
// Requires m.Cols() == v.Dim(); the result has dim m.Rows().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch ("(r×c) vs (1×dim)").
// Complexity: Time O(r*c), Space O(r).
func (m *Dense) LinearTransform(v *Vector) (*Vector, error) {
	if m == nil || v == nil {
		return nil, matrixErrorf(opLinTransform, ErrNilMatrix)
	}
	if m.c != len(v.data) {
		return nil, shapeErrorf(opLinTransform, m.r, m.c, 1, len(v.data), ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = ewDot(m.data[i*m.c:(i+1)*m.c], v.data)
	}

	return &Vector{data: out}, nil
}

// Minor returns the (n-1)×(n-1) submatrix of a square m with row i and
// column j removed. Its determinant is the (i,j) minor.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//   - ErrInvalidArgument for a 1×1 input (the minor would be empty).
//   - ErrOutOfRange for i or j outside [0, n).
func (m *Dense) Minor(i, j int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.r
	if n < minorMinSize {
		return nil, fmt.Errorf("%s: (%d×%d): %w", opMinor, n, n, ErrInvalidArgument)
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, denseErrorf(opMinor, i, j, ErrOutOfRange)
	}
	out := newDenseRaw(n-1, n-1)
	dst := 0
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		for c := 0; c < n; c++ {
			if c == j {
				continue
			}
			out.data[dst] = m.data[r*n+c]
			dst++
		}
	}

	return out, nil
}
