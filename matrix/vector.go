// SPDX-License-Identifier: MIT

// Package matrix - Vector: immutable fixed-dimension tuple in R^n.
//
// Purpose:
//   - Component-wise arithmetic (Neg/Add/Sub/Scale/Hadamard/Div) and the
//     overloaded Mul/Quo entry points.
//   - Geometry: Magnitude, Unit, Dot, Cross, Angle, ProjectOnto, Outer.
//
// Contract:
//   - dim >= 1, fixed at construction; components are copied in and never
//     mutated; every operation returns a new *Vector.
//   - Binary operations require equal dim, else ErrDimensionMismatch.
//   - A *Vector is also a read-only dim×1 Matrix view (column).
//
// Complexity quicksheet:
//   - All operations O(dim) except Outer O(dim·other.dim).

package matrix

import (
	"fmt"
	"math"
)

// radToDeg converts radians to degrees in Angle.
const radToDeg = 180 / math.Pi

// crossDim is the only dimension for which Cross is defined.
const crossDim = 3

// Vector is an immutable ordered tuple of finite float64 components.
// The zero value is not usable; build with NewVector or VectorFrom.
type Vector struct {
	data []float64 // len == dim >= 1; never aliased outside the package
}

// NewVector creates a Vector holding a copy of components.
//
// Errors:
//   - ErrEmptyInput if len(components) == 0.
//   - ErrNaNInf if a component is NaN/±Inf (unless WithNoValidateNaNInf).
//
// Complexity: Time O(n), Space O(n).
func NewVector(components []float64, opts ...Option) (*Vector, error) {
	return newVectorOwned(opNewVector, append([]float64(nil), components...), gatherOptions(opts...))
}

// newVectorOwned validates comps under policy and takes ownership of it.
func newVectorOwned(tag string, comps []float64, policy Options) (*Vector, error) {
	if len(comps) == 0 {
		return nil, matrixErrorf(tag, ErrEmptyInput)
	}
	if err := validateFinite(tag, comps, policy); err != nil {
		return nil, err
	}

	return &Vector{data: comps}, nil
}

// NewZeroVector returns the dim-dimensional zero vector.
// Errors: ErrInvalidArgument if dim <= 0.
func NewZeroVector(dim int) (*Vector, error) {
	if err := ValidatePositive(dim); err != nil {
		return nil, matrixErrorf(opNewVector, err)
	}

	return &Vector{data: make([]float64, dim)}, nil
}

// Dim returns the number of components (0 for a nil receiver).
func (v *Vector) Dim() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Len is an alias for Dim.
func (v *Vector) Len() int { return v.Dim() }

// Rows reports dim: a Vector is viewed as a column.
func (v *Vector) Rows() int { return v.Dim() }

// Cols reports 1 for a non-nil Vector.
func (v *Vector) Cols() int {
	if v == nil {
		return 0
	}

	return 1
}

// At reads the column view: j must be 0.
func (v *Vector) At(i, j int) (float64, error) {
	if j != 0 {
		return 0, fmt.Errorf("Vector.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.Component(i)
}

// Component returns the i-th component.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (v *Vector) Component(i int) (float64, error) {
	if v == nil {
		return 0, matrixErrorf(opComponent, ErrNilMatrix)
	}
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d) dim %d: %w", opComponent, i, len(v.data), ErrOutOfRange)
	}

	return v.data[i], nil
}

// Components returns a copy of the components; mutating it does not affect v.
func (v *Vector) Components() []float64 {
	if v == nil {
		return nil
	}

	return append([]float64(nil), v.data...)
}

// Neg returns the component-wise negation -v.
func (v *Vector) Neg() (*Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opNeg, ErrNilMatrix)
	}

	return &Vector{data: ewMap(v.data, func(x float64) float64 { return -x })}, nil
}

// Equals reports exact component-wise equality.
// Unlike Dense.Equals, a dim mismatch is an error, not false.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) Equals(w *Vector) (bool, error) {
	if err := validateVectors(opEquals, v, w); err != nil {
		return false, err
	}

	return ewEqual(v.data, w.data), nil
}

// ApproxEqual reports |v_i - w_i| <= eps for every component, eps from
// WithEpsilon (DefaultEpsilon otherwise).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) ApproxEqual(w *Vector, opts ...Option) (bool, error) {
	if err := validateVectors(opApproxEqual, v, w); err != nil {
		return false, err
	}

	return AllClose(v, w, 0, gatherOptions(opts...).eps)
}

// Magnitude returns the Euclidean norm sqrt(Σ x_i²); always >= 0.
// A nil receiver has magnitude 0.
func (v *Vector) Magnitude() float64 {
	if v == nil {
		return 0
	}

	return math.Sqrt(ewDot(v.data, v.data))
}

// Add returns v + w.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if err := validateVectors(opAdd, v, w); err != nil {
		return nil, err
	}

	return &Vector{data: ewZip(v.data, w.data, ewAdd)}, nil
}

// Sub returns v - w.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if err := validateVectors(opSub, v, w); err != nil {
		return nil, err
	}

	return &Vector{data: ewZip(v.data, w.data, ewSub)}, nil
}

// Scale returns alpha*v.
func (v *Vector) Scale(alpha float64) (*Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}

	return &Vector{data: ewScale(v.data, alpha)}, nil
}

// Hadamard returns the component-wise product v ⊙ w.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) Hadamard(w *Vector) (*Vector, error) {
	if err := validateVectors(opHadamard, v, w); err != nil {
		return nil, err
	}

	return &Vector{data: ewZip(v.data, w.data, ewMul)}, nil
}

// Mul is the overloaded multiply.
// Implementation:
//   - Stage 1: *Vector operand → Hadamard.
//   - Stage 2: numeric scalar (any int/float kind) → Scale.
//   - Stage 3: numeric sequence → converted at the edge (VectorFrom) → Hadamard.
//
// Errors:
//   - ErrTypeKind for anything else; ErrDimensionMismatch from Hadamard.
func (v *Vector) Mul(operand any) (*Vector, error) {
	if w, ok := operand.(*Vector); ok {
		return v.Hadamard(w)
	}
	if alpha, ok := toScalar(operand); ok {
		return v.Scale(alpha)
	}
	w, err := VectorFrom(operand)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return v.Hadamard(w)
}

// Div returns v / alpha component-wise.
// Errors: ErrNilMatrix, ErrDivisionByZero when alpha == 0 exactly.
func (v *Vector) Div(alpha float64) (*Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opDiv, ErrNilMatrix)
	}
	if alpha == 0 {
		return nil, fmt.Errorf("%s: dim %d by 0: %w", opDiv, len(v.data), ErrDivisionByZero)
	}

	return &Vector{data: ewMap(v.data, func(x float64) float64 { return x / alpha })}, nil
}

// Quo is the overloaded divide: only numeric scalars are accepted.
// Errors: ErrTypeKind for a non-scalar divisor; otherwise as Div.
func (v *Vector) Quo(divisor any) (*Vector, error) {
	alpha, ok := toScalar(divisor)
	if !ok {
		return nil, fmt.Errorf("%s: divisor %T: %w", opDiv, divisor, ErrTypeKind)
	}

	return v.Div(alpha)
}

// Unit returns v / |v|.
// Errors: ErrDegenerateInput when |v| == 0 exactly.
func (v *Vector) Unit() (*Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opUnit, ErrNilMatrix)
	}
	mag := v.Magnitude()
	if mag == 0 {
		return nil, matrixErrorf(opUnit, ErrDegenerateInput)
	}

	return v.Div(mag)
}

// Dot returns Σ v_i*w_i.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if err := validateVectors(opDot, v, w); err != nil {
		return 0, err
	}

	return ewDot(v.data, w.data), nil
}

// Cross returns the 3D cross product v × w:
//
//	(a1*b2 - a2*b1, -(a0*b2 - a2*b0), a0*b1 - a1*b0)
//
// Errors: ErrDimensionMismatch unless both operands have dim 3.
func (v *Vector) Cross(w *Vector) (*Vector, error) {
	if err := validateVectors(opCross, v, w); err != nil {
		return nil, err
	}
	if len(v.data) != crossDim {
		return nil, fmt.Errorf("%s: dim %d, want %d: %w", opCross, len(v.data), crossDim, ErrDimensionMismatch)
	}
	a, b := v.data, w.data

	return &Vector{data: []float64{
		a[1]*b[2] - a[2]*b[1],
		-(a[0]*b[2] - a[2]*b[0]),
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Angle returns the angle between v and w in radians (degrees when
// useDegrees), computed as acos(clamp(v·w / (|v||w|), -1, 1)).
// The clamp absorbs rounding overshoot for (anti)parallel inputs.
//
// Errors: ErrDimensionMismatch; ErrDegenerateInput if either magnitude is 0.
func (v *Vector) Angle(w *Vector, useDegrees bool) (float64, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return 0, matrixErrorf(opAngle, err)
	}
	denom := v.Magnitude() * w.Magnitude()
	if denom == 0 {
		return 0, matrixErrorf(opAngle, ErrDegenerateInput)
	}
	cos := math.Max(-1, math.Min(1, dot/denom))
	theta := math.Acos(cos)
	if useDegrees {
		return theta * radToDeg, nil
	}

	return theta, nil
}

// ProjectOnto returns the orthogonal projection of v onto the line spanned by w:
// û * (v·û) with û = w.Unit().
//
// Errors: ErrDimensionMismatch; ErrDegenerateInput if w is the zero vector.
func (v *Vector) ProjectOnto(w *Vector) (*Vector, error) {
	if err := validateVectors(opProject, v, w); err != nil {
		return nil, err
	}
	u, err := w.Unit()
	if err != nil {
		return nil, matrixErrorf(opProject, err)
	}

	return u.Scale(ewDot(v.data, u.data))
}

// Outer returns the (v.Dim() × w.Dim()) matrix with entry (i,j) = v_i*w_j.
// Dims may differ.
func (v *Vector) Outer(w *Vector) (*Dense, error) {
	if v == nil || w == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	r, c := len(v.data), len(w.data)
	out := newDenseRaw(r, c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out.data[base+j] = v.data[i] * w.data[j]
		}
	}

	return out, nil
}
