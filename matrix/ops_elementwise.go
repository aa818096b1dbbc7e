// SPDX-License-Identifier: MIT

// Package matrix: element-wise kernels shared by Vector and Dense.
//
// Purpose:
//   - Centralize the flat-slice loops behind Neg/Add/Sub/Scale/Hadamard/Div
//     so Vector and Dense never duplicate them.
//   - Host the tolerance comparison kernel behind AllClose/ApproxEqual.
//
// Determinism:
//   - Every loop walks 0..n-1 in order; outputs are freshly allocated.
package matrix

import (
	"fmt"
	"math"
)

// ewMap returns out[i] = f(src[i]) in a fresh slice.
// Complexity: O(n) time, O(n) space.
func ewMap(src []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(src))
	for idx, x := range src {
		out[idx] = f(x)
	}

	return out
}

// ewZip returns out[i] = f(a[i], b[i]) in a fresh slice.
// Callers guarantee len(a) == len(b) through the shape validators.
// Complexity: O(n) time, O(n) space.
func ewZip(a, b []float64, f func(x, y float64) float64) []float64 {
	out := make([]float64, len(a))
	for idx := range a {
		out[idx] = f(a[idx], b[idx])
	}

	return out
}

func ewAdd(x, y float64) float64 { return x + y }

func ewSub(x, y float64) float64 { return x - y }

func ewMul(x, y float64) float64 { return x * y }

// ewDot returns Σ a[i]*b[i] with a fixed accumulation order.
func ewDot(a, b []float64) float64 {
	sum := 0.0
	for idx := range a {
		sum += a[idx] * b[idx]
	}

	return sum
}

// ewScale returns alpha*src.
func ewScale(src []float64, alpha float64) []float64 {
	return ewMap(src, func(x float64) float64 { return x * alpha })
}

// ewEqual reports exact equality of two equal-length slices.
func ewEqual(a, b []float64) bool {
	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (a *Vector is a dim×1 column).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Complexity: Time O(r*c), Space O(1).
//
// AI-Hints:
//   - AllClose with small atol/rtol is the right way to compare results of
//     row reduction or inversion; Equals is exact by contract.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Fast path: both operands expose flat buffers.
	if fa, fb := flatOf(a), flatOf(b); fa != nil && fb != nil {
		for idx := range fa {
			if !closeEnough(fa[idx], fb[idx], rtol, atol) {
				return false, nil
			}
		}

		return true, nil
	}

	// Generic fallback via At (bounds-safe; fixed i→j order).
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind AllClose.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b { // covers equal infinities
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// flatOf returns the row-major backing buffer of the package's concrete
// types, or nil for foreign implementations. Read-only by convention.
func flatOf(m Matrix) []float64 {
	switch x := m.(type) {
	case *Dense:
		return x.data
	case *Vector:
		return x.data
	}

	return nil
}
