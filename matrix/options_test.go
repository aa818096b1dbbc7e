// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for functional options.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinal/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithNoValidateNaNInf(),
		nil,
		matrix.WithEpsilon(1e-6),
	)
	require.Equal(t, 1e-6, o.Epsilon())
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		eps := eps
		require.Panics(t, func() { _ = matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { _ = matrix.WithEpsilon(0) })
}

func TestWithEpsilon_DrivesApproxEqual(t *testing.T) {
	t.Parallel()

	v := MustVector(t, 1, 2)
	w := MustVector(t, 1.001, 2)

	ok, err := v.ApproxEqual(w)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = v.ApproxEqual(w, matrix.WithEpsilon(1e-2))
	require.NoError(t, err)
	require.True(t, ok)
}
