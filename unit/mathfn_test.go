// SPDX-License-Identifier: MIT

package unit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strongunit/scale"
	"github.com/katalvlaran/strongunit/unit"
)

func TestTrig_AngleScales(t *testing.T) {
	tests := []struct {
		name string
		fn   func(unit.Unit[R]) (unit.Unit[R], error)
		in   unit.Unit[R]
		want float64
	}{
		{"sin radian", unit.Sin[R], unit.Radian[R](math.Pi / 2), 1},
		{"cos radian", unit.Cos[R], unit.Radian[R](0), 1},
		{"tan radian", unit.Tan[R], unit.Radian[R](math.Pi / 4), 1},
		{"sin degree", unit.Sin[R], degree.Of(90), 1},
		{"cos degree", unit.Cos[R], degree.Of(60), 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got.Value(), 1e-12)
			assert.True(t, got.IsNumeral())
			assert.Equal(t, unit.NumeralLabel, got.Label())
		})
	}
}

func TestNumeralFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(unit.Unit[R]) (unit.Unit[R], error)
		in   R
		want float64
	}{
		{"exp", unit.Exp[R], 0, 1},
		{"log", unit.Log[R], math.E, 1},
		{"log10", unit.Log10[R], 1000, 3},
		{"asin", unit.Asin[R], 1, math.Pi / 2},
		{"acos", unit.Acos[R], 1, 0},
		{"atan", unit.Atan[R], 1, math.Pi / 4},
		{"sinh", unit.Sinh[R], 0, 0},
		{"cosh", unit.Cosh[R], 0, 1},
		{"tanh", unit.Tanh[R], 0, 0},
		{"asinh", unit.Asinh[R], 0, 0},
		{"acosh", unit.Acosh[R], 1, 0},
		{"atanh", unit.Atanh[R], 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(unit.Numeral(tc.in))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got.Value(), 1e-12)

			_, err = tc.fn(meter.Of(tc.in))
			assert.ErrorIs(t, err, unit.ErrNotNumeral)
		})
	}
}

func TestNumeralFunctions_ConvertPrefixedOperand(t *testing.T) {
	// 3 kilo is the numeral 3000.
	got, err := unit.Log10(kilo.Of(3))
	require.NoError(t, err)
	assert.InDelta(t, math.Log10(3000), got.Value(), 1e-12)

	// A ratio of lengths is a numeral.
	ratio := unit.Must(kilometer.Of(1).Div(meter.Of(10)))
	got, err = unit.Log10(ratio)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.Value(), 1e-12)
}

func TestTrig_RejectsPlainNumbers(t *testing.T) {
	for _, fn := range []func(unit.Unit[R]) (unit.Unit[R], error){unit.Sin[R], unit.Cos[R], unit.Tan[R]} {
		_, err := fn(unit.Numeral[R](math.Pi / 2))
		assert.ErrorIs(t, err, unit.ErrNotAngle)

		_, err = fn(kilo.Of(1))
		assert.ErrorIs(t, err, unit.ErrNotAngle)

		_, err = fn(unit.Steradian[R](1))
		assert.ErrorIs(t, err, unit.ErrNotAngle)

		_, err = fn(meter.Of(1))
		assert.ErrorIs(t, err, unit.ErrNotNumeral)
	}
}

func TestInverseTrig_ReturnsRadians(t *testing.T) {
	for _, x := range []R{-0.9, -0.5, 0, 0.3, 0.5, 0.99} {
		a, err := unit.Asin(unit.Numeral(x))
		require.NoError(t, err)
		assert.Equal(t, scale.Num2Rad, a.Scale())
		assert.Equal(t, unit.RadianLabel, a.Label())

		s, err := unit.Sin(a)
		require.NoError(t, err)
		assert.InDelta(t, x, s.Value(), 1e-12, "sin(asin(%v))", x)

		c, err := unit.Cos(unit.Must(unit.Acos(unit.Numeral(x))))
		require.NoError(t, err)
		assert.InDelta(t, x, c.Value(), 1e-12, "cos(acos(%v))", x)

		tn, err := unit.Tan(unit.Must(unit.Atan(unit.Numeral(x))))
		require.NoError(t, err)
		assert.InDelta(t, x, tn.Value(), 1e-12, "tan(atan(%v))", x)
	}

	// Degrees convert straight from an arc result.
	a := unit.Must(unit.Asin(unit.Numeral[R](0.5)))
	deg, err := a.In(degree.Symbol())
	require.NoError(t, err)
	assert.InDelta(t, 30.0, deg.Value(), 1e-9)
}
