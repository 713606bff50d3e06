// SPDX-License-Identifier: MIT

package si_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strongunit/cunit"
	"github.com/katalvlaran/strongunit/si"
	"github.com/katalvlaran/strongunit/unit"
)

func TestVelocity(t *testing.T) {
	v := must(t)(si.Meter.Of(10).Div(si.Second.Of(2)))
	assert.True(t, si.MeterPerSecond.Is(v))

	kmh, err := si.KilometerPerHour.From(v)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, kmh.Value(), tol)

	back, err := si.MeterPerSecond.From(kmh)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, back.Value(), tol)
}

func TestTemperature(t *testing.T) {
	sum := must(t)(si.Kelvin.Of(300).Sub(si.Celsius.Of(273.15)))
	assert.InDelta(t, 26.85, sum.Value(), tol)

	_, err := si.Kelvin.Of(1).Add(si.Meter.Of(1))
	assert.ErrorIs(t, err, unit.ErrQuantityMismatch)
}

func TestPendulum(t *testing.T) {
	g := si.MeterPerSecondSquared.Of(9.80665)
	ratio := must(t)(si.Meter.Of(1).Div(g))
	root := must(t)(unit.Sqrt(ratio))
	period := must(t)(si.Pi().MulScalar(2).Mul(root))

	s, err := si.Second.From(period)
	require.NoError(t, err)
	assert.InDelta(t, 2.0064092925890407, s.Value(), tol)
}

// rlc returns the series RLC impedance at frequency f.
func rlc(t *testing.T, r, l, c, f unit.Unit[si.Real]) cunit.Complex[si.Real] {
	t.Helper()
	w := must(t)(si.Pi().MulScalar(2).Mul(f))

	jwl, err := si.J().MulUnit(must(t)(w.Mul(l)))
	require.NoError(t, err)
	jwc, err := si.J().DivUnit(must(t)(w.Mul(c)))
	require.NoError(t, err)

	z, err := cunit.FromReal(r).Add(jwl)
	require.NoError(t, err)
	z, err = z.Sub(jwc)
	require.NoError(t, err)

	return z
}

func TestRLCCircuit(t *testing.T) {
	r := si.Ohm.Of(12)
	l := si.Henry.Of(0.025)
	c := must(t)(si.Micro.Of(312).Mul(si.Farad.Symbol()))

	lc := must(t)(l.Mul(c))
	root := must(t)(unit.Sqrt(lc))
	f0 := unit.ScalarDiv(1, must(t)(si.Pi().MulScalar(2).Mul(root)))
	assert.Equal(t, si.Frequency, f0.Quantity())

	hz, err := si.Hertz.From(f0)
	require.NoError(t, err)
	assert.InDelta(t, 56.98661101250287, hz.Value(), 1e-9)

	// At resonance the reactances cancel.
	z := rlc(t, r, l, c, hz)
	assert.Equal(t, si.Impedance, z.Real().Quantity())
	assert.Equal(t, si.Ohm.Scale(), z.Real().Scale())
	abs, err := si.Ohm.From(cunit.Abs(z))
	require.NoError(t, err)
	assert.InDelta(t, 12.0, abs.Value(), 1e-9)
	assert.InDelta(t, 0.0, z.Imag().Value(), 1e-9)

	z = rlc(t, r, l, c, si.Hertz.Of(100))
	abs, err = si.Ohm.From(cunit.Abs(z))
	require.NoError(t, err)
	assert.InDelta(t, 16.015777368840958, abs.Value(), 1e-9)

	phase := cunit.Arg(z)
	assert.True(t, si.Radian.Is(phase))
	assert.InDelta(t, math.Atan2(z.Imag().Value(), z.Real().Value()), phase.Value(), 1e-12)
}

func TestTrigInDegrees(t *testing.T) {
	s, err := unit.Sin(si.Degree.Of(30))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Value(), tol)

	c, err := unit.Cos(si.Radian.Of(math.Pi))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, c.Value(), tol)
}
