// SPDX-License-Identifier: MIT

package unit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strongunit/quantity"
	"github.com/katalvlaran/strongunit/scale"
	"github.com/katalvlaran/strongunit/unit"
)

func TestAdd_CommutativeAcrossScales(t *testing.T) {
	a, b, c := meter.Of(500), kilometer.Of(1.5), meter.Of(250)

	ab, err := a.Add(b)
	require.NoError(t, err)
	requireValue(t, ab, qLength, scale.Unity, 2000)
	assert.Equal(t, "_m", ab.Label(), "result keeps the left operand's label")

	ba, err := b.Add(a)
	require.NoError(t, err)
	requireValue(t, ba, qLength, scale.Kilo, 2)
	assert.True(t, mustTrue(t)(ab.ApproxEqual(ba)))

	left, err := unit.Must(a.Add(b)).Add(c)
	require.NoError(t, err)
	right, err := a.Add(unit.Must(b.Add(c)))
	require.NoError(t, err)
	assert.True(t, mustTrue(t)(left.ApproxEqual(right)))
	assert.InDelta(t, 2250.0, left.Value(), tol)
}

func TestSubAssign(t *testing.T) {
	d := kilometer.Of(2)
	require.NoError(t, d.SubAssign(meter.Of(500)))
	assert.InDelta(t, 1.5, d.Value(), tol)
	require.NoError(t, d.AddAssign(meter.Of(250)))
	assert.InDelta(t, 1.75, d.Value(), tol)
}

func TestMod_TruncatesOperands(t *testing.T) {
	r, err := meter.Of(7.9).Mod(meter.Of(2.5))
	require.NoError(t, err)
	assert.Equal(t, R(1), r.Value(), "7 %% 2 after truncation")

	r, err = meter.Of(1700).Mod(kilometer.Of(1))
	require.NoError(t, err)
	assert.Equal(t, R(700), r.Value())

	r, err = meter.Of(-7).Mod(meter.Of(3))
	require.NoError(t, err)
	assert.Equal(t, R(-1), r.Value(), "sign follows the dividend")

	// 300 m is 0.3 km, which truncates to a zero divisor.
	_, err = kilometer.Of(1).Mod(meter.Of(300))
	assert.ErrorIs(t, err, unit.ErrModByZero)

	d := meter.Of(10)
	require.NoError(t, d.ModAssign(meter.Of(4)))
	assert.Equal(t, R(2), d.Value())
}

func TestMod_RejectsOutOfRange(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b unit.Unit[R]
	}{
		{"nan dividend", meter.Of(R(math.NaN())), meter.Of(2)},
		{"inf dividend", meter.Of(R(math.Inf(1))), meter.Of(2)},
		{"inf divisor", meter.Of(5), meter.Of(R(math.Inf(-1)))},
		{"huge dividend", meter.Of(1e19), meter.Of(3)},
		{"huge after conversion", meter.Of(1), kilometer.Of(1e17)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.a.Mod(tc.b)
			assert.ErrorIs(t, err, unit.ErrModRange)
		})
	}

	r, err := meter.Of(-9.2e18).Mod(meter.Of(10))
	require.NoError(t, err)
	assert.True(t, r.Value() <= 0)
}

func TestIncDec(t *testing.T) {
	d := kilometer.Of(1)
	d.Inc()
	d.Inc()
	assert.Equal(t, R(3), d.Value())
	d.Dec()
	assert.Equal(t, R(2), d.Value())
	assert.True(t, kilometer.Is(d))
}

func TestScalarOps(t *testing.T) {
	d := meter.Of(4)

	assert.Equal(t, meter.Of(10), d.MulScalar(2.5))
	assert.Equal(t, meter.Of(1), d.DivScalar(4))
	assert.Equal(t, meter.Of(-4), d.Neg())

	f := unit.ScalarDiv(10, second.Of(2))
	requireValue(t, f, qTime.Inv(), scale.Unity, 5)
	assert.Equal(t, "u_*(_s)^-1", f.Label())

	inv := hour.Of(4).Inv()
	requireValue(t, inv, qTime.Inv(), scale.MustNew(1, 3600), 0.25)
}

func TestMaxMin(t *testing.T) {
	hi, err := unit.Max(meter.Of(500), kilometer.Of(1))
	require.NoError(t, err)
	requireValue(t, hi, qLength, scale.Unity, 1000)
	assert.Equal(t, "_m", hi.Label())

	lo, err := unit.Min(kilometer.Of(1), meter.Of(500))
	require.NoError(t, err)
	requireValue(t, lo, qLength, scale.Kilo, 0.5)
	assert.Equal(t, "_km", lo.Label())

	same, err := unit.Max(kilometer.Of(2), meter.Of(5))
	require.NoError(t, err)
	assert.Equal(t, kilometer.Of(2), same)
}

func TestRounding(t *testing.T) {
	d := meter.Of(-2.5)
	assert.Equal(t, meter.Of(2.5), unit.Abs(d))
	assert.Equal(t, meter.Of(-2), unit.Ceil(d))
	assert.Equal(t, meter.Of(-3), unit.Floor(d))
	assert.Equal(t, meter.Of(-3), unit.Round(d))
	assert.Equal(t, meter.Of(3), unit.Round(meter.Of(2.5)))
}

func TestDerivedQuantityNeedsNoDeclaration(t *testing.T) {
	v := unit.Must(meter.Of(20).Div(second.Of(4)))
	d := unit.Must(v.Mul(second.Of(3)))

	assert.Equal(t, qLength, d.Quantity())
	assert.Equal(t, quantity.Int(0), d.Quantity().Exponent(quantity.Time))
	assert.InDelta(t, 15.0, d.Value(), tol)

	// The derived length adds to a declared one.
	sum, err := meter.Of(5).Add(d)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, sum.Value(), tol)
}
