// SPDX-License-Identifier: MIT
// Package unit_test: shared fixtures.
//
// A minimal local catalog so the tests do not depend on package si.

package unit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strongunit/quantity"
	"github.com/katalvlaran/strongunit/scale"
	"github.com/katalvlaran/strongunit/unit"
)

// R is the representation used by the fixtures.
type R = float64

// tol is the absolute tolerance for values that pass through a conversion.
const tol = 1e-9

var (
	qLength = quantity.Of(quantity.Length, quantity.Int(1))
	qTime   = quantity.Of(quantity.Time, quantity.Int(1))
	qMass   = quantity.Of(quantity.Mass, quantity.Int(1))
	qTemp   = quantity.Of(quantity.Temperature, quantity.Int(1))

	meter     = unit.Define[R](qLength, scale.Unity, "_m")
	kilometer = unit.Define[R](qLength, scale.Kilo, "_km")
	second    = unit.Define[R](qTime, scale.Unity, "_s")
	hour      = unit.Define[R](qTime, scale.MustNew(3600, 1), "_h")
	gram      = unit.Define[R](qMass, scale.Unity, "_g")
	kilogram  = unit.Define[R](qMass, scale.Kilo, "_kg")
	kelvin    = unit.Define[R](qTemp, scale.Unity, "_K")
	kmPerHour = unit.Define[R](qLength.Div(qTime), scale.MustNew(5, 18), "_km*(_h)^-1")
	degree    = unit.DefinePrefix[R](scale.MustNew(1, 360), "deg_")
	kilo      = unit.DefinePrefix[R](scale.Kilo, "k_")
)

// requireValue asserts the quantity, scale and value of got.
func requireValue(t *testing.T, got unit.Unit[R], q quantity.Quantity, s scale.Scale, want R) {
	t.Helper()
	require.Equal(t, q, got.Quantity(), "quantity")
	require.Equal(t, s, got.Scale(), "scale %s", got.Scale())
	require.InDelta(t, want, got.Value(), tol, "value")
}

// mustTrue returns a check that fails the test on err and yields b, so a
// (bool, error) call can be passed straight through: mustTrue(t)(a.Less(b)).
func mustTrue(t *testing.T) func(bool, error) bool {
	return func(b bool, err error) bool {
		t.Helper()
		require.NoError(t, err)

		return b
	}
}
