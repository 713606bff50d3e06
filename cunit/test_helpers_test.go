// SPDX-License-Identifier: MIT

package cunit_test

import (
	"github.com/katalvlaran/strongunit/cunit"
	"github.com/katalvlaran/strongunit/quantity"
	"github.com/katalvlaran/strongunit/scale"
	"github.com/katalvlaran/strongunit/unit"
)

type R = float64

const tol = 1e-12

var (
	qLength = quantity.Of(quantity.Length, quantity.Int(1))
	qTime   = quantity.Of(quantity.Time, quantity.Int(1))

	meter     = unit.Define[R](qLength, scale.Unity, "_m")
	kilometer = unit.Define[R](qLength, scale.Kilo, "_km")
	second    = unit.Define[R](qTime, scale.Unity, "_s")
	hour      = unit.Define[R](qTime, scale.MustNew(3600, 1), "_h")
	kilo      = unit.DefinePrefix[R](scale.Kilo, "k_")
	degree    = unit.DefinePrefix[R](scale.MustNew(1, 360), "deg_")
)

// cm builds re + j·im in meters.
func cm(re, im R) cunit.Complex[R] {
	return cunit.Must(cunit.New(meter.Of(re), meter.Of(im)))
}

// cn builds a numeral re + j·im.
func cn(re, im R) cunit.Complex[R] {
	return cunit.FromComplex(complex(re, im), unit.Numeral[R](0))
}
