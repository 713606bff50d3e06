// SPDX-License-Identifier: MIT

// Package si is the catalog of named quantities, units, prefixes and
// constants over the configured representation Real.
//
// 🚀 Contents
//
//   - quantities.go: base, coherent, derived and special quantities.
//   - units.go:      named units (Meter, Kilometer, Hertz, Ohm, Hour, ...).
//   - prefixes.go:   numeral prefixes Atto ... Exa.
//   - constants.go:  Pi, E, Zero, One and the imaginary unit J.
//
// ✨ Usage
//
//	d := si.Meter.Of(10)                  // literal-suffix style
//	t := si.Second.Of(2)
//	v := unit.Must(d.Div(t))              // 5*_m*(_s)^-1
//	kmh, _ := si.KilometerPerHour.From(v) // 18*_kmph
//
//	c := unit.Must(si.Micro.Of(312).Mul(si.Farad.Symbol())) // 312 µF
//
// ⚙️ Mass
//
//	The mass base is the gram, so Kilogram carries scale 1000. Every named
//	unit whose quantity involves mass carries the matching power of 1000, so
//	si.Newton.Of(1) is exactly one kg·m·s⁻² and ToSI reports coherent SI
//	values.
//
// Celsius shares the temperature quantity with Kelvin at unity scale:
// differences convert, absolute offsets are not modelled.
package si

// Real is the numeric representation of the catalog.
type Real = float64
