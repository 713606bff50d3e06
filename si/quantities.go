// SPDX-License-Identifier: MIT

package si

import "github.com/katalvlaran/strongunit/quantity"

// dims builds a quantity from integer exponents in base order:
// time, length, mass, current, temperature, substance, luminous intensity.
func dims(exps ...int64) quantity.Quantity {
	rs := make([]quantity.Rat, len(exps))
	for i, e := range exps {
		rs[i] = quantity.Int(e)
	}

	return quantity.MustNew(rs...)
}

// Base quantities. Plane and solid angle are numerals told apart by scale.
var (
	Numeral           = quantity.Numeral
	PlaneAngle        = quantity.Numeral
	SolidAngle        = quantity.Numeral
	Time              = dims(1)
	Length            = dims(0, 1)
	Mass              = dims(0, 0, 1)
	ElectricCurrent   = dims(0, 0, 0, 1)
	Temperature       = dims(0, 0, 0, 0, 1)
	SubstanceAmount   = dims(0, 0, 0, 0, 0, 1)
	LuminousIntensity = dims(0, 0, 0, 0, 0, 0, 1)
)

// Coherent quantities.
var (
	Area                  = dims(0, 2)
	Volume                = dims(0, 3)
	Velocity              = dims(-1, 1)
	Acceleration          = dims(-2, 1)
	Wavenumber            = dims(0, -1)
	Density               = dims(0, -3, 1)
	SurfaceDensity        = dims(0, -2, 1)
	SpecificVolume        = dims(0, 3, -1)
	CurrentDensity        = dims(0, -2, 0, 1)
	MagneticFieldStrength = dims(0, -1, 0, 1)
	Concentration         = dims(0, -3, 0, 0, 0, 1)
	Luminance             = dims(0, -2, 0, 0, 0, 0, 1)
)

// Derived quantities with special names.
var (
	Frequency         = dims(-1)
	Force             = dims(-2, 1, 1)
	Pressure          = dims(-2, -1, 1)
	Energy            = dims(-2, 2, 1)
	Power             = dims(-3, 2, 1)
	ElectricCharge    = dims(1, 0, 0, 1)
	Voltage           = dims(-3, 2, 1, -1)
	Capacitance       = dims(4, -2, -1, 2)
	Impedance         = dims(-3, 2, 1, -2)
	Conductance       = dims(3, -2, -1, 2)
	MagneticFlux      = dims(-2, 2, 1, -1)
	MagneticField     = dims(-2, 0, 1, -1)
	Inductance        = dims(-2, 2, 1, -2)
	LuminousFlux      = LuminousIntensity
	Illuminance       = dims(0, -2, 0, 0, 0, 0, 1)
	Radioactivity     = dims(-1)
	AbsorbedDose      = dims(-2, 2)
	EquivalentDose    = dims(-2, 2)
	CatalyticActivity = dims(-1, 0, 0, 0, 0, 1)
)

// Derived quantities expressed through special names.
var (
	DynamicViscosity    = dims(-1, -1, 1)
	AngularVelocity     = dims(-1)
	AngularAcceleration = dims(-2)
	Irradiance          = dims(-3, 0, 1)
	ElectricField       = dims(-3, 1, 1, -1)
	Permittivity        = dims(4, -3, -1, 2)
	Permeability        = dims(-2, 1, 1, -2)
	MolarEnergy         = dims(-2, 2, 1, 0, 0, -1)
)
