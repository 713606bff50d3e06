// SPDX-License-Identifier: MIT

package si

import (
	"github.com/katalvlaran/strongunit/quantity"
	"github.com/katalvlaran/strongunit/scale"
	"github.com/katalvlaran/strongunit/unit"
)

// Scales of the non-decimal units.
var (
	secondsPerMinute = scale.MustNew(60, 1)
	secondsPerHour   = scale.MustNew(3600, 1)
	secondsPerDay    = scale.MustNew(86400, 1)
	turnsPerDegree   = scale.MustNew(1, 360)
	kmPerHour        = scale.MustNew(1000, 3600)
	sqMetersPerHa    = scale.MustNew(10_000, 1)
	gramsPerTonne    = scale.Mega
	cubicMetersPerL  = scale.Milli
)

func def(q quantity.Quantity, s scale.Scale, label string) unit.Def[Real] {
	return unit.Define[Real](q, s, label)
}

// Base units.
var (
	Second    = def(Time, scale.Unity, "_s")
	Meter     = def(Length, scale.Unity, "_m")
	Gram      = def(Mass, scale.Unity, "_g")
	Kilogram  = def(Mass, scale.Kilo, "_kg")
	Ampere    = def(ElectricCurrent, scale.Unity, "_A")
	Kelvin    = def(Temperature, scale.Unity, "_K")
	Mole      = def(SubstanceAmount, scale.Unity, "_mol")
	Candela   = def(LuminousIntensity, scale.Unity, "_cd")
	Radian    = def(PlaneAngle, scale.Num2Rad, "_rad")
	Steradian = def(SolidAngle, scale.Num2Sr, "_sr")
)

// Coherent units.
var (
	SquareMeter            = def(Area, scale.Unity, "_m2")
	CubicMeter             = def(Volume, scale.Unity, "_m3")
	MeterPerSecond         = def(Velocity, scale.Unity, "_mps")
	MeterPerSecondSquared  = def(Acceleration, scale.Unity, "_mps2")
	ReciprocalMeter        = def(Wavenumber, scale.Unity, "_m_1")
	GramPerCubicMeter      = def(Density, scale.Unity, "_gpm3")
	KilogramPerCubicMeter  = def(Density, scale.Kilo, "_kgpm3")
	GramPerSquareMeter     = def(SurfaceDensity, scale.Unity, "_gpm2")
	KilogramPerSquareMeter = def(SurfaceDensity, scale.Kilo, "_kgpm2")
	CubicMeterPerGram      = def(SpecificVolume, scale.Unity, "_m3pg")
	CubicMeterPerKilogram  = def(SpecificVolume, scale.Milli, "_m3pkg")
	AmperePerSquareMeter   = def(CurrentDensity, scale.Unity, "_Apm2")
	AmperePerMeter         = def(MagneticFieldStrength, scale.Unity, "_Apm")
	MolePerCubicMeter      = def(Concentration, scale.Unity, "_molpm3")
	CandelaPerSquareMeter  = def(Luminance, scale.Unity, "_cdpm2")
)

// Derived units with special names. Mass-bearing units carry the power of
// 1000 that turns grams into kilograms.
var (
	Hertz     = def(Frequency, scale.Unity, "_Hz")
	Newton    = def(Force, scale.Kilo, "_N")
	Pascal    = def(Pressure, scale.Kilo, "_Pa")
	Joule     = def(Energy, scale.Kilo, "_J")
	Watt      = def(Power, scale.Kilo, "_W")
	Coulomb   = def(ElectricCharge, scale.Unity, "_C")
	Volt      = def(Voltage, scale.Kilo, "_V")
	Farad     = def(Capacitance, scale.Milli, "_F")
	Ohm       = def(Impedance, scale.Kilo, "_ohm")
	Siemens   = def(Conductance, scale.Milli, "_S")
	Weber     = def(MagneticFlux, scale.Kilo, "_Wb")
	Tesla     = def(MagneticField, scale.Kilo, "_T")
	Henry     = def(Inductance, scale.Kilo, "_H")
	Celsius   = def(Temperature, scale.Unity, "_Cdeg")
	Lumen     = def(LuminousFlux, scale.Unity, "_lm")
	Lux       = def(Illuminance, scale.Unity, "_lx")
	Becquerel = def(Radioactivity, scale.Unity, "_Bq")
	Gray      = def(AbsorbedDose, scale.Unity, "_Gy")
	Sievert   = def(EquivalentDose, scale.Unity, "_Sv")
	Katal     = def(CatalyticActivity, scale.Unity, "_kat")
)

// Units expressed through special names.
var (
	PascalSecond           = def(DynamicViscosity, scale.Kilo, "_Pas")
	RadianPerSecond        = def(AngularVelocity, scale.Num2Rad, "_radps")
	RadianPerSecondSquared = def(AngularAcceleration, scale.Num2Rad, "_radps2")
	WattPerSquareMeter     = def(Irradiance, scale.Kilo, "_Wpm2")
	VoltPerMeter           = def(ElectricField, scale.Kilo, "_Vpm")
	FaradPerMeter          = def(Permittivity, scale.Milli, "_Fpm")
	HenryPerMeter          = def(Permeability, scale.Kilo, "_Hpm")
	JoulePerMole           = def(MolarEnergy, scale.Kilo, "_Jpmol")
)

// Non-SI units accepted for use with SI, plus common multiples.
var (
	Kilometer        = def(Length, scale.Kilo, "_km")
	KilometerPerHour = def(Velocity, kmPerHour, "_kmph")
	Minute           = def(Time, secondsPerMinute, "_min")
	Hour             = def(Time, secondsPerHour, "_h")
	Day              = def(Time, secondsPerDay, "_d")
	Degree           = def(PlaneAngle, turnsPerDegree, "_deg")
	Hectare          = def(Area, sqMetersPerHa, "_ha")
	Liter            = def(Volume, cubicMetersPerL, "_L")
	Tonne            = def(Mass, gramsPerTonne, "_t")
)
