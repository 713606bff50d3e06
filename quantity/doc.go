// SPDX-License-Identifier: MIT

// Package quantity models the physical dimension of a value as a fixed-size
// vector of rational exponents over the base dimensions.
//
// 🚀 What is a Quantity?
//
//	A Quantity is an exponent vector indexed by Base:
//	  Time, Length, Mass, Current, Temperature, Substance, LuminousIntensity
//	plus three reserved slots for future bases (NumBases = 10 in total).
//	Velocity is Length¹·Time⁻¹, impedance is Time⁻³·Length²·Mass·Current⁻².
//
// ✨ Algebra
//
//   - Mul adds exponents   (product of two values).
//   - Div subtracts them   (quotient).
//   - Pow scales them by a rational (integer powers, roots).
//   - Numeral is the all-zero vector: a dimensionless value.
//
// Exponents are Rat values: normalized rationals whose zero value is 0, so a
// Quantity is comparable with == and usable as a map key.
//
// ⚙️ Usage:
//
//	velocity := quantity.Of(quantity.Length, quantity.Int(1)).
//		Div(quantity.Of(quantity.Time, quantity.Int(1)))
//	fmt.Println(velocity) // T^-1·L
//
// The package carries no scale and no value; see packages scale and unit.
package quantity
