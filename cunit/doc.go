// SPDX-License-Identifier: MIT

// Package cunit lifts unit.Unit into the complex plane.
//
// 🚀 What is a Complex?
//
//	Complex[T] = { re, im unit.Unit[T] }
//
//	Both components always share one quantity, scale and label: New
//	converts the imaginary part into the real part's tags. Impedance,
//	phasors and complex power are the typical use.
//
// ✨ Algebra
//
//   - Add/Sub convert the right operand component-wise into the left
//     operand's scale (same rule as unit.Unit.Add).
//   - Mul/Div follow the complex formulas and derive the quantity, scale
//     and label from the real parts, exactly as unit.Unit.Mul/Div do.
//   - Hybrid forms mix a Complex with a unit.Unit or a plain scalar.
//
// ⚙️ Math through complex128
//
//   - Abs keeps the unit, Arg returns radians, Polar builds from
//     magnitude and angle.
//   - Exp, Log, trigonometric and hyperbolic functions, Pow and friends
//     accept numerals only: the operand is converted to unity scale, handed
//     to math/cmplx and the result is a plain numeral. Re-attach a unit by
//     multiplication when needed. Sin, Cos and Tan convert an angle-scaled
//     operand (radian, degree) to radians first.
//   - PowN and Sqrt keep the unit algebra of the real part.
//
// Text: String prints "<re>+j<im>" or "<re>-j<|im|>"; Scan reads two tokens.
package cunit
