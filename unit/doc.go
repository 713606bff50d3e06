// SPDX-License-Identifier: MIT

// Package unit provides Unit[T], a floating-point value tagged with a physical
// quantity, a rational scale and a display label.
//
// 🚀 What is a Unit?
//
//	Unit[T] = { value T, quantity.Quantity, scale.Scale, label }
//
//	Only the value is numeric payload. The quantity decides which values may
//	be combined; the scale decides how a stored value converts between
//	units of the same quantity (meter ↔ kilometer); the label is cosmetic.
//
// ✨ Key rules:
//
//   - Add, Sub, Mod and every comparison require identical quantities; the
//     right operand is converted into the left operand's scale first.
//   - Mul and Div accept any quantities and derive the result's quantity,
//     scale and label ("A*B", "A*(B)^-1").
//   - Pow, Sqrt and friends derive the result the same way; Sqrt requires a
//     perfect-square scale.
//   - Transcendental functions accept numerals only. Sin, Cos and Tan take
//     angles (radian, degree or another non-decimal scale) and convert them
//     to radians; Asin, Acos and Atan return radians.
//   - Conversion multiplies by up/down ratios in a 128-bit big.Float, then
//     narrows back to T.
//
// ⚙️ Errors instead of compile failures:
//
//	Go cannot compute quantities in the type system, so a mismatch is
//	reported by the first combining call as ErrQuantityMismatch (and
//	friends). Use Must where a mismatch is a programming error:
//
//		d := unit.Must(speed.Mul(elapsed))
//
// Representation:
//
//	T is constrained to floating-point kinds; boolean, character and
//	integer representations do not compile.
//
// Text:
//
//	String prints "<value>*<label>" with six significant digits; Scan reads
//	one whitespace-delimited float token. Describe adds the exponent vector
//	and scale for diagnostics.
package unit
