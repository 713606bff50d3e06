// SPDX-License-Identifier: MIT

package unit

import (
	"math"

	"github.com/katalvlaran/strongunit/scale"
)

// Abs returns |u|.
func Abs[T Float](u Unit[T]) Unit[T] { return u.WithValue(T(math.Abs(float64(u.value)))) }

// Ceil returns u rounded up.
func Ceil[T Float](u Unit[T]) Unit[T] { return u.WithValue(T(math.Ceil(float64(u.value)))) }

// Floor returns u rounded down.
func Floor[T Float](u Unit[T]) Unit[T] { return u.WithValue(T(math.Floor(float64(u.value)))) }

// Round returns u rounded half away from zero.
func Round[T Float](u Unit[T]) Unit[T] { return u.WithValue(T(math.Round(float64(u.value)))) }

// Max returns the greater of a and b in a's scale and label.
func Max[T Float](a, b Unit[T]) (Unit[T], error) {
	gt, err := a.Greater(b)
	if err != nil {
		return Unit[T]{}, unitErrorf("Max", err)
	}
	if gt {
		return a, nil
	}

	return a.WithValue(a.as(b)), nil
}

// Min returns the lesser of a and b in a's scale and label.
func Min[T Float](a, b Unit[T]) (Unit[T], error) {
	lt, err := a.Less(b)
	if err != nil {
		return Unit[T]{}, unitErrorf("Min", err)
	}
	if lt {
		return a, nil
	}

	return a.WithValue(a.as(b)), nil
}

// numeralFn applies fn to a numeral u converted to scale to and returns a
// unity-scale numeral.
func numeralFn[T Float](tag string, u Unit[T], to scale.Scale, fn func(float64) float64) (Unit[T], error) {
	if err := ValidateNumeral(u); err != nil {
		return Unit[T]{}, unitErrorf(tag, err)
	}

	return Numeral(T(fn(float64(convert(u.value, u.s, to))))), nil
}

// Exp returns e**u for a numeral u.
func Exp[T Float](u Unit[T]) (Unit[T], error) { return numeralFn("Exp", u, scale.Unity, math.Exp) }

// Log returns the natural logarithm of a numeral u.
func Log[T Float](u Unit[T]) (Unit[T], error) { return numeralFn("Log", u, scale.Unity, math.Log) }

// Log10 returns the decimal logarithm of a numeral u.
func Log10[T Float](u Unit[T]) (Unit[T], error) {
	return numeralFn("Log10", u, scale.Unity, math.Log10)
}

// angleFn applies fn to the angle u expressed in radians.
func angleFn[T Float](tag string, u Unit[T], fn func(float64) float64) (Unit[T], error) {
	if err := ValidateAngle(u); err != nil {
		return Unit[T]{}, unitErrorf(tag, err)
	}

	return numeralFn(tag, u, scale.Num2Rad, fn)
}

// arcFn applies fn to a numeral u at unity scale and tags the result as an
// angle in radians.
func arcFn[T Float](tag string, u Unit[T], fn func(float64) float64) (Unit[T], error) {
	r, err := numeralFn(tag, u, scale.Unity, fn)
	if err != nil {
		return Unit[T]{}, err
	}

	return Radian(r.value), nil
}

// Sin returns the sine of the angle u. The operand is converted to radian
// scale first, so Sin(Radian(x)) is math.Sin(x) and degrees work directly.
//
// Errors:
//   - ErrNotNumeral if u carries a dimension.
//   - ErrNotAngle if u is a plain number (unity or SI-prefix scale).
func Sin[T Float](u Unit[T]) (Unit[T], error) { return angleFn("Sin", u, math.Sin) }

// Cos returns the cosine of the angle u; see Sin.
func Cos[T Float](u Unit[T]) (Unit[T], error) { return angleFn("Cos", u, math.Cos) }

// Tan returns the tangent of the angle u; see Sin.
func Tan[T Float](u Unit[T]) (Unit[T], error) { return angleFn("Tan", u, math.Tan) }

// Asin returns the arcsine of a numeral u in radians.
func Asin[T Float](u Unit[T]) (Unit[T], error) { return arcFn("Asin", u, math.Asin) }

// Acos returns the arccosine of a numeral u in radians.
func Acos[T Float](u Unit[T]) (Unit[T], error) { return arcFn("Acos", u, math.Acos) }

// Atan returns the arctangent of a numeral u in radians.
func Atan[T Float](u Unit[T]) (Unit[T], error) { return arcFn("Atan", u, math.Atan) }

// Sinh returns the hyperbolic sine of a numeral u.
func Sinh[T Float](u Unit[T]) (Unit[T], error) { return numeralFn("Sinh", u, scale.Unity, math.Sinh) }

// Cosh returns the hyperbolic cosine of a numeral u.
func Cosh[T Float](u Unit[T]) (Unit[T], error) { return numeralFn("Cosh", u, scale.Unity, math.Cosh) }

// Tanh returns the hyperbolic tangent of a numeral u.
func Tanh[T Float](u Unit[T]) (Unit[T], error) { return numeralFn("Tanh", u, scale.Unity, math.Tanh) }

// Asinh returns the inverse hyperbolic sine of a numeral u.
func Asinh[T Float](u Unit[T]) (Unit[T], error) {
	return numeralFn("Asinh", u, scale.Unity, math.Asinh)
}

// Acosh returns the inverse hyperbolic cosine of a numeral u.
func Acosh[T Float](u Unit[T]) (Unit[T], error) {
	return numeralFn("Acosh", u, scale.Unity, math.Acosh)
}

// Atanh returns the inverse hyperbolic tangent of a numeral u.
func Atanh[T Float](u Unit[T]) (Unit[T], error) {
	return numeralFn("Atanh", u, scale.Unity, math.Atanh)
}
