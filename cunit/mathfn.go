// SPDX-License-Identifier: MIT

package cunit

import (
	"math/cmplx"

	"github.com/katalvlaran/strongunit/scale"
	"github.com/katalvlaran/strongunit/unit"
)

// Abs returns |z| in z's unit.
func Abs[T unit.Float](z Complex[T]) unit.Unit[T] {
	return z.re.WithValue(T(cmplx.Abs(z.Complex128())))
}

// Arg returns the phase of z in radians.
func Arg[T unit.Float](z Complex[T]) unit.Unit[T] {
	return unit.Radian(T(cmplx.Phase(z.Complex128())))
}

// Polar returns rho·e^(jθ) in rho's unit. theta is converted to radian
// scale first.
//
// Errors:
//   - unit.ErrQuantityMismatch if theta is not a numeral.
func Polar[T unit.Float](rho, theta unit.Unit[T]) (Complex[T], error) {
	rad, err := theta.In(unit.Radian[T](0))
	if err != nil {
		return Complex[T]{}, cunitErrorf("Polar", err)
	}

	return FromComplex(cmplx.Rect(float64(rho.Value()), float64(rad.Value())), rho), nil
}

// toNumeral returns z as a complex128 at unity scale.
func toNumeral[T unit.Float](tag string, z Complex[T]) (complex128, error) {
	if err := unit.ValidateNumeral(z.re); err != nil {
		return 0, cunitErrorf(tag, err)
	}
	if z.re.Scale() == scale.Unity {
		return z.Complex128(), nil
	}
	u, err := z.In(unit.Numeral[T](0))
	if err != nil {
		return 0, cunitErrorf(tag, err)
	}

	return u.Complex128(), nil
}

// numeralFn applies fn to a numeral z and returns a plain numeral.
func numeralFn[T unit.Float](tag string, z Complex[T], fn func(complex128) complex128) (Complex[T], error) {
	c, err := toNumeral(tag, z)
	if err != nil {
		return Complex[T]{}, err
	}

	return FromComplex(fn(c), unit.Numeral[T](0)), nil
}

// Exp returns e**z for a numeral z.
func Exp[T unit.Float](z Complex[T]) (Complex[T], error) { return numeralFn("Exp", z, cmplx.Exp) }

// Log returns the natural logarithm of a numeral z.
func Log[T unit.Float](z Complex[T]) (Complex[T], error) { return numeralFn("Log", z, cmplx.Log) }

// Log10 returns the decimal logarithm of a numeral z.
func Log10[T unit.Float](z Complex[T]) (Complex[T], error) {
	return numeralFn("Log10", z, cmplx.Log10)
}

// trigFn applies fn to z in radians. An angle-scaled z (radian, degree) is
// converted to radian scale; a plain numeral is already a radian count.
func trigFn[T unit.Float](tag string, z Complex[T], fn func(complex128) complex128) (Complex[T], error) {
	if unit.ValidateAngle(z.re) != nil {
		return numeralFn(tag, z, fn)
	}
	rad, err := z.In(unit.Radian[T](0))
	if err != nil {
		return Complex[T]{}, cunitErrorf(tag, err)
	}

	return FromComplex(fn(rad.Complex128()), unit.Numeral[T](0)), nil
}

// Sin returns the sine of a numeral z; see trigFn for the angle handling.
func Sin[T unit.Float](z Complex[T]) (Complex[T], error) { return trigFn("Sin", z, cmplx.Sin) }

// Cos returns the cosine of a numeral z.
func Cos[T unit.Float](z Complex[T]) (Complex[T], error) { return trigFn("Cos", z, cmplx.Cos) }

// Tan returns the tangent of a numeral z.
func Tan[T unit.Float](z Complex[T]) (Complex[T], error) { return trigFn("Tan", z, cmplx.Tan) }

// Asin returns the inverse sine of a numeral z.
func Asin[T unit.Float](z Complex[T]) (Complex[T], error) { return numeralFn("Asin", z, cmplx.Asin) }

// Acos returns the inverse cosine of a numeral z.
func Acos[T unit.Float](z Complex[T]) (Complex[T], error) { return numeralFn("Acos", z, cmplx.Acos) }

// Atan returns the inverse tangent of a numeral z.
func Atan[T unit.Float](z Complex[T]) (Complex[T], error) { return numeralFn("Atan", z, cmplx.Atan) }

// Sinh returns the hyperbolic sine of a numeral z.
func Sinh[T unit.Float](z Complex[T]) (Complex[T], error) { return numeralFn("Sinh", z, cmplx.Sinh) }

// Cosh returns the hyperbolic cosine of a numeral z.
func Cosh[T unit.Float](z Complex[T]) (Complex[T], error) { return numeralFn("Cosh", z, cmplx.Cosh) }

// Tanh returns the hyperbolic tangent of a numeral z.
func Tanh[T unit.Float](z Complex[T]) (Complex[T], error) { return numeralFn("Tanh", z, cmplx.Tanh) }

// Asinh returns the inverse hyperbolic sine of a numeral z.
func Asinh[T unit.Float](z Complex[T]) (Complex[T], error) {
	return numeralFn("Asinh", z, cmplx.Asinh)
}

// Acosh returns the inverse hyperbolic cosine of a numeral z.
func Acosh[T unit.Float](z Complex[T]) (Complex[T], error) {
	return numeralFn("Acosh", z, cmplx.Acosh)
}

// Atanh returns the inverse hyperbolic tangent of a numeral z.
func Atanh[T unit.Float](z Complex[T]) (Complex[T], error) {
	return numeralFn("Atanh", z, cmplx.Atanh)
}

// Pow returns z**e for a numeral z and a native complex exponent.
func Pow[T unit.Float](z Complex[T], e complex128) (Complex[T], error) {
	return numeralFn("Pow", z, func(c complex128) complex128 { return cmplx.Pow(c, e) })
}

// PowComplex returns z**e for numeral z and e.
func PowComplex[T unit.Float](z, e Complex[T]) (Complex[T], error) {
	ce, err := toNumeral("PowComplex", e)
	if err != nil {
		return Complex[T]{}, err
	}

	return Pow(z, ce)
}

// PowReal returns z**x for a numeral z.
func PowReal[T unit.Float](z Complex[T], x T) (Complex[T], error) {
	return Pow(z, complex(float64(x), 0))
}

// PowUnit returns z**e for a numeral z and a numeral real exponent.
func PowUnit[T unit.Float](z Complex[T], e unit.Unit[T]) (Complex[T], error) {
	ce, err := toNumeral("PowUnit", FromReal(e))
	if err != nil {
		return Complex[T]{}, err
	}

	return Pow(z, ce)
}

// PowN raises z to the integer power n. The quantity, scale and label are
// those of unit.Pow(z.Real(), n).
func PowN[T unit.Float](z Complex[T], n int) (Complex[T], error) {
	tags, err := unit.Pow(z.re, n)
	if err != nil {
		return Complex[T]{}, cunitErrorf("PowN", err)
	}

	return FromComplex(cmplx.Pow(z.Complex128(), complex(float64(n), 0)), tags), nil
}

// Sqrt returns the principal square root of z. The quantity, scale and
// label are those of unit.Sqrt(z.Real()).
//
// Errors:
//   - scale.ErrNotPerfectSquare if the scale of z has no exact root.
func Sqrt[T unit.Float](z Complex[T]) (Complex[T], error) {
	if z.re.IsNumeral() && z.re.Scale().IsUnity() {
		return numeralFn("Sqrt", z, cmplx.Sqrt)
	}
	tags, err := unit.Sqrt(z.re)
	if err != nil {
		return Complex[T]{}, cunitErrorf("Sqrt", err)
	}

	return FromComplex(cmplx.Sqrt(z.Complex128()), tags), nil
}
