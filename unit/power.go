// SPDX-License-Identifier: MIT

package unit

import (
	"math"
	"strconv"

	"github.com/katalvlaran/strongunit/quantity"
	"github.com/katalvlaran/strongunit/scale"
)

// Pow raises u to the integer power n.
//
// Implementation:
//   - quantity: every exponent multiplied by n.
//   - scale: up and down raised to n (swapped first when n < 0).
//   - value: math.Pow(value, n); label "(A)^n".
//
// Errors:
//   - scale.ErrOverflow if the raised scale does not fit.
func Pow[T Float](u Unit[T], n int) (Unit[T], error) {
	s, err := u.s.Pow(n)
	if err != nil {
		return Unit[T]{}, unitErrorf("Pow", err)
	}

	return Unit[T]{
		value: T(math.Pow(float64(u.value), float64(n))),
		q:     u.q.Pow(quantity.Int(int64(n))),
		s:     s,
		label: "(" + u.label + ")^" + strconv.Itoa(n),
	}, nil
}

// Sqrt returns the square root of u with halved exponents and the exact
// root of its scale, labelled "(A)^1/2". A unity-scale numeral yields a
// plain numeral.
//
// Errors:
//   - scale.ErrNotPerfectSquare if the scale has no exact rational root.
//     This includes numerals at radian, degree or kilo scale.
func Sqrt[T Float](u Unit[T]) (Unit[T], error) {
	if u.q.IsNumeral() && u.s.IsUnity() {
		return Numeral(T(math.Sqrt(float64(u.value)))), nil
	}
	s, err := u.s.Sqrt()
	if err != nil {
		return Unit[T]{}, unitErrorf("Sqrt", err)
	}

	return Unit[T]{
		value: T(math.Sqrt(float64(u.value))),
		q:     u.q.Sqrt(),
		s:     s,
		label: "(" + u.label + ")^1/2",
	}, nil
}

// PowReal returns base**x for a numeral base.
//
// Errors:
//   - ErrNotNumeral if base carries a dimension.
func PowReal[T Float](base Unit[T], x T) (Unit[T], error) {
	return numeralFn("PowReal", base, scale.Unity, func(v float64) float64 {
		return math.Pow(v, float64(x))
	})
}

// PowUnit returns base**exp for numeral base and exponent.
//
// Errors:
//   - ErrNotNumeral if either operand carries a dimension.
func PowUnit[T Float](base, exp Unit[T]) (Unit[T], error) {
	if err := ValidateNumeral(exp); err != nil {
		return Unit[T]{}, unitErrorf("PowUnit", err)
	}

	return PowReal(base, convert(exp.value, exp.s, scale.Unity))
}
