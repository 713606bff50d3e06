// SPDX-License-Identifier: MIT

package scale

// Unity is 1/1.
var Unity = Scale{}

// SI decimal prefixes.
var (
	Atto  = MustNew(1, 1_000_000_000_000_000_000)
	Femto = MustNew(1, 1_000_000_000_000_000)
	Pico  = MustNew(1, 1_000_000_000_000)
	Nano  = MustNew(1, 1_000_000_000)
	Micro = MustNew(1, 1_000_000)
	Milli = MustNew(1, 1_000)
	Centi = MustNew(1, 100)
	Deci  = MustNew(1, 10)
	Deca  = MustNew(10, 1)
	Hecto = MustNew(100, 1)
	Kilo  = MustNew(1_000, 1)
	Mega  = MustNew(1_000_000, 1)
	Giga  = MustNew(1_000_000_000, 1)
	Tera  = MustNew(1_000_000_000_000, 1)
	Peta  = MustNew(1_000_000_000_000_000, 1)
	Exa   = MustNew(1_000_000_000_000_000_000, 1)
)

// Angle scales. A dimensionless value at Unity scale counts full turns, so
// a radian is 1/(2π) of it and a steradian 1/(4π). π is approximated by
// 314159265358979323/10^17.
var (
	Num2Rad = MustNew(50_000_000_000_000_000, piMark)
	Num2Sr  = MustNew(25_000_000_000_000_000, piMark)
)

// piMark is the π approximation shared by the angle scales.
const piMark = 314_159_265_358_979_323

// RadianPower returns k such that s carries the factor Num2Rad^k: the number
// of π marks in the denominator, negated when they sit in the numerator.
// Scales built from Num2Rad or Num2Sr by Mul, Div and Pow keep the mark.
func (s Scale) RadianPower() int {
	k := 0
	for d := s.Down(); d%piMark == 0; d /= piMark {
		k++
	}
	for u := s.Up(); u%piMark == 0; u /= piMark {
		k--
	}

	return k
}

// IsDecimal reports whether both terms of s are powers of ten, which is the
// case for Unity and every SI prefix.
func (s Scale) IsDecimal() bool { return isPow10(s.Up()) && isPow10(s.Down()) }
