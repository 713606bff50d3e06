// SPDX-License-Identifier: MIT

package scale

import (
	"math/big"
	"strconv"
)

// Scale is a reduced rational multiplier up/down with up, down > 0.
//
// The zero value is Unity. Scale is comparable: two reduced scales are
// equal exactly when they denote the same ratio.
type Scale struct {
	up   uint64 // 0 means 1
	down uint64 // 0 means 1
}

// New returns up/down reduced by their greatest common divisor.
//
// Errors:
//   - ErrZero if up or down is zero.
func New(up, down uint64) (Scale, error) {
	if up == 0 || down == 0 {
		return Scale{}, scaleErrorf("New", ErrZero)
	}

	return reduce(up, down), nil
}

// MustNew is like New but panics on error. Use it for package-level
// declarations where an invalid scale is a programmer error.
func MustNew(up, down uint64) Scale {
	s, err := New(up, down)
	if err != nil {
		panic(err)
	}

	return s
}

// reduce assumes up, down > 0.
func reduce(up, down uint64) Scale {
	g := gcd(up, down)
	up, down = up/g, down/g
	// Canonical form keeps Unity equal to the zero value.
	if up == 1 {
		up = 0
	}
	if down == 1 {
		down = 0
	}

	return Scale{up: up, down: down}
}

// Up returns the numerator.
func (s Scale) Up() uint64 {
	if s.up == 0 {
		return 1
	}

	return s.up
}

// Down returns the denominator.
func (s Scale) Down() uint64 {
	if s.down == 0 {
		return 1
	}

	return s.down
}

// IsUnity reports whether s is 1/1.
func (s Scale) IsUnity() bool { return s == Unity }

// Equal reports whether s and o denote the same ratio.
func (s Scale) Equal(o Scale) bool { return s == o }

// Inv returns down/up.
func (s Scale) Inv() Scale {
	return Scale{up: s.down, down: s.up}
}

// Mul returns the reduced product s*o.
//
// Operands are cross-reduced before multiplying so that a result which fits
// in uint64 is never rejected because of an intermediate product.
//
// Errors:
//   - ErrOverflow if the reduced numerator or denominator exceeds uint64.
func (s Scale) Mul(o Scale) (Scale, error) {
	a1, b1 := s.Up(), s.Down()
	a2, b2 := o.Up(), o.Down()
	g1, g2 := gcd(a1, b2), gcd(a2, b1)

	up, ok := mul64(a1/g1, a2/g2)
	if !ok {
		return Scale{}, scaleErrorf("Mul", ErrOverflow)
	}
	down, ok := mul64(b1/g2, b2/g1)
	if !ok {
		return Scale{}, scaleErrorf("Mul", ErrOverflow)
	}

	return reduce(up, down), nil
}

// Div returns the reduced quotient s/o.
func (s Scale) Div(o Scale) (Scale, error) {
	r, err := s.Mul(o.Inv())
	if err != nil {
		return Scale{}, scaleErrorf("Div", err)
	}

	return r, nil
}

// Pow raises s to the integer power n. For n < 0 the scale is inverted
// first; Pow(0) is Unity.
//
// Errors:
//   - ErrOverflow if a raised term exceeds uint64.
func (s Scale) Pow(n int) (Scale, error) {
	if n < 0 {
		s, n = s.Inv(), -n
	}
	up, ok := ipow(s.Up(), n)
	if !ok {
		return Scale{}, scaleErrorf("Pow", ErrOverflow)
	}
	down, ok := ipow(s.Down(), n)
	if !ok {
		return Scale{}, scaleErrorf("Pow", ErrOverflow)
	}

	return reduce(up, down), nil
}

// Sqrt returns the exact square root of s.
//
// Errors:
//   - ErrNotPerfectSquare unless both up and down are perfect squares.
func (s Scale) Sqrt() (Scale, error) {
	up, okUp := isqrt(s.Up())
	down, okDown := isqrt(s.Down())
	if !okUp || !okDown {
		return Scale{}, scaleErrorf("Sqrt", ErrNotPerfectSquare)
	}

	return reduce(up, down), nil
}

// Rat returns s as an exact big.Rat.
func (s Scale) Rat() *big.Rat {
	return new(big.Rat).SetFrac(
		new(big.Int).SetUint64(s.Up()),
		new(big.Int).SetUint64(s.Down()),
	)
}

// Float64 returns the nearest float64 to up/down.
func (s Scale) Float64() float64 {
	f, _ := s.Rat().Float64()

	return f
}

// String formats s as "up" or "up/down".
func (s Scale) String() string {
	if s.Down() == 1 {
		return strconv.FormatUint(s.Up(), 10)
	}

	return strconv.FormatUint(s.Up(), 10) + "/" + strconv.FormatUint(s.Down(), 10)
}

// Factor returns the exact multiplier that converts a value stored at scale
// from into the same amount stored at scale to: (from.up*to.down)/(from.down*to.up).
func Factor(from, to Scale) *big.Rat {
	return new(big.Rat).Quo(from.Rat(), to.Rat())
}
