// SPDX-License-Identifier: MIT

package quantity

import (
	"math"
	"strconv"
)

// Rat is an exact rational exponent n/d in lowest terms with d > 0.
//
// The zero value is 0. Rat is comparable: normalized values that denote the
// same number are ==.
type Rat struct {
	n int64
	d int64 // 0 encodes 1 so that Rat{} is a valid zero
}

// NewRat returns n/d in lowest terms.
func NewRat(n, d int64) (Rat, error) {
	if d == 0 {
		return Rat{}, quantityErrorf("NewRat", ErrZeroDenominator)
	}

	return normRat(n, d), nil
}

// MustRat is like NewRat but panics on a zero denominator.
func MustRat(n, d int64) Rat {
	r, err := NewRat(n, d)
	if err != nil {
		panic(err)
	}

	return r
}

// Int returns the integer n as a Rat.
func Int(n int64) Rat { return normRat(n, 1) }

func normRat(n, d int64) Rat {
	if n == 0 {
		return Rat{}
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd64(abs64(n), d)
	n, d = n/g, d/g
	if d == 1 {
		d = 0
	}

	return Rat{n: n, d: d}
}

// Num returns the numerator.
func (r Rat) Num() int64 { return r.n }

// Den returns the denominator, always > 0.
func (r Rat) Den() int64 {
	if r.d == 0 {
		return 1
	}

	return r.d
}

// IsZero reports whether r == 0.
func (r Rat) IsZero() bool { return r.n == 0 }

// IsInt reports whether r has denominator 1.
func (r Rat) IsInt() bool { return r.Den() == 1 }

// Add returns r + o. It panics with ErrExponentOverflow when a term leaves
// the int64 range.
func (r Rat) Add(o Rat) Rat {
	d := mulExp(r.Den(), o.Den())

	return normRat(addExp(mulExp(r.n, o.Den()), mulExp(o.n, r.Den())), d)
}

// Sub returns r - o.
func (r Rat) Sub(o Rat) Rat { return r.Add(o.Neg()) }

// Mul returns r * o, cross-reduced first. It panics with
// ErrExponentOverflow when the product leaves the int64 range.
func (r Rat) Mul(o Rat) Rat {
	if r.n == 0 || o.n == 0 {
		return Rat{}
	}
	g1 := gcd64(abs64(r.n), o.Den())
	g2 := gcd64(abs64(o.n), r.Den())

	return normRat(mulExp(r.n/g1, o.n/g2), mulExp(r.Den()/g2, o.Den()/g1))
}

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{n: -r.n, d: r.d} }

// Float64 returns the nearest float64 to r.
func (r Rat) Float64() float64 { return float64(r.n) / float64(r.Den()) }

// String formats r as "n" or "n/d".
func (r Rat) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.n, 10)
	}

	return strconv.FormatInt(r.n, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// mulExp returns a*b or panics on int64 overflow.
func mulExp(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		panic(quantityErrorf("Rat", ErrExponentOverflow))
	}

	return c
}

// addExp returns a+b or panics on int64 overflow.
func addExp(a, b int64) int64 {
	c := a + b
	if (c > a) != (b > 0) {
		panic(quantityErrorf("Rat", ErrExponentOverflow))
	}

	return c
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
