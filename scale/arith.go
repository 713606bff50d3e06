// SPDX-License-Identifier: MIT

package scale

import (
	"math"
	"math/bits"
)

// gcd returns the greatest common divisor of a and b (Euclid).
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// mul64 returns a*b or ok=false when the product overflows.
func mul64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, hi == 0
}

// isPow10 reports whether v is 10^n for some n >= 0.
func isPow10(v uint64) bool {
	for v > 1 && v%10 == 0 {
		v /= 10
	}

	return v == 1
}

// ipow raises base to a non-negative exponent with overflow detection.
func ipow(base uint64, exp int) (uint64, bool) {
	result := uint64(1)
	for ; exp > 0; exp-- {
		var ok bool
		if result, ok = mul64(result, base); !ok {
			return 0, false
		}
	}

	return result, true
}

// isqrt returns the exact integer square root of v, or ok=false when v is
// not a perfect square.
func isqrt(v uint64) (uint64, bool) {
	r := uint64(math.Sqrt(float64(v)))
	// float64 rounding can miss by one in either direction for large v.
	for {
		hi, lo := bits.Mul64(r, r)
		if hi == 0 && lo <= v {
			break
		}
		r--
	}
	for {
		hi, lo := bits.Mul64(r+1, r+1)
		if hi != 0 || lo > v {
			break
		}
		r++
	}

	return r, r*r == v
}
