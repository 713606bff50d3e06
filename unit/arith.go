// SPDX-License-Identifier: MIT

package unit

import "math"

// Add returns u + o in u's scale and label.
//
// Errors:
//   - ErrQuantityMismatch if the quantities differ.
func (u Unit[T]) Add(o Unit[T]) (Unit[T], error) {
	if err := u.AddAssign(o); err != nil {
		return Unit[T]{}, err
	}

	return u, nil
}

// Sub returns u - o in u's scale and label.
func (u Unit[T]) Sub(o Unit[T]) (Unit[T], error) {
	if err := u.SubAssign(o); err != nil {
		return Unit[T]{}, err
	}

	return u, nil
}

// Mod returns the integer remainder of u and o.
//
// Both values are truncated to int64 before the remainder is taken, so any
// fractional part is lost: Mod(7.9 m, 2.5 m) is 1 m.
//
// Errors:
//   - ErrQuantityMismatch if the quantities differ.
//   - ErrModByZero if o truncates to zero.
//   - ErrModRange if either value is NaN, infinite or outside the int64
//     range after conversion.
func (u Unit[T]) Mod(o Unit[T]) (Unit[T], error) {
	if err := u.ModAssign(o); err != nil {
		return Unit[T]{}, err
	}

	return u, nil
}

// AddAssign sets u to u + o.
func (u *Unit[T]) AddAssign(o Unit[T]) error {
	if err := ValidateSameQuantity(*u, o); err != nil {
		return unitErrorf("Add", err)
	}
	u.value += u.as(o)

	return nil
}

// SubAssign sets u to u - o.
func (u *Unit[T]) SubAssign(o Unit[T]) error {
	if err := ValidateSameQuantity(*u, o); err != nil {
		return unitErrorf("Sub", err)
	}
	u.value -= u.as(o)

	return nil
}

// ModAssign sets u to the integer remainder of u and o; see Mod.
func (u *Unit[T]) ModAssign(o Unit[T]) error {
	if err := ValidateSameQuantity(*u, o); err != nil {
		return unitErrorf("Mod", err)
	}
	n, ok := truncInt64(float64(u.value))
	if !ok {
		return unitErrorf("Mod", ErrModRange)
	}
	d, ok := truncInt64(float64(u.as(o)))
	if !ok {
		return unitErrorf("Mod", ErrModRange)
	}
	if d == 0 {
		return unitErrorf("Mod", ErrModByZero)
	}
	u.value = T(n % d)

	return nil
}

// truncInt64 truncates x toward zero; ok is false for NaN, ±Inf and values
// outside [-2^63, 2^63).
func truncInt64(x float64) (int64, bool) {
	if math.IsNaN(x) || x < math.MinInt64 || x >= math.MaxInt64 {
		return 0, false
	}

	return int64(x), true
}

// Inc adds one to the stored value, in u's own scale.
func (u *Unit[T]) Inc() { u.value++ }

// Dec subtracts one from the stored value, in u's own scale.
func (u *Unit[T]) Dec() { u.value-- }

// Neg returns -u.
func (u Unit[T]) Neg() Unit[T] {
	u.value = -u.value

	return u
}

// MulScalar returns u scaled by x; tags are unchanged.
func (u Unit[T]) MulScalar(x T) Unit[T] {
	u.value *= x

	return u
}

// DivScalar returns u divided by x; tags are unchanged.
func (u Unit[T]) DivScalar(x T) Unit[T] {
	u.value /= x

	return u
}

// ScalarDiv returns x / u: the numeral x divided by u. The result has the
// inverse quantity and scale of u and the label "u_*(B)^-1".
func ScalarDiv[T Float](x T, u Unit[T]) Unit[T] {
	return Unit[T]{
		value: x / u.value,
		q:     u.q.Inv(),
		s:     u.s.Inv(),
		label: NumeralLabel + "*(" + u.label + ")^-1",
	}
}

// Inv returns 1 / u.
func (u Unit[T]) Inv() Unit[T] { return ScalarDiv(1, u) }

// Mul returns u * o. The quantity and scale are the structural products,
// the label is "A*B".
//
// Errors:
//   - scale.ErrOverflow if the combined scale does not fit.
func (u Unit[T]) Mul(o Unit[T]) (Unit[T], error) {
	s, err := u.s.Mul(o.s)
	if err != nil {
		return Unit[T]{}, unitErrorf("Mul", err)
	}

	return Unit[T]{
		value: u.value * o.value,
		q:     u.q.Mul(o.q),
		s:     s,
		label: u.label + "*" + o.label,
	}, nil
}

// Div returns u / o. The quantity and scale are the structural quotients,
// the label is "A*(B)^-1". A zero divisor follows IEEE-754 (±Inf or NaN).
//
// Errors:
//   - scale.ErrOverflow if the combined scale does not fit.
func (u Unit[T]) Div(o Unit[T]) (Unit[T], error) {
	s, err := u.s.Div(o.s)
	if err != nil {
		return Unit[T]{}, unitErrorf("Div", err)
	}

	return Unit[T]{
		value: u.value / o.value,
		q:     u.q.Div(o.q),
		s:     s,
		label: u.label + "*(" + o.label + ")^-1",
	}, nil
}
