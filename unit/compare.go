// SPDX-License-Identifier: MIT

package unit

import "gonum.org/v1/gonum/floats/scalar"

// Less reports whether u < o after converting o into u's scale. Every other
// comparison is derived from Less.
//
// Errors:
//   - ErrQuantityMismatch if the quantities differ.
func (u Unit[T]) Less(o Unit[T]) (bool, error) {
	if err := ValidateSameQuantity(u, o); err != nil {
		return false, unitErrorf("Less", err)
	}

	return u.value < u.as(o), nil
}

// Greater reports o < u.
func (u Unit[T]) Greater(o Unit[T]) (bool, error) {
	return o.Less(u)
}

// LessEqual reports !(u > o).
func (u Unit[T]) LessEqual(o Unit[T]) (bool, error) {
	gt, err := u.Greater(o)

	return !gt && err == nil, err
}

// GreaterEqual reports !(u < o).
func (u Unit[T]) GreaterEqual(o Unit[T]) (bool, error) {
	lt, err := u.Less(o)

	return !lt && err == nil, err
}

// Equal reports !(u < o) && !(o < u). No tolerance is applied; see
// ApproxEqual.
func (u Unit[T]) Equal(o Unit[T]) (bool, error) {
	lt, err := u.Less(o)
	if err != nil {
		return false, err
	}
	gt, err := u.Greater(o)
	if err != nil {
		return false, err
	}

	return !lt && !gt, nil
}

// NotEqual reports !Equal.
func (u Unit[T]) NotEqual(o Unit[T]) (bool, error) {
	eq, err := u.Equal(o)

	return !eq && err == nil, err
}

// Cmp returns -1, 0 or +1 as u is less than, equal to or greater than o.
// Unordered values (NaN) compare as 0.
func (u Unit[T]) Cmp(o Unit[T]) (int, error) {
	lt, err := u.Less(o)
	if err != nil {
		return 0, err
	}
	if lt {
		return -1, nil
	}
	gt, err := u.Greater(o)
	if err != nil {
		return 0, err
	}
	if gt {
		return 1, nil
	}

	return 0, nil
}

// ApproxEqual reports whether u and o, converted into u's scale, are equal
// within the configured absolute or relative tolerance.
//
// Errors:
//   - ErrQuantityMismatch if the quantities differ.
func (u Unit[T]) ApproxEqual(o Unit[T], opts ...Option) (bool, error) {
	if err := ValidateSameQuantity(u, o); err != nil {
		return false, unitErrorf("ApproxEqual", err)
	}
	cfg := gatherOptions(opts...)

	return scalar.EqualWithinAbsOrRel(float64(u.value), float64(u.as(o)), cfg.absTol, cfg.relTol), nil
}
