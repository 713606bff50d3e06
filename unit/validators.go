// SPDX-License-Identifier: MIT
// Package unit: shared guards.
//
// Every combining operator calls these before touching values so the
// mismatch is reported at the earliest point with a consistent tag.

package unit

import "github.com/katalvlaran/strongunit/scale"

func validatorErrorf(tag string, err error) error {
	return unitErrorf(tag, err)
}

// ValidateSameQuantity returns ErrQuantityMismatch unless a and b share a
// quantity. Scales and labels may differ.
func ValidateSameQuantity[T Float](a, b Unit[T]) error {
	if a.q != b.q {
		return validatorErrorf("ValidateSameQuantity: "+a.q.String()+" vs "+b.q.String(), ErrQuantityMismatch)
	}

	return nil
}

// ValidateNumeral returns ErrNotNumeral unless u is dimensionless.
func ValidateNumeral[T Float](u Unit[T]) error {
	if !u.q.IsNumeral() {
		return validatorErrorf("ValidateNumeral: "+u.q.String(), ErrNotNumeral)
	}

	return nil
}

// ValidateAngle returns ErrNotNumeral unless u is dimensionless and
// ErrNotAngle unless its scale marks a plane angle. Unity and SI-prefix
// scales are plain numbers, and Num2Sr is a solid angle.
func ValidateAngle[T Float](u Unit[T]) error {
	if err := ValidateNumeral(u); err != nil {
		return err
	}
	if u.s.IsDecimal() || u.s == scale.Num2Sr {
		return validatorErrorf("ValidateAngle: scale "+u.s.String(), ErrNotAngle)
	}

	return nil
}
