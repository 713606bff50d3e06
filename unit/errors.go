// SPDX-License-Identifier: MIT
// Package unit: sentinel errors and the text-input error class.
//
// Operators wrap these sentinels with the operation name, so callers match
// them with errors.Is. Text input errors are additionally wrapped by
// ScanError so the whole family can be detected with ScanError.Has.

package unit

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// ErrQuantityMismatch is returned when two operands must share a
	// quantity and do not (e.g. meters plus seconds).
	ErrQuantityMismatch = errors.New("unit: quantity mismatch")

	// ErrNotNumeral is returned when a dimensionless operand is required.
	ErrNotNumeral = errors.New("unit: operand is not a numeral")

	// ErrNotAngle is returned by Sin, Cos and Tan when the operand is not an
	// angle-scaled numeral (radians, degrees, any non-decimal scale).
	ErrNotAngle = errors.New("unit: operand is not an angle")

	// ErrModByZero is returned by Mod when the truncated divisor is zero.
	ErrModByZero = errors.New("unit: integer modulo by zero")

	// ErrModRange is returned by Mod when an operand is NaN, infinite or
	// outside the int64 range after conversion.
	ErrModRange = errors.New("unit: modulo operand outside int64 range")

	// ErrEmptyToken is returned by Scan when no token is available.
	ErrEmptyToken = errors.New("unit: empty token")

	// ErrNotSIExpressible is returned by ToSI when the quantity has a
	// fractional exponent or uses a reserved base.
	ErrNotSIExpressible = errors.New("unit: quantity not expressible in SI dimensions")
)

// ScanError classifies every failure of textual input.
var ScanError = errs.Class("unit: scan")

func unitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
