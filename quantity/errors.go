// SPDX-License-Identifier: MIT

package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyExponents is returned by New when more than NumBases
	// exponents are given.
	ErrTooManyExponents = errors.New("quantity: too many exponents")

	// ErrZeroDenominator is returned by NewRat for a zero denominator.
	ErrZeroDenominator = errors.New("quantity: zero denominator")

	// ErrExponentOverflow is the panic value of Rat arithmetic whose result
	// does not fit in int64.
	ErrExponentOverflow = errors.New("quantity: exponent overflow")

	// ErrBaseOutOfRange is returned for a Base outside [0, NumBases).
	ErrBaseOutOfRange = errors.New("quantity: base out of range")
)

func quantityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
