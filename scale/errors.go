// SPDX-License-Identifier: MIT
// Package scale: sentinel error set.
// All constructors and operators return these sentinels (optionally wrapped
// with an operation tag); callers match them with errors.Is.

package scale

import (
	"errors"
	"fmt"
)

var (
	// ErrZero is returned when a numerator or denominator of zero is requested.
	ErrZero = errors.New("scale: up and down must be > 0")

	// ErrOverflow indicates that a reduced result does not fit in uint64.
	ErrOverflow = errors.New("scale: term exceeds uint64 range")

	// ErrNotPerfectSquare is returned by Sqrt when up or down has no exact
	// integer square root. Irrational scales are not representable.
	ErrNotPerfectSquare = errors.New("scale: not a perfect-square ratio")
)

// scaleErrorf tags err with the failing operation.
func scaleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
