// SPDX-License-Identifier: MIT

package unit

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/strongunit/quantity"
	"github.com/katalvlaran/strongunit/scale"
)

// Float is the set of permitted numeric representations.
type Float interface {
	constraints.Float
}

// Labels of the built-in numeral kinds.
const (
	NumeralLabel   = "u_"
	RadianLabel    = "rad_"
	SteradianLabel = "sr_"
)

// convPrec is the mantissa size of the conversion intermediate.
const convPrec = 128

// Unit is a value of type T tagged with a quantity, a scale and a label.
//
// The zero value is a numeral 0 at unity scale with an empty label. Unit is a
// plain value: every operator returns a new Unit, only the *Assign methods,
// Inc and Dec mutate the receiver.
type Unit[T Float] struct {
	value T
	q     quantity.Quantity
	s     scale.Scale
	label string
}

// New returns v tagged with q, s and label.
func New[T Float](v T, q quantity.Quantity, s scale.Scale, label string) Unit[T] {
	return Unit[T]{value: v, q: q, s: s, label: label}
}

// Numeral returns a dimensionless v at unity scale.
func Numeral[T Float](v T) Unit[T] {
	return Unit[T]{value: v, label: NumeralLabel}
}

// Radian returns v radians: a numeral at scale.Num2Rad.
func Radian[T Float](v T) Unit[T] {
	return Unit[T]{value: v, s: scale.Num2Rad, label: RadianLabel}
}

// Steradian returns v steradians: a numeral at scale.Num2Sr.
func Steradian[T Float](v T) Unit[T] {
	return Unit[T]{value: v, s: scale.Num2Sr, label: SteradianLabel}
}

// Must returns u or panics with err. It wraps calls whose failure would be
// a programming error, such as combining values of known quantities.
func Must[T Float](u Unit[T], err error) Unit[T] {
	if err != nil {
		panic(err)
	}

	return u
}

// Value returns the stored number, expressed in u's own scale.
func (u Unit[T]) Value() T { return u.value }

// Quantity returns the exponent vector.
func (u Unit[T]) Quantity() quantity.Quantity { return u.q }

// Scale returns the conversion scale.
func (u Unit[T]) Scale() scale.Scale { return u.s }

// Label returns the display label.
func (u Unit[T]) Label() string { return u.label }

// IsNumeral reports whether u is dimensionless.
func (u Unit[T]) IsNumeral() bool { return u.q.IsNumeral() }

// WithValue returns u's tags around v.
func (u Unit[T]) WithValue(v T) Unit[T] {
	u.value = v

	return u
}

// WithLabel returns u relabelled. Labels carry no algebraic meaning.
func (u Unit[T]) WithLabel(label string) Unit[T] {
	u.label = label

	return u
}

// In converts u into target's scale and label. Only target's tags are used.
//
// Errors:
//   - ErrQuantityMismatch if the quantities differ.
func (u Unit[T]) In(target Unit[T]) (Unit[T], error) {
	if err := ValidateSameQuantity(u, target); err != nil {
		return Unit[T]{}, unitErrorf("In", err)
	}

	return Unit[T]{value: convert(u.value, u.s, target.s), q: u.q, s: target.s, label: target.label}, nil
}

// as converts o into u's scale; the quantity must already match.
func (u Unit[T]) as(o Unit[T]) T {
	return convert(o.value, o.s, u.s)
}

// convert rescales v from one scale to another through a big.Float of
// convPrec bits, then narrows to T.
func convert[T Float](v T, from, to scale.Scale) T {
	if from == to {
		return v
	}

	return T(mulRat(float64(v), scale.Factor(from, to)))
}

// mulRat returns x*f computed at convPrec bits.
func mulRat(x float64, f *big.Rat) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		r, _ := f.Float64()

		return x * r
	}
	bx := new(big.Float).SetPrec(convPrec).SetFloat64(x)
	br := new(big.Float).SetPrec(convPrec).SetRat(f)
	out, _ := bx.Mul(bx, br).Float64()

	return out
}
