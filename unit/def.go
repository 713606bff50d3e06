// SPDX-License-Identifier: MIT

package unit

import (
	"github.com/katalvlaran/strongunit/quantity"
	"github.com/katalvlaran/strongunit/scale"
)

// Def declares a named unit: a fixed (quantity, scale, label) triple.
//
// A Def plays the role of a literal suffix (Meter.Of(10)) and of a symbol
// constant (Meter.Symbol(), value one) and converts foreign values into
// itself (Kilometer.From(d)).
type Def[T Float] struct {
	q     quantity.Quantity
	s     scale.Scale
	label string
}

// Define declares a named unit of quantity q at scale s.
func Define[T Float](q quantity.Quantity, s scale.Scale, label string) Def[T] {
	return Def[T]{q: q, s: s, label: label}
}

// DefinePrefix declares a numeral unit at scale s, such as kilo.
func DefinePrefix[T Float](s scale.Scale, label string) Def[T] {
	return Define[T](quantity.Numeral, s, label)
}

// Of returns v in this unit.
func (d Def[T]) Of(v T) Unit[T] {
	return Unit[T]{value: v, q: d.q, s: d.s, label: d.label}
}

// Symbol returns one of this unit.
func (d Def[T]) Symbol() Unit[T] { return d.Of(1) }

// From converts u into this unit.
//
// Errors:
//   - ErrQuantityMismatch if u has a different quantity.
func (d Def[T]) From(u Unit[T]) (Unit[T], error) {
	return u.In(d.Symbol())
}

// Is reports whether u carries exactly this unit's quantity and scale.
func (d Def[T]) Is(u Unit[T]) bool { return u.q == d.q && u.s == d.s }

// Quantity returns the declared quantity.
func (d Def[T]) Quantity() quantity.Quantity { return d.q }

// Scale returns the declared scale.
func (d Def[T]) Scale() scale.Scale { return d.s }

// Label returns the declared label.
func (d Def[T]) Label() string { return d.label }
