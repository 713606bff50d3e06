// SPDX-License-Identifier: MIT

package quantity

import (
	"strconv"
	"strings"
)

// Base indexes one dimension of a Quantity.
type Base int

// Base dimensions in vector order.
const (
	Time Base = iota
	Length
	Mass
	Current
	Temperature
	Substance
	LuminousIntensity
	Reserved7
	Reserved8
	Reserved9

	// NumBases is the length of every exponent vector.
	NumBases = 10
)

var baseSymbols = [NumBases]string{"T", "L", "M", "I", "Θ", "N", "J", "R7", "R8", "R9"}

// String returns the conventional dimension symbol of b.
func (b Base) String() string {
	if b < 0 || b >= NumBases {
		return "?"
	}

	return baseSymbols[b]
}

// Quantity is an exponent vector over the NumBases base dimensions.
//
// The zero value is Numeral. Quantity is comparable with ==.
type Quantity struct {
	exp [NumBases]Rat
}

// Numeral is the dimensionless quantity.
var Numeral = Quantity{}

// New builds a Quantity from leading exponents in Base order; missing
// trailing exponents are zero.
//
// Errors:
//   - ErrTooManyExponents if len(exps) > NumBases.
func New(exps ...Rat) (Quantity, error) {
	if len(exps) > NumBases {
		return Quantity{}, quantityErrorf("New", ErrTooManyExponents)
	}
	var q Quantity
	copy(q.exp[:], exps)

	return q, nil
}

// MustNew is like New but panics on error.
func MustNew(exps ...Rat) Quantity {
	q, err := New(exps...)
	if err != nil {
		panic(err)
	}

	return q
}

// Of returns the quantity with a single non-zero exponent. It panics when
// b is out of range.
func Of(b Base, exp Rat) Quantity {
	if b < 0 || b >= NumBases {
		panic(quantityErrorf("Of", ErrBaseOutOfRange))
	}
	var q Quantity
	q.exp[b] = exp

	return q
}

// Exponent returns the exponent of base b, or 0 when b is out of range.
func (q Quantity) Exponent(b Base) Rat {
	if b < 0 || b >= NumBases {
		return Rat{}
	}

	return q.exp[b]
}

// Exponents returns a copy of the whole exponent vector.
func (q Quantity) Exponents() [NumBases]Rat { return q.exp }

// Mul returns the quantity of a product: exponents are added.
func (q Quantity) Mul(o Quantity) Quantity {
	var r Quantity
	for i := range q.exp {
		r.exp[i] = q.exp[i].Add(o.exp[i])
	}

	return r
}

// Div returns the quantity of a quotient: exponents are subtracted.
func (q Quantity) Div(o Quantity) Quantity {
	var r Quantity
	for i := range q.exp {
		r.exp[i] = q.exp[i].Sub(o.exp[i])
	}

	return r
}

// Pow multiplies every exponent by p. Like every exponent operation it
// panics with ErrExponentOverflow when an exponent leaves the int64 range.
func (q Quantity) Pow(p Rat) Quantity {
	var r Quantity
	for i := range q.exp {
		r.exp[i] = q.exp[i].Mul(p)
	}

	return r
}

// Sqrt halves every exponent.
func (q Quantity) Sqrt() Quantity { return q.Pow(MustRat(1, 2)) }

// Inv negates every exponent.
func (q Quantity) Inv() Quantity { return q.Pow(Int(-1)) }

// IsNumeral reports whether q is dimensionless.
func (q Quantity) IsNumeral() bool { return q == Numeral }

// Equal reports whether q and o have the same exponent vector.
func (q Quantity) Equal(o Quantity) bool { return q == o }

// String lists the non-zero exponents as "L·T^-1"-style factors in Base
// order, or "1" for Numeral.
func (q Quantity) String() string {
	var sb strings.Builder
	for i, e := range q.exp {
		if e.IsZero() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("·")
		}
		sb.WriteString(Base(i).String())
		if e != Int(1) {
			sb.WriteByte('^')
			sb.WriteString(e.String())
		}
	}
	if sb.Len() == 0 {
		return "1"
	}

	return sb.String()
}

// Describe lists every exponent as "<num:den>" in Base order.
func (q Quantity) Describe() string {
	var sb strings.Builder
	for _, e := range q.exp {
		sb.WriteByte('<')
		sb.WriteString(strconv.FormatInt(e.Num(), 10))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatInt(e.Den(), 10))
		sb.WriteByte('>')
	}

	return sb.String()
}
