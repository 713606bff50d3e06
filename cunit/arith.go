// SPDX-License-Identifier: MIT

package cunit

import "github.com/katalvlaran/strongunit/unit"

// Add returns z + o in z's scale and label.
//
// Errors:
//   - unit.ErrQuantityMismatch if the quantities differ.
func (z Complex[T]) Add(o Complex[T]) (Complex[T], error) {
	if err := z.AddAssign(o); err != nil {
		return Complex[T]{}, err
	}

	return z, nil
}

// Sub returns z - o in z's scale and label.
func (z Complex[T]) Sub(o Complex[T]) (Complex[T], error) {
	if err := z.SubAssign(o); err != nil {
		return Complex[T]{}, err
	}

	return z, nil
}

// AddAssign sets z to z + o. z is unchanged on error.
func (z *Complex[T]) AddAssign(o Complex[T]) error {
	re, err := z.re.Add(o.re)
	if err != nil {
		return cunitErrorf("Add", err)
	}
	im, err := z.im.Add(o.im)
	if err != nil {
		return cunitErrorf("Add", err)
	}
	z.re, z.im = re, im

	return nil
}

// SubAssign sets z to z - o. z is unchanged on error.
func (z *Complex[T]) SubAssign(o Complex[T]) error {
	re, err := z.re.Sub(o.re)
	if err != nil {
		return cunitErrorf("Sub", err)
	}
	im, err := z.im.Sub(o.im)
	if err != nil {
		return cunitErrorf("Sub", err)
	}
	z.re, z.im = re, im

	return nil
}

// Inc adds one to both parts.
func (z *Complex[T]) Inc() {
	z.re.Inc()
	z.im.Inc()
}

// Dec subtracts one from both parts.
func (z *Complex[T]) Dec() {
	z.re.Dec()
	z.im.Dec()
}

// AddUnit returns z + u.
func (z Complex[T]) AddUnit(u unit.Unit[T]) (Complex[T], error) {
	return z.Add(FromReal(u))
}

// SubUnit returns z - u.
func (z Complex[T]) SubUnit(u unit.Unit[T]) (Complex[T], error) {
	return z.Sub(FromReal(u))
}

// UnitAdd returns u + z in u's scale and label.
func UnitAdd[T unit.Float](u unit.Unit[T], z Complex[T]) (Complex[T], error) {
	return FromReal(u).Add(z)
}

// UnitSub returns u - z in u's scale and label.
func UnitSub[T unit.Float](u unit.Unit[T], z Complex[T]) (Complex[T], error) {
	return FromReal(u).Sub(z)
}

// MulScalar returns x·z.
func (z Complex[T]) MulScalar(x T) Complex[T] {
	return Complex[T]{re: z.re.MulScalar(x), im: z.im.MulScalar(x)}
}

// DivScalar returns z/x.
func (z Complex[T]) DivScalar(x T) Complex[T] {
	return Complex[T]{re: z.re.DivScalar(x), im: z.im.DivScalar(x)}
}

// ScalarDiv returns the numeral x divided by z.
func ScalarDiv[T unit.Float](x T, z Complex[T]) (Complex[T], error) {
	return FromReal(unit.Numeral(x)).Div(z)
}

// MulUnit returns z·u with derived quantity, scale and label.
func (z Complex[T]) MulUnit(u unit.Unit[T]) (Complex[T], error) {
	re, err := z.re.Mul(u)
	if err != nil {
		return Complex[T]{}, cunitErrorf("MulUnit", err)
	}

	return Complex[T]{re: re, im: re.WithValue(z.im.Value() * u.Value())}, nil
}

// DivUnit returns z/u with derived quantity, scale and label.
func (z Complex[T]) DivUnit(u unit.Unit[T]) (Complex[T], error) {
	re, err := z.re.Div(u)
	if err != nil {
		return Complex[T]{}, cunitErrorf("DivUnit", err)
	}

	return Complex[T]{re: re, im: re.WithValue(z.im.Value() / u.Value())}, nil
}

// UnitDiv returns u/z.
func UnitDiv[T unit.Float](u unit.Unit[T], z Complex[T]) (Complex[T], error) {
	return FromReal(u).Div(z)
}

// Mul returns z·o:
//
//	(a + jb)(c + jd) = (ac − bd) + j(ad + bc)
//
// The quantity, scale and label are those of a·c.
func (z Complex[T]) Mul(o Complex[T]) (Complex[T], error) {
	tags, err := z.re.Mul(o.re)
	if err != nil {
		return Complex[T]{}, cunitErrorf("Mul", err)
	}
	a, b := z.re.Value(), z.im.Value()
	c, d := o.re.Value(), o.im.Value()

	return Complex[T]{
		re: tags.WithValue(a*c - b*d),
		im: tags.WithValue(a*d + b*c),
	}, nil
}

// Div returns z/o:
//
//	(a + jb)/(c + jd) = ((ac + bd) + j(bc − ad)) / (c² + d²)
//
// The quantity, scale and label are those of a/c. A zero divisor follows
// IEEE-754.
func (z Complex[T]) Div(o Complex[T]) (Complex[T], error) {
	tags, err := z.re.Div(o.re)
	if err != nil {
		return Complex[T]{}, cunitErrorf("Div", err)
	}
	a, b := z.re.Value(), z.im.Value()
	c, d := o.re.Value(), o.im.Value()
	n := c*c + d*d

	return Complex[T]{
		re: tags.WithValue((a*c + b*d) / n),
		im: tags.WithValue((b*c - a*d) / n),
	}, nil
}
