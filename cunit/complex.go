// SPDX-License-Identifier: MIT

package cunit

import (
	"fmt"

	"github.com/katalvlaran/strongunit/unit"
)

// Complex is a complex value whose parts share one unit.
//
// The zero value is 0+j0 as a numeral with an empty label.
type Complex[T unit.Float] struct {
	re unit.Unit[T]
	im unit.Unit[T]
}

func cunitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New returns re + j·im with im converted into re's scale and label.
//
// Errors:
//   - unit.ErrQuantityMismatch if re and im differ in quantity.
func New[T unit.Float](re, im unit.Unit[T]) (Complex[T], error) {
	im, err := im.In(re)
	if err != nil {
		return Complex[T]{}, cunitErrorf("New", err)
	}

	return Complex[T]{re: re, im: im}, nil
}

// Must returns z or panics with err.
func Must[T unit.Float](z Complex[T], err error) Complex[T] {
	if err != nil {
		panic(err)
	}

	return z
}

// FromReal returns re + j0.
func FromReal[T unit.Float](re unit.Unit[T]) Complex[T] {
	return Complex[T]{re: re, im: re.WithValue(0)}
}

// Imag returns 0 + j·im.
func Imag[T unit.Float](im unit.Unit[T]) Complex[T] {
	return Complex[T]{re: im.WithValue(0), im: im}
}

// FromComplex returns c tagged with like's quantity, scale and label.
func FromComplex[T unit.Float](c complex128, like unit.Unit[T]) Complex[T] {
	return Complex[T]{re: like.WithValue(T(real(c))), im: like.WithValue(T(imag(c)))}
}

// Real returns the real part.
func (z Complex[T]) Real() unit.Unit[T] { return z.re }

// Imag returns the imaginary part.
func (z Complex[T]) Imag() unit.Unit[T] { return z.im }

// Unit returns the shared tags as a value-one unit.
func (z Complex[T]) Unit() unit.Unit[T] { return z.re.WithValue(1) }

// Complex128 returns the raw values in z's own scale.
func (z Complex[T]) Complex128() complex128 {
	return complex(float64(z.re.Value()), float64(z.im.Value()))
}

// Conj returns re - j·im.
func (z Complex[T]) Conj() Complex[T] {
	z.im = z.im.Neg()

	return z
}

// Neg returns -z.
func (z Complex[T]) Neg() Complex[T] {
	return Complex[T]{re: z.re.Neg(), im: z.im.Neg()}
}

// Norm returns re² + im², a unit of the squared quantity.
//
// Errors:
//   - scale.ErrOverflow if the squared scale does not fit.
func (z Complex[T]) Norm() (unit.Unit[T], error) {
	rr, err := z.re.Mul(z.re)
	if err != nil {
		return unit.Unit[T]{}, cunitErrorf("Norm", err)
	}

	return rr.WithValue(rr.Value() + z.im.Value()*z.im.Value()), nil
}

// In converts both parts into target's scale and label.
func (z Complex[T]) In(target unit.Unit[T]) (Complex[T], error) {
	re, err := z.re.In(target)
	if err != nil {
		return Complex[T]{}, cunitErrorf("In", err)
	}
	im, err := z.im.In(target)
	if err != nil {
		return Complex[T]{}, cunitErrorf("In", err)
	}

	return Complex[T]{re: re, im: im}, nil
}

// Equal reports component-wise equality after converting o into z's scale.
func (z Complex[T]) Equal(o Complex[T]) (bool, error) {
	re, err := z.re.Equal(o.re)
	if err != nil {
		return false, cunitErrorf("Equal", err)
	}
	im, err := z.im.Equal(o.im)
	if err != nil {
		return false, cunitErrorf("Equal", err)
	}

	return re && im, nil
}

// NotEqual reports !Equal.
func (z Complex[T]) NotEqual(o Complex[T]) (bool, error) {
	eq, err := z.Equal(o)

	return !eq && err == nil, err
}

// String returns "<re>+j<im>", or "<re>-j<|im|>" for a negative imaginary
// part.
func (z Complex[T]) String() string {
	if z.im.Value() >= 0 {
		return z.re.String() + "+j" + z.im.String()
	}

	return z.re.String() + "-j" + z.im.Neg().String()
}

// Describe returns both parts with their exponent vectors and scale.
func (z Complex[T]) Describe() string {
	return "Re: " + z.re.Describe() + "\nIm: " + z.im.Describe()
}

// Scan implements fmt.Scanner: two float tokens, real then imaginary. The
// tags are kept; z is unchanged unless both tokens parse.
func (z *Complex[T]) Scan(state fmt.ScanState, verb rune) error {
	re, im := z.re, z.im
	if err := re.Scan(state, verb); err != nil {
		return err
	}
	if err := im.Scan(state, verb); err != nil {
		return err
	}
	z.re, z.im = re, im

	return nil
}
