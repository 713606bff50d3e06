// SPDX-License-Identifier: MIT

package unit

import (
	"math"
	"math/big"

	gonumunit "gonum.org/v1/gonum/unit"

	"github.com/katalvlaran/strongunit/quantity"
	"github.com/katalvlaran/strongunit/scale"
)

// siDims maps the named bases to gonum dimensions.
var siDims = [...]gonumunit.Dimension{
	quantity.Time:              gonumunit.TimeDim,
	quantity.Length:            gonumunit.LengthDim,
	quantity.Mass:              gonumunit.MassDim,
	quantity.Current:           gonumunit.CurrentDim,
	quantity.Temperature:       gonumunit.TemperatureDim,
	quantity.Substance:         gonumunit.MoleDim,
	quantity.LuminousIntensity: gonumunit.LuminousIntensityDim,
}

// gramsPerKilogram relates the mass base (gram) to the SI base (kilogram).
const gramsPerKilogram = 1000

// ToSI returns u as a gonum unit in coherent SI base units.
//
// Mass is stored in grams and reported in kilograms. Angles are reported in
// radians with gonum's AngleDim:
//   - a numeral at a non-decimal scale (radian, degree) is a plane angle;
//   - a numeral at Num2Sr is a solid angle, reported in steradians, which SI
//     treats as dimensionless;
//   - any other scale carrying Num2Rad^k (rad/s, rad/s²) keeps AngleDim k.
//
// Numerals at unity or SI-prefix scale are plain dimensionless numbers.
//
// Errors:
//   - ErrNotSIExpressible if an exponent is fractional or a reserved base
//     is used.
func (u Unit[T]) ToSI() (*gonumunit.Unit, error) {
	dims := gonumunit.Dimensions{}
	for b := quantity.Base(0); b < quantity.NumBases; b++ {
		e := u.q.Exponent(b)
		if e.IsZero() {
			continue
		}
		if !e.IsInt() || int(b) >= len(siDims) {
			return nil, unitErrorf("ToSI: "+u.q.String(), ErrNotSIExpressible)
		}
		dims[siDims[b]] = int(e.Num())
	}

	f, angle := siFactor(u.q, u.s)
	if angle != 0 {
		dims[gonumunit.AngleDim] = angle
	}
	v := mulRat(float64(u.value), f)
	if m := u.q.Exponent(quantity.Mass).Num(); m != 0 {
		v *= math.Pow(gramsPerKilogram, float64(-m))
	}

	return gonumunit.New(v, dims), nil
}

// siFactor returns the multiplier from scale s to SI units (grams aside) and
// the power of the plane angle that remains after the radian factor is
// taken out.
func siFactor(q quantity.Quantity, s scale.Scale) (*big.Rat, int) {
	if q.IsNumeral() {
		switch {
		case s == scale.Num2Sr:
			return scale.Factor(s, scale.Num2Sr), 0
		case !s.IsDecimal():
			return scale.Factor(s, scale.Num2Rad), 1
		}

		return s.Rat(), 0
	}

	k := s.RadianPower()
	f := s.Rat()
	rad := scale.Num2Rad.Rat()
	for i := 0; i < k; i++ {
		f.Quo(f, rad)
	}
	for i := 0; i > k; i-- {
		f.Mul(f, rad)
	}

	return f, k
}

// FromSI converts the gonum value g into like's quantity, scale and label.
//
// Errors:
//   - ErrQuantityMismatch if g's dimensions differ from like's.
//   - ErrNotSIExpressible if like itself has no SI form.
func FromSI[T Float](g gonumunit.Uniter, like Unit[T]) (Unit[T], error) {
	ref, err := like.WithValue(1).ToSI()
	if err != nil {
		return Unit[T]{}, unitErrorf("FromSI", err)
	}
	if !gonumunit.DimensionsMatch(g, ref) {
		return Unit[T]{}, unitErrorf("FromSI", ErrQuantityMismatch)
	}

	return like.WithValue(T(g.Unit().Value() / ref.Value())), nil
}
