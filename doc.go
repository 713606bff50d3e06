// Package strongunit is a strongly typed physical-units toolkit for Go:
// values carry their quantity and scale, arithmetic keeps them consistent,
// and conversions between scales are exact rationals.
//
// 🚀 What is strongunit?
//
//	A small, zero-surprise library built from four layers:
//		• quantity/ : exponent vectors over ten bases (T, L, M, I, Θ, N, J, R7..R9)
//		• scale/    : reduced uint64 ratios with overflow-checked arithmetic
//		• unit/     : Unit[T], a float value tagged with quantity, scale and label
//		• cunit/    : Complex[T], a complex value whose parts share one unit
//	plus the si/ catalog of named quantities, units, prefixes and constants.
//
// ✨ Why choose strongunit?
//
//   - Mixing incompatible quantities is an error, never a silent result
//   - Scale conversions are exact: 1 km + 500 m is 1.5 km in every order
//   - Interop with gonum.org/v1/gonum/unit through ToSI and FromSI
//   - Generic over float32 and float64
//
// Quick start:
//
//	v := unit.Must(si.Meter.Of(10).Div(si.Second.Of(2)))
//	fmt.Println(unit.Must(si.KilometerPerHour.From(v))) // 18*_kmph
//
// See examples/ for runnable walkthroughs (conversions, pendulum, RLC).
package strongunit
