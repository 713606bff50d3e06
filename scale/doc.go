// Package scale provides exact rational multipliers used to convert values
// between units of the same physical quantity.
//
// 🚀 What is a Scale?
//
//	A Scale is a reduced fraction up/down of positive integers. A unit whose
//	scale is 1000/1 (kilo) stores 1 for what a unity-scaled unit stores as
//	1000. Converting a value between two scales of the same quantity is a
//	single multiplication by (from.up/from.down)/(to.up/to.down).
//
// ✨ Key features:
//   - always reduced: gcd(up, down) == 1 after every constructor and operator
//   - overflow-checked products (Mul, Div, Pow) over uint64
//   - exact square roots only: Sqrt fails unless both terms are perfect squares
//   - the zero Scale{} is Unity, so zero-valued units are usable
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strongunit/scale"
//
//	kmh := scale.MustNew(1000, 3600) // 5/18
//	f := scale.Factor(kmh, scale.Unity) // exact 5/18 as *big.Rat
//
// Scales are immutable values; every operator returns a new Scale.
package scale
