// SPDX-License-Identifier: MIT

package si

import (
	"math"

	"github.com/katalvlaran/strongunit/cunit"
	"github.com/katalvlaran/strongunit/unit"
)

// Constants are functions so callers cannot rebind them.

// Pi returns the numeral π.
func Pi() unit.Unit[Real] { return unit.Numeral[Real](math.Pi) }

// E returns the numeral e.
func E() unit.Unit[Real] { return unit.Numeral[Real](math.E) }

// Zero returns the numeral 0.
func Zero() unit.Unit[Real] { return unit.Numeral[Real](0) }

// One returns the numeral 1.
func One() unit.Unit[Real] { return unit.Numeral[Real](1) }

// J returns the imaginary unit 0+j1 as a numeral.
func J() cunit.Complex[Real] { return cunit.Imag(One()) }
