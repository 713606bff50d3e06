// SPDX-License-Identifier: MIT

package si

import (
	"github.com/katalvlaran/strongunit/scale"
	"github.com/katalvlaran/strongunit/unit"
)

// Decimal prefixes as numeral units: si.Kilo.Of(3) is the numeral 3000 and
// si.Kilo.Of(3) times si.Meter.Symbol() is three kilometers.
var (
	Atto  = unit.DefinePrefix[Real](scale.Atto, "a_")
	Femto = unit.DefinePrefix[Real](scale.Femto, "f_")
	Pico  = unit.DefinePrefix[Real](scale.Pico, "p_")
	Nano  = unit.DefinePrefix[Real](scale.Nano, "n_")
	Micro = unit.DefinePrefix[Real](scale.Micro, "mc_")
	Milli = unit.DefinePrefix[Real](scale.Milli, "m_")
	Centi = unit.DefinePrefix[Real](scale.Centi, "c_")
	Deci  = unit.DefinePrefix[Real](scale.Deci, "d_")
	Deca  = unit.DefinePrefix[Real](scale.Deca, "da_")
	Hecto = unit.DefinePrefix[Real](scale.Hecto, "h_")
	Kilo  = unit.DefinePrefix[Real](scale.Kilo, "k_")
	Mega  = unit.DefinePrefix[Real](scale.Mega, "M_")
	Giga  = unit.DefinePrefix[Real](scale.Giga, "G_")
	Tera  = unit.DefinePrefix[Real](scale.Tera, "T_")
	Peta  = unit.DefinePrefix[Real](scale.Peta, "P_")
	Exa   = unit.DefinePrefix[Real](scale.Exa, "E_")
)
