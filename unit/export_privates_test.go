// SPDX-License-Identifier: MIT

package unit

// OptionsSnapshot exposes the resolved tolerances to unit_test.
func OptionsSnapshot(opts ...Option) (absTol, relTol float64) {
	o := gatherOptions(opts...)

	return o.absTol, o.relTol
}

// ExportedConvert exposes the scale conversion kernel.
func ExportedConvert(v float64, from, to Unit[float64]) float64 {
	return convert(v, from.s, to.s)
}
