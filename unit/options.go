// SPDX-License-Identifier: MIT
// Package unit: functional options for tolerance-based comparison.
//
// ApproxEqual is the only consumer. Exact comparisons (Equal, Less, ...)
// never take options: they follow the plain floating-point semantics of <.

package unit

import "math"

// Defaults.
const (
	// DefaultAbsTol is the absolute tolerance used by ApproxEqual.
	DefaultAbsTol = 1e-9

	// DefaultRelTol is the relative tolerance used by ApproxEqual.
	DefaultRelTol = 1e-9
)

const (
	panicAbsTolInvalid = "unit: WithAbsTol: tol must be finite, non-negative"
	panicRelTolInvalid = "unit: WithRelTol: tol must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective comparison configuration.
type Options struct {
	absTol float64
	relTol float64
}

// WithAbsTol sets the absolute tolerance.
//
// Panics if tol is negative, NaN or infinite.
func WithAbsTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithRelTol sets the relative tolerance.
//
// Panics if tol is negative, NaN or infinite.
func WithRelTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

func validTol(tol float64) bool {
	return !math.IsNaN(tol) && !math.IsInf(tol, 0) && tol >= 0
}

func defaultOptions() Options {
	return Options{absTol: DefaultAbsTol, relTol: DefaultRelTol}
}

// gatherOptions applies opts over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
