// SPDX-License-Identifier: MIT

package si_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strongunit/si"
	"github.com/katalvlaran/strongunit/unit"
)

// tol is the absolute tolerance for values that pass through conversions.
const tol = 1e-9

// must returns a check that fails the test on err and yields u:
// must(t)(a.Div(b)).
func must(t *testing.T) func(unit.Unit[si.Real], error) unit.Unit[si.Real] {
	return func(u unit.Unit[si.Real], err error) unit.Unit[si.Real] {
		t.Helper()
		require.NoError(t, err)

		return u
	}
}
