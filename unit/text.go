// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"
	"io"
	"strconv"
)

// significant digits of the default text form
const textDigits = 6

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', textDigits, 64)
}

// String returns "<value>*<label>", e.g. "18*_km*(_h)^-1".
func (u Unit[T]) String() string {
	return formatFloat(float64(u.value)) + "*" + u.label
}

// Describe returns String followed by the exponent vector and the scale:
// "5*_m [<0:1><1:1>...<0:1> ; S=1000]".
func (u Unit[T]) Describe() string {
	return u.String() + " [" + u.q.Describe() + " ; S=" + formatFloat(u.s.Float64()) + "]"
}

// Format implements fmt.Formatter.
//
// %e %f %g (and upper-case forms) format the value with the given flags,
// width and precision, then append "*label". %v and %s print String; %+v
// prints Describe.
func (u Unit[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), float64(u.value))
		io.WriteString(f, "*"+u.label)
	case 'v':
		if f.Flag('+') {
			io.WriteString(f, u.Describe())

			return
		}
		io.WriteString(f, u.String())
	case 's':
		io.WriteString(f, u.String())
	default:
		fmt.Fprintf(f, "%%!%c(unit.Unit=%s)", verb, u.String())
	}
}

// Scan implements fmt.Scanner. It reads one whitespace-delimited token and
// parses it as a float into the stored value; the tags are kept.
//
// Errors (all wrapped by ScanError):
//   - ErrEmptyToken if no token is available.
//   - *strconv.NumError if the token is not a float literal.
func (u *Unit[T]) Scan(state fmt.ScanState, _ rune) error {
	v, err := scanFloat(state)
	if err != nil {
		return err
	}
	u.value = T(v)

	return nil
}

func scanFloat(state fmt.ScanState) (float64, error) {
	tok, err := state.Token(true, nil)
	if err != nil {
		return 0, ScanError.Wrap(err)
	}
	if len(tok) == 0 {
		return 0, ScanError.Wrap(ErrEmptyToken)
	}
	v, err := strconv.ParseFloat(string(tok), 64)
	if err != nil {
		return 0, ScanError.Wrap(err)
	}

	return v, nil
}
