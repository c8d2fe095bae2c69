// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dtoa

import (
	"math"
	"strconv"

	"github.com/avdva/dtoa/internal/mathutil"
	"github.com/avdva/dtoa/internal/strutil"
)

const (
	// nsignif is the number of decimal digits needed to distinguish any
	// two float64 values.
	nsignif = 17
	// scratchLen leaves room behind the digits for the exponent suffix
	// of the re-parse literal.
	scratchLen = nsignif + 10
	// maxCorrections bounds the verification loop. Scaling error leaves
	// the extracted digits within a few float64 ulps of the exact
	// value, at most a few dozen last-place decimal units. The worst
	// case observed over large random sweeps is 38 iterations.
	maxCorrections = 64
)

// fastPath gates the trailing-nine shortcut in generate. The shortcut
// can settle on a shorter digit string than the correction loop alone
// would; both strings re-parse to the same value. Tests flip this to
// check that equivalence.
var fastPath = true

// generate fills s with the decimal digits of f and returns the digit
// count, the decimal point position and the sign. s must be scratchLen
// bytes: the spare bytes hold exponent suffixes while the digits are
// re-parsed. The count is prec+1 significant digits or, in fixed mode,
// prec digits after the decimal point; it never exceeds nsignif and can
// reach zero in fixed mode when f rounds away entirely.
func generate(s []byte, f float64, fixed bool, prec int) (n, decpt int, neg bool) {
	if prec > nsignif {
		prec = nsignif
	}
	if prec < 0 {
		prec = 0
	}
	if math.IsNaN(f) {
		return copy(s, "nan"), NonFiniteDecpt, false
	}
	if f < 0 {
		f = -f
		neg = true
	}
	if math.IsInf(f, 0) {
		return copy(s, "inf"), NonFiniteDecpt, neg
	}

	e := 0
	g := f
	if g != 0 {
		// The estimate can be off by one either way, so g is recomputed
		// in unit steps until 1 <= g < 10 holds. Splitting the power of
		// ten into two factors keeps the intermediates finite when the
		// exponent sits near the end of the range.
		e = mathutil.DecimalExpEstimate(f)
		d, h := 0, f
		if e < -150 || e > 150 {
			d = e / 2
			h = f * mathutil.Pow10(-d)
		}
		g = h * mathutil.Pow10(d-e)
		for g < 1 {
			e--
			g = h * mathutil.Pow10(d-e)
		}
		for g >= 10 {
			e++
			g = h * mathutil.Pow10(d-e)
		}
	}

	// Take the nsignif most significant digits. Scaling leaves a small
	// error in the tail, repaired below against the exact parser.
	for i := 0; i < nsignif; i++ {
		d := int(g)
		s[i] = byte('0' + d)
		g = (g - float64(d)) * 10
	}

	// When the requested precision truncates near the end of the buffer,
	// a cheap decimal rounding often removes a run of nines and
	// round-trips exactly on the first try.
	c2 := prec + 1
	if fixed {
		c2 += e
	}
	exact := false
	if fastPath && c2 >= nsignif-2 {
		e, exact = roundNines(s, f, e)
	}
	if !exact {
		e = correct(s, f, e)
	}

	// Round to the requested precision by adding 5 one position past the
	// last kept digit. In fixed mode the position follows the decimal
	// point, and a request that rounds every digit away forces the
	// minimal exponent for the zero result.
	digits := s[:nsignif]
	c2 = prec + 1
	if fixed {
		if strutil.AddAt(digits, c2+e, 5) {
			e++
		}
		c2 += e
		if c2 < 0 {
			c2 = 0
			e = -prec - 1
		}
	} else if strutil.AddAt(digits, c2, 5) {
		e++
	}
	if c2 > nsignif {
		c2 = nsignif
	}
	return c2, e + 1, neg
}

// roundNines tries to eliminate a trailing run of nines: first with the
// last two digits zeroed, then with the preceding digit bumped by one.
// It reports whether one of the two candidates re-parses to exactly f,
// restoring the digits and the exponent otherwise.
func roundNines(s []byte, f float64, e int) (int, bool) {
	digits := s[:nsignif]
	var save [nsignif]byte
	copy(save[:], digits)
	digits[nsignif-2] = '0'
	digits[nsignif-1] = '0'
	if parseDecimal(s, e) == f {
		return e, true
	}
	bumped := e
	if strutil.AddAt(digits, nsignif-3, 1) {
		bumped++
	}
	if parseDecimal(s, bumped) == f {
		return bumped, true
	}
	copy(digits, save[:])
	return e, false
}

// correct nudges the digits one unit in the last place per iteration
// until they re-parse to exactly f. A carry out of the leading digit
// raises the exponent, a borrow past it lowers the exponent. Running out
// of iterations means the exponent estimate was broken, which cannot
// happen for an IEEE-754 double, so it is not a recoverable state.
func correct(s []byte, f float64, e int) int {
	digits := s[:nsignif]
	for i := 0; i < maxCorrections; i++ {
		g := parseDecimal(s, e)
		if g == f {
			return e
		}
		if g < f {
			if strutil.AddAt(digits, nsignif-1, 1) {
				e++
			}
		} else if strutil.SubAt(digits, nsignif-1, 1) {
			e--
		}
	}
	panic("dtoa: digit correction did not converge")
}

// parseDecimal returns the float64 nearest to 0.<digits> * 10^(e+1),
// where the digits are s[:nsignif]. The literal is built in the spare
// bytes of s and handed to strconv.ParseFloat, which performs the
// correctly-rounded parse the verification relies on. An out-of-range
// literal comes back clamped to 0 or +Inf, which is exactly what the
// comparisons need.
func parseDecimal(s []byte, e int) float64 {
	lit := strutil.AppendExponent(s[:nsignif], e-nsignif+1)
	g, _ := strconv.ParseFloat(string(lit), 64)
	return g
}
