// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dtoa converts double-precision floating point numbers into
// decimal digit strings. The digits are generated by scaling the value
// into [1, 10), reading off its 17 most significant decimal digits and
// then verifying them against a correctly-rounded parser, nudging the
// buffer one unit in the last place at a time until parsing the digits
// back reproduces the exact original bit pattern.
//
// A conversion reports a digit string, a decimal point position decpt
// and a sign, such that the value equals
//
//	(neg ? -1 : 1) * 0.D1D2...Dn * 10^decpt
//
// decpt == NonFiniteDecpt marks NaN and infinities instead of a real
// exponent. Conversions allocate their scratch space per call, so the
// package is safe for concurrent use.
package dtoa

import "github.com/avdva/dtoa/internal/strutil"

// Mode selects the formatting convention, mirroring the classic
// ecvt/fcvt/shortest triad.
type Mode int

const (
	// General gives the shortest digit string that still parses back
	// to the original value when ndigits is 0, and ndigits significant
	// digits otherwise.
	General Mode = iota
	// Exponential gives ndigits significant digits.
	Exponential
	// Fixed gives ndigits digits after the decimal point.
	Fixed
)

// NonFiniteDecpt is the decimal point position reported for NaN and
// infinities.
const NonFiniteDecpt = 9999

// Convert converts f into decimal digits under the given mode.
//
// ndigits == 0 requests full precision: every finite value yields digits
// that parse back to its exact bits, trimmed of trailing zeros, which is
// the round-trip representation. Otherwise ndigits is the significant
// digit count (General, Exponential) or the digits-after-point count
// (Fixed), capped at the 17 significant digits a float64 can need;
// rounding adds five at the first dropped digit, so halfway cases round
// away from zero.
//
// The digits carry no sign and no decimal point. NaN reports "nan",
// infinities report "inf", both with decpt == NonFiniteDecpt. Trailing
// zeros are trimmed down to a single digit; a Fixed request whose
// precision rounds f away entirely yields no digits at all. The sign is
// captured from the comparison f < 0, so -0.0 reports a false sign.
func Convert(f float64, mode Mode, ndigits int) (digits string, decpt int, neg bool) {
	b, decpt, neg := Digits(nil, f, mode, ndigits)
	return string(b), decpt, neg
}

// Digits is Convert appending the digits to buf instead of allocating a
// string.
func Digits(buf []byte, f float64, mode Mode, ndigits int) ([]byte, int, bool) {
	if mode != Fixed && ndigits > 0 {
		ndigits--
	}
	prec := ndigits
	if prec > nsignif || ndigits == 0 {
		prec = nsignif
	}
	var s [scratchLen]byte
	n, decpt, neg := generate(s[:], f, mode == Fixed, prec)
	return append(buf, strutil.TrimTrailingZeros(s[:n])...), decpt, neg
}

// Ecvt converts f to ndigits significant digits, ecvt style.
func Ecvt(f float64, ndigits int) (digits string, decpt int, neg bool) {
	return Convert(f, Exponential, ndigits)
}

// Fcvt converts f to ndigits digits after the decimal point, fcvt style.
func Fcvt(f float64, ndigits int) (digits string, decpt int, neg bool) {
	return Convert(f, Fixed, ndigits)
}
