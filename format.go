// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dtoa

import (
	"bytes"
	"strconv"

	"github.com/avdva/dtoa/internal/strutil"
)

var manyZeros = bytes.Repeat([]byte{'0'}, 340)

// Format renders f with the given verb, one of
//
//	'e'	d.ddde±x, prec digits after the decimal point
//	'f'	ddd.ddd, prec digits after the decimal point
//	'g'	prec significant digits, fixed style for decimal exponents
//		in [-4, 21), exponential style otherwise, trailing zeros
//		trimmed
//
// A negative prec requests the shortest digits that parse back to f, for
// any verb; so does prec == 0 under 'g'. The exponent of 'e' output is
// signed and carries no leading zeros.
func Format(f float64, verb byte, prec int) string {
	return string(Append(nil, f, verb, prec))
}

// Append renders f like Format, appending to dst.
func Append(dst []byte, f float64, verb byte, prec int) []byte {
	var s [scratchLen]byte
	switch verb {
	case 'e':
		if prec < 0 {
			n, decpt, neg := generate(s[:], f, false, nsignif)
			if decpt == NonFiniteDecpt {
				return appendNonFinite(dst, s[:n], neg)
			}
			return appendExponential(dst, strutil.TrimTrailingZeros(s[:n]), decpt, neg, -1)
		}
		n, decpt, neg := generate(s[:], f, false, prec)
		if decpt == NonFiniteDecpt {
			return appendNonFinite(dst, s[:n], neg)
		}
		return appendExponential(dst, s[:n], decpt, neg, prec)
	case 'f':
		if prec < 0 {
			n, decpt, neg := generate(s[:], f, false, nsignif)
			if decpt == NonFiniteDecpt {
				return appendNonFinite(dst, s[:n], neg)
			}
			return appendPoint(dst, strutil.TrimTrailingZeros(s[:n]), decpt, neg, -1)
		}
		n, decpt, neg := generate(s[:], f, true, prec)
		if decpt == NonFiniteDecpt {
			return appendNonFinite(dst, s[:n], neg)
		}
		return appendPoint(dst, s[:n], decpt, neg, prec)
	case 'g':
		p := nsignif
		if prec > 0 {
			p = prec - 1
		}
		n, decpt, neg := generate(s[:], f, false, p)
		if decpt == NonFiniteDecpt {
			return appendNonFinite(dst, s[:n], neg)
		}
		digits := strutil.TrimTrailingZeros(s[:n])
		lim := 21
		if prec > 0 {
			lim = prec
		}
		if x := decpt - 1; x < -4 || x >= lim {
			return appendExponential(dst, digits, decpt, neg, -1)
		}
		return appendPoint(dst, digits, decpt, neg, -1)
	}
	return append(dst, '%', verb)
}

// appendExponential renders d.ddde±x, padding the fraction with zeros up
// to prec digits, or taking the digits as they are if prec is negative.
func appendExponential(dst, digits []byte, decpt int, neg bool, prec int) []byte {
	if neg {
		dst = append(dst, '-')
	}
	dst = append(dst, digits[0])
	if prec < 0 {
		prec = len(digits) - 1
	}
	if prec > 0 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:]...)
		dst = appendZeros(dst, prec-(len(digits)-1))
	}
	dst = append(dst, 'e')
	x := decpt - 1
	if x < 0 {
		dst = append(dst, '-')
		x = -x
	} else {
		dst = append(dst, '+')
	}
	return strconv.AppendInt(dst, int64(x), 10)
}

// appendPoint renders plain fixed-point form, padding the fraction with
// zeros up to prec digits, or taking the digits as they are if prec is
// negative. An empty digit string is a zero that was rounded away.
func appendPoint(dst, digits []byte, decpt int, neg bool, prec int) []byte {
	if neg {
		dst = append(dst, '-')
	}
	lead := 0
	if decpt > 0 {
		if decpt >= len(digits) {
			dst = append(dst, digits...)
			dst = appendZeros(dst, decpt-len(digits))
			digits = digits[:0]
		} else {
			dst = append(dst, digits[:decpt]...)
			digits = digits[decpt:]
		}
	} else {
		lead = -decpt
		dst = append(dst, '0')
	}
	if prec < 0 {
		prec = lead + len(digits)
	}
	if prec == 0 {
		return dst
	}
	dst = append(dst, '.')
	dst = appendZeros(dst, lead)
	dst = append(dst, digits...)
	return appendZeros(dst, prec-lead-len(digits))
}

func appendNonFinite(dst, digits []byte, neg bool) []byte {
	if neg {
		dst = append(dst, '-')
	}
	return append(dst, digits...)
}

func appendZeros(dst []byte, n int) []byte {
	for n > len(manyZeros) {
		dst = append(dst, manyZeros...)
		n -= len(manyZeros)
	}
	if n > 0 {
		dst = append(dst, manyZeros[:n]...)
	}
	return dst
}
