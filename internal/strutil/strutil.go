// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strutil implements arithmetic on buffers of ASCII decimal digits.
package strutil

import "strconv"

// AddAt adds v to the digit at index n of a and propagates the carry
// towards the start of the buffer. A carry out of index 0 leaves '1'
// there, and AddAt reports it so the caller can raise its exponent.
// An index outside a leaves the buffer untouched.
//
// An overflowing target digit is zeroed rather than wrapped: callers add
// at the first position they are about to truncate away, so only the
// carry out of it matters.
func AddAt(a []byte, n, v int) bool {
	if n < 0 || n >= len(a) {
		return false
	}
	for i := n; i >= 0; i-- {
		c := int(a[i]) + v
		if c <= '9' {
			a[i] = byte(c)
			return false
		}
		a[i] = '0'
		v = 1
	}
	a[0] = '1'
	return true
}

// SubAt subtracts v from the digit at index n of a and propagates the
// borrow towards the start of the buffer. A borrow past index 0 leaves
// every visited digit at '9', and SubAt reports it so the caller can
// lower its exponent.
func SubAt(a []byte, n, v int) bool {
	if n < 0 || n >= len(a) {
		return false
	}
	for i := n; i >= 0; i-- {
		c := int(a[i]) - v
		if c >= '0' {
			a[i] = byte(c)
			return false
		}
		a[i] = '9'
		v = 1
	}
	return true
}

// AppendExponent appends the exponent suffix of a decimal literal, "e"
// followed by e in decimal, to dst.
func AppendExponent(dst []byte, e int) []byte {
	dst = append(dst, 'e')
	return strconv.AppendInt(dst, int64(e), 10)
}

// TrimTrailingZeros drops trailing '0' digits from a, but never trims a
// non-empty buffer below a single digit.
func TrimTrailingZeros(a []byte) []byte {
	n := len(a)
	for n > 1 && a[n-1] == '0' {
		n--
	}
	return a[:n]
}
