// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil implements the power-of-ten machinery behind decimal
// digit generation for float64 values.
package mathutil

import "math"

const (
	// log10of2 converts binary exponents into decimal ones.
	log10of2 = 0.301029995664

	// maxPow10Exp and minPow10Exp bound the decimal exponents of
	// normalized float64 values, outside them Pow10 clamps.
	maxPow10Exp = 308
	minPow10Exp = -307
)

// pow10Table holds the first 160 powers of ten, enough for about half of
// the exponent range of a float64. Pow10 reaches the rest by repeated
// multiplication. The table is never mutated, so it is safe for
// unrestricted concurrent use.
var pow10Table = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22, 1e23, 1e24, 1e25, 1e26, 1e27, 1e28, 1e29,
	1e30, 1e31, 1e32, 1e33, 1e34, 1e35, 1e36, 1e37, 1e38, 1e39,
	1e40, 1e41, 1e42, 1e43, 1e44, 1e45, 1e46, 1e47, 1e48, 1e49,
	1e50, 1e51, 1e52, 1e53, 1e54, 1e55, 1e56, 1e57, 1e58, 1e59,
	1e60, 1e61, 1e62, 1e63, 1e64, 1e65, 1e66, 1e67, 1e68, 1e69,
	1e70, 1e71, 1e72, 1e73, 1e74, 1e75, 1e76, 1e77, 1e78, 1e79,
	1e80, 1e81, 1e82, 1e83, 1e84, 1e85, 1e86, 1e87, 1e88, 1e89,
	1e90, 1e91, 1e92, 1e93, 1e94, 1e95, 1e96, 1e97, 1e98, 1e99,
	1e100, 1e101, 1e102, 1e103, 1e104, 1e105, 1e106, 1e107, 1e108, 1e109,
	1e110, 1e111, 1e112, 1e113, 1e114, 1e115, 1e116, 1e117, 1e118, 1e119,
	1e120, 1e121, 1e122, 1e123, 1e124, 1e125, 1e126, 1e127, 1e128, 1e129,
	1e130, 1e131, 1e132, 1e133, 1e134, 1e135, 1e136, 1e137, 1e138, 1e139,
	1e140, 1e141, 1e142, 1e143, 1e144, 1e145, 1e146, 1e147, 1e148, 1e149,
	1e150, 1e151, 1e152, 1e153, 1e154, 1e155, 1e156, 1e157, 1e158, 1e159,
}

// Pow10 returns 10^n as a float64. Exponents beyond the normalized range
// clamp to 0 and +Inf.
func Pow10(n int) float64 {
	neg := false
	if n < 0 {
		if n < minPow10Exp {
			return 0
		}
		neg = true
		n = -n
	} else if n > maxPow10Exp {
		return math.Inf(1)
	}
	var d float64
	if n < len(pow10Table) {
		d = pow10Table[n]
	} else {
		d = pow10Table[len(pow10Table)-1]
		for {
			n -= len(pow10Table) - 1
			if n < len(pow10Table) {
				d *= pow10Table[n]
				break
			}
			d *= pow10Table[len(pow10Table)-1]
		}
	}
	if neg {
		return 1 / d
	}
	return d
}

// DecimalExpEstimate estimates the decimal exponent of a finite nonzero f.
// The estimate is within one of floor(log10(|f|)) in either direction.
func DecimalExpEstimate(f float64) int {
	_, e := math.Frexp(f)
	return int(float64(e) * log10of2)
}
