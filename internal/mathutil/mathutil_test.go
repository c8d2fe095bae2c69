// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow10Exact(t *testing.T) {
	a := assert.New(t)
	// 1e22 is the largest power of ten a float64 represents exactly.
	for n := 0; n <= 22; n++ {
		a.Equal(math.Pow10(n), Pow10(n), "n=%d", n)
	}
}

func TestPow10Range(t *testing.T) {
	a := assert.New(t)
	for n := -307; n <= 308; n++ {
		got := Pow10(n)
		if a.False(math.IsInf(got, 0), "n=%d", n) && a.NotZero(got, "n=%d", n) {
			a.InEpsilon(math.Pow10(n), got, 1e-13, "n=%d", n)
		}
	}
}

func TestPow10Clamp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n   int
		res float64
	}{
		{309, math.Inf(1)},
		{400, math.Inf(1)},
		{-308, 0},
		{-400, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Pow10(test.n))
		})
	}
}

func TestDecimalExpEstimate(t *testing.T) {
	a := assert.New(t)
	tests := []float64{
		1, 2, 9.999, 10, 0.1, 0.5, 123.456,
		math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64,
		1e-300, 1e300, 2.2250738585072014e-308,
	}
	for i, f := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			want := math.Floor(math.Log10(f))
			a.InDelta(want, float64(DecimalExpEstimate(f)), 1, "f=%g", f)
		})
	}
}
