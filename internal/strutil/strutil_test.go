// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in    string
		n, v  int
		out   string
		carry bool
	}{
		{"12345", 4, 1, "12346", false},
		{"12399", 3, 1, "12409", false},
		{"19999", 4, 1, "20000", false},
		{"99999", 4, 1, "10000", true},
		{"99999", 0, 1, "19999", true},
		{"12345", 2, 5, "12845", false},
		{"12945", 2, 5, "13045", false},
		{"00000", 4, 5, "00005", false},
		{"12345", 5, 1, "12345", false},
		{"12345", -1, 1, "12345", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b := []byte(test.in)
			a.Equal(test.carry, AddAt(b, test.n, test.v))
			a.Equal(test.out, string(b))
		})
	}
}

func TestSubAt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in     string
		n, v   int
		out    string
		borrow bool
	}{
		{"12346", 4, 1, "12345", false},
		{"12340", 4, 1, "12339", false},
		{"10000", 4, 1, "09999", false},
		{"00000", 4, 1, "99999", true},
		{"12345", 5, 1, "12345", false},
		{"12345", -1, 1, "12345", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b := []byte(test.in)
			a.Equal(test.borrow, SubAt(b, test.n, test.v))
			a.Equal(test.out, string(b))
		})
	}
}

func TestAppendExponent(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		e   int
		out string
	}{
		{0, "e0"},
		{5, "e5"},
		{-17, "e-17"},
		{308, "e308"},
		{-340, "e-340"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.out, string(AppendExponent(nil, test.e)))
		})
	}
}

func TestTrimTrailingZeros(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in, out string
	}{
		{"10000", "1"},
		{"100200", "1002"},
		{"12345", "12345"},
		{"0", "0"},
		{"000", "0"},
		{"", ""},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			trimmed := TrimTrailingZeros([]byte(test.in))
			a.Equal(test.out, string(trimmed))
			// trimming is idempotent
			a.Equal(test.out, string(TrimTrailingZeros(trimmed)))
		})
	}
}
