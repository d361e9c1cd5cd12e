// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1629

import (
	"fmt"
	"testing"
)

func TestEncodeHex(t *testing.T) {
	for _, tc := range []struct {
		in   byte
		want byte
	}{
		{0, 0x3f},
		{5, 0x6d},
		{9, 0x6f},
		{0x0a, 0x77},
		{0x0f, 0x71},
		{'0', 0x3f},
		{'9', 0x6f},
		{'a', 0x77},
		{'f', 0x71},
		{'A', 0x77},
		{'F', 0x71},
		// Decimal point flag is carried through.
		{5 | DecimalPoint, 0x6d | 0x80},
		{'b' | DecimalPoint, 0x7c | 0x80},
		// Out of range degrades to blank, never an error.
		{0x3a, 0x00},
		{'g', 0x00},
	} {
		t.Run(fmt.Sprintf("%#02x", tc.in), func(t *testing.T) {
			if got := EncodeHex(tc.in); got != tc.want {
				t.Errorf("EncodeHex(%#02x) = %#02x, want %#02x", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncodeChar(t *testing.T) {
	for _, tc := range []struct {
		in   byte
		want byte
	}{
		{'0', 0x3f},
		{'5', 0x6d},
		{'A', 0x77},
		{'b', 0x7c},
		{'g', 0x6f},
		{'G', 0x3d},
		{'H', 0x76},
		{'L', 0x38},
		{'n', 0x54},
		{'o', 0x5c},
		{'P', 0x73},
		{'r', 0x50},
		{'S', 0x6d},
		{'t', 0x78},
		{'U', 0x3e},
		{'y', 0x6e},
		{'_', 0x08},
		{'-', 0x40},
		{'~', 0x01},
		{' ', 0x00},
		// '.' is the decimal point over a blank digit.
		{'.', 0x80},
		{'5' | DecimalPoint, 0x6d | 0x80},
		// Unmapped characters degrade to blank, never an error.
		{'@', 0x00},
		{'@' | DecimalPoint, 0x80},
		{'z', 0x00},
		{0x00, 0x00}, // NUL has no glyph either
	} {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			if got := EncodeChar(tc.in); got != tc.want {
				t.Errorf("EncodeChar(%q) = %#02x, want %#02x", tc.in, got, tc.want)
			}
		})
	}
}

// The character and hex paths must agree on the shared digits.
func TestEncodePathsAgree(t *testing.T) {
	for v := byte(0); v < 10; v++ {
		if hex, chr := EncodeHex(v), EncodeChar('0'+v); hex != chr {
			t.Errorf("digit %d: hex path %#02x, char path %#02x", v, hex, chr)
		}
	}
	for v := byte(10); v < 16; v++ {
		if hex, chr := EncodeHex(v), EncodeChar('A'+v-10); hex != chr {
			t.Errorf("digit %X: hex path %#02x, char path %#02x", v, hex, chr)
		}
	}
	if EncodeChar('5') != 0x6d || EncodeHex(5) != 0x6d {
		t.Error("digit 5 must encode to 0x6d on both paths")
	}
}
