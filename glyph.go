// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1629

// 7-segment patterns, bit 0 = segment A through bit 6 = segment G. The
// first 16 entries are the hex digits, the rest the letters and symbols
// that have a workable 7-segment shape.
var glyphs = [...]byte{
	0x3f, // 0
	0x06, // 1
	0x5b, // 2
	0x4f, // 3
	0x66, // 4
	0x6d, // 5
	0x7d, // 6
	0x07, // 7
	0x7f, // 8
	0x6f, // 9
	0x77, // A
	0x7c, // b
	0x39, // C
	0x5e, // d
	0x79, // E
	0x71, // F
	0x6f, // g
	0x3d, // G
	0x74, // h
	0x76, // H
	0x04, // i
	0x30, // I
	0x0e, // j
	0x06, // l
	0x38, // L
	0x54, // n
	0x37, // N
	0x5c, // o
	0x3f, // O
	0x73, // P
	0x67, // q
	0x50, // r
	0x6d, // S
	0x78, // t
	0x1c, // u
	0x3e, // U
	0x6e, // y
	0x08, // _
	0x40, // -
	0x01, // ~ rendered as the top segment
}

// EncodeHex translates a hexadecimal value into its 7-segment pattern.
// It accepts 0-15 as well as the ASCII digits '0'-'9' and letters
// 'a'-'f'/'A'-'F'. Bit 7 of v is carried through as the decimal point.
// Anything else encodes as blank; encoding never fails.
func EncodeHex(v byte) byte {
	dp := v & DecimalPoint
	v &^= DecimalPoint
	switch {
	case v < 16:
		return glyphs[v] | dp
	case v >= '0' && v <= '9':
		return glyphs[v-'0'] | dp
	case v >= 'a' && v <= 'f':
		return glyphs[v-'a'+10] | dp
	case v >= 'A' && v <= 'F':
		return glyphs[v-'A'+10] | dp
	}
	return dp
}

// EncodeChar translates an ASCII character into its 7-segment pattern.
// Bit 7 of c is carried through as the decimal point. '.' encodes as the
// decimal point over a blank digit. Characters without a glyph encode as
// blank; encoding never fails.
func EncodeChar(c byte) byte {
	dp := c & DecimalPoint
	c &^= DecimalPoint
	if c == '.' {
		return DecimalPoint
	}
	if i, ok := charIndex(c); ok {
		return glyphs[i] | dp
	}
	return dp
}

func charIndex(c byte) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	switch c {
	case 'A', 'a':
		return 10, true
	case 'b', 'B':
		return 11, true
	case 'C', 'c':
		return 12, true
	case 'd', 'D':
		return 13, true
	case 'E', 'e':
		return 14, true
	case 'F', 'f':
		return 15, true
	case 'g':
		return 16, true
	case 'G':
		return 17, true
	case 'h':
		return 18, true
	case 'H':
		return 19, true
	case 'i':
		return 20, true
	case 'I':
		return 21, true
	case 'j', 'J':
		return 22, true
	case 'l':
		return 23, true
	case 'L':
		return 24, true
	case 'n':
		return 25, true
	case 'N':
		return 26, true
	case 'o':
		return 27, true
	case 'O':
		return 28, true
	case 'P', 'p':
		return 29, true
	case 'q', 'Q':
		return 30, true
	case 'r', 'R':
		return 31, true
	case 'S', 's':
		return 32, true
	case 't', 'T':
		return 33, true
	case 'u':
		return 34, true
	case 'U':
		return 35, true
	case 'y', 'Y':
		return 36, true
	case '_':
		return 37, true
	case '-':
		return 38, true
	case '~':
		return 39, true
	}
	return 0, false
}
