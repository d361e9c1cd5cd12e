// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1629

import (
	"fmt"
	"strings"
)

// Keys is the state of the 4x8 key matrix as a bitmap. Bit 0 is K1/KS1,
// bit 1 K2/KS1, up to bit 31 for K4/KS8: bit position = row*8 + column.
type Keys uint32

// Pressed reports whether the key at row (0-3, the K lines) and column
// (0-7, the KS lines) is down.
func (k Keys) Pressed(row, column int) bool {
	if row < 0 || row > 3 || column < 0 || column > 7 {
		return false
	}
	return k&(1<<(row*8+column)) != 0
}

func (k Keys) String() string {
	if k == 0 {
		return "none"
	}
	var pressed []string
	for row := 0; row < 4; row++ {
		for column := 0; column < 8; column++ {
			if k.Pressed(row, column) {
				pressed = append(pressed, fmt.Sprintf("K%d/KS%d", row+1, column+1))
			}
		}
	}
	return strings.Join(pressed, " ")
}

// ScanKeys reads the chip's four key scan registers and returns the state
// of the key matrix. The read command and the register transfer share one
// strobe bracket; on the 3-wire interface the data line direction flips
// mid-transaction.
func (d *Dev) ScanKeys() (Keys, error) {
	var regs [keyRegCount]byte
	err := d.bracket(func() error {
		if err := d.t.writeBytes([]byte{cmdData | cmdDataRead}); err != nil {
			return err
		}
		return d.t.readBytes(regs[:])
	})
	if err != nil {
		return 0, err
	}
	return decodeKeys(regs), nil
}

// decodeKeys unpacks the scan registers into the Keys layout. Register
// byte i carries two key columns: nibble bits 0-3 are rows K1-K4 of
// column 2i, bits 4-7 rows K1-K4 of column 2i+1. The order is fixed by
// the chip; see the datasheet's key scan map.
func decodeKeys(regs [keyRegCount]byte) Keys {
	var keys Keys
	for row := 0; row < 4; row++ {
		for i := keyRegCount - 1; i >= 0; i-- {
			lo := Keys(regs[i]>>row) & 1
			hi := Keys(regs[i]>>(4+row)) & 1
			keys |= lo << (row*8 + i*2)
			keys |= hi << (row*8 + i*2 + 1)
		}
	}
	return keys
}
