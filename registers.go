// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1629

// Common-anode wiring swaps the digit/segment roles of the chip's display
// RAM: segment n of logical digit p lives at bit p of RAM byte 2n for
// digits 0-7, and at bit p-8 of RAM byte 2n+1 for digits 8-15. Writes are
// therefore transposed through a host-side shadow of the register and the
// register is always retransmitted whole; partial writes are not possible
// in this mode.

// writeAnode folds the segment patterns into the shadow register and
// sends it to the chip starting at address 0.
func (d *Dev) writeAnode(start int, segments []byte) error {
	for j, seg := range segments {
		p := start + j
		plane := 0
		shift := uint(p)
		if p >= 8 {
			plane = 1
			shift = uint(p - 8)
		}
		// 8 bit planes, one per segment, stepping over the interleaved bank.
		for ; plane < registerSize; plane += 2 {
			if seg&1 != 0 {
				d.shadow[plane] |= 1 << shift
			} else {
				d.shadow[plane] &^= 1 << shift
			}
			seg >>= 1
		}
	}
	return d.writeRegister(0, d.shadow[:])
}
