// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tm1629 controls a Titan Micro TM1629 LED display controller.
//
// The TM1629 drives up to 16 grids of 8 segments and scans a key matrix.
// It speaks a proprietary clock-synchronous serial protocol with a strobe
// line framing each transaction; bytes are shifted LSB first. The chip
// exists in a 3-wire variant (one shared bidirectional data line) and a
// 4-wire variant (separate data in and data out lines); both are
// supported.
//
// Displays built on the chip come in common-cathode and common-anode
// wiring. Common-anode boards swap the digit/segment roles of the chip's
// display RAM, so the driver keeps a host-side shadow of the register and
// transposes writes transparently; callers address digits logically in
// either case.
//
// # Datasheet
//
// https://www.makerhero.com/img/files/download/TM1629-Datasheet.pdf
package tm1629
