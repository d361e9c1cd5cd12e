// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1629

import (
	"errors"

	"periph.io/x/conn/v3/spi"
)

// ErrNotImplemented is returned for operations the driver does not
// support yet.
var ErrNotImplemented = errors.New("tm1629: not implemented")

// NewSPI would drive the chip through an SPI controller, using MOSI as
// the data line and chip select as the strobe.
//
// Not implemented: the chip needs the bus held for a mid-transaction
// direction turnaround during key scans and an LSB-first bit order, which
// don't map portably onto spi.Conn. Use New3Wire or New4Wire on GPIO
// pins instead.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	return nil, ErrNotImplemented
}
