// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1629

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Timing floors from the datasheet. The chip tolerates a much slower bus;
// these only bound how fast a very quick GPIO path may toggle the lines.
const (
	clockPulse   = 1 * time.Microsecond
	readSettle   = 5 * time.Microsecond
	interByteGap = 2 * time.Microsecond
)

// transport moves bytes over the chip's serial interface. Implementations
// own the pins. Strobe framing is not part of a transfer; the command
// layer brackets one or more transfers with setStrobe calls.
type transport interface {
	fmt.Stringer
	// setup configures pin directions and idle levels.
	setup() error
	// setStrobe drives the strobe line.
	setStrobe(l gpio.Level) error
	// writeBytes shifts out p, LSB first.
	writeBytes(p []byte) error
	// readBytes shifts in len(p) bytes, LSB first.
	readBytes(p []byte) error
	// halt releases the pins.
	halt() error
}

// threeWire shares one bidirectional data line between writes and reads.
type threeWire struct {
	clk gpio.PinOut
	stb gpio.PinOut
	dio gpio.PinIO
}

func (t *threeWire) String() string {
	return fmt.Sprintf("3-wire{clk:%s stb:%s dio:%s}", t.clk, t.stb, t.dio)
}

func (t *threeWire) setup() error {
	eh := pinErrorHandler{}
	eh.out(t.clk, gpio.High)
	eh.out(t.stb, gpio.High)
	eh.out(t.dio, gpio.Low)
	return eh.err
}

func (t *threeWire) setStrobe(l gpio.Level) error {
	return t.stb.Out(l)
}

func (t *threeWire) writeBytes(p []byte) error {
	// The data line may still be an input after a key scan.
	if err := t.dio.Out(gpio.Low); err != nil {
		return err
	}
	return shiftOut(t.clk, t.dio, p)
}

func (t *threeWire) readBytes(p []byte) error {
	// The chip drives the shared line open-drain while reading.
	if err := t.dio.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return err
	}
	time.Sleep(readSettle)
	return shiftIn(t.clk, t.dio, p)
}

func (t *threeWire) halt() error {
	eh := pinErrorHandler{}
	eh.halt(t.clk)
	eh.halt(t.stb)
	eh.halt(t.dio)
	return eh.err
}

// fourWire uses separate data-in and data-out lines. Runtime direction
// changes are unnecessary; dout is configured once at setup.
type fourWire struct {
	clk  gpio.PinOut
	stb  gpio.PinOut
	din  gpio.PinOut
	dout gpio.PinIn
}

func (t *fourWire) String() string {
	return fmt.Sprintf("4-wire{clk:%s stb:%s din:%s dout:%s}", t.clk, t.stb, t.din, t.dout)
}

func (t *fourWire) setup() error {
	eh := pinErrorHandler{}
	eh.out(t.clk, gpio.High)
	eh.out(t.stb, gpio.High)
	eh.out(t.din, gpio.Low)
	if eh.err == nil {
		eh.err = t.dout.In(gpio.PullUp, gpio.NoEdge)
	}
	return eh.err
}

func (t *fourWire) setStrobe(l gpio.Level) error {
	return t.stb.Out(l)
}

func (t *fourWire) writeBytes(p []byte) error {
	return shiftOut(t.clk, t.din, p)
}

func (t *fourWire) readBytes(p []byte) error {
	time.Sleep(readSettle)
	return shiftIn(t.clk, t.dout, p)
}

func (t *fourWire) halt() error {
	eh := pinErrorHandler{}
	eh.halt(t.clk)
	eh.halt(t.stb)
	eh.halt(t.din)
	eh.halt(t.dout)
	return eh.err
}

// shiftOut clocks out p LSB first: clock low, setup time, data bit, clock
// high, hold time. The chip latches on the rising edge.
func shiftOut(clk, data gpio.PinOut, p []byte) error {
	eh := pinErrorHandler{}
	for _, b := range p {
		for bit := 0; bit < 8; bit++ {
			eh.out(clk, gpio.Low)
			time.Sleep(clockPulse)
			eh.out(data, gpio.Level(b&1 != 0))
			eh.out(clk, gpio.High)
			if eh.err != nil {
				return eh.err
			}
			time.Sleep(clockPulse)
			b >>= 1
		}
	}
	return nil
}

// shiftIn samples the data line after each rising clock edge, LSB first,
// with a short gap between bytes.
func shiftIn(clk gpio.PinOut, data gpio.PinIn, p []byte) error {
	eh := pinErrorHandler{}
	for i := range p {
		var b byte
		for bit := 0; bit < 8; bit++ {
			eh.out(clk, gpio.Low)
			time.Sleep(clockPulse)
			eh.out(clk, gpio.High)
			if eh.err != nil {
				return eh.err
			}
			if data.Read() {
				b |= 1 << bit
			}
			time.Sleep(clockPulse)
		}
		p[i] = b
		time.Sleep(interByteGap)
	}
	return nil
}

// pinErrorHandler latches the first pin error and turns later calls into
// no-ops, so multi-step pin sequences read linearly.
type pinErrorHandler struct {
	err error
}

func (eh *pinErrorHandler) out(p gpio.PinOut, l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = p.Out(l)
}

func (eh *pinErrorHandler) halt(p conn.Resource) {
	if eh.err != nil {
		return
	}
	eh.err = p.Halt()
}

var _ transport = &threeWire{}
var _ transport = &fourWire{}
