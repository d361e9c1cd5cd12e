// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1629

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// DisplayType selects the LED wiring topology of the display board.
type DisplayType int

const (
	// CommonCathode boards map one display RAM address to one digit.
	CommonCathode DisplayType = iota
	// CommonAnode boards multiplex segments across RAM addresses; the
	// driver transposes writes through a shadow register.
	CommonAnode
)

func (t DisplayType) String() string {
	switch t {
	case CommonCathode:
		return "common-cathode"
	case CommonAnode:
		return "common-anode"
	default:
		return "unknown"
	}
}

const (
	// DecimalPoint is OR'd onto a segment pattern, or onto the input of
	// EncodeHex/EncodeChar, to light the digit's decimal point.
	DecimalPoint byte = 0x80

	// MaxBrightness is the highest brightness step the chip supports.
	MaxBrightness = 7

	// registerSize is the chip's display RAM size in bytes (addresses 0-15).
	registerSize = 16

	// keyRegCount is the number of bytes returned by a key scan.
	keyRegCount = 4
)

// Command bytes. Refer to the datasheet, "Data command setting",
// "Address command setting" and "Display control".
const (
	cmdData     byte = 0x40 // write display data, auto-increment, normal mode
	cmdDataRead byte = 0x02 // OR'd onto cmdData to read the key registers
	cmdAddr     byte = 0xc0 // OR'd with the start address 0-15
	cmdCtrl     byte = 0x80 // OR'd with brightness and the on bit
	cmdCtrlOn   byte = 0x08
)

// Opts holds the configuration for the device.
type Opts struct {
	// Type selects common-cathode or common-anode wiring.
	Type DisplayType
	// Brightness is the initial brightness step (0 to MaxBrightness).
	Brightness int
	// On turns the display on after initialization.
	On bool
}

// DefaultOpts is a common-cathode display at a comfortable brightness.
var DefaultOpts = Opts{Type: CommonCathode, Brightness: 2, On: true}

// Dev is a handle to a TM1629.
//
// Every method performs a complete strobe-framed transaction before
// returning. Dev does no internal locking; the caller must serialize
// access to a single device.
type Dev struct {
	t          transport
	typ        DisplayType
	brightness int
	on         bool

	// shadow mirrors the chip's display RAM in common-anode mode, where a
	// digit's segments are scattered across the register and every update
	// rewrites it whole.
	shadow [registerSize]byte
}

// New3Wire returns a device driven over clk, stb and a single shared
// bidirectional data line. The data line's direction is flipped by the
// driver as the protocol requires; on reads it is configured as an input
// with a pull-up since the chip is open-drain.
func New3Wire(clk, stb gpio.PinOut, dio gpio.PinIO, opts *Opts) (*Dev, error) {
	if clk == nil || stb == nil || dio == nil {
		return nil, errors.New("tm1629: clk, stb and dio pins are all required")
	}
	return newDev(&threeWire{clk: clk, stb: stb, dio: dio}, opts)
}

// New4Wire returns a device driven over clk, stb and separate data-in and
// data-out lines. No direction changes happen at runtime; dout is
// configured once as an input with a pull-up.
func New4Wire(clk, stb, din gpio.PinOut, dout gpio.PinIn, opts *Opts) (*Dev, error) {
	if clk == nil || stb == nil || din == nil || dout == nil {
		return nil, errors.New("tm1629: clk, stb, din and dout pins are all required")
	}
	return newDev(&fourWire{clk: clk, stb: stb, din: din, dout: dout}, opts)
}

func newDev(t transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Brightness < 0 || opts.Brightness > MaxBrightness {
		return nil, fmt.Errorf("tm1629: brightness %d out of range 0-%d", opts.Brightness, MaxBrightness)
	}
	d := &Dev{t: t, typ: opts.Type, brightness: opts.Brightness, on: opts.On}
	if err := t.setup(); err != nil {
		return nil, err
	}
	if err := d.Clear(); err != nil {
		return nil, err
	}
	if err := d.ConfigDisplay(opts.Brightness, opts.On); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("TM1629{%s, %s}", d.t, d.typ)
}

// ConfigDisplay sets the brightness step and turns the display on or off.
// Brightness values above MaxBrightness are silently truncated to the low
// 3 bits, matching what the chip does with the control byte.
func (d *Dev) ConfigDisplay(brightness int, on bool) error {
	ctrl := cmdCtrl | byte(brightness)&0x07
	if on {
		ctrl |= cmdCtrlOn
	}
	if err := d.bracket(func() error {
		return d.t.writeBytes([]byte{ctrl})
	}); err != nil {
		return err
	}
	d.brightness = int(byte(brightness) & 0x07)
	d.on = on
	return nil
}

// SetBrightness changes the brightness step, keeping the current on/off
// state.
func (d *Dev) SetBrightness(brightness int) error {
	return d.ConfigDisplay(brightness, d.on)
}

// Display turns the display on or off, keeping the current brightness.
func (d *Dev) Display(on bool) error {
	return d.ConfigDisplay(d.brightness, on)
}

// SetDigit writes a raw 7-segment pattern to one digit. Bit 0 is segment A
// through bit 6 segment G; bit 7 is the decimal point.
func (d *Dev) SetDigit(pos int, segments byte) error {
	return d.SetDigits(pos, []byte{segments})
}

// SetDigits writes raw 7-segment patterns to consecutive digits starting
// at logical position start (0-15). Patterns that would run past the end
// of the 16 byte display register are dropped.
func (d *Dev) SetDigits(start int, segments []byte) error {
	if start < 0 || start >= registerSize {
		return fmt.Errorf("tm1629: start position %d out of range 0-%d", start, registerSize-1)
	}
	if len(segments) > registerSize-start {
		segments = segments[:registerSize-start]
	}
	if len(segments) == 0 {
		return nil
	}
	if d.typ == CommonAnode {
		return d.writeAnode(start, segments)
	}
	return d.writeRegister(start, segments)
}

// SetDigitHex displays a hexadecimal value 0-15 (or an ASCII hex digit) on
// one digit. OR DecimalPoint onto value to light the decimal point.
func (d *Dev) SetDigitHex(pos int, value byte) error {
	return d.SetDigits(pos, []byte{EncodeHex(value)})
}

// SetDigitsHex displays hexadecimal values on consecutive digits starting
// at start.
func (d *Dev) SetDigitsHex(start int, values []byte) error {
	return d.SetDigits(start, encodeAll(values, EncodeHex))
}

// SetDigitChar displays an ASCII character on one digit. Characters
// without a 7-segment shape display as blank. OR DecimalPoint onto c to
// light the decimal point.
func (d *Dev) SetDigitChar(pos int, c byte) error {
	return d.SetDigits(pos, []byte{EncodeChar(c)})
}

// SetDigitsChar displays ASCII characters on consecutive digits starting
// at start.
func (d *Dev) SetDigitsChar(start int, chars []byte) error {
	return d.SetDigits(start, encodeAll(chars, EncodeChar))
}

// Clear blanks the whole display register.
func (d *Dev) Clear() error {
	if d.typ == CommonAnode {
		d.shadow = [registerSize]byte{}
		return d.writeRegister(0, d.shadow[:])
	}
	var blank [registerSize]byte
	return d.writeRegister(0, blank[:])
}

// Halt blanks the display, turns it off and releases the pins. It
// implements conn.Resource.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.Display(false); err != nil {
		return err
	}
	return d.t.halt()
}

// bracket frames fn in a strobe-low/strobe-high envelope, one chip
// transaction. On failure the strobe is still raised best-effort and the
// first error wins.
func (d *Dev) bracket(fn func() error) error {
	if err := d.t.setStrobe(gpio.Low); err != nil {
		return err
	}
	if err := fn(); err != nil {
		_ = d.t.setStrobe(gpio.High)
		return err
	}
	return d.t.setStrobe(gpio.High)
}

// writeRegister sends the write-data command, then the start address
// followed by the payload, each in its own strobe bracket. The chip
// auto-increments the address while the payload is clocked in.
func (d *Dev) writeRegister(addr int, data []byte) error {
	if err := d.bracket(func() error {
		return d.t.writeBytes([]byte{cmdData})
	}); err != nil {
		return err
	}
	return d.bracket(func() error {
		buf := make([]byte, 0, len(data)+1)
		buf = append(buf, cmdAddr|byte(addr&0x0f))
		buf = append(buf, data...)
		return d.t.writeBytes(buf)
	})
}

func encodeAll(in []byte, encode func(byte) byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[i] = encode(b)
	}
	return out
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
