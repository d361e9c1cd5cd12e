// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segmentsim emulates a row of 7-segment LED digits on the
// terminal (stdout) using ANSI color codes.
//
// Useful while you are waiting for your TM1629 display board to come by
// mail: application code can render the same segment patterns it would
// send to the chip.
package segmentsim

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"periph.io/x/conn/v3"
	"periph.io/x/devices/v3/tm1629"
)

// Opts represents the options available for this display.
type Opts struct {
	// Digits is the number of 7-segment digits, 1 to 16.
	Digits int
	// On is the color of a lit segment. Defaults to LED red.
	On color.NRGBA
	// Off is the color of an unlit segment. Defaults to a dark gray.
	Off color.NRGBA
	// Palette is the ANSI palette used to map colors. Defaults to
	// ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a 7-segment display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	digits  int
	on      color.NRGBA
	off     color.NRGBA
	palette ansi256.Palette

	segments []byte
	drawn    bool
	buf      bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.Digits < 1 || opts.Digits > 16 {
		return nil, errors.New("segmentsim: digits must be in 1-16")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	on := opts.On
	if on == (color.NRGBA{}) {
		on = color.NRGBA{0xff, 0x20, 0x20, 0xff}
	}
	off := opts.Off
	if off == (color.NRGBA{}) {
		off = color.NRGBA{0x28, 0x28, 0x28, 0xff}
	}
	return &Dev{
		w:        colorable.NewColorableStdout(),
		digits:   opts.Digits,
		on:       on,
		off:      off,
		palette:  *p,
		segments: make([]byte, opts.Digits),
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("SegmentSim{%d}", d.digits)
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Write accepts raw 7-segment patterns, one byte per digit (bit 0 =
// segment A through bit 6 = segment G, bit 7 the decimal point), and
// redraws the emulated display.
func (d *Dev) Write(segments []byte) (int, error) {
	n := copy(d.segments, segments)
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return n, nil
}

// WriteString renders text through the driver's character encoder, so the
// emulator shows exactly what the chip would.
func (d *Dev) WriteString(text string) error {
	seg := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		seg = append(seg, tm1629.EncodeChar(text[i]))
	}
	_, err := d.Write(seg)
	return err
}

// Each digit is drawn as a 3x4 cell grid; the mask selects which segment
// bit owns the cell, 0 leaves the cell dark.
var segmentGrid = [3][4]byte{
	{0x00, 0x01, 0x00, 0x00}, // segment A
	{0x20, 0x40, 0x02, 0x00}, // F, G, B
	{0x10, 0x08, 0x04, 0x80}, // E, D, C, decimal point
}

func (d *Dev) refresh() error {
	// Designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	if d.drawn {
		// Redraw over the previous frame.
		_, _ = d.buf.WriteString("\033[3A")
	}
	for row := 0; row < 3; row++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for _, seg := range d.segments {
			for _, mask := range segmentGrid[row] {
				c := d.off
				if mask != 0 && seg&mask != 0 {
					c = d.on
				}
				_, _ = io.WriteString(&d.buf, d.palette.Block(c))
			}
			_, _ = d.buf.WriteString("\033[0m ")
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
