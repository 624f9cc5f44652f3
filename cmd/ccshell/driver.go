package main

import (
	"fmt"
	"os"

	"github.com/ccdisplay/ccdisplay"
)

// hostDriver implements ccdisplay.DriverPort by translating each changed
// cell into a cursor-position + SGR + rune ANSI write against the real
// host terminal. It plays the role the teacher's Renderer plays for
// purfecterm's own buffer, but against ccdisplay's packed 16-bit cells
// instead of purfecterm's rich Cell struct.
type hostDriver struct {
	cols int
	out  *os.File
}

func newHostDriver(cols int) *hostDriver {
	return &hostDriver{cols: cols, out: os.Stdout}
}

func (d *hostDriver) WriteChar(offset int, cell ccdisplay.Cell) {
	row, col := offset/d.cols, offset%d.cols
	fmt.Fprintf(d.out, "\x1b[%d;%dH%s%c", row+1, col+1, sgrFor(cell.Attr()), cell.Glyph())
}

func (d *hostDriver) InitPort() error    { return nil }
func (d *hostDriver) CleanupPort() error { return nil }

func (d *hostDriver) ClearDisplay() {
	fmt.Fprint(d.out, "\x1b[2J\x1b[H")
}

func (d *hostDriver) ValidateDriver() int { return 1 } // color-capable

// sgrFor renders ccdisplay's composed color attribute byte (bits 0..2 fg,
// bit 3 fg-bright, bits 4..6 bg, bit 7 bg-bright — spec.md §6 cell
// encoding) as an ANSI SGR escape.
func sgrFor(attr byte) string {
	fg := attr & 0x07
	fgBright := attr&0x08 != 0
	bg := (attr >> 4) & 0x07
	bgBright := attr&0x80 != 0

	fgCode := 30 + int(fg)
	if fgBright {
		fgCode += 60
	}
	bgCode := 40 + int(bg)
	if bgBright {
		bgCode += 60
	}
	return fmt.Sprintf("\x1b[0;%d;%dm", fgCode, bgCode)
}
