package ccdisplay

// Cell is the 16-bit unit stored in both the virtual framebuffer and the
// physical mirror: low byte is the post-charmap glyph code, high byte is
// the composed attribute byte (spec.md §3, §6 "Cell encoding").
type Cell uint16

// MakeCell packs a glyph code and an already-composed attribute byte into
// a Cell.
func MakeCell(glyph, attr byte) Cell {
	return Cell(attr)<<8 | Cell(glyph)
}

// Glyph returns the low byte: the device glyph code.
func (c Cell) Glyph() byte { return byte(c) }

// Attr returns the high byte: the composed attribute.
func (c Cell) Attr() byte { return byte(c >> 8) }

// attrByte is the settable monochrome attribute record (SGR state),
// packed into bits 0..1 (intensity), 2 (underline), 3 (reverse), 7
// (blink) when composed for a monochrome driver.
type attrByte struct {
	Intensity uint8 // 0..2
	Underline bool
	Reverse   bool
	Blink     bool
}

func (a attrByte) pack() byte {
	var b byte
	b |= a.Intensity & 0x03
	if a.Underline {
		b |= 1 << 2
	}
	if a.Reverse {
		b |= 1 << 3
	}
	if a.Blink {
		b |= 1 << 7
	}
	return b
}

// colorByte is the settable color attribute record: a 3-bit foreground
// index plus brightness bit, and a 3-bit background index plus brightness
// bit, matching the composed color-cell layout directly (spec.md §6).
type colorByte struct {
	Fg       uint8 // 0..7, device-native (post color-table mapping)
	FgBright bool
	Bg       uint8 // 0..7, device-native
	BgBright bool
}

func (c colorByte) pack() byte {
	var b byte
	b |= c.Fg & 0x07
	if c.FgBright {
		b |= 1 << 3
	}
	b |= (c.Bg & 0x07) << 4
	if c.BgBright {
		b |= 1 << 7
	}
	return b
}

func unpackColorByte(b byte) colorByte {
	return colorByte{
		Fg:       b & 0x07,
		FgBright: b&(1<<3) != 0,
		Bg:       (b >> 4) & 0x07,
		BgBright: b&(1<<7) != 0,
	}
}

// reverseColorAttr swaps the fg/bg index nibbles of a composed color
// attribute byte while leaving both brightness bits where they are
// (spec.md §6: "reverse_color_attr swaps nibbles preserving both bright
// bits").
func reverseColorAttr(a byte) byte {
	fgIdx := a & 0x07
	bgIdx := (a >> 4) & 0x07
	bright := a & 0x88 // bits 3 and 7, untouched
	return bright | bgIdx | (fgIdx << 4)
}

// ansiColorTable maps ANSI color indices 0..7 (as used by CSI m 30-37/40-47)
// to the device-native color code (spec.md §4.3: "The color table maps
// ANSI colour indices 0..7 to device-native {0,4,2,6,1,5,3,7}").
var ansiColorTable = [8]uint8{0, 4, 2, 6, 1, 5, 3, 7}

func ansiToDevice(idx uint8) uint8 {
	return ansiColorTable[idx&0x07]
}

// composeAttr builds the run-time composed attribute byte stored in fb's
// high byte from the current SGR state, honoring DECSCNM screen inversion.
// In monochrome mode this is attrs.pack() with the reverse bit flipped by
// decscnm; in color mode it is color.pack() with decscnm XORed against
// attrs.Reverse to decide whether to apply reverseColorAttr. Color-mode
// cells have no spare bit for blink: the attribute byte is entirely
// fg/bg/brightness (spec.md §6).
func composeAttr(canDoColor bool, attrs attrByte, color colorByte, decscnm bool) byte {
	if !canDoColor {
		eff := attrs
		eff.Reverse = attrs.Reverse != decscnm
		return eff.pack()
	}
	base := color.pack()
	if attrs.Reverse != decscnm {
		base = reverseColorAttr(base)
	}
	return base
}

// eraseAttr computes the attribute byte used to fill cleared regions:
// intensity forced to 1, underline forced off, current blink and color
// preserved, DECSCNM-reversed (spec.md §8 invariant 5).
func eraseAttr(canDoColor bool, attrs attrByte, color colorByte, decscnm bool) byte {
	a := attrs
	a.Intensity = 1
	a.Underline = false
	a.Reverse = false
	return composeAttr(canDoColor, a, color, decscnm)
}

const space byte = ' '
