package ccdisplay

import "io"

// Whence values for Seek, mirroring os.File's (spec.md supplemented
// feature: "lseek whence semantics", grounded on
// original_source/examples/test_read.c / test_write.c).
const (
	SeekSet = io.SeekStart
	SeekCur = io.SeekCurrent
	SeekEnd = io.SeekEnd
)

// cursorPos is the engine's current seek offset into fb, in the positioned
// byte read/write sense of spec.md §6 ("a seekable cursor over fb where
// seek ultimately calls gotoxy").
func (e *Engine) cursorPos() int { return e.cursorOffset() }

// Seek repositions the engine's read/write cursor within the virtual
// screen's linear address space ([0, fb_size)), honoring SEEK_SET/
// SEEK_CUR/SEEK_END, and relocates the cursor via gotoxay so the frame
// window follows it (spec.md §6, supplemented lseek semantics).
func (e *Engine) Seek(offset int64, whence int) (int64, error) {
	fbSize := int64(len(e.fb))
	var target int64
	switch whence {
	case SeekSet:
		target = offset
	case SeekCur:
		target = int64(e.cursorPos()) + offset
	case SeekEnd:
		target = fbSize + offset
	default:
		return 0, ErrBadGeometry
	}
	if target < 0 {
		target = 0
	}
	if target > fbSize {
		target = fbSize
	}
	if target == fbSize {
		target = fbSize - 1
	}
	row, col := e.fbRC(int(target))
	e.gotoxay(col, row)
	return target, nil
}

// Write feeds each byte of p through HandleInput with a zero attribute
// high byte (the engine's current SGR-derived attribute applies), the
// positioned-write half of spec.md §6's host-visible operations.
func (e *Engine) Write(p []byte) (int, error) {
	for _, b := range p {
		e.HandleInput(uint16(b))
	}
	return len(p), nil
}

// Read copies up to len(p) cells of fb starting at the current cursor
// position into p as raw glyph bytes (post-charmap codes, not attributes),
// advancing the cursor by the number of bytes read; a read that reaches the
// end of fb leaves the cursor on the last cell, as Seek does. It reads from fb, the
// engine's own authoritative content, never from the physical mirror
// (spec.md §5: "external readers see fb, never display").
func (e *Engine) Read(p []byte) (int, error) {
	start := e.cursorPos()
	n := 0
	for n < len(p) && start+n < len(e.fb) {
		p[n] = e.fb[start+n].Glyph()
		n++
	}
	if n == 0 {
		return 0, io.EOF
	}
	next := start + n
	if next >= len(e.fb) {
		next = len(e.fb) - 1
	}
	row, col := e.fbRC(next)
	e.gotoxay(col, row)
	return n, nil
}

// ReadPhysical reports what the attached driver itself believes is on
// screen at virtual-screen position (row, col), bypassing fb entirely —
// ground truth from the device rather than the engine's own mirror. This
// is only available when the driver implements CharReader and only for
// positions currently inside the visible frame (the driver has no notion
// of cells scrolled out of view). Used by diagnostic ioctls that need to
// verify the physical display actually matches what the engine thinks it
// wrote, as distinct from Read's fb-authoritative path (spec.md §5).
func (e *Engine) ReadPhysical(row, col int) (glyph byte, color colorByte, ok bool) {
	reader, supported := e.driver.(CharReader)
	if !supported {
		return 0, colorByte{}, false
	}
	frameOffset, visible := e.vsToFrame(row, col)
	if !visible {
		return 0, colorByte{}, false
	}
	cell := reader.ReadChar(frameOffset)
	return cell.Glyph(), unpackColorByte(cell.Attr()), true
}

// GetParam returns the engine's current Parameters, for the ioctl
// GET_PARAM surface (spec.md §6).
func (e *Engine) GetParam() Parameters { return e.params }

// SetParam updates the subset of Parameters that may legitimately change
// post-registration: the three HD44780-specific mutable device flags
// (CHECK_BF, 4BITS_BUS, 5X10_FONT — spec.md supplemented feature,
// correcting the distillation's "two mutable device flags"). Geometry and
// CGRAM layout are immutable after registration; any attempt to change
// them is rejected with ErrBadGeometry rather than silently ignored.
func (e *Engine) SetParam(p Parameters) error {
	const mutableMask = FlagCheckBF | Flag4BitsBus | Flag5x10Font
	if p.Name != e.params.Name ||
		p.Tabstop != e.params.Tabstop ||
		p.NumCntr != e.params.NumCntr ||
		p.CntrRows != e.params.CntrRows ||
		p.CntrCols != e.params.CntrCols ||
		p.VSRows != e.params.VSRows ||
		p.VSCols != e.params.VSCols ||
		p.CGRAMChars != e.params.CGRAMChars ||
		p.CGRAMBytes != e.params.CGRAMBytes ||
		p.CGRAMChar0 != e.params.CGRAMChar0 {
		return ErrBadGeometry
	}
	e.params.Flags = (e.params.Flags &^ mutableMask) | (p.Flags & mutableMask)
	return nil
}

// IOCtl dispatches a custom ioctl command to the driver's
// CustomIOCTLHandler, if it implements one (spec.md §6 ioctl surface
// beyond GET_PARAM/SET_PARAM). fromUserSpace threads modeFlags.userSpace
// for the duration of the call, matching the source's USER_SPACE flag.
func (e *Engine) IOCtl(cmd int, arg any, fromUserSpace bool) (any, error) {
	handler, ok := e.driver.(CustomIOCTLHandler)
	if !ok {
		return nil, ErrUnsupported
	}
	prior := e.flags.userSpace
	e.flags.userSpace = fromUserSpace
	defer func() { e.flags.userSpace = prior }()
	return handler.HandleCustomIOCTL(cmd, arg, fromUserSpace)
}
