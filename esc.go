package ccdisplay

import "log/slog"

// handleEsc interprets the byte immediately following ESC (spec.md §4.4).
// It may leave the engine in NORMAL, or transition into CSI, one of the
// single-byte-swallowing charset states, or a pending-argument state.
func (e *Engine) handleEsc(b byte) {
	e.inState = stateNormal
	switch b {
	case 'c':
		e.ResetAll()
	case 'D':
		e.LineFeed(false)
	case 'E':
		e.CarriageReturn()
		e.LineFeed(false)
	case 'M':
		e.ReverseIndex()
	case '7':
		e.SaveCursor()
	case '8':
		e.RestoreCursor()
	case '[':
		e.beginCSI()
	case '(':
		e.inState = stateEscG0
	case ')':
		e.inState = stateEscG1
	case '#':
		e.inState = stateEscHash
	case '%':
		e.inState = stateEscPercent
	case 'H', 'Z', '>', '=', ']':
		// Tabstop-set, identify, keypad modes, Linux-private introducer:
		// accepted and ignored (spec.md §4.4).
	case 's':
		e.beginCGRAMSelect()
	case 'G':
		e.gSelectWait = true
	case 'r':
		e.beginAddressModeArg()
	case 'A', 'B', 'C':
		e.beginFrameScrollArg(b)
	default:
		e.dispatchDriverCustomChar(b)
	}
}

// beginCGRAMSelect enters the custom CGRAM assembly sequence: one index
// byte followed by cgram_bytes bitmap bytes (spec.md §4.4, §4.6).
func (e *Engine) beginCGRAMSelect() {
	e.inState = stateArg
	e.pending = &pendingArgs{
		remaining: 1 + e.params.CGRAMBytes,
		complete:  func(buf []byte) bool { e.finishCGRAMSelect(buf); return true },
	}
}

// beginAddressModeArg implements the custom "ESC r <dir>" escape: one
// argument byte, 1 selects Reverse, 0 selects Forward.
func (e *Engine) beginAddressModeArg() {
	e.inState = stateArg
	e.pending = &pendingArgs{
		remaining: 1,
		complete: func(buf []byte) bool {
			if buf[0] == 1 {
				e.dir = Reverse
			} else {
				e.dir = Forward
			}
			return true
		},
	}
}

// beginFrameScrollArg implements the custom "ESC A/B/C <n>" family: one
// argument byte selecting a frame-scroll or frame-browse direction
// (spec.md §4.4: "scroll up, scroll down, browse frame in direction
// 1/2/3/4").
func (e *Engine) beginFrameScrollArg(which byte) {
	e.inState = stateArg
	e.pending = &pendingArgs{
		remaining: 1,
		complete: func(buf []byte) bool {
			e.applyFrameScroll(which, buf[0])
			return true
		},
	}
}

func (e *Engine) applyFrameScroll(which, arg byte) {
	switch which {
	case 'A':
		e.ScrollUp(int(arg))
	case 'B':
		e.ScrollDown(int(arg))
	case 'C':
		e.browseFrame(arg)
	}
}

// browseFrame slides frame_base by one frame's worth in the requested
// direction (1=up, 2=down, 3=left, 4=right) without moving the cursor,
// clamped to the valid window range (spec.md §4.4 "browse frame").
func (e *Engine) browseFrame(dir byte) {
	fr, fc := e.frameRows(), e.frameCols()
	maxRow := e.params.VSRows - fr
	maxCol := e.params.VSCols - fc
	switch dir {
	case 1:
		e.frameBaseRow -= fr
	case 2:
		e.frameBaseRow += fr
	case 3:
		e.frameBaseCol -= fc
	case 4:
		e.frameBaseCol += fc
	}
	if e.frameBaseRow < 0 {
		e.frameBaseRow = 0
	}
	if e.frameBaseRow > maxRow {
		e.frameBaseRow = maxRow
	}
	if e.frameBaseCol < 0 {
		e.frameBaseCol = 0
	}
	if e.frameBaseCol > maxCol {
		e.frameBaseCol = maxCol
	}
	e.redrawScreen(0, len(e.fb)-1)
}

// finishCGRAMSelect validates the assembled index and hands the bitmap to
// writeCGRAM, or abandons the sequence with a diagnostic if the index is
// out of range (spec.md §4.6: "index validity is enforced by the assembly
// state").
func (e *Engine) finishCGRAMSelect(buf []byte) {
	idx := int(buf[0])
	if idx < int(e.params.CGRAMChar0) || idx >= int(e.params.CGRAMChar0)+e.params.CGRAMChars {
		e.log.Debug("cgram: index out of range, sequence abandoned", slog.Any("error", ErrSequenceAbandoned), slog.Int("index", idx))
		return
	}
	e.writeCGRAM(idx, buf[1:])
}

// dispatchDriverCustomChar falls through to the driver's own custom
// escape handling when the byte after ESC matched none of the engine's
// built-in custom escapes (spec.md §4.4 "unknown after custom dispatch
// falls through to the driver's handle_custom_char").
func (e *Engine) dispatchDriverCustomChar(b byte) {
	handler, ok := e.driver.(CustomCharHandler)
	if !ok {
		e.log.Debug("esc: unrecognized escape, no custom handler", slog.String("byte", string(b)))
		return
	}
	n := handler.HandleCustomChar(b)
	if n <= 0 {
		return
	}
	e.inState = stateArgDriver
	e.pending = &pendingArgs{
		remaining: n,
		complete: func(buf []byte) bool {
			for _, arg := range buf {
				handler.HandleCustomChar(arg)
			}
			return true
		},
	}
}

// handleCharsetByte swallows the single byte following ESC ( / ESC ) /
// ESC # / ESC %; charset selection is recognised syntactically but has no
// effect on a single 256-entry charmap engine (spec.md §4.4).
func (e *Engine) handleCharsetByte(byte) {
	e.inState = stateNormal
}
