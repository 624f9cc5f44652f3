package ccdisplay

import "log/slog"

// beginCSI resets the parameter accumulator for a fresh CSI sequence
// (spec.md §4.3), entered either from ESC '[' or the single-byte CSI
// introducer 0x9B.
func (e *Engine) beginCSI() {
	e.inState = stateCSI
	e.csiIdx = 0
	for i := range e.csiParams {
		e.csiParams[i] = 0
	}
	e.flags.ques = false
}

// feedCSI consumes one byte of a CSI sequence: digits extend the current
// parameter, ';' advances to the next slot, '?' sets the question-mark
// flag (only meaningful as the very first byte), anything else terminates
// accumulation and dispatches (spec.md §4.3).
func (e *Engine) feedCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		e.csiParams[e.csiIdx] = e.csiParams[e.csiIdx]*10 + int(b-'0')
		return
	case b == ';':
		e.csiIdx++
		if e.csiIdx >= len(e.csiParams) {
			e.log.Debug("csi: parameter overflow, sequence abandoned", slog.Any("error", ErrSequenceAbandoned), slog.Int("limit", len(e.csiParams)))
			e.inState = stateNormal
		}
		return
	case b == '?' && e.csiIdx == 0 && e.csiParams[0] == 0:
		e.flags.ques = true
		return
	}
	e.inState = stateNormal
	e.dispatchCSI(b)
}

// csiArg returns param i, defaulting to def when the caller supplied zero
// (the conventional ECMA-48 "0 or omitted means default" rule).
func (e *Engine) csiArg(i, def int) int {
	if i > e.csiIdx {
		return def
	}
	if e.csiParams[i] == 0 {
		return def
	}
	return e.csiParams[i]
}

// dispatchCSI runs the final byte of a completed CSI sequence. In Reverse
// direction every final byte except h/l is dropped (spec.md §4.3: "reverse-
// direction mode supports only mode set/reset").
func (e *Engine) dispatchCSI(final byte) {
	if e.dir == Reverse && final != 'h' && final != 'l' {
		return
	}
	switch final {
	case '@':
		e.InsertChars(e.csiArg(0, 1))
	case 'A':
		e.gotoxy(e.cursorCol, e.cursorRow-e.csiArg(0, 1))
	case 'B':
		e.gotoxy(e.cursorCol, e.cursorRow+e.csiArg(0, 1))
	case 'C':
		e.gotoxy(e.cursorCol+e.csiArg(0, 1), e.cursorRow)
	case 'D':
		e.gotoxy(e.cursorCol-e.csiArg(0, 1), e.cursorRow)
	case 'E':
		e.gotoxy(0, e.cursorRow+e.csiArg(0, 1))
	case 'F':
		e.gotoxy(0, e.cursorRow-e.csiArg(0, 1))
	case 'G', '`':
		e.gotoxay(e.csiArg(0, 1)-1, e.cursorRow)
	case 'd':
		e.gotoxay(e.cursorCol, e.csiArg(0, 1)-1)
	case 'H', 'f':
		e.gotoxy(e.csiArg(1, 1)-1, e.csiArg(0, 1)-1)
	case 'J':
		e.eraseDisplay(e.csiArg(0, 0))
	case 'K':
		e.eraseLine(e.csiArg(0, 0))
	case 'L':
		e.InsertLines(e.csiArg(0, 1))
	case 'M':
		e.DeleteLines(e.csiArg(0, 1))
	case 'P':
		e.DeleteChars(e.csiArg(0, 1))
	case 'X':
		e.EraseChars(e.csiArg(0, 1))
	case 'm':
		e.handleSGR()
	case 's':
		e.SaveCursor()
	case 'u':
		e.RestoreCursor()
	case ']':
		e.handleLinuxPrivate()
	case 'r':
		e.SetScrollRegion(e.csiArg(0, 1)-1, e.csiArg(1, e.params.VSRows))
	case 'h':
		e.setMode(true)
	case 'l':
		e.setMode(false)
	case 'c', 'g', 'n', 'q':
		// Device-status/identify/tabstop-clear queries: accepted, ignored
		// (spec.md §4.3).
	default:
		e.log.Debug("csi: unrecognized final byte", slog.String("final", string(final)))
	}
}

// eraseDisplay implements CSI J.
func (e *Engine) eraseDisplay(mode int) {
	switch mode {
	case 0:
		e.fillSpan(e.cursorOffset(), len(e.fb)-1, e.eraseChar)
	case 1:
		e.fillSpan(0, e.cursorOffset(), e.eraseChar)
	case 2:
		e.fillSpan(0, len(e.fb)-1, e.eraseChar)
	}
}

// eraseLine implements CSI K, restricted to the cursor's current row.
func (e *Engine) eraseLine(mode int) {
	rowStart := e.fbOffset(e.cursorRow, 0)
	rowEnd := rowStart + e.params.VSCols - 1
	switch mode {
	case 0:
		e.fillSpan(e.cursorOffset(), rowEnd, e.eraseChar)
	case 1:
		e.fillSpan(rowStart, e.cursorOffset(), e.eraseChar)
	case 2:
		e.fillSpan(rowStart, rowEnd, e.eraseChar)
	}
}

// handleSGR implements CSI m, iterating every accumulated parameter
// (spec.md §4.3's enumerated table).
func (e *Engine) handleSGR() {
	n := e.csiIdx + 1
	if n == 1 && e.csiParams[0] == 0 {
		e.resetSGR()
		e.updateAttr()
		return
	}
	for i := 0; i < n; i++ {
		p := e.csiParams[i]
		switch {
		case p == 0:
			e.resetSGR()
		case p == 1:
			e.attrs.Intensity = 2
		case p == 2:
			e.attrs.Intensity = 0
		case p == 4:
			e.attrs.Underline = true
		case p == 5:
			e.attrs.Blink = true
		case p == 7:
			e.attrs.Reverse = true
		case p == 21 || p == 22:
			e.attrs.Intensity = 1
		case p == 24:
			e.attrs.Underline = false
		case p == 25:
			e.attrs.Blink = false
		case p == 27:
			e.attrs.Reverse = false
		case p >= 30 && p <= 37:
			e.color.Fg = ansiToDevice(uint8(p - 30))
		case p == 38 || p == 39:
			e.color.Fg = e.defColor.Fg
		case p >= 40 && p <= 47:
			e.color.Bg = ansiToDevice(uint8(p - 40))
		case p == 49:
			e.color.Bg = e.defColor.Bg
		default:
			e.log.Debug("sgr: unrecognized parameter", slog.Int("param", p))
		}
	}
	e.updateAttr()
}

func (e *Engine) resetSGR() {
	e.attrs = attrByte{Intensity: 1}
	e.color = e.defColor
}

// handleLinuxPrivate implements CSI ] (spec.md §4.3's Linux-private
// palette commands).
func (e *Engine) handleLinuxPrivate() {
	switch e.csiArg(0, 0) {
	case 1:
		e.ulColor.Fg = ansiToDevice(uint8(e.csiArg(1, 7)))
	case 2:
		e.halfColor.Fg = ansiToDevice(uint8(e.csiArg(1, 7)))
	case 8:
		e.defColor = e.color
	}
}

// setMode implements CSI h/l, dispatching on whether the sequence began
// with '?' (DEC private modes) or not (ANSI modes), per spec.md §4.3's
// table.
func (e *Engine) setMode(set bool) {
	if e.flags.ques {
		switch e.csiArg(0, 0) {
		case 5:
			if e.flags.decscnm != set {
				e.flags.decscnm = set
				e.updateAttr()
				e.invertAllCells()
			}
		case 6:
			e.flags.decom = set
			e.gotoxy(0, 0)
		case 7:
			e.flags.decawm = set
		}
		return
	}
	switch e.csiArg(0, 0) {
	case 4:
		e.flags.decim = set
	case 20:
		e.flags.crlf = set
	}
}
