package ccdisplay

// cursorOffset returns the linear fb offset of the current cursor position.
func (e *Engine) cursorOffset() int { return e.fbOffset(e.cursorRow, e.cursorCol) }

// Backspace implements BS (spec.md §4.2), direction-aware.
func (e *Engine) Backspace() {
	e.flags.needWrap = false
	if e.dir == Forward {
		if e.cursorCol > 0 {
			e.cursorCol--
		}
	} else {
		if e.cursorCol+1 < e.params.VSCols {
			e.cursorCol++
		}
	}
}

// CarriageReturn implements CR, direction-aware.
func (e *Engine) CarriageReturn() {
	e.flags.needWrap = false
	if e.dir == Forward {
		e.cursorCol = 0
	} else {
		e.cursorCol = e.params.VSCols - 1
	}
}

// LineFeed implements LF. In Forward direction the cursor advances until
// it would leave the scroll region, at which point the region scrolls up;
// Reverse mirrors with scroll-down. raw suppresses the scroll at the
// boundary (a no-op instead), matching the RAW dispatcher state's
// boundary behavior (spec.md §4.1, §4.2).
func (e *Engine) LineFeed(raw bool) {
	if e.flags.crlf {
		e.CarriageReturn()
	}
	e.flags.needWrap = false
	if e.dir == Forward {
		if e.cursorRow+1 == e.scrollBot {
			if !raw {
				e.ScrollUp(1)
			}
		} else {
			e.cursorRow++
		}
	} else {
		if e.cursorRow == e.scrollTop {
			if !raw {
				e.ScrollDown(1)
			}
		} else {
			e.cursorRow--
		}
	}
	e.syncCursorFrame()
}

// ReverseIndex implements RI, the opposite polarity of LineFeed.
func (e *Engine) ReverseIndex() {
	e.flags.needWrap = false
	if e.dir == Forward {
		if e.cursorRow == e.scrollTop {
			e.ScrollDown(1)
		} else {
			e.cursorRow--
		}
	} else {
		if e.cursorRow+1 == e.scrollBot {
			e.ScrollUp(1)
		} else {
			e.cursorRow++
		}
	}
	e.syncCursorFrame()
}

// FormFeed implements FF: a hardware clear via Clearer if the driver
// offers one, otherwise a plain fill of fb with eraseChar. The cursor
// moves to the direction's origin (spec.md §4.2).
func (e *Engine) FormFeed() {
	e.flags.needWrap = false
	if clr, ok := e.driver.(Clearer); ok {
		clr.ClearDisplay()
		for i := range e.fb {
			e.fb[i] = e.eraseChar
		}
		for i := range e.display {
			e.display[i] = e.eraseChar
		}
	} else {
		e.fillSpan(0, len(e.fb)-1, e.eraseChar)
	}
	e.frameBaseRow, e.frameBaseCol = 0, 0
	if e.dir == Forward {
		e.cursorRow, e.cursorCol = 0, 0
	} else {
		e.cursorRow, e.cursorCol = e.params.VSRows-1, e.params.VSCols-1
	}
}

// Tab implements HT, direction-aware, advancing to the next/previous
// tabstop boundary but never past the row's far edge. A Tabstop of 0
// disables tabbing entirely (spec.md §4.2).
func (e *Engine) Tab() {
	if e.params.Tabstop <= 0 {
		return
	}
	e.flags.needWrap = false
	if e.dir == Forward {
		next := (e.cursorCol/e.params.Tabstop + 1) * e.params.Tabstop
		if next > e.params.VSCols-1 {
			next = e.params.VSCols - 1
		}
		e.cursorCol = next
	} else {
		if e.cursorCol == 0 {
			return
		}
		prev := ((e.cursorCol - 1) / e.params.Tabstop) * e.params.Tabstop
		if prev < 0 {
			prev = 0
		}
		e.cursorCol = prev
	}
}

// syncCursorFrame repositions the frame window if the cursor just left it,
// redrawing the whole frame when that happens (spec.md §4.2 gotoxy tail).
func (e *Engine) syncCursorFrame() {
	if _, ok := e.vsToFrame(e.cursorRow, e.cursorCol); !ok {
		if e.showCursor() {
			e.redrawScreen(0, len(e.fb)-1)
		}
	}
}

// gotoxy positions the cursor at (col, row), clamping row to the scroll
// region when DECOM is set and to the full virtual screen otherwise
// (spec.md §4.2, CSI H/f).
func (e *Engine) gotoxy(col, row int) {
	minRow, maxRow := 0, e.params.VSRows
	if e.flags.decom {
		minRow, maxRow = e.scrollTop, e.scrollBot
	}
	e.gotoRowCol(col, row, minRow, maxRow)
}

// gotoxay positions the cursor ignoring DECOM — used by the absolute
// column/row CSI commands (G, d) which spec.md's dispatch table does not
// tie to the scroll region. Unlike gotoxy, which must clamp to a region
// that moves with DECOM, gotoxay's clamp range never changes, so it uses
// the plain full-virtual-screen clamp geometry.go provides instead of
// gotoRowCol's minRow/maxRow parameterisation.
func (e *Engine) gotoxay(col, row int) {
	row, col = e.roundVS(row, col)
	e.cursorRow, e.cursorCol = row, col
	e.flags.needWrap = false
	e.syncCursorFrame()
}

func (e *Engine) gotoRowCol(col, row, minRow, maxRow int) {
	if col < 0 {
		col = 0
	}
	if col >= e.params.VSCols {
		col = e.params.VSCols - 1
	}
	if row < minRow {
		row = minRow
	}
	if row >= maxRow {
		row = maxRow - 1
	}
	e.cursorRow, e.cursorCol = row, col
	e.flags.needWrap = false
	e.syncCursorFrame()
}

// ScrollUp moves the scroll region's content up by n rows, discarding the
// top n rows and filling n fresh blank rows at the bottom.
func (e *Engine) ScrollUp(n int) {
	top, bot := e.scrollTop, e.scrollBot
	rows := bot - top
	if n > rows {
		n = rows
	}
	if n <= 0 {
		return
	}
	lo := e.fbOffset(top, 0)
	length := (rows - n) * e.params.VSCols
	if length > 0 {
		e.memmove(lo, lo+n*e.params.VSCols, length)
	}
	e.fillSpan(lo+(rows-n)*e.params.VSCols, lo+rows*e.params.VSCols-1, e.eraseChar)
}

// ScrollDown mirrors ScrollUp, moving content down and filling fresh blank
// rows at the top of the scroll region.
func (e *Engine) ScrollDown(n int) {
	top, bot := e.scrollTop, e.scrollBot
	rows := bot - top
	if n > rows {
		n = rows
	}
	if n <= 0 {
		return
	}
	lo := e.fbOffset(top, 0)
	length := (rows - n) * e.params.VSCols
	if length > 0 {
		e.memmove(lo+n*e.params.VSCols, lo, length)
	}
	e.fillSpan(lo, lo+n*e.params.VSCols-1, e.eraseChar)
}

// SetScrollRegion sets the scroll region to [top, bot), enforcing the
// bot-top >= 2 invariant (spec.md §3), and homes the cursor.
func (e *Engine) SetScrollRegion(top, bot int) {
	if top < 0 {
		top = 0
	}
	if bot > e.params.VSRows {
		bot = e.params.VSRows
	}
	if bot-top < 2 {
		bot = top + 2
		if bot > e.params.VSRows {
			bot = e.params.VSRows
			top = bot - 2
		}
	}
	e.scrollTop, e.scrollBot = top, bot
	e.gotoxy(0, 0)
}

// InsertLines inserts n blank lines at the cursor row, within the scroll
// region, pushing lines below the cursor down and off the bottom of the
// region (CSI L).
func (e *Engine) InsertLines(n int) {
	row := e.cursorRow
	bot := e.scrollBot
	avail := bot - row
	if n > avail {
		n = avail
	}
	if n <= 0 {
		return
	}
	lo := e.fbOffset(row, 0)
	length := (avail - n) * e.params.VSCols
	if length > 0 {
		e.memmove(lo+n*e.params.VSCols, lo, length)
	}
	e.fillSpan(lo, lo+n*e.params.VSCols-1, e.eraseChar)
}

// DeleteLines deletes n lines at the cursor row, within the scroll region,
// pulling lines below the cursor up and filling blanks at the bottom of
// the region (CSI M).
func (e *Engine) DeleteLines(n int) {
	row := e.cursorRow
	bot := e.scrollBot
	avail := bot - row
	if n > avail {
		n = avail
	}
	if n <= 0 {
		return
	}
	lo := e.fbOffset(row, 0)
	length := (avail - n) * e.params.VSCols
	if length > 0 {
		e.memmove(lo, lo+n*e.params.VSCols, length)
	}
	e.fillSpan(lo+(avail-n)*e.params.VSCols, lo+avail*e.params.VSCols-1, e.eraseChar)
}

// InsertChars inserts n blank cells at the cursor, shifting the remainder
// of the row right and clamping to the row's remainder (CSI @).
func (e *Engine) InsertChars(n int) {
	row, col := e.cursorRow, e.cursorCol
	avail := e.params.VSCols - col
	if n > avail {
		n = avail
	}
	if n <= 0 {
		return
	}
	cur := e.fbOffset(row, col)
	length := avail - n
	if length > 0 {
		e.memmove(cur+n, cur, length)
	}
	e.fillSpan(cur, cur+n-1, e.eraseChar)
}

// DeleteChars deletes n cells at the cursor, shifting the remainder of the
// row left and filling vacated cells at the row's end (CSI P).
func (e *Engine) DeleteChars(n int) {
	row, col := e.cursorRow, e.cursorCol
	avail := e.params.VSCols - col
	if n > avail {
		n = avail
	}
	if n <= 0 {
		return
	}
	cur := e.fbOffset(row, col)
	length := avail - n
	if length > 0 {
		e.memmove(cur, cur+n, length)
	}
	e.fillSpan(cur+length, cur+avail-1, e.eraseChar)
}

// EraseChars erases n cells at the cursor in place, without shifting the
// rest of the row (CSI X).
func (e *Engine) EraseChars(n int) {
	row, col := e.cursorRow, e.cursorCol
	avail := e.params.VSCols - col
	if n > avail {
		n = avail
	}
	if n <= 0 {
		return
	}
	cur := e.fbOffset(row, col)
	e.fillSpan(cur, cur+n-1, e.eraseChar)
}

// SaveCursor captures cursor position plus the packed color/attribute
// state (ESC 7 / CSI s).
func (e *Engine) SaveCursor() {
	e.savedCursorRow, e.savedCursorCol = e.cursorRow, e.cursorCol
	e.savedAttrs, e.savedColor = e.attrs, e.color
	e.hasSaved = true
}

// RestoreCursor restores what SaveCursor captured (ESC 8 / CSI u). A
// restore with no prior save is a no-op, matching the teacher's tolerant
// style of ignoring out-of-sequence restores rather than erroring.
func (e *Engine) RestoreCursor() {
	if !e.hasSaved {
		return
	}
	e.cursorRow, e.cursorCol = e.savedCursorRow, e.savedCursorCol
	e.flags.needWrap = false
	e.attrs, e.color = e.savedAttrs, e.savedColor
	e.updateAttr()
	e.syncCursorFrame()
}

// ResetAll implements ESC c (RIS): full reset of cursor/mode/attribute
// state plus a hardware form-feed, leaving CGRAM and charmap untouched
// (spec.md §4.4: "full reset (DECAWM on, forward direction, form-feed)").
func (e *Engine) ResetAll() {
	e.resetState()
	e.FormFeed()
}

// WriteGlyph writes one already-charmap-translated glyph with the given
// raw attribute byte at the cursor, handling DECAWM autowrap and DECIM
// insert mode, then advances the cursor (spec.md §4.1 NORMAL/RAW write,
// §8 boundary behaviour).
func (e *Engine) WriteGlyph(glyph, rawAttr byte) {
	if e.flags.needWrap && e.flags.decawm {
		e.CarriageReturn()
		e.LineFeed(false)
	}
	if e.flags.decim {
		e.InsertChars(1)
	}
	row, col := e.cursorRow, e.cursorCol
	cell := MakeCell(glyph, rawAttr)
	e.fb[e.fbOffset(row, col)] = cell
	e.redrawScreen(e.fbOffset(row, col), e.fbOffset(row, col))

	atEdge := (e.dir == Forward && col == e.params.VSCols-1) || (e.dir == Reverse && col == 0)
	if atEdge {
		if e.flags.decawm {
			e.flags.needWrap = true
		}
		return
	}
	if e.dir == Forward {
		e.cursorCol++
	} else {
		e.cursorCol--
	}
	e.syncCursorFrame()
}
