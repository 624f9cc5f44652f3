package ccdisplay

// vsToFrame converts a virtual-screen position to a frame-relative linear
// offset, reporting ok=false if the position is outside the currently
// visible frame window (spec.md §4.1 "Geometry").
func (e *Engine) vsToFrame(row, col int) (frameOffset int, ok bool) {
	fr := row - e.frameBaseRow
	fc := col - e.frameBaseCol
	if fr < 0 || fr >= e.frameRows() || fc < 0 || fc >= e.frameCols() {
		return 0, false
	}
	return fr*e.frameCols() + fc, true
}

// roundVS clamps a (row, col) pair into the valid virtual-screen range.
func (e *Engine) roundVS(row, col int) (int, int) {
	if row < 0 {
		row = 0
	}
	if row >= e.params.VSRows {
		row = e.params.VSRows - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= e.params.VSCols {
		col = e.params.VSCols - 1
	}
	return row, col
}

// alignHalfCol implements the "half-column gravity" described in spec.md
// §4.2: when sliding the frame horizontally, prefer aligning frameBaseCol
// to a frame_cols/2 boundary rather than the exact minimal slide, so the
// window doesn't visibly creep one column at a time.
func alignHalfCol(base, frameCols, maxBase int, roundUp bool) int {
	half := frameCols / 2
	if half == 0 {
		half = 1
	}
	aligned := (base / half) * half
	if roundUp && aligned < base {
		aligned += half
	}
	if aligned < 0 {
		aligned = 0
	}
	if aligned > maxBase {
		aligned = maxBase
	}
	return aligned
}

// showCursor slides the frame window so the cursor is visible again,
// following the direction-dependent "anchor corner" policy of spec.md
// §4.2: forward mode anchors the cursor toward the bottom-right of the
// window (the window trails the cursor as it advances), reverse mode
// mirrors this toward the top-left. Returns true iff frameBase changed.
func (e *Engine) showCursor() bool {
	oldRow, oldCol := e.frameBaseRow, e.frameBaseCol
	fr, fc := e.frameRows(), e.frameCols()
	maxBaseRow := e.params.VSRows - fr
	maxBaseCol := e.params.VSCols - fc

	switch e.dir {
	case Forward:
		if e.cursorRow < e.frameBaseRow {
			e.frameBaseRow = e.cursorRow
		} else if e.cursorRow > e.frameBaseRow+fr-1 {
			e.frameBaseRow = e.cursorRow - fr + 1
		}
		if e.cursorCol < e.frameBaseCol {
			e.frameBaseCol = alignHalfCol(e.cursorCol, fc, maxBaseCol, false)
		} else if e.cursorCol > e.frameBaseCol+fc-1 {
			e.frameBaseCol = alignHalfCol(e.cursorCol-fc+1, fc, maxBaseCol, true)
		}
	case Reverse:
		if e.cursorRow > e.frameBaseRow+fr-1 {
			e.frameBaseRow = e.cursorRow - fr + 1
		} else if e.cursorRow < e.frameBaseRow {
			e.frameBaseRow = e.cursorRow
		}
		if e.cursorCol > e.frameBaseCol+fc-1 {
			e.frameBaseCol = alignHalfCol(e.cursorCol-fc+1, fc, maxBaseCol, true)
		} else if e.cursorCol < e.frameBaseCol {
			e.frameBaseCol = alignHalfCol(e.cursorCol, fc, maxBaseCol, false)
		}
	}

	if e.frameBaseRow < 0 {
		e.frameBaseRow = 0
	}
	if e.frameBaseRow > maxBaseRow {
		e.frameBaseRow = maxBaseRow
	}
	if e.frameBaseCol < 0 {
		e.frameBaseCol = 0
	}
	if e.frameBaseCol > maxBaseCol {
		e.frameBaseCol = maxBaseCol
	}

	return e.frameBaseRow != oldRow || e.frameBaseCol != oldCol
}
