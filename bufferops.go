package ccdisplay

// fillSpan fills the literal closed interval [lo, hi] with c (spec.md
// §4.5 lcd_memset). It is direction-independent: the CSI dispatch table
// (csi.go) drops every erase/insert/delete command except h/l while the
// engine is in Reverse direction (spec.md §4.3), so no CSI erase ever
// needs to ask "which end of the span is logically first" — fillSpan's two
// endpoints are always plain fb offsets, lo the lower one. The one
// cursor-anchored edit still reached in Reverse is a DECIM insert-mode
// glyph write, whose InsertChars(1) shifts the rest of the row toward the
// right edge in either direction.
func (e *Engine) fillSpan(lo, hi int, c Cell) {
	if lo < 0 {
		lo = 0
	}
	if hi >= len(e.fb) {
		hi = len(e.fb) - 1
	}
	if lo > hi {
		return
	}
	for i := lo; i <= hi; i++ {
		e.fb[i] = c
	}
	e.afterMutate(lo, hi)
}

// memmove copies length cells from s to d within fb, using Go's
// overlap-safe copy (the memmove the name promises) rather than hand-
// rolled direction-dependent iteration, then redraws the union of the
// source and destination spans.
func (e *Engine) memmove(d, s, length int) {
	if length <= 0 || d == s {
		return
	}
	copy(e.fb[d:d+length], e.fb[s:s+length])
	lo, hi := d, d+length-1
	if s < lo {
		lo = s
	}
	if s+length-1 > hi {
		hi = s + length - 1
	}
	e.afterMutate(lo, hi)
}

// invertAllCells flips the visual reverse polarity of every cell already
// in fb, in place, without touching glyphs or re-deriving attributes from
// the current SGR state (spec.md §4.3 "invert screen... invert all
// cells"). This is what makes CSI ?5h followed by CSI ?5l restore fb to
// its exact prior byte content (spec.md §8 idempotence).
func (e *Engine) invertAllCells() {
	for i, cell := range e.fb {
		e.fb[i] = MakeCell(cell.Glyph(), e.flipReverse(cell.Attr()))
	}
	e.afterMutate(0, len(e.fb)-1)
}

// flipReverse toggles the reverse-video polarity of a single composed
// attribute byte: bit 3 in monochrome, a full fg/bg nibble swap in color
// (the same transform reverseColorAttr already performs).
func (e *Engine) flipReverse(attr byte) byte {
	if !e.flags.canDoColor {
		return attr ^ 0x08
	}
	return reverseColorAttr(attr)
}

// afterMutate redraws the affected span, except that if the mutation left
// the cursor outside the visible frame, the frame is repositioned first
// and the *whole* frame is redrawn instead (spec.md §4.5).
func (e *Engine) afterMutate(lo, hi int) {
	if _, ok := e.vsToFrame(e.cursorRow, e.cursorCol); !ok {
		if e.showCursor() {
			e.redrawScreen(0, len(e.fb)-1)
			return
		}
	}
	e.redrawScreen(lo, hi)
}

// redrawScreen is the only place that walks a span of fb and forwards
// changed cells to the physical driver (spec.md §4.5). It walks s..hi in
// the engine's active direction; positions outside the current frame
// window are skipped by writeDataAt's own visibility check.
func (e *Engine) redrawScreen(s, hi int) {
	if s > hi {
		return
	}
	if s < 0 {
		s = 0
	}
	if hi >= len(e.fb) {
		hi = len(e.fb) - 1
	}
	step, start, end := 1, s, hi
	if e.dir == Reverse {
		step, start, end = -1, hi, s
	}
	for i := start; ; i += step {
		row, col := e.fbRC(i)
		e.writeDataAt(row, col, e.fb[i])
		if i == end {
			break
		}
	}
}
