package ccdisplay

// HandleInput feeds one input unit through the engine's eleven-state
// dispatcher (spec.md §4.1). The low byte of input is the data byte; the
// high byte is the attribute to attach when the byte ends up being a
// plain glyph write in NORMAL or RAW state. Most callers that don't track
// per-byte attributes can just pass the data byte with a zero high byte
// and rely on the engine's current SGR-derived attr, which writeNormal and
// writeRaw substitute for a zero attribute.
func (e *Engine) HandleInput(input uint16) {
	b := byte(input)
	attr := byte(input >> 8)

	switch e.inState {
	case stateSyn:
		e.inState = stateNormal
		e.writeRaw(b, attr)
		return
	case stateEsc:
		e.handleEsc(b)
		return
	case stateCSI:
		e.feedCSI(b)
		return
	case stateEscG0, stateEscG1, stateEscHash, stateEscPercent:
		e.handleCharsetByte(b)
		return
	case stateArg, stateArgDriver:
		if e.pending.feed(b) {
			e.pending = nil
			e.inState = stateNormal
		}
		return
	case stateRaw:
		e.writeRaw(b, attr)
		return
	}

	// stateNormal.
	if e.gSelectWait {
		e.gSelectWait = false
		e.routeCustomG(b, attr)
		return
	}
	if b < 0x20 || b == 0x9B {
		e.handleControl(b)
		return
	}
	e.writeNormal(b, attr)
}

// handleControl dispatches a control byte seen in NORMAL state (spec.md
// §4.1's control-character table). Unknown control bytes below 0x20 are
// dropped silently, matching the source's behavior.
func (e *Engine) handleControl(b byte) {
	switch b {
	case 0x08, 0x7F:
		e.Backspace()
	case 0x09:
		e.Tab()
	case 0x0A, 0x0B:
		e.LineFeed(false)
	case 0x0C:
		e.FormFeed()
	case 0x0D:
		e.CarriageReturn()
	case 0x16:
		e.inState = stateSyn
	case 0x1B:
		e.inState = stateEsc
	case 0x9B:
		e.beginCSI()
	}
}

// writeNormal translates b through the charmap and writes it with attr,
// honoring insert mode and autowrap (spec.md §4.1 NORMAL, §4.2 WriteGlyph).
func (e *Engine) writeNormal(b, attr byte) {
	glyph := e.charmap[b]
	a := attr
	if a == 0 {
		a = e.attr
	}
	e.WriteGlyph(glyph, a)
}

// writeRaw writes b verbatim, with no charmap translation and no control
// interpretation — the SYN (^V) escape-one-byte path and the RAW state
// (spec.md §4.1).
func (e *Engine) writeRaw(b, attr byte) {
	a := attr
	if a == 0 {
		a = e.attr
	}
	e.WriteGlyph(b, a)
}

// routeCustomG implements the short-lived state entered by the custom
// "ESC G" escape: the next byte is routed to a CGRAM write if it names a
// valid CGRAM index, otherwise treated as an ordinary NORMAL write
// (spec.md §4.4). Validity is purely range-based — every index in
// [cgram_char0, cgram_char0+cgram_chars) already has a pushable bitmap,
// since RegisterDriver pre-allocates a zeroed slot for each one, matching
// the original driver's pre-allocated cgram_buffer region. As a valid
// index it forces a re-push of that slot's cached bitmap to the driver,
// bypassing writeCGRAM's own equality-skip — a deliberate hardware
// refresh rather than a new bitmap definition.
func (e *Engine) routeCustomG(b, attr byte) {
	idx := int(b)
	slot := idx - int(e.params.CGRAMChar0)
	if slot >= 0 && slot < len(e.cgram) {
		writer, ok := e.driver.(CGRAMWriter)
		if ok {
			e.withForwardAddressMode(func() {
				writer.WriteCGRAMChar(idx, e.cgram[slot])
			})
		}
		return
	}
	e.writeNormal(b, attr)
}
