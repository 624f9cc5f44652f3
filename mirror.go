package ccdisplay

// writeDataAt is the sole place that forwards a cell to the physical
// driver for a single virtual-screen position. It elides the call when
// the position isn't currently in the visible frame, or when display
// already holds the identical cell (spec.md §4.5, §8 invariant 4 and the
// "diff elision" idempotence property). Returns true iff a physical write
// occurred.
func (e *Engine) writeDataAt(row, col int, cell Cell) bool {
	fpos, ok := e.vsToFrame(row, col)
	if !ok {
		return false
	}
	if e.display[fpos] == cell {
		return false
	}
	e.display[fpos] = cell
	e.driver.WriteChar(fpos, cell)
	return true
}

// withForwardAddressMode runs fn with the device address counter forced to
// Forward, restoring the prior direction on every exit path — the scoped
// acquisition spec.md §9 calls for around CGRAM writes ("guaranteed
// restore on all exit paths"). If the driver has no AddressModeSetter
// capability this is a no-op wrapper: the driver doesn't distinguish
// directions at the hardware level.
func (e *Engine) withForwardAddressMode(fn func()) {
	setter, ok := e.driver.(AddressModeSetter)
	if !ok {
		fn()
		return
	}
	prior := e.dir
	if prior != Forward {
		setter.SetAddressMode(Forward)
	}
	defer func() {
		if prior != Forward {
			setter.SetAddressMode(prior)
		}
	}()
	fn()
}
