package ccdisplay

import (
	"bytes"
	"log/slog"
)

// writeCGRAM compares bitmap against the cached copy for idx and, on a
// mismatch, forces the device's forward address mode for the duration of
// the physical write and updates the cache (spec.md §4.6). A byte-
// identical resend is a no-op: this is the CGRAM half of the dedup
// invariant in spec.md §8 ("repeating with the identical bitmap issues
// zero further calls").
func (e *Engine) writeCGRAM(idx int, bitmap []byte) {
	slot := idx - int(e.params.CGRAMChar0)
	if slot < 0 || slot >= len(e.cgram) {
		return
	}
	if bytes.Equal(e.cgram[slot], bitmap) {
		return
	}
	writer, ok := e.driver.(CGRAMWriter)
	if !ok {
		e.log.Debug("cgram: driver has no WriteCGRAMChar, write abandoned", slog.Any("error", ErrUnsupported))
		return
	}
	e.withForwardAddressMode(func() {
		writer.WriteCGRAMChar(idx, bitmap)
	})
	cached := make([]byte, len(bitmap))
	copy(cached, bitmap)
	e.cgram[slot] = cached
}

// ReadCGRAM reports what the attached driver itself believes is
// programmed into CGRAM slot idx, bypassing the engine's own cache —
// the CGRAM counterpart to ReadPhysical's fb-bypassing screen readback.
// Only available when the driver implements CGRAMReader; returns false
// otherwise or for an out-of-range index.
func (e *Engine) ReadCGRAM(idx int) ([]byte, bool) {
	slot := idx - int(e.params.CGRAMChar0)
	if slot < 0 || slot >= len(e.cgram) {
		return nil, false
	}
	reader, ok := e.driver.(CGRAMReader)
	if !ok {
		return nil, false
	}
	return reader.ReadCGRAMChar(idx), true
}
