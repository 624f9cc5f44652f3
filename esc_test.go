package ccdisplay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEscAddressModeArg exercises the custom "ESC r <dir>" escape: a
// trailing 1 selects Reverse, 0 selects Forward (spec.md §4.4).
func TestEscAddressModeArg(t *testing.T) {
	e, _ := newTestEngine()
	require.Equal(t, Forward, e.dir)

	e.HandleInput(0x1B)
	e.HandleInput('r')
	e.HandleInput(1)
	require.Equal(t, Reverse, e.dir)
	require.Equal(t, stateNormal, e.inState)

	e.HandleInput(0x1B)
	e.HandleInput('r')
	e.HandleInput(0)
	require.Equal(t, Forward, e.dir)
}

// TestEscFrameScrollUpDown exercises the custom "ESC A/B <n>" family's
// scroll-up/scroll-down primitives via the escape path rather than calling
// ScrollUp/ScrollDown directly.
func TestEscFrameScrollUpDown(t *testing.T) {
	e, _ := newTestEngine()
	for r := 0; r < 4; r++ {
		e.gotoxy(0, r)
		e.WriteGlyph(byte('1'+r), e.attr)
	}

	e.HandleInput(0x1B)
	e.HandleInput('A')
	e.HandleInput(1)
	require.Equal(t, byte('2'), e.fb[e.fbOffset(0, 0)].Glyph())
	require.Equal(t, byte(' '), e.fb[e.fbOffset(3, 0)].Glyph())

	e.HandleInput(0x1B)
	e.HandleInput('B')
	e.HandleInput(1)
	require.Equal(t, byte(' '), e.fb[e.fbOffset(0, 0)].Glyph())
	require.Equal(t, byte('2'), e.fb[e.fbOffset(1, 0)].Glyph())
}

// TestEscFrameBrowse exercises the custom "ESC C <dir>" browse-frame
// escape end to end, over a virtual screen larger than the frame so the
// window actually has room to move (spec.md §4.4 "browse frame").
func TestEscFrameBrowse(t *testing.T) {
	e, _ := newWindowedEngine(2, 4, 6, 8)

	e.HandleInput(0x1B)
	e.HandleInput('C')
	e.HandleInput(4) // right
	require.Equal(t, 4, e.frameBaseCol)
	row, col := e.Cursor()
	require.Equal(t, 0, row)
	require.Equal(t, 0, col)

	e.HandleInput(0x1B)
	e.HandleInput('C')
	e.HandleInput(3) // left
	require.Equal(t, 0, e.frameBaseCol)
}

// TestEscDriverCustomCharArgCollection exercises the ARG_DRIVER fallback
// path: an escape byte the engine doesn't recognize is handed to the
// driver's CustomCharHandler, which can ask the engine to collect further
// argument bytes and replay them one at a time (spec.md §4.4 "unknown
// after custom dispatch falls through to the driver's handle_custom_char").
func TestEscDriverCustomCharArgCollection(t *testing.T) {
	e, d := newTestEngine()
	d.customCharN = 2

	e.HandleInput(0x1B)
	e.HandleInput('Q')
	require.Equal(t, stateArgDriver, e.inState)
	require.Equal(t, []byte{'Q'}, d.customCharCalls)

	e.HandleInput('X')
	require.Equal(t, stateArgDriver, e.inState)
	e.HandleInput('Y')
	require.Equal(t, stateNormal, e.inState)
	require.Equal(t, []byte{'Q', 'X', 'Y'}, d.customCharCalls)
}

// TestEscDriverCustomCharNoFurtherArgs covers the zero-argument case: the
// driver signals "handled, nothing more to collect" by returning <= 0, and
// the engine stays in NORMAL without entering ARG_DRIVER.
func TestEscDriverCustomCharNoFurtherArgs(t *testing.T) {
	e, d := newTestEngine()
	d.customCharN = 0

	e.HandleInput(0x1B)
	e.HandleInput('Q')
	require.Equal(t, stateNormal, e.inState)
	require.Equal(t, []byte{'Q'}, d.customCharCalls)
}
