package ccdisplay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 1 (spec.md §8): "ABCDE" wraps once at the 4-column boundary.
func TestScenario_WriteWrap(t *testing.T) {
	e, _ := newTestEngine()
	feedString(e, "ABCDE")

	row, col := e.Cursor()
	require.Equal(t, 1, row)
	require.Equal(t, 1, col)
	require.Equal(t, "ABCDE", fbString(e)[:5])
}

// Scenario 2: CSI 2J then CSI H clears the whole screen and homes the
// cursor; every cell equals erase_char.
func TestScenario_ClearAndHome(t *testing.T) {
	e, d := newTestEngine()
	feedString(e, "ABCDEFGHIJKLMNOP")
	d.writes = nil

	feedString(e, "\x1b[2J\x1b[H")

	row, col := e.Cursor()
	require.Equal(t, 0, row)
	require.Equal(t, 0, col)
	for _, c := range e.fb {
		require.Equal(t, e.eraseChar, c)
	}
}

// Scenario 3: save/restore splices EF over positions 2,3 leaving "ABEF".
func TestScenario_SaveRestore(t *testing.T) {
	e, _ := newTestEngine()
	feedString(e, "AB\x1b[sCD\x1b[uEF")
	require.Equal(t, "ABEF", fbString(e)[:4])
}

// Scenario 4: scroll region + DECOM clamps the cursor to the region's
// origin.
func TestScenario_ScrollRegionDECOM(t *testing.T) {
	e, _ := newTestEngine()
	feedString(e, "\x1b[1;3r\x1b[?6hX")
	require.Equal(t, byte('X'), e.fb[e.fbOffset(0, 0)].Glyph())
}

// Scenario 5: tabstop=4 lands "A" at col 0 and "B" at col 4.
func TestScenario_Tabstop(t *testing.T) {
	e, d := newFakeEngineWithCols(8)
	_ = d
	feedString(e, "A\tB")
	require.Equal(t, byte('A'), e.fb[0].Glyph())
	require.Equal(t, byte('B'), e.fb[4].Glyph())
}

func newFakeEngineWithCols(cols int) (*Engine, *fakeDriver) {
	d := newFakeDriver(cols)
	p := testParams()
	p.CntrCols = cols
	p.VSCols = cols
	e, err := RegisterDriver(p, d, nil)
	if err != nil {
		panic(err)
	}
	return e, d
}

func TestBackspaceClampsAtOrigin(t *testing.T) {
	e, _ := newTestEngine()
	e.Backspace()
	_, col := e.Cursor()
	require.Equal(t, 0, col)
}

func TestBackspaceReverseClampsAtFarEdge(t *testing.T) {
	e, _ := newTestEngine()
	e.dir = Reverse
	e.cursorCol = e.params.VSCols - 1
	e.Backspace()
	_, col := e.Cursor()
	require.Equal(t, e.params.VSCols-1, col)
}

func TestFormFeedTwiceIsIdempotent(t *testing.T) {
	e, d := newTestEngine()
	feedString(e, "ABCD")
	e.FormFeed()
	first := append([]Cell(nil), e.fb...)
	d.writes = nil
	e.FormFeed()
	require.Equal(t, first, e.fb)
}

func TestAutowrapSetsNeedWrapWithoutAdvancing(t *testing.T) {
	e, _ := newTestEngine()
	e.gotoxy(e.params.VSCols-1, 0)
	e.WriteGlyph('Z', e.attr)
	require.True(t, e.flags.needWrap)
	_, col := e.Cursor()
	require.Equal(t, e.params.VSCols-1, col)
}

func TestAutowrapOffOverwritesInPlace(t *testing.T) {
	e, _ := newTestEngine()
	e.flags.decawm = false
	e.gotoxy(e.params.VSCols-1, 0)
	e.WriteGlyph('Y', e.attr)
	e.WriteGlyph('Z', e.attr)
	require.Equal(t, byte('Z'), e.fb[e.fbOffset(0, e.params.VSCols-1)].Glyph())
	row, _ := e.Cursor()
	require.Equal(t, 0, row)
}

func TestSaveRestoreRoundTripsColorAndAttrs(t *testing.T) {
	e, _ := newTestEngine()
	e.attrs.Underline = true
	e.color.Fg = 3
	e.updateAttr()
	e.SaveCursor()

	e.attrs.Underline = false
	e.color.Fg = 1
	e.updateAttr()
	e.gotoxy(2, 2)

	e.RestoreCursor()
	require.True(t, e.attrs.Underline)
	require.Equal(t, uint8(3), e.color.Fg)
	row, col := e.Cursor()
	require.Equal(t, 0, row)
	require.Equal(t, 0, col)
}

func TestDiffElisionWritesOnce(t *testing.T) {
	e, d := newTestEngine()
	e.WriteGlyph('A', e.attr)
	n1 := d.writeCount()
	e.gotoxy(0, 0)
	e.WriteGlyph('A', e.attr)
	n2 := d.writeCount()
	require.Equal(t, n1, n2)
}

func TestInsertAndDeleteChars(t *testing.T) {
	e, _ := newTestEngine()
	feedString(e, "ABCD")
	e.gotoxy(1, 0)
	e.InsertChars(1)
	require.Equal(t, byte('A'), e.fb[0].Glyph())
	require.Equal(t, byte(' '), e.fb[1].Glyph())
	require.Equal(t, byte('B'), e.fb[2].Glyph())

	e.gotoxy(1, 0)
	e.DeleteChars(1)
	require.Equal(t, byte('B'), e.fb[1].Glyph())
}

func TestInsertAndDeleteLines(t *testing.T) {
	e, _ := newTestEngine()
	for r := 0; r < 4; r++ {
		e.gotoxy(0, r)
		e.WriteGlyph(byte('1'+r), e.attr)
	}
	e.gotoxy(0, 1)
	e.InsertLines(1)
	require.Equal(t, byte('1'), e.fb[e.fbOffset(0, 0)].Glyph())
	require.Equal(t, byte(' '), e.fb[e.fbOffset(1, 0)].Glyph())
	require.Equal(t, byte('2'), e.fb[e.fbOffset(2, 0)].Glyph())

	e.gotoxy(0, 1)
	e.DeleteLines(1)
	require.Equal(t, byte('2'), e.fb[e.fbOffset(1, 0)].Glyph())
}

func TestScrollUpDown(t *testing.T) {
	e, _ := newTestEngine()
	for r := 0; r < 4; r++ {
		e.gotoxy(0, r)
		e.WriteGlyph(byte('1'+r), e.attr)
	}
	e.ScrollUp(1)
	require.Equal(t, byte('2'), e.fb[e.fbOffset(0, 0)].Glyph())
	require.Equal(t, byte(' '), e.fb[e.fbOffset(3, 0)].Glyph())

	e.ScrollDown(1)
	require.Equal(t, byte(' '), e.fb[e.fbOffset(0, 0)].Glyph())
	require.Equal(t, byte('2'), e.fb[e.fbOffset(1, 0)].Glyph())
}

func TestReverseDirectionMirrorsWrap(t *testing.T) {
	e, _ := newTestEngine()
	e.dir = Reverse
	e.gotoxy(0, 0)
	e.WriteGlyph('Z', e.attr)
	require.True(t, e.flags.needWrap)
	_, col := e.Cursor()
	require.Equal(t, 0, col)
}
