package ccdisplay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSIParamOverflowAbandonsSequence(t *testing.T) {
	e, _ := newTestEngine()
	e.HandleInput(uint16(0x1B))
	e.HandleInput(uint16('['))
	for i := 0; i < 17; i++ {
		e.HandleInput(uint16(';'))
	}
	require.Equal(t, stateNormal, e.inState)
	require.LessOrEqual(t, e.csiIdx, 16)
}

func TestInvertScreenRoundTrips(t *testing.T) {
	e, _ := newTestEngine()
	feedString(e, "ABCD")
	before := append([]Cell(nil), e.fb...)

	feedString(e, "\x1b[?5h")
	require.True(t, e.flags.decscnm)
	require.NotEqual(t, before, e.fb)

	feedString(e, "\x1b[?5l")
	require.False(t, e.flags.decscnm)
	require.Equal(t, before, e.fb)
}

func TestSGRColorAndReset(t *testing.T) {
	e, _ := newTestEngine()
	feedString(e, "\x1b[31;44m")
	require.Equal(t, uint8(ansiToDevice(1)), e.color.Fg)
	require.Equal(t, uint8(ansiToDevice(4)), e.color.Bg)

	feedString(e, "\x1b[0m")
	require.Equal(t, e.defColor, e.color)
}

func TestReverseDirectionDropsNonModeCSI(t *testing.T) {
	e, _ := newTestEngine()
	e.dir = Reverse
	e.gotoxy(2, 2)
	before := e.cursorRow
	feedString(e, "\x1b[L")
	require.Equal(t, before, e.cursorRow)
}

func TestReverseDirectionAllowsModeCSI(t *testing.T) {
	e, _ := newTestEngine()
	e.dir = Reverse
	feedString(e, "\x1b[4h")
	require.True(t, e.flags.decim)
}

func TestEraseDisplayModes(t *testing.T) {
	e, _ := newTestEngine()
	feedString(e, "ABCDEFGH")
	e.gotoxy(0, 1)
	feedString(e, "\x1b[1J")
	for i := 0; i < e.fbOffset(1, 0)+1; i++ {
		require.Equal(t, e.eraseChar, e.fb[i])
	}
}

func TestScrollRegionMinimumTwoLines(t *testing.T) {
	e, _ := newTestEngine()
	e.SetScrollRegion(1, 1)
	top, bot := e.ScrollRegion()
	require.GreaterOrEqual(t, bot-top, 2)
}
