package ccdisplay

import "log/slog"

// Engine is a single character-cell display engine instance (spec.md §3).
// Unlike the original driver's global lcd_drivers singleton, RegisterDriver
// returns an Engine handle and every operation takes it explicitly
// (DESIGN.md, Open Question #1) — nothing here is package-level state.
//
// Engine is not safe for concurrent use: spec.md §5 models it as
// single-threaded cooperative, mutated only from the caller's execution
// context (under the host's own lock in a real character-device
// deployment). Callers that need concurrent access must serialize it
// themselves.
type Engine struct {
	params Parameters
	driver DriverPort
	log    *slog.Logger
	level  initLevel

	// Virtual screen and physical mirror (spec.md §3).
	fb      []Cell
	display []Cell

	// frameBaseRow/frameBaseCol: fb-coordinate of the frame's top-left
	// cell. frameBase() derives the linear offset.
	frameBaseRow int
	frameBaseCol int

	cursorRow int
	cursorCol int

	savedCursorRow int
	savedCursorCol int
	savedAttrs     attrByte
	savedColor     colorByte
	hasSaved       bool

	// Scrolling region [scrollTop, scrollBot) in rows.
	scrollTop int
	scrollBot int

	dir   Direction
	flags modeFlags

	inState     inputState
	pending     *pendingArgs
	gSelectWait bool // custom ESC G seen, next byte routed to CGRAM or normal write

	csiParams [16]int
	csiIdx    int

	attrs attrByte
	color colorByte

	defColor  colorByte
	ulColor   colorByte
	halfColor colorByte

	attr      byte // composed run-time attribute, written into fb's high byte
	eraseChar Cell

	charmap [256]byte

	// cgram holds the last-written bitmap per user-definable character
	// (spec.md §3, §4.6). An "ESC s" sequence is assembled in the
	// pendingArgs buffer (esc.go), not in cgramStage, which nothing reads
	// or writes.
	cgram      [][]byte
	cgramStage []byte
}

// Parameters returns the registration parameters, including any device
// flags changed since by SetParam.
func (e *Engine) Parameters() Parameters { return e.params }

// Direction returns the engine's current address-counter write direction.
func (e *Engine) Direction() Direction { return e.dir }

// AutoWrap reports DECAWM.
func (e *Engine) AutoWrap() bool { return e.flags.decawm }

// InsertMode reports DECIM.
func (e *Engine) InsertMode() bool { return e.flags.decim }

// OriginMode reports DECOM.
func (e *Engine) OriginMode() bool { return e.flags.decom }

// InvertedScreen reports DECSCNM.
func (e *Engine) InvertedScreen() bool { return e.flags.decscnm }

// LFImpliesCR reports the CRLF mode flag.
func (e *Engine) LFImpliesCR() bool { return e.flags.crlf }

// CanDoColor reports whether the attached driver validated as color-capable.
func (e *Engine) CanDoColor() bool { return e.flags.canDoColor }

// Cursor returns the current cursor position in virtual-screen coordinates.
func (e *Engine) Cursor() (row, col int) { return e.cursorRow, e.cursorCol }

// ScrollRegion returns the current scrolling region [top, bot).
func (e *Engine) ScrollRegion() (top, bot int) { return e.scrollTop, e.scrollBot }

// frameRows/frameCols/frameBase are internal geometry helpers shared by
// geometry.go, bufferops.go and motion.go.

func (e *Engine) frameRows() int { return e.params.FrameRows() }
func (e *Engine) frameCols() int { return e.params.FrameCols() }

// fbOffset converts virtual-screen (row, col) to a linear fb index.
func (e *Engine) fbOffset(row, col int) int { return row*e.params.VSCols + col }

// fbRC converts a linear fb index back to (row, col).
func (e *Engine) fbRC(offset int) (row, col int) {
	return offset / e.params.VSCols, offset % e.params.VSCols
}

// resetState restores default cursor/attribute/mode state, used both by
// RegisterDriver's init and by the ESC c (RIS) full-reset handler. It does
// not touch fb/display/cgram contents.
func (e *Engine) resetState() {
	e.dir = Forward
	e.flags = modeFlags{decawm: true, canDoColor: e.flags.canDoColor, nullCharmap: e.flags.nullCharmap}
	e.scrollTop = 0
	e.scrollBot = e.params.VSRows
	e.cursorRow, e.cursorCol = 0, 0
	e.frameBaseRow, e.frameBaseCol = 0, 0
	e.attrs = attrByte{Intensity: 1}
	e.color = colorByte{Fg: ansiToDevice(7), Bg: ansiToDevice(0)}
	e.defColor = e.color
	e.ulColor = colorByte{Fg: ansiToDevice(7)}
	e.halfColor = colorByte{Fg: ansiToDevice(7)}
	e.updateAttr()
	e.inState = stateNormal
	e.pending = nil
	e.gSelectWait = false
	e.csiIdx = 0
}

// updateAttr recomposes attr and eraseChar from the current SGR state.
// Called after every SGR and after DECSCNM toggles (spec.md §4.3).
func (e *Engine) updateAttr() {
	e.attr = composeAttr(e.flags.canDoColor, e.attrs, e.color, e.flags.decscnm)
	e.eraseChar = MakeCell(space, eraseAttr(e.flags.canDoColor, e.attrs, e.color, e.flags.decscnm))
}
