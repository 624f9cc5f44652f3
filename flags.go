package ccdisplay

// Direction is the device's address-counter write direction. The original
// driver packed this into a single INC_CURS_POS bit of struct_flags; the
// motion primitives, line-feed scrolling and redraw order in this package
// are parameterised by it instead of re-deriving it from a bit each call
// (spec.md §9). fillSpan and memmove take explicit fb intervals and do not
// depend on it.
type Direction int

const (
	// Forward is the default: cursor advances right/down, wraps at the
	// right/bottom edge, redraws walk from the low address.
	Forward Direction = iota
	// Reverse inverts every motion primitive: left/up, wraps at the
	// left/top edge, redraws walk from the high address.
	Reverse
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Reverse
	}
	return Forward
}

// inputState is the input dispatcher's state (spec.md §4.1). Kept as its
// own enum rather than a packed bitfield range, per spec.md §9.
type inputState int

const (
	stateNormal inputState = iota
	stateRaw
	stateSyn
	stateEsc
	stateCSI
	stateEscG0
	stateEscG1
	stateEscHash
	stateEscPercent
	stateArg
	stateArgDriver
)

// The non-CSI escape sub-state that spec.md §3 models as struct_flags bits
// 16..23 ("current escape sub-state tag") is represented directly by the
// dedicated inputState values stateEscG0/G1/Hash/Percent above rather than
// a second parallel enum — the dispatcher only ever needs to ask "which
// state am I in", never to mask/shift a packed tag out of a wider word.

// initLevel tracks driver lifecycle progress, 0 (nothing done) through 3
// (fully initialised). See lifecycle.go.
type initLevel int

const (
	initNone    initLevel = iota // nothing allocated
	initParams                   // parameters validated, memory laid out
	initPort                     // driver.InitPort succeeded
	initDisplay                  // driver.InitDisplay succeeded (fully up)
)

// modeFlags is the boolean zone of struct_flags, promoted to named fields
// (spec.md §9: "re-architect as a small record of named fields"). Only the
// engine mutates these; external code reads them through the typed
// accessors in engine.go.
type modeFlags struct {
	needWrap    bool // NEED_WRAP: last column written, next printable wraps first
	decim       bool // DECIM: insert mode
	decom       bool // DECOM: cursor addressing relative to scroll region
	decawm      bool // DECAWM: autowrap at right/left edge
	decscnm     bool // DECSCNM: inverted screen (swaps fg/bg for every cell)
	crlf        bool // CRLF: LF implies CR
	ques        bool // QUES: current CSI sequence began with '?'
	userSpace   bool // USER_SPACE: current ioctl buffer originates in user space
	nullCharmap bool // NULL_CHARMAP: charmap is the engine-supplied identity table
	canDoColor  bool // CAN_DO_COLOR: driver.ValidateDriver() returned > 0
}
