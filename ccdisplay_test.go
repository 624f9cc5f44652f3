package ccdisplay

// fakeDriver is a recording DriverPort used across the test files: it
// implements every optional capability except CustomIOCTLHandler, so tests
// can exercise the dispatch surface and IOCtl's unsupported path, and keeps its own copy of what's visible on the
// "physical" device for assertions independent of the engine's own
// display mirror.
type fakeDriver struct {
	frameCols int

	writes     []writeRecord
	cgramWrites []cgramRecord
	cleared    int
	addrModes  []Direction
	validate   int
	charmap    *[256]byte

	initPortErr    error
	initDisplayErr error

	physical map[int]Cell

	customCharN     int
	customCharCalls []byte
}

type writeRecord struct {
	offset int
	cell   Cell
}

type cgramRecord struct {
	index  int
	bitmap []byte
}

func newFakeDriver(frameCols int) *fakeDriver {
	return &fakeDriver{frameCols: frameCols, physical: map[int]Cell{}, validate: 1}
}

func (d *fakeDriver) WriteChar(offset int, cell Cell) {
	d.writes = append(d.writes, writeRecord{offset, cell})
	d.physical[offset] = cell
}

func (d *fakeDriver) InitPort() error    { return d.initPortErr }
func (d *fakeDriver) CleanupPort() error { return nil }

func (d *fakeDriver) InitDisplay() error    { return d.initDisplayErr }
func (d *fakeDriver) CleanupDisplay() error { return nil }

func (d *fakeDriver) ValidateDriver() int { return d.validate }

func (d *fakeDriver) ClearDisplay() {
	d.cleared++
	d.physical = map[int]Cell{}
}

func (d *fakeDriver) SetAddressMode(dir Direction) {
	d.addrModes = append(d.addrModes, dir)
}

func (d *fakeDriver) WriteCGRAMChar(index int, bitmap []byte) {
	cp := make([]byte, len(bitmap))
	copy(cp, bitmap)
	d.cgramWrites = append(d.cgramWrites, cgramRecord{index, cp})
}

func (d *fakeDriver) ReadChar(offset int) Cell { return d.physical[offset] }

func (d *fakeDriver) ReadCGRAMChar(index int) []byte {
	for i := len(d.cgramWrites) - 1; i >= 0; i-- {
		if d.cgramWrites[i].index == index {
			return d.cgramWrites[i].bitmap
		}
	}
	return nil
}

func (d *fakeDriver) Charmap() *[256]byte { return d.charmap }

// HandleCustomChar records every byte it is called with. The first call
// (the byte immediately after ESC that fell through the engine's built-in
// custom escapes) returns customCharN, the number of further argument
// bytes to collect; every recorded call after that is one of those
// collected argument bytes being replayed, and returns 0.
func (d *fakeDriver) HandleCustomChar(code byte) int {
	d.customCharCalls = append(d.customCharCalls, code)
	if len(d.customCharCalls) == 1 {
		return d.customCharN
	}
	return 0
}

// writeCount returns how many WriteChar calls have been recorded so far,
// for idempotence assertions.
func (d *fakeDriver) writeCount() int { return len(d.writes) }

func testParams() Parameters {
	return Parameters{
		Name:       "test",
		Tabstop:    4,
		NumCntr:    1,
		CntrRows:   4,
		CntrCols:   4,
		VSRows:     4,
		VSCols:     4,
		CGRAMChars: 8,
		CGRAMBytes: 8,
		CGRAMChar0: 0xF0,
	}
}

// newTestEngine builds a registered Engine over a fresh fakeDriver with
// the standard 4x4 geometry used throughout spec.md §8's concrete
// scenarios.
func newTestEngine() (*Engine, *fakeDriver) {
	d := newFakeDriver(4)
	e, err := RegisterDriver(testParams(), d, nil)
	if err != nil {
		panic(err)
	}
	return e, d
}

// fbString reads back fb as a plain string of glyph bytes, for assertions
// that mirror spec.md §8's "fb[0..4] == ABCD"-style scenarios.
func fbString(e *Engine) string {
	out := make([]byte, len(e.fb))
	for i, c := range e.fb {
		out[i] = c.Glyph()
	}
	return string(out)
}

func feedString(e *Engine, s string) {
	for i := 0; i < len(s); i++ {
		e.HandleInput(uint16(s[i]))
	}
}
