package ccdisplay

import (
	"fmt"
	"log/slog"
)

// RegisterDriver validates params, lays out engine memory, and brings the
// driver up through init levels 0→3 (spec.md §4.7, §3 "Lifecycle"). On any
// failure it tears down whatever level was reached and returns an error;
// on success it returns a live Engine handle. logger may be nil, in which
// case slog.Default() is used (DESIGN.md, "no global singleton" — Open
// Question #1: every caller gets its own handle instead of reaching into
// package-level state).
func RegisterDriver(params Parameters, driver DriverPort, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, fmt.Errorf("ccdisplay: %w: nil driver", ErrMissingCallback)
	}

	e := &Engine{
		params: params,
		driver: driver,
		log:    logger,
	}

	if v, ok := driver.(Validator); ok {
		n := v.ValidateDriver()
		if n < 0 {
			return nil, fmt.Errorf("ccdisplay: %w: driver validation failed", ErrDriverInit)
		}
		e.flags.canDoColor = n > 0
	}
	if cm, ok := driver.(Charmapper); ok && cm.Charmap() != nil {
		e.charmap = *cm.Charmap()
	} else {
		for i := 0; i < 256; i++ {
			e.charmap[i] = byte(i)
		}
		e.flags.nullCharmap = true
	}

	e.fb = make([]Cell, params.FBSize())
	e.display = make([]Cell, params.FrameSize())
	if params.CGRAMChars > 0 {
		e.cgram = make([][]byte, params.CGRAMChars)
		for i := range e.cgram {
			e.cgram[i] = make([]byte, params.CGRAMBytes)
		}
	}

	e.resetState()
	for i := range e.fb {
		e.fb[i] = e.eraseChar
	}
	for i := range e.display {
		e.display[i] = e.eraseChar
	}
	e.level = initParams

	if err := driver.InitPort(); err != nil {
		e.teardown()
		return nil, fmt.Errorf("ccdisplay: %w: %v", ErrDriverInit, err)
	}
	e.level = initPort

	if dl, ok := driver.(DisplayLifecycle); ok {
		if err := dl.InitDisplay(); err != nil {
			e.teardown()
			return nil, fmt.Errorf("ccdisplay: %w: %v", ErrDriverInit, err)
		}
	}
	e.level = initDisplay

	return e, nil
}

// UnregisterDriver tears the engine down through init levels 3→0,
// releasing in reverse order of acquisition (spec.md §3, §4.7). After it
// returns the Engine must not be used again.
func UnregisterDriver(e *Engine) error {
	if e == nil || e.level == initNone {
		return ErrNotRegistered
	}
	return e.teardown()
}

// teardown walks init levels down from e.level to initNone, calling each
// driver cleanup callback in turn and collecting the first failure
// (spec.md §4.7 "do_cleanup_driver at the reached level").
func (e *Engine) teardown() error {
	var firstErr error

	if e.level >= initDisplay {
		if dl, ok := e.driver.(DisplayLifecycle); ok {
			if err := dl.CleanupDisplay(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("ccdisplay: %w: %v", ErrDriverCleanup, err)
			}
		}
	}
	if e.level >= initPort {
		if err := e.driver.CleanupPort(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("ccdisplay: %w: %v", ErrDriverCleanup, err)
		}
	}
	e.level = initNone
	return firstErr
}
