package ccdisplay

import "errors"

// Sentinel errors returned by registration, lifecycle and ioctl paths.
// Callers match these with errors.Is; the engine never builds a custom
// error hierarchy on top of them (see DESIGN.md, "error handling").
var (
	// ErrBadGeometry is returned when a Parameters value fails validation:
	// a non-positive controller dimension, or a virtual screen smaller
	// than the physical frame it must contain.
	ErrBadGeometry = errors.New("ccdisplay: invalid parameter geometry")

	// ErrMissingCallback is returned when RegisterDriver is given a nil
	// DriverPort (a non-nil one always has WriteChar, InitPort and
	// CleanupPort).
	ErrMissingCallback = errors.New("ccdisplay: driver missing required callback")

	// ErrDriverInit wraps a failure returned by DriverPort.InitPort or
	// DriverPort.InitDisplay during RegisterDriver.
	ErrDriverInit = errors.New("ccdisplay: driver init failed")

	// ErrDriverCleanup wraps a failure returned by DriverPort.CleanupPort
	// or DriverPort.CleanupDisplay during UnregisterDriver.
	ErrDriverCleanup = errors.New("ccdisplay: driver cleanup failed")

	// ErrUnsupported marks an operation the driver does not implement: it
	// is returned by IOCtl when the driver has no CustomIOCTLHandler, and
	// logged when a CGRAM write is dropped for lack of WriteCGRAMChar.
	ErrUnsupported = errors.New("ccdisplay: unsupported by driver")

	// ErrSequenceAbandoned marks a malformed-but-non-fatal input sequence
	// (CSI parameter overflow, CGRAM index out of range). It is logged,
	// never returned from HandleInput — it exists so internal helpers can
	// signal "abandon this sequence" uniformly.
	ErrSequenceAbandoned = errors.New("ccdisplay: escape sequence abandoned")

	// ErrNotRegistered is returned by UnregisterDriver for a nil Engine or
	// one that has already been torn down. Other operations do not check
	// registration state.
	ErrNotRegistered = errors.New("ccdisplay: engine not registered")
)
