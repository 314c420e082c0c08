package bitpulse

import "errors"

// Predefined error types for robust error handling
var (
	ErrUsage           = errors.New("invalid usage")
	ErrInvalidPattern  = errors.New("invalid bit pattern (need 6 chars of 0/1)")
	ErrInvalidDuration = errors.New("invalid hold duration")
	ErrInvalidIndex    = errors.New("invalid device index")
	ErrInvalidConfig   = errors.New("invalid session configuration")

	// Fatal session errors
	ErrDeviceOpen  = errors.New("device open failed")
	ErrBitMode     = errors.New("bit-bang mode configuration failed")
	ErrWrite       = errors.New("output write failed")
	ErrShortWrite  = errors.New("short write")
	ErrSessionUsed = errors.New("session already run")

	// USB-related errors
	ErrDeviceNotFound       = errors.New("FTDI device not found")
	ErrUSBInfoNotAvailable  = errors.New("USB device information not available")
	ErrUSBResetNotAvailable = errors.New("usbreset utility not available")
)

// Process exit codes reported by the command line tool.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitOpen     = 2
	ExitBitMode  = 3
	ExitWrite    = 4
	exitFallback = 1
)

// ExitCode maps an error returned by a session or by argument parsing to the
// process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrDeviceOpen):
		return ExitOpen
	case errors.Is(err, ErrBitMode):
		return ExitBitMode
	case errors.Is(err, ErrWrite):
		return ExitWrite
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return exitFallback
	}
}
