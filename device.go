package bitpulse

import (
	"errors"
	"fmt"
)

// BitMode selects the transport mode of the device output lines.
type BitMode byte

const (
	BitModeReset        BitMode = 0x00 // Plain UART mode, all lines released
	BitModeAsyncBitBang BitMode = 0x01 // Lines follow each written byte
)

// PurgeTarget selects which device buffers a purge discards.
type PurgeTarget int

const (
	PurgeRX PurgeTarget = 1 << iota
	PurgeTX
)

// Driver opens devices by their enumeration index.
type Driver interface {
	Open(index int) (Device, error)
}

// Device is an opened USB-to-serial bridge. Every method reports the transport
// status as its error; nil is the only success value.
type Device interface {
	Reset() error
	Purge(target PurgeTarget) error
	SetBaudRate(rate int) error
	SetLatencyTimer(ms int) error
	SetBitMode(mask byte, mode BitMode) error
	Write(data []byte) (int, error)
	Close() error
}

// StatusError is a failed transport status carrying the driver's numeric code.
type StatusError struct {
	Op   string
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: status %d: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s failed: status %d", e.Op, e.Code)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// NewStatusError wraps a driver error as a StatusError for op, keeping the
// numeric code when err exposes one through a Code() int method. It returns
// nil for a nil err.
func NewStatusError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StatusError{Op: op, Code: StatusCode(err), Err: err}
}

// StatusCode extracts the numeric transport status from err. It returns 0 for
// nil and -1 when err carries no code.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return -1
}
