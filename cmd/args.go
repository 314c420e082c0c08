/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/allbin/go-bitpulse"
)

// pulseRequest is the validated command line input of one pulse
type pulseRequest struct {
	pattern bitpulse.Pattern
	hold    time.Duration
	index   int
	invert  bool
}

// parsePulseArgs validates <bits6> [duration_ms] [index]. Omitted values fall
// back to the given defaults, which are validated the same way.
func parsePulseArgs(args []string, defaultDuration, defaultIndex string) (pulseRequest, error) {
	var req pulseRequest

	if len(args) == 0 {
		return req, fmt.Errorf("%w: missing <bits6>", bitpulse.ErrUsage)
	}
	if len(args) > 3 {
		return req, fmt.Errorf("%w: too many positional arguments", bitpulse.ErrUsage)
	}

	pattern, err := bitpulse.ParsePattern(args[0])
	if err != nil {
		return req, fmt.Errorf("%w: %w", bitpulse.ErrUsage, err)
	}
	req.pattern = pattern

	duration := defaultDuration
	if len(args) > 1 {
		duration = args[1]
	}
	if req.hold, err = parseDuration(duration); err != nil {
		return req, fmt.Errorf("%w: %w", bitpulse.ErrUsage, err)
	}

	index := defaultIndex
	if len(args) > 2 {
		index = args[2]
	}
	if req.index, err = parseIndex(index); err != nil {
		return req, fmt.Errorf("%w: %w", bitpulse.ErrUsage, err)
	}

	return req, nil
}

// parseDuration parses a positive hold time in whole milliseconds
func parseDuration(s string) (time.Duration, error) {
	ms, err := strconv.ParseUint(s, 10, 32)
	if err != nil || ms == 0 {
		return 0, fmt.Errorf("%w: %q", bitpulse.ErrInvalidDuration, s)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// parseIndex parses a non-negative device index
func parseIndex(s string) (int, error) {
	index, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", bitpulse.ErrInvalidIndex, s)
	}
	return int(index), nil
}

// parseUSBID parses a 16-bit USB ID in decimal or 0x-prefixed hex
func parseUSBID(s string) (int, error) {
	id, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}
