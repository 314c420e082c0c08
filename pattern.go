package bitpulse

import (
	"fmt"
	"strings"
)

// PatternWidth is the number of output lines driven by a pattern.
const PatternWidth = 6

// OutputMask selects the six driven lines (D0..D5). It doubles as the
// direction mask that configures all of them as outputs.
const OutputMask byte = 0x3F

// Pattern is a validated 6-bit line pattern. Bit 5 is D5, bit 0 is D0.
type Pattern uint8

// ParsePattern validates a string of exactly six '0'/'1' characters, leftmost
// being D5, and folds it into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	if len(s) != PatternWidth {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
	}

	var v Pattern
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
		}
	}
	return v, nil
}

// Encode returns the output byte for p. With invert set the six line levels
// are complemented; bits 6 and 7 are always zero.
func Encode(p Pattern, invert bool) byte {
	out := byte(p) & OutputMask
	if invert {
		out = ^out & OutputMask
	}
	return out
}

// Line reports whether line n (0 = D0 .. 5 = D5) is set in p.
func (p Pattern) Line(n int) bool {
	if n < 0 || n >= PatternWidth {
		return false
	}
	return p&(1<<n) != 0
}

// String renders p in the same form ParsePattern accepts.
func (p Pattern) String() string {
	var b strings.Builder
	for n := PatternWidth - 1; n >= 0; n-- {
		if p.Line(n) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
