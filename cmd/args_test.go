package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/allbin/go-bitpulse"
)

func TestParsePulseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantHold  time.Duration
		wantIndex int
		wantBits  string
		wantErr   error
	}{
		{"bits only", []string{"010101"}, 17 * time.Millisecond, 0, "010101", nil},
		{"bits and duration", []string{"010101", "60"}, 60 * time.Millisecond, 0, "010101", nil},
		{"all positionals", []string{"010101", "60", "1"}, 60 * time.Millisecond, 1, "010101", nil},
		{"max duration", []string{"111111", "4294967295"}, 4294967295 * time.Millisecond, 0, "111111", nil},
		{"missing bits", nil, 0, 0, "", bitpulse.ErrUsage},
		{"five bits", []string{"01010"}, 0, 0, "", bitpulse.ErrInvalidPattern},
		{"bad digit", []string{"01012x"}, 0, 0, "", bitpulse.ErrInvalidPattern},
		{"zero duration", []string{"010101", "0"}, 0, 0, "", bitpulse.ErrInvalidDuration},
		{"non-numeric duration", []string{"010101", "1s"}, 0, 0, "", bitpulse.ErrInvalidDuration},
		{"negative duration", []string{"010101", "-5"}, 0, 0, "", bitpulse.ErrInvalidDuration},
		{"duration overflow", []string{"010101", "4294967296"}, 0, 0, "", bitpulse.ErrInvalidDuration},
		{"bad index", []string{"010101", "60", "one"}, 0, 0, "", bitpulse.ErrInvalidIndex},
		{"too many", []string{"010101", "60", "1", "2"}, 0, 0, "", bitpulse.ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parsePulseArgs(tt.args, "17", "0")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				if !errors.Is(err, bitpulse.ErrUsage) {
					t.Errorf("Argument errors must wrap ErrUsage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePulseArgs(%v) failed: %v", tt.args, err)
			}
			if req.hold != tt.wantHold {
				t.Errorf("hold = %v, expected %v", req.hold, tt.wantHold)
			}
			if req.index != tt.wantIndex {
				t.Errorf("index = %d, expected %d", req.index, tt.wantIndex)
			}
			if req.pattern.String() != tt.wantBits {
				t.Errorf("pattern = %s, expected %s", req.pattern, tt.wantBits)
			}
		})
	}
}

func TestParsePulseArgsDefaultsAreValidated(t *testing.T) {
	if _, err := parsePulseArgs([]string{"010101"}, "0", "0"); !errors.Is(err, bitpulse.ErrInvalidDuration) {
		t.Errorf("Expected configured zero duration to be rejected, got %v", err)
	}
	if _, err := parsePulseArgs([]string{"010101"}, "17", "-1"); !errors.Is(err, bitpulse.ErrInvalidIndex) {
		t.Errorf("Expected configured negative index to be rejected, got %v", err)
	}
	req, err := parsePulseArgs([]string{"010101"}, "250", "2")
	if err != nil {
		t.Fatalf("parsePulseArgs failed: %v", err)
	}
	if req.hold != 250*time.Millisecond || req.index != 2 {
		t.Errorf("Expected configured defaults, got hold=%v index=%d", req.hold, req.index)
	}
}

func TestParseUSBID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0x0403", 0x0403, false},
		{"0x6001", 0x6001, false},
		{"1027", 1027, false},
		{"0x10000", 0, true},
		{"ftdi", 0, true},
	}

	for _, tt := range tests {
		got, err := parseUSBID(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseUSBID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseUSBID(%q) = %#x, expected %#x", tt.input, got, tt.want)
		}
	}
}

func TestRenderSimple(t *testing.T) {
	var b strings.Builder
	renderSimple(&b, []bitpulse.DeviceInfo{
		{Index: 0, VendorID: "0403", ProductID: "6001", SerialNumber: "A50285BI", Description: "FT232R USB UART"},
		{Index: 1, VendorID: "0403", ProductID: "6010"},
	})

	want := "0\t0403:6001\tA50285BI\tFT232R USB UART\n1\t0403:6010\t-\t-\n"
	if b.String() != want {
		t.Errorf("renderSimple() = %q, expected %q", b.String(), want)
	}
}
