package bitpulse

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the configuration for a device session
type Config struct {
	DeviceIndex  int
	Hold         time.Duration
	Invert       bool
	BaudRate     int
	LatencyTimer int // Milliseconds (1-255)
	Logger       logrus.FieldLogger
	Sleeper      Sleeper
}

// Option is a functional option for configuring a session
type Option func(*Config) error

// DefaultHold is roughly one frame at 60Hz.
const DefaultHold = 17 * time.Millisecond

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		DeviceIndex:  0,
		Hold:         DefaultHold,
		Invert:       false,
		BaudRate:     115200,
		LatencyTimer: 2,
		Logger:       logrus.StandardLogger(),
		Sleeper:      SystemSleeper{},
	}
}

// WithDeviceIndex selects which attached device to open
func WithDeviceIndex(index int) Option {
	return func(c *Config) error {
		if index < 0 {
			return ErrInvalidIndex
		}
		c.DeviceIndex = index
		return nil
	}
}

// WithHold sets how long the pattern is held before the lines are cleared.
// The duration must be a positive whole number of milliseconds.
func WithHold(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 || d%time.Millisecond != 0 {
			return ErrInvalidDuration
		}
		c.Hold = d
		return nil
	}
}

// WithInvert complements the driven lines (active-low wiring)
func WithInvert(invert bool) Option {
	return func(c *Config) error {
		c.Invert = invert
		return nil
	}
}

// WithBaudRate sets the rate programmed during device preparation
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if rate <= 0 {
			return ErrInvalidConfig
		}
		c.BaudRate = rate
		return nil
	}
}

// WithLatencyTimer sets the device latency timer in milliseconds (1-255)
func WithLatencyTimer(ms int) Option {
	return func(c *Config) error {
		if ms < 1 || ms > 255 {
			return ErrInvalidConfig
		}
		c.LatencyTimer = ms
		return nil
	}
}

// WithLogger sets the logger used for step diagnostics
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) error {
		if logger == nil {
			return ErrInvalidConfig
		}
		c.Logger = logger
		return nil
	}
}

// WithSleeper replaces the sleep primitive used for the hold
func WithSleeper(s Sleeper) Option {
	return func(c *Config) error {
		if s == nil {
			return ErrInvalidConfig
		}
		c.Sleeper = s
		return nil
	}
}
