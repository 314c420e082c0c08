package bitpulse

import "time"

// Sleeper blocks the calling goroutine for at least the given duration. It
// must not return early.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(d time.Duration)

// Sleep calls f(d).
func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

// SystemSleeper sleeps on the operating system clock, resuming after signal
// interruptions until the full duration has elapsed.
type SystemSleeper struct{}

// Sleep blocks for d. Non-positive durations return immediately.
func (SystemSleeper) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	sleep(d)
}
