//go:build !linux

package bitpulse

import "time"

func sleep(d time.Duration) {
	time.Sleep(d)
}
