//go:build linux

package bitpulse

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// sleep uses nanosleep directly so an interrupted call resumes with the
// remaining time reported by the kernel.
func sleep(d time.Duration) {
	deadline := time.Now().Add(d)
	req := unix.NsecToTimespec(d.Nanoseconds())
	for {
		var rem unix.Timespec
		err := unix.Nanosleep(&req, &rem)
		if err == nil {
			return
		}
		if !errors.Is(err, unix.EINTR) {
			// Not expected for a valid timespec; finish on the runtime timer
			time.Sleep(time.Until(deadline))
			return
		}
		req = rem
	}
}
