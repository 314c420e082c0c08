package bitpulse

import (
	"fmt"
	"os/exec"
	"time"
)

// ResetUSBDevice performs a USB-level reset of the device
// This can recover a bridge left in a hung state by an aborted session
//
// Requirements:
// - usbreset utility must be installed (from usbutils package)
// - Requires appropriate permissions (typically root/sudo)
//
// Returns:
// - nil if reset successful
// - ErrUSBResetNotAvailable if usbreset utility not found
// - ErrUSBInfoNotAvailable if bus/device numbers are unknown
// - error if reset fails
func ResetUSBDevice(info DeviceInfo) error {
	if info.BusNumber == "" || info.DeviceNumber == "" {
		return ErrUSBInfoNotAvailable
	}

	if !IsUSBResetAvailable() {
		return ErrUSBResetNotAvailable
	}

	cmd := exec.Command("usbreset", usbPath(info))
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("usbreset failed: %w (output: %s)", err, string(output))
	}

	// Wait for device to re-enumerate
	time.Sleep(2 * time.Second)

	return nil
}

// IsUSBResetAvailable checks if usbreset utility is available in PATH
func IsUSBResetAvailable() bool {
	_, err := exec.LookPath("usbreset")
	return err == nil
}

// usbPath formats bus and device numbers as usbreset expects them (BBB/DDD)
func usbPath(info DeviceInfo) string {
	return fmt.Sprintf("%03d/%03d", atoiOrMax(info.BusNumber), atoiOrMax(info.DeviceNumber))
}
