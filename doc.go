// Package bitpulse drives the six low data lines of an FTDI USB-to-serial
// bridge in asynchronous bit-bang mode, holding a pattern for a fixed time
// before clearing the lines and releasing the device.
//
// A pulse is a one-shot session: open the device, condition it, enter
// bit-bang mode, write one byte, hold, write zero, leave bit-bang mode and
// close.
//
// # Basic Usage
//
// Parse a pattern (leftmost character is D5) and pulse it through a driver:
//
//	p, err := bitpulse.ParsePattern("010101")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = bitpulse.Pulse(ftdi.NewDriver(ftdi.DefaultVendorID, ftdi.DefaultProductID), p)
//	os.Exit(bitpulse.ExitCode(err))
//
// # Configuration Options
//
// Use functional options for custom configuration:
//
//	err = bitpulse.Pulse(driver, p,
//	    bitpulse.WithHold(60*time.Millisecond),
//	    bitpulse.WithDeviceIndex(1),
//	    bitpulse.WithInvert(true),
//	)
//
// With WithInvert the output byte becomes (^pattern) & 0x3F, which suits
// active-low wiring.
//
// # Step Outcomes
//
// Every device operation is recorded as a StepResult. Opening the device,
// entering bit-bang mode and writing the pattern are fatal when they fail.
// Reset, purge, baud rate, latency timer and the clearing write are advisory:
// their failures are logged and the sequence continues.
//
//	s, _ := bitpulse.NewSession(driver)
//	err := s.Run(p)
//	for _, r := range s.Results() {
//	    fmt.Println(r.Step, r.Outcome, r.Status)
//	}
//
// # Error Handling
//
// Fatal failures wrap sentinel errors; ExitCode maps them to process exit
// codes:
//
//	ErrUsage      -> 1
//	ErrDeviceOpen -> 2
//	ErrBitMode    -> 3
//	ErrWrite      -> 4 (also wraps ErrShortWrite when fewer bytes were written)
//
// # Device Discovery (Linux)
//
// ListDevices reads /sys/bus/usb/devices and returns the attached devices
// matching a vendor/product pair in the order the driver enumerates them.
// Use the same pair the Driver was created with and DeviceInfo.Index is the
// value to pass to WithDeviceIndex:
//
//	devices, err := bitpulse.ListDevices(bitpulse.DefaultDeviceFilter())
//
// ResetUSBDevice recovers a hung bridge through the usbreset utility.
//
// # Default Configuration
//
//   - Hold: 17ms (about one frame at 60Hz)
//   - DeviceIndex: 0
//   - BaudRate: 115200
//   - LatencyTimer: 2ms
package bitpulse
