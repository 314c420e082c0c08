/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/allbin/go-bitpulse"
	"github.com/allbin/go-bitpulse/internal/tui/styles"
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset <index|--serial serial>",
	Short: "Reset an FTDI device at the USB level",
	Long: `Perform a USB-level reset on an FTDI bridge. This can recover a device
left hung by an interrupted pulse without physically unplugging it.

The index counts devices matching --vendor-id/--product-id, exactly like
the [index] argument of bitpulse. The device re-enumerates after the reset,
which may change its index when several bridges are attached. Use serial
numbers to select devices reliably.

Requirements:
- usbreset utility must be installed (from usbutils package)
- Root/sudo permissions required for USB operations

Examples:
  sudo bitpulse reset 0                 # Reset by device index
  sudo bitpulse reset --serial A50285BI # Reset by serial number`,
	Args: func(cmd *cobra.Command, args []string) error {
		serialFlag, _ := cmd.Flags().GetString("serial")
		if serialFlag == "" && len(args) != 1 {
			return fmt.Errorf("%w: requires either a device index argument or --serial flag", bitpulse.ErrUsage)
		}
		if serialFlag != "" && len(args) > 0 {
			return fmt.Errorf("%w: cannot specify both device index and --serial flag", bitpulse.ErrUsage)
		}
		if len(args) == 1 {
			if _, err := parseIndex(args[0]); err != nil {
				return fmt.Errorf("%w: %w", bitpulse.ErrUsage, err)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := deviceFilter()
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		target := resetTarget{filter: filter}
		target.serial, _ = cmd.Flags().GetString("serial")
		if target.serial == "" {
			target.index, _ = parseIndex(args[0])
		}

		return resetDevice(cmd.OutOrStdout(), cmd.ErrOrStderr(), target, bitpulse.ResetUSBDevice)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().StringP("serial", "s", "", "Reset device by serial number")
}

// resetTarget selects the device to reset by serial, or by index when serial
// is empty
type resetTarget struct {
	filter bitpulse.DeviceFilter
	index  int
	serial string
}

// resetDevice resolves target among the devices matching its filter and
// resets it with reset
func resetDevice(out, errOut io.Writer, target resetTarget, reset func(bitpulse.DeviceInfo) error) error {
	info, err := resolveResetTarget(target)
	if err == nil {
		fmt.Fprintf(out, "Resetting FTDI device %d (serial %s, bus %s, device %s)\n",
			info.Index, valueOrDash(info.SerialNumber), info.BusNumber, info.DeviceNumber)
		err = reset(info)
	}

	if err != nil {
		fmt.Fprintf(errOut, "%s %v\n", styles.ErrorStyle.Render("Error:"), err)
		switch {
		case errors.Is(err, bitpulse.ErrDeviceNotFound):
			fmt.Fprintln(errOut, styles.MutedStyle.Render("Use 'bitpulse list' to see attached devices"))
		case errors.Is(err, bitpulse.ErrUSBResetNotAvailable):
			fmt.Fprintln(errOut, styles.MutedStyle.Render("Install with: sudo apt-get install usbutils"))
		}
		return err
	}

	fmt.Fprintf(out, "%s USB device reset successfully\n", styles.SuccessStyle.Render("✓"))
	fmt.Fprintln(out, "Device will re-enumerate (index may change)")
	return nil
}

func resolveResetTarget(target resetTarget) (bitpulse.DeviceInfo, error) {
	devices, err := bitpulse.ListDevicesIn(sysfsRoot, target.filter)
	if err != nil {
		return bitpulse.DeviceInfo{}, err
	}

	for _, d := range devices {
		if target.serial != "" && d.SerialNumber == target.serial {
			return d, nil
		}
		if target.serial == "" && d.Index == target.index {
			return d, nil
		}
	}

	if target.serial != "" {
		return bitpulse.DeviceInfo{}, fmt.Errorf("%w: serial %s", bitpulse.ErrDeviceNotFound, target.serial)
	}
	return bitpulse.DeviceInfo{}, fmt.Errorf("%w: index %d", bitpulse.ErrDeviceNotFound, target.index)
}
