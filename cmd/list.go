/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/allbin/go-bitpulse"
	"github.com/allbin/go-bitpulse/internal/tui/styles"
	"github.com/evertras/bubble-table/table"
	"github.com/spf13/cobra"
)

const (
	columnKeyIndex   = "index"
	columnKeyID      = "id"
	columnKeySerial  = "serial"
	columnKeyProduct = "product"
	columnKeyUSB     = "usb"
)

// sysfsRoot is where list and reset look for USB devices
var sysfsRoot = bitpulse.DefaultSysfsRoot

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached FTDI devices",
	Long: `List FTDI USB-to-serial bridges matching --vendor-id/--product-id.

Devices are shown in enumeration order; the index column is the [index]
argument accepted by bitpulse with the same USB IDs. Device information is
read from sysfs.

Examples:
  bitpulse list
  bitpulse list --table
  bitpulse list --product-id 0x6010`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := deviceFilter()
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		tableFormat, _ := cmd.Flags().GetBool("table")
		return listDevices(cmd.OutOrStdout(), cmd.ErrOrStderr(), filter, tableFormat)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

// listDevices prints the devices matching filter
func listDevices(out, errOut io.Writer, filter bitpulse.DeviceFilter, tableFormat bool) error {
	devices, err := bitpulse.ListDevicesIn(sysfsRoot, filter)
	if err != nil {
		fmt.Fprintf(errOut, "%s listing devices: %v\n", styles.ErrorStyle.Render("Error:"), err)
		return err
	}

	if len(devices) == 0 {
		fmt.Fprintf(out, "No FTDI devices found matching %04x:%04x\n", filter.VendorID, filter.ProductID)
		return nil
	}

	if tableFormat {
		renderTable(out, devices)
	} else {
		renderSimple(out, devices)
	}
	return nil
}

// renderTable renders the device list as a bordered table
func renderTable(out io.Writer, devices []bitpulse.DeviceInfo) {
	fmt.Fprintf(out, "Found %d FTDI device(s):\n\n", len(devices))

	columns := []table.Column{
		table.NewColumn(columnKeyIndex, "Index", 7),
		table.NewColumn(columnKeyID, "VID:PID", 11),
		table.NewColumn(columnKeySerial, "Serial", 14),
		table.NewColumn(columnKeyProduct, "Product", 26),
		table.NewColumn(columnKeyUSB, "Bus/Dev", 9),
	}

	rows := make([]table.Row, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyIndex:   d.Index,
			columnKeyID:      d.VendorID + ":" + d.ProductID,
			columnKeySerial:  valueOrDash(d.SerialNumber),
			columnKeyProduct: valueOrDash(d.Description),
			columnKeyUSB:     valueOrDash(usbLocation(d)),
		}))
	}

	t := table.New(columns).
		WithRows(rows).
		BorderRounded().
		WithBaseStyle(styles.TableBaseStyle).
		HeaderStyle(styles.TableHeaderStyle)

	fmt.Fprintln(out, t.View())
}

// renderSimple renders one device per line
func renderSimple(out io.Writer, devices []bitpulse.DeviceInfo) {
	for _, d := range devices {
		fmt.Fprintf(out, "%d\t%s:%s\t%s\t%s\n",
			d.Index, d.VendorID, d.ProductID, valueOrDash(d.SerialNumber), valueOrDash(d.Description))
	}
}

func usbLocation(d bitpulse.DeviceInfo) string {
	if d.BusNumber == "" || d.DeviceNumber == "" {
		return ""
	}
	return d.BusNumber + "/" + d.DeviceNumber
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
