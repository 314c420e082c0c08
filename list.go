package bitpulse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// USB IDs of FTDI bridges. FTDIProductID is the FT232R.
const (
	FTDIVendorID  = 0x0403
	FTDIProductID = 0x6001
)

// DefaultSysfsRoot is where USB devices are exposed on Linux.
const DefaultSysfsRoot = "/sys/bus/usb/devices"

// DeviceInfo describes an attached FTDI device
type DeviceInfo struct {
	Index        int // Position in enumeration order, as accepted by Driver.Open
	Name         string
	VendorID     string
	ProductID    string
	SerialNumber string
	Manufacturer string
	Description  string
	BusNumber    string
	DeviceNumber string
}

// DeviceFilter selects devices by the vendor/product pair a Driver is
// created with. Only matching devices count towards an index.
type DeviceFilter struct {
	VendorID  int
	ProductID int
}

// DefaultDeviceFilter matches FT232R bridges
func DefaultDeviceFilter() DeviceFilter {
	return DeviceFilter{VendorID: FTDIVendorID, ProductID: FTDIProductID}
}

func (f DeviceFilter) matches(vendorID, productID string) bool {
	return strings.EqualFold(vendorID, fmt.Sprintf("%04x", f.VendorID)) &&
		strings.EqualFold(productID, fmt.Sprintf("%04x", f.ProductID))
}

// ListDevices returns the attached devices matching filter
func ListDevices(filter DeviceFilter) ([]DeviceInfo, error) {
	return ListDevicesIn(DefaultSysfsRoot, filter)
}

// ListDevicesIn scans a sysfs USB device directory for devices matching
// filter. Matches are ordered by bus and device number, the order the driver
// enumerates them in, and numbered from 0 so Index is the value Driver.Open
// takes for the same vendor/product pair.
func ListDevicesIn(root string, filter DeviceFilter) ([]DeviceInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var devices []DeviceInfo
	for _, entry := range entries {
		name := entry.Name()

		// Interfaces (1-2:1.0) and root hubs (usb1) carry no device identity
		if strings.Contains(name, ":") || strings.HasPrefix(name, "usb") {
			continue
		}

		devicePath := filepath.Join(root, name)
		vendorID := readSysfsFile(filepath.Join(devicePath, "idVendor"))
		productID := readSysfsFile(filepath.Join(devicePath, "idProduct"))
		if !filter.matches(vendorID, productID) {
			continue
		}

		devices = append(devices, DeviceInfo{
			Name:         name,
			VendorID:     vendorID,
			ProductID:    productID,
			SerialNumber: readSysfsFile(filepath.Join(devicePath, "serial")),
			Manufacturer: readSysfsFile(filepath.Join(devicePath, "manufacturer")),
			Description:  readSysfsFile(filepath.Join(devicePath, "product")),
			BusNumber:    readSysfsFile(filepath.Join(devicePath, "busnum")),
			DeviceNumber: readSysfsFile(filepath.Join(devicePath, "devnum")),
		})
	}

	sort.SliceStable(devices, func(i, j int) bool {
		bi, bj := atoiOrMax(devices[i].BusNumber), atoiOrMax(devices[j].BusNumber)
		if bi != bj {
			return bi < bj
		}
		return atoiOrMax(devices[i].DeviceNumber) < atoiOrMax(devices[j].DeviceNumber)
	})
	for i := range devices {
		devices[i].Index = i
	}

	return devices, nil
}

// readSysfsFile returns the trimmed contents of a sysfs attribute, or "" if
// it cannot be read
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func atoiOrMax(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
