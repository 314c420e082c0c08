package bitpulse

import (
	"os"
	"path/filepath"
	"testing"
)

// writeSysfsDevice creates a mock /sys/bus/usb/devices/<name> entry
func writeSysfsDevice(t *testing.T, root, name string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	for filename, content := range files {
		if err := os.WriteFile(filepath.Join(dir, filename), []byte(content+"\n"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", filename, err)
		}
	}
}

func TestListDevicesIn(t *testing.T) {
	root := t.TempDir()

	writeSysfsDevice(t, root, "3-1", map[string]string{
		"idVendor":     "0403",
		"idProduct":    "6001",
		"serial":       "A50285BI",
		"manufacturer": "FTDI",
		"product":      "FT232R USB UART",
		"busnum":       "3",
		"devnum":       "4",
	})
	writeSysfsDevice(t, root, "1-3", map[string]string{
		"idVendor":  "0403",
		"idProduct": "6001",
		"serial":    "FT123456",
		"busnum":    "1",
		"devnum":    "12",
	})
	writeSysfsDevice(t, root, "1-1", map[string]string{
		"idVendor":  "046d",
		"idProduct": "6001",
		"busnum":    "1",
		"devnum":    "2",
	})
	// Interface directories and root hubs must be skipped even if they match
	writeSysfsDevice(t, root, "1-3:1.0", map[string]string{"idVendor": "0403", "idProduct": "6001"})
	writeSysfsDevice(t, root, "usb1", map[string]string{"idVendor": "0403", "idProduct": "6001"})

	devices, err := ListDevicesIn(root, DefaultDeviceFilter())
	if err != nil {
		t.Fatalf("ListDevicesIn failed: %v", err)
	}

	if len(devices) != 2 {
		t.Fatalf("Expected 2 devices, got %d: %+v", len(devices), devices)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"first Name", devices[0].Name, "1-3"},
		{"first SerialNumber", devices[0].SerialNumber, "FT123456"},
		{"first Manufacturer", devices[0].Manufacturer, ""},
		{"second Name", devices[1].Name, "3-1"},
		{"second Description", devices[1].Description, "FT232R USB UART"},
		{"second BusNumber", devices[1].BusNumber, "3"},
		{"second DeviceNumber", devices[1].DeviceNumber, "4"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.name, tt.got, tt.expected)
		}
	}

	for i, d := range devices {
		if d.Index != i {
			t.Errorf("devices[%d].Index = %d", i, d.Index)
		}
		if d.VendorID != "0403" || d.ProductID != "6001" {
			t.Errorf("devices[%d] = %s:%s, expected 0403:6001", i, d.VendorID, d.ProductID)
		}
	}
}

// Indices count only devices with the filter's product ID, matching how the
// driver enumerates devices for Open
func TestListDevicesInMixedProducts(t *testing.T) {
	root := t.TempDir()

	writeSysfsDevice(t, root, "1-1", map[string]string{
		"idVendor": "0403", "idProduct": "6010", "serial": "DUAL", "busnum": "1", "devnum": "2",
	})
	writeSysfsDevice(t, root, "1-2", map[string]string{
		"idVendor": "0403", "idProduct": "6001", "serial": "FIRST", "busnum": "1", "devnum": "3",
	})
	writeSysfsDevice(t, root, "2-1", map[string]string{
		"idVendor": "0403", "idProduct": "6001", "serial": "SECOND", "busnum": "2", "devnum": "1",
	})

	tests := []struct {
		name    string
		filter  DeviceFilter
		serials []string
	}{
		{"ft232r", DeviceFilter{VendorID: 0x0403, ProductID: 0x6001}, []string{"FIRST", "SECOND"}},
		{"ft2232", DeviceFilter{VendorID: 0x0403, ProductID: 0x6010}, []string{"DUAL"}},
		{"other vendor", DeviceFilter{VendorID: 0x046d, ProductID: 0x6001}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			devices, err := ListDevicesIn(root, tt.filter)
			if err != nil {
				t.Fatalf("ListDevicesIn failed: %v", err)
			}
			if len(devices) != len(tt.serials) {
				t.Fatalf("Expected %d devices, got %+v", len(tt.serials), devices)
			}
			for i, d := range devices {
				if d.Index != i {
					t.Errorf("%s Index = %d, expected %d", d.SerialNumber, d.Index, i)
				}
				if d.SerialNumber != tt.serials[i] {
					t.Errorf("devices[%d].SerialNumber = %q, expected %q", i, d.SerialNumber, tt.serials[i])
				}
			}
		})
	}
}

func TestDeviceFilterMatchesCaseInsensitive(t *testing.T) {
	f := DeviceFilter{VendorID: 0x0403, ProductID: 0x601c}
	if !f.matches("0403", "601C") {
		t.Error("Expected upper-case sysfs product ID to match")
	}
	if f.matches("0403", "6001") {
		t.Error("Expected different product ID not to match")
	}
}

func TestListDevicesInMissingRoot(t *testing.T) {
	_, err := ListDevicesIn(filepath.Join(t.TempDir(), "nonexistent"), DefaultDeviceFilter())
	if err == nil {
		t.Error("Expected error for missing sysfs root")
	}
}

func TestListDevicesInEmpty(t *testing.T) {
	devices, err := ListDevicesIn(t.TempDir(), DefaultDeviceFilter())
	if err != nil {
		t.Fatalf("ListDevicesIn failed: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("Expected no devices, got %d", len(devices))
	}
}

func TestReadSysfsFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		expected string
		setup    func(string) error
	}{
		{
			name:     "normal file",
			expected: "1234",
			setup: func(path string) error {
				return os.WriteFile(path, []byte("1234\n"), 0644)
			},
		},
		{
			name:     "file with spaces",
			expected: "test value",
			setup: func(path string) error {
				return os.WriteFile(path, []byte("  test value  \n"), 0644)
			},
		},
		{
			name:     "nonexistent file",
			expected: "",
			setup:    func(path string) error { return nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(tmpDir, tt.name)
			if err := tt.setup(testFile); err != nil {
				t.Fatalf("Setup failed: %v", err)
			}

			result := readSysfsFile(testFile)
			if result != tt.expected {
				t.Errorf("readSysfsFile() = %q, expected %q", result, tt.expected)
			}
		})
	}
}
