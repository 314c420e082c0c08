// Package ftdi implements the bitpulse device transport on top of libftdi.
package ftdi

import (
	"github.com/allbin/go-bitpulse"
	libftdi "github.com/ziutek/ftdi"
)

// Default USB IDs of an FT232R bridge.
const (
	DefaultVendorID  = bitpulse.FTDIVendorID
	DefaultProductID = bitpulse.FTDIProductID
)

// Driver opens FTDI devices matching a vendor/product pair
type Driver struct {
	VendorID  int
	ProductID int
}

// Ensure Driver implements bitpulse.Driver at compile time
var _ bitpulse.Driver = (*Driver)(nil)

// NewDriver returns a driver for devices with the given USB IDs
func NewDriver(vendorID, productID int) *Driver {
	return &Driver{VendorID: vendorID, ProductID: productID}
}

// Open opens the index-th matching device on its first interface
func (d *Driver) Open(index int) (bitpulse.Device, error) {
	if index < 0 {
		return nil, bitpulse.ErrInvalidIndex
	}
	dev, err := libftdi.Open(d.VendorID, d.ProductID, "", "", uint(index), libftdi.ChannelAny)
	if err != nil {
		return nil, status("FT_Open", err)
	}
	return &device{dev: dev}, nil
}

// device adapts a libftdi handle to bitpulse.Device
type device struct {
	dev *libftdi.Device
}

var _ bitpulse.Device = (*device)(nil)

func (d *device) Reset() error {
	return status("FT_ResetDevice", d.dev.Reset())
}

func (d *device) Purge(target bitpulse.PurgeTarget) error {
	switch target {
	case bitpulse.PurgeRX:
		return status("FT_Purge", d.dev.PurgeReadBuffer())
	case bitpulse.PurgeTX:
		return status("FT_Purge", d.dev.PurgeWriteBuffer())
	default:
		return status("FT_Purge", d.dev.PurgeBuffers())
	}
}

func (d *device) SetBaudRate(rate int) error {
	return status("FT_SetBaudRate", d.dev.SetBaudrate(rate))
}

func (d *device) SetLatencyTimer(ms int) error {
	return status("FT_SetLatencyTimer", d.dev.SetLatencyTimer(ms))
}

func (d *device) SetBitMode(mask byte, mode bitpulse.BitMode) error {
	return status("FT_SetBitMode", d.dev.SetBitmode(mask, libftdi.Mode(mode)))
}

func (d *device) Write(data []byte) (int, error) {
	n, err := d.dev.Write(data)
	return n, status("FT_Write", err)
}

func (d *device) Close() error {
	return status("FT_Close", d.dev.Close())
}

func status(op string, err error) error {
	return bitpulse.NewStatusError(op, err)
}
