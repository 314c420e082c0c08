package main

import (
	"github.com/allbin/go-bitpulse"
	"github.com/allbin/go-bitpulse/cmd"
	"github.com/allbin/go-bitpulse/ftdi"
)

func main() {
	cmd.Execute(func(vendorID, productID int) bitpulse.Driver {
		return ftdi.NewDriver(vendorID, productID)
	})
}
