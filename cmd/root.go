/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/allbin/go-bitpulse"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DriverFactory builds the device driver for a USB vendor/product pair
type DriverFactory func(vendorID, productID int) bitpulse.Driver

var (
	cfgFile       string
	driverFactory DriverFactory
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bitpulse <bits6> [duration_ms] [index] [--inv]",
	Short: "Pulse a 6-bit pattern on an FTDI bridge in bit-bang mode",
	Long: `Drive lines D0..D5 of an FTDI USB-to-serial bridge in asynchronous
bit-bang mode, hold the pattern for a duration, then clear the lines and
release the device.

Arguments:
  <bits6>        6-bit binary string, e.g. 010101
                 Leftmost is D5, rightmost is D0.
  [duration_ms]  Hold time in milliseconds (integer). Default: 17 (about 1/60 sec)
  [index]        FTDI device index. Default: 0

Exit codes:
  0  success
  1  usage or argument error
  2  device open failed
  3  bit-bang mode configuration failed
  4  pattern write failed`,
	Example: `  bitpulse 010101
  bitpulse 010101 60
  bitpulse 010101 60 1
  bitpulse 010101 60 1 --inv`,
	Args: func(cmd *cobra.Command, args []string) error {
		_, err := parsePulseArgs(args, viper.GetString("duration"), viper.GetString("index"))
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := parsePulseArgs(args, viper.GetString("duration"), viper.GetString("index"))
		if err != nil {
			return err
		}
		req.invert, _ = cmd.Flags().GetBool("inv")

		opts, err := sessionOptions()
		if err != nil {
			return err
		}

		driver, err := newDriver()
		if err != nil {
			return err
		}

		// Arguments are valid; device failures are not usage errors
		cmd.SilenceUsage = true

		return runPulse(cmd.OutOrStdout(), driver, req, viper.GetBool("quiet"), opts...)
	},
}

// Execute adds all child commands to the root command and exits with the
// status of the run. It is called by main.main().
func Execute(factory DriverFactory) {
	driverFactory = factory
	err := rootCmd.Execute()
	os.Exit(bitpulse.ExitCode(err))
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bitpulse.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("vendor-id", "0x0403", "USB vendor ID of the bridge")
	rootCmd.PersistentFlags().String("product-id", "0x6001", "USB product ID of the bridge")

	rootCmd.Flags().Bool("inv", false, "Invert output (active-low helper). Output becomes (~bits) & 0x3F")
	rootCmd.Flags().Int("baud-rate", 115200, "Rate programmed before entering bit-bang mode")
	rootCmd.Flags().Int("latency", 2, "Latency timer in milliseconds (1-255)")
	rootCmd.Flags().BoolP("quiet", "q", false, "Print nothing on success")

	for _, name := range []string{"log-level", "vendor-id", "product-id"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	for _, name := range []string{"baud-rate", "latency", "quiet"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
	viper.SetDefault("duration", 17)
	viper.SetDefault("index", 0)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", bitpulse.ErrUsage, err)
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bitpulse")
	}

	viper.SetEnvPrefix("bitpulse")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}

	if level, err := logrus.ParseLevel(viper.GetString("log-level")); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.WithField("level", viper.GetString("log-level")).Warn("unknown log level, keeping default")
	}
	logrus.SetOutput(os.Stderr)
}

// sessionOptions builds the session options shared by every pulse from
// flags and configuration
func sessionOptions() ([]bitpulse.Option, error) {
	opts := []bitpulse.Option{
		bitpulse.WithBaudRate(viper.GetInt("baud-rate")),
		bitpulse.WithLatencyTimer(viper.GetInt("latency")),
		bitpulse.WithLogger(logrus.StandardLogger()),
	}
	config := bitpulse.DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, fmt.Errorf("%w: %w", bitpulse.ErrUsage, err)
		}
	}
	return opts, nil
}

// deviceFilter returns the configured USB IDs. The pulse driver, list and
// reset all use it so device indices agree between them.
func deviceFilter() (bitpulse.DeviceFilter, error) {
	vendorID, err := parseUSBID(viper.GetString("vendor-id"))
	if err != nil {
		return bitpulse.DeviceFilter{}, fmt.Errorf("%w: invalid vendor-id: %w", bitpulse.ErrUsage, err)
	}
	productID, err := parseUSBID(viper.GetString("product-id"))
	if err != nil {
		return bitpulse.DeviceFilter{}, fmt.Errorf("%w: invalid product-id: %w", bitpulse.ErrUsage, err)
	}
	return bitpulse.DeviceFilter{VendorID: vendorID, ProductID: productID}, nil
}

// newDriver builds the driver for the configured USB IDs
func newDriver() (bitpulse.Driver, error) {
	if driverFactory == nil {
		return nil, fmt.Errorf("no device driver available")
	}
	filter, err := deviceFilter()
	if err != nil {
		return nil, err
	}
	return driverFactory(filter.VendorID, filter.ProductID), nil
}
