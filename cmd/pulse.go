/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/allbin/go-bitpulse"
	"github.com/allbin/go-bitpulse/internal/tui/styles"
)

// runPulse performs one session and reports the result on out
func runPulse(out io.Writer, driver bitpulse.Driver, req pulseRequest, quiet bool, opts ...bitpulse.Option) error {
	opts = append(opts,
		bitpulse.WithDeviceIndex(req.index),
		bitpulse.WithHold(req.hold),
		bitpulse.WithInvert(req.invert),
	)

	session, err := bitpulse.NewSession(driver, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", bitpulse.ErrUsage, err)
	}

	if err := session.Run(req.pattern); err != nil {
		return err
	}

	if quiet {
		return nil
	}

	value := bitpulse.Encode(req.pattern, req.invert)
	fmt.Fprintf(out, "%s Pulsed %s -> 0x%02X on device %d for %s\n",
		styles.SuccessStyle.Render("✓"),
		styles.TitleStyle.Render(req.pattern.String()),
		value, req.index, req.hold)
	fmt.Fprintf(out, "  %s\n", styles.RenderLines(value))

	for _, r := range session.Results() {
		if r.Outcome == bitpulse.OutcomeAdvisory {
			fmt.Fprintf(out, "  %s %s failed (status %d)\n",
				styles.WarningStyle.Render("!"), r.Step, r.Status)
		}
	}

	return nil
}
