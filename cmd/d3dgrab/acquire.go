package main

import (
	"errors"
	"fmt"

	"github.com/bnema/d3dgrab"
	"github.com/bnema/d3dgrab/internal/config"
	"github.com/bnema/d3dgrab/internal/logger"
	"github.com/bnema/d3dgrab/internal/ui"
	"github.com/spf13/cobra"
)

var acquireCmd = &cobra.Command{
	Use:   "acquire",
	Short: "Run the device acquisition once and report the outcome",
	Long: `Run the acquisition sequence against this process: resolve a top-level
window it owns, create the D3D9 factory and bind a device to the window.
Useful for checking a host environment before injecting the library build.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		dev, err := d3dgrab.AcquireDevice()
		if err != nil {
			fmt.Println(ui.FormatStatus(false, describeAcquireError(err)))
			return err
		}

		fmt.Println(ui.FormatStatus(true, fmt.Sprintf("device acquired at %p", dev)))

		if cfg.Acquire.Probe {
			if hr := dev.TestCooperativeLevel(); hr.Failed() {
				logger.Warnf("device probe: %v", hr)
			} else {
				logger.Debug("device probe passed")
			}
		}

		// The device is ours now; release it unless the config asks us to
		// leave it alive for an attached debugger to poke at.
		if cfg.Acquire.ReleaseAfter {
			dev.Release()
			logger.Debug("device released")
		}
		return nil
	},
}

// describeAcquireError maps each failure in the closed taxonomy to a
// user-facing line.
func describeAcquireError(err error) string {
	var cdErr *d3dgrab.CreateDeviceError
	switch {
	case errors.Is(err, d3dgrab.ErrNoProcessWindow):
		return "this process owns no top-level window; run from inside a windowed application"
	case errors.Is(err, d3dgrab.ErrRuntimeUnavailable):
		return "the Direct3D 9 runtime is unavailable on this system"
	case errors.As(err, &cdErr):
		return fmt.Sprintf("both device creation attempts failed, last code %v", cdErr.Code)
	case errors.Is(err, d3dgrab.ErrInvalidDevice):
		return "device creation reported success but the device reference is unusable"
	}
	return err.Error()
}
