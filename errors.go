package d3dgrab

import (
	"errors"
	"fmt"

	"github.com/bnema/d3dgrab/d3d9"
)

// Acquisition failures form a closed set, and every one is terminal: nothing
// is retried beyond the single windowed-flag fallback inside Acquire.
var (
	// ErrNoProcessWindow means the current process owns no top-level window,
	// so there is nothing to bind a device to.
	ErrNoProcessWindow = errors.New("d3dgrab: no top-level window owned by the current process")

	// ErrRuntimeUnavailable means Direct3DCreate9 returned no factory,
	// typically because no compatible runtime or driver is installed.
	ErrRuntimeUnavailable = errors.New("d3dgrab: Direct3DCreate9 returned no factory")

	// ErrInvalidDevice means a creation call reported success but handed back
	// a device reference that cannot be used.
	ErrInvalidDevice = errors.New("d3dgrab: device creation reported success but returned an invalid device")
)

// CreateDeviceError reports that both device-creation attempts failed. Code
// is the HRESULT of the final (fallback) attempt; the first attempt's code is
// not kept.
type CreateDeviceError struct {
	Code d3d9.HRESULT
}

func (e *CreateDeviceError) Error() string {
	return fmt.Sprintf("d3dgrab: CreateDevice failed: %v", e.Code)
}
