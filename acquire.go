// Package d3dgrab resolves a live Direct3D 9 device for the calling process
// without that process having created one itself. It is meant for code that
// runs inside an already-running graphical application, such as an injected
// overlay or instrumentation module, and needs to issue rendering calls
// through the host's graphics context.
//
// Acquisition is a single synchronous bootstrap: find a top-level window
// owned by this process, create the D3D9 factory, then create a device bound
// to that window, retrying exactly once with the windowed flag inverted when
// the first attempt fails. Ownership of the returned device transfers wholly
// to the caller; the package keeps no reference and releases nothing.
//
// The routine is intended to run at most once per process, from a single
// thread. Callers needing repeat or concurrent acquisition must serialize
// externally.
package d3dgrab

import "github.com/bnema/d3dgrab/d3d9"

// factory abstracts the runtime entry points used during acquisition.
type factory interface {
	CreateDevice(adapter, devType uint32, focus uintptr, behaviorFlags uint32, pp *d3d9.PresentParameters) (*d3d9.Device, d3d9.HRESULT)
	Release() uint32
}

// Acquirer runs the bootstrap sequence against a window source and a factory
// constructor. The zero value is not usable; call NewAcquirer.
type Acquirer struct {
	windows    windowSource
	newFactory func() factory
}

// NewAcquirer wires the live window manager and the installed D3D9 runtime.
func NewAcquirer() *Acquirer {
	return &Acquirer{
		windows: systemWindows{},
		newFactory: func() factory {
			if d := d3d9.Create(d3d9.SDK_VERSION); d != nil {
				return d
			}
			return nil
		},
	}
}

// Acquire resolves a window owned by the current process and creates a device
// bound to it.
//
// The first creation attempt requests fullscreen-style presentation
// (Windowed=FALSE) with software vertex processing on the default adapter; if
// it fails, one fallback attempt runs with the windowed flag inverted and
// every other field identical. Only the fallback's result code is reported
// when both fail. A creation call that reports success but yields a nil
// device is rejected with ErrInvalidDevice.
func (a *Acquirer) Acquire() (*d3d9.Device, error) {
	hwnd, ok := resolveProcessWindow(a.windows)
	if !ok {
		return nil, ErrNoProcessWindow
	}

	fac := a.newFactory()
	if fac == nil {
		return nil, ErrRuntimeUnavailable
	}
	defer fac.Release()

	// Each attempt gets its own parameter value; the fallback derives from
	// the first by flipping exactly one field.
	pp := presentParams(uintptr(hwnd), false)
	dev, hr := fac.CreateDevice(d3d9.ADAPTER_DEFAULT, d3d9.DEVTYPE_HAL, pp.DeviceWindow, d3d9.CREATE_SOFTWARE_VERTEXPROCESSING, &pp)
	if hr.Failed() {
		pp = presentParams(uintptr(hwnd), true)
		dev, hr = fac.CreateDevice(d3d9.ADAPTER_DEFAULT, d3d9.DEVTYPE_HAL, pp.DeviceWindow, d3d9.CREATE_SOFTWARE_VERTEXPROCESSING, &pp)
		if hr.Failed() {
			return nil, &CreateDeviceError{Code: hr}
		}
	}

	if dev == nil {
		return nil, ErrInvalidDevice
	}
	return dev, nil
}

// presentParams builds the presentation description for one attempt: zeroed
// back-buffer fields ("match the window"), discard-on-present, the resolved
// window as the device window.
func presentParams(hwnd uintptr, windowed bool) d3d9.PresentParameters {
	return d3d9.PresentParameters{
		SwapEffect:   d3d9.SWAPEFFECT_DISCARD,
		DeviceWindow: hwnd,
		Windowed:     d3d9.BOOL(windowed),
	}
}

// AcquireDevice is the package-level entry point: it resolves a window owned
// by the current process and returns a Direct3D 9 device bound to it, or one
// of the package's acquisition errors.
func AcquireDevice() (*d3d9.Device, error) {
	return NewAcquirer().Acquire()
}
