//go:build windows

package d3d9

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3d9DLL             = windows.NewLazySystemDLL("d3d9.dll")
	procDirect3DCreate9 = d3d9DLL.NewProc("Direct3DCreate9")
)

// Create loads the runtime and returns its factory object. A nil return means
// no compatible runtime or driver is installed; Direct3DCreate9 reports no
// further detail.
func Create(sdkVersion uint32) *Direct3D {
	r, _, _ := procDirect3DCreate9.Call(uintptr(sdkVersion))
	return (*Direct3D)(unsafe.Pointer(r))
}

// CreateDevice asks the factory for a device bound to the focus window. The
// runtime may rewrite pp during the call.
func (d *Direct3D) CreateDevice(adapter, devType uint32, focus uintptr, behaviorFlags uint32, pp *PresentParameters) (*Device, HRESULT) {
	var dev *Device
	r, _, _ := syscall.SyscallN(d.vtbl.CreateDevice,
		uintptr(unsafe.Pointer(d)),
		uintptr(adapter),
		uintptr(devType),
		focus,
		uintptr(behaviorFlags),
		uintptr(unsafe.Pointer(pp)),
		uintptr(unsafe.Pointer(&dev)),
	)
	return dev, HRESULT(uint32(r))
}

// Release drops the factory's COM reference. Devices it created keep the
// runtime alive on their own.
func (d *Direct3D) Release() uint32 {
	r, _, _ := syscall.SyscallN(d.vtbl.Release, uintptr(unsafe.Pointer(d)))
	return uint32(r)
}

// TestCooperativeLevel probes whether the device is still usable for
// rendering.
func (dev *Device) TestCooperativeLevel() HRESULT {
	r, _, _ := syscall.SyscallN(dev.vtbl.TestCooperativeLevel, uintptr(unsafe.Pointer(dev)))
	return HRESULT(uint32(r))
}

// Release drops the caller's reference to the device.
func (dev *Device) Release() uint32 {
	r, _, _ := syscall.SyscallN(dev.vtbl.Release, uintptr(unsafe.Pointer(dev)))
	return uint32(r)
}
