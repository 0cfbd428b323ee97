//go:build !windows

package d3d9

// The runtime cannot be loaded off Windows. Create reports that the same way
// a missing driver does: by returning no factory.
func Create(sdkVersion uint32) *Direct3D {
	return nil
}

func (d *Direct3D) CreateDevice(adapter, devType uint32, focus uintptr, behaviorFlags uint32, pp *PresentParameters) (*Device, HRESULT) {
	return nil, D3DERR_NOTAVAILABLE
}

func (d *Direct3D) Release() uint32 {
	return 0
}

func (dev *Device) TestCooperativeLevel() HRESULT {
	return D3DERR_NOTAVAILABLE
}

func (dev *Device) Release() uint32 {
	return 0
}
