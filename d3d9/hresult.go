package d3d9

import "fmt"

// HRESULT is a raw Direct3D result code. The zero value is S_OK.
type HRESULT uint32

const (
	D3D_OK HRESULT = 0

	D3DERR_DEVICELOST        HRESULT = 0x88760868
	D3DERR_DEVICENOTRESET    HRESULT = 0x88760869
	D3DERR_NOTAVAILABLE      HRESULT = 0x8876086A
	D3DERR_INVALIDCALL       HRESULT = 0x8876086C
	D3DERR_OUTOFVIDEOMEMORY  HRESULT = 0x8876017C
	D3DERR_INVALIDDEVICE     HRESULT = 0x8876086B
	D3DERR_DRIVERINTERNALERR HRESULT = 0x88760827

	E_OUTOFMEMORY HRESULT = 0x8007000E
)

// Failed reports whether hr carries a failure code.
func (hr HRESULT) Failed() bool {
	return hr != D3D_OK
}

func (hr HRESULT) Error() string {
	switch hr {
	case D3DERR_DEVICELOST:
		return "D3DERR_DEVICELOST"
	case D3DERR_DEVICENOTRESET:
		return "D3DERR_DEVICENOTRESET"
	case D3DERR_NOTAVAILABLE:
		return "D3DERR_NOTAVAILABLE"
	case D3DERR_INVALIDCALL:
		return "D3DERR_INVALIDCALL"
	case D3DERR_OUTOFVIDEOMEMORY:
		return "D3DERR_OUTOFVIDEOMEMORY"
	case D3DERR_INVALIDDEVICE:
		return "D3DERR_INVALIDDEVICE"
	case D3DERR_DRIVERINTERNALERR:
		return "D3DERR_DRIVERINTERNALERROR"
	case E_OUTOFMEMORY:
		return "E_OUTOFMEMORY"
	}
	return fmt.Sprintf("HRESULT(0x%08X)", uint32(hr))
}
