// Package d3d9 binds the minimal Direct3D 9 COM surface needed to create a
// rendering device: the runtime factory (IDirect3D9), the device interface
// (IDirect3DDevice9), presentation parameters and HRESULT classification.
//
// Interface methods are dispatched through raw vtables the way the runtime
// lays them out in memory; only the slots actually called here carry code.
package d3d9

// SDK_VERSION is D3D_SDK_VERSION for the Direct3D 9 runtime.
const SDK_VERSION = 32

const (
	ADAPTER_DEFAULT = 0 // D3DADAPTER_DEFAULT
	DEVTYPE_HAL     = 1 // D3DDEVTYPE_HAL

	CREATE_SOFTWARE_VERTEXPROCESSING = 0x00000020 // D3DCREATE_SOFTWARE_VERTEXPROCESSING

	SWAPEFFECT_DISCARD = 1 // D3DSWAPEFFECT_DISCARD
)

// BOOL converts to the 32-bit BOOL convention used in D3D structs.
func BOOL(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

// PresentParameters mirrors D3DPRESENT_PARAMETERS. Zeroed back-buffer fields
// mean "match the device window".
type PresentParameters struct {
	BackBufferWidth  uint32
	BackBufferHeight uint32
	BackBufferFormat uint32 // D3DFORMAT
	BackBufferCount  uint32

	MultiSampleType    uint32 // D3DMULTISAMPLE_TYPE
	MultiSampleQuality uint32

	SwapEffect   uint32 // D3DSWAPEFFECT
	DeviceWindow uintptr
	Windowed     int32 // BOOL

	EnableAutoDepthStencil int32  // BOOL
	AutoDepthStencilFormat uint32 // D3DFORMAT
	Flags                  uint32

	FullScreenRefreshRateInHz uint32
	PresentationInterval      uint32
}

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// Direct3D is the runtime factory object (IDirect3D9).
type Direct3D struct {
	vtbl *direct3DVtbl
}

type direct3DVtbl struct {
	iUnknownVtbl

	RegisterSoftwareDevice      uintptr
	GetAdapterCount             uintptr
	GetAdapterIdentifier        uintptr
	GetAdapterModeCount         uintptr
	EnumAdapterModes            uintptr
	GetAdapterDisplayMode       uintptr
	CheckDeviceType             uintptr
	CheckDeviceFormat           uintptr
	CheckDeviceMultiSampleType  uintptr
	CheckDepthStencilMatch      uintptr
	CheckDeviceFormatConversion uintptr
	GetDeviceCaps               uintptr
	GetAdapterMonitor           uintptr
	CreateDevice                uintptr
}

// Device is a created rendering device (IDirect3DDevice9). Slots past Present
// are never dispatched through this vtbl and are left unnamed.
type Device struct {
	vtbl *deviceVtbl
}

type deviceVtbl struct {
	iUnknownVtbl

	TestCooperativeLevel      uintptr
	GetAvailableTextureMem    uintptr
	EvictManagedResources     uintptr
	GetDirect3D               uintptr
	GetDeviceCaps             uintptr
	GetDisplayMode            uintptr
	GetCreationParameters     uintptr
	SetCursorProperties       uintptr
	SetCursorPosition         uintptr
	ShowCursor                uintptr
	CreateAdditionalSwapChain uintptr
	GetSwapChain              uintptr
	GetNumberOfSwapChains     uintptr
	Reset                     uintptr
	Present                   uintptr
}
