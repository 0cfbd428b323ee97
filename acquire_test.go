package d3dgrab

import (
	"errors"
	"testing"

	"github.com/bnema/d3dgrab/d3d9"
	"github.com/bnema/d3dgrab/internal/win32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createCall struct {
	adapter  uint32
	devType  uint32
	focus    uintptr
	behavior uint32
	pp       d3d9.PresentParameters
}

type createResult struct {
	dev *d3d9.Device
	hr  d3d9.HRESULT
}

// fakeFactory scripts the outcome of each CreateDevice call and records what
// was asked of it.
type fakeFactory struct {
	results  []createResult
	calls    []createCall
	released int
}

func (f *fakeFactory) CreateDevice(adapter, devType uint32, focus uintptr, behaviorFlags uint32, pp *d3d9.PresentParameters) (*d3d9.Device, d3d9.HRESULT) {
	f.calls = append(f.calls, createCall{
		adapter:  adapter,
		devType:  devType,
		focus:    focus,
		behavior: behaviorFlags,
		pp:       *pp,
	})
	r := f.results[len(f.calls)-1]
	return r.dev, r.hr
}

func (f *fakeFactory) Release() uint32 {
	f.released++
	return 0
}

// oneWindow is a window source whose process owns exactly one window.
func oneWindow(h win32.HWND) *fakeWindows {
	return &fakeWindows{
		pid:     42,
		windows: []fakeWindow{{handle: h, pid: 42}},
	}
}

func newTestAcquirer(src windowSource, fac *fakeFactory) (*Acquirer, *int) {
	factoryCalls := 0
	a := &Acquirer{
		windows: src,
		newFactory: func() factory {
			factoryCalls++
			if fac == nil {
				return nil
			}
			return fac
		},
	}
	return a, &factoryCalls
}

func TestAcquireNoProcessWindow(t *testing.T) {
	// No window means no factory and no device call, ever.
	a, factoryCalls := newTestAcquirer(&fakeWindows{pid: 42}, &fakeFactory{})

	dev, err := a.Acquire()

	assert.Nil(t, dev)
	assert.ErrorIs(t, err, ErrNoProcessWindow)
	assert.Equal(t, 0, *factoryCalls)
}

func TestAcquireRuntimeUnavailable(t *testing.T) {
	a, factoryCalls := newTestAcquirer(oneWindow(0x1F0), nil)

	dev, err := a.Acquire()

	assert.Nil(t, dev)
	assert.ErrorIs(t, err, ErrRuntimeUnavailable)
	assert.Equal(t, 1, *factoryCalls)
}

func TestAcquireFirstAttemptSucceeds(t *testing.T) {
	want := &d3d9.Device{}
	fac := &fakeFactory{results: []createResult{{dev: want, hr: d3d9.D3D_OK}}}
	a, _ := newTestAcquirer(oneWindow(0x1F0), fac)

	dev, err := a.Acquire()

	require.NoError(t, err)
	assert.Same(t, want, dev)
	require.Len(t, fac.calls, 1)

	call := fac.calls[0]
	assert.Equal(t, uint32(d3d9.ADAPTER_DEFAULT), call.adapter)
	assert.Equal(t, uint32(d3d9.DEVTYPE_HAL), call.devType)
	assert.Equal(t, uintptr(0x1F0), call.focus)
	assert.Equal(t, uint32(d3d9.CREATE_SOFTWARE_VERTEXPROCESSING), call.behavior)

	// First attempt asks for fullscreen-style creation against the resolved
	// window, everything else zeroed.
	assert.Equal(t, d3d9.PresentParameters{
		SwapEffect:   d3d9.SWAPEFFECT_DISCARD,
		DeviceWindow: 0x1F0,
		Windowed:     0,
	}, call.pp)

	assert.Equal(t, 1, fac.released)
}

func TestAcquireFallbackFlipsOnlyWindowed(t *testing.T) {
	want := &d3d9.Device{}
	fac := &fakeFactory{results: []createResult{
		{dev: nil, hr: d3d9.D3DERR_INVALIDCALL},
		{dev: want, hr: d3d9.D3D_OK},
	}}
	a, _ := newTestAcquirer(oneWindow(0x1F0), fac)

	dev, err := a.Acquire()

	require.NoError(t, err)
	assert.Same(t, want, dev)
	require.Len(t, fac.calls, 2)

	first, second := fac.calls[0], fac.calls[1]
	assert.Equal(t, int32(0), first.pp.Windowed)
	assert.Equal(t, int32(1), second.pp.Windowed)

	// The retry differs from the first attempt in the windowed flag and
	// nothing else.
	flipped := second.pp
	flipped.Windowed = first.pp.Windowed
	assert.Equal(t, first.pp, flipped)

	assert.Equal(t, first.adapter, second.adapter)
	assert.Equal(t, first.devType, second.devType)
	assert.Equal(t, first.focus, second.focus)
	assert.Equal(t, first.behavior, second.behavior)
}

func TestAcquireBothAttemptsFail(t *testing.T) {
	fac := &fakeFactory{results: []createResult{
		{dev: nil, hr: d3d9.D3DERR_INVALIDCALL},
		{dev: nil, hr: d3d9.D3DERR_DEVICELOST},
	}}
	a, _ := newTestAcquirer(oneWindow(0x1F0), fac)

	dev, err := a.Acquire()

	assert.Nil(t, dev)

	var cdErr *CreateDeviceError
	require.ErrorAs(t, err, &cdErr)
	// Only the fallback's code survives; the first attempt's is discarded.
	assert.Equal(t, d3d9.D3DERR_DEVICELOST, cdErr.Code)

	assert.Len(t, fac.calls, 2)
	assert.Equal(t, 1, fac.released)
}

func TestAcquireNilDeviceOnSuccess(t *testing.T) {
	fac := &fakeFactory{results: []createResult{{dev: nil, hr: d3d9.D3D_OK}}}
	a, _ := newTestAcquirer(oneWindow(0x1F0), fac)

	dev, err := a.Acquire()

	assert.Nil(t, dev)
	assert.ErrorIs(t, err, ErrInvalidDevice)
}

func TestAcquireNoThirdAttempt(t *testing.T) {
	fac := &fakeFactory{results: []createResult{
		{dev: nil, hr: d3d9.D3DERR_INVALIDCALL},
		{dev: nil, hr: d3d9.D3DERR_INVALIDCALL},
	}}
	a, _ := newTestAcquirer(oneWindow(0x1F0), fac)

	_, err := a.Acquire()

	assert.Error(t, err)
	assert.Len(t, fac.calls, 2)
}

func TestCreateDeviceErrorMessage(t *testing.T) {
	err := &CreateDeviceError{Code: d3d9.D3DERR_DEVICELOST}
	assert.Equal(t, "d3dgrab: CreateDevice failed: D3DERR_DEVICELOST", err.Error())

	var target *CreateDeviceError
	assert.True(t, errors.As(err, &target))
}
