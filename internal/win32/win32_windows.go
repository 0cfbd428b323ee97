//go:build windows

package win32

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procAllocConsole             = kernel32.NewProc("AllocConsole")
)

// Callbacks registered with windows.NewCallback are never released, so a
// single callback is created once and the active visitor swapped under a lock.
var (
	enumMu      sync.Mutex
	enumVisitor func(HWND) bool
	enumCB      uintptr
	enumCBOnce  sync.Once
)

func enumCallback(hwnd, _ uintptr) uintptr {
	if enumVisitor(HWND(hwnd)) {
		return 1 // continue enumeration
	}
	return 0
}

// EnumTopLevel hands every top-level window on the system to visit, in the
// window manager's iteration order, until visit returns false.
func EnumTopLevel(visit func(HWND) bool) error {
	enumCBOnce.Do(func() {
		enumCB = windows.NewCallback(enumCallback)
	})

	enumMu.Lock()
	defer enumMu.Unlock()
	enumVisitor = visit
	defer func() { enumVisitor = nil }()

	// EnumWindows reports FALSE whenever the callback stops early, which is
	// the normal short-circuit path, so its return value carries no signal.
	procEnumWindows.Call(enumCB, 0)
	return nil
}

// WindowPID resolves the process identifier owning h.
func WindowPID(h HWND) uint32 {
	var pid uint32
	procGetWindowThreadProcessId.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	return pid
}

// CurrentPID returns the calling process's identifier.
func CurrentPID() uint32 {
	return windows.GetCurrentProcessId()
}

// WindowTitle returns the window caption, or "" for untitled windows.
func WindowTitle(h HWND) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf)
}

// AllocConsole attaches a new console to the process so injected code has
// somewhere to write diagnostics.
func AllocConsole() error {
	r, _, err := procAllocConsole.Call()
	if r == 0 {
		return err
	}
	return nil
}
