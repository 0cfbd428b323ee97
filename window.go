package d3dgrab

import "github.com/bnema/d3dgrab/internal/win32"

// windowSource abstracts the window-manager queries the resolver needs, so
// the resolution logic can be exercised off Windows.
type windowSource interface {
	EnumTopLevel(visit func(win32.HWND) bool) error
	WindowPID(h win32.HWND) uint32
	CurrentPID() uint32
}

// systemWindows is the live window manager.
type systemWindows struct{}

func (systemWindows) EnumTopLevel(visit func(win32.HWND) bool) error {
	return win32.EnumTopLevel(visit)
}

func (systemWindows) WindowPID(h win32.HWND) uint32 {
	return win32.WindowPID(h)
}

func (systemWindows) CurrentPID() uint32 {
	return win32.CurrentPID()
}

// resolveProcessWindow returns the first top-level window owned by the
// current process, in the window manager's iteration order. Enumeration stops
// at the first match; ok is false when the process owns none.
func resolveProcessWindow(src windowSource) (hwnd win32.HWND, ok bool) {
	pid := src.CurrentPID()
	if err := src.EnumTopLevel(func(h win32.HWND) bool {
		if src.WindowPID(h) != pid {
			return true
		}
		hwnd = h
		return false
	}); err != nil {
		return 0, false
	}
	return hwnd, !hwnd.IsZero()
}
