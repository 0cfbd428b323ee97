// Package win32 wraps the small slice of user32/kernel32 needed to find
// top-level windows owned by the current process.
package win32

import "errors"

// HWND is an opaque top-level window handle borrowed from the window manager.
// The package never creates, modifies or destroys the windows behind these
// handles; it only reads them.
type HWND uintptr

// IsZero reports whether h refers to no window.
func (h HWND) IsZero() bool { return h == 0 }

// ErrUnsupported is returned on platforms without a Win32 window manager.
var ErrUnsupported = errors.New("win32: not supported on this platform")

// Window describes one enumerated top-level window, for diagnostics.
type Window struct {
	Handle HWND
	PID    uint32
	Title  string
}
