//go:build !windows

package win32

import "os"

func EnumTopLevel(visit func(HWND) bool) error {
	return ErrUnsupported
}

func WindowPID(HWND) uint32 {
	return 0
}

func CurrentPID() uint32 {
	return uint32(os.Getpid())
}

func WindowTitle(HWND) string {
	return ""
}

func AllocConsole() error {
	return ErrUnsupported
}
