package d3dgrab

import (
	"testing"

	"github.com/bnema/d3dgrab/internal/win32"
	"github.com/stretchr/testify/assert"
)

type fakeWindow struct {
	handle win32.HWND
	pid    uint32
}

// fakeWindows replays a fixed window-manager state and records which handles
// the resolver visited.
type fakeWindows struct {
	pid     uint32
	windows []fakeWindow
	enumErr error
	visited []win32.HWND
}

func (f *fakeWindows) EnumTopLevel(visit func(win32.HWND) bool) error {
	if f.enumErr != nil {
		return f.enumErr
	}
	for _, w := range f.windows {
		f.visited = append(f.visited, w.handle)
		if !visit(w.handle) {
			break
		}
	}
	return nil
}

func (f *fakeWindows) WindowPID(h win32.HWND) uint32 {
	for _, w := range f.windows {
		if w.handle == h {
			return w.pid
		}
	}
	return 0
}

func (f *fakeWindows) CurrentPID() uint32 { return f.pid }

func TestResolveProcessWindow(t *testing.T) {
	t.Run("no windows at all", func(t *testing.T) {
		src := &fakeWindows{pid: 42}

		hwnd, ok := resolveProcessWindow(src)

		assert.False(t, ok)
		assert.True(t, hwnd.IsZero())
	})

	t.Run("no window owned by this process", func(t *testing.T) {
		src := &fakeWindows{
			pid: 42,
			windows: []fakeWindow{
				{handle: 0x100, pid: 7},
				{handle: 0x200, pid: 8},
			},
		}

		_, ok := resolveProcessWindow(src)

		assert.False(t, ok)
		// Finding nothing still means the full set was walked.
		assert.Len(t, src.visited, 2)
	})

	t.Run("first owned window wins", func(t *testing.T) {
		src := &fakeWindows{
			pid: 42,
			windows: []fakeWindow{
				{handle: 0x100, pid: 7},
				{handle: 0x200, pid: 42},
				{handle: 0x300, pid: 42},
			},
		}

		hwnd, ok := resolveProcessWindow(src)

		assert.True(t, ok)
		assert.Equal(t, win32.HWND(0x200), hwnd)
	})

	t.Run("enumeration stops at the first match", func(t *testing.T) {
		src := &fakeWindows{
			pid: 42,
			windows: []fakeWindow{
				{handle: 0x100, pid: 42},
				{handle: 0x200, pid: 42},
				{handle: 0x300, pid: 7},
			},
		}

		hwnd, ok := resolveProcessWindow(src)

		assert.True(t, ok)
		assert.Equal(t, win32.HWND(0x100), hwnd)
		assert.Equal(t, []win32.HWND{0x100}, src.visited)
	})

	t.Run("enumeration failure reads as no window", func(t *testing.T) {
		src := &fakeWindows{pid: 42, enumErr: win32.ErrUnsupported}

		_, ok := resolveProcessWindow(src)

		assert.False(t, ok)
	})
}
