//go:build windows && amd64

package d3d

import (
	"syscall"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procGetClientRect = user32.NewProc("GetClientRect")
)

// ClientSize returns the size in pixels of the client area of hwnd.
func ClientSize(hwnd uintptr) (width, height int32, err error) {
	var rect Rect
	r, _, e := syscall.SyscallN(procGetClientRect.Addr(), hwnd, uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		return 0, 0, errors.Wrap(e, "d3d: GetClientRect")
	}
	return rect.Right - rect.Left, rect.Bottom - rect.Top, nil
}
