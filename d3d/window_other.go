//go:build !windows || !amd64

package d3d

func ClientSize(hwnd uintptr) (width, height int32, err error) {
	return 0, 0, ErrUnsupportedPlatform
}
