package d3d

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// HRESULT is a COM status code. Failed codes are used directly as errors so
// they can be matched with errors.Is through any wrapping.
type HRESULT uint32

const (
	SOK                          HRESULT = 0
	SFalse                       HRESULT = 1
	ENotImpl                     HRESULT = 0x80004001
	ENoInterface                 HRESULT = 0x80004002
	EPointer                     HRESULT = 0x80004003
	EFail                        HRESULT = 0x80004005
	EOutOfMemory                 HRESULT = 0x8007000E
	EInvalidArg                  HRESULT = 0x80070057
	DXGIErrorInvalidCall         HRESULT = 0x887A0001
	DXGIErrorNotFound            HRESULT = 0x887A0002
	DXGIErrorUnsupported         HRESULT = 0x887A0004
	DXGIErrorDeviceRemoved       HRESULT = 0x887A0005
	DXGIErrorDeviceHung          HRESULT = 0x887A0006
	DXGIErrorDeviceReset         HRESULT = 0x887A0007
	DXGIErrorWasStillDrawing     HRESULT = 0x887A000A
	DXGIErrorDriverInternalError HRESULT = 0x887A0020
)

var hresultNames = map[HRESULT]string{
	SOK:                          "S_OK",
	SFalse:                       "S_FALSE",
	ENotImpl:                     "E_NOTIMPL",
	ENoInterface:                 "E_NOINTERFACE",
	EPointer:                     "E_POINTER",
	EFail:                        "E_FAIL",
	EOutOfMemory:                 "E_OUTOFMEMORY",
	EInvalidArg:                  "E_INVALIDARG",
	DXGIErrorInvalidCall:         "DXGI_ERROR_INVALID_CALL",
	DXGIErrorNotFound:            "DXGI_ERROR_NOT_FOUND",
	DXGIErrorUnsupported:         "DXGI_ERROR_UNSUPPORTED",
	DXGIErrorDeviceRemoved:       "DXGI_ERROR_DEVICE_REMOVED",
	DXGIErrorDeviceHung:          "DXGI_ERROR_DEVICE_HUNG",
	DXGIErrorDeviceReset:         "DXGI_ERROR_DEVICE_RESET",
	DXGIErrorWasStillDrawing:     "DXGI_ERROR_WAS_STILL_DRAWING",
	DXGIErrorDriverInternalError: "DXGI_ERROR_DRIVER_INTERNAL_ERROR",
}

func (hr HRESULT) Failed() bool {
	return int32(hr) < 0
}

func (hr HRESULT) Error() string {
	if name, ok := hresultNames[hr]; ok {
		return fmt.Sprintf("HRESULT 0x%08X (%s)", uint32(hr), name)
	}
	return fmt.Sprintf("HRESULT 0x%08X", uint32(hr))
}

// checkHRESULT turns the raw return of a COM call into an error naming the
// call, or nil when the code is a success code.
func checkHRESULT(call string, r uintptr) error {
	hr := HRESULT(uint32(r))
	if !hr.Failed() {
		return nil
	}
	return errors.Wrapf(hr, "d3d: %s failed", call)
}

// ErrUnsupportedPlatform is returned by Load where no Direct3D 12 runtime
// can exist.
var ErrUnsupportedPlatform = errors.New("d3d: Direct3D 12 requires windows/amd64")
