//go:build windows && amd64

package d3d

import (
	"syscall"
	"unsafe"
)

type iDXGIFactory2 struct {
	vtbl *iDXGIFactory2Vtbl
}

func (i *iDXGIFactory2) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iDXGIFactory2) CreateSwapChain(queue CommandQueue, desc *SwapChainDesc) (SwapChain, error) {
	var base *iUnknown
	r, _, _ := syscall.SyscallN(i.vtbl.CreateSwapChain, uintptr(unsafe.Pointer(i)),
		uintptr(ptrOf(queue)), uintptr(unsafe.Pointer(desc)), uintptr(unsafe.Pointer(&base)))
	if err := checkHRESULT("IDXGIFactory::CreateSwapChain", r); err != nil {
		return nil, err
	}
	defer base.Release()

	var sc *iDXGISwapChain3
	if err := base.QueryInterface(&iidIDXGISwapChain3, unsafe.Pointer(&sc)); err != nil {
		return nil, err
	}
	return sc, nil
}

type iUnknown struct {
	vtbl *iUnknownVtbl
}

func (i *iUnknown) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iUnknown) QueryInterface(iid *GUID, out unsafe.Pointer) error {
	r, _, _ := syscall.SyscallN(i.vtbl.QueryInterface, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(iid)), uintptr(out))
	return checkHRESULT("IUnknown::QueryInterface", r)
}

type iDXGISwapChain3 struct {
	vtbl *iDXGISwapChain3Vtbl
}

func (i *iDXGISwapChain3) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iDXGISwapChain3) Present(syncInterval uint32, flags PresentFlags) error {
	r, _, _ := syscall.SyscallN(i.vtbl.Present, uintptr(unsafe.Pointer(i)), uintptr(syncInterval), uintptr(flags))
	return checkHRESULT("IDXGISwapChain::Present", r)
}

func (i *iDXGISwapChain3) Buffer(index uint32) (Resource, error) {
	var res *iD3D12Resource
	r, _, _ := syscall.SyscallN(i.vtbl.GetBuffer, uintptr(unsafe.Pointer(i)),
		uintptr(index), uintptr(unsafe.Pointer(&iidID3D12Resource)), uintptr(unsafe.Pointer(&res)))
	if err := checkHRESULT("IDXGISwapChain::GetBuffer", r); err != nil {
		return nil, err
	}
	return res, nil
}

func (i *iDXGISwapChain3) ResizeBuffers(bufferCount, width, height uint32, format Format, flags SwapChainFlags) error {
	r, _, _ := syscall.SyscallN(i.vtbl.ResizeBuffers, uintptr(unsafe.Pointer(i)),
		uintptr(bufferCount), uintptr(width), uintptr(height), uintptr(format), uintptr(flags))
	return checkHRESULT("IDXGISwapChain::ResizeBuffers", r)
}

func (i *iDXGISwapChain3) CurrentBackBufferIndex() uint32 {
	r, _, _ := syscall.SyscallN(i.vtbl.GetCurrentBackBufferIndex, uintptr(unsafe.Pointer(i)))
	return uint32(r)
}

func (i *iDXGISwapChain3) SetFullscreenState(fullscreen bool) error {
	r, _, _ := syscall.SyscallN(i.vtbl.SetFullscreenState, uintptr(unsafe.Pointer(i)), uintptr(boolToInt32(fullscreen)), 0)
	return checkHRESULT("IDXGISwapChain::SetFullscreenState", r)
}
