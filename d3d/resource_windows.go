//go:build windows && amd64

package d3d

import (
	"syscall"
	"unsafe"
)

type iD3D12Resource struct {
	vtbl *iD3D12ResourceVtbl
}

func (i *iD3D12Resource) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12Resource) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iD3D12Resource) SetName(name string) error {
	return setName(unsafe.Pointer(i), i.vtbl.SetName, name)
}

func (i *iD3D12Resource) Map(subresource uint32, readRange *Range) (unsafe.Pointer, error) {
	var data unsafe.Pointer
	r, _, _ := syscall.SyscallN(i.vtbl.Map, uintptr(unsafe.Pointer(i)),
		uintptr(subresource), uintptr(unsafe.Pointer(readRange)), uintptr(unsafe.Pointer(&data)))
	if err := checkHRESULT("ID3D12Resource::Map", r); err != nil {
		return nil, err
	}
	return data, nil
}

func (i *iD3D12Resource) Unmap(subresource uint32, writtenRange *Range) {
	syscall.SyscallN(i.vtbl.Unmap, uintptr(unsafe.Pointer(i)), uintptr(subresource), uintptr(unsafe.Pointer(writtenRange)))
}

func (i *iD3D12Resource) Desc() ResourceDesc {
	var desc ResourceDesc
	syscall.SyscallN(i.vtbl.GetDesc, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&desc)))
	return desc
}

func (i *iD3D12Resource) GPUVirtualAddress() GPUVirtualAddress {
	r, _, _ := syscall.SyscallN(i.vtbl.GetGPUVirtualAddress, uintptr(unsafe.Pointer(i)))
	return GPUVirtualAddress(r)
}

type iD3D12DescriptorHeap struct {
	vtbl *iD3D12DescriptorHeapVtbl
}

func (i *iD3D12DescriptorHeap) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12DescriptorHeap) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

// Struct-returning methods take a hidden result pointer after this.

func (i *iD3D12DescriptorHeap) Desc() DescriptorHeapDesc {
	var desc DescriptorHeapDesc
	syscall.SyscallN(i.vtbl.GetDesc, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&desc)))
	return desc
}

func (i *iD3D12DescriptorHeap) CPUDescriptorHandleForHeapStart() CPUDescriptorHandle {
	var h CPUDescriptorHandle
	syscall.SyscallN(i.vtbl.GetCPUDescriptorHandleForHeapStart, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&h)))
	return h
}

func (i *iD3D12DescriptorHeap) GPUDescriptorHandleForHeapStart() GPUDescriptorHandle {
	var h GPUDescriptorHandle
	syscall.SyscallN(i.vtbl.GetGPUDescriptorHandleForHeapStart, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&h)))
	return h
}

type iD3D12RootSignature struct {
	vtbl *iD3D12RootSignatureVtbl
}

func (i *iD3D12RootSignature) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12RootSignature) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

type iD3D12PipelineState struct {
	vtbl *iD3D12PipelineStateVtbl
}

func (i *iD3D12PipelineState) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12PipelineState) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

type iD3DBlob struct {
	vtbl *iD3DBlobVtbl
}

func (i *iD3DBlob) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

// Bytes copies the blob contents into Go memory.
func (i *iD3DBlob) Bytes() []byte {
	if i == nil {
		return nil
	}
	p, _, _ := syscall.SyscallN(i.vtbl.GetBufferPointer, uintptr(unsafe.Pointer(i)))
	n, _, _ := syscall.SyscallN(i.vtbl.GetBufferSize, uintptr(unsafe.Pointer(i)))
	if n == 0 {
		return nil
	}
	src := unsafe.Slice((*byte)(*(*unsafe.Pointer)(unsafe.Pointer(&p))), n)
	out := make([]byte, n)
	copy(out, src)
	return out
}
