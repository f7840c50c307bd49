//go:build windows && amd64

package d3d

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

func setName(this unsafe.Pointer, fn uintptr, name string) error {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return errors.WithStack(err)
	}
	r, _, _ := syscall.SyscallN(fn, uintptr(this), uintptr(unsafe.Pointer(n)))
	return checkHRESULT("ID3D12Object::SetName", r)
}

type iD3D12Device struct {
	vtbl *iD3D12DeviceVtbl
}

func (i *iD3D12Device) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12Device) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iD3D12Device) Options() (FeatureDataOptions, error) {
	var opts FeatureDataOptions
	r, _, _ := syscall.SyscallN(i.vtbl.CheckFeatureSupport, uintptr(unsafe.Pointer(i)),
		uintptr(FeatureD3D12Options), uintptr(unsafe.Pointer(&opts)), unsafe.Sizeof(opts))
	if err := checkHRESULT("ID3D12Device::CheckFeatureSupport", r); err != nil {
		return FeatureDataOptions{}, err
	}
	return opts, nil
}

func (i *iD3D12Device) CreateCommandQueue(desc *CommandQueueDesc) (CommandQueue, error) {
	var q *iD3D12CommandQueue
	r, _, _ := syscall.SyscallN(i.vtbl.CreateCommandQueue, uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)), uintptr(unsafe.Pointer(&iidID3D12CommandQueue)), uintptr(unsafe.Pointer(&q)))
	if err := checkHRESULT("ID3D12Device::CreateCommandQueue", r); err != nil {
		return nil, err
	}
	return q, nil
}

func (i *iD3D12Device) CreateCommandAllocator(typ CommandListType) (CommandAllocator, error) {
	var a *iD3D12CommandAllocator
	r, _, _ := syscall.SyscallN(i.vtbl.CreateCommandAllocator, uintptr(unsafe.Pointer(i)),
		uintptr(typ), uintptr(unsafe.Pointer(&iidID3D12CommandAllocator)), uintptr(unsafe.Pointer(&a)))
	if err := checkHRESULT("ID3D12Device::CreateCommandAllocator", r); err != nil {
		return nil, err
	}
	return a, nil
}

func (i *iD3D12Device) CreateCommandList(nodeMask uint32, typ CommandListType, allocator CommandAllocator, initialState PipelineState) (GraphicsCommandList, error) {
	var l *iD3D12GraphicsCommandList
	r, _, _ := syscall.SyscallN(i.vtbl.CreateCommandList, uintptr(unsafe.Pointer(i)),
		uintptr(nodeMask), uintptr(typ), uintptr(ptrOf(allocator)), uintptr(ptrOf(initialState)),
		uintptr(unsafe.Pointer(&iidID3D12GraphicsCommandList)), uintptr(unsafe.Pointer(&l)))
	if err := checkHRESULT("ID3D12Device::CreateCommandList", r); err != nil {
		return nil, err
	}
	return l, nil
}

func (i *iD3D12Device) CreateFence(initialValue uint64, flags FenceFlags) (Fence, error) {
	var f *iD3D12Fence
	r, _, _ := syscall.SyscallN(i.vtbl.CreateFence, uintptr(unsafe.Pointer(i)),
		uintptr(initialValue), uintptr(flags), uintptr(unsafe.Pointer(&iidID3D12Fence)), uintptr(unsafe.Pointer(&f)))
	if err := checkHRESULT("ID3D12Device::CreateFence", r); err != nil {
		return nil, err
	}
	return f, nil
}

func (i *iD3D12Device) CreateDescriptorHeap(desc *DescriptorHeapDesc) (DescriptorHeap, error) {
	var h *iD3D12DescriptorHeap
	r, _, _ := syscall.SyscallN(i.vtbl.CreateDescriptorHeap, uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)), uintptr(unsafe.Pointer(&iidID3D12DescriptorHeap)), uintptr(unsafe.Pointer(&h)))
	if err := checkHRESULT("ID3D12Device::CreateDescriptorHeap", r); err != nil {
		return nil, err
	}
	return h, nil
}

func (i *iD3D12Device) DescriptorHandleIncrementSize(typ DescriptorHeapType) uint32 {
	r, _, _ := syscall.SyscallN(i.vtbl.GetDescriptorHandleIncrementSize, uintptr(unsafe.Pointer(i)), uintptr(typ))
	return uint32(r)
}

func (i *iD3D12Device) CreateRootSignature(nodeMask uint32, blob []byte) (RootSignature, error) {
	if len(blob) == 0 {
		return nil, errors.New("d3d: empty root signature blob")
	}
	var s *iD3D12RootSignature
	r, _, _ := syscall.SyscallN(i.vtbl.CreateRootSignature, uintptr(unsafe.Pointer(i)),
		uintptr(nodeMask), uintptr(unsafe.Pointer(&blob[0])), uintptr(len(blob)),
		uintptr(unsafe.Pointer(&iidID3D12RootSignature)), uintptr(unsafe.Pointer(&s)))
	if err := checkHRESULT("ID3D12Device::CreateRootSignature", r); err != nil {
		return nil, err
	}
	return s, nil
}

func (i *iD3D12Device) CreateGraphicsPipelineState(desc *GraphicsPipelineStateDesc) (PipelineState, error) {
	b := buildGraphicsPipelineStateDesc(desc)
	var p *iD3D12PipelineState
	r, _, _ := syscall.SyscallN(i.vtbl.CreateGraphicsPipelineState, uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&b.desc)), uintptr(unsafe.Pointer(&iidID3D12PipelineState)), uintptr(unsafe.Pointer(&p)))
	runtime.KeepAlive(b)
	if err := checkHRESULT("ID3D12Device::CreateGraphicsPipelineState", r); err != nil {
		return nil, err
	}
	return p, nil
}

func (i *iD3D12Device) CreateCommittedResource(heap *HeapProperties, heapFlags HeapFlags, desc *ResourceDesc, initialState ResourceStates) (Resource, error) {
	var res *iD3D12Resource
	r, _, _ := syscall.SyscallN(i.vtbl.CreateCommittedResource, uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(heap)), uintptr(heapFlags), uintptr(unsafe.Pointer(desc)), uintptr(initialState),
		0, uintptr(unsafe.Pointer(&iidID3D12Resource)), uintptr(unsafe.Pointer(&res)))
	if err := checkHRESULT("ID3D12Device::CreateCommittedResource", r); err != nil {
		return nil, err
	}
	return res, nil
}

func (i *iD3D12Device) CreateConstantBufferView(desc *ConstantBufferViewDesc, dest CPUDescriptorHandle) {
	syscall.SyscallN(i.vtbl.CreateConstantBufferView, uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)), dest.Ptr)
}

func (i *iD3D12Device) CreateShaderResourceView(resource Resource, desc *ShaderResourceViewDesc, dest CPUDescriptorHandle) {
	var pdesc unsafe.Pointer
	var n shaderResourceViewDescNative
	if desc != nil {
		n = buildShaderResourceViewDesc(desc)
		pdesc = unsafe.Pointer(&n)
	}
	syscall.SyscallN(i.vtbl.CreateShaderResourceView, uintptr(unsafe.Pointer(i)),
		uintptr(ptrOf(resource)), uintptr(pdesc), dest.Ptr)
	runtime.KeepAlive(&n)
}

func (i *iD3D12Device) CreateRenderTargetView(resource Resource, desc *RenderTargetViewDesc, dest CPUDescriptorHandle) {
	var pdesc unsafe.Pointer
	var n renderTargetViewDescNative
	if desc != nil {
		n = buildRenderTargetViewDesc(desc)
		pdesc = unsafe.Pointer(&n)
	}
	syscall.SyscallN(i.vtbl.CreateRenderTargetView, uintptr(unsafe.Pointer(i)),
		uintptr(ptrOf(resource)), uintptr(pdesc), dest.Ptr)
	runtime.KeepAlive(&n)
}

func (i *iD3D12Device) CreateSampler(desc *SamplerDesc, dest CPUDescriptorHandle) {
	syscall.SyscallN(i.vtbl.CreateSampler, uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)), dest.Ptr)
}

func (i *iD3D12Device) CopyableFootprints(desc *ResourceDesc, firstSubresource, numSubresources uint32, baseOffset uint64) CopyableFootprints {
	f := CopyableFootprints{
		Layouts:         make([]PlacedSubresourceFootprint, numSubresources),
		NumRows:         make([]uint32, numSubresources),
		RowSizesInBytes: make([]uint64, numSubresources),
	}
	if numSubresources == 0 {
		return f
	}
	syscall.SyscallN(i.vtbl.GetCopyableFootprints, uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)), uintptr(firstSubresource), uintptr(numSubresources), uintptr(baseOffset),
		uintptr(unsafe.Pointer(&f.Layouts[0])), uintptr(unsafe.Pointer(&f.NumRows[0])),
		uintptr(unsafe.Pointer(&f.RowSizesInBytes[0])), uintptr(unsafe.Pointer(&f.TotalBytes)))
	return f
}
