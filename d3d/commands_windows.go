//go:build windows && amd64

package d3d

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

type iD3D12CommandQueue struct {
	vtbl *iD3D12CommandQueueVtbl
}

func (i *iD3D12CommandQueue) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12CommandQueue) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iD3D12CommandQueue) ExecuteCommandLists(lists ...GraphicsCommandList) {
	if len(lists) == 0 {
		return
	}
	ptrs := make([]unsafe.Pointer, len(lists))
	for n, l := range lists {
		ptrs[n] = ptrOf(l)
	}
	syscall.SyscallN(i.vtbl.ExecuteCommandLists, uintptr(unsafe.Pointer(i)),
		uintptr(len(ptrs)), uintptr(unsafe.Pointer(&ptrs[0])))
	runtime.KeepAlive(ptrs)
}

func (i *iD3D12CommandQueue) Signal(fence Fence, value uint64) error {
	r, _, _ := syscall.SyscallN(i.vtbl.Signal, uintptr(unsafe.Pointer(i)), uintptr(ptrOf(fence)), uintptr(value))
	return checkHRESULT("ID3D12CommandQueue::Signal", r)
}

type iD3D12CommandAllocator struct {
	vtbl *iD3D12CommandAllocatorVtbl
}

func (i *iD3D12CommandAllocator) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12CommandAllocator) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iD3D12CommandAllocator) Reset() error {
	r, _, _ := syscall.SyscallN(i.vtbl.Reset, uintptr(unsafe.Pointer(i)))
	return checkHRESULT("ID3D12CommandAllocator::Reset", r)
}

type iD3D12Fence struct {
	vtbl *iD3D12FenceVtbl
}

func (i *iD3D12Fence) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12Fence) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iD3D12Fence) SetEventOnCompletion(value uint64, ev Event) error {
	e, ok := ev.(*event)
	if !ok {
		return errors.Newf("d3d: SetEventOnCompletion needs an event from CreateEvent, got %T", ev)
	}
	r, _, _ := syscall.SyscallN(i.vtbl.SetEventOnCompletion, uintptr(unsafe.Pointer(i)), uintptr(value), uintptr(e.handle))
	return checkHRESULT("ID3D12Fence::SetEventOnCompletion", r)
}

func (i *iD3D12Fence) Signal(value uint64) error {
	r, _, _ := syscall.SyscallN(i.vtbl.Signal, uintptr(unsafe.Pointer(i)), uintptr(value))
	return checkHRESULT("ID3D12Fence::Signal", r)
}

type event struct {
	handle windows.Handle
}

func (e *event) Wait() error {
	s, err := windows.WaitForSingleObject(e.handle, windows.INFINITE)
	if err != nil {
		return errors.Wrap(err, "d3d: WaitForSingleObject failed")
	}
	if s != windows.WAIT_OBJECT_0 {
		return errors.Newf("d3d: WaitForSingleObject returned %d", s)
	}
	return nil
}

func (e *event) Close() error {
	if e.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(e.handle)
	e.handle = 0
	return errors.WithStack(err)
}

type iD3D12GraphicsCommandList struct {
	vtbl *iD3D12GraphicsCommandListVtbl
}

func (i *iD3D12GraphicsCommandList) comPtr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *iD3D12GraphicsCommandList) Release() {
	if i != nil {
		syscall.SyscallN(i.vtbl.Release, uintptr(unsafe.Pointer(i)))
	}
}

func (i *iD3D12GraphicsCommandList) Close() error {
	r, _, _ := syscall.SyscallN(i.vtbl.Close, uintptr(unsafe.Pointer(i)))
	return checkHRESULT("ID3D12GraphicsCommandList::Close", r)
}

func (i *iD3D12GraphicsCommandList) Reset(allocator CommandAllocator, initialState PipelineState) error {
	r, _, _ := syscall.SyscallN(i.vtbl.Reset, uintptr(unsafe.Pointer(i)), uintptr(ptrOf(allocator)), uintptr(ptrOf(initialState)))
	return checkHRESULT("ID3D12GraphicsCommandList::Reset", r)
}

func (i *iD3D12GraphicsCommandList) DrawInstanced(vertexCountPerInstance, instanceCount, startVertex, startInstance uint32) {
	syscall.SyscallN(i.vtbl.DrawInstanced, uintptr(unsafe.Pointer(i)),
		uintptr(vertexCountPerInstance), uintptr(instanceCount), uintptr(startVertex), uintptr(startInstance))
}

func (i *iD3D12GraphicsCommandList) CopyTextureRegion(dst *TextureCopyLocation, dstX, dstY, dstZ uint32, src *TextureCopyLocation, srcBox *Box) {
	d := buildTextureCopyLocation(dst)
	s := buildTextureCopyLocation(src)
	syscall.SyscallN(i.vtbl.CopyTextureRegion, uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&d)), uintptr(dstX), uintptr(dstY), uintptr(dstZ),
		uintptr(unsafe.Pointer(&s)), uintptr(unsafe.Pointer(srcBox)))
	runtime.KeepAlive(&d)
	runtime.KeepAlive(&s)
}

func (i *iD3D12GraphicsCommandList) IASetPrimitiveTopology(topology PrimitiveTopology) {
	syscall.SyscallN(i.vtbl.IASetPrimitiveTopology, uintptr(unsafe.Pointer(i)), uintptr(topology))
}

func (i *iD3D12GraphicsCommandList) RSSetViewports(viewports ...Viewport) {
	if len(viewports) == 0 {
		return
	}
	syscall.SyscallN(i.vtbl.RSSetViewports, uintptr(unsafe.Pointer(i)),
		uintptr(len(viewports)), uintptr(unsafe.Pointer(&viewports[0])))
}

func (i *iD3D12GraphicsCommandList) RSSetScissorRects(rects ...Rect) {
	if len(rects) == 0 {
		return
	}
	syscall.SyscallN(i.vtbl.RSSetScissorRects, uintptr(unsafe.Pointer(i)),
		uintptr(len(rects)), uintptr(unsafe.Pointer(&rects[0])))
}

func (i *iD3D12GraphicsCommandList) SetPipelineState(state PipelineState) {
	syscall.SyscallN(i.vtbl.SetPipelineState, uintptr(unsafe.Pointer(i)), uintptr(ptrOf(state)))
}

func (i *iD3D12GraphicsCommandList) ResourceBarrier(barriers ...ResourceBarrier) {
	if len(barriers) == 0 {
		return
	}
	n := buildResourceBarriers(barriers)
	syscall.SyscallN(i.vtbl.ResourceBarrier, uintptr(unsafe.Pointer(i)),
		uintptr(len(n)), uintptr(unsafe.Pointer(&n[0])))
	runtime.KeepAlive(n)
}

func (i *iD3D12GraphicsCommandList) SetDescriptorHeaps(heaps ...DescriptorHeap) {
	if len(heaps) == 0 {
		return
	}
	ptrs := make([]unsafe.Pointer, len(heaps))
	for n, h := range heaps {
		ptrs[n] = ptrOf(h)
	}
	syscall.SyscallN(i.vtbl.SetDescriptorHeaps, uintptr(unsafe.Pointer(i)),
		uintptr(len(ptrs)), uintptr(unsafe.Pointer(&ptrs[0])))
	runtime.KeepAlive(ptrs)
}

func (i *iD3D12GraphicsCommandList) SetGraphicsRootSignature(signature RootSignature) {
	syscall.SyscallN(i.vtbl.SetGraphicsRootSignature, uintptr(unsafe.Pointer(i)), uintptr(ptrOf(signature)))
}

func (i *iD3D12GraphicsCommandList) SetGraphicsRootDescriptorTable(rootParameterIndex uint32, base GPUDescriptorHandle) {
	syscall.SyscallN(i.vtbl.SetGraphicsRootDescriptorTable, uintptr(unsafe.Pointer(i)),
		uintptr(rootParameterIndex), uintptr(base.Ptr))
}

func (i *iD3D12GraphicsCommandList) SetGraphicsRootConstantBufferView(rootParameterIndex uint32, location GPUVirtualAddress) {
	syscall.SyscallN(i.vtbl.SetGraphicsRootConstantBufferView, uintptr(unsafe.Pointer(i)),
		uintptr(rootParameterIndex), uintptr(location))
}

func (i *iD3D12GraphicsCommandList) IASetVertexBuffers(startSlot uint32, views ...VertexBufferView) {
	if len(views) == 0 {
		return
	}
	syscall.SyscallN(i.vtbl.IASetVertexBuffers, uintptr(unsafe.Pointer(i)),
		uintptr(startSlot), uintptr(len(views)), uintptr(unsafe.Pointer(&views[0])))
}

func (i *iD3D12GraphicsCommandList) OMSetRenderTargets(rtvs []CPUDescriptorHandle, singleHandleToDescriptorRange bool, dsv *CPUDescriptorHandle) {
	var prtvs unsafe.Pointer
	if len(rtvs) > 0 {
		prtvs = unsafe.Pointer(&rtvs[0])
	}
	syscall.SyscallN(i.vtbl.OMSetRenderTargets, uintptr(unsafe.Pointer(i)),
		uintptr(len(rtvs)), uintptr(prtvs), uintptr(boolToInt32(singleHandleToDescriptorRange)), uintptr(unsafe.Pointer(dsv)))
	runtime.KeepAlive(rtvs)
}

func (i *iD3D12GraphicsCommandList) ClearRenderTargetView(rtv CPUDescriptorHandle, color [4]float32, rects ...Rect) {
	var prects unsafe.Pointer
	if len(rects) > 0 {
		prects = unsafe.Pointer(&rects[0])
	}
	syscall.SyscallN(i.vtbl.ClearRenderTargetView, uintptr(unsafe.Pointer(i)),
		rtv.Ptr, uintptr(unsafe.Pointer(&color[0])), uintptr(len(rects)), uintptr(prects))
	runtime.KeepAlive(rects)
}
