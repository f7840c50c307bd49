package gfx

import (
	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

// DescriptorHeap owns one native descriptor heap and computes handles into
// it by linear offset. Indices are not bounds checked.
type DescriptorHeap struct {
	Heap          d3d.DescriptorHeap
	Desc          d3d.DescriptorHeapDesc
	CPUStart      d3d.CPUDescriptorHandle
	GPUStart      d3d.GPUDescriptorHandle
	IncrementSize uint32
}

func NewDescriptorHeap(device d3d.Device, typ d3d.DescriptorHeapType, count uint32, shaderVisible bool) (*DescriptorHeap, error) {
	desc := d3d.DescriptorHeapDesc{
		Type:           typ,
		NumDescriptors: count,
		Flags:          d3d.DescriptorHeapFlagNone,
	}
	if shaderVisible {
		desc.Flags = d3d.DescriptorHeapFlagShaderVisible
	}

	heap, err := device.CreateDescriptorHeap(&desc)
	if err != nil {
		return nil, errors.Wrapf(err, "gfx: creating descriptor heap (type %d, %d descriptors)", typ, count)
	}

	h := &DescriptorHeap{
		Heap:          heap,
		Desc:          heap.Desc(),
		CPUStart:      heap.CPUDescriptorHandleForHeapStart(),
		IncrementSize: device.DescriptorHandleIncrementSize(typ),
	}
	if shaderVisible {
		h.GPUStart = heap.GPUDescriptorHandleForHeapStart()
	}
	return h, nil
}

func (h *DescriptorHeap) ShaderVisible() bool {
	return h.Desc.Flags&d3d.DescriptorHeapFlagShaderVisible != 0
}

func (h *DescriptorHeap) CPU(index uint32) d3d.CPUDescriptorHandle {
	return h.CPUStart.Offset(index, h.IncrementSize)
}

// GPU panics when the heap is not shader visible: such a heap has no GPU
// address space.
func (h *DescriptorHeap) GPU(index uint32) d3d.GPUDescriptorHandle {
	if !h.ShaderVisible() {
		panic("gfx: GPU handle requested from a heap that is not shader visible")
	}
	return h.GPUStart.Offset(index, h.IncrementSize)
}

func (h *DescriptorHeap) Release() {
	if h == nil || h.Heap == nil {
		return
	}
	h.Heap.Release()
	h.Heap = nil
}
