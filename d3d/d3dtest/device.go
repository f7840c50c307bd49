package d3dtest

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

type View struct {
	Resource d3d.Resource
	SRV      *d3d.ShaderResourceViewDesc
	RTV      *d3d.RenderTargetViewDesc
}

type Device struct {
	log *Log

	FeatureLevel d3d.FeatureLevel
	OptionsValue d3d.FeatureDataOptions
	OptionsError error
	Released     bool

	Increments map[d3d.DescriptorHeapType]uint32

	Queues         []*CommandQueue
	Allocators     []*CommandAllocator
	Lists          []*CommandList
	Fences         []*Fence
	Heaps          []*DescriptorHeap
	Resources      []*Resource
	RootSignatures []*RootSignature
	Pipelines      []*PipelineState
	PipelineDescs  []d3d.GraphicsPipelineStateDesc

	CBVs     map[uintptr]d3d.ConstantBufferViewDesc
	Views    map[uintptr]View
	Samplers map[uintptr]d3d.SamplerDesc

	nextGPU uint64
}

func newDevice(log *Log) *Device {
	return &Device{
		log: log,
		Increments: map[d3d.DescriptorHeapType]uint32{
			d3d.DescriptorHeapTypeCBVSRVUAV: 32,
			d3d.DescriptorHeapTypeSampler:   32,
			d3d.DescriptorHeapTypeRTV:       32,
			d3d.DescriptorHeapTypeDSV:       8,
		},
		OptionsValue: d3d.FeatureDataOptions{ResourceBindingTier: 3, ResourceHeapTier: 2},
		CBVs:         map[uintptr]d3d.ConstantBufferViewDesc{},
		Views:        map[uintptr]View{},
		Samplers:     map[uintptr]d3d.SamplerDesc{},
		nextGPU:      0x100000,
	}
}

func (d *Device) Release() {
	d.log.Add("Device.Release")
	d.Released = true
}

func (d *Device) Options() (d3d.FeatureDataOptions, error) {
	d.log.Add("Device.CheckFeatureSupport")
	if d.OptionsError != nil {
		return d3d.FeatureDataOptions{}, d.OptionsError
	}
	return d.OptionsValue, nil
}

func (d *Device) CreateCommandQueue(desc *d3d.CommandQueueDesc) (d3d.CommandQueue, error) {
	d.log.Add("Device.CreateCommandQueue")
	q := &CommandQueue{log: d.log, Desc: *desc}
	d.Queues = append(d.Queues, q)
	return q, nil
}

func (d *Device) CreateCommandAllocator(typ d3d.CommandListType) (d3d.CommandAllocator, error) {
	d.log.Add("Device.CreateCommandAllocator")
	a := &CommandAllocator{log: d.log, Type: typ}
	d.Allocators = append(d.Allocators, a)
	return a, nil
}

func (d *Device) CreateCommandList(nodeMask uint32, typ d3d.CommandListType, allocator d3d.CommandAllocator, initialState d3d.PipelineState) (d3d.GraphicsCommandList, error) {
	d.log.Add("Device.CreateCommandList")
	if allocator == nil {
		return nil, d3d.EInvalidArg
	}
	l := &CommandList{log: d.log, Type: typ, Allocator: allocator, InitialState: initialState}
	d.Lists = append(d.Lists, l)
	return l, nil
}

func (d *Device) CreateFence(initialValue uint64, flags d3d.FenceFlags) (d3d.Fence, error) {
	d.log.Add("Device.CreateFence(%d)", initialValue)
	f := &Fence{log: d.log, Value: initialValue}
	d.Fences = append(d.Fences, f)
	return f, nil
}

func (d *Device) CreateDescriptorHeap(desc *d3d.DescriptorHeapDesc) (d3d.DescriptorHeap, error) {
	d.log.Add("Device.CreateDescriptorHeap(%d,%d)", desc.Type, desc.NumDescriptors)
	n := uint64(len(d.Heaps) + 1)
	h := &DescriptorHeap{
		log:      d.log,
		DescData: *desc,
		CPUStart: d3d.CPUDescriptorHandle{Ptr: uintptr(n) << 16},
	}
	if desc.Flags&d3d.DescriptorHeapFlagShaderVisible != 0 {
		h.GPUStart = d3d.GPUDescriptorHandle{Ptr: n << 32}
	}
	d.Heaps = append(d.Heaps, h)
	return h, nil
}

func (d *Device) DescriptorHandleIncrementSize(typ d3d.DescriptorHeapType) uint32 {
	return d.Increments[typ]
}

func (d *Device) CreateRootSignature(nodeMask uint32, blob []byte) (d3d.RootSignature, error) {
	d.log.Add("Device.CreateRootSignature")
	if len(blob) == 0 {
		return nil, d3d.EInvalidArg
	}
	rs := &RootSignature{log: d.log, Blob: append([]byte(nil), blob...)}
	d.RootSignatures = append(d.RootSignatures, rs)
	return rs, nil
}

func (d *Device) CreateGraphicsPipelineState(desc *d3d.GraphicsPipelineStateDesc) (d3d.PipelineState, error) {
	d.log.Add("Device.CreateGraphicsPipelineState")
	if desc.RootSignature == nil || len(desc.VS) == 0 {
		return nil, d3d.EInvalidArg
	}
	p := &PipelineState{log: d.log}
	d.Pipelines = append(d.Pipelines, p)
	d.PipelineDescs = append(d.PipelineDescs, *desc)
	return p, nil
}

func (d *Device) CreateCommittedResource(heap *d3d.HeapProperties, heapFlags d3d.HeapFlags, desc *d3d.ResourceDesc, initialState d3d.ResourceStates) (d3d.Resource, error) {
	d.log.Add("Device.CreateCommittedResource(%d,%d)", heap.Type, desc.Dimension)
	r := &Resource{
		log:          d.log,
		DescData:     *desc,
		Heap:         *heap,
		InitialState: initialState,
		GPUAddress:   d3d.GPUVirtualAddress(d.nextGPU),
	}
	if desc.Dimension == d3d.ResourceDimensionBuffer {
		r.Data = make([]byte, desc.Width)
		d.nextGPU += (desc.Width + 0xffff) &^ 0xffff
	} else {
		d.nextGPU += 0x10000
	}
	d.Resources = append(d.Resources, r)
	return r, nil
}

func (d *Device) CreateConstantBufferView(desc *d3d.ConstantBufferViewDesc, dest d3d.CPUDescriptorHandle) {
	d.log.Add("Device.CreateConstantBufferView")
	d.CBVs[dest.Ptr] = *desc
}

func (d *Device) CreateShaderResourceView(resource d3d.Resource, desc *d3d.ShaderResourceViewDesc, dest d3d.CPUDescriptorHandle) {
	d.log.Add("Device.CreateShaderResourceView")
	d.Views[dest.Ptr] = View{Resource: resource, SRV: desc}
}

func (d *Device) CreateRenderTargetView(resource d3d.Resource, desc *d3d.RenderTargetViewDesc, dest d3d.CPUDescriptorHandle) {
	d.log.Add("Device.CreateRenderTargetView")
	d.Views[dest.Ptr] = View{Resource: resource, RTV: desc}
}

func (d *Device) CreateSampler(desc *d3d.SamplerDesc, dest d3d.CPUDescriptorHandle) {
	d.log.Add("Device.CreateSampler")
	d.Samplers[dest.Ptr] = *desc
}

func (d *Device) CopyableFootprints(desc *d3d.ResourceDesc, firstSubresource, numSubresources uint32, baseOffset uint64) d3d.CopyableFootprints {
	f := d3d.CopyableFootprints{
		Layouts:         make([]d3d.PlacedSubresourceFootprint, numSubresources),
		NumRows:         make([]uint32, numSubresources),
		RowSizesInBytes: make([]uint64, numSubresources),
	}
	if numSubresources == 0 {
		return f
	}

	rowSize := desc.Width * 4
	rowPitch := (rowSize + d3d.TextureDataPitchAlignment - 1) &^ (d3d.TextureDataPitchAlignment - 1)
	f.Layouts[0] = d3d.PlacedSubresourceFootprint{
		Offset: baseOffset,
		Footprint: d3d.SubresourceFootprint{
			Format:   desc.Format,
			Width:    uint32(desc.Width),
			Height:   desc.Height,
			Depth:    1,
			RowPitch: uint32(rowPitch),
		},
	}
	f.NumRows[0] = desc.Height
	f.RowSizesInBytes[0] = rowSize
	f.TotalBytes = rowPitch*uint64(desc.Height-1) + rowSize
	return f
}

type Resource struct {
	log *Log

	Name         string
	DescData     d3d.ResourceDesc
	Heap         d3d.HeapProperties
	InitialState d3d.ResourceStates
	GPUAddress   d3d.GPUVirtualAddress
	Data         []byte
	MapCount     int
	UnmapCount   int
	Released     bool
}

func (r *Resource) SetName(name string) error {
	r.log.Add("Resource.SetName(%s)", name)
	r.Name = name
	return nil
}

func (r *Resource) Release() {
	r.log.Add("Resource.Release(%s)", r.Name)
	r.Released = true
}

func (r *Resource) Map(subresource uint32, readRange *d3d.Range) (unsafe.Pointer, error) {
	if len(r.Data) == 0 {
		return nil, errors.Wrap(d3d.EInvalidArg, "d3dtest: only buffers can be mapped")
	}
	r.MapCount++
	return unsafe.Pointer(&r.Data[0]), nil
}

func (r *Resource) Unmap(subresource uint32, writtenRange *d3d.Range) {
	r.UnmapCount++
}

func (r *Resource) Desc() d3d.ResourceDesc {
	return r.DescData
}

func (r *Resource) GPUVirtualAddress() d3d.GPUVirtualAddress {
	return r.GPUAddress
}

type DescriptorHeap struct {
	log      *Log
	DescData d3d.DescriptorHeapDesc
	CPUStart d3d.CPUDescriptorHandle
	GPUStart d3d.GPUDescriptorHandle
	Released bool
}

func (h *DescriptorHeap) Release() {
	h.log.Add("DescriptorHeap.Release(%d)", h.DescData.Type)
	h.Released = true
}

func (h *DescriptorHeap) Desc() d3d.DescriptorHeapDesc {
	return h.DescData
}

func (h *DescriptorHeap) CPUDescriptorHandleForHeapStart() d3d.CPUDescriptorHandle {
	return h.CPUStart
}

func (h *DescriptorHeap) GPUDescriptorHandleForHeapStart() d3d.GPUDescriptorHandle {
	return h.GPUStart
}

type RootSignature struct {
	log      *Log
	Blob     []byte
	Released bool
}

func (r *RootSignature) Release() {
	r.log.Add("RootSignature.Release")
	r.Released = true
}

type PipelineState struct {
	log      *Log
	Released bool
}

func (p *PipelineState) Release() {
	p.log.Add("PipelineState.Release")
	p.Released = true
}
