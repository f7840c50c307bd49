// Package d3d exposes the slice of Direct3D 12 and DXGI used by the sample as
// Go interfaces. The COM implementation is only built on windows/amd64; the
// interfaces let everything above this package run against fakes elsewhere.
package d3d

import "unsafe"

type Object interface {
	SetName(name string) error
	Release()
}

type Device interface {
	Release()
	Options() (FeatureDataOptions, error)
	CreateCommandQueue(desc *CommandQueueDesc) (CommandQueue, error)
	CreateCommandAllocator(typ CommandListType) (CommandAllocator, error)
	CreateCommandList(nodeMask uint32, typ CommandListType, allocator CommandAllocator, initialState PipelineState) (GraphicsCommandList, error)
	CreateFence(initialValue uint64, flags FenceFlags) (Fence, error)
	CreateDescriptorHeap(desc *DescriptorHeapDesc) (DescriptorHeap, error)
	DescriptorHandleIncrementSize(typ DescriptorHeapType) uint32
	CreateRootSignature(nodeMask uint32, blob []byte) (RootSignature, error)
	CreateGraphicsPipelineState(desc *GraphicsPipelineStateDesc) (PipelineState, error)
	CreateCommittedResource(heap *HeapProperties, heapFlags HeapFlags, desc *ResourceDesc, initialState ResourceStates) (Resource, error)
	CreateConstantBufferView(desc *ConstantBufferViewDesc, dest CPUDescriptorHandle)
	CreateShaderResourceView(resource Resource, desc *ShaderResourceViewDesc, dest CPUDescriptorHandle)
	CreateRenderTargetView(resource Resource, desc *RenderTargetViewDesc, dest CPUDescriptorHandle)
	CreateSampler(desc *SamplerDesc, dest CPUDescriptorHandle)
	CopyableFootprints(desc *ResourceDesc, firstSubresource, numSubresources uint32, baseOffset uint64) CopyableFootprints
}

// CopyableFootprints is the result of ID3D12Device::GetCopyableFootprints.
type CopyableFootprints struct {
	Layouts         []PlacedSubresourceFootprint
	NumRows         []uint32
	RowSizesInBytes []uint64
	TotalBytes      uint64
}

type CommandQueue interface {
	Release()
	ExecuteCommandLists(lists ...GraphicsCommandList)
	Signal(fence Fence, value uint64) error
}

type CommandAllocator interface {
	Release()
	Reset() error
}

type GraphicsCommandList interface {
	Release()
	Close() error
	Reset(allocator CommandAllocator, initialState PipelineState) error
	DrawInstanced(vertexCountPerInstance, instanceCount, startVertex, startInstance uint32)
	CopyTextureRegion(dst *TextureCopyLocation, dstX, dstY, dstZ uint32, src *TextureCopyLocation, srcBox *Box)
	IASetPrimitiveTopology(topology PrimitiveTopology)
	RSSetViewports(viewports ...Viewport)
	RSSetScissorRects(rects ...Rect)
	SetPipelineState(state PipelineState)
	ResourceBarrier(barriers ...ResourceBarrier)
	SetDescriptorHeaps(heaps ...DescriptorHeap)
	SetGraphicsRootSignature(signature RootSignature)
	SetGraphicsRootDescriptorTable(rootParameterIndex uint32, base GPUDescriptorHandle)
	SetGraphicsRootConstantBufferView(rootParameterIndex uint32, location GPUVirtualAddress)
	IASetVertexBuffers(startSlot uint32, views ...VertexBufferView)
	OMSetRenderTargets(rtvs []CPUDescriptorHandle, singleHandleToDescriptorRange bool, dsv *CPUDescriptorHandle)
	ClearRenderTargetView(rtv CPUDescriptorHandle, color [4]float32, rects ...Rect)
}

type Fence interface {
	Release()
	SetEventOnCompletion(value uint64, event Event) error
	Signal(value uint64) error
}

// Event is an auto-reset OS event a Fence can signal.
type Event interface {
	Wait() error
	Close() error
}

type DescriptorHeap interface {
	Release()
	Desc() DescriptorHeapDesc
	CPUDescriptorHandleForHeapStart() CPUDescriptorHandle
	GPUDescriptorHandleForHeapStart() GPUDescriptorHandle
}

type Resource interface {
	Object
	Map(subresource uint32, readRange *Range) (unsafe.Pointer, error)
	Unmap(subresource uint32, writtenRange *Range)
	Desc() ResourceDesc
	GPUVirtualAddress() GPUVirtualAddress
}

type RootSignature interface {
	Release()
}

type PipelineState interface {
	Release()
}

type Factory interface {
	Release()
	CreateSwapChain(queue CommandQueue, desc *SwapChainDesc) (SwapChain, error)
}

type SwapChain interface {
	Release()
	Present(syncInterval uint32, flags PresentFlags) error
	Buffer(index uint32) (Resource, error)
	ResizeBuffers(bufferCount, width, height uint32, format Format, flags SwapChainFlags) error
	CurrentBackBufferIndex() uint32
	SetFullscreenState(fullscreen bool) error
}

// Driver is the set of DLL entry points the sample needs.
type Driver interface {
	EnableDebugLayer() error
	CreateDevice(minimumLevel FeatureLevel) (Device, error)
	CreateFactory(debug bool) (Factory, error)
	CreateEvent() (Event, error)
	SerializeRootSignature(desc *RootSignatureDesc, version RootSignatureVersion) ([]byte, error)
	// Compile returns the bytecode and any diagnostic text the compiler
	// produced. Diagnostics can be non-empty on success.
	Compile(source []byte, sourceName, entryPoint, target string, flags CompileFlags) ([]byte, string, error)
	OutputDebugString(s string)
}

type RootParameter struct {
	ParameterType    RootParameterType
	ShaderVisibility ShaderVisibility
	// Exactly one of these is used, depending on ParameterType.
	DescriptorTable []DescriptorRange
	Constants       RootConstants
	Descriptor      RootDescriptor
}

type StaticSamplerDesc struct {
	Filter           Filter
	AddressU         TextureAddressMode
	AddressV         TextureAddressMode
	AddressW         TextureAddressMode
	MipLODBias       float32
	MaxAnisotropy    uint32
	ComparisonFunc   ComparisonFunc
	BorderColor      uint32
	MinLOD           float32
	MaxLOD           float32
	ShaderRegister   uint32
	RegisterSpace    uint32
	ShaderVisibility ShaderVisibility
}

type RootSignatureDesc struct {
	Parameters     []RootParameter
	StaticSamplers []StaticSamplerDesc
	Flags          RootSignatureFlags
}

type InputElementDesc struct {
	SemanticName         string
	SemanticIndex        uint32
	Format               Format
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       InputClassification
	InstanceDataStepRate uint32
}

type GraphicsPipelineStateDesc struct {
	RootSignature         RootSignature
	VS                    []byte
	PS                    []byte
	BlendState            BlendDesc
	SampleMask            uint32
	RasterizerState       RasterizerDesc
	DepthStencilState     DepthStencilDesc
	InputLayout           []InputElementDesc
	PrimitiveTopologyType PrimitiveTopologyType
	NumRenderTargets      uint32
	RTVFormats            [SimultaneousRenderTargetCount]Format
	DSVFormat             Format
	SampleDesc            SampleDesc
	NodeMask              uint32
	Flags                 PipelineStateFlags
}

type ShaderResourceViewDesc struct {
	Format                  Format
	ViewDimension           SRVDimension
	Shader4ComponentMapping uint32
	Texture2D               Tex2DSRV
}

type RenderTargetViewDesc struct {
	Format        Format
	ViewDimension RTVDimension
	Texture2D     Tex2DRTV
}

type ResourceBarrier struct {
	Type       ResourceBarrierType
	Flags      ResourceBarrierFlags
	Transition ResourceTransitionBarrier
}

type ResourceTransitionBarrier struct {
	Resource    Resource
	Subresource uint32
	StateBefore ResourceStates
	StateAfter  ResourceStates
}

type TextureCopyLocation struct {
	Resource Resource
	Type     TextureCopyType
	// PlacedFootprint is used with TextureCopyTypePlacedFootprint,
	// SubresourceIndex otherwise.
	PlacedFootprint  PlacedSubresourceFootprint
	SubresourceIndex uint32
}
