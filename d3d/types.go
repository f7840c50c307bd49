package d3d

// Structs in this file share their memory layout with the native API and are
// passed to it by pointer. Sizes are checked in types_test.go.

type GPUVirtualAddress uint64

type CPUDescriptorHandle struct {
	Ptr uintptr
}

// Offset returns the handle index descriptors past h.
func (h CPUDescriptorHandle) Offset(index uint32, increment uint32) CPUDescriptorHandle {
	return CPUDescriptorHandle{Ptr: h.Ptr + uintptr(index)*uintptr(increment)}
}

type GPUDescriptorHandle struct {
	Ptr uint64
}

func (h GPUDescriptorHandle) Offset(index uint32, increment uint32) GPUDescriptorHandle {
	return GPUDescriptorHandle{Ptr: h.Ptr + uint64(index)*uint64(increment)}
}

type CommandQueueDesc struct {
	Type     CommandListType
	Priority int32
	Flags    CommandQueueFlags
	NodeMask uint32
}

type DescriptorHeapDesc struct {
	Type           DescriptorHeapType
	NumDescriptors uint32
	Flags          DescriptorHeapFlags
	NodeMask       uint32
}

type HeapProperties struct {
	Type                 HeapType
	CPUPageProperty      CPUPageProperty
	MemoryPoolPreference MemoryPool
	CreationNodeMask     uint32
	VisibleNodeMask      uint32
}

type SampleDesc struct {
	Count   uint32
	Quality uint32
}

type ResourceDesc struct {
	Dimension        ResourceDimension
	Alignment        uint64
	Width            uint64
	Height           uint32
	DepthOrArraySize uint16
	MipLevels        uint16
	Format           Format
	SampleDesc       SampleDesc
	Layout           TextureLayout
	Flags            ResourceFlags
}

type Range struct {
	Begin uintptr
	End   uintptr
}

type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type Box struct {
	Left   uint32
	Top    uint32
	Front  uint32
	Right  uint32
	Bottom uint32
	Back   uint32
}

type VertexBufferView struct {
	BufferLocation GPUVirtualAddress
	SizeInBytes    uint32
	StrideInBytes  uint32
}

type ConstantBufferViewDesc struct {
	BufferLocation GPUVirtualAddress
	SizeInBytes    uint32
}

type SamplerDesc struct {
	Filter         Filter
	AddressU       TextureAddressMode
	AddressV       TextureAddressMode
	AddressW       TextureAddressMode
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc ComparisonFunc
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

type SubresourceFootprint struct {
	Format   Format
	Width    uint32
	Height   uint32
	Depth    uint32
	RowPitch uint32
}

type PlacedSubresourceFootprint struct {
	Offset    uint64
	Footprint SubresourceFootprint
}

type DescriptorRange struct {
	RangeType                         DescriptorRangeType
	NumDescriptors                    uint32
	BaseShaderRegister                uint32
	RegisterSpace                     uint32
	OffsetInDescriptorsFromTableStart uint32
}

type RootDescriptor struct {
	ShaderRegister uint32
	RegisterSpace  uint32
}

type RootConstants struct {
	ShaderRegister uint32
	RegisterSpace  uint32
	Num32BitValues uint32
}

type RenderTargetBlendDesc struct {
	BlendEnable           int32
	LogicOpEnable         int32
	SrcBlend              Blend
	DestBlend             Blend
	BlendOp               BlendOp
	SrcBlendAlpha         Blend
	DestBlendAlpha        Blend
	BlendOpAlpha          BlendOp
	LogicOp               LogicOp
	RenderTargetWriteMask ColorWriteEnable
}

type BlendDesc struct {
	AlphaToCoverageEnable  int32
	IndependentBlendEnable int32
	RenderTarget           [SimultaneousRenderTargetCount]RenderTargetBlendDesc
}

type RasterizerDesc struct {
	FillMode              FillMode
	CullMode              CullMode
	FrontCounterClockwise int32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       int32
	MultisampleEnable     int32
	AntialiasedLineEnable int32
	ForcedSampleCount     uint32
	ConservativeRaster    ConservativeRasterizationMode
}

type DepthStencilOpDesc struct {
	StencilFailOp      StencilOp
	StencilDepthFailOp StencilOp
	StencilPassOp      StencilOp
	StencilFunc        ComparisonFunc
}

type DepthStencilDesc struct {
	DepthEnable      int32
	DepthWriteMask   DepthWriteMask
	DepthFunc        ComparisonFunc
	StencilEnable    int32
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        DepthStencilOpDesc
	BackFace         DepthStencilOpDesc
}

type Tex2DSRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	PlaneSlice          uint32
	ResourceMinLODClamp float32
}

type Tex2DRTV struct {
	MipSlice   uint32
	PlaneSlice uint32
}

type Rational struct {
	Numerator   uint32
	Denominator uint32
}

type ModeDesc struct {
	Width            uint32
	Height           uint32
	RefreshRate      Rational
	Format           Format
	ScanlineOrdering uint32
	Scaling          uint32
}

// SwapChainDesc mirrors DXGI_SWAP_CHAIN_DESC.
type SwapChainDesc struct {
	BufferDesc   ModeDesc
	SampleDesc   SampleDesc
	BufferUsage  Usage
	BufferCount  uint32
	OutputWindow uintptr
	Windowed     int32
	SwapEffect   SwapEffect
	Flags        SwapChainFlags
}

// FeatureDataOptions mirrors D3D12_FEATURE_DATA_D3D12_OPTIONS.
type FeatureDataOptions struct {
	DoublePrecisionFloatShaderOps        int32
	OutputMergerLogicOp                  int32
	MinPrecisionSupport                  uint32
	TiledResourcesTier                   uint32
	ResourceBindingTier                  uint32
	PSSpecifiedStencilRefSupported       int32
	TypedUAVLoadAdditionalFormats        int32
	ROVsSupported                        int32
	ConservativeRasterizationTier        uint32
	MaxGPUVirtualAddressBitsPerResource  uint32
	StandardSwizzle64KBSupported         int32
	CrossNodeSharingTier                 uint32
	CrossAdapterRowMajorTextureSupported int32
	VPAndRTArrayIndexFromAnyShader       int32
	ResourceHeapTier                     uint32
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
