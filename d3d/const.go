package d3d

type Format uint32

const (
	FormatUnknown           Format = 0
	FormatR32G32B32A32Float Format = 2
	FormatR32G32B32Float    Format = 6
	FormatR32G32Float       Format = 16
	FormatR8G8B8A8UNorm     Format = 28
	FormatR8G8B8A8UNormSRGB Format = 29
	FormatB8G8R8A8UNorm     Format = 87
	FormatB8G8R8A8UNormSRGB Format = 91
)

type FeatureLevel uint32

const (
	FeatureLevel11_0 FeatureLevel = 0xb000
	FeatureLevel11_1 FeatureLevel = 0xb100
	FeatureLevel12_0 FeatureLevel = 0xc000
)

type Feature uint32

const (
	FeatureD3D12Options Feature = 0
)

type CommandListType uint32

const (
	CommandListTypeDirect  CommandListType = 0
	CommandListTypeBundle  CommandListType = 1
	CommandListTypeCompute CommandListType = 2
	CommandListTypeCopy    CommandListType = 3
)

type CommandQueueFlags uint32

const (
	CommandQueueFlagNone CommandQueueFlags = 0
)

type DescriptorHeapType uint32

const (
	DescriptorHeapTypeCBVSRVUAV DescriptorHeapType = 0
	DescriptorHeapTypeSampler   DescriptorHeapType = 1
	DescriptorHeapTypeRTV       DescriptorHeapType = 2
	DescriptorHeapTypeDSV       DescriptorHeapType = 3
)

type DescriptorHeapFlags uint32

const (
	DescriptorHeapFlagNone          DescriptorHeapFlags = 0
	DescriptorHeapFlagShaderVisible DescriptorHeapFlags = 0x1
)

type HeapType uint32

const (
	HeapTypeDefault  HeapType = 1
	HeapTypeUpload   HeapType = 2
	HeapTypeReadback HeapType = 3
)

type CPUPageProperty uint32

const (
	CPUPagePropertyUnknown CPUPageProperty = 0
)

type MemoryPool uint32

const (
	MemoryPoolUnknown MemoryPool = 0
)

type HeapFlags uint32

const (
	HeapFlagNone HeapFlags = 0
)

type ResourceDimension uint32

const (
	ResourceDimensionUnknown   ResourceDimension = 0
	ResourceDimensionBuffer    ResourceDimension = 1
	ResourceDimensionTexture1D ResourceDimension = 2
	ResourceDimensionTexture2D ResourceDimension = 3
	ResourceDimensionTexture3D ResourceDimension = 4
)

type TextureLayout uint32

const (
	TextureLayoutUnknown  TextureLayout = 0
	TextureLayoutRowMajor TextureLayout = 1
)

type ResourceFlags uint32

const (
	ResourceFlagNone ResourceFlags = 0
)

type ResourceStates uint32

const (
	ResourceStateCommon                  ResourceStates = 0
	ResourceStateVertexAndConstantBuffer ResourceStates = 0x1
	ResourceStateIndexBuffer             ResourceStates = 0x2
	ResourceStateRenderTarget            ResourceStates = 0x4
	ResourceStateNonPixelShaderResource  ResourceStates = 0x40
	ResourceStatePixelShaderResource     ResourceStates = 0x80
	ResourceStateIndirectArgument        ResourceStates = 0x200
	ResourceStateCopyDest                ResourceStates = 0x400
	ResourceStateCopySource              ResourceStates = 0x800
	ResourceStatePresent                 ResourceStates = 0

	ResourceStateGenericRead = ResourceStateVertexAndConstantBuffer |
		ResourceStateIndexBuffer |
		ResourceStateNonPixelShaderResource |
		ResourceStatePixelShaderResource |
		ResourceStateIndirectArgument |
		ResourceStateCopySource
)

type ResourceBarrierType uint32

const (
	ResourceBarrierTypeTransition ResourceBarrierType = 0
)

type ResourceBarrierFlags uint32

const (
	ResourceBarrierFlagNone ResourceBarrierFlags = 0
)

const ResourceBarrierAllSubresources = 0xffffffff

type RootSignatureVersion uint32

const (
	RootSignatureVersion1 RootSignatureVersion = 0x1
)

type RootSignatureFlags uint32

const (
	RootSignatureFlagNone                           RootSignatureFlags = 0
	RootSignatureFlagAllowInputAssemblerInputLayout RootSignatureFlags = 0x1
)

type RootParameterType uint32

const (
	RootParameterTypeDescriptorTable RootParameterType = 0
	RootParameterType32BitConstants  RootParameterType = 1
	RootParameterTypeCBV             RootParameterType = 2
	RootParameterTypeSRV             RootParameterType = 3
	RootParameterTypeUAV             RootParameterType = 4
)

type ShaderVisibility uint32

const (
	ShaderVisibilityAll      ShaderVisibility = 0
	ShaderVisibilityVertex   ShaderVisibility = 1
	ShaderVisibilityHull     ShaderVisibility = 2
	ShaderVisibilityDomain   ShaderVisibility = 3
	ShaderVisibilityGeometry ShaderVisibility = 4
	ShaderVisibilityPixel    ShaderVisibility = 5
)

type DescriptorRangeType uint32

const (
	DescriptorRangeTypeSRV     DescriptorRangeType = 0
	DescriptorRangeTypeUAV     DescriptorRangeType = 1
	DescriptorRangeTypeCBV     DescriptorRangeType = 2
	DescriptorRangeTypeSampler DescriptorRangeType = 3
)

const DescriptorRangeOffsetAppend = 0xffffffff

type FillMode uint32

const (
	FillModeWireframe FillMode = 2
	FillModeSolid     FillMode = 3
)

type CullMode uint32

const (
	CullModeNone  CullMode = 1
	CullModeFront CullMode = 2
	CullModeBack  CullMode = 3
)

type ConservativeRasterizationMode uint32

const (
	ConservativeRasterizationModeOff ConservativeRasterizationMode = 0
)

type Blend uint32

const (
	BlendZero        Blend = 1
	BlendOne         Blend = 2
	BlendSrcAlpha    Blend = 5
	BlendInvSrcAlpha Blend = 6
)

type BlendOp uint32

const (
	BlendOpAdd BlendOp = 1
)

type LogicOp uint32

const (
	LogicOpClear LogicOp = 0
	LogicOpSet   LogicOp = 1
	LogicOpCopy  LogicOp = 2
	LogicOpNoop  LogicOp = 4
)

type ColorWriteEnable uint8

const (
	ColorWriteEnableRed   ColorWriteEnable = 1
	ColorWriteEnableGreen ColorWriteEnable = 2
	ColorWriteEnableBlue  ColorWriteEnable = 4
	ColorWriteEnableAlpha ColorWriteEnable = 8
	ColorWriteEnableAll                    = ColorWriteEnableRed | ColorWriteEnableGreen | ColorWriteEnableBlue | ColorWriteEnableAlpha
)

type ComparisonFunc uint32

const (
	ComparisonFuncNever        ComparisonFunc = 1
	ComparisonFuncLess         ComparisonFunc = 2
	ComparisonFuncEqual        ComparisonFunc = 3
	ComparisonFuncLessEqual    ComparisonFunc = 4
	ComparisonFuncGreater      ComparisonFunc = 5
	ComparisonFuncNotEqual     ComparisonFunc = 6
	ComparisonFuncGreaterEqual ComparisonFunc = 7
	ComparisonFuncAlways       ComparisonFunc = 8
)

type DepthWriteMask uint32

const (
	DepthWriteMaskZero DepthWriteMask = 0
	DepthWriteMaskAll  DepthWriteMask = 1
)

type StencilOp uint32

const (
	StencilOpKeep StencilOp = 1
)

const (
	DefaultStencilReadMask  = 0xff
	DefaultStencilWriteMask = 0xff
)

type PrimitiveTopologyType uint32

const (
	PrimitiveTopologyTypeUndefined PrimitiveTopologyType = 0
	PrimitiveTopologyTypePoint     PrimitiveTopologyType = 1
	PrimitiveTopologyTypeLine      PrimitiveTopologyType = 2
	PrimitiveTopologyTypeTriangle  PrimitiveTopologyType = 3
)

type PrimitiveTopology uint32

const (
	PrimitiveTopologyTriangleList  PrimitiveTopology = 4
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 5
)

type InputClassification uint32

const (
	InputClassificationPerVertexData   InputClassification = 0
	InputClassificationPerInstanceData InputClassification = 1
)

const AppendAlignedElement = 0xffffffff

type Filter uint32

const (
	FilterMinMagMipPoint  Filter = 0
	FilterMinMagMipLinear Filter = 0x15
)

type TextureAddressMode uint32

const (
	TextureAddressModeWrap   TextureAddressMode = 1
	TextureAddressModeMirror TextureAddressMode = 2
	TextureAddressModeClamp  TextureAddressMode = 3
)

type SRVDimension uint32

const (
	SRVDimensionTexture2D SRVDimension = 4
)

type RTVDimension uint32

const (
	RTVDimensionTexture2D RTVDimension = 4
)

type FenceFlags uint32

const (
	FenceFlagNone FenceFlags = 0
)

type TextureCopyType uint32

const (
	TextureCopyTypeSubresourceIndex TextureCopyType = 0
	TextureCopyTypePlacedFootprint  TextureCopyType = 1
)

type PipelineStateFlags uint32

const (
	PipelineStateFlagNone PipelineStateFlags = 0
)

type IndexBufferStripCutValue uint32

const (
	IndexBufferStripCutValueDisabled IndexBufferStripCutValue = 0
)

const DefaultShader4ComponentMapping = 0x1688

const (
	DefaultSampleMask             = 0xffffffff
	SimultaneousRenderTargetCount = 8
	Float32Max                    = 3.402823466e+38
	TextureDataPitchAlignment     = 256
	TextureDataPlacementAlignment = 512
	ConstantBufferDataAlignment   = 256
)

type Usage uint32

const (
	UsageShaderInput        Usage = 0x10
	UsageRenderTargetOutput Usage = 0x20
)

type SwapEffect uint32

const (
	SwapEffectDiscard        SwapEffect = 0
	SwapEffectSequential     SwapEffect = 1
	SwapEffectFlipSequential SwapEffect = 3
	SwapEffectFlipDiscard    SwapEffect = 4
)

type SwapChainFlags uint32

const (
	SwapChainFlagNone                       SwapChainFlags = 0
	SwapChainFlagAllowModeSwitch            SwapChainFlags = 2
	SwapChainFlagFrameLatencyWaitableObject SwapChainFlags = 0x40
)

type PresentFlags uint32

const (
	PresentFlagNone PresentFlags = 0
)

type CompileFlags uint32

const (
	CompileDebug             CompileFlags = 1 << 0
	CompileSkipOptimization  CompileFlags = 1 << 2
	CompileWarningsAreErrors CompileFlags = 1 << 18
)
