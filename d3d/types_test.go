package d3d

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestNativeLayoutSizes(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layouts are checked against 64-bit sizes")
	}

	sizes := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"D3D12_COMMAND_QUEUE_DESC", unsafe.Sizeof(CommandQueueDesc{}), 16},
		{"D3D12_DESCRIPTOR_HEAP_DESC", unsafe.Sizeof(DescriptorHeapDesc{}), 16},
		{"D3D12_HEAP_PROPERTIES", unsafe.Sizeof(HeapProperties{}), 20},
		{"D3D12_RESOURCE_DESC", unsafe.Sizeof(ResourceDesc{}), 56},
		{"D3D12_VIEWPORT", unsafe.Sizeof(Viewport{}), 24},
		{"D3D12_RECT", unsafe.Sizeof(Rect{}), 16},
		{"D3D12_VERTEX_BUFFER_VIEW", unsafe.Sizeof(VertexBufferView{}), 16},
		{"D3D12_CONSTANT_BUFFER_VIEW_DESC", unsafe.Sizeof(ConstantBufferViewDesc{}), 16},
		{"D3D12_SAMPLER_DESC", unsafe.Sizeof(SamplerDesc{}), 52},
		{"D3D12_PLACED_SUBRESOURCE_FOOTPRINT", unsafe.Sizeof(PlacedSubresourceFootprint{}), 32},
		{"D3D12_DESCRIPTOR_RANGE", unsafe.Sizeof(DescriptorRange{}), 20},
		{"D3D12_STATIC_SAMPLER_DESC", unsafe.Sizeof(StaticSamplerDesc{}), 52},
		{"D3D12_RENDER_TARGET_BLEND_DESC", unsafe.Sizeof(RenderTargetBlendDesc{}), 40},
		{"D3D12_BLEND_DESC", unsafe.Sizeof(BlendDesc{}), 328},
		{"D3D12_RASTERIZER_DESC", unsafe.Sizeof(RasterizerDesc{}), 44},
		{"D3D12_DEPTH_STENCIL_DESC", unsafe.Sizeof(DepthStencilDesc{}), 52},
		{"DXGI_SWAP_CHAIN_DESC", unsafe.Sizeof(SwapChainDesc{}), 72},
		{"D3D12_FEATURE_DATA_D3D12_OPTIONS", unsafe.Sizeof(FeatureDataOptions{}), 60},
		{"D3D12_ROOT_PARAMETER", unsafe.Sizeof(rootParameterNative{}), 32},
		{"D3D12_ROOT_SIGNATURE_DESC", unsafe.Sizeof(rootSignatureDescNative{}), 40},
		{"D3D12_INPUT_ELEMENT_DESC", unsafe.Sizeof(inputElementDescNative{}), 32},
		{"D3D12_GRAPHICS_PIPELINE_STATE_DESC", unsafe.Sizeof(graphicsPipelineStateDescNative{}), 656},
		{"D3D12_RESOURCE_BARRIER", unsafe.Sizeof(resourceBarrierNative{}), 32},
		{"D3D12_TEXTURE_COPY_LOCATION", unsafe.Sizeof(textureCopyLocationNative{}), 48},
		{"D3D12_SHADER_RESOURCE_VIEW_DESC", unsafe.Sizeof(shaderResourceViewDescNative{}), 40},
		{"D3D12_RENDER_TARGET_VIEW_DESC", unsafe.Sizeof(renderTargetViewDescNative{}), 24},
	}

	for _, s := range sizes {
		assert.Equal(t, s.want, s.got, s.name)
	}
}

func TestPipelineStateDescOffsets(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layouts are checked against 64-bit offsets")
	}

	var d graphicsPipelineStateDescNative
	assert.Equal(t, uintptr(120), unsafe.Offsetof(d.BlendState))
	assert.Equal(t, uintptr(448), unsafe.Offsetof(d.SampleMask))
	assert.Equal(t, uintptr(552), unsafe.Offsetof(d.InputLayout))
	assert.Equal(t, uintptr(580), unsafe.Offsetof(d.RTVFormats))
	assert.Equal(t, uintptr(632), unsafe.Offsetof(d.CachedPSO))
}

func TestDescriptorHandleOffset(t *testing.T) {
	cpu := CPUDescriptorHandle{Ptr: 0x1000}
	assert.Equal(t, uintptr(0x1000), cpu.Offset(0, 32).Ptr)
	assert.Equal(t, uintptr(0x1000+3*32), cpu.Offset(3, 32).Ptr)

	gpu := GPUDescriptorHandle{Ptr: 0x10_0000_0000}
	assert.Equal(t, uint64(0x10_0000_0000+2*64), gpu.Offset(2, 64).Ptr)
}

func TestGenericReadState(t *testing.T) {
	assert.Equal(t, ResourceStates(0xac3), ResourceStateGenericRead)
	assert.Equal(t, ColorWriteEnable(0xf), ColorWriteEnableAll)
}
