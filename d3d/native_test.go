package d3d

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCOM struct {
	id int
}

func (f *fakeCOM) comPtr() unsafe.Pointer { return unsafe.Pointer(f) }
func (f *fakeCOM) Release()               {}

type fakeCOMResource struct {
	fakeCOM
}

func (f *fakeCOMResource) SetName(string) error                       { return nil }
func (f *fakeCOMResource) Map(uint32, *Range) (unsafe.Pointer, error) { return nil, nil }
func (f *fakeCOMResource) Unmap(uint32, *Range)                       {}
func (f *fakeCOMResource) Desc() ResourceDesc                         { return ResourceDesc{} }
func (f *fakeCOMResource) GPUVirtualAddress() GPUVirtualAddress       { return 0 }

func TestPtrOf(t *testing.T) {
	obj := &fakeCOM{}
	assert.Equal(t, unsafe.Pointer(obj), ptrOf(obj))
	assert.True(t, ptrOf(nil) == nil)
	assert.True(t, ptrOf(struct{}{}) == nil)

	var typedNil *fakeCOM
	assert.True(t, ptrOf(typedNil) == nil)
}

func TestBuildRootSignatureDesc(t *testing.T) {
	ranges := []DescriptorRange{{
		RangeType:          DescriptorRangeTypeCBV,
		NumDescriptors:     2,
		BaseShaderRegister: 1,
	}}
	desc := &RootSignatureDesc{
		Parameters: []RootParameter{
			{
				ParameterType:    RootParameterTypeCBV,
				ShaderVisibility: ShaderVisibilityVertex,
				Descriptor:       RootDescriptor{ShaderRegister: 3, RegisterSpace: 1},
			},
			{
				ParameterType:    RootParameterTypeDescriptorTable,
				ShaderVisibility: ShaderVisibilityPixel,
				DescriptorTable:  ranges,
			},
			{
				ParameterType: RootParameterType32BitConstants,
				Constants:     RootConstants{ShaderRegister: 4, RegisterSpace: 2, Num32BitValues: 16},
			},
		},
		Flags: RootSignatureFlagAllowInputAssemblerInputLayout,
	}

	b := buildRootSignatureDesc(desc)
	require.Len(t, b.params, 3)
	assert.Equal(t, uint32(3), b.desc.NumParameters)
	assert.Equal(t, unsafe.Pointer(&b.params[0]), b.desc.pParameters)
	assert.Equal(t, uint32(0), b.desc.NumStaticSamplers)
	assert.True(t, b.desc.pStaticSamplers == nil)
	assert.Equal(t, RootSignatureFlagAllowInputAssemblerInputLayout, b.desc.Flags)

	cbv := b.params[0]
	assert.Equal(t, RootParameterTypeCBV, cbv.ParameterType)
	assert.Equal(t, ShaderVisibilityVertex, cbv.ShaderVisibility)
	assert.Equal(t, uint64(3)|uint64(1)<<32, cbv.union[0])

	table := b.params[1]
	assert.Equal(t, uint64(1), table.union[0])
	assert.Equal(t, uint64(uintptr(unsafe.Pointer(&ranges[0]))), table.union[1])
	assert.Equal(t, ShaderVisibilityPixel, table.ShaderVisibility)

	consts := b.params[2]
	assert.Equal(t, uint64(4)|uint64(2)<<32, consts.union[0])
	assert.Equal(t, uint64(16), consts.union[1])
}

func TestBuildGraphicsPipelineStateDesc(t *testing.T) {
	rs := &fakeCOM{}
	vs := []byte{1, 2, 3}
	ps := []byte{4, 5}
	desc := &GraphicsPipelineStateDesc{
		RootSignature: rs,
		VS:            vs,
		PS:            ps,
		SampleMask:    DefaultSampleMask,
		InputLayout: []InputElementDesc{
			{SemanticName: "POSITION", Format: FormatR32G32B32Float},
			{SemanticName: "TEXCOORD", Format: FormatR32G32Float, AlignedByteOffset: 12},
		},
		PrimitiveTopologyType: PrimitiveTopologyTypeTriangle,
		NumRenderTargets:      1,
		RTVFormats:            [SimultaneousRenderTargetCount]Format{FormatR8G8B8A8UNormSRGB},
		SampleDesc:            SampleDesc{Count: 1},
	}

	b := buildGraphicsPipelineStateDesc(desc)
	assert.Equal(t, unsafe.Pointer(rs), b.desc.pRootSignature)
	assert.Equal(t, unsafe.Pointer(&vs[0]), b.desc.VS.pShaderBytecode)
	assert.Equal(t, uintptr(3), b.desc.VS.BytecodeLength)
	assert.Equal(t, uintptr(2), b.desc.PS.BytecodeLength)
	assert.True(t, b.desc.GS.pShaderBytecode == nil)
	assert.Equal(t, uint32(2), b.desc.InputLayout.NumElements)
	assert.Equal(t, unsafe.Pointer(&b.elements[0]), b.desc.InputLayout.pInputElementDescs)
	assert.Equal(t, uint32(12), b.elements[1].AlignedByteOffset)
	assert.Equal(t, []byte("POSITION\x00"), b.names[0])
	assert.Equal(t, &b.names[1][0], b.elements[1].SemanticName)
	assert.Equal(t, FormatR8G8B8A8UNormSRGB, b.desc.RTVFormats[0])
	assert.Equal(t, uint32(DefaultSampleMask), b.desc.SampleMask)
}

func TestBuildResourceBarriers(t *testing.T) {
	res := &fakeCOMResource{}
	n := buildResourceBarriers([]ResourceBarrier{{
		Type: ResourceBarrierTypeTransition,
		Transition: ResourceTransitionBarrier{
			Resource:    res,
			Subresource: ResourceBarrierAllSubresources,
			StateBefore: ResourceStatePresent,
			StateAfter:  ResourceStateRenderTarget,
		},
	}})

	require.Len(t, n, 1)
	assert.Equal(t, unsafe.Pointer(res), n[0].pResource)
	assert.Equal(t, uint32(ResourceBarrierAllSubresources), n[0].Subresource)
	assert.Equal(t, ResourceStatePresent, n[0].StateBefore)
	assert.Equal(t, ResourceStateRenderTarget, n[0].StateAfter)
}

func TestBuildTextureCopyLocation(t *testing.T) {
	res := &fakeCOMResource{}

	byIndex := buildTextureCopyLocation(&TextureCopyLocation{
		Resource:         res,
		Type:             TextureCopyTypeSubresourceIndex,
		SubresourceIndex: 7,
	})
	assert.Equal(t, unsafe.Pointer(res), byIndex.pResource)
	assert.Equal(t, uint32(7), *(*uint32)(unsafe.Pointer(&byIndex.union)))

	fp := PlacedSubresourceFootprint{
		Offset: 512,
		Footprint: SubresourceFootprint{
			Format: FormatR8G8B8A8UNorm, Width: 10, Height: 4, Depth: 1, RowPitch: 256,
		},
	}
	placed := buildTextureCopyLocation(&TextureCopyLocation{
		Resource:        res,
		Type:            TextureCopyTypePlacedFootprint,
		PlacedFootprint: fp,
	})
	assert.Equal(t, fp, placed.union)
}

func TestBuildViewDescs(t *testing.T) {
	srv := buildShaderResourceViewDesc(&ShaderResourceViewDesc{
		Format:                  FormatR8G8B8A8UNorm,
		ViewDimension:           SRVDimensionTexture2D,
		Shader4ComponentMapping: DefaultShader4ComponentMapping,
		Texture2D:               Tex2DSRV{MipLevels: 1},
	})
	assert.Equal(t, Tex2DSRV{MipLevels: 1}, *(*Tex2DSRV)(unsafe.Pointer(&srv.union)))
	assert.Equal(t, uint32(0x1688), srv.Shader4ComponentMapping)

	rtv := buildRenderTargetViewDesc(&RenderTargetViewDesc{
		Format:        FormatR8G8B8A8UNormSRGB,
		ViewDimension: RTVDimensionTexture2D,
		Texture2D:     Tex2DRTV{MipSlice: 2},
	})
	assert.Equal(t, Tex2DRTV{MipSlice: 2}, *(*Tex2DRTV)(unsafe.Pointer(&rtv.union)))
}
