package gfx

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
	"github.com/gpusamples/d3d12hello/d3d/d3dtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShader(t *testing.T) {
	drv := d3dtest.NewDriver()
	drv.Diagnostics["VSMain"] = "shaders.hlsl(3,1): warning X3206: implicit truncation"

	vs, err := LoadShader(drv, []byte("float4 VSMain() : SV_POSITION { return 0; }"), "shaders.hlsl", "VSMain", "vs_5_0")
	require.NoError(t, err)
	assert.Equal(t, []byte("dxbc:VSMain:vs_5_0"), vs.Bytecode)
	assert.Equal(t, d3d.CompileWarningsAreErrors, drv.Compiled[0].Flags)
	assert.Equal(t, []string{drv.Diagnostics["VSMain"]}, drv.DebugOutput)
}

func TestLoadShaderFailure(t *testing.T) {
	drv := d3dtest.NewDriver()
	drv.CompileErrors["PSMain"] = d3d.EFail
	drv.Diagnostics["PSMain"] = "shaders.hlsl(9,5): error X3004: undeclared identifier"

	_, err := LoadShader(drv, []byte("x"), "shaders.hlsl", "PSMain", "ps_5_0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, d3d.EFail))
	assert.Contains(t, errors.FlattenDetails(err), "undeclared identifier")
	assert.Len(t, drv.DebugOutput, 1)
}

func TestSampleRootSignatureDesc(t *testing.T) {
	desc := SampleRootSignatureDesc()
	require.Len(t, desc.Parameters, 4)
	assert.Equal(t, d3d.RootSignatureFlagAllowInputAssemblerInputLayout, desc.Flags)

	world := desc.Parameters[RootSlotWorldCBV]
	assert.Equal(t, d3d.RootParameterTypeCBV, world.ParameterType)
	assert.Equal(t, uint32(0), world.Descriptor.ShaderRegister)

	viewProj := desc.Parameters[RootSlotViewProjTable]
	assert.Equal(t, d3d.ShaderVisibilityVertex, viewProj.ShaderVisibility)
	assert.Equal(t, []d3d.DescriptorRange{{
		RangeType:          d3d.DescriptorRangeTypeCBV,
		NumDescriptors:     2,
		BaseShaderRegister: 1,
	}}, viewProj.DescriptorTable)

	tex := desc.Parameters[RootSlotTextureTable]
	assert.Equal(t, d3d.ShaderVisibilityPixel, tex.ShaderVisibility)
	assert.Equal(t, d3d.DescriptorRangeTypeSRV, tex.DescriptorTable[0].RangeType)

	sampler := desc.Parameters[RootSlotSamplerTable]
	assert.Equal(t, d3d.DescriptorRangeTypeSampler, sampler.DescriptorTable[0].RangeType)
}

func TestNewRootSignature(t *testing.T) {
	drv := d3dtest.NewDriver()
	_, err := drv.CreateDevice(d3d.FeatureLevel11_0)
	require.NoError(t, err)
	dev := drv.Device()

	rs, err := NewRootSignature(dev, drv, SampleRootSignatureDesc())
	require.NoError(t, err)
	assert.Equal(t, []byte("rootsig:4"), dev.RootSignatures[0].Blob)
	assert.Equal(t, 1, drv.Log.Count("Driver.SerializeRootSignature(1)"))

	rs.Release()
	assert.True(t, dev.RootSignatures[0].Released)

	drv.SerializeError = errors.WithDetail(d3d.EInvalidArg, "root parameter 2 overlaps")
	_, err = NewRootSignature(dev, drv, SampleRootSignatureDesc())
	assert.True(t, errors.Is(err, d3d.EInvalidArg))
	assert.Len(t, dev.RootSignatures, 1)
}

func TestSimplePipelineDesc(t *testing.T) {
	drv := d3dtest.NewDriver()
	_, err := drv.CreateDevice(d3d.FeatureLevel11_0)
	require.NoError(t, err)
	dev := drv.Device()

	rs, err := NewRootSignature(dev, drv, SampleRootSignatureDesc())
	require.NoError(t, err)
	vs := &Shader{Bytecode: []byte("vs")}
	ps := &Shader{Bytecode: []byte("ps")}

	desc := SimplePipelineDesc(P3FT2FInputLayout(), rs, vs, ps)
	assert.Equal(t, uint32(1), desc.NumRenderTargets)
	assert.Equal(t, d3d.FormatR8G8B8A8UNormSRGB, desc.RTVFormats[0])
	assert.Equal(t, d3d.FormatUnknown, desc.RTVFormats[1])
	assert.Equal(t, uint32(d3d.DefaultSampleMask), desc.SampleMask)
	assert.Equal(t, d3d.PrimitiveTopologyTypeTriangle, desc.PrimitiveTopologyType)
	assert.Equal(t, d3d.CullModeBack, desc.RasterizerState.CullMode)
	assert.Equal(t, int32(0), desc.DepthStencilState.DepthEnable)
	assert.Equal(t, int32(0), desc.DepthStencilState.StencilEnable)
	for _, rt := range desc.BlendState.RenderTarget {
		assert.Equal(t, int32(0), rt.BlendEnable)
		assert.Equal(t, d3d.ColorWriteEnableAll, rt.RenderTargetWriteMask)
	}

	pso, err := NewPipelineState(dev, &desc)
	require.NoError(t, err)
	assert.Len(t, dev.PipelineDescs, 1)
	pso.Release()
	assert.True(t, dev.Pipelines[0].Released)
}

func TestNewPipelineStateWithoutShaders(t *testing.T) {
	dev := newDevice(t)
	_, err := NewPipelineState(dev, &d3d.GraphicsPipelineStateDesc{})
	assert.True(t, errors.Is(err, d3d.EInvalidArg))
}
