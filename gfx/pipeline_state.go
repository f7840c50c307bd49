package gfx

import (
	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

func defaultBlendDesc() d3d.BlendDesc {
	var desc d3d.BlendDesc
	for i := range desc.RenderTarget {
		desc.RenderTarget[i] = d3d.RenderTargetBlendDesc{
			SrcBlend:              d3d.BlendOne,
			DestBlend:             d3d.BlendZero,
			BlendOp:               d3d.BlendOpAdd,
			SrcBlendAlpha:         d3d.BlendOne,
			DestBlendAlpha:        d3d.BlendZero,
			BlendOpAlpha:          d3d.BlendOpAdd,
			LogicOp:               d3d.LogicOpNoop,
			RenderTargetWriteMask: d3d.ColorWriteEnableAll,
		}
	}
	return desc
}

func defaultRasterizerDesc() d3d.RasterizerDesc {
	return d3d.RasterizerDesc{
		FillMode:        d3d.FillModeSolid,
		CullMode:        d3d.CullModeBack,
		DepthClipEnable: 1,
	}
}

func disabledDepthStencilDesc() d3d.DepthStencilDesc {
	op := d3d.DepthStencilOpDesc{
		StencilFailOp:      d3d.StencilOpKeep,
		StencilDepthFailOp: d3d.StencilOpKeep,
		StencilPassOp:      d3d.StencilOpKeep,
		StencilFunc:        d3d.ComparisonFuncAlways,
	}
	return d3d.DepthStencilDesc{
		DepthWriteMask:   d3d.DepthWriteMaskAll,
		DepthFunc:        d3d.ComparisonFuncLess,
		StencilReadMask:  d3d.DefaultStencilReadMask,
		StencilWriteMask: d3d.DefaultStencilWriteMask,
		FrontFace:        op,
		BackFace:         op,
	}
}

// SimplePipelineDesc is an opaque, unblended, depthless triangle pipeline
// drawing into one sRGB render target.
func SimplePipelineDesc(inputLayout []d3d.InputElementDesc, rootSignature *RootSignature, vs, ps *Shader) d3d.GraphicsPipelineStateDesc {
	desc := d3d.GraphicsPipelineStateDesc{
		RootSignature:         rootSignature.Signature,
		VS:                    vs.Bytecode,
		PS:                    ps.Bytecode,
		BlendState:            defaultBlendDesc(),
		SampleMask:            d3d.DefaultSampleMask,
		RasterizerState:       defaultRasterizerDesc(),
		DepthStencilState:     disabledDepthStencilDesc(),
		InputLayout:           inputLayout,
		PrimitiveTopologyType: d3d.PrimitiveTopologyTypeTriangle,
		NumRenderTargets:      1,
		SampleDesc:            d3d.SampleDesc{Count: 1},
	}
	desc.RTVFormats[0] = d3d.FormatR8G8B8A8UNormSRGB
	return desc
}

type PipelineState struct {
	State d3d.PipelineState
}

func NewPipelineState(device d3d.Device, desc *d3d.GraphicsPipelineStateDesc) (*PipelineState, error) {
	state, err := device.CreateGraphicsPipelineState(desc)
	if err != nil {
		return nil, errors.Wrap(err, "gfx: creating graphics pipeline state")
	}
	return &PipelineState{State: state}, nil
}

func (p *PipelineState) Release() {
	if p == nil || p.State == nil {
		return
	}
	p.State.Release()
	p.State = nil
}
