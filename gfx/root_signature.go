package gfx

import (
	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

type RootSignatureSerializer interface {
	SerializeRootSignature(desc *d3d.RootSignatureDesc, version d3d.RootSignatureVersion) ([]byte, error)
}

// Root parameter slots of the sample's root signature.
const (
	RootSlotWorldCBV      = 0
	RootSlotViewProjTable = 1
	RootSlotTextureTable  = 2
	RootSlotSamplerTable  = 3
)

// SampleRootSignatureDesc describes the fixed layout the shaders expect:
// the world matrix as a root CBV at b0, a table of two CBVs at b1 (view and
// projection), a table with one SRV at t0 and a table with one sampler at s0.
func SampleRootSignatureDesc() d3d.RootSignatureDesc {
	return d3d.RootSignatureDesc{
		Parameters: []d3d.RootParameter{
			RootSlotWorldCBV: {
				ParameterType:    d3d.RootParameterTypeCBV,
				ShaderVisibility: d3d.ShaderVisibilityVertex,
				Descriptor:       d3d.RootDescriptor{ShaderRegister: 0, RegisterSpace: 0},
			},
			RootSlotViewProjTable: {
				ParameterType:    d3d.RootParameterTypeDescriptorTable,
				ShaderVisibility: d3d.ShaderVisibilityVertex,
				DescriptorTable: []d3d.DescriptorRange{{
					RangeType:          d3d.DescriptorRangeTypeCBV,
					NumDescriptors:     2,
					BaseShaderRegister: 1,
				}},
			},
			RootSlotTextureTable: {
				ParameterType:    d3d.RootParameterTypeDescriptorTable,
				ShaderVisibility: d3d.ShaderVisibilityPixel,
				DescriptorTable: []d3d.DescriptorRange{{
					RangeType:          d3d.DescriptorRangeTypeSRV,
					NumDescriptors:     1,
					BaseShaderRegister: 0,
				}},
			},
			RootSlotSamplerTable: {
				ParameterType:    d3d.RootParameterTypeDescriptorTable,
				ShaderVisibility: d3d.ShaderVisibilityPixel,
				DescriptorTable: []d3d.DescriptorRange{{
					RangeType:          d3d.DescriptorRangeTypeSampler,
					NumDescriptors:     1,
					BaseShaderRegister: 0,
				}},
			},
		},
		Flags: d3d.RootSignatureFlagAllowInputAssemblerInputLayout,
	}
}

type RootSignature struct {
	Signature d3d.RootSignature
	Desc      d3d.RootSignatureDesc
}

func NewRootSignature(device d3d.Device, serializer RootSignatureSerializer, desc d3d.RootSignatureDesc) (*RootSignature, error) {
	blob, err := serializer.SerializeRootSignature(&desc, d3d.RootSignatureVersion1)
	if err != nil {
		return nil, errors.Wrap(err, "gfx: serializing root signature")
	}

	sig, err := device.CreateRootSignature(0, blob)
	if err != nil {
		return nil, errors.Wrap(err, "gfx: creating root signature")
	}

	return &RootSignature{Signature: sig, Desc: desc}, nil
}

func (r *RootSignature) Release() {
	if r == nil || r.Signature == nil {
		return
	}
	r.Signature.Release()
	r.Signature = nil
}
