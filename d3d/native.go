package d3d

import "unsafe"

// Native mirrors of the descriptor structs that carry pointers or unions.
// They are built from the Go descriptions right before a COM call and must
// be kept alive (runtime.KeepAlive) until the call returns.

type comObject interface {
	comPtr() unsafe.Pointer
}

func ptrOf(x interface{}) unsafe.Pointer {
	if o, ok := x.(comObject); ok {
		return o.comPtr()
	}
	return nil
}

type rootParameterNative struct {
	ParameterType    RootParameterType
	_                uint32
	union            [2]uint64
	ShaderVisibility ShaderVisibility
	_                uint32
}

type rootSignatureDescNative struct {
	NumParameters     uint32
	_                 uint32
	pParameters       unsafe.Pointer
	NumStaticSamplers uint32
	_                 uint32
	pStaticSamplers   unsafe.Pointer
	Flags             RootSignatureFlags
	_                 uint32
}

type rootSignatureBuild struct {
	desc   rootSignatureDescNative
	params []rootParameterNative
	src    *RootSignatureDesc
}

func buildRootSignatureDesc(d *RootSignatureDesc) *rootSignatureBuild {
	b := &rootSignatureBuild{
		params: make([]rootParameterNative, len(d.Parameters)),
		src:    d,
	}

	for i, p := range d.Parameters {
		np := &b.params[i]
		np.ParameterType = p.ParameterType
		np.ShaderVisibility = p.ShaderVisibility

		switch p.ParameterType {
		case RootParameterTypeDescriptorTable:
			np.union[0] = uint64(len(p.DescriptorTable))
			if len(p.DescriptorTable) > 0 {
				np.union[1] = uint64(uintptr(unsafe.Pointer(&p.DescriptorTable[0])))
			}
		case RootParameterType32BitConstants:
			np.union[0] = uint64(p.Constants.ShaderRegister) | uint64(p.Constants.RegisterSpace)<<32
			np.union[1] = uint64(p.Constants.Num32BitValues)
		default:
			np.union[0] = uint64(p.Descriptor.ShaderRegister) | uint64(p.Descriptor.RegisterSpace)<<32
		}
	}

	b.desc.NumParameters = uint32(len(b.params))
	if len(b.params) > 0 {
		b.desc.pParameters = unsafe.Pointer(&b.params[0])
	}
	b.desc.NumStaticSamplers = uint32(len(d.StaticSamplers))
	if len(d.StaticSamplers) > 0 {
		b.desc.pStaticSamplers = unsafe.Pointer(&d.StaticSamplers[0])
	}
	b.desc.Flags = d.Flags
	return b
}

type shaderBytecodeNative struct {
	pShaderBytecode unsafe.Pointer
	BytecodeLength  uintptr
}

func bytecodeOf(code []byte) shaderBytecodeNative {
	if len(code) == 0 {
		return shaderBytecodeNative{}
	}
	return shaderBytecodeNative{pShaderBytecode: unsafe.Pointer(&code[0]), BytecodeLength: uintptr(len(code))}
}

type streamOutputDescNative struct {
	pSODeclaration   unsafe.Pointer
	NumEntries       uint32
	_                uint32
	pBufferStrides   unsafe.Pointer
	NumStrides       uint32
	RasterizedStream uint32
}

type inputElementDescNative struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               Format
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       InputClassification
	InstanceDataStepRate uint32
}

type inputLayoutDescNative struct {
	pInputElementDescs unsafe.Pointer
	NumElements        uint32
	_                  uint32
}

type cachedPipelineStateNative struct {
	pCachedBlob           unsafe.Pointer
	CachedBlobSizeInBytes uintptr
}

type graphicsPipelineStateDescNative struct {
	pRootSignature        unsafe.Pointer
	VS                    shaderBytecodeNative
	PS                    shaderBytecodeNative
	DS                    shaderBytecodeNative
	HS                    shaderBytecodeNative
	GS                    shaderBytecodeNative
	StreamOutput          streamOutputDescNative
	BlendState            BlendDesc
	SampleMask            uint32
	RasterizerState       RasterizerDesc
	DepthStencilState     DepthStencilDesc
	InputLayout           inputLayoutDescNative
	IBStripCutValue       IndexBufferStripCutValue
	PrimitiveTopologyType PrimitiveTopologyType
	NumRenderTargets      uint32
	RTVFormats            [SimultaneousRenderTargetCount]Format
	DSVFormat             Format
	SampleDesc            SampleDesc
	NodeMask              uint32
	CachedPSO             cachedPipelineStateNative
	Flags                 PipelineStateFlags
}

type pipelineStateBuild struct {
	desc     graphicsPipelineStateDescNative
	elements []inputElementDescNative
	names    [][]byte
	src      *GraphicsPipelineStateDesc
}

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func buildGraphicsPipelineStateDesc(d *GraphicsPipelineStateDesc) *pipelineStateBuild {
	b := &pipelineStateBuild{
		elements: make([]inputElementDescNative, len(d.InputLayout)),
		names:    make([][]byte, len(d.InputLayout)),
		src:      d,
	}

	for i, e := range d.InputLayout {
		b.names[i] = cString(e.SemanticName)
		b.elements[i] = inputElementDescNative{
			SemanticName:         &b.names[i][0],
			SemanticIndex:        e.SemanticIndex,
			Format:               e.Format,
			InputSlot:            e.InputSlot,
			AlignedByteOffset:    e.AlignedByteOffset,
			InputSlotClass:       e.InputSlotClass,
			InstanceDataStepRate: e.InstanceDataStepRate,
		}
	}

	b.desc = graphicsPipelineStateDescNative{
		pRootSignature:        ptrOf(d.RootSignature),
		VS:                    bytecodeOf(d.VS),
		PS:                    bytecodeOf(d.PS),
		BlendState:            d.BlendState,
		SampleMask:            d.SampleMask,
		RasterizerState:       d.RasterizerState,
		DepthStencilState:     d.DepthStencilState,
		IBStripCutValue:       IndexBufferStripCutValueDisabled,
		PrimitiveTopologyType: d.PrimitiveTopologyType,
		NumRenderTargets:      d.NumRenderTargets,
		RTVFormats:            d.RTVFormats,
		DSVFormat:             d.DSVFormat,
		SampleDesc:            d.SampleDesc,
		NodeMask:              d.NodeMask,
		Flags:                 d.Flags,
	}
	b.desc.InputLayout.NumElements = uint32(len(b.elements))
	if len(b.elements) > 0 {
		b.desc.InputLayout.pInputElementDescs = unsafe.Pointer(&b.elements[0])
	}
	return b
}

type resourceBarrierNative struct {
	Type        ResourceBarrierType
	Flags       ResourceBarrierFlags
	pResource   unsafe.Pointer
	Subresource uint32
	StateBefore ResourceStates
	StateAfter  ResourceStates
	_           uint32
}

func buildResourceBarriers(barriers []ResourceBarrier) []resourceBarrierNative {
	out := make([]resourceBarrierNative, len(barriers))
	for i, b := range barriers {
		out[i] = resourceBarrierNative{
			Type:        b.Type,
			Flags:       b.Flags,
			pResource:   ptrOf(b.Transition.Resource),
			Subresource: b.Transition.Subresource,
			StateBefore: b.Transition.StateBefore,
			StateAfter:  b.Transition.StateAfter,
		}
	}
	return out
}

type textureCopyLocationNative struct {
	pResource unsafe.Pointer
	Type      TextureCopyType
	_         uint32
	union     PlacedSubresourceFootprint
}

func buildTextureCopyLocation(l *TextureCopyLocation) textureCopyLocationNative {
	n := textureCopyLocationNative{
		pResource: ptrOf(l.Resource),
		Type:      l.Type,
	}
	if l.Type == TextureCopyTypePlacedFootprint {
		n.union = l.PlacedFootprint
	} else {
		n.union.Offset = uint64(l.SubresourceIndex)
	}
	return n
}

type shaderResourceViewDescNative struct {
	Format                  Format
	ViewDimension           SRVDimension
	Shader4ComponentMapping uint32
	_                       uint32
	union                   [3]uint64
}

func buildShaderResourceViewDesc(d *ShaderResourceViewDesc) shaderResourceViewDescNative {
	n := shaderResourceViewDescNative{
		Format:                  d.Format,
		ViewDimension:           d.ViewDimension,
		Shader4ComponentMapping: d.Shader4ComponentMapping,
	}
	*(*Tex2DSRV)(unsafe.Pointer(&n.union)) = d.Texture2D
	return n
}

type renderTargetViewDescNative struct {
	Format        Format
	ViewDimension RTVDimension
	union         [2]uint64
}

func buildRenderTargetViewDesc(d *RenderTargetViewDesc) renderTargetViewDescNative {
	n := renderTargetViewDescNative{
		Format:        d.Format,
		ViewDimension: d.ViewDimension,
	}
	*(*Tex2DRTV)(unsafe.Pointer(&n.union)) = d.Texture2D
	return n
}
