//go:build windows && amd64

package d3d

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type iD3D12ObjectVtbl struct {
	iUnknownVtbl
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr
}

type iD3D12DeviceChildVtbl struct {
	iD3D12ObjectVtbl
	GetDevice uintptr
}

type iD3D12DeviceVtbl struct {
	iD3D12ObjectVtbl
	GetNodeCount                     uintptr
	CreateCommandQueue               uintptr
	CreateCommandAllocator           uintptr
	CreateGraphicsPipelineState      uintptr
	CreateComputePipelineState       uintptr
	CreateCommandList                uintptr
	CheckFeatureSupport              uintptr
	CreateDescriptorHeap             uintptr
	GetDescriptorHandleIncrementSize uintptr
	CreateRootSignature              uintptr
	CreateConstantBufferView         uintptr
	CreateShaderResourceView         uintptr
	CreateUnorderedAccessView        uintptr
	CreateRenderTargetView           uintptr
	CreateDepthStencilView           uintptr
	CreateSampler                    uintptr
	CopyDescriptors                  uintptr
	CopyDescriptorsSimple            uintptr
	GetResourceAllocationInfo        uintptr
	GetCustomHeapProperties          uintptr
	CreateCommittedResource          uintptr
	CreateHeap                       uintptr
	CreatePlacedResource             uintptr
	CreateReservedResource           uintptr
	CreateSharedHandle               uintptr
	OpenSharedHandle                 uintptr
	OpenSharedHandleByName           uintptr
	MakeResident                     uintptr
	Evict                            uintptr
	CreateFence                      uintptr
	GetDeviceRemovedReason           uintptr
	GetCopyableFootprints            uintptr
	CreateQueryHeap                  uintptr
	SetStablePowerState              uintptr
	CreateCommandSignature           uintptr
	GetResourceTiling                uintptr
	GetAdapterLuid                   uintptr
}

type iD3D12CommandQueueVtbl struct {
	iD3D12DeviceChildVtbl
	UpdateTileMappings    uintptr
	CopyTileMappings      uintptr
	ExecuteCommandLists   uintptr
	SetMarker             uintptr
	BeginEvent            uintptr
	EndEvent              uintptr
	Signal                uintptr
	Wait                  uintptr
	GetTimestampFrequency uintptr
	GetClockCalibration   uintptr
	GetDesc               uintptr
}

type iD3D12CommandAllocatorVtbl struct {
	iD3D12DeviceChildVtbl
	Reset uintptr
}

type iD3D12FenceVtbl struct {
	iD3D12DeviceChildVtbl
	GetCompletedValue    uintptr
	SetEventOnCompletion uintptr
	Signal               uintptr
}

type iD3D12DescriptorHeapVtbl struct {
	iD3D12DeviceChildVtbl
	GetDesc                            uintptr
	GetCPUDescriptorHandleForHeapStart uintptr
	GetGPUDescriptorHandleForHeapStart uintptr
}

type iD3D12ResourceVtbl struct {
	iD3D12DeviceChildVtbl
	Map                  uintptr
	Unmap                uintptr
	GetDesc              uintptr
	GetGPUVirtualAddress uintptr
	WriteToSubresource   uintptr
	ReadFromSubresource  uintptr
	GetHeapProperties    uintptr
}

type iD3D12RootSignatureVtbl struct {
	iD3D12DeviceChildVtbl
}

type iD3D12PipelineStateVtbl struct {
	iD3D12DeviceChildVtbl
	GetCachedBlob uintptr
}

type iD3D12GraphicsCommandListVtbl struct {
	iD3D12DeviceChildVtbl
	GetType                            uintptr
	Close                              uintptr
	Reset                              uintptr
	ClearState                         uintptr
	DrawInstanced                      uintptr
	DrawIndexedInstanced               uintptr
	Dispatch                           uintptr
	CopyBufferRegion                   uintptr
	CopyTextureRegion                  uintptr
	CopyResource                       uintptr
	CopyTiles                          uintptr
	ResolveSubresource                 uintptr
	IASetPrimitiveTopology             uintptr
	RSSetViewports                     uintptr
	RSSetScissorRects                  uintptr
	OMSetBlendFactor                   uintptr
	OMSetStencilRef                    uintptr
	SetPipelineState                   uintptr
	ResourceBarrier                    uintptr
	ExecuteBundle                      uintptr
	SetDescriptorHeaps                 uintptr
	SetComputeRootSignature            uintptr
	SetGraphicsRootSignature           uintptr
	SetComputeRootDescriptorTable      uintptr
	SetGraphicsRootDescriptorTable     uintptr
	SetComputeRoot32BitConstant        uintptr
	SetGraphicsRoot32BitConstant       uintptr
	SetComputeRoot32BitConstants       uintptr
	SetGraphicsRoot32BitConstants      uintptr
	SetComputeRootConstantBufferView   uintptr
	SetGraphicsRootConstantBufferView  uintptr
	SetComputeRootShaderResourceView   uintptr
	SetGraphicsRootShaderResourceView  uintptr
	SetComputeRootUnorderedAccessView  uintptr
	SetGraphicsRootUnorderedAccessView uintptr
	IASetIndexBuffer                   uintptr
	IASetVertexBuffers                 uintptr
	SOSetTargets                       uintptr
	OMSetRenderTargets                 uintptr
	ClearDepthStencilView              uintptr
	ClearRenderTargetView              uintptr
	ClearUnorderedAccessViewUint       uintptr
	ClearUnorderedAccessViewFloat      uintptr
	DiscardResource                    uintptr
	BeginQuery                         uintptr
	EndQuery                           uintptr
	ResolveQueryData                   uintptr
	SetPredication                     uintptr
	SetMarker                          uintptr
	BeginEvent                         uintptr
	EndEvent                           uintptr
	ExecuteIndirect                    uintptr
}

type iD3D12DebugVtbl struct {
	iUnknownVtbl
	EnableDebugLayer uintptr
}

type iD3DBlobVtbl struct {
	iUnknownVtbl
	GetBufferPointer uintptr
	GetBufferSize    uintptr
}

type iDXGIObjectVtbl struct {
	iUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

type iDXGIFactory2Vtbl struct {
	iDXGIObjectVtbl
	EnumAdapters                  uintptr
	MakeWindowAssociation         uintptr
	GetWindowAssociation          uintptr
	CreateSwapChain               uintptr
	CreateSoftwareAdapter         uintptr
	EnumAdapters1                 uintptr
	IsCurrent                     uintptr
	IsWindowedStereoEnabled       uintptr
	CreateSwapChainForHwnd        uintptr
	CreateSwapChainForCoreWindow  uintptr
	GetSharedResourceAdapterLuid  uintptr
	RegisterStereoStatusWindow    uintptr
	RegisterStereoStatusEvent     uintptr
	UnregisterStereoStatus        uintptr
	RegisterOcclusionStatusWindow uintptr
	RegisterOcclusionStatusEvent  uintptr
	UnregisterOcclusionStatus     uintptr
	CreateSwapChainForComposition uintptr
}

type iDXGISwapChain3Vtbl struct {
	iDXGIObjectVtbl
	GetDevice                     uintptr
	Present                       uintptr
	GetBuffer                     uintptr
	SetFullscreenState            uintptr
	GetFullscreenState            uintptr
	GetDesc                       uintptr
	ResizeBuffers                 uintptr
	ResizeTarget                  uintptr
	GetContainingOutput           uintptr
	GetFrameStatistics            uintptr
	GetLastPresentCount           uintptr
	GetDesc1                      uintptr
	GetFullscreenDesc             uintptr
	GetHwnd                       uintptr
	GetCoreWindow                 uintptr
	Present1                      uintptr
	IsTemporaryMonoSupported      uintptr
	GetRestrictToOutput           uintptr
	SetBackgroundColor            uintptr
	GetBackgroundColor            uintptr
	SetRotation                   uintptr
	GetRotation                   uintptr
	SetSourceSize                 uintptr
	GetSourceSize                 uintptr
	SetMaximumFrameLatency        uintptr
	GetMaximumFrameLatency        uintptr
	GetFrameLatencyWaitableObject uintptr
	SetMatrixTransform            uintptr
	GetMatrixTransform            uintptr
	GetCurrentBackBufferIndex     uintptr
	CheckColorSpaceSupport        uintptr
	SetColorSpace1                uintptr
	ResizeBuffers1                uintptr
}
