package renderer

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/assets"
	"github.com/gpusamples/d3d12hello/d3d"
	"github.com/gpusamples/d3d12hello/d3d/d3dtest"
	"github.com/gpusamples/d3d12hello/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	width, height int32
}

func (w *fakeWindow) Handle() uintptr { return 0xbeef }

func (w *fakeWindow) ClientSize() (int32, int32) { return w.width, w.height }

func newTestRenderer(t *testing.T, cfg Config) (*Renderer, *d3dtest.Driver, *fakeWindow) {
	t.Helper()

	a, err := assets.Load()
	require.NoError(t, err)

	drv := d3dtest.NewDriver()
	win := &fakeWindow{width: 800, height: 600}
	r, err := New(drv, win, cfg, a)
	require.NoError(t, err)
	return r, drv, win
}

func swapChainOf(t *testing.T, drv *d3dtest.Driver) *d3dtest.SwapChain {
	t.Helper()
	require.Len(t, drv.Factories, 1)
	require.Len(t, drv.Factories[0].SwapChains, 1)
	return drv.Factories[0].SwapChains[0]
}

func TestNew(t *testing.T) {
	r, drv, _ := newTestRenderer(t, DefaultConfig())
	dev := drv.Device()

	assert.False(t, drv.DebugLayerEnabled)
	assert.Equal(t, d3d.FeatureLevel11_0, dev.FeatureLevel)

	factory := drv.Factories[0]
	assert.False(t, factory.Debug)
	assert.True(t, factory.Released)
	desc := factory.Descs[0]
	assert.Equal(t, uint32(BackBufferCount), desc.BufferCount)
	assert.Equal(t, d3d.FormatR8G8B8A8UNorm, desc.BufferDesc.Format)
	assert.Equal(t, d3d.UsageRenderTargetOutput, desc.BufferUsage)
	assert.Equal(t, d3d.SwapEffectFlipSequential, desc.SwapEffect)
	assert.Equal(t, uintptr(0xbeef), desc.OutputWindow)
	assert.Equal(t, int32(1), desc.Windowed)

	require.Len(t, dev.Heaps, 3)
	assert.Equal(t, d3d.DescriptorHeapDesc{Type: d3d.DescriptorHeapTypeRTV, NumDescriptors: 4}, dev.Heaps[0].DescData)
	assert.Equal(t, d3d.DescriptorHeapDesc{Type: d3d.DescriptorHeapTypeCBVSRVUAV, NumDescriptors: 3, Flags: d3d.DescriptorHeapFlagShaderVisible}, dev.Heaps[1].DescData)
	assert.Equal(t, d3d.DescriptorHeapDesc{Type: d3d.DescriptorHeapTypeSampler, NumDescriptors: 1, Flags: d3d.DescriptorHeapFlagShaderVisible}, dev.Heaps[2].DescData)

	for _, buf := range []*gfx.UploadBuffer{r.worldMatrix, r.viewMatrix, r.projMatrix} {
		assert.Equal(t, 256, buf.Len())
	}
	assert.Equal(t, d3d.ConstantBufferViewDesc{BufferLocation: r.viewMatrix.GPUVirtualAddress(), SizeInBytes: 256}, dev.CBVs[r.cbvHeap.CPU(0).Ptr])
	assert.Equal(t, d3d.ConstantBufferViewDesc{BufferLocation: r.projMatrix.GPUVirtualAddress(), SizeInBytes: 256}, dev.CBVs[r.cbvHeap.CPU(1).Ptr])

	srv := dev.Views[r.cbvHeap.CPU(2).Ptr]
	require.NotNil(t, srv.SRV)
	assert.Equal(t, r.texture.Resource, srv.Resource)
	assert.Equal(t, d3d.FormatR8G8B8A8UNorm, srv.SRV.Format)
	assert.Equal(t, d3d.SRVDimensionTexture2D, srv.SRV.ViewDimension)
	assert.Equal(t, uint32(d3d.DefaultShader4ComponentMapping), srv.SRV.Shader4ComponentMapping)
	assert.Equal(t, uint32(1), srv.SRV.Texture2D.MipLevels)

	sampler := dev.Samplers[r.samplerHeap.CPU(0).Ptr]
	assert.Equal(t, d3d.FilterMinMagMipLinear, sampler.Filter)
	assert.Equal(t, d3d.TextureAddressModeWrap, sampler.AddressU)
	assert.Equal(t, d3d.TextureAddressModeWrap, sampler.AddressW)
	assert.Equal(t, uint32(1), sampler.MaxAnisotropy)
	assert.Equal(t, d3d.ComparisonFuncAlways, sampler.ComparisonFunc)
	assert.Equal(t, float32(d3d.Float32Max), sampler.MaxLOD)

	require.Len(t, drv.Compiled, 2)
	targets := map[string]string{}
	for _, c := range drv.Compiled {
		targets[c.EntryPoint] = c.Target
		assert.Equal(t, d3d.CompileWarningsAreErrors, c.Flags)
	}
	assert.Equal(t, map[string]string{"VSMain": "vs_5_0", "PSMain": "ps_5_0"}, targets)

	require.Len(t, dev.PipelineDescs, 1)
	assert.Equal(t, []byte("dxbc:VSMain:vs_5_0"), dev.PipelineDescs[0].VS)
	assert.Equal(t, []byte("dxbc:PSMain:ps_5_0"), dev.PipelineDescs[0].PS)
	assert.Equal(t, uint32(60), r.vertexBuffer.View.SizeInBytes)
	assert.Equal(t, uint32(20), r.vertexBuffer.View.StrideInBytes)

	// The texture upload ran to completion and the staging buffer is gone.
	list := dev.Lists[0]
	require.Len(t, list.Submitted, 1)
	assert.Equal(t, []string{"CopyTextureRegion", "ResourceBarrier(0x400->0xac3)"}, list.Submitted[0])
	assert.False(t, list.Closed)
	assert.Equal(t, 1, dev.Allocators[0].Resets)

	var staging *d3dtest.Resource
	for _, res := range dev.Resources {
		if res.DescData.Dimension == d3d.ResourceDimensionBuffer && res.DescData.Width == 10<<20 {
			staging = res
		}
	}
	require.NotNil(t, staging)
	assert.True(t, staging.Released)
	assert.False(t, r.texture.Resource.(*d3dtest.Resource).Released)
}

func TestNewWithDebugLayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DebugLayer = true
	_, drv, _ := newTestRenderer(t, cfg)

	assert.True(t, drv.DebugLayerEnabled)
	assert.True(t, drv.Factories[0].Debug)
	assert.Less(t, drv.Log.Index("Driver.EnableDebugLayer", 0), drv.Log.Index(fmt.Sprintf("Driver.CreateDevice(%#x)", uint32(d3d.FeatureLevel11_0)), 0))
}

func TestNewReleasesOnFailure(t *testing.T) {
	a, err := assets.Load()
	require.NoError(t, err)

	drv := d3dtest.NewDriver()
	drv.CompileErrors["PSMain"] = d3d.EFail
	drv.Diagnostics["PSMain"] = "shaders.hlsl(40,12): error X3004: undeclared identifier 'texx'"

	r, err := New(drv, &fakeWindow{width: 800, height: 600}, DefaultConfig(), a)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, d3d.EFail))

	dev := drv.Device()
	assert.True(t, dev.Released)
	assert.True(t, dev.Queues[0].Released)
	assert.True(t, drv.Factories[0].SwapChains[0].Released)
	for _, res := range dev.Resources {
		assert.True(t, res.Released)
	}
	for _, h := range dev.Heaps {
		assert.True(t, h.Released)
	}
	assert.Equal(t, []string{drv.Diagnostics["PSMain"]}, drv.DebugOutput)
}

func TestFrameRecordsCommands(t *testing.T) {
	r, drv, _ := newTestRenderer(t, DefaultConfig())
	dev := drv.Device()
	sc := swapChainOf(t, drv)

	require.NoError(t, r.Frame())

	list := dev.Lists[0]
	require.Len(t, list.Submitted, 2)
	assert.Equal(t, []string{
		"RSSetViewports",
		"RSSetScissorRects",
		"SetPipelineState",
		"SetGraphicsRootSignature",
		"SetGraphicsRootConstantBufferView(0)",
		"SetDescriptorHeaps(2)",
		"SetGraphicsRootDescriptorTable(1)",
		"SetGraphicsRootDescriptorTable(2)",
		"SetGraphicsRootDescriptorTable(3)",
		"ResourceBarrier(0x0->0x4)",
		"ClearRenderTargetView",
		"OMSetRenderTargets(1)",
		"IASetPrimitiveTopology(4)",
		"IASetVertexBuffers(0,1)",
		"DrawInstanced(3,1,0,0)",
		"ResourceBarrier(0x4->0x0)",
	}, list.Submitted[1])

	assert.Equal(t, []d3d.Viewport{{Width: 800, Height: 600, MaxDepth: 1}}, list.Viewports)
	assert.Equal(t, []d3d.Rect{{Right: 800, Bottom: 600}}, list.Scissors)
	assert.Equal(t, r.pipeline.State, list.Pipeline)
	assert.Equal(t, r.rootSignature.Signature, list.RootSignature)
	assert.Equal(t, r.worldMatrix.GPUVirtualAddress(), list.RootCBVs[0])
	assert.Equal(t, []d3d.DescriptorHeap{dev.Heaps[1], dev.Heaps[2]}, list.DescriptorHeap)
	assert.Equal(t, r.cbvHeap.GPU(0), list.RootTables[1])
	assert.Equal(t, r.cbvHeap.GPU(2), list.RootTables[2])
	assert.Equal(t, r.samplerHeap.GPU(0), list.RootTables[3])
	assert.Equal(t, [4]float32{0, 0.2, 0.4, 1}, list.ClearColor)
	assert.Equal(t, r.rtvHeap.CPU(0), list.ClearTarget)
	assert.Equal(t, []d3d.CPUDescriptorHandle{r.rtvHeap.CPU(0)}, list.RenderTargets)
	assert.Equal(t, d3d.PrimitiveTopologyTriangleList, list.Topology)
	assert.Equal(t, []d3d.VertexBufferView{r.vertexBuffer.View}, list.VertexBuffers)

	frameBarriers := list.Barriers[len(list.Barriers)-2:]
	for _, b := range frameBarriers {
		assert.Equal(t, d3d.Resource(sc.Buffers[0]), b.Transition.Resource)
	}
	assert.Equal(t, 1, sc.Presents)
}

func TestFrameUsesCurrentBackBuffer(t *testing.T) {
	r, drv, _ := newTestRenderer(t, DefaultConfig())
	sc := swapChainOf(t, drv)
	list := drv.Device().Lists[0]

	for i := 0; i < 6; i++ {
		want := sc.Current
		require.NoError(t, r.Frame())
		assert.Equal(t, r.rtvHeap.CPU(want), list.ClearTarget)
		last := list.Barriers[len(list.Barriers)-1]
		assert.Equal(t, d3d.Resource(sc.Buffers[want]), last.Transition.Resource)
	}
	assert.Equal(t, 6, sc.Presents)
}

func TestFrameWaitsBeforeReset(t *testing.T) {
	r, drv, _ := newTestRenderer(t, DefaultConfig())
	dev := drv.Device()

	for frame := 0; frame < 3; frame++ {
		drv.Log.Reset()
		require.NoError(t, r.Frame())

		pos := 0
		for _, call := range []string{
			"CommandList.Close",
			"CommandQueue.ExecuteCommandLists(1)",
			"SwapChain.Present(0,0)",
			"Fence.Signal(0)",
			"Fence.SetEventOnCompletion(1)",
			"CommandQueue.Signal(1)",
			"Event.Wait",
			"CommandAllocator.Reset",
			"CommandList.Reset",
		} {
			next := drv.Log.Index(call, pos)
			require.NotEqual(t, -1, next, "frame %d: %s missing or out of order in %v", frame, call, drv.Log.Calls)
			pos = next + 1
		}
		assert.Equal(t, 1, drv.Log.Count("Event.Wait"))
	}

	assert.Equal(t, 4, dev.Allocators[0].Resets)
	assert.Equal(t, uint64(1), dev.Fences[0].Value)
}

func TestFrameWritesTransforms(t *testing.T) {
	r, _, _ := newTestRenderer(t, DefaultConfig())
	require.NoError(t, r.Frame())

	a := math.Pi / 180
	c, s := float32(math.Cos(a)), float32(math.Sin(a))
	world := []float32{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
	view := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 2,
		0, 0, 0, 1,
	}
	h := float32(1 / math.Tan(math.Pi/8))
	far := float32(100 / (100 - 0.1))
	proj := []float32{
		h / 0.75, 0, 0, 0,
		0, h, 0, 0,
		0, 0, far, -far * 0.1,
		0, 0, 1, 0,
	}

	assertMatrix(t, world, r.worldMatrix)
	assertMatrix(t, view, r.viewMatrix)
	assertMatrix(t, proj, r.projMatrix)
	assert.InDelta(t, a, r.angle, 1e-6)
}

func assertMatrix(t *testing.T, want []float32, buf *gfx.UploadBuffer) {
	t.Helper()
	got := gfx.Float32s(buf.Bytes(), 16)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}
}

func TestResizeSwapChain(t *testing.T) {
	r, drv, win := newTestRenderer(t, DefaultConfig())
	dev := drv.Device()
	sc := swapChainOf(t, drv)

	viewport, scissor := r.viewport, r.scissor
	require.NoError(t, r.ResizeSwapChain())
	assert.Equal(t, viewport, r.viewport)
	assert.Equal(t, scissor, r.scissor)
	assert.Equal(t, 2, sc.Resizes)

	win.width, win.height = 1024, 768
	r.RequestResize()
	require.NoError(t, r.Frame())

	assert.False(t, r.resizeRequested)
	assert.Equal(t, d3d.Viewport{Width: 1024, Height: 768, MaxDepth: 1}, r.viewport)
	assert.Equal(t, d3d.Rect{Right: 1024, Bottom: 768}, r.scissor)
	assert.Equal(t, []d3d.Viewport{r.viewport}, dev.Lists[0].Viewports)
	assert.Equal(t, uint32(1024), sc.Width)
	assert.Equal(t, uint32(768), sc.Height)
	assert.Equal(t, d3d.FormatR8G8B8A8UNorm, sc.Format)
	assert.Equal(t, uint32(BackBufferCount), sc.BufferCount)

	for i := uint32(0); i < BackBufferCount; i++ {
		view := dev.Views[r.rtvHeap.CPU(i).Ptr]
		require.NotNil(t, view.RTV)
		assert.Equal(t, d3d.Resource(sc.Buffers[i]), view.Resource)
		assert.Equal(t, d3d.FormatR8G8B8A8UNormSRGB, view.RTV.Format)
		assert.Equal(t, d3d.RTVDimensionTexture2D, view.RTV.ViewDimension)
		assert.Equal(t, fmt.Sprintf("RenderTarget%d", i), sc.Buffers[i].Name)
	}
}

func TestResizeSwapChainZeroWidth(t *testing.T) {
	r, drv, win := newTestRenderer(t, DefaultConfig())
	sc := swapChainOf(t, drv)
	viewport, scissor := r.viewport, r.scissor

	win.width, win.height = 0, 0
	drv.Log.Reset()
	r.RequestResize()
	require.NoError(t, r.Frame())

	assert.False(t, r.resizeRequested)
	assert.Empty(t, drv.Log.Filter("SwapChain.ResizeBuffers"))
	assert.Empty(t, drv.Log.Filter("Device.CreateRenderTargetView"))
	assert.Equal(t, viewport, r.viewport)
	assert.Equal(t, scissor, r.scissor)
	assert.Equal(t, 1, sc.Resizes)
	for _, b := range sc.Buffers {
		assert.False(t, b.Released)
	}
}

func TestRelease(t *testing.T) {
	r, drv, _ := newTestRenderer(t, DefaultConfig())
	dev := drv.Device()
	sc := swapChainOf(t, drv)
	require.NoError(t, r.Frame())

	drv.Log.Reset()
	r.Release()

	assert.Equal(t, "SwapChain.SetFullscreenState(false)", drv.Log.Calls[0])
	assert.Equal(t, "Event.Close", drv.Log.Calls[1])
	assert.Equal(t, "Device.Release", drv.Log.Calls[len(drv.Log.Calls)-1])
	assert.True(t, drv.Events[0].Closed)

	assert.True(t, sc.Released)
	assert.True(t, dev.Fences[0].Released)
	assert.True(t, dev.Lists[0].Released)
	assert.True(t, dev.Allocators[0].Released)
	assert.True(t, dev.Queues[0].Released)
	assert.True(t, dev.Pipelines[0].Released)
	assert.True(t, dev.RootSignatures[0].Released)
	for _, res := range dev.Resources {
		assert.True(t, res.Released)
	}
	for _, b := range sc.Buffers {
		assert.True(t, b.Released)
	}
	for _, h := range dev.Heaps {
		assert.True(t, h.Released)
	}

	calls := len(drv.Log.Calls)
	assert.NotPanics(t, r.Release)
	assert.Len(t, drv.Log.Calls, calls)
}
