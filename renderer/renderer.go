// Package renderer draws the textured, rotating triangle. It owns every
// Direct3D 12 object the sample creates and runs one frame at a time: the
// CPU waits for the GPU at the end of each frame, so the command list, the
// allocator and the constant buffers are single instances.
package renderer

import (
	"log"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/assets"
	"github.com/gpusamples/d3d12hello/d3d"
	"github.com/gpusamples/d3d12hello/gfx"
	"golang.org/x/sync/errgroup"
)

const (
	BackBufferCount = 4

	backBufferFormat   = d3d.FormatR8G8B8A8UNorm
	renderTargetFormat = d3d.FormatR8G8B8A8UNormSRGB

	matrixSize         = 64
	constantBufferSize = (matrixSize + d3d.ConstantBufferDataAlignment - 1) &^ (d3d.ConstantBufferDataAlignment - 1)
	textureUploadSize  = 10 << 20

	statsInterval = 2 * time.Second
)

// Slots in the CBV/SRV/UAV heap.
const (
	viewCBVSlot = iota
	projCBVSlot
	textureSRVSlot
	cbvHeapSize
)

// Window is the surface the swap chain presents to.
type Window interface {
	// Handle is the native window handle (an HWND on Windows).
	Handle() uintptr
	ClientSize() (width, height int32)
}

type Renderer struct {
	driver d3d.Driver
	window Window
	cfg    Config

	device    d3d.Device
	options   d3d.FeatureDataOptions
	allocator d3d.CommandAllocator
	queue     d3d.CommandQueue
	list      d3d.GraphicsCommandList
	swapChain d3d.SwapChain

	rtvHeap       *gfx.DescriptorHeap
	renderTargets [BackBufferCount]d3d.Resource
	viewport      d3d.Viewport
	scissor       d3d.Rect

	worldMatrix *gfx.UploadBuffer
	viewMatrix  *gfx.UploadBuffer
	projMatrix  *gfx.UploadBuffer
	cbvHeap     *gfx.DescriptorHeap

	vertexShader  *gfx.Shader
	pixelShader   *gfx.Shader
	rootSignature *gfx.RootSignature
	vertexBuffer  *gfx.VertexBuffer
	pipeline      *gfx.PipelineState

	fence      d3d.Fence
	fenceEvent d3d.Event

	samplerHeap *gfx.DescriptorHeap
	texture     *gfx.Texture

	angle           float32
	resizeRequested bool
	stats           *FrameStats
}

// New creates the device and every object the frame loop uses, uploads the
// texture and waits for the upload to finish. On error everything created so
// far is released.
func New(driver d3d.Driver, window Window, cfg Config, a *assets.Assets) (_ *Renderer, err error) {
	r := &Renderer{
		driver: driver,
		window: window,
		cfg:    cfg,
		stats:  NewFrameStats(statsInterval),
	}
	defer func() {
		if err != nil {
			r.Release()
		}
	}()

	if cfg.DebugLayer {
		if err := driver.EnableDebugLayer(); err != nil {
			return nil, err
		}
	}

	r.device, err = driver.CreateDevice(d3d.FeatureLevel11_0)
	if err != nil {
		return nil, err
	}

	r.options, err = r.device.Options()
	if err != nil {
		return nil, errors.Wrap(err, "renderer: querying device options")
	}
	log.Printf("device: resource binding tier %d, resource heap tier %d, tiled resources tier %d",
		r.options.ResourceBindingTier, r.options.ResourceHeapTier, r.options.TiledResourcesTier)

	if err := r.createCommandObjects(); err != nil {
		return nil, err
	}
	if err := r.createSwapChain(); err != nil {
		return nil, err
	}

	r.rtvHeap, err = gfx.NewDescriptorHeap(r.device, d3d.DescriptorHeapTypeRTV, BackBufferCount, false)
	if err != nil {
		return nil, err
	}
	if err := r.ResizeSwapChain(); err != nil {
		return nil, err
	}

	if err := r.createConstantBuffers(); err != nil {
		return nil, err
	}
	if err := r.createPipeline(a); err != nil {
		return nil, err
	}

	r.list, err = r.device.CreateCommandList(0, d3d.CommandListTypeDirect, r.allocator, r.pipeline.State)
	if err != nil {
		return nil, err
	}

	r.fence, err = r.device.CreateFence(0, d3d.FenceFlagNone)
	if err != nil {
		return nil, err
	}
	r.fenceEvent, err = driver.CreateEvent()
	if err != nil {
		return nil, err
	}

	if err := r.createSampler(); err != nil {
		return nil, err
	}
	if err := r.uploadTexture(a); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) createCommandObjects() error {
	var err error
	r.allocator, err = r.device.CreateCommandAllocator(d3d.CommandListTypeDirect)
	if err != nil {
		return err
	}

	r.queue, err = r.device.CreateCommandQueue(&d3d.CommandQueueDesc{
		Type: d3d.CommandListTypeDirect,
	})
	return err
}

func (r *Renderer) createSwapChain() error {
	factory, err := r.driver.CreateFactory(r.cfg.DebugLayer)
	if err != nil {
		return err
	}
	defer factory.Release()

	width, height := r.window.ClientSize()
	desc := d3d.SwapChainDesc{
		BufferDesc: d3d.ModeDesc{
			Width:  uint32(max32(width, 0)),
			Height: uint32(max32(height, 0)),
			Format: backBufferFormat,
		},
		SampleDesc:   d3d.SampleDesc{Count: 1},
		BufferUsage:  d3d.UsageRenderTargetOutput,
		BufferCount:  BackBufferCount,
		OutputWindow: r.window.Handle(),
		Windowed:     1,
		SwapEffect:   d3d.SwapEffectFlipSequential,
	}

	// The swap chain is created on the queue, not the device.
	r.swapChain, err = factory.CreateSwapChain(r.queue, &desc)
	return err
}

func (r *Renderer) createConstantBuffers() error {
	var err error
	for _, buf := range []**gfx.UploadBuffer{&r.worldMatrix, &r.viewMatrix, &r.projMatrix} {
		*buf, err = gfx.NewUploadBuffer(r.device, constantBufferSize, d3d.HeapTypeUpload, d3d.HeapFlagNone)
		if err != nil {
			return err
		}
	}

	r.cbvHeap, err = gfx.NewDescriptorHeap(r.device, d3d.DescriptorHeapTypeCBVSRVUAV, cbvHeapSize, true)
	if err != nil {
		return err
	}

	r.device.CreateConstantBufferView(&d3d.ConstantBufferViewDesc{
		BufferLocation: r.viewMatrix.GPUVirtualAddress(),
		SizeInBytes:    constantBufferSize,
	}, r.cbvHeap.CPU(viewCBVSlot))
	r.device.CreateConstantBufferView(&d3d.ConstantBufferViewDesc{
		BufferLocation: r.projMatrix.GPUVirtualAddress(),
		SizeInBytes:    constantBufferSize,
	}, r.cbvHeap.CPU(projCBVSlot))
	return nil
}

func (r *Renderer) createPipeline(a *assets.Assets) error {
	var group errgroup.Group
	group.Go(func() error {
		var err error
		r.vertexShader, err = gfx.LoadShader(r.driver, a.ShaderSource, assets.ShaderSourceName, assets.VertexEntryPoint, assets.VertexTarget)
		return err
	})
	group.Go(func() error {
		var err error
		r.pixelShader, err = gfx.LoadShader(r.driver, a.ShaderSource, assets.ShaderSourceName, assets.PixelEntryPoint, assets.PixelTarget)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	var err error
	r.rootSignature, err = gfx.NewRootSignature(r.device, r.driver, gfx.SampleRootSignatureDesc())
	if err != nil {
		return err
	}

	vertices, err := gfx.Bytes(a.Vertices)
	if err != nil {
		return err
	}
	r.vertexBuffer, err = gfx.NewVertexBuffer(r.device, uint32(len(vertices)), gfx.VertexP3FT2FSize, vertices)
	if err != nil {
		return err
	}

	desc := gfx.SimplePipelineDesc(gfx.P3FT2FInputLayout(), r.rootSignature, r.vertexShader, r.pixelShader)
	r.pipeline, err = gfx.NewPipelineState(r.device, &desc)
	return err
}

func (r *Renderer) createSampler() error {
	var err error
	r.samplerHeap, err = gfx.NewDescriptorHeap(r.device, d3d.DescriptorHeapTypeSampler, 1, true)
	if err != nil {
		return err
	}

	r.device.CreateSampler(&d3d.SamplerDesc{
		Filter:         d3d.FilterMinMagMipLinear,
		AddressU:       d3d.TextureAddressModeWrap,
		AddressV:       d3d.TextureAddressModeWrap,
		AddressW:       d3d.TextureAddressModeWrap,
		MaxAnisotropy:  1,
		ComparisonFunc: d3d.ComparisonFuncAlways,
		MaxLOD:         d3d.Float32Max,
	}, r.samplerHeap.CPU(0))
	return nil
}

// uploadTexture records the texture copy on the freshly created command
// list, runs it and waits, leaving the list reset and ready for the first
// frame.
func (r *Renderer) uploadTexture(a *assets.Assets) error {
	upload, err := gfx.NewUploadBuffer(r.device, textureUploadSize, d3d.HeapTypeUpload, d3d.HeapFlagNone)
	if err != nil {
		return err
	}
	defer upload.Release()

	r.texture, err = gfx.NewTexture2D(r.device, r.list, upload, a.Texture)
	if err != nil {
		return err
	}
	gfx.Transition(r.list, r.texture.Resource, d3d.ResourceStateCopyDest, d3d.ResourceStateGenericRead)

	if err := r.list.Close(); err != nil {
		return errors.Wrap(err, "renderer: closing upload command list")
	}
	r.queue.ExecuteCommandLists(r.list)

	desc := r.texture.Resource.Desc()
	r.device.CreateShaderResourceView(r.texture.Resource, &d3d.ShaderResourceViewDesc{
		Format:                  desc.Format,
		ViewDimension:           d3d.SRVDimensionTexture2D,
		Shader4ComponentMapping: d3d.DefaultShader4ComponentMapping,
		Texture2D: d3d.Tex2DSRV{
			MipLevels: uint32(desc.MipLevels),
		},
	}, r.cbvHeap.CPU(textureSRVSlot))

	if err := r.WaitForCommandQueueFence(); err != nil {
		return err
	}
	return r.resetCommandList()
}

// Release leaves fullscreen, closes the fence event and releases every
// object in reverse creation order. It is safe on a partially built
// Renderer.
func (r *Renderer) Release() {
	if r.swapChain != nil {
		if err := r.swapChain.SetFullscreenState(false); err != nil {
			log.Printf("leaving fullscreen: %v", err)
		}
	}
	if r.fenceEvent != nil {
		if err := r.fenceEvent.Close(); err != nil {
			log.Printf("closing fence event: %v", err)
		}
		r.fenceEvent = nil
	}

	r.texture.Release()
	r.samplerHeap.Release()
	if r.fence != nil {
		r.fence.Release()
		r.fence = nil
	}
	if r.list != nil {
		r.list.Release()
		r.list = nil
	}
	r.pipeline.Release()
	r.vertexBuffer.Release()
	r.rootSignature.Release()
	r.cbvHeap.Release()
	r.projMatrix.Release()
	r.viewMatrix.Release()
	r.worldMatrix.Release()
	r.releaseRenderTargets()
	r.rtvHeap.Release()
	if r.swapChain != nil {
		r.swapChain.Release()
		r.swapChain = nil
	}
	if r.queue != nil {
		r.queue.Release()
		r.queue = nil
	}
	if r.allocator != nil {
		r.allocator.Release()
		r.allocator = nil
	}
	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
