package renderer

import (
	"log"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gpusamples/d3d12hello/d3d"
	"github.com/gpusamples/d3d12hello/gfx"
	"github.com/gpusamples/d3d12hello/xform"
)

var (
	eye   = mgl32.Vec3{0, 0, -2}
	focus = mgl32.Vec3{0, 0, 0}
	up    = mgl32.Vec3{0, 1, 0}
)

const (
	fieldOfView = math.Pi / 4
	aspectRatio = 6.0 / 8.0
	nearPlane   = 0.1
	farPlane    = 100
)

// Frame advances the animation, records and submits the frame's commands,
// presents, and blocks until the GPU has finished before resetting the
// command list for the next frame.
func (r *Renderer) Frame() error {
	if r.resizeRequested {
		if err := r.ResizeSwapChain(); err != nil {
			return err
		}
	}

	r.updateTransforms()

	backBuffer := r.swapChain.CurrentBackBufferIndex()
	r.recordFrame(backBuffer)

	if err := r.list.Close(); err != nil {
		return errors.Wrap(err, "renderer: closing frame command list")
	}
	r.queue.ExecuteCommandLists(r.list)

	if err := r.swapChain.Present(0, d3d.PresentFlagNone); err != nil {
		return errors.Wrap(err, "renderer: presenting")
	}

	if err := r.WaitForCommandQueueFence(); err != nil {
		return err
	}
	if err := r.resetCommandList(); err != nil {
		return err
	}

	if fps, frameTime, ok := r.stats.Tick(); ok {
		log.Printf("%.1f fps (%v per frame)", fps, frameTime)
	}
	return nil
}

// updateTransforms writes this frame's world, view and projection matrices
// row by row into their mapped constant buffers.
func (r *Renderer) updateTransforms() {
	r.angle = xform.StepAngle(r.angle)

	writeMatrix(r.worldMatrix, xform.RotationY(r.angle))
	writeMatrix(r.viewMatrix, xform.LookAtLH(eye, focus, up))
	writeMatrix(r.projMatrix, xform.PerspectiveFovLH(fieldOfView, aspectRatio, nearPlane, farPlane))
}

func writeMatrix(buf *gfx.UploadBuffer, m mgl32.Mat4) {
	rows := xform.RowMajor(m)
	gfx.PutFloat32s(buf.Bytes(), rows[:])
}

func (r *Renderer) recordFrame(backBuffer uint32) {
	list := r.list
	rtv := r.rtvHeap.CPU(backBuffer)
	target := r.renderTargets[backBuffer]

	list.RSSetViewports(r.viewport)
	list.RSSetScissorRects(r.scissor)
	list.SetPipelineState(r.pipeline.State)
	list.SetGraphicsRootSignature(r.rootSignature.Signature)

	list.SetGraphicsRootConstantBufferView(gfx.RootSlotWorldCBV, r.worldMatrix.GPUVirtualAddress())
	list.SetDescriptorHeaps(r.cbvHeap.Heap, r.samplerHeap.Heap)
	list.SetGraphicsRootDescriptorTable(gfx.RootSlotViewProjTable, r.cbvHeap.GPU(viewCBVSlot))
	list.SetGraphicsRootDescriptorTable(gfx.RootSlotTextureTable, r.cbvHeap.GPU(textureSRVSlot))
	list.SetGraphicsRootDescriptorTable(gfx.RootSlotSamplerTable, r.samplerHeap.GPU(0))

	gfx.Transition(list, target, d3d.ResourceStatePresent, d3d.ResourceStateRenderTarget)

	list.ClearRenderTargetView(rtv, r.cfg.ClearColor)
	list.OMSetRenderTargets([]d3d.CPUDescriptorHandle{rtv}, true, nil)
	list.IASetPrimitiveTopology(d3d.PrimitiveTopologyTriangleList)
	list.IASetVertexBuffers(0, r.vertexBuffer.View)
	list.DrawInstanced(3, 1, 0, 0)

	gfx.Transition(list, target, d3d.ResourceStateRenderTarget, d3d.ResourceStatePresent)
}

// WaitForCommandQueueFence blocks until the queue has executed everything
// submitted so far. The fence is rewound to 0 and the queue signals 1 behind
// the submitted work.
func (r *Renderer) WaitForCommandQueueFence() error {
	if err := r.fence.Signal(0); err != nil {
		return errors.Wrap(err, "renderer: resetting fence")
	}
	if err := r.fence.SetEventOnCompletion(1, r.fenceEvent); err != nil {
		return errors.Wrap(err, "renderer: arming fence event")
	}
	if err := r.queue.Signal(r.fence, 1); err != nil {
		return errors.Wrap(err, "renderer: signalling fence")
	}
	if err := r.fenceEvent.Wait(); err != nil {
		return errors.Wrap(err, "renderer: waiting for fence")
	}
	return nil
}

// resetCommandList may only run once the fence wait has returned.
func (r *Renderer) resetCommandList() error {
	if err := r.allocator.Reset(); err != nil {
		return errors.Wrap(err, "renderer: resetting command allocator")
	}
	if err := r.list.Reset(r.allocator, nil); err != nil {
		return errors.Wrap(err, "renderer: resetting command list")
	}
	return nil
}
