package renderer

import (
	"fmt"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

// RequestResize makes the next Frame rebuild the swap chain views before
// drawing.
func (r *Renderer) RequestResize() {
	r.resizeRequested = true
}

// ResizeSwapChain resizes the back buffers to the window's client area and
// recreates their render target views, the viewport and the scissor rect.
// A zero-width client area (a minimized window) leaves everything as is.
func (r *Renderer) ResizeSwapChain() error {
	r.resizeRequested = false

	width, height := r.window.ClientSize()
	if width <= 0 {
		return nil
	}
	if height < 0 {
		height = 0
	}

	r.releaseRenderTargets()

	err := r.swapChain.ResizeBuffers(BackBufferCount, uint32(width), uint32(height), backBufferFormat, d3d.SwapChainFlagNone)
	if err != nil {
		return errors.Wrapf(err, "renderer: resizing swap chain to %dx%d", width, height)
	}

	rtvDesc := d3d.RenderTargetViewDesc{
		Format:        renderTargetFormat,
		ViewDimension: d3d.RTVDimensionTexture2D,
	}
	for i := uint32(0); i < BackBufferCount; i++ {
		buf, err := r.swapChain.Buffer(i)
		if err != nil {
			return errors.Wrapf(err, "renderer: getting back buffer %d", i)
		}
		r.renderTargets[i] = buf

		if err := buf.SetName(fmt.Sprintf("RenderTarget%d", i)); err != nil {
			return errors.Wrapf(err, "renderer: naming back buffer %d", i)
		}
		r.device.CreateRenderTargetView(buf, &rtvDesc, r.rtvHeap.CPU(i))
	}

	r.viewport = d3d.Viewport{
		Width:    float32(width),
		Height:   float32(height),
		MinDepth: 0,
		MaxDepth: 1,
	}
	r.scissor = d3d.Rect{Right: width, Bottom: height}

	log.Printf("swap chain: %d buffers at %dx%d", BackBufferCount, width, height)
	return nil
}

// releaseRenderTargets drops every back buffer reference; the swap chain
// refuses to resize while any are held.
func (r *Renderer) releaseRenderTargets() {
	for i, rt := range r.renderTargets {
		if rt != nil {
			rt.Release()
			r.renderTargets[i] = nil
		}
	}
}
