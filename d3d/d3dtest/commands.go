package d3dtest

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

type CommandQueue struct {
	log      *Log
	Desc     d3d.CommandQueueDesc
	Executed []*CommandList
	Released bool
}

func (q *CommandQueue) Release() {
	q.log.Add("CommandQueue.Release")
	q.Released = true
}

func (q *CommandQueue) ExecuteCommandLists(lists ...d3d.GraphicsCommandList) {
	q.log.Add("CommandQueue.ExecuteCommandLists(%d)", len(lists))
	for _, l := range lists {
		if cl, ok := l.(*CommandList); ok {
			q.Executed = append(q.Executed, cl)
			cl.Submitted = append(cl.Submitted, append([]string(nil), cl.Commands...))
		}
	}
}

// Signal completes immediately: the fake GPU has no outstanding work.
func (q *CommandQueue) Signal(fence d3d.Fence, value uint64) error {
	q.log.Add("CommandQueue.Signal(%d)", value)
	f, ok := fence.(*Fence)
	if !ok {
		return d3d.EInvalidArg
	}
	f.complete(value)
	return nil
}

type CommandAllocator struct {
	log      *Log
	Type     d3d.CommandListType
	Resets   int
	Released bool
}

func (a *CommandAllocator) Release() {
	a.log.Add("CommandAllocator.Release")
	a.Released = true
}

func (a *CommandAllocator) Reset() error {
	a.log.Add("CommandAllocator.Reset")
	a.Resets++
	return nil
}

type Fence struct {
	log      *Log
	Value    uint64
	waiters  map[*Event]uint64
	Released bool
}

func (f *Fence) complete(value uint64) {
	f.Value = value
	for e, target := range f.waiters {
		if f.Value >= target {
			e.signal()
			delete(f.waiters, e)
		}
	}
}

func (f *Fence) Release() {
	f.log.Add("Fence.Release")
	f.Released = true
}

func (f *Fence) SetEventOnCompletion(value uint64, event d3d.Event) error {
	f.log.Add("Fence.SetEventOnCompletion(%d)", value)
	e, ok := event.(*Event)
	if !ok {
		return d3d.EInvalidArg
	}
	if f.Value >= value {
		e.signal()
		return nil
	}
	if f.waiters == nil {
		f.waiters = map[*Event]uint64{}
	}
	f.waiters[e] = value
	return nil
}

func (f *Fence) Signal(value uint64) error {
	f.log.Add("Fence.Signal(%d)", value)
	f.complete(value)
	return nil
}

// CommandList records every call as a string in Commands and keeps the most
// recent arguments of the calls tests care about.
type CommandList struct {
	log *Log

	Type         d3d.CommandListType
	Allocator    d3d.CommandAllocator
	InitialState d3d.PipelineState
	Closed       bool
	Released     bool

	Commands  []string
	Submitted [][]string

	Viewports      []d3d.Viewport
	Scissors       []d3d.Rect
	Pipeline       d3d.PipelineState
	RootSignature  d3d.RootSignature
	RootCBVs       map[uint32]d3d.GPUVirtualAddress
	RootTables     map[uint32]d3d.GPUDescriptorHandle
	DescriptorHeap []d3d.DescriptorHeap
	Barriers       []d3d.ResourceBarrier
	RenderTargets  []d3d.CPUDescriptorHandle
	ClearColor     [4]float32
	ClearTarget    d3d.CPUDescriptorHandle
	Topology       d3d.PrimitiveTopology
	VertexBuffers  []d3d.VertexBufferView
	Copies         []TextureCopy
}

type TextureCopy struct {
	Dst d3d.TextureCopyLocation
	Src d3d.TextureCopyLocation
}

func (l *CommandList) record(format string, args ...interface{}) {
	c := fmt.Sprintf(format, args...)
	l.Commands = append(l.Commands, c)
	l.log.Add("CommandList.%s", c)
}

func (l *CommandList) Release() {
	l.log.Add("CommandList.Release")
	l.Released = true
}

func (l *CommandList) Close() error {
	l.log.Add("CommandList.Close")
	if l.Closed {
		return errors.Wrap(d3d.EFail, "d3dtest: command list already closed")
	}
	l.Closed = true
	return nil
}

func (l *CommandList) Reset(allocator d3d.CommandAllocator, initialState d3d.PipelineState) error {
	l.log.Add("CommandList.Reset")
	if !l.Closed {
		return errors.Wrap(d3d.EFail, "d3dtest: resetting a command list that is still recording")
	}
	l.Closed = false
	l.Allocator = allocator
	l.InitialState = initialState
	l.Commands = nil
	return nil
}

func (l *CommandList) DrawInstanced(vertexCountPerInstance, instanceCount, startVertex, startInstance uint32) {
	l.record("DrawInstanced(%d,%d,%d,%d)", vertexCountPerInstance, instanceCount, startVertex, startInstance)
}

func (l *CommandList) CopyTextureRegion(dst *d3d.TextureCopyLocation, dstX, dstY, dstZ uint32, src *d3d.TextureCopyLocation, srcBox *d3d.Box) {
	l.record("CopyTextureRegion")
	l.Copies = append(l.Copies, TextureCopy{Dst: *dst, Src: *src})
}

func (l *CommandList) IASetPrimitiveTopology(topology d3d.PrimitiveTopology) {
	l.record("IASetPrimitiveTopology(%d)", topology)
	l.Topology = topology
}

func (l *CommandList) RSSetViewports(viewports ...d3d.Viewport) {
	l.record("RSSetViewports")
	l.Viewports = append([]d3d.Viewport(nil), viewports...)
}

func (l *CommandList) RSSetScissorRects(rects ...d3d.Rect) {
	l.record("RSSetScissorRects")
	l.Scissors = append([]d3d.Rect(nil), rects...)
}

func (l *CommandList) SetPipelineState(state d3d.PipelineState) {
	l.record("SetPipelineState")
	l.Pipeline = state
}

func (l *CommandList) ResourceBarrier(barriers ...d3d.ResourceBarrier) {
	for _, b := range barriers {
		l.record("ResourceBarrier(%#x->%#x)", uint32(b.Transition.StateBefore), uint32(b.Transition.StateAfter))
	}
	l.Barriers = append(l.Barriers, barriers...)
}

func (l *CommandList) SetDescriptorHeaps(heaps ...d3d.DescriptorHeap) {
	l.record("SetDescriptorHeaps(%d)", len(heaps))
	l.DescriptorHeap = append([]d3d.DescriptorHeap(nil), heaps...)
}

func (l *CommandList) SetGraphicsRootSignature(signature d3d.RootSignature) {
	l.record("SetGraphicsRootSignature")
	l.RootSignature = signature
}

func (l *CommandList) SetGraphicsRootDescriptorTable(rootParameterIndex uint32, base d3d.GPUDescriptorHandle) {
	l.record("SetGraphicsRootDescriptorTable(%d)", rootParameterIndex)
	if l.RootTables == nil {
		l.RootTables = map[uint32]d3d.GPUDescriptorHandle{}
	}
	l.RootTables[rootParameterIndex] = base
}

func (l *CommandList) SetGraphicsRootConstantBufferView(rootParameterIndex uint32, location d3d.GPUVirtualAddress) {
	l.record("SetGraphicsRootConstantBufferView(%d)", rootParameterIndex)
	if l.RootCBVs == nil {
		l.RootCBVs = map[uint32]d3d.GPUVirtualAddress{}
	}
	l.RootCBVs[rootParameterIndex] = location
}

func (l *CommandList) IASetVertexBuffers(startSlot uint32, views ...d3d.VertexBufferView) {
	l.record("IASetVertexBuffers(%d,%d)", startSlot, len(views))
	l.VertexBuffers = append([]d3d.VertexBufferView(nil), views...)
}

func (l *CommandList) OMSetRenderTargets(rtvs []d3d.CPUDescriptorHandle, singleHandleToDescriptorRange bool, dsv *d3d.CPUDescriptorHandle) {
	l.record("OMSetRenderTargets(%d)", len(rtvs))
	l.RenderTargets = append([]d3d.CPUDescriptorHandle(nil), rtvs...)
}

func (l *CommandList) ClearRenderTargetView(rtv d3d.CPUDescriptorHandle, color [4]float32, rects ...d3d.Rect) {
	l.record("ClearRenderTargetView")
	l.ClearTarget = rtv
	l.ClearColor = color
}
