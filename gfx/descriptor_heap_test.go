package gfx

import (
	"testing"

	"github.com/gpusamples/d3d12hello/d3d"
	"github.com/gpusamples/d3d12hello/d3d/d3dtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(t *testing.T) *d3dtest.Device {
	t.Helper()
	drv := d3dtest.NewDriver()
	_, err := drv.CreateDevice(d3d.FeatureLevel11_0)
	require.NoError(t, err)
	return drv.Device()
}

func TestDescriptorHeapHandles(t *testing.T) {
	dev := newDevice(t)

	heap, err := NewDescriptorHeap(dev, d3d.DescriptorHeapTypeCBVSRVUAV, 3, true)
	require.NoError(t, err)
	defer heap.Release()

	assert.True(t, heap.ShaderVisible())
	assert.Equal(t, uint32(32), heap.IncrementSize)
	assert.Equal(t, uint32(3), heap.Desc.NumDescriptors)
	assert.Equal(t, dev.Heaps[0].Desc(), heap.Desc)

	for i := uint32(0); i < 3; i++ {
		assert.Equal(t, heap.CPUStart.Ptr+uintptr(i*32), heap.CPU(i).Ptr)
		assert.Equal(t, heap.GPUStart.Ptr+uint64(i*32), heap.GPU(i).Ptr)
	}
}

func TestDescriptorHeapNotShaderVisible(t *testing.T) {
	dev := newDevice(t)

	heap, err := NewDescriptorHeap(dev, d3d.DescriptorHeapTypeRTV, 4, false)
	require.NoError(t, err)

	assert.False(t, heap.ShaderVisible())
	assert.Equal(t, d3d.DescriptorHeapFlagNone, dev.Heaps[0].DescData.Flags)
	assert.Equal(t, heap.CPUStart.Ptr+3*32, heap.CPU(3).Ptr)
	assert.Panics(t, func() { heap.GPU(0) })

	heap.Release()
	assert.True(t, dev.Heaps[0].Released)
	assert.NotPanics(t, heap.Release)
}

func TestNilDescriptorHeapRelease(t *testing.T) {
	var heap *DescriptorHeap
	assert.NotPanics(t, heap.Release)
}
