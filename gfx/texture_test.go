package gfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/gpusamples/d3d12hello/d3d"
	"github.com/gpusamples/d3d12hello/d3d/d3dtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTexture2D(t *testing.T) {
	drv := d3dtest.NewDriver()
	_, err := drv.CreateDevice(d3d.FeatureLevel11_0)
	require.NoError(t, err)
	dev := drv.Device()

	alloc, err := dev.CreateCommandAllocator(d3d.CommandListTypeDirect)
	require.NoError(t, err)
	list, err := dev.CreateCommandList(0, d3d.CommandListTypeDirect, alloc, nil)
	require.NoError(t, err)

	upload, err := NewUploadBuffer(dev, 4096, d3d.HeapTypeUpload, d3d.HeapFlagNone)
	require.NoError(t, err)
	_, err = upload.Write([]byte{0xff})
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	img.Set(2, 1, color.RGBA{R: 5, G: 6, B: 7, A: 8})

	tex, err := NewTexture2D(dev, list, upload, img)
	require.NoError(t, err)

	res := dev.Resources[1]
	assert.Equal(t, d3d.HeapTypeDefault, res.Heap.Type)
	assert.Equal(t, d3d.ResourceStateCopyDest, res.InitialState)
	assert.Equal(t, uint64(3), tex.Desc.Width)
	assert.Equal(t, uint32(2), tex.Desc.Height)

	// Staging starts at the first placement-aligned offset; rows are 256
	// bytes apart.
	data := dev.Resources[0].Data
	assert.Equal(t, []byte{1, 2, 3, 4}, data[512:516])
	assert.Equal(t, []byte{5, 6, 7, 8}, data[512+256+8:512+256+12])
	assert.Equal(t, 512+256+12, upload.Offset())

	fake := dev.Lists[0]
	require.Len(t, fake.Copies, 1)
	cp := fake.Copies[0]
	assert.Equal(t, d3d.TextureCopyTypeSubresourceIndex, cp.Dst.Type)
	assert.Equal(t, d3d.TextureCopyTypePlacedFootprint, cp.Src.Type)
	assert.Equal(t, uint64(512), cp.Src.PlacedFootprint.Offset)
	assert.Equal(t, uint32(256), cp.Src.PlacedFootprint.Footprint.RowPitch)

	Transition(list, tex.Resource, d3d.ResourceStateCopyDest, d3d.ResourceStateGenericRead)
	require.Len(t, fake.Barriers, 1)
	assert.Equal(t, uint32(d3d.ResourceBarrierAllSubresources), fake.Barriers[0].Transition.Subresource)
	assert.Equal(t, "ResourceBarrier(0x400->0xac3)", fake.Commands[len(fake.Commands)-1])

	tex.Release()
	assert.True(t, res.Released)
}

func TestNewTexture2DDoesNotFit(t *testing.T) {
	dev := newDevice(t)
	alloc, err := dev.CreateCommandAllocator(d3d.CommandListTypeDirect)
	require.NoError(t, err)
	list, err := dev.CreateCommandList(0, d3d.CommandListTypeDirect, alloc, nil)
	require.NoError(t, err)

	upload, err := NewUploadBuffer(dev, 1024, d3d.HeapTypeUpload, d3d.HeapFlagNone)
	require.NoError(t, err)

	_, err = NewTexture2D(dev, list, upload, image.NewRGBA(image.Rect(0, 0, 64, 64)))
	require.Error(t, err)
	assert.True(t, dev.Resources[1].Released)
	assert.Empty(t, dev.Lists[0].Copies)
}
